package backend

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"sync"

	"github.com/mattn/go-sqlite3"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormStore implementa Store sobre una conexión gorm (Postgres o SQLite).
type GormStore struct {
	db *gorm.DB
}

// NewGormStore envuelve una conexión ya abierta.
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// OpenPostgres abre el pool contra Postgres usando el logger de beego.
func OpenPostgres(dsn string, maxOpenConns int) (*gorm.DB, error) {
	return open(postgres.Open(dsn), maxOpenConns)
}

// sqliteDriver reemplaza lower() por uno con plegado Unicode; el nativo de
// SQLite sólo pliega ASCII.
const sqliteDriver = "sqlite3_observatorio"

var registerSQLite sync.Once

// OpenSQLite abre una base SQLite (archivo o memoria), útil en desarrollo y pruebas.
func OpenSQLite(dsn string) (*gorm.DB, error) {
	registerSQLite.Do(func() {
		sql.Register(sqliteDriver, &sqlite3.SQLiteDriver{
			ConnectHook: func(conn *sqlite3.SQLiteConn) error {
				return conn.RegisterFunc("lower", lowerUnicode, true)
			},
		})
	})
	return open(sqlite.New(sqlite.Config{DriverName: sqliteDriver, DSN: dsn}), 1)
}

func lowerUnicode(v interface{}) interface{} {
	switch s := v.(type) {
	case string:
		return strings.ToLower(s)
	case []byte:
		return strings.ToLower(string(s))
	default:
		return v
	}
}

// No se hace ping al abrir: un backend caído se reporta por request, donde
// las opciones tienen su cadena de respaldo y la salud responde 503.
func open(dialector gorm.Dialector, maxOpenConns int) (*gorm.DB, error) {
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:               NewGormLogger(),
		DisableAutomaticPing: true,
	})
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if maxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(maxOpenConns)
	}
	return db, nil
}

// DB expone la conexión subyacente para los catálogos de esquema.
func (s *GormStore) DB() *gorm.DB {
	return s.db
}

// Select ejecuta la consulta y devuelve las filas en el orden del backend.
func (s *GormStore) Select(ctx context.Context, q Query) ([]Row, error) {
	tx := s.db.WithContext(ctx).Table(q.Table)
	if len(q.Columns) > 0 {
		tx = tx.Select(q.Columns)
	}
	for _, cond := range q.Where {
		tx = conditionToWhereClause(cond, tx)
	}
	if q.Order != nil {
		tx = tx.Order(clause.OrderByColumn{
			Column: clause.Column{Name: q.Order.Column},
			Desc:   q.Order.Desc,
		})
	}
	if q.Limit > 0 {
		tx = tx.Limit(q.Limit)
	}

	rows := make([]Row, 0)
	if err := tx.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// Ping ejecuta la consulta más liviana posible.
func (s *GormStore) Ping(ctx context.Context) error {
	return s.db.WithContext(ctx).Exec("SELECT 1").Error
}

// Las columnas provienen de la tabla de recursos, nunca del request.
func conditionToWhereClause(cond Condition, tx *gorm.DB) *gorm.DB {
	switch cond.Op {
	case OpIgual:
		return tx.Where(fmt.Sprintf("%s = ?", cond.Column), cond.Value)
	case OpPatron:
		return tx.Where(fmt.Sprintf(`LOWER(%s) LIKE ? ESCAPE '\'`, cond.Column), "%"+escapeLike(strings.ToLower(cond.Value))+"%")
	case OpDesde:
		return tx.Where(fmt.Sprintf("%s >= ?", cond.Column), cond.Value)
	case OpHasta:
		return tx.Where(fmt.Sprintf("%s <= ?", cond.Column), cond.Value)
	default:
		return tx
	}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

// escapeLike hace que %, _ y \ del valor se comparen literalmente.
func escapeLike(value string) string {
	return likeEscaper.Replace(value)
}
