package esquema

import (
	"context"
	"strconv"
	"strings"

	"gorm.io/gorm"
)

// CatalogoSQLite adapta sqlite_master y pragma_table_info al formato de
// information_schema. El esquema se ignora: SQLite tiene uno solo.
type CatalogoSQLite struct {
	db *gorm.DB
}

func NewCatalogoSQLite(db *gorm.DB) *CatalogoSQLite {
	return &CatalogoSQLite{db: db}
}

type pragmaColumn struct {
	Cid       int     `gorm:"column:cid"`
	Name      string  `gorm:"column:name"`
	Type      string  `gorm:"column:type"`
	NotNull   int     `gorm:"column:notnull"`
	DfltValue *string `gorm:"column:dflt_value"`
	Pk        int     `gorm:"column:pk"`
}

func (c *CatalogoSQLite) TablasBase(ctx context.Context, schema string) ([]string, error) {
	tables := make([]string, 0)
	err := c.db.WithContext(ctx).
		Table("sqlite_master").
		Where("type = ? AND name NOT LIKE ?", "table", "sqlite_%").
		Order("name").
		Pluck("name", &tables).Error
	return tables, err
}

func (c *CatalogoSQLite) Columnas(ctx context.Context, schema, table string) ([]ColumnaCatalogo, error) {
	var rows []pragmaColumn
	err := c.db.WithContext(ctx).
		Raw(`SELECT cid, name, type, "notnull", dflt_value, pk FROM pragma_table_info(?) ORDER BY cid`, table).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	cols := make([]ColumnaCatalogo, 0, len(rows))
	for _, r := range rows {
		base, length := splitSQLiteType(r.Type)
		identity := r.Pk == 1 && base == "integer"
		nullable := "YES"
		if r.NotNull == 1 || identity {
			nullable = "NO"
		}
		isIdentity := "NO"
		if identity {
			isIdentity = "YES"
		}
		cols = append(cols, ColumnaCatalogo{
			ColumnName:             r.Name,
			DataType:               base,
			UdtName:                base,
			IsNullable:             nullable,
			ColumnDefault:          r.DfltValue,
			CharacterMaximumLength: length,
			IsIdentity:             isIdentity,
			OrdinalPosition:        r.Cid + 1,
		})
	}
	return cols, nil
}

// splitSQLiteType separa "VARCHAR(50)" en ("varchar", 50).
func splitSQLiteType(raw string) (string, *int) {
	t := strings.ToLower(strings.TrimSpace(raw))
	open := strings.Index(t, "(")
	if open < 0 || !strings.HasSuffix(t, ")") {
		return t, nil
	}
	base := strings.TrimSpace(t[:open])
	n, err := strconv.Atoi(strings.TrimSpace(t[open+1 : len(t)-1]))
	if err != nil {
		return t, nil
	}
	return base, &n
}
