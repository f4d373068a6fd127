package esquema

import (
	"context"

	"gorm.io/gorm"
)

// CatalogoPostgres lee information_schema de Postgres.
type CatalogoPostgres struct {
	db *gorm.DB
}

func NewCatalogoPostgres(db *gorm.DB) *CatalogoPostgres {
	return &CatalogoPostgres{db: db}
}

func (c *CatalogoPostgres) TablasBase(ctx context.Context, schema string) ([]string, error) {
	tables := make([]string, 0)
	err := c.db.WithContext(ctx).
		Table("information_schema.tables").
		Where("table_schema = ? AND table_type = ?", schema, "BASE TABLE").
		Order("table_name").
		Pluck("table_name", &tables).Error
	return tables, err
}

func (c *CatalogoPostgres) Columnas(ctx context.Context, schema, table string) ([]ColumnaCatalogo, error) {
	cols := make([]ColumnaCatalogo, 0)
	err := c.db.WithContext(ctx).
		Table("information_schema.columns").
		Select("column_name, data_type, udt_name, is_nullable, column_default, character_maximum_length, is_identity, ordinal_position").
		Where("table_schema = ? AND table_name = ?", schema, table).
		Order("ordinal_position").
		Scan(&cols).Error
	return cols, err
}
