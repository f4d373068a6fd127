package esquema

import "context"

// ColumnaCatalogo es una fila de metadatos de columna en el formato nativo del
// catálogo (information_schema.columns).
type ColumnaCatalogo struct {
	ColumnName             string  `gorm:"column:column_name"`
	DataType               string  `gorm:"column:data_type"`
	UdtName                string  `gorm:"column:udt_name"`
	IsNullable             string  `gorm:"column:is_nullable"`
	ColumnDefault          *string `gorm:"column:column_default"`
	CharacterMaximumLength *int    `gorm:"column:character_maximum_length"`
	IsIdentity             string  `gorm:"column:is_identity"`
	OrdinalPosition        int     `gorm:"column:ordinal_position"`
}

// Catalogo es la fuente de metadatos del backend.
type Catalogo interface {
	// TablasBase lista las tablas base (sin vistas ni tablas de sistema) del esquema.
	TablasBase(ctx context.Context, schema string) ([]string, error)
	// Columnas devuelve las columnas de la tabla ordenadas por posición ordinal.
	Columnas(ctx context.Context, schema, table string) ([]ColumnaCatalogo, error)
}
