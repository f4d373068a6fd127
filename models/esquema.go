package models

// TableDescriptor describe una tabla base y sus columnas en orden ordinal.
type TableDescriptor struct {
	Name    string             `json:"name" yaml:"name"`
	Columns []ColumnDescriptor `json:"columns" yaml:"columns"`
}

// ColumnDescriptor es el contrato público de una columna.
type ColumnDescriptor struct {
	Name       string  `json:"name" yaml:"name"`
	Type       string  `json:"type" yaml:"type"`
	Nullable   bool    `json:"nullable" yaml:"nullable"`
	Default    *string `json:"default,omitempty" yaml:"default,omitempty"`
	MaxLength  *int    `json:"maxLength,omitempty" yaml:"maxLength,omitempty"`
	IsIdentity bool    `json:"isIdentity" yaml:"isIdentity"`
}
