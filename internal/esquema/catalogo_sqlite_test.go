package esquema

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udistrital/observatorio_mid/internal/backend/backendtest"
	"github.com/udistrital/observatorio_mid/models"
)

func TestCatalogoSQLite(t *testing.T) {
	store := backendtest.NewSQLite(t,
		`CREATE TABLE regiones (id INTEGER PRIMARY KEY, nombre VARCHAR(80) NOT NULL, codigo TEXT DEFAULT 'XX')`,
		`CREATE TABLE carreras (id INTEGER PRIMARY KEY, nombre_carrera TEXT)`,
		`CREATE VIEW v_regiones AS SELECT nombre FROM regiones`,
	)
	intro := NewIntrospector(NewCatalogoSQLite(store.DB()), "main")

	tables, err := intro.ListTables(context.Background())
	require.NoError(t, err)
	require.Len(t, tables, 2)

	assert.Equal(t, "carreras", tables[0].Name)
	assert.Equal(t, "regiones", tables[1].Name)
	assert.Equal(t, []models.ColumnDescriptor{
		{Name: "id", Type: "integer", Nullable: false, IsIdentity: true},
		{Name: "nombre", Type: "varchar(80)", Nullable: false, MaxLength: ptrInt(80)},
		{Name: "codigo", Type: "text", Nullable: true, Default: ptrStr("'XX'")},
	}, tables[1].Columns)
}

func TestSplitSQLiteType(t *testing.T) {
	base, n := splitSQLiteType("VARCHAR(50)")
	assert.Equal(t, "varchar", base)
	require.NotNil(t, n)
	assert.Equal(t, 50, *n)

	base, n = splitSQLiteType("decimal(10,2)")
	assert.Equal(t, "decimal(10,2)", base)
	assert.Nil(t, n)

	base, n = splitSQLiteType(" Text ")
	assert.Equal(t, "text", base)
	assert.Nil(t, n)
}
