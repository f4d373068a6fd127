package esquema

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udistrital/observatorio_mid/helpers"
	"github.com/udistrital/observatorio_mid/models"
	"github.com/udistrital/observatorio_mid/models/requestresponse"
)

type catalogoFalso struct {
	tablas   []string
	columnas map[string][]ColumnaCatalogo
	fallas   map[string]error
	retrasos map[string]time.Duration

	mu      sync.Mutex
	schemas []string
}

func (c *catalogoFalso) TablasBase(ctx context.Context, schema string) ([]string, error) {
	c.mu.Lock()
	c.schemas = append(c.schemas, schema)
	c.mu.Unlock()
	if err := c.fallas[""]; err != nil {
		return nil, err
	}
	return c.tablas, nil
}

func (c *catalogoFalso) Columnas(ctx context.Context, schema, table string) ([]ColumnaCatalogo, error) {
	if d := c.retrasos[table]; d > 0 {
		time.Sleep(d)
	}
	if err := c.fallas[table]; err != nil {
		return nil, err
	}
	return c.columnas[table], nil
}

func ptrInt(n int) *int { return &n }

func ptrStr(s string) *string { return &s }

func TestListTablesContrato(t *testing.T) {
	cat := &catalogoFalso{
		tablas: []string{"T1"},
		columnas: map[string][]ColumnaCatalogo{
			"T1": {
				{ColumnName: "id", DataType: "integer", UdtName: "int", IsNullable: "NO", IsIdentity: "YES", OrdinalPosition: 1},
				{ColumnName: "name", DataType: "character varying", UdtName: "varchar", IsNullable: "YES", CharacterMaximumLength: ptrInt(50), IsIdentity: "NO", OrdinalPosition: 2},
			},
		},
	}

	tables, err := NewIntrospector(cat, "").ListTables(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"public"}, cat.schemas)

	assert.Equal(t, []models.TableDescriptor{{
		Name: "T1",
		Columns: []models.ColumnDescriptor{
			{Name: "id", Type: "int", Nullable: false, IsIdentity: true},
			{Name: "name", Type: "varchar(50)", Nullable: true, MaxLength: ptrInt(50), IsIdentity: false},
		},
	}}, tables)

	g := goldie.New(t)
	g.AssertJson(t, "esquema_t1", requestresponse.SchemaResponse{Status: "ok", Tables: tables})
}

func TestColumnType(t *testing.T) {
	cases := []struct {
		name string
		col  ColumnaCatalogo
		want string
	}{
		{"arreglo", ColumnaCatalogo{DataType: "ARRAY", UdtName: "_text"}, "text[]"},
		{"arreglo de enteros", ColumnaCatalogo{DataType: "ARRAY", UdtName: "_int4"}, "int4[]"},
		{"con largo", ColumnaCatalogo{DataType: "character varying", UdtName: "varchar", CharacterMaximumLength: ptrInt(255)}, "varchar(255)"},
		{"sin udt", ColumnaCatalogo{DataType: "numeric"}, "numeric"},
		{"fecha", ColumnaCatalogo{DataType: "date", UdtName: "date"}, "date"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, columnType(tc.col))
		})
	}
}

func TestDescribeColumnDefault(t *testing.T) {
	d := describeColumn(ColumnaCatalogo{
		ColumnName:    "creado",
		DataType:      "timestamp with time zone",
		UdtName:       "timestamptz",
		IsNullable:    "NO",
		ColumnDefault: ptrStr("now()"),
		IsIdentity:    "NO",
	})
	require.NotNil(t, d.Default)
	assert.Equal(t, "now()", *d.Default)
	assert.Nil(t, d.MaxLength)
	assert.False(t, d.Nullable)
}

func TestListTablesOrdenDeterministico(t *testing.T) {
	// La primera tabla responde última.
	cat := &catalogoFalso{
		tablas: []string{"a", "b", "c"},
		columnas: map[string][]ColumnaCatalogo{
			"a": {{ColumnName: "a1", UdtName: "text", IsNullable: "YES"}},
			"b": {{ColumnName: "b1", UdtName: "text", IsNullable: "YES"}},
			"c": {{ColumnName: "c1", UdtName: "text", IsNullable: "YES"}, {ColumnName: "c2", UdtName: "int4", IsNullable: "NO"}},
		},
		retrasos: map[string]time.Duration{"a": 30 * time.Millisecond, "b": 10 * time.Millisecond},
	}

	tables, err := NewIntrospector(cat, "public").ListTables(context.Background())
	require.NoError(t, err)
	require.Len(t, tables, 3)
	assert.Equal(t, "a", tables[0].Name)
	assert.Equal(t, "b", tables[1].Name)
	assert.Equal(t, "c", tables[2].Name)
	assert.Equal(t, "c1", tables[2].Columns[0].Name)
	assert.Equal(t, "c2", tables[2].Columns[1].Name)
}

func TestListTablesFallaCompleta(t *testing.T) {
	cat := &catalogoFalso{
		tablas: []string{"a", "b"},
		columnas: map[string][]ColumnaCatalogo{
			"a": {{ColumnName: "a1", UdtName: "text"}},
		},
		fallas: map[string]error{"b": errors.New("permission denied for table b")},
	}

	tables, err := NewIntrospector(cat, "public").ListTables(context.Background())
	assert.Nil(t, tables)
	require.Error(t, err)
	assert.True(t, helpers.IsBackendFault(err))
	assert.Equal(t, http.StatusInternalServerError, helpers.AsAppError(err, "").Status)
	assert.Contains(t, err.Error(), "permission denied for table b")
}

func TestListTablesFallaListado(t *testing.T) {
	cat := &catalogoFalso{fallas: map[string]error{"": errors.New("connection refused")}}

	_, err := NewIntrospector(cat, "public").ListTables(context.Background())
	require.Error(t, err)
	assert.Equal(t, "connection refused", err.Error())
}

func TestListTablesCatalogoVacio(t *testing.T) {
	tables, err := NewIntrospector(&catalogoFalso{}, "public").ListTables(context.Background())
	require.NoError(t, err)
	assert.Empty(t, tables)
}
