// Package esquema publica el catálogo del backend (tablas base y columnas)
// con un contrato estable, independiente del formato nativo del catálogo.
package esquema

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/udistrital/observatorio_mid/helpers"
	"github.com/udistrital/observatorio_mid/models"
)

// Introspector recorre el catálogo de un esquema. No pagina: está pensado para
// catálogos de decenas de tablas.
type Introspector struct {
	catalogo Catalogo
	schema   string
	// Paralelismo máximo de las consultas de columnas; <= 0 sin tope.
	paralelismo int
}

// NewIntrospector crea el introspector para schema.
func NewIntrospector(catalogo Catalogo, schema string) *Introspector {
	if schema == "" {
		schema = "public"
	}
	return &Introspector{catalogo: catalogo, schema: schema, paralelismo: 8}
}

// Schema devuelve el esquema inspeccionado.
func (i *Introspector) Schema() string {
	return i.schema
}

// ListTables devuelve todas las tablas con sus columnas, o un único error si
// cualquier consulta falla. El resultado queda ordenado por tabla y luego por
// posición ordinal, sin importar el orden de llegada de las respuestas.
func (i *Introspector) ListTables(ctx context.Context) ([]models.TableDescriptor, error) {
	tables, err := i.catalogo.TablasBase(ctx, i.schema)
	if err != nil {
		return nil, helpers.NewBackendFault(http.StatusInternalServerError, err)
	}

	out := make([]models.TableDescriptor, len(tables))
	g, gctx := errgroup.WithContext(ctx)
	if i.paralelismo > 0 {
		g.SetLimit(i.paralelismo)
	}
	for idx, table := range tables {
		idx, table := idx, table
		g.Go(func() error {
			cols, err := i.catalogo.Columnas(gctx, i.schema, table)
			if err != nil {
				return fmt.Errorf("%s: %w", table, err)
			}
			out[idx] = models.TableDescriptor{Name: table, Columns: describeColumns(cols)}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, helpers.NewBackendFault(http.StatusInternalServerError, err)
	}
	return out, nil
}

func describeColumns(cols []ColumnaCatalogo) []models.ColumnDescriptor {
	out := make([]models.ColumnDescriptor, 0, len(cols))
	for _, c := range cols {
		out = append(out, describeColumn(c))
	}
	return out
}

func describeColumn(c ColumnaCatalogo) models.ColumnDescriptor {
	return models.ColumnDescriptor{
		Name:       c.ColumnName,
		Type:       columnType(c),
		Nullable:   strings.EqualFold(c.IsNullable, "YES"),
		Default:    c.ColumnDefault,
		MaxLength:  c.CharacterMaximumLength,
		IsIdentity: strings.EqualFold(c.IsIdentity, "YES"),
	}
}

// columnType usa el nombre nativo (udt_name), con notación de arreglo y largo
// cuando aplica: text[], varchar(255).
func columnType(c ColumnaCatalogo) string {
	if strings.EqualFold(c.DataType, "ARRAY") {
		return strings.TrimPrefix(c.UdtName, "_") + "[]"
	}
	base := c.UdtName
	if base == "" {
		base = c.DataType
	}
	if c.CharacterMaximumLength != nil {
		return fmt.Sprintf("%s(%d)", base, *c.CharacterMaximumLength)
	}
	return base
}
