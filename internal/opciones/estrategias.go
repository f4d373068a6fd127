package opciones

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/udistrital/observatorio_mid/internal/backend"
)

// Niveles de la cadena de degradación.
const (
	NivelPrimaria = "primaria"
	NivelDerivada = "derivada"
	NivelEstatica = "estatica"
)

// Estrategia es una forma de obtener los valores de una lista de opciones.
type Estrategia interface {
	Nivel() string
	Valores(ctx context.Context) ([]string, error)
}

// Primaria lee la columna de una tabla de catálogo dedicada, ordenada por esa columna.
type Primaria struct {
	Store   backend.Store
	Tabla   string
	Columna string
}

func (p Primaria) Nivel() string { return NivelPrimaria }

func (p Primaria) Valores(ctx context.Context) ([]string, error) {
	rows, err := p.Store.Select(ctx, backend.Query{
		Table:   p.Tabla,
		Columns: []string{p.Columna},
		Order:   &backend.Order{Column: p.Columna},
	})
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(rows))
	for _, row := range rows {
		if v, ok := texto(row[p.Columna]); ok {
			out = append(out, v)
		}
	}
	return out, nil
}

// Derivada recorre una columna de una tabla de hechos y deduplica en memoria.
type Derivada struct {
	Store   backend.Store
	Tabla   string
	Columna string
}

func (d Derivada) Nivel() string { return NivelDerivada }

func (d Derivada) Valores(ctx context.Context) ([]string, error) {
	rows, err := d.Store.Select(ctx, backend.Query{
		Table:   d.Tabla,
		Columns: []string{d.Columna},
	})
	if err != nil {
		return nil, err
	}
	set := make(map[string]struct{}, len(rows))
	for _, row := range rows {
		if v, ok := texto(row[d.Columna]); ok {
			set[v] = struct{}{}
		}
	}
	out := make([]string, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	sort.Strings(out)
	return out, nil
}

// Estatica es la lista conocida de último recurso. Nunca falla.
type Estatica []string

func (e Estatica) Nivel() string { return NivelEstatica }

func (e Estatica) Valores(context.Context) ([]string, error) {
	return append([]string(nil), e...), nil
}

func texto(value interface{}) (string, bool) {
	var s string
	switch v := value.(type) {
	case nil:
		return "", false
	case string:
		s = v
	case []byte:
		s = string(v)
	default:
		s = fmt.Sprint(v)
	}
	s = strings.TrimSpace(s)
	return s, s != ""
}
