package consultas

import (
	"strings"

	"github.com/udistrital/observatorio_mid/internal/backend"
)

// Criterios son los parámetros de filtro recibidos, nombre -> valor.
type Criterios map[string]string

// Parametros devuelve los nombres de parámetro reconocidos, en orden de declaración.
func (r Recurso) Parametros() []string {
	out := make([]string, 0, len(r.Filtros))
	seen := map[string]bool{}
	for _, f := range r.Filtros {
		if !seen[f.Parametro] {
			seen[f.Parametro] = true
			out = append(out, f.Parametro)
		}
	}
	return out
}

// Query traduce los criterios a la consulta del backend. Los parámetros no
// reconocidos se ignoran; los ausentes, vacíos o centinela no generan predicado.
func (r Recurso) Query(criterios Criterios) backend.Query {
	q := backend.Query{
		Table: r.Tabla,
		Limit: r.Limite,
	}
	for _, f := range r.Filtros {
		value, ok := f.valor(criterios)
		if !ok {
			continue
		}
		q.Where = append(q.Where, backend.Condition{Column: f.Columna, Op: f.Tipo, Value: value})
	}
	if r.Orden != nil {
		q.Order = &backend.Order{Column: r.Orden.Columna, Desc: r.Orden.Desc}
	}
	return q
}

func (f Filtro) valor(criterios Criterios) (string, bool) {
	value := strings.TrimSpace(criterios[f.Parametro])
	if value == "" {
		return "", false
	}
	for _, sentinel := range f.Todos {
		if strings.EqualFold(value, sentinel) {
			return "", false
		}
	}
	return value, true
}
