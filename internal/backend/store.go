// Package backend expone la capacidad de "tabla consultable" (select, filtro,
// orden, límite) sobre el backend relacional administrado.
package backend

import "context"

// Operator es la comparación aplicada por una condición.
type Operator int

const (
	// OpIgual compara por igualdad exacta.
	OpIgual Operator = iota
	// OpPatron busca la subcadena sin distinguir mayúsculas.
	OpPatron
	// OpDesde es la cota inferior inclusiva.
	OpDesde
	// OpHasta es la cota superior inclusiva.
	OpHasta
)

func (o Operator) String() string {
	switch o {
	case OpIgual:
		return "igual"
	case OpPatron:
		return "patron"
	case OpDesde:
		return "desde"
	case OpHasta:
		return "hasta"
	default:
		return "desconocido"
	}
}

// MarshalText publica el operador por nombre en JSON.
func (o Operator) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// Condition es un predicado sobre una columna. Las condiciones de una Query se conjugan.
type Condition struct {
	Column string
	Op     Operator
	Value  string
}

// Order define la columna y dirección del ordenamiento.
type Order struct {
	Column string
	Desc   bool
}

// Query describe una lectura sobre una sola tabla.
type Query struct {
	Table   string
	Columns []string
	Where   []Condition
	Order   *Order
	Limit   int
}

// Row es un registro devuelto por el backend, columna -> valor.
type Row = map[string]interface{}

// Store es el backend de datos. Las implementaciones deben ser seguras para uso concurrente.
type Store interface {
	Select(ctx context.Context, q Query) ([]Row, error)
	Ping(ctx context.Context) error
}
