// Package consultas traduce parámetros HTTP a consultas filtradas y ordenadas
// sobre el backend, según una tabla fija de recursos.
package consultas

import (
	"context"
	"fmt"
	"net/http"

	"github.com/udistrital/observatorio_mid/helpers"
	"github.com/udistrital/observatorio_mid/internal/backend"
)

// Router resuelve recursos por nombre y delega la lectura al backend.
type Router struct {
	store    backend.Store
	recursos []Recurso
	index    map[string]Recurso
}

// NewRouter construye el router. Si recursos es nil se usa la tabla Recursos.
func NewRouter(store backend.Store, recursos []Recurso) *Router {
	if recursos == nil {
		recursos = Recursos
	}
	index := make(map[string]Recurso, len(recursos))
	for _, r := range recursos {
		index[r.Nombre] = r
	}
	return &Router{store: store, recursos: recursos, index: index}
}

// Recursos lista los recursos configurados en orden de declaración.
func (r *Router) Recursos() []Recurso {
	return append([]Recurso(nil), r.recursos...)
}

// Recurso busca un recurso por nombre.
func (r *Router) Recurso(nombre string) (Recurso, bool) {
	rec, ok := r.index[nombre]
	return rec, ok
}

// Fetch ejecuta la consulta del recurso. Los errores del backend se devuelven
// como BackendFault (500) con el mensaje original, sin reintentos.
func (r *Router) Fetch(ctx context.Context, nombre string, criterios Criterios) ([]backend.Row, error) {
	rec, ok := r.index[nombre]
	if !ok {
		return nil, helpers.NewAppError(http.StatusNotFound, fmt.Sprintf("recurso %q no existe", nombre), nil)
	}
	rows, err := r.store.Select(ctx, rec.Query(criterios))
	if err != nil {
		return nil, helpers.NewBackendFault(http.StatusInternalServerError, err)
	}
	if rows == nil {
		rows = []backend.Row{}
	}
	return rows, nil
}
