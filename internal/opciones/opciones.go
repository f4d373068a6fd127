// Package opciones resuelve las listas de valores para los filtros del
// dashboard con una cadena fija de estrategias: catálogo, escaneo derivado y
// lista estática. Nunca devuelve error al llamador.
package opciones

import (
	"context"
	"fmt"
	"net/http"

	"github.com/beego/beego/v2/core/logs"

	"github.com/udistrital/observatorio_mid/helpers"
	"github.com/udistrital/observatorio_mid/internal/backend"
	"github.com/udistrital/observatorio_mid/internal/metrics"
)

// Nombres de las listas publicadas.
const (
	ListaAreas         = "areas"
	ListaInstituciones = "instituciones"
	ListaRegiones      = "regiones"
)

// Lista es una cadena ordenada de estrategias; gana el primer resultado no vacío.
type Lista struct {
	Nombre      string
	Estrategias []Estrategia
}

// Resolver recorre la cadena y devuelve los valores junto al nivel que respondió.
// Un error o una lista vacía pasan al siguiente nivel.
func (l Lista) Resolver(ctx context.Context) ([]string, string) {
	for _, e := range l.Estrategias {
		values, err := e.Valores(ctx)
		if err != nil {
			logs.Warn("opciones %s: nivel %s falló: %v", l.Nombre, e.Nivel(), err)
			continue
		}
		if len(values) == 0 {
			logs.Warn("opciones %s: nivel %s sin valores", l.Nombre, e.Nivel())
			continue
		}
		metrics.OpcionesResueltas.WithLabelValues(l.Nombre, e.Nivel()).Inc()
		return values, e.Nivel()
	}
	logs.Error("opciones %s: ningún nivel devolvió valores", l.Nombre)
	return []string{}, ""
}

// Servicio publica las listas de opciones por nombre.
type Servicio struct {
	listas map[string]Lista
}

// NewServicio arma las listas de áreas, instituciones y regiones sobre store.
func NewServicio(store backend.Store) *Servicio {
	return NewServicioConListas(
		Lista{Nombre: ListaAreas, Estrategias: []Estrategia{
			Primaria{Store: store, Tabla: "areas_conocimiento", Columna: "nombre"},
			Derivada{Store: store, Tabla: "carreras", Columna: "area"},
			Estatica(AreasConocidas),
		}},
		Lista{Nombre: ListaInstituciones, Estrategias: []Estrategia{
			Primaria{Store: store, Tabla: "instituciones", Columna: "nombre"},
			Derivada{Store: store, Tabla: "carreras", Columna: "institucion"},
			Estatica(InstitucionesConocidas),
		}},
		Lista{Nombre: ListaRegiones, Estrategias: []Estrategia{
			Primaria{Store: store, Tabla: "regiones", Columna: "nombre"},
			Derivada{Store: store, Tabla: "carreras", Columna: "region"},
			Estatica(RegionesConocidas),
		}},
	)
}

// NewServicioConListas permite inyectar cadenas arbitrarias.
func NewServicioConListas(listas ...Lista) *Servicio {
	s := &Servicio{listas: make(map[string]Lista, len(listas))}
	for _, l := range listas {
		s.listas[l.Nombre] = l
	}
	return s
}

// Opciones devuelve la lista pedida. Sólo falla si la lista no existe.
func (s *Servicio) Opciones(ctx context.Context, nombre string) ([]string, error) {
	l, ok := s.listas[nombre]
	if !ok {
		return nil, helpers.NewAppError(http.StatusNotFound, fmt.Sprintf("lista de opciones %q no existe", nombre), nil)
	}
	values, _ := l.Resolver(ctx)
	return values, nil
}
