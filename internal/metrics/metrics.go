// Package metrics registra las métricas propias del servicio en el registro
// por defecto de Prometheus, junto a las del filtro de beego.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// OpcionesResueltas cuenta qué nivel de la cadena resolvió cada lista de opciones.
var OpcionesResueltas = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "observatorio",
	Subsystem: "opciones",
	Name:      "resueltas_total",
	Help:      "Listas de opciones de filtro servidas, por lista y nivel (primaria, derivada, estatica).",
}, []string{"lista", "nivel"})

// FallasBackend cuenta los errores del backend por operación.
var FallasBackend = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "observatorio",
	Name:      "fallas_backend_total",
	Help:      "Errores reportados por el backend de datos, por operación.",
}, []string{"operacion"})
