package consultas

import "github.com/udistrital/observatorio_mid/internal/backend"

// Tipos de predicado disponibles para un filtro.
const (
	Igual  = backend.OpIgual
	Patron = backend.OpPatron
	Desde  = backend.OpDesde
	Hasta  = backend.OpHasta
)

// Filtro asocia un parámetro de consulta a un predicado sobre una columna.
// Todos lista los valores centinela que equivalen a no filtrar.
type Filtro struct {
	Parametro string           `json:"parametro"`
	Tipo      backend.Operator `json:"tipo"`
	Columna   string           `json:"columna"`
	Todos     []string         `json:"todos,omitempty"`
}

// Orden es el ordenamiento fijo de un recurso.
type Orden struct {
	Columna string `json:"columna"`
	Desc    bool   `json:"desc"`
}

// Recurso es un conjunto de datos expuesto por un endpoint de listado.
type Recurso struct {
	Nombre  string   `json:"nombre"`
	Tabla   string   `json:"tabla"`
	Filtros []Filtro `json:"filtros"`
	Orden   *Orden   `json:"orden,omitempty"`
	Limite  int      `json:"limite,omitempty"`
}

// LimiteExplorador acota la búsqueda libre de carreras.
const LimiteExplorador = 100

// Recursos es la tabla de configuración de todos los listados. Agregar un
// recurso es agregar una fila aquí.
var Recursos = []Recurso{
	{
		Nombre: "tendencias-ocupacionales",
		Tabla:  "tendencias_ocupacionales",
		Filtros: []Filtro{
			{Parametro: "fechaInicio", Tipo: Desde, Columna: "fecha"},
			{Parametro: "fechaFin", Tipo: Hasta, Columna: "fecha"},
			{Parametro: "ocupacion", Tipo: Igual, Columna: "ocupacion"},
			{Parametro: "region", Tipo: Igual, Columna: "region"},
		},
		Orden: &Orden{Columna: "fecha"},
	},
	{
		Nombre: "analisis-sectorial",
		Tabla:  "analisis_sectorial",
		Filtros: []Filtro{
			{Parametro: "sector", Tipo: Igual, Columna: "sector"},
			{Parametro: "region", Tipo: Igual, Columna: "region"},
		},
	},
	{
		Nombre: "tendencias-sector",
		Tabla:  "tendencias_sector",
		Filtros: []Filtro{
			{Parametro: "sector", Tipo: Igual, Columna: "sector", Todos: []string{"todos"}},
			{Parametro: "fechaInicio", Tipo: Desde, Columna: "fecha"},
			{Parametro: "fechaFin", Tipo: Hasta, Columna: "fecha"},
			{Parametro: "region", Tipo: Igual, Columna: "region", Todos: []string{"todas"}},
		},
		Orden: &Orden{Columna: "fecha"},
	},
	{
		Nombre: "brechas-genero",
		Tabla:  "brechas_genero",
		Filtros: []Filtro{
			{Parametro: "area", Tipo: Igual, Columna: "area"},
			{Parametro: "region", Tipo: Igual, Columna: "region"},
		},
	},
	{
		Nombre: "explorador-carreras",
		Tabla:  "carreras",
		Filtros: []Filtro{
			{Parametro: "carrera", Tipo: Patron, Columna: "nombre_carrera"},
			{Parametro: "area", Tipo: Igual, Columna: "area"},
			{Parametro: "institucion", Tipo: Igual, Columna: "institucion"},
			{Parametro: "tipo_inst", Tipo: Igual, Columna: "tipo_institucion"},
			{Parametro: "region", Tipo: Igual, Columna: "region"},
		},
		Limite: LimiteExplorador,
	},
	{
		Nombre: "analisis-areas",
		Tabla:  "analisis_areas",
		Filtros: []Filtro{
			{Parametro: "area", Tipo: Igual, Columna: "area"},
		},
		Orden: &Orden{Columna: "matricula_total", Desc: true},
	},
	{
		Nombre: "distribucion-institucional",
		Tabla:  "distribucion_institucional",
		Filtros: []Filtro{
			{Parametro: "tipo_inst", Tipo: Igual, Columna: "tipo_institucion"},
			{Parametro: "region", Tipo: Igual, Columna: "region"},
		},
		Orden: &Orden{Columna: "matricula_total", Desc: true},
	},
	{
		Nombre: "brechas-salariales",
		Tabla:  "brechas_salariales",
		Filtros: []Filtro{
			{Parametro: "area", Tipo: Igual, Columna: "area"},
			{Parametro: "region", Tipo: Igual, Columna: "region"},
			{Parametro: "carrera", Tipo: Patron, Columna: "nombre_carrera"},
		},
		Orden:  &Orden{Columna: "brecha_porcentual", Desc: true},
		Limite: 500,
	},
}
