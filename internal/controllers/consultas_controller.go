package controllers

import (
	"net/http"

	rootcontrollers "github.com/udistrital/observatorio_mid/controllers"
	"github.com/udistrital/observatorio_mid/helpers"
	"github.com/udistrital/observatorio_mid/internal/consultas"
	internaldto "github.com/udistrital/observatorio_mid/internal/dto"
	internalhelpers "github.com/udistrital/observatorio_mid/internal/helpers"
	"github.com/udistrital/observatorio_mid/internal/metrics"
)

// ConsultasController expone los listados filtrables. Se registra una
// instancia por recurso; Recurso queda fijo en el registro.
type ConsultasController struct {
	rootcontrollers.BaseController
	Consultas *consultas.Router
	Recurso   string
}

// GetListado responde {data} con las filas del recurso o {error} si el backend falla.
// GET /v1/<recurso>?<filtros>
func (c *ConsultasController) GetListado() {
	rec, ok := c.Consultas.Recurso(c.Recurso)
	if !ok {
		c.Respond(helpers.Fail(http.StatusNotFound, "recurso no encontrado"))
		return
	}
	c.fetch(rec.Nombre, internalhelpers.Criterios(c.Ctx, rec))
}

// PostConsulta ejecuta la consulta de un recurso indicado en el cuerpo.
// POST /v1/consultas {"recurso": "...", "filtros": {...}}
func (c *ConsultasController) PostConsulta() {
	var body internaldto.ConsultaRequest
	if err := c.ParseJSONBody(&body); err != nil {
		c.RespondError(err, "cuerpo inválido")
		return
	}
	if err := internalhelpers.Validate(body); err != nil {
		c.RespondError(err, "cuerpo inválido")
		return
	}
	c.fetch(body.Recurso, consultas.Criterios(body.Filtros))
}

// GetRecursos describe los recursos y sus filtros.
// GET /v1/recursos
func (c *ConsultasController) GetRecursos() {
	c.RespondData(c.Consultas.Recursos())
}

func (c *ConsultasController) fetch(recurso string, criterios consultas.Criterios) {
	rows, err := c.Consultas.Fetch(c.Ctx.Request.Context(), recurso, criterios)
	if err != nil {
		if helpers.IsBackendFault(err) {
			metrics.FallasBackend.WithLabelValues(recurso).Inc()
		}
		c.RespondError(err, "error consultando "+recurso)
		return
	}
	c.RespondData(rows)
}
