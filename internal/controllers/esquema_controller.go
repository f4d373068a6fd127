package controllers

import (
	"net/http"

	rootcontrollers "github.com/udistrital/observatorio_mid/controllers"
	"github.com/udistrital/observatorio_mid/helpers"
	"github.com/udistrital/observatorio_mid/internal/esquema"
	"github.com/udistrital/observatorio_mid/internal/metrics"
	"github.com/udistrital/observatorio_mid/models/requestresponse"
)

// EsquemaController publica el catálogo del backend.
type EsquemaController struct {
	rootcontrollers.BaseController
	Introspector *esquema.Introspector
}

// GetEsquema responde {status:"ok", tables} o {error}.
// GET /v1/esquema
func (c *EsquemaController) GetEsquema() {
	if c.Introspector == nil {
		c.RespondError(helpers.NewAppError(http.StatusInternalServerError, "el backend configurado no expone catálogo", nil), "")
		return
	}
	tables, err := c.Introspector.ListTables(c.Ctx.Request.Context())
	if err != nil {
		metrics.FallasBackend.WithLabelValues("esquema").Inc()
		c.RespondError(err, "error consultando el catálogo")
		return
	}
	if len(tables) == 0 {
		c.RespondError(helpers.NewAppError(http.StatusNotFound, "no se encontraron tablas en el esquema "+c.Introspector.Schema(), nil), "")
		return
	}
	c.WriteJSON(http.StatusOK, requestresponse.SchemaResponse{Status: "ok", Tables: tables})
}
