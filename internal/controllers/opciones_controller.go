package controllers

import (
	"net/http"

	rootcontrollers "github.com/udistrital/observatorio_mid/controllers"
	"github.com/udistrital/observatorio_mid/internal/opciones"
)

// OpcionesController publica las listas de valores para los filtros.
type OpcionesController struct {
	rootcontrollers.BaseController
	Opciones *opciones.Servicio
	Lista    string
}

// GetOpciones responde un arreglo JSON de strings, siempre con status 200.
// GET /v1/opciones/<lista>
func (c *OpcionesController) GetOpciones() {
	values, err := c.Opciones.Opciones(c.Ctx.Request.Context(), c.Lista)
	if err != nil {
		c.RespondError(err, "lista no encontrada")
		return
	}
	c.WriteJSON(http.StatusOK, values)
}
