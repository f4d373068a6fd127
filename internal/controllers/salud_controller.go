package controllers

import (
	"fmt"
	"net/http"
	"time"

	rootcontrollers "github.com/udistrital/observatorio_mid/controllers"
	"github.com/udistrital/observatorio_mid/helpers"
	internalhelpers "github.com/udistrital/observatorio_mid/internal/helpers"
	"github.com/udistrital/observatorio_mid/internal/metrics"
	"github.com/udistrital/observatorio_mid/internal/salud"
	"github.com/udistrital/observatorio_mid/models/requestresponse"

	"github.com/beego/beego/v2/core/logs"
)

// SaludController expone el chequeo de disponibilidad.
type SaludController struct {
	rootcontrollers.BaseController
	Salud *salud.Servicio
}

// GetSalud responde 200 si el backend contesta, 503 si falla y 500 ante un error inesperado.
// GET /v1/salud
func (c *SaludController) GetSalud() {
	defer func() {
		if r := recover(); r != nil {
			logs.Error("[%s] salud: panic: %v", internalhelpers.RequestID(c.Ctx), r)
			c.writeError(http.StatusInternalServerError, fmt.Sprint(r))
		}
	}()

	res, err := c.Salud.Check(c.Ctx.Request.Context())
	if err != nil {
		appErr := helpers.AsAppError(err, "error inesperado")
		if appErr.Kind == helpers.BackendFault {
			metrics.FallasBackend.WithLabelValues("salud").Inc()
		}
		logs.Error("[%s] salud: %v", internalhelpers.RequestID(c.Ctx), err)
		c.writeError(appErr.Status, appErr.Message)
		return
	}

	c.WriteJSON(http.StatusOK, requestresponse.HealthResponse{
		Status:       "ok",
		Message:      res.Message,
		Timestamp:    res.Timestamp.Format(time.RFC3339),
		ResponseTime: fmt.Sprintf("%dms", res.ResponseTime.Milliseconds()),
		Environment:  res.Environment,
	})
}

func (c *SaludController) writeError(status int, message string) {
	if message == "" {
		message = "error inesperado"
	}
	c.WriteJSON(status, requestresponse.HealthResponse{
		Status:    "error",
		Error:     message,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
