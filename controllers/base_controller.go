package controllers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/udistrital/observatorio_mid/helpers"
	internalhelpers "github.com/udistrital/observatorio_mid/internal/helpers"

	"github.com/beego/beego/v2/core/logs"
	beego "github.com/beego/beego/v2/server/web"
)

// BaseController centraliza la construcción de respuestas estándar.
type BaseController struct {
	beego.Controller
}

// WriteJSON serializa payload con el status indicado.
func (c *BaseController) WriteJSON(status int, payload interface{}) {
	c.Ctx.Output.SetStatus(status)
	c.Data["json"] = payload
	_ = c.ServeJSON()
}

// Respond escribe un Envelope ya construido.
func (c *BaseController) Respond(env helpers.Envelope) {
	c.WriteJSON(env.Status, env.Body)
}

// RespondData envuelve un payload en {data} con status 200.
func (c *BaseController) RespondData(data interface{}) {
	c.Respond(helpers.Ok(data))
}

// RespondError transforma cualquier error en {error}, registrándolo con el id de correlación.
func (c *BaseController) RespondError(err error, fallback string) {
	appErr := helpers.AsAppError(err, fallback)
	reqID := internalhelpers.RequestID(c.Ctx)
	if appErr.Status >= http.StatusInternalServerError {
		logs.Error("[%s] %s %s -> %d: %v", reqID, c.Ctx.Request.Method, c.Ctx.Request.URL.Path, appErr.Status, err)
	} else {
		logs.Warn("[%s] %s %s -> %d: %v", reqID, c.Ctx.Request.Method, c.Ctx.Request.URL.Path, appErr.Status, err)
	}
	c.Respond(helpers.Fail(appErr.Status, appErr.Message))
}

// ParseJSONBody deserializa el cuerpo de la petición en out.
func (c *BaseController) ParseJSONBody(out interface{}) error {
	raw := c.Ctx.Input.RequestBody

	if len(raw) == 0 && c.Ctx.Request != nil && c.Ctx.Request.Body != nil {
		b, err := io.ReadAll(c.Ctx.Request.Body)
		if err != nil {
			return err
		}
		raw = b

		// cache + reinyectar
		c.Ctx.Input.RequestBody = b
		c.Ctx.Request.Body = io.NopCloser(bytes.NewBuffer(b))
	}

	if len(bytes.TrimSpace(raw)) == 0 {
		return helpers.NewAppError(http.StatusBadRequest, "cuerpo vacío", nil)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return helpers.NewAppError(http.StatusBadRequest, "JSON inválido: "+err.Error(), err)
	}
	return nil
}
