package errorhandler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/udistrital/observatorio_mid/models/requestresponse"

	"github.com/beego/beego/v2/core/logs"
	beego "github.com/beego/beego/v2/server/web"
	"github.com/beego/beego/v2/server/web/context"
)

// ErrorHandlerController se registra en el router para gestionar 404 y otros fallos.
type ErrorHandlerController struct {
	beego.Controller
}

// Error404 centraliza la respuesta cuando la ruta no existe.
func (c *ErrorHandlerController) Error404() {
	method := c.Ctx.Request.Method
	path := c.Ctx.Request.URL.Path
	message := fmt.Sprintf("nomatch|%s|%s", method, path)

	c.Ctx.Output.SetStatus(http.StatusNotFound)
	c.Data["json"] = requestresponse.NewError(message)
	_ = c.ServeJSON()
}

// Error500 cubre los abortos internos de beego.
func (c *ErrorHandlerController) Error500() {
	c.Ctx.Output.SetStatus(http.StatusInternalServerError)
	c.Data["json"] = requestresponse.NewError("error interno del servidor")
	_ = c.ServeJSON()
}

// RecoverPanic se instala como beego.BConfig.RecoverFunc: captura pánicos y
// entrega la respuesta {error} con status 500.
func RecoverPanic(ctx *context.Context, cfg *beego.Config) {
	if r := recover(); r != nil {
		if r == beego.ErrAbort {
			return
		}
		logs.Error("panic:", r)
		debug.PrintStack()

		appName := cfg.AppName
		if appName == "" {
			appName = "observatorio_mid"
		}
		message := fmt.Sprintf("Error service %s: An internal server error occurred.", appName)
		message += fmt.Sprintf(" Request Info: URL: %s, Method: %s", ctx.Request.URL, ctx.Request.Method)

		body, _ := json.Marshal(requestresponse.NewError(message))
		ctx.Output.Header("Content-Type", "application/json; charset=utf-8")
		ctx.ResponseWriter.WriteHeader(http.StatusInternalServerError)
		_, _ = ctx.ResponseWriter.Write(body)
	}
}
