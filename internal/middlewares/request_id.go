package middlewares

import (
	"strings"
	"sync"

	"github.com/google/uuid"

	internalhelpers "github.com/udistrital/observatorio_mid/internal/helpers"

	beego "github.com/beego/beego/v2/server/web"
	"github.com/beego/beego/v2/server/web/context"
)

var (
	requestIDOnce sync.Once
)

// UseRequestID registra el filtro de correlación una sola vez.
func UseRequestID() {
	requestIDOnce.Do(func() {
		beego.InsertFilter("/*", beego.BeforeRouter, RequestIDFilter)
	})
}

// RequestIDFilter reutiliza X-Request-Id entrante o genera uno nuevo, y lo devuelve en la respuesta.
func RequestIDFilter(ctx *context.Context) {
	id := strings.TrimSpace(ctx.Input.Header(internalhelpers.HeaderRequestID))
	if id == "" {
		id = uuid.NewString()
	}
	internalhelpers.SetRequestID(ctx, id)
	ctx.Output.Header(internalhelpers.HeaderRequestID, id)
}
