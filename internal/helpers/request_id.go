package helpers

import (
	"strings"

	"github.com/beego/beego/v2/server/web/context"
)

// HeaderRequestID es la cabecera de correlación propagada en la respuesta.
const HeaderRequestID = "X-Request-Id"

const ctxRequestIDKey = "__observatorio_mid_request_id"

// SetRequestID guarda el id de correlación en el contexto del request.
func SetRequestID(ctx *context.Context, id string) {
	ctx.Input.SetData(ctxRequestIDKey, id)
}

// RequestID devuelve el id de correlación del request, o "-" si no hay.
func RequestID(ctx *context.Context) string {
	if ctx == nil || ctx.Input == nil {
		return "-"
	}
	if v, ok := ctx.Input.GetData(ctxRequestIDKey).(string); ok && v != "" {
		return v
	}
	if v := strings.TrimSpace(ctx.Input.Header(HeaderRequestID)); v != "" {
		return v
	}
	return "-"
}
