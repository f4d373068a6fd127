package helpers

import (
	"strings"

	"github.com/beego/beego/v2/server/web/context"

	"github.com/udistrital/observatorio_mid/internal/consultas"
)

// Criterios extrae de la query string los parámetros reconocidos por el
// recurso. Sólo se incluyen los presentes y no vacíos.
func Criterios(ctx *context.Context, rec consultas.Recurso) consultas.Criterios {
	out := consultas.Criterios{}
	if ctx == nil || ctx.Input == nil {
		return out
	}
	for _, name := range rec.Parametros() {
		if raw := strings.TrimSpace(ctx.Input.Query(name)); raw != "" {
			out[name] = raw
		}
	}
	return out
}
