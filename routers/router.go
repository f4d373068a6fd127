package routers

import (
	"github.com/udistrital/observatorio_mid/controllers/errorhandler"
	internalcontrollers "github.com/udistrital/observatorio_mid/internal/controllers"
	"github.com/udistrital/observatorio_mid/internal/consultas"
	"github.com/udistrital/observatorio_mid/internal/esquema"
	"github.com/udistrital/observatorio_mid/internal/opciones"
	"github.com/udistrital/observatorio_mid/internal/salud"

	beego "github.com/beego/beego/v2/server/web"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Dependencias agrupa los servicios que se inyectan en los controladores.
// Introspector puede ser nil cuando el backend no expone catálogo.
type Dependencias struct {
	Consultas    *consultas.Router
	Opciones     *opciones.Servicio
	Introspector *esquema.Introspector
	Salud        *salud.Servicio
}

// Init registra el manejador de errores y las rutas en la aplicación de beego.
func Init(deps Dependencias) {
	// Manejador de errores
	beego.ErrorController(&errorhandler.ErrorHandlerController{})

	Registrar(beego.BeeApp.Handlers, deps)
}

// Registrar agrega las rutas al registro indicado.
func Registrar(h *beego.ControllerRegister, deps Dependencias) {
	for _, rec := range deps.Consultas.Recursos() {
		ctrl := &internalcontrollers.ConsultasController{Consultas: deps.Consultas, Recurso: rec.Nombre}
		h.Add("/v1/"+rec.Nombre, ctrl, beego.WithRouterMethods(ctrl, "get:GetListado"))
	}

	consultasCtrl := &internalcontrollers.ConsultasController{Consultas: deps.Consultas}
	h.Add("/v1/consultas", consultasCtrl, beego.WithRouterMethods(consultasCtrl, "post:PostConsulta"))
	h.Add("/v1/recursos", consultasCtrl, beego.WithRouterMethods(consultasCtrl, "get:GetRecursos"))

	for _, lista := range []string{opciones.ListaAreas, opciones.ListaInstituciones, opciones.ListaRegiones} {
		ctrl := &internalcontrollers.OpcionesController{Opciones: deps.Opciones, Lista: lista}
		h.Add("/v1/opciones/"+lista, ctrl, beego.WithRouterMethods(ctrl, "get:GetOpciones"))
	}

	esquemaCtrl := &internalcontrollers.EsquemaController{Introspector: deps.Introspector}
	h.Add("/v1/esquema", esquemaCtrl, beego.WithRouterMethods(esquemaCtrl, "get:GetEsquema"))

	saludCtrl := &internalcontrollers.SaludController{Salud: deps.Salud}
	h.Add("/v1/salud", saludCtrl, beego.WithRouterMethods(saludCtrl, "get:GetSalud"))

	h.Handler("/metrics", promhttp.Handler())
}
