package cli

import (
	"github.com/spf13/cobra"

	"github.com/udistrital/observatorio_mid/controllers/errorhandler"
	"github.com/udistrital/observatorio_mid/internal/consultas"
	"github.com/udistrital/observatorio_mid/internal/esquema"
	"github.com/udistrital/observatorio_mid/internal/middlewares"
	"github.com/udistrital/observatorio_mid/internal/opciones"
	"github.com/udistrital/observatorio_mid/internal/salud"
	"github.com/udistrital/observatorio_mid/routers"
	"github.com/udistrital/observatorio_mid/services"

	"github.com/beego/beego/v2/core/logs"
	beego "github.com/beego/beego/v2/server/web"
	cors "github.com/beego/beego/v2/server/web/filter/cors"
	"github.com/beego/beego/v2/server/web/filter/prometheus"
)

// NewServeCommand crea el comando que levanta la API HTTP.
func NewServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Levanta la API HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe()
		},
	}
}

func runServe() error {
	cfg := services.GetConfig()
	configurarLogs(cfg.LogLevel)

	conn, err := conectar(cfg)
	if err != nil {
		return err
	}
	defer conn.cerrar()

	deps := routers.Dependencias{
		Consultas: consultas.NewRouter(conn.store, nil),
		Opciones:  opciones.NewServicio(conn.store),
		Salud:     salud.NewServicio(conn.store, cfg.HealthTimeout, cfg.Environment),
	}
	if conn.catalogo != nil {
		deps.Introspector = esquema.NewIntrospector(conn.catalogo, cfg.CatalogSchema)
	} else {
		logs.Warn("backend %s sin catálogo: /v1/esquema no disponible", cfg.Backend)
	}

	beego.BConfig.AppName = cfg.AppName
	beego.BConfig.RunMode = cfg.RunMode
	beego.BConfig.Listen.HTTPPort = cfg.HTTPPort
	beego.BConfig.CopyRequestBody = true
	beego.BConfig.RecoverPanic = true
	beego.BConfig.RecoverFunc = errorhandler.RecoverPanic

	beego.InsertFilter("*", beego.BeforeRouter, cors.Allow(&cors.Options{
		AllowOrigins:     cfg.CORSOrigins, //orígenes permitidos
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", "X-Requested-With", "X-Request-Id", "Accept"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-Id"},
		AllowCredentials: true,
	}))
	middlewares.UseRequestID()

	fcb := &prometheus.FilterChainBuilder{}
	beego.InsertFilterChain("/v1/*", fcb.FilterChain)

	routers.Init(deps)

	logs.Info("observatorio_mid escuchando en :%d (backend %s, entorno %s)", cfg.HTTPPort, cfg.Backend, cfg.Environment)
	beego.Run()
	return nil
}

func configurarLogs(level string) {
	switch level {
	case "debug":
		logs.SetLevel(logs.LevelDebug)
	case "warn", "warning":
		logs.SetLevel(logs.LevelWarn)
	case "error":
		logs.SetLevel(logs.LevelError)
	default:
		logs.SetLevel(logs.LevelInfo)
	}
}
