package services

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	beego "github.com/beego/beego/v2/server/web"
)

// Tipos de backend soportados.
const (
	BackendPostgres  = "postgres"
	BackendSQLite    = "sqlite"
	BackendPostgREST = "postgrest"
)

// Config centraliza la configuración del servicio y del backend de datos.
type Config struct {
	AppName        string
	HTTPPort       int
	RunMode        string
	Environment    string
	LogLevel       string
	CORSOrigins    []string
	Backend        string
	DBHost         string
	DBPort         int
	DBUser         string
	DBPassword     string
	DBName         string
	DBSSLMode      string
	DBDSN          string
	DBMaxOpenConns int
	PostgRESTURL   string
	PostgRESTKey   string
	PostgRESTProbe string
	CatalogSchema  string
	RequestTimeout time.Duration
	HealthTimeout  time.Duration
}

var (
	cfg  Config
	once sync.Once
)

// GetConfig devuelve la configuración cargada desde variables de entorno o app.conf.
func GetConfig() Config {
	once.Do(func() {
		cfg = Config{
			AppName:        getString("APP_NAME", "appname", "observatorio_mid"),
			HTTPPort:       getInt("HTTP_PORT", "httpport", 8080),
			RunMode:        getString("RUN_MODE", "runmode", "dev"),
			Environment:    getString("ENVIRONMENT", "environment", "development"),
			LogLevel:       strings.ToLower(getString("LOG_LEVEL", "log_level", "info")),
			CORSOrigins:    splitList(getString("CORS_ORIGINS", "cors_origins", "http://localhost:3000")),
			Backend:        strings.ToLower(getString("BACKEND", "backend", BackendPostgres)),
			DBHost:         getString("DB_HOST", "db_host", "localhost"),
			DBPort:         getInt("DB_PORT", "db_port", 5432),
			DBUser:         getString("DB_USER", "db_user", "postgres"),
			DBPassword:     getString("DB_PASSWORD", "db_password", ""),
			DBName:         getString("DB_NAME", "db_name", "observatorio"),
			DBSSLMode:      getString("DB_SSLMODE", "db_sslmode", "disable"),
			DBDSN:          getString("DB_DSN", "db_dsn", ""),
			DBMaxOpenConns: getInt("DB_MAX_OPEN_CONNS", "db_max_open_conns", 10),
			PostgRESTURL:   strings.TrimRight(getString("POSTGREST_URL", "postgrest_url", ""), "/"),
			PostgRESTKey:   getString("POSTGREST_KEY", "postgrest_key", ""),
			PostgRESTProbe: getString("POSTGREST_PROBE_TABLE", "postgrest_probe_table", "regiones"),
			CatalogSchema:  getString("CATALOG_SCHEMA", "catalog_schema", "public"),
			RequestTimeout: time.Duration(getInt("REQUEST_TIMEOUT_MS", "request_timeout_ms", 10000)) * time.Millisecond,
			HealthTimeout:  time.Duration(getInt("HEALTH_TIMEOUT_MS", "health_timeout_ms", 5000)) * time.Millisecond,
		}

		switch cfg.Backend {
		case BackendPostgres, BackendSQLite:
		case BackendPostgREST:
			if cfg.PostgRESTURL == "" {
				panic("POSTGREST_URL no configurado")
			}
		default:
			panic(fmt.Sprintf("BACKEND %q no soportado", cfg.Backend))
		}
	})
	return cfg
}

// SQLiteDSN devuelve DB_DSN o un archivo local por defecto.
func (c Config) SQLiteDSN() string {
	if c.DBDSN != "" {
		return c.DBDSN
	}
	return "observatorio.db"
}

// PostgresDSN arma el DSN de Postgres salvo que DB_DSN lo defina explícitamente.
func (c Config) PostgresDSN() string {
	if c.DBDSN != "" {
		return c.DBDSN
	}
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=%s",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort, c.DBSSLMode)
}

func getString(envKey, confKey, def string) string {
	if val := strings.TrimSpace(os.Getenv(envKey)); val != "" {
		return val
	}
	if val, err := beego.AppConfig.String(confKey); err == nil && strings.TrimSpace(val) != "" {
		return strings.TrimSpace(val)
	}
	return def
}

func getInt(envKey, confKey string, def int) int {
	if val := strings.TrimSpace(os.Getenv(envKey)); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil {
			return parsed
		}
	}
	if val, err := beego.AppConfig.Int(confKey); err == nil {
		return val
	}
	return def
}

func splitList(value string) []string {
	out := make([]string, 0)
	for _, part := range strings.Split(value, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
