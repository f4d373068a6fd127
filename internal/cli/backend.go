package cli

import (
	"fmt"

	"github.com/udistrital/observatorio_mid/internal/backend"
	"github.com/udistrital/observatorio_mid/internal/esquema"
	"github.com/udistrital/observatorio_mid/services"
)

// conexion agrupa el backend de lectura y, si existe, su catálogo.
type conexion struct {
	store    backend.Store
	catalogo esquema.Catalogo
	cerrar   func()
}

// conectar abre el backend indicado en la configuración. PostgREST no expone
// catálogo, por lo que catalogo queda nil.
func conectar(cfg services.Config) (conexion, error) {
	switch cfg.Backend {
	case services.BackendPostgREST:
		store := backend.NewPostgRESTStore(cfg.PostgRESTURL, cfg.PostgRESTKey, cfg.PostgRESTProbe, cfg.RequestTimeout)
		return conexion{store: store, cerrar: func() {}}, nil

	case services.BackendSQLite:
		db, err := backend.OpenSQLite(cfg.SQLiteDSN())
		if err != nil {
			return conexion{}, fmt.Errorf("abriendo sqlite: %w", err)
		}
		sqlDB, err := db.DB()
		if err != nil {
			return conexion{}, err
		}
		return conexion{
			store:    backend.NewGormStore(db),
			catalogo: esquema.NewCatalogoSQLite(db),
			cerrar:   func() { _ = sqlDB.Close() },
		}, nil

	default:
		db, err := backend.OpenPostgres(cfg.PostgresDSN(), cfg.DBMaxOpenConns)
		if err != nil {
			return conexion{}, fmt.Errorf("abriendo postgres: %w", err)
		}
		sqlDB, err := db.DB()
		if err != nil {
			return conexion{}, err
		}
		return conexion{
			store:    backend.NewGormStore(db),
			catalogo: esquema.NewCatalogoPostgres(db),
			cerrar:   func() { _ = sqlDB.Close() },
		}, nil
	}
}
