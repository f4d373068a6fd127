// Package salud verifica la disponibilidad del backend de datos.
package salud

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/udistrital/observatorio_mid/helpers"
	"github.com/udistrital/observatorio_mid/internal/backend"
)

// Resultado es el estado de un chequeo exitoso.
type Resultado struct {
	Message      string
	Timestamp    time.Time
	ResponseTime time.Duration
	Environment  string
}

// Servicio ejecuta el chequeo con un tiempo máximo acotado.
type Servicio struct {
	store       backend.Store
	timeout     time.Duration
	environment string
	now         func() time.Time
}

// NewServicio crea el chequeo. timeout <= 0 usa 5 segundos.
func NewServicio(store backend.Store, timeout time.Duration, environment string) *Servicio {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Servicio{store: store, timeout: timeout, environment: environment, now: time.Now}
}

// Check ejecuta una consulta liviana. Un error o timeout del backend se
// devuelve como BackendFault con status 503.
func (s *Servicio) Check(ctx context.Context) (Resultado, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	start := s.now()
	err := s.store.Ping(ctx)
	if err == nil && ctx.Err() != nil {
		err = ctx.Err()
	}
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			err = fmt.Errorf("el backend no respondió en %s: %w", s.timeout, err)
		}
		return Resultado{}, helpers.NewBackendFault(http.StatusServiceUnavailable, err)
	}
	end := s.now()
	return Resultado{
		Message:      "Conexión con el backend establecida",
		Timestamp:    end.UTC(),
		ResponseTime: end.Sub(start),
		Environment:  s.environment,
	}, nil
}
