// Package backendtest ofrece backends en memoria y de falla para las pruebas.
package backendtest

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/udistrital/observatorio_mid/internal/backend"
)

// NewSQLite abre una base SQLite en memoria, exclusiva de la prueba, y ejecuta stmts.
func NewSQLite(t *testing.T, stmts ...string) *backend.GormStore {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := backend.OpenSQLite(dsn)
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	for _, stmt := range stmts {
		require.NoError(t, db.Exec(stmt).Error, stmt)
	}
	return backend.NewGormStore(db)
}

// FailingStore falla en todas las operaciones con Err.
type FailingStore struct {
	Err error

	mu      sync.Mutex
	queries []backend.Query
}

// NewFailingStore crea un backend inalcanzable.
func NewFailingStore(message string) *FailingStore {
	return &FailingStore{Err: errors.New(message)}
}

func (s *FailingStore) Select(ctx context.Context, q backend.Query) ([]backend.Row, error) {
	s.mu.Lock()
	s.queries = append(s.queries, q)
	s.mu.Unlock()
	return nil, s.Err
}

func (s *FailingStore) Ping(ctx context.Context) error {
	return s.Err
}

// Queries devuelve las consultas recibidas, en orden.
func (s *FailingStore) Queries() []backend.Query {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]backend.Query(nil), s.queries...)
}

// HangingStore bloquea hasta que el contexto se cancele.
type HangingStore struct{}

func (HangingStore) Select(ctx context.Context, q backend.Query) ([]backend.Row, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func (HangingStore) Ping(ctx context.Context) error {
	<-ctx.Done()
	return ctx.Err()
}
