package opciones

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udistrital/observatorio_mid/internal/backend/backendtest"
	"github.com/udistrital/observatorio_mid/internal/metrics"
)

const carrerasDDL = `CREATE TABLE carreras (id INTEGER PRIMARY KEY, area TEXT, institucion TEXT, region TEXT)`

const carrerasSeed = `INSERT INTO carreras (area, institucion, region) VALUES
	('Salud', 'Universidad de Chile', 'Metropolitana'),
	('Educación', 'Universidad de Chile', 'Valparaíso'),
	('Salud', 'INACAP', 'Metropolitana'),
	('  ', NULL, 'Biobío')`

func TestOpcionesNivelPrimaria(t *testing.T) {
	store := backendtest.NewSQLite(t,
		`CREATE TABLE areas_conocimiento (id INTEGER PRIMARY KEY, nombre TEXT)`,
		`INSERT INTO areas_conocimiento (nombre) VALUES ('Tecnología'), ('Derecho'), ('Salud')`,
		carrerasDDL, carrerasSeed,
	)
	svc := NewServicio(store)

	before := testutil.ToFloat64(metrics.OpcionesResueltas.WithLabelValues(ListaAreas, NivelPrimaria))
	values, err := svc.Opciones(context.Background(), ListaAreas)
	require.NoError(t, err)
	assert.Equal(t, []string{"Derecho", "Salud", "Tecnología"}, values)
	assert.Equal(t, before+1, testutil.ToFloat64(metrics.OpcionesResueltas.WithLabelValues(ListaAreas, NivelPrimaria)))
}

func TestOpcionesNivelDerivado(t *testing.T) {
	// Sin tabla instituciones: la primaria falla y se deriva de carreras.
	store := backendtest.NewSQLite(t, carrerasDDL, carrerasSeed)
	svc := NewServicio(store)

	values, err := svc.Opciones(context.Background(), ListaInstituciones)
	require.NoError(t, err)
	assert.Equal(t, []string{"INACAP", "Universidad de Chile"}, values)

	values, err = svc.Opciones(context.Background(), ListaAreas)
	require.NoError(t, err)
	assert.Equal(t, []string{"Educación", "Salud"}, values)
}

func TestOpcionesPrimariaVaciaPasaAlSiguienteNivel(t *testing.T) {
	store := backendtest.NewSQLite(t,
		`CREATE TABLE regiones (id INTEGER PRIMARY KEY, nombre TEXT)`,
		carrerasDDL, carrerasSeed,
	)
	values, nivel := NewServicio(store).listas[ListaRegiones].Resolver(context.Background())

	assert.Equal(t, NivelDerivada, nivel)
	assert.Equal(t, []string{"Biobío", "Metropolitana", "Valparaíso"}, values)
}

func TestOpcionesBackendInalcanzable(t *testing.T) {
	store := backendtest.NewFailingStore("dial tcp 10.0.0.1:5432: connect: connection refused")
	svc := NewServicio(store)

	for nombre, esperado := range map[string][]string{
		ListaAreas:         AreasConocidas,
		ListaInstituciones: InstitucionesConocidas,
		ListaRegiones:      RegionesConocidas,
	} {
		values, err := svc.Opciones(context.Background(), nombre)
		require.NoError(t, err, nombre)
		assert.NotEmpty(t, values, nombre)
		assert.Equal(t, esperado, values, nombre)
	}

	// Primaria y derivada, una vez cada una por lista.
	assert.Len(t, store.Queries(), 6)
}

type registro struct {
	nivel  string
	values []string
	err    error
	calls  *[]string
}

func (r registro) Nivel() string { return r.nivel }

func (r registro) Valores(context.Context) ([]string, error) {
	*r.calls = append(*r.calls, r.nivel)
	return r.values, r.err
}

func TestListaPrimerExitoGana(t *testing.T) {
	var calls []string
	lista := Lista{Nombre: "prueba", Estrategias: []Estrategia{
		registro{nivel: "a", err: errors.New("caída"), calls: &calls},
		registro{nivel: "b", values: []string{"x"}, calls: &calls},
		registro{nivel: "c", values: []string{"y"}, calls: &calls},
	}}

	values, nivel := lista.Resolver(context.Background())
	assert.Equal(t, []string{"x"}, values)
	assert.Equal(t, "b", nivel)
	assert.Equal(t, []string{"a", "b"}, calls)
}

func TestListaSinNiveles(t *testing.T) {
	values, nivel := Lista{Nombre: "vacia"}.Resolver(context.Background())
	assert.NotNil(t, values)
	assert.Empty(t, values)
	assert.Empty(t, nivel)
}

func TestOpcionesListaDesconocida(t *testing.T) {
	_, err := NewServicioConListas().Opciones(context.Background(), "comunas")
	assert.Error(t, err)
}

func TestEstaticaEsCopia(t *testing.T) {
	e := Estatica([]string{"a"})
	values, err := e.Valores(context.Background())
	require.NoError(t, err)
	values[0] = "b"
	assert.Equal(t, Estatica([]string{"a"}), e)
}
