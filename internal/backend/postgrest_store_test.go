package backend

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udistrital/observatorio_mid/helpers"
)

func TestPostgRESTBuildURL(t *testing.T) {
	store := NewPostgRESTStore("http://api.local/rest/v1/", "", "regiones", time.Second)

	raw := store.buildURL(Query{
		Table: "tendencias_sector",
		Where: []Condition{
			{Column: "sector", Op: OpIgual, Value: "Minería"},
			{Column: "fecha", Op: OpDesde, Value: "2023-01-01"},
			{Column: "fecha", Op: OpHasta, Value: "2023-06-30"},
			{Column: "nombre_carrera", Op: OpPatron, Value: "ingenier"},
		},
		Order: &Order{Column: "fecha"},
		Limit: 100,
	})

	u, err := url.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "/rest/v1/tendencias_sector", u.Path)

	q := u.Query()
	assert.Equal(t, "*", q.Get("select"))
	assert.Equal(t, "eq.Minería", q.Get("sector"))
	assert.Equal(t, []string{"gte.2023-01-01", "lte.2023-06-30"}, q["fecha"])
	assert.Equal(t, "ilike.*ingenier*", q.Get("nombre_carrera"))
	assert.Equal(t, "fecha.asc", q.Get("order"))
	assert.Equal(t, "100", q.Get("limit"))
}

func TestPostgRESTFilterPatronLiteral(t *testing.T) {
	assert.Equal(t, `ilike.*50\%*`, postgrestFilter(Condition{Column: "nombre", Op: OpPatron, Value: "50%"}))
	assert.Equal(t, `ilike.*a\_b*`, postgrestFilter(Condition{Column: "nombre", Op: OpPatron, Value: "a_b"}))
}

func TestPostgRESTSelect(t *testing.T) {
	var gotKey, gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("apikey")
		gotAuth = r.Header.Get("Authorization")
		switch r.URL.Path {
		case "/areas_conocimiento":
			assert.Equal(t, "nombre", r.URL.Query().Get("select"))
			assert.Equal(t, "nombre.desc", r.URL.Query().Get("order"))
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`[{"nombre":"Salud"},{"nombre":"Derecho"}]`))
		case "/regiones":
			assert.Equal(t, "1", r.URL.Query().Get("limit"))
			_, _ = w.Write([]byte(`[]`))
		default:
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"code":"42P01","message":"relation \"public.no_existe\" does not exist","details":null,"hint":null}`))
		}
	}))
	defer srv.Close()

	store := NewPostgRESTStore(srv.URL, "clave-anon", "regiones", time.Second)
	ctx := context.Background()

	rows, err := store.Select(ctx, Query{
		Table:   "areas_conocimiento",
		Columns: []string{"nombre"},
		Order:   &Order{Column: "nombre", Desc: true},
	})
	require.NoError(t, err)
	assert.Equal(t, []Row{{"nombre": "Salud"}, {"nombre": "Derecho"}}, rows)
	assert.Equal(t, "clave-anon", gotKey)
	assert.Equal(t, "Bearer clave-anon", gotAuth)

	_, err = store.Select(ctx, Query{Table: "no_existe"})
	require.Error(t, err)
	assert.Equal(t, `relation "public.no_existe" does not exist`, err.Error())
	assert.True(t, helpers.IsHTTPError(err, http.StatusNotFound))

	assert.NoError(t, store.Ping(ctx))
}
