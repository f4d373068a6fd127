package backend

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/udistrital/observatorio_mid/helpers"
)

// PostgRESTStore implementa Store contra una API PostgREST (p. ej. Supabase).
type PostgRESTStore struct {
	baseURL    string
	apiKey     string
	probeTable string
	client     *http.Client
}

// NewPostgRESTStore crea el cliente. probeTable es la tabla leída por Ping.
func NewPostgRESTStore(baseURL, apiKey, probeTable string, timeout time.Duration) *PostgRESTStore {
	return &PostgRESTStore{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		probeTable: probeTable,
		client:     &http.Client{Timeout: timeout},
	}
}

// Select traduce la consulta a los operadores de PostgREST.
func (s *PostgRESTStore) Select(ctx context.Context, q Query) ([]Row, error) {
	rows := make([]Row, 0)
	if err := helpers.GetJSON(ctx, s.client, s.buildURL(q), s.headers(), &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// Ping lee una sola fila de la tabla de sondeo.
func (s *PostgRESTStore) Ping(ctx context.Context) error {
	_, err := s.Select(ctx, Query{Table: s.probeTable, Limit: 1})
	return err
}

func (s *PostgRESTStore) buildURL(q Query) string {
	values := url.Values{}
	if len(q.Columns) > 0 {
		values.Set("select", strings.Join(q.Columns, ","))
	} else {
		values.Set("select", "*")
	}
	for _, cond := range q.Where {
		if filter := postgrestFilter(cond); filter != "" {
			values.Add(cond.Column, filter)
		}
	}
	if q.Order != nil {
		dir := "asc"
		if q.Order.Desc {
			dir = "desc"
		}
		values.Set("order", q.Order.Column+"."+dir)
	}
	if q.Limit > 0 {
		values.Set("limit", strconv.Itoa(q.Limit))
	}
	return s.baseURL + "/" + url.PathEscape(q.Table) + "?" + values.Encode()
}

func postgrestFilter(cond Condition) string {
	switch cond.Op {
	case OpIgual:
		return "eq." + cond.Value
	case OpPatron:
		return "ilike.*" + escapeLike(cond.Value) + "*"
	case OpDesde:
		return "gte." + cond.Value
	case OpHasta:
		return "lte." + cond.Value
	default:
		return ""
	}
}

func (s *PostgRESTStore) headers() map[string]string {
	if s.apiKey == "" {
		return nil
	}
	return map[string]string{
		"apikey":        s.apiKey,
		"Authorization": "Bearer " + s.apiKey,
	}
}
