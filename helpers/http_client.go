// helpers/http_client.go
package helpers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/tidwall/gjson"
)

// HTTPError envuelve códigos de estado no exitosos para permitir un manejo granular.
type HTTPError struct {
	Status int
	Body   string
}

// Error devuelve el mensaje del backend cuando viene en el cuerpo; si no, estado y cuerpo.
func (e *HTTPError) Error() string {
	if msg := e.Message(); msg != "" {
		return msg
	}
	return fmt.Sprintf("HTTP %d: %s", e.Status, e.Body)
}

// Message extrae el campo "message" (formato PostgREST / Supabase) del cuerpo de error.
func (e *HTTPError) Message() string {
	if e == nil || !gjson.Valid(e.Body) {
		return ""
	}
	for _, key := range []string{"message", "error_description", "error", "msg"} {
		if v := gjson.Get(e.Body, key); v.Exists() && v.Type == gjson.String {
			return strings.TrimSpace(v.String())
		}
	}
	return ""
}

// IsHTTPError permite consultar si el error corresponde a un status específico.
func IsHTTPError(err error, status int) bool {
	if err == nil {
		return false
	}
	var he *HTTPError
	if errors.As(err, &he) {
		return he.Status == status
	}
	return false
}

// GetJSON hace un GET con headers y decodifica la respuesta JSON en out.
// No reintenta: cualquier fallo se devuelve inmediatamente.
func GetJSON(ctx context.Context, client *http.Client, url string, headers map[string]string, out any) error {
	if client == nil {
		client = http.DefaultClient
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	for k, v := range headers {
		if v != "" {
			req.Header.Set(k, v)
		}
	}

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b, _ := io.ReadAll(resp.Body)
		return &HTTPError{
			Status: resp.StatusCode,
			Body:   strings.TrimSpace(string(b)),
		}
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if len(bodyBytes) == 0 {
		return nil
	}
	return json.Unmarshal(bodyBytes, out)
}
