package helpers

import (
	"net/http"

	"github.com/udistrital/observatorio_mid/models/requestresponse"
)

// Envelope agrupa el status HTTP y el cuerpo a serializar.
type Envelope struct {
	Status int
	Body   interface{}
}

// Ok construye la respuesta {data} con status 200.
func Ok(data interface{}) Envelope {
	return Envelope{Status: http.StatusOK, Body: requestresponse.NewData(data)}
}

// Fail construye la respuesta {error} con el status indicado.
func Fail(status int, message string) Envelope {
	if status <= 0 {
		status = http.StatusInternalServerError
	}
	return Envelope{Status: status, Body: requestresponse.NewError(message)}
}

