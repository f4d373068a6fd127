package dto

// ConsultaRequest es el cuerpo de POST /v1/consultas.
type ConsultaRequest struct {
	Recurso string            `json:"recurso" validate:"required"`
	Filtros map[string]string `json:"filtros"`
}
