package requestresponse

// DataResponse es el sobre de respuesta exitosa de los endpoints de consulta.
type DataResponse struct {
	Data interface{} `json:"data"`
}

// ErrorResponse es el sobre de respuesta fallida. Nunca convive con Data.
type ErrorResponse struct {
	Error string `json:"error"`
}

// SchemaResponse es el contrato público del introspector.
type SchemaResponse struct {
	Status string      `json:"status"`
	Tables interface{} `json:"tables"`
}

// HealthResponse describe el estado del backend.
type HealthResponse struct {
	Status       string `json:"status"`
	Message      string `json:"message,omitempty"`
	Error        string `json:"error,omitempty"`
	Timestamp    string `json:"timestamp"`
	ResponseTime string `json:"responseTime,omitempty"`
	Environment  string `json:"environment,omitempty"`
}

// NewData construye una respuesta exitosa. Un slice nil se publica como [].
func NewData(data interface{}) DataResponse {
	if data == nil {
		data = []interface{}{}
	}
	return DataResponse{Data: data}
}

// NewError construye una respuesta de error.
func NewError(message string) ErrorResponse {
	if message == "" {
		message = "Error"
	}
	return ErrorResponse{Error: message}
}
