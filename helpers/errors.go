package helpers

import (
	"errors"
	"fmt"
	"net/http"
)

// FaultKind clasifica el origen de un error controlado.
type FaultKind int

const (
	// UnexpectedFault agrupa todo lo que no es reportado por el backend.
	UnexpectedFault FaultKind = iota
	// BackendFault indica que el backend de datos reportó el error.
	BackendFault
)

// AppError representa un error controlado con código HTTP y mensaje funcional.
type AppError struct {
	Status  int
	Message string
	Kind    FaultKind
	Err     error
}

// Error implementa la interfaz error.
func (e *AppError) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil && e.Err.Error() != e.Message {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap permite extraer el error original cuando exista.
func (e *AppError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// NewAppError construye un AppError con mensaje y status.
func NewAppError(status int, message string, err error) *AppError {
	return &AppError{Status: status, Message: message, Kind: UnexpectedFault, Err: err}
}

// NewBackendFault envuelve un error del backend conservando su mensaje tal cual.
func NewBackendFault(status int, err error) *AppError {
	if err == nil {
		return nil
	}
	var appErr *AppError
	if errors.As(err, &appErr) && appErr.Kind == BackendFault {
		return &AppError{Status: status, Message: appErr.Message, Kind: BackendFault, Err: appErr.Err}
	}
	return &AppError{Status: status, Message: err.Error(), Kind: BackendFault, Err: err}
}

// AsAppError convierte cualquier error en AppError con status 500 por defecto.
func AsAppError(err error, defaultMessage string) *AppError {
	if err == nil {
		return nil
	}
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	msg := defaultMessage
	if msg == "" {
		msg = "error inesperado"
	}
	return &AppError{Status: http.StatusInternalServerError, Message: msg, Kind: UnexpectedFault, Err: err}
}

// IsBackendFault indica si err fue originado por el backend de datos.
func IsBackendFault(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Kind == BackendFault
}
