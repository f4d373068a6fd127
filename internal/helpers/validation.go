package helpers

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	roothelpers "github.com/udistrital/observatorio_mid/helpers"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate aplica las etiquetas validate de dto y devuelve un AppError 400.
func Validate(dto interface{}) error {
	err := validate.Struct(dto)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return roothelpers.NewAppError(http.StatusBadRequest, "cuerpo inválido", err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s requerido", fe.Field()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s inválido (%s)", fe.Field(), fe.Tag()))
		}
	}
	return roothelpers.NewAppError(http.StatusBadRequest, strings.Join(msgs, "; "), err)
}
