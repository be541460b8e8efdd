package validator

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldError describe una falla de validación sobre un campo concreto.
type FieldError struct {
	Field string `json:"field"`
	Tag   string `json:"tag"`
	Param string `json:"param,omitempty"`
}

func (e FieldError) String() string {
	if e.Param != "" {
		return fmt.Sprintf("%s: falla la regla '%s=%s'", e.Field, e.Tag, e.Param)
	}
	return fmt.Sprintf("%s: falla la regla '%s'", e.Field, e.Tag)
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// ValidateStruct ejecuta las reglas declaradas en los tags `validate` del struct.
// Devuelve nil si todo es válido.
func ValidateStruct(data interface{}) []FieldError {
	err := validate.Struct(data)
	if err == nil {
		return nil
	}
	var out []FieldError
	for _, fe := range err.(validator.ValidationErrors) {
		out = append(out, FieldError{
			Field: fe.StructNamespace(),
			Tag:   fe.Tag(),
			Param: fe.Param(),
		})
	}
	return out
}

// Summary condensa los errores en un solo mensaje para ErrorResponse.
func Summary(errs []FieldError) string {
	parts := make([]string, 0, len(errs))
	for _, e := range errs {
		parts = append(parts, e.String())
	}
	return strings.Join(parts, "; ")
}
