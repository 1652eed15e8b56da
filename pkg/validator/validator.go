package validator

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldError describe una falla de validación de un campo concreto.
// Field usa el nombre del tag json para que el error hable el idioma del API.
type FieldError struct {
	Field string
	Tag   string
	Param string
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Reportar errores con el nombre json del campo, no el del struct.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

// ValidateStruct valida los tags `validate` de data y devuelve las fallas
// campo a campo (nil si todo es válido).
func ValidateStruct(data interface{}) []FieldError {
	err := validate.Struct(data)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldError{{Field: "body", Tag: "invalid"}}
	}
	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{
			Field: fe.Field(),
			Tag:   fe.Tag(),
			Param: fe.Param(),
		})
	}
	return out
}

// Message devuelve un mensaje legible para la falla.
func (e FieldError) Message() string {
	switch e.Tag {
	case "required":
		return "el campo es obligatorio"
	case "gt":
		return "debe ser mayor que " + e.Param
	case "gte":
		return "debe ser mayor o igual que " + e.Param
	case "lte":
		return "debe ser menor o igual que " + e.Param
	case "oneof":
		return "debe ser uno de: " + e.Param
	case "max":
		return "supera el largo máximo de " + e.Param
	case "min":
		return "no alcanza el mínimo de " + e.Param
	default:
		return "valor inválido (" + e.Tag + ")"
	}
}
