package apperror

import (
	"encoding/json"
	"errors"
	"io"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// FieldMessages maps a json field name to the message shown when that
// field fails a format check.
type FieldMessages map[string]string

func formatFieldName(s string) string {
	s = strings.ReplaceAll(s, "_", " ")
	caser := cases.Title(language.Spanish)
	return caser.String(s)
}

// MapValidationError turns a binding error into the first field-specific
// message. A missing required field anywhere wins and collapses into
// ErrMissingFields.
func MapValidationError(err error, messages FieldMessages) *AppError {
	var errs validator.ValidationErrors
	if errors.As(err, &errs) && len(errs) > 0 {
		for _, fe := range errs {
			if fe.Tag() == "required" {
				return ErrMissingFields
			}
		}
		e := errs[0]
		if msg, ok := messages[e.Field()]; ok {
			return Invalid(msg)
		}
		return InvalidField(formatFieldName(e.Field()))
	}

	if errors.Is(err, io.EOF) {
		return ErrMissingFields
	}

	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) {
		return Invalid("Formato de datos invalido")
	}

	return Invalid("Datos invalidos")
}
