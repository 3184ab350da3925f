package validation

import (
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

const (
	NominaTypeQuincenal = "quincenal"
	NominaTypeMensual   = "mensual"
)

// RegisterBindingTags installs the text predicates as validator tags on the
// gin binding engine and reports fields by their json name.
func RegisterBindingTags() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	RegisterTags(v)
}

func RegisterTags(v *validator.Validate) {
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" {
			name = strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		}
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("numtext", func(fl validator.FieldLevel) bool {
		return IsNumeric(fl.Field().String())
	})
	_ = v.RegisterValidation("ymd", func(fl validator.FieldLevel) bool {
		return ValidateDate(fl.Field().String())
	})
	_ = v.RegisterValidation("booltext", func(fl validator.FieldLevel) bool {
		return IsBoolean(fl.Field().String())
	})
	_ = v.RegisterValidation("cedula", func(fl validator.FieldLevel) bool {
		return ValidateCedula(fl.Field().String())
	})
	_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return ValidatePhone(fl.Field().String())
	})
	_ = v.RegisterValidation("nominatype", func(fl validator.FieldLevel) bool {
		return IsNominaType(fl.Field().String())
	})
}

func IsNominaType(s string) bool {
	switch strings.ToLower(s) {
	case NominaTypeQuincenal, NominaTypeMensual:
		return true
	}
	return false
}
