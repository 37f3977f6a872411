package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/moodtrack/moodjournal/pkg/apperr"
)

// Init configures the global validator used by Gin's binding.
// - Uses JSON tag names in errors.
// - Registers alias tags for common validations.
func Init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		v.RegisterAlias("pwd", "min=8") // password minimum length
	}
}

// Details converts binding/validation errors into per-field errors for the
// API envelope. Validator failures report every violated field, not just
// the first one encountered.
func Details(err error) []apperr.FieldError {
	if err == nil {
		return nil
	}

	// Malformed JSON payloads
	var se *json.SyntaxError
	if errors.As(err, &se) {
		return []apperr.FieldError{{Field: "payload", Message: "invalid json"}}
	}
	var ute *json.UnmarshalTypeError
	if errors.As(err, &ute) {
		field := ute.Field
		if field == "" {
			field = "payload"
		}
		return []apperr.FieldError{{Field: field, Message: "must be of type " + ute.Type.String()}}
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		out := make([]apperr.FieldError, 0, len(verrs))
		for _, fe := range verrs {
			out = append(out, apperr.FieldError{Field: fe.Field(), Message: formatFieldError(fe)})
		}
		return out
	}

	return []apperr.FieldError{{Field: "payload", Message: "invalid payload"}}
}

func formatFieldError(fe validator.FieldError) string {
	tag := fe.Tag()
	param := fe.Param()
	kind := fe.Kind()
	if kind == reflect.Ptr {
		kind = fe.Type().Elem().Kind()
	}

	switch tag {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email"
	case "min":
		if isNumberKind(kind) {
			return "must be at least " + param
		}
		return "must be at least " + param + " characters long"
	case "max":
		if isNumberKind(kind) {
			return "must be at most " + param
		}
		return "must be at most " + param + " characters long"
	case "gte":
		return "must be greater than or equal to " + param
	case "lte":
		return "must be less than or equal to " + param
	case "gt":
		return "must be greater than " + param
	case "lt":
		return "must be less than " + param
	case "oneof":
		return "must be one of: " + strings.Join(strings.Fields(param), ", ")
	case "pwd":
		return "must be at least 8 characters long"
	default:
		if param != "" {
			return fmt.Sprintf("validation failed for '%s' with parameter '%s'", tag, param)
		}
		return fmt.Sprintf("validation failed for '%s'", tag)
	}
}

func isNumberKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}
