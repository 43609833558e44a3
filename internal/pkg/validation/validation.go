// Package validation wraps go-playground/validator and turns its field errors
// into the short messages returned to API clients.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	// Report JSON names so messages match the request body.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})
}

// FieldError is one failed rule on one field. Kind is the kind of the
// validated value: min and max bound a length for strings and a value for
// numbers.
type FieldError struct {
	Field string       `json:"field"`
	Tag   string       `json:"tag"`
	Param string       `json:"param,omitempty"`
	Kind  reflect.Kind `json:"-"`
}

// Error collects every failed rule of a struct.
type Error struct {
	Fields []FieldError
}

func (e *Error) Error() string {
	var missing []string
	for _, f := range e.Fields {
		if f.Tag == "required" {
			missing = append(missing, f.Field)
		}
	}
	if len(missing) > 0 {
		return "Required fields: " + strings.Join(missing, ", ")
	}
	return message(e.Fields[0])
}

// Missing reports whether any field failed the required rule.
func (e *Error) Missing() bool {
	for _, f := range e.Fields {
		if f.Tag == "required" {
			return true
		}
	}
	return false
}

func message(f FieldError) string {
	switch f.Tag {
	case "email":
		return "Invalid email format"
	case "min":
		if isNumeric(f.Kind) {
			return fmt.Sprintf("%s must be at least %s", f.Field, f.Param)
		}
		return fmt.Sprintf("%s must be at least %s characters", f.Field, f.Param)
	case "max":
		if isNumeric(f.Kind) {
			return fmt.Sprintf("%s must be at most %s", f.Field, f.Param)
		}
		return fmt.Sprintf("%s must be at most %s characters", f.Field, f.Param)
	case "datetime":
		return fmt.Sprintf("%s must be a date in %s format", f.Field, f.Param)
	case "latitude", "longitude":
		return "Coordinates out of range"
	default:
		return "Invalid value for " + f.Field
	}
}

func isNumeric(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

// Struct validates s and returns *Error on failure.
func Struct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	out := &Error{Fields: make([]FieldError, 0, len(verrs))}
	for _, fe := range verrs {
		out.Fields = append(out.Fields, FieldError{
			Field: fe.Field(),
			Tag:   fe.Tag(),
			Param: fe.Param(),
			Kind:  fe.Kind(),
		})
	}
	return out
}

// Var validates a single value against tag.
func Var(field interface{}, tag string) error {
	return validate.Var(field, tag)
}
