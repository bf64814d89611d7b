package validate

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/unicode/norm"
)

// FieldError reports a required field that is missing or blank.
type FieldError struct {
	Field string
}

func (e *FieldError) Error() string { return "missing required field " + e.Field }

var v = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// report fields by their wire name
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	return v
}

// Text trims s and puts it in NFC so visually equal input is stored once.
func Text(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

// Struct runs the struct's validate tags. The first failing field is
// returned as a *FieldError.
func Struct(s any) error {
	err := v.Struct(s)
	if err == nil {
		return nil
	}
	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		return &FieldError{Field: ves[0].Field()}
	}
	return err
}
