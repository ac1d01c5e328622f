package models

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// report fields by their PayPal (json) names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	v.RegisterStructValidation(moneyStructLevel, Money{}, Amount{})
	return v
}

func moneyStructLevel(sl validator.StructLevel) {
	var m Money
	switch v := sl.Current().Interface().(type) {
	case Money:
		m = v
	case Amount:
		m = v.Money()
	}
	if m.CurrencyCode == "" || m.Value == "" {
		return
	}
	if !m.CurrencyCode.Supported() {
		sl.ReportError(m.CurrencyCode, "currency_code", "CurrencyCode", "currency", "")
		return
	}
	var ve *ValidationError
	if err := validateAmount(m.CurrencyCode, m.Value); errors.As(err, &ve) {
		sl.ReportError(m.Value, "value", "Value", ve.Rule, "")
	}
}

// ValidationError is returned by builders and constructors when a required
// field is missing or a field holds an invalid value. Field is the PayPal
// name of the field, including its path within the payload.
type ValidationError struct {
	Field string
	Rule  string
	Value string
	// Others lists any further failing fields.
	Others []string
}

func (e *ValidationError) Error() string {
	if e.Rule == "required" {
		return fmt.Sprintf("missing required field [%s]", e.Field)
	}
	if e.Value != "" {
		return fmt.Sprintf("invalid value [%s] for field [%s]: failed [%s] validation", e.Value, e.Field, e.Rule)
	}
	return fmt.Sprintf("invalid field [%s]: failed [%s] validation", e.Field, e.Rule)
}

func validateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	ve := &ValidationError{}
	for i, fe := range fieldErrs {
		field := fieldPath(fe.Namespace())
		if i == 0 {
			ve.Field = field
			ve.Rule = fe.Tag()
			if s, ok := fe.Value().(string); ok {
				ve.Value = s
			} else if c, ok := fe.Value().(Currency); ok {
				ve.Value = string(c)
			}
			continue
		}
		ve.Others = append(ve.Others, field)
	}
	return ve
}

// fieldPath strips the top-level type name from a validator namespace.
func fieldPath(namespace string) string {
	if i := strings.Index(namespace, "."); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}
