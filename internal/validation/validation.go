// Package validation checks request payloads before they reach a handler.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"gamestore/backend/internal/dto"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// FieldError describes a single rejected field of a payload.
type FieldError struct {
	Field   string `json:"field" example:"price"`
	Message string `json:"message" example:"must be greater than or equal to 0"`
}

// Validator wraps a go-playground validator configured for the dto package.
type Validator struct {
	v *validator.Validate
}

func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report JSON names instead of Go field names.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})

	// A zero date counts as missing.
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		d, ok := field.Interface().(dto.Date)
		if !ok || d.IsZero() {
			return nil
		}
		return d.String()
	}, dto.Date{})

	if err := v.RegisterValidation("scale", maxScale); err != nil {
		panic(err)
	}

	return &Validator{v: v}
}

// maxScale accepts numbers with at most param digits after the decimal point,
// the scale of the NUMERIC column they are stored in.
func maxScale(fl validator.FieldLevel) bool {
	places, err := strconv.ParseInt(fl.Param(), 10, 32)
	if err != nil {
		return false
	}
	var d decimal.Decimal
	switch f := fl.Field(); f.Kind() {
	case reflect.Float32, reflect.Float64:
		d = decimal.NewFromFloat(f.Float())
	default:
		return false
	}
	return d.Exponent() >= -int32(places)
}

// Check validates payload and returns one FieldError per failed rule. A nil
// slice means the payload is acceptable.
func (val *Validator) Check(payload interface{}) []FieldError {
	err := val.v.Struct(payload)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []FieldError{{Field: "", Message: err.Error()}}
	}

	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{Field: fe.Field(), Message: message(fe)})
	}
	return out
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "max":
		return fmt.Sprintf("must be at most %s characters long", fe.Param())
	case "gte":
		return fmt.Sprintf("must be greater than or equal to %s", fe.Param())
	case "lte":
		return fmt.Sprintf("must be less than or equal to %s", fe.Param())
	case "scale":
		return fmt.Sprintf("must have at most %s decimal places", fe.Param())
	default:
		return fmt.Sprintf("failed the %q rule", fe.Tag())
	}
}
