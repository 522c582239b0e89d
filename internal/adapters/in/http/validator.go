package http

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"fooddelivery/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
)

// RequestValidator checks request bodies before they reach the use cases. It only
// looks at shape: presence of fields and non-empty lists. Business rules stay in
// the domain.
type RequestValidator struct {
	validate *validator.Validate
}

func NewRequestValidator() *RequestValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return &RequestValidator{validate: v}
}

// Validate implements echo.Validator. Every failing field becomes one
// errs.ValueIsRequiredError or errs.ValueIsInvalidError, joined together.
func (rv *RequestValidator) Validate(i any) error {
	err := rv.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errs.NewValueIsInvalidErrorWithCause("request body", err)
	}

	violations := make([]error, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		field := fieldPath(fe)
		switch fe.Tag() {
		case "required":
			violations = append(violations, errs.NewValueIsRequiredError(field))
		case "min":
			violations = append(violations, errs.NewValueIsRequiredErrorWithCause(field,
				fmt.Errorf("at least %s entries", fe.Param())))
		default:
			violations = append(violations, errs.NewValueIsInvalidError(field))
		}
	}
	return errors.Join(violations...)
}

// fieldPath drops the top-level struct name: "NewOrder.products[0].price" -> "products[0].price".
func fieldPath(fe validator.FieldError) string {
	_, path, found := strings.Cut(fe.Namespace(), ".")
	if !found {
		return fe.Field()
	}
	return path
}
