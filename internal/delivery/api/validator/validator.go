// Package validator adapts go-playground/validator to echo.Validator.
package validator

import (
	"reflect"
	"strings"

	domainerrors "profilemap/internal/domain/errors"
	"profilemap/internal/errors"

	playground "github.com/go-playground/validator/v10"
)

// Validator implements echo.Validator.
type Validator struct {
	validate *playground.Validate
}

// New creates a validator that reports fields by their json names.
func New() *Validator {
	v := playground.New(playground.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})

	return &Validator{validate: v}
}

// Validate checks i against its validate tags. Field failures come back as
// ErrValidationFailed with one "field: rule" entry per failure.
func (v *Validator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs playground.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.Wrap(err, "validate request")
	}

	problems := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		problems = append(problems, describe(fe))
	}

	return domainerrors.ErrValidationFailed.WithDetails(strings.Join(problems, "; "))
}

func describe(fe playground.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + ": is required"
	case "max":
		return fe.Field() + ": must be at most " + fe.Param() + " characters"
	case "url":
		return fe.Field() + ": must be a valid URL"
	default:
		return fe.Field() + ": failed " + fe.Tag()
	}
}
