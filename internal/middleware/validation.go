package middleware

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// FormatBindingError turns a gin binding failure into the single
// human-readable message the error body carries
func FormatBindingError(err error) string {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) && len(validationErrs) > 0 {
		return formatValidationError(validationErrs[0])
	}
	return "Invalid request format"
}

func formatValidationError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "min":
		return e.Field() + " must be at least " + e.Param()
	case "max":
		return e.Field() + " must be at most " + e.Param()
	case "email":
		return e.Field() + " must be a valid email address"
	case "oneof":
		return e.Field() + " must be one of: " + e.Param()
	case "datetime":
		return e.Field() + " must be a valid date in " + e.Param() + " form"
	default:
		return e.Field() + " is invalid"
	}
}
