package errors

import (
	"reflect"
	"strings"

	"catlog/internal/errors"

	"github.com/go-playground/validator/v10"
)

// NewValidate builds the validator shared by workflows. Violations report
// json tag names so rejected fields match the wire format.
func NewValidate() *validator.Validate {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}

		return name
	})

	return validate
}

// FromValidationErrors converts go-playground violations into a validation
// AppError. Only the first violation is reported; callers fix one field at a
// time. Field paths use json tag names, dot-joined for nested structs.
func FromValidationErrors(err error) AppError {
	var violations validator.ValidationErrors
	if !errors.As(err, &violations) || len(violations) == 0 {
		return NewValidationError("unknown", "invalid input")
	}

	violation := violations[0]
	field := fieldPath(violation)

	return NewValidationError(field, field+" "+violationMessage(violation))
}

// fieldPath strips the root struct name from the violation namespace and
// joins the remaining segments, e.g. "AddEventInput.note" becomes "note".
func fieldPath(violation validator.FieldError) string {
	segments := strings.Split(violation.Namespace(), ".")
	if len(segments) > 1 {
		segments = segments[1:]
	}

	path := strings.Join(segments, ".")
	if path == "" || path == "-" {
		return "unknown"
	}

	return path
}

func violationMessage(violation validator.FieldError) string {
	switch violation.Tag() {
	case "required":
		return "must not be empty"
	case "min":
		if violation.Kind() == reflect.String {
			if violation.Param() == "1" {
				return "must not be empty"
			}

			return "must be at least " + violation.Param() + " characters"
		}

		return "must be at least " + violation.Param()
	case "max":
		if violation.Kind() == reflect.String {
			return "must be " + violation.Param() + " characters or fewer"
		}

		return "must be at most " + violation.Param()
	case "gt":
		return "must be greater than " + violation.Param()
	case "oneof":
		return "must be one of: " + strings.Join(strings.Fields(violation.Param()), ", ")
	default:
		return "is invalid"
	}
}
