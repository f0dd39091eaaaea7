package apperror

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

func formatFieldName(s string) string {
	s = strings.ReplaceAll(s, "_", " ")
	caser := cases.Title(language.English)
	return caser.String(s)
}

func fieldMessage(e validator.FieldError) string {
	field := formatFieldName(e.Field())

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "uuid":
		return fmt.Sprintf("%s must be a valid UUID", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, e.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, e.Param())
	case "datetime":
		return fmt.Sprintf("%s must be a valid date-time", field)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, e.Param())
	case "gt", "gte":
		return fmt.Sprintf("%s must be a positive number", field)
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

// MapValidationError turns validator errors into a 400 AppError whose Details
// map every offending field to its messages. Non-validator binding failures
// (malformed JSON, wrong types) get a bare 400.
func MapValidationError(err error) error {
	if errs, ok := err.(validator.ValidationErrors); ok {
		details := make(map[string][]string, len(errs))
		for _, e := range errs {
			field := e.Field()
			details[field] = append(details[field], fieldMessage(e))
		}

		return NewWithDetails(
			CodeInvalidInput,
			"Validation failed",
			http.StatusBadRequest,
			details,
		)
	}

	return New(
		CodeInvalidInput,
		"Invalid input",
		http.StatusBadRequest,
	)
}
