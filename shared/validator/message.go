package validator

import (
	"errors"
	"strings"

	val "github.com/go-playground/validator/v10"
)

const unnamedField = "value"

var messages = map[string]string{
	"required": "{field} is required",
	"gt":       "{field} must be greater than {param}",
	"gte":      "{field} must be greater than or equal to {param}",
	"lte":      "{field} must be less than or equal to {param}",
	"oneof":    "{field} must be one of {param}",
	"max":      "{field} must be at most {param}",
	"min":      "{field} must be at least {param}",
	"email":    "{field} must be a valid email address",
	"uuid":     "{field} must be a valid UUID",
	"date":     "{field} must be a date in YYYY-MM-DD format",
	"clock":    "{field} must be a time in HH:MM format",
	"gtfield":  "{field} must be after {param}",
	"gtefield": "{field} must be on or after {param}",
	"nefield":  "{field} must differ from {param}",

	"mimetypes":   "{field} must be one of {param}",
	"maxfilesize": "{field} must not exceed {param}MB",
}

// describe renders validation errors as a summary line plus one message per field.
// The summary is the message of the first failing field.
func describe(err error) (string, map[string]string) {
	var valErrors val.ValidationErrors
	if !errors.As(err, &valErrors) || len(valErrors) == 0 {
		return err.Error(), nil
	}

	fields := make(map[string]string, len(valErrors))
	summary := ""

	for _, valErr := range valErrors {
		field := valErr.Field()
		if field == "" {
			field = unnamedField
		}

		msg := fieldMessage(field, valErr)
		if summary == "" {
			summary = msg
		}

		if _, seen := fields[field]; !seen {
			fields[field] = msg
		}
	}

	return summary, fields
}

func fieldMessage(field string, valErr val.FieldError) string {
	template, ok := messages[valErr.Tag()]
	if !ok {
		return field + " is invalid"
	}

	return strings.NewReplacer("{field}", field, "{param}", valErr.Param()).Replace(template)
}
