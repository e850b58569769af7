package exceptions

import (
	"afyacare-service/internal/pkg/constvars"
	"strings"

	"github.com/go-playground/validator/v10"
)

var customValidationErrorMessages = map[string]string{
	"required":     "is required",
	"email":        "must be a valid email address",
	"min":          "is below the minimum allowed value",
	"max":          "is above the maximum allowed value",
	"gt":           "must be greater than the allowed minimum",
	"oneof":        "has an unsupported value",
	"password":     "must be at least 8 characters with an uppercase letter and a special character",
	"phone_number": "must be a valid phone number",
}

func FormatFirstValidationError(err error) string {
	if err == nil {
		return constvars.ErrClientCannotProcessRequest
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok || len(validationErrors) == 0 {
		return constvars.ErrClientCannotProcessRequest
	}

	first := validationErrors[0]
	fieldName := strings.ToLower(first.Field())
	customMessage, ok := customValidationErrorMessages[first.Tag()]
	if !ok {
		customMessage = "is invalid"
	}
	return fieldName + " " + customMessage
}
