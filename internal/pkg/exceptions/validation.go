package exceptions

import (
	"embrew-service/internal/pkg/constvars"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

func FormatFirstValidationError(err error) string {
	if err == nil {
		return constvars.ErrClientCannotProcessRequest
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return constvars.ErrClientCannotProcessRequest
	}

	firstErr := validationErrors[0]
	fieldName := strings.ToLower(firstErr.Field())
	tag := firstErr.Tag()
	customMessage, ok := constvars.CustomValidationErrorMessages[tag]
	if !ok {
		customMessage = "is invalid"
	}
	if constvars.TagsWithParams[tag] {
		param := firstErr.Param()
		if tag == "oneof" {
			param = strings.Join(strings.Fields(param), ", ")
		}
		customMessage = strings.Replace(customMessage, "%s", param, 1)
	}
	return fieldName + " " + customMessage
}
