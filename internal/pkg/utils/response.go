package utils

import (
	"embrew-service/internal/pkg/constvars"
	"embrew-service/internal/pkg/dto/responses"
	"embrew-service/internal/pkg/exceptions"
	"errors"
	"net/http"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

func BuildSuccessResponse(w http.ResponseWriter, code int, message string, data interface{}) {
	writeJSON(w, code, responses.ResponseDTO{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// BuildErrorResponse writes the error envelope. Dev message and locations are only exposed outside production.
// Error responses are never cached so a transient origin failure does not stick in a CDN.
func BuildErrorResponse(log *zap.Logger, w http.ResponseWriter, err error) {
	response := exceptions.CustomError{
		StatusCode:    constvars.StatusInternalServerError,
		ClientMessage: constvars.ErrClientSomethingWrongWithApplication,
	}

	var customErr *exceptions.CustomError
	if errors.As(err, &customErr) {
		response.StatusCode = customErr.StatusCode
		response.ClientMessage = customErr.ClientMessage
		logCustomError(log, customErr)
	} else {
		log.Error(err.Error(), zap.Int(constvars.LoggingStatusCodeKey, response.StatusCode))
	}

	if customErr != nil && GetEnvString("APP_ENV", constvars.AppEnvDevelopment) != constvars.AppEnvProduction {
		response.DevMessage = customErr.DevMessage
		response.Locations = customErr.Locations
	}

	w.Header().Set(constvars.HeaderCacheControl, "no-store")
	writeJSON(w, response.StatusCode, response)
}

func logCustomError(log *zap.Logger, customErr *exceptions.CustomError) {
	logAt := log.Error
	if customErr.StatusCode < constvars.StatusInternalServerError {
		logAt = log.Warn
	}
	for _, location := range customErr.Locations {
		logAt(customErr.DevMessage,
			zap.Int(constvars.LoggingStatusCodeKey, customErr.StatusCode),
			zap.Any("location", map[string]interface{}{
				"file":          location.File,
				"line":          location.Line,
				"function_name": location.FunctionName,
			}),
		)
	}
}

func writeJSON(w http.ResponseWriter, code int, body interface{}) {
	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSONCharsetUTF8)
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(body)
}
