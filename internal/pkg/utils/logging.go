package utils

import (
	"context"
	"embrew-service/internal/pkg/constvars"
	"time"

	"go.uber.org/zap"
)

// LogOperation runs fn and logs its duration and outcome under the request id carried by ctx.
func LogOperation(ctx context.Context, logger *zap.Logger, operation string, fn func() error) error {
	fields := []zap.Field{
		zap.String(constvars.LoggingRequestIDKey, GetRequestID(ctx)),
		zap.String(constvars.LoggingOperationKey, operation),
	}
	logger.Debug("Operation started", fields...)

	start := time.Now()
	err := fn()
	fields = append(fields,
		zap.Duration(constvars.LoggingDurationKey, time.Since(start)),
		zap.Bool(constvars.LoggingSuccessKey, err == nil),
	)

	if err != nil {
		logger.Error("Operation failed", append(fields, zap.Error(err))...)
		return err
	}
	logger.Info("Operation completed", fields...)
	return nil
}

func GetRequestID(ctx context.Context) string {
	if requestID, ok := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string); ok {
		return requestID
	}
	return ""
}
