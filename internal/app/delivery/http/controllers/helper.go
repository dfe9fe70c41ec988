package controllers

import (
	"context"
	"embrew-service/internal/app/config"
	"embrew-service/internal/pkg/exceptions"
	"embrew-service/internal/pkg/utils"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"
)

const defaultRequestTimeout = 10 * time.Second

func requestTimeout(internalConfig *config.InternalConfig) time.Duration {
	if internalConfig == nil || internalConfig.App.RequestTimeoutInSeconds <= 0 {
		return defaultRequestTimeout
	}
	return time.Duration(internalConfig.App.RequestTimeoutInSeconds) * time.Second
}

// buildUsecaseErrorResponse maps an expired request context to a gateway timeout and renders
// every other error as is.
func buildUsecaseErrorResponse(log *zap.Logger, w http.ResponseWriter, err error) {
	if errors.Is(err, context.DeadlineExceeded) {
		utils.BuildErrorResponse(log, w, exceptions.ErrServerDeadlineExceeded(err))
		return
	}
	utils.BuildErrorResponse(log, w, err)
}
