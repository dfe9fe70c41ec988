package controllers

import (
	"context"
	"embrew-service/internal/app/config"
	"embrew-service/internal/app/contracts"
	"embrew-service/internal/pkg/constvars"
	"embrew-service/internal/pkg/exceptions"
	"embrew-service/internal/pkg/utils"
	"net/http"

	"go.uber.org/zap"
)

type ConfigurationController struct {
	Log                  *zap.Logger
	ConfigurationUsecase contracts.ConfigurationUsecase
	InternalConfig       *config.InternalConfig
}

func NewConfigurationController(logger *zap.Logger, configurationUsecase contracts.ConfigurationUsecase, internalConfig *config.InternalConfig) *ConfigurationController {
	return &ConfigurationController{
		Log:                  logger,
		ConfigurationUsecase: configurationUsecase,
		InternalConfig:       internalConfig,
	}
}

func (ctrl *ConfigurationController) GetConfiguration(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("ConfigurationController.GetConfiguration requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info("ConfigurationController.GetConfiguration called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig))
	defer cancel()

	configuration, err := ctrl.ConfigurationUsecase.GetConfiguration(ctx)
	if err != nil {
		ctrl.Log.Error("ConfigurationController.GetConfiguration error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("ConfigurationController.GetConfiguration succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCategoryCountKey, len(configuration.CategoryNames())),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetConfigurationSuccessMessage, configuration.ConvertIntoResponse())
}
