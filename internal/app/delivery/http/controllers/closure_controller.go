package controllers

import (
	"context"
	"embrew-service/internal/app/config"
	"embrew-service/internal/app/contracts"
	"embrew-service/internal/pkg/constvars"
	"embrew-service/internal/pkg/dto/requests"
	"embrew-service/internal/pkg/dto/responses"
	"embrew-service/internal/pkg/exceptions"
	"embrew-service/internal/pkg/utils"
	"net/http"
	"time"

	"go.uber.org/zap"
)

type ClosureController struct {
	Log            *zap.Logger
	ClosureUsecase contracts.ClosureUsecase
	BannerUsecase  contracts.BannerUsecase
	Clock          contracts.Clock
	InternalConfig *config.InternalConfig
}

func NewClosureController(
	logger *zap.Logger,
	closureUsecase contracts.ClosureUsecase,
	bannerUsecase contracts.BannerUsecase,
	clock contracts.Clock,
	internalConfig *config.InternalConfig,
) *ClosureController {
	return &ClosureController{
		Log:            logger,
		ClosureUsecase: closureUsecase,
		BannerUsecase:  bannerUsecase,
		Clock:          clock,
		InternalConfig: internalConfig,
	}
}

// IsClosed answers GET /closures?date=2025-11-27&type=Order. date defaults to today.
func (ctrl *ClosureController) IsClosed(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("ClosureController.IsClosed requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info("ClosureController.IsClosed called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	query := &requests.ClosureQuery{
		Date:      r.URL.Query().Get(constvars.URLQueryParamDate),
		OrderType: r.URL.Query().Get(constvars.URLQueryParamType),
	}
	if err := utils.ValidateStruct(query); err != nil {
		ctrl.Log.Error("ClosureController.IsClosed error validating query",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	date := ctrl.Clock.Now()
	if query.Date != "" {
		parsed, err := time.ParseInLocation(constvars.DateQueryLayout, query.Date, ctrl.Clock.Location())
		if err != nil {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInvalidFormat(err, constvars.URLQueryParamDate))
			return
		}
		date = parsed
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig))
	defer cancel()

	result, err := ctrl.ClosureUsecase.IsClosed(ctx, date, query.OrderType)
	if err != nil {
		ctrl.Log.Error("ClosureController.IsClosed error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("ClosureController.IsClosed succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingClosureKindKey, string(result.Kind)),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetClosureSuccessMessage, result.ConvertIntoResponse(date))
}

// Upcoming lists the closures of the banner window and the banner text they render to.
func (ctrl *ClosureController) Upcoming(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("ClosureController.Upcoming requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info("ClosureController.Upcoming called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig))
	defer cancel()

	closures, err := ctrl.BannerUsecase.UpcomingClosures(ctx)
	if err != nil {
		ctrl.Log.Error("ClosureController.Upcoming error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	response := responses.UpcomingClosures{
		From:     ctrl.Clock.Now().Format(constvars.DateQueryLayout),
		Days:     ctrl.daysAhead(),
		Closures: closures,
	}
	if len(closures) > 0 {
		banner, err := ctrl.BannerUsecase.RenderBanner(ctx, closures)
		if err != nil {
			ctrl.Log.Warn("ClosureController.Upcoming cannot render banner",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
		}
		response.Banner = banner
	}

	ctrl.Log.Info("ClosureController.Upcoming succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingClosureCountKey, len(closures)),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetUpcomingClosuresSuccessMessage, response)
}

func (ctrl *ClosureController) OpeningHours(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("ClosureController.OpeningHours requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info("ClosureController.OpeningHours called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig))
	defer cancel()

	hours, err := ctrl.ClosureUsecase.OpeningHours(ctx)
	if err != nil {
		ctrl.Log.Error("ClosureController.OpeningHours error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	response := make([]responses.OpeningHours, 0, len(hours))
	for _, day := range hours {
		response = append(response, day.ConvertIntoResponse())
	}

	ctrl.Log.Info("ClosureController.OpeningHours succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetOpeningHoursSuccessMessage, response)
}

func (ctrl *ClosureController) daysAhead() int {
	if ctrl.InternalConfig != nil && ctrl.InternalConfig.Banner.DaysAhead > 0 {
		return ctrl.InternalConfig.Banner.DaysAhead
	}
	return constvars.DefaultBannerDaysAhead
}
