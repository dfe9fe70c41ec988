package closures

import (
	"context"
	"embrew-service/internal/app/config"
	"embrew-service/internal/app/contracts"
	"embrew-service/internal/app/models"
	"embrew-service/internal/pkg/constvars"
	"embrew-service/internal/pkg/exceptions"
	"embrew-service/internal/pkg/utils"
	"fmt"
	"time"

	cal "github.com/rickar/cal/v2"
	"github.com/rickar/cal/v2/us"
	"go.uber.org/zap"
)

type closureUsecase struct {
	ConfigurationUsecase contracts.ConfigurationUsecase
	Clock                contracts.Clock
	InternalConfig       *config.InternalConfig
	Log                  *zap.Logger
	holidays             *cal.BusinessCalendar
}

func NewClosureUsecase(
	configurationUsecase contracts.ConfigurationUsecase,
	clock contracts.Clock,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.ClosureUsecase {
	usecase := &closureUsecase{
		ConfigurationUsecase: configurationUsecase,
		Clock:                clock,
		InternalConfig:       internalConfig,
		Log:                  logger,
	}
	if internalConfig.Closures.ObserveUSFederalHolidays {
		usecase.holidays = newFederalHolidayCalendar()
	}
	return usecase
}

func newFederalHolidayCalendar() *cal.BusinessCalendar {
	calendar := cal.NewBusinessCalendar()
	calendar.AddHoliday(
		us.NewYear,
		us.MlkDay,
		us.PresidentsDay,
		us.MemorialDay,
		us.Juneteenth,
		us.IndependenceDay,
		us.LaborDay,
		us.ThanksgivingDay,
		us.ChristmasDay,
	)
	return calendar
}

// IsClosed tells whether the business is closed on date. A non-empty orderType with a
// "<type> for Today" stop entry closes today regardless of the stop time written in the sheet.
// Among "Closed on" entries the last one matching the date wins.
func (uc *closureUsecase) IsClosed(ctx context.Context, date time.Time, orderType string) (models.ClosureResult, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("closureUsecase.IsClosed called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDateKey, date.Format(constvars.DateQueryLayout)),
		zap.String(constvars.LoggingOrderTypeKey, orderType),
	)

	configuration, err := uc.ConfigurationUsecase.GetConfiguration(ctx)
	if err != nil {
		uc.Log.Error("closureUsecase.IsClosed error calling ConfigurationUsecase.GetConfiguration",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return models.NewNoClosure(), err
	}

	if orderType != "" && utils.IsSameDate(date, uc.Clock.Now()) {
		stopKey := fmt.Sprintf(constvars.ConfigurationStopKeyFormat, orderType)
		if _, stopped := configuration.Value(constvars.ConfigurationCategoryStop, stopKey); stopped {
			uc.Log.Info("closureUsecase.IsClosed stopped for today",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingOrderTypeKey, orderType),
			)
			return models.NewClosedToday(), nil
		}
	}

	result := models.NewNoClosure()
	closedOn := configuration.Category(constvars.ConfigurationCategoryClosedOn)
	for _, label := range closedOn.Keys() {
		value, _ := closedOn.Get(label)
		closedDate, err := utils.ParseSheetDate(value, "", uc.Clock.Location())
		if err != nil {
			uc.Log.Warn("closureUsecase.IsClosed skipping unparseable closed on entry",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingClosureLabelKey, label),
				zap.Error(exceptions.ErrCannotParseSheetDate(err, value)),
			)
			continue
		}
		if utils.IsSameDate(date, closedDate) {
			result = models.NewClosedNamedDay(label)
		}
	}

	if !result.IsClosed() && uc.holidays != nil {
		actual, observed, holiday := uc.holidays.IsHoliday(date)
		if (actual || observed) && holiday != nil {
			result = models.NewClosedNamedDay(holiday.Name)
		}
	}

	uc.Log.Info("closureUsecase.IsClosed succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingClosureKindKey, string(result.Kind)),
		zap.String(constvars.LoggingClosureReasonKey, result.Reason()),
	)
	return result, nil
}
