package closures

import (
	"context"
	"embrew-service/internal/app/models"
	"embrew-service/internal/pkg/constvars"
	"embrew-service/internal/pkg/exceptions"
	"embrew-service/internal/pkg/utils"
	"strings"

	"go.uber.org/zap"
)

const openingHoursSeparator = "-"

// OpeningHours reads one "11:00am-9:00pm" entry per weekday, Sunday first.
func (uc *closureUsecase) OpeningHours(ctx context.Context) ([]models.DayHours, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("closureUsecase.OpeningHours called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	configuration, err := uc.ConfigurationUsecase.GetConfiguration(ctx)
	if err != nil {
		uc.Log.Error("closureUsecase.OpeningHours error calling ConfigurationUsecase.GetConfiguration",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	section := configuration.Category(uc.InternalConfig.Closures.OpeningHoursCategory)
	openingHours := make([]models.DayHours, 0, len(constvars.Weekdays))
	for _, day := range constvars.Weekdays {
		value, ok := section.Get(day)
		if !ok {
			return nil, exceptions.ErrOpeningHoursMissingDay(day)
		}
		dayHours, err := parseDayHours(day, value)
		if err != nil {
			uc.Log.Error("closureUsecase.OpeningHours error parsing opening hours",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingCategoryKey, day),
				zap.Error(err),
			)
			return nil, err
		}
		openingHours = append(openingHours, dayHours)
	}

	uc.Log.Info("closureUsecase.OpeningHours succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return openingHours, nil
}

func parseDayHours(day, value string) (models.DayHours, error) {
	parts := strings.Split(value, openingHoursSeparator)
	if len(parts) != 2 {
		return models.DayHours{}, exceptions.ErrOpeningHoursInvalidFormat(value)
	}

	from, err := utils.TimeToHours(parts[0])
	if err != nil {
		return models.DayHours{}, exceptions.ErrCannotParseTimeOfDay(err, parts[0])
	}
	to, err := utils.TimeToHours(parts[1])
	if err != nil {
		return models.DayHours{}, exceptions.ErrCannotParseTimeOfDay(err, parts[1])
	}
	return models.DayHours{Day: day, From: from, To: to}, nil
}
