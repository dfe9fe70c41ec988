package banners

import (
	"context"
	"embrew-service/internal/app/config"
	"embrew-service/internal/app/contracts"
	"embrew-service/internal/pkg/constvars"
	"embrew-service/internal/pkg/exceptions"
	"embrew-service/internal/pkg/utils"
	"strings"
	"time"

	"go.uber.org/zap"
)

type bannerUsecase struct {
	ConfigurationUsecase contracts.ConfigurationUsecase
	ClosureUsecase       contracts.ClosureUsecase
	Clock                contracts.Clock
	InternalConfig       *config.InternalConfig
	Log                  *zap.Logger
}

func NewBannerUsecase(
	configurationUsecase contracts.ConfigurationUsecase,
	closureUsecase contracts.ClosureUsecase,
	clock contracts.Clock,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.BannerUsecase {
	return &bannerUsecase{
		ConfigurationUsecase: configurationUsecase,
		ClosureUsecase:       closureUsecase,
		Clock:                clock,
		InternalConfig:       internalConfig,
		Log:                  logger,
	}
}

// ComposeBanner appends the closed-days banner to pages whose path ends with one of the
// configured suffixes. Nothing is written when no closure is coming up.
func (uc *bannerUsecase) ComposeBanner(ctx context.Context, surface contracts.PageSurface) error {
	requestID := utils.GetRequestID(ctx)
	path := surface.CurrentPath()
	uc.Log.Info("bannerUsecase.ComposeBanner called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPathKey, path),
	)

	if !utils.HasAnySuffix(path, uc.InternalConfig.Banner.PathSuffixes) {
		return nil
	}

	closures, err := uc.UpcomingClosures(ctx)
	if err != nil {
		return err
	}
	if len(closures) == 0 {
		return nil
	}

	markup, err := uc.RenderBanner(ctx, closures)
	if err != nil {
		return err
	}

	appearAfter := time.Duration(uc.InternalConfig.Banner.AppearDelayInMilliseconds) * time.Millisecond
	if err := surface.AppendBanner(markup, appearAfter); err != nil {
		uc.Log.Error("bannerUsecase.ComposeBanner error appending banner",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	uc.Log.Info("bannerUsecase.ComposeBanner succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingClosureCountKey, len(closures)),
	)
	return nil
}

// UpcomingClosures lists the closures from today on, e.g. ["Today Staff Party", "Thanksgiving"].
func (uc *bannerUsecase) UpcomingClosures(ctx context.Context) ([]string, error) {
	requestID := utils.GetRequestID(ctx)

	daysAhead := uc.InternalConfig.Banner.DaysAhead
	if daysAhead <= 0 {
		daysAhead = constvars.DefaultBannerDaysAhead
	}

	today := utils.StartOfDay(uc.Clock.Now())
	closures := make([]string, 0)
	for daysOut := 0; daysOut < daysAhead; daysOut++ {
		date := today.AddDate(0, 0, daysOut)

		result, err := uc.ClosureUsecase.IsClosed(ctx, date, "")
		if err != nil {
			uc.Log.Error("bannerUsecase.UpcomingClosures error calling ClosureUsecase.IsClosed",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingDateKey, date.Format(constvars.DateQueryLayout)),
				zap.Error(err),
			)
			return nil, err
		}

		reason := result.Reason()
		if reason == "" {
			continue
		}
		if prefix := closurePrefix(daysOut); prefix != "" {
			reason = prefix + " " + reason
		}
		closures = append(closures, reason)
	}

	uc.Log.Info("bannerUsecase.UpcomingClosures succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingClosureCountKey, len(closures)),
	)
	return closures, nil
}

// RenderBanner fills the first "..." of the Closed banner template with the joined closures.
func (uc *bannerUsecase) RenderBanner(ctx context.Context, closures []string) (string, error) {
	configuration, err := uc.ConfigurationUsecase.GetConfiguration(ctx)
	if err != nil {
		return "", err
	}

	template, ok := configuration.Value(constvars.ConfigurationCategoryBannerTemplates, constvars.ConfigurationKeyClosedTemplate)
	if !ok {
		return "", exceptions.ErrBannerTemplateMissing(constvars.ConfigurationCategoryBannerTemplates, constvars.ConfigurationKeyClosedTemplate)
	}

	joined := strings.Join(closures, constvars.BannerClosuresJoiner)
	return strings.Replace(template, constvars.BannerPlaceholder, joined, 1), nil
}

func closurePrefix(daysOut int) string {
	switch daysOut {
	case 0:
		return constvars.ClosurePrefixToday
	case 1:
		return constvars.ClosurePrefixTomorrow
	default:
		return ""
	}
}
