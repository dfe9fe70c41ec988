package pages

import (
	"context"
	"embrew-service/internal/app/config"
	"embrew-service/internal/app/contracts"
	"embrew-service/internal/pkg/constvars"
	"embrew-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type decorationStep struct {
	name string
	run  func(ctx context.Context, doc *document) error
}

type pageDecorator struct {
	OriginClient   contracts.OriginClient
	IconSource     contracts.IconSource
	BannerUsecase  contracts.BannerUsecase
	InternalConfig *config.InternalConfig
	Log            *zap.Logger
}

func withoutContext(fn func(doc *document) error) func(context.Context, *document) error {
	return func(_ context.Context, doc *document) error {
		return fn(doc)
	}
}

func (pd *pageDecorator) steps() []decorationStep {
	return []decorationStep{
		{name: "buildHeroBlock", run: withoutContext(buildHeroBlock)},
		{name: "markImageOnlySections", run: withoutContext(markImageOnlySections)},
		{name: "removeSquareupLinks", run: withoutContext(removeSquareupLinks)},
		{name: "decoratePhoneLinks", run: withoutContext(decoratePhoneLinks)},
		{name: "wrapSections", run: withoutContext(wrapSections)},
		{name: "decorateHeroSection", run: withoutContext(decorateHeroSection)},
		{name: "hideTitle", run: withoutContext(hideTitle)},
		{name: "addQuickNav", run: withoutContext(pd.addQuickNav)},
		{name: "decorateIcons", run: pd.decorateIcons},
		{name: "embedHostMessages", run: pd.embedHostMessages},
		{name: "loadEager", run: withoutContext(loadEager)},
		{name: "loadLazy", run: withoutContext(pd.loadLazy)},
		{name: "loadDelayed", run: withoutContext(pd.loadDelayed)},
		{name: "composeBanner", run: func(ctx context.Context, doc *document) error {
			return pd.BannerUsecase.ComposeBanner(ctx, doc)
		}},
	}
}

// decorate runs every step on doc. A failing step is logged and the remaining steps still run;
// only a cancelled context stops the sequence.
func (pd *pageDecorator) decorate(ctx context.Context, doc *document) error {
	requestID := utils.GetRequestID(ctx)

	for _, step := range pd.steps() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := step.run(ctx, doc); err != nil {
			pd.Log.Warn("pageDecorator.decorate step failed",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingDecorationStepKey, step.name),
				zap.String(constvars.LoggingPathKey, doc.CurrentPath()),
				zap.Error(err),
			)
		}
	}
	return nil
}
