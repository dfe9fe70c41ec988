package contracts

import (
	"context"
	"time"
)

type BannerUsecase interface {
	ComposeBanner(ctx context.Context, surface PageSurface) error
	UpcomingClosures(ctx context.Context) ([]string, error)
	RenderBanner(ctx context.Context, closures []string) (string, error)
}

// PageSurface is the part of a rendered page the banner writes to.
type PageSurface interface {
	CurrentPath() string
	AppendBanner(markup string, appearAfter time.Duration) error
}
