package contracts

import (
	"context"
	"embrew-service/internal/app/models"
	"time"
)

type ClosureUsecase interface {
	IsClosed(ctx context.Context, date time.Time, orderType string) (models.ClosureResult, error)
	OpeningHours(ctx context.Context) ([]models.DayHours, error)
}

type Clock interface {
	Now() time.Time
	Location() *time.Location
}
