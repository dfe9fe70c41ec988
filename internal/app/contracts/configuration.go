package contracts

import (
	"context"
	"embrew-service/internal/app/models"
)

type ConfigurationUsecase interface {
	GetConfiguration(ctx context.Context) (*models.Configuration, error)
}
