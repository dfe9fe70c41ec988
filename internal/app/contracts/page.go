package contracts

import (
	"context"
	"embrew-service/internal/app/models"
	"net/http"
)

type PageUsecase interface {
	RenderPage(ctx context.Context, path string, header http.Header) (*models.RenderedPage, error)
}

type IconSource interface {
	FetchIcon(ctx context.Context, name string) ([]byte, error)
}
