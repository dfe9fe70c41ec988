package contracts

import (
	"context"
	"embrew-service/internal/app/models"
	"net/http"
)

// OriginClient fetches resources from the CMS origin. Bodies come back decoded.
// Only transport, read and decoding failures are errors, any status code is returned as is.
type OriginClient interface {
	Fetch(ctx context.Context, path string, header http.Header) (*models.OriginResponse, error)
}
