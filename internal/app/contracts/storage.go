package contracts

import (
	"context"
)

type Storage interface {
	GetObject(ctx context.Context, bucketName, objectName string) ([]byte, error)
}
