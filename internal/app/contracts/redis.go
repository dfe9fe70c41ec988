package contracts

import (
	"context"
	"time"
)

type RedisRepository interface {
	Delete(ctx context.Context, key string) error
	Set(ctx context.Context, key string, value interface{}, exp time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error)
	// CompareAndDelete removes key only while it still holds value, atomically.
	CompareAndDelete(ctx context.Context, key string, value interface{}) (existed bool, deleted bool, err error)
}
