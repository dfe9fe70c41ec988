package contracts

import (
	"context"
	"time"
)

// LockerService is a Redis lock. TryLock hands out an owner token that Unlock must present.
type LockerService interface {
	// TryLock reports false without error when another owner holds key.
	TryLock(ctx context.Context, key string, expiration time.Duration) (acquired bool, token string, err error)
	Unlock(ctx context.Context, key, token string) error
}
