package redis

import (
	"context"
	"embrew-service/internal/app/contracts"
	"embrew-service/internal/pkg/exceptions"
	"time"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

// compareAndDeleteScript deletes the key only while it holds the caller's value.
// 0: key missing, 1: deleted, -1: held by another value.
var compareAndDeleteScript = redis.NewScript(`
local current = redis.call("GET", KEYS[1])
if not current then
	return 0
end
if current == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return -1
`)

type redisRepository struct {
	client *redis.Client
}

func NewRedisRepository(client *redis.Client) contracts.RedisRepository {
	return &redisRepository{client: client}
}

func (r *redisRepository) Delete(ctx context.Context, key string) error {
	err := r.client.Del(ctx, key).Err()
	if err != nil {
		return exceptions.ErrRedisDelete(err)
	}
	return err
}

func (r *redisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	jsonValue, err := json.Marshal(value)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	err = r.client.Set(ctx, key, jsonValue, exp).Err()
	if err != nil {
		return exceptions.ErrRedisSet(err)
	}
	return err
}

// Get returns an empty string without error when the key does not exist.
func (r *redisRepository) Get(ctx context.Context, key string) (string, error) {
	data, err := r.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return data, nil
	} else if err != nil {
		return data, exceptions.ErrRedisGetNoData(err, key)
	}

	return data, err
}

func (r *redisRepository) TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error) {
	jsonValue, err := json.Marshal(value)
	if err != nil {
		return false, exceptions.ErrCannotMarshalJSON(err)
	}

	acquired, err := r.client.SetNX(ctx, key, jsonValue, exp).Result()
	if err != nil {
		return false, exceptions.ErrRedisSet(err)
	}
	return acquired, nil
}

func (r *redisRepository) CompareAndDelete(ctx context.Context, key string, value interface{}) (bool, bool, error) {
	jsonValue, err := json.Marshal(value)
	if err != nil {
		return false, false, exceptions.ErrCannotMarshalJSON(err)
	}

	result, err := compareAndDeleteScript.Run(ctx, r.client, []string{key}, string(jsonValue)).Int()
	if err != nil {
		return false, false, exceptions.ErrRedisEval(err)
	}
	return result != 0, result == 1, nil
}
