package database

import (
	"context"
	"embrew-service/internal/app/config"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// NewRedisClient returns nil when Redis cannot be reached. Every Redis consumer here is an optional
// cache tier or the worker lock, so the service keeps serving pages without it.
func NewRedisClient(driverConfig *config.DriverConfig, log *zap.Logger) *redis.Client {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	addr := fmt.Sprintf("%s:%s", driverConfig.Redis.Host, driverConfig.Redis.Port)
	rdb := redis.NewClient(&redis.Options{
		Addr:       addr,
		Password:   driverConfig.Redis.Password,
		DB:         driverConfig.Redis.DB,
		ClientName: "embrew-service",
	})

	_, err := rdb.Ping(ctx).Result()
	if err != nil {
		log.Error("Could not connect to Redis, continuing without it", zap.String("addr", addr), zap.Error(err))
		_ = rdb.Close()
		return nil
	}

	log.Info("Successfully connected to Redis", zap.String("addr", addr))
	return rdb
}
