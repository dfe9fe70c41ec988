package config

import (
	"context"
	"log"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/minio/minio-go/v7"
	"github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
)

// Bootstrap holds the process wide drivers. Redis, RabbitMQ and Minio are nil when disabled.
type Bootstrap struct {
	Router         *chi.Mux
	Redis          *redis.Client
	Logger         *zap.Logger
	AccessLogger   *logrus.Logger
	RabbitMQ       *amqp091.Connection
	Minio          *minio.Client
	Location       *time.Location
	InternalConfig *InternalConfig
	DriverConfig   *DriverConfig
	// WorkerStop if set will be called during Shutdown to gracefully stop background workers
	WorkerStop func()
}

func (b *Bootstrap) Shutdown(ctx context.Context) error {
	if b.WorkerStop != nil {
		b.WorkerStop()
		log.Println("Successfully stopped announcement worker")
	}

	if b.Redis != nil {
		err := b.Redis.Close()
		if err != nil {
			return err
		}
		log.Println("Successfully closing Redis")
	}

	if b.RabbitMQ != nil {
		err := b.RabbitMQ.Close()
		if err != nil {
			return err
		}
		log.Println("Successfully closing RabbitMQ")
	}

	// zap returns EINVAL when syncing stdout on some platforms
	_ = b.Logger.Sync()
	log.Println("Successfully closing Logger")

	return nil
}
