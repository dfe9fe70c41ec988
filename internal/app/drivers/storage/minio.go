package storage

import (
	"context"
	"embrew-service/internal/app/config"
	"embrew-service/internal/pkg/constvars"
	"fmt"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/zap"
)

// NewMinio connects to the object store and, when icons are served from storage, checks the icon bucket.
func NewMinio(driverConfig *config.DriverConfig, internalConfig *config.InternalConfig, log *zap.Logger) *minio.Client {
	endPoint := fmt.Sprintf("%s:%s", driverConfig.Minio.Host, driverConfig.Minio.Port)
	minioClient, err := minio.New(endPoint, &minio.Options{
		Creds:  credentials.NewStaticV4(driverConfig.Minio.Username, driverConfig.Minio.Password, ""),
		Secure: driverConfig.Minio.UseSSL,
	})
	if err != nil {
		log.Fatal("Failed to initialize Minio Client", zap.Error(err))
	}

	if internalConfig.Icons.Source == constvars.IconSourceStorage {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		bucket := internalConfig.Icons.BucketName
		exists, err := minioClient.BucketExists(ctx, bucket)
		switch {
		case err != nil:
			log.Error("Failed to check icon bucket", zap.String(constvars.LoggingBucketKey, bucket), zap.Error(err))
		case !exists:
			log.Warn("Icon bucket does not exist, icons will be skipped", zap.String(constvars.LoggingBucketKey, bucket))
		}
	}

	log.Info("Successfully connected to minio", zap.String("endpoint", endPoint))
	return minioClient
}
