package storage

import (
	"context"
	"embrew-service/internal/app/contracts"
	"embrew-service/internal/pkg/exceptions"
	"io"

	"github.com/minio/minio-go/v7"
)

type minioStorage struct {
	MinioClient *minio.Client
}

func NewMinioStorage(minioClient *minio.Client) contracts.Storage {
	return &minioStorage{
		MinioClient: minioClient,
	}
}

func (m *minioStorage) GetObject(ctx context.Context, bucketName, objectName string) ([]byte, error) {
	object, err := m.MinioClient.GetObject(ctx, bucketName, objectName, minio.GetObjectOptions{})
	if err != nil {
		return nil, exceptions.ErrStorageGetObject(err, bucketName)
	}
	defer object.Close()

	// minio reports a missing object on the first read, not on GetObject
	data, err := io.ReadAll(object)
	if err != nil {
		return nil, exceptions.ErrStorageGetObject(err, bucketName)
	}
	return data, nil
}
