package configurations

import (
	"context"
	"embrew-service/internal/app/models"
	"net/http"
	"time"

	"github.com/stretchr/testify/mock"
)

type MockOriginClient struct {
	mock.Mock
}

func (m *MockOriginClient) Fetch(ctx context.Context, path string, header http.Header) (*models.OriginResponse, error) {
	args := m.Called(ctx, path, header)
	resp, _ := args.Get(0).(*models.OriginResponse)
	return resp, args.Error(1)
}

type MockRedisRepository struct {
	mock.Mock
}

func (m *MockRedisRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockRedisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	args := m.Called(ctx, key, value, exp)
	return args.Error(0)
}

func (m *MockRedisRepository) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockRedisRepository) TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error) {
	args := m.Called(ctx, key, value, exp)
	return args.Bool(0), args.Error(1)
}

func (m *MockRedisRepository) CompareAndDelete(ctx context.Context, key string, value interface{}) (bool, bool, error) {
	args := m.Called(ctx, key, value)
	return args.Bool(0), args.Bool(1), args.Error(2)
}
