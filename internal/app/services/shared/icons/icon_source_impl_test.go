package icons

import (
	"context"
	"embrew-service/internal/app/config"
	"embrew-service/internal/app/models"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockOriginClient struct {
	mock.Mock
}

func (m *MockOriginClient) Fetch(ctx context.Context, path string, header http.Header) (*models.OriginResponse, error) {
	args := m.Called(ctx, path, header)
	resp, _ := args.Get(0).(*models.OriginResponse)
	return resp, args.Error(1)
}

type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) GetObject(ctx context.Context, bucketName, objectName string) ([]byte, error) {
	args := m.Called(ctx, bucketName, objectName)
	object, _ := args.Get(0).([]byte)
	return object, args.Error(1)
}

type MockRedisRepository struct {
	mock.Mock
}

func (m *MockRedisRepository) Delete(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

func (m *MockRedisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	return m.Called(ctx, key, value, exp).Error(0)
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

const coffeeSVG = `<svg viewBox="0 0 10 10"></svg>`

func newIconsConfig(source string, ttl int) *config.InternalConfig {
	return &config.InternalConfig{Icons: config.AppIcons{
		Source:                 source,
		OriginPath:             "/icons",
		BucketName:             "icons",
		RedisCacheTTLInSeconds: ttl,
	}}
}

func TestOriginIconSource(t *testing.T) {
	origin := new(MockOriginClient)
	origin.On("Fetch", mock.Anything, "/icons/coffee.svg", mock.Anything).
		Return(&models.OriginResponse{StatusCode: 200, Body: []byte(coffeeSVG)}, nil)
	origin.On("Fetch", mock.Anything, "/icons/missing.svg", mock.Anything).
		Return(&models.OriginResponse{StatusCode: 404}, nil)

	source := NewIconSource(newIconsConfig("origin", 0), origin, nil, nil, zap.NewNop())

	icon, err := source.FetchIcon(context.Background(), "coffee")
	require.NoError(t, err)
	assert.Equal(t, coffeeSVG, string(icon))

	_, err = source.FetchIcon(context.Background(), "missing")
	assert.Error(t, err)
}

func TestIconNameValidation(t *testing.T) {
	origin := new(MockOriginClient)
	source := NewIconSource(newIconsConfig("origin", 0), origin, nil, nil, zap.NewNop())

	for _, name := range []string{"", "../secret", "Coffee", "a/b", "-dash"} {
		_, err := source.FetchIcon(context.Background(), name)
		assert.Error(t, err, name)
	}
	origin.AssertNotCalled(t, "Fetch", mock.Anything, mock.Anything, mock.Anything)
}

func TestStorageIconSource(t *testing.T) {
	storage := new(MockStorage)
	storage.On("GetObject", mock.Anything, "icons", "coffee.svg").Return([]byte(coffeeSVG), nil)

	source := NewIconSource(newIconsConfig("storage", 0), new(MockOriginClient), storage, nil, zap.NewNop())

	icon, err := source.FetchIcon(context.Background(), "coffee")
	require.NoError(t, err)
	assert.Equal(t, coffeeSVG, string(icon))
	storage.AssertExpectations(t)
}

func TestStorageSourceFallsBackToOriginWithoutClient(t *testing.T) {
	source := NewIconSource(newIconsConfig("storage", 0), new(MockOriginClient), nil, nil, zap.NewNop())
	_, ok := source.(*originIconSource)
	assert.True(t, ok)
}

func TestCachedIconSource(t *testing.T) {
	cachedValue, err := json.Marshal(coffeeSVG)
	require.NoError(t, err)

	t.Run("hit", func(t *testing.T) {
		origin := new(MockOriginClient)
		redisRepo := new(MockRedisRepository)
		redisRepo.On("Get", mock.Anything, "embrew:icon:coffee").Return(string(cachedValue), nil)

		source := NewIconSource(newIconsConfig("origin", 60), origin, nil, redisRepo, zap.NewNop())

		icon, err := source.FetchIcon(context.Background(), "coffee")
		require.NoError(t, err)
		assert.Equal(t, coffeeSVG, string(icon))
		origin.AssertNotCalled(t, "Fetch", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("miss writes back", func(t *testing.T) {
		origin := new(MockOriginClient)
		origin.On("Fetch", mock.Anything, "/icons/coffee.svg", mock.Anything).
			Return(&models.OriginResponse{StatusCode: 200, Body: []byte(coffeeSVG)}, nil)
		redisRepo := new(MockRedisRepository)
		redisRepo.On("Get", mock.Anything, "embrew:icon:coffee").Return("", nil)
		redisRepo.On("Set", mock.Anything, "embrew:icon:coffee", coffeeSVG, 60*time.Second).Return(nil)

		source := NewIconSource(newIconsConfig("origin", 60), origin, nil, redisRepo, zap.NewNop())

		icon, err := source.FetchIcon(context.Background(), "coffee")
		require.NoError(t, err)
		assert.Equal(t, coffeeSVG, string(icon))
		redisRepo.AssertExpectations(t)
	})

	t.Run("redis down", func(t *testing.T) {
		origin := new(MockOriginClient)
		origin.On("Fetch", mock.Anything, "/icons/coffee.svg", mock.Anything).
			Return(&models.OriginResponse{StatusCode: 200, Body: []byte(coffeeSVG)}, nil)
		redisRepo := new(MockRedisRepository)
		redisRepo.On("Get", mock.Anything, mock.Anything).Return("", errors.New("connection refused"))
		redisRepo.On("Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(errors.New("connection refused"))

		source := NewIconSource(newIconsConfig("origin", 60), origin, nil, redisRepo, zap.NewNop())

		icon, err := source.FetchIcon(context.Background(), "coffee")
		require.NoError(t, err)
		assert.Equal(t, coffeeSVG, string(icon))
	})

	t.Run("source error not cached", func(t *testing.T) {
		origin := new(MockOriginClient)
		origin.On("Fetch", mock.Anything, "/icons/coffee.svg", mock.Anything).Return(nil, errors.New("timeout"))
		redisRepo := new(MockRedisRepository)
		redisRepo.On("Get", mock.Anything, "embrew:icon:coffee").Return("", nil)

		source := NewIconSource(newIconsConfig("origin", 60), origin, nil, redisRepo, zap.NewNop())

		_, err := source.FetchIcon(context.Background(), "coffee")
		assert.Error(t, err)
		redisRepo.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}
