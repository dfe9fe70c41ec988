package configurations

import (
	"context"
	"embrew-service/internal/app/config"
	"embrew-service/internal/app/contracts"
	"embrew-service/internal/app/models"
	"embrew-service/internal/pkg/constvars"
	"embrew-service/internal/pkg/exceptions"
	"embrew-service/internal/pkg/utils"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	cacheTierRedis  = "redis"
	cacheTierOrigin = "origin"

	loadGroupKey = "configuration"
)

type configurationUsecase struct {
	OriginClient    contracts.OriginClient
	RedisRepository contracts.RedisRepository
	InternalConfig  *config.InternalConfig
	Log             *zap.Logger

	now       func() time.Time
	mu        sync.RWMutex
	cached    *models.Configuration
	fetchedAt time.Time
	loads     singleflight.Group
}

// NewConfigurationUsecase returns the sheet backed configuration store. redisRepository may be nil.
func NewConfigurationUsecase(
	originClient contracts.OriginClient,
	redisRepository contracts.RedisRepository,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.ConfigurationUsecase {
	return &configurationUsecase{
		OriginClient:    originClient,
		RedisRepository: redisRepository,
		InternalConfig:  internalConfig,
		Log:             logger,
		now:             time.Now,
	}
}

// GetConfiguration fetches the sheet on first use and returns the same instance afterwards.
// Concurrent first callers share one fetch. Failures are not cached.
func (uc *configurationUsecase) GetConfiguration(ctx context.Context) (*models.Configuration, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Debug("configurationUsecase.GetConfiguration called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if configuration := uc.cachedConfiguration(); configuration != nil {
		return configuration, nil
	}

	// the shared load must not die with whichever request happened to start it
	loadCtx := context.WithoutCancel(ctx)
	result, err, shared := uc.loads.Do(loadGroupKey, func() (interface{}, error) {
		if configuration := uc.cachedConfiguration(); configuration != nil {
			return configuration, nil
		}
		configuration, err := uc.loadConfiguration(loadCtx)
		if err != nil {
			return nil, err
		}
		uc.storeConfiguration(configuration)
		return configuration, nil
	})
	if err != nil {
		uc.Log.Error("configurationUsecase.GetConfiguration error loading configuration",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("configurationUsecase.GetConfiguration succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Bool("shared", shared),
	)
	return result.(*models.Configuration), nil
}

func (uc *configurationUsecase) cachedConfiguration() *models.Configuration {
	uc.mu.RLock()
	defer uc.mu.RUnlock()

	if uc.cached == nil {
		return nil
	}
	ttl := time.Duration(uc.InternalConfig.Configuration.CacheTTLInSeconds) * time.Second
	if ttl > 0 && uc.now().Sub(uc.fetchedAt) >= ttl {
		return nil
	}
	return uc.cached
}

func (uc *configurationUsecase) storeConfiguration(configuration *models.Configuration) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.cached = configuration
	uc.fetchedAt = uc.now()
}

func (uc *configurationUsecase) redisTTL() time.Duration {
	if uc.RedisRepository == nil {
		return 0
	}
	return time.Duration(uc.InternalConfig.Configuration.RedisCacheTTLInSeconds) * time.Second
}

func (uc *configurationUsecase) loadConfiguration(ctx context.Context) (*models.Configuration, error) {
	requestID := utils.GetRequestID(ctx)

	if configuration := uc.loadFromRedis(ctx); configuration != nil {
		uc.Log.Info("configurationUsecase.loadConfiguration served from cache",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingCacheTierKey, cacheTierRedis),
		)
		return configuration, nil
	}

	path := uc.InternalConfig.Origin.ConfigurationPath
	resp, err := uc.OriginClient.Fetch(ctx, path, nil)
	if err != nil {
		return nil, err
	}
	if !resp.IsSuccess() {
		return nil, exceptions.ErrOriginStatus(path, resp.StatusCode)
	}

	configuration, err := parseSheet(resp.Body, uc.Log)
	if err != nil {
		return nil, exceptions.ErrCannotParseConfiguration(err)
	}

	uc.Log.Info("configurationUsecase.loadConfiguration fetched sheet",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingCacheTierKey, cacheTierOrigin),
		zap.Int(constvars.LoggingCategoryCountKey, len(configuration.CategoryNames())),
	)

	uc.saveToRedis(ctx, configuration)
	return configuration, nil
}

func (uc *configurationUsecase) loadFromRedis(ctx context.Context) *models.Configuration {
	if uc.redisTTL() <= 0 {
		return nil
	}
	requestID := utils.GetRequestID(ctx)

	data, err := uc.RedisRepository.Get(ctx, constvars.RedisKeyConfiguration)
	if err != nil {
		uc.Log.Warn("configurationUsecase.loadFromRedis error reading cache",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil
	}
	if data == "" {
		return nil
	}

	configuration := models.NewConfiguration()
	if err := json.Unmarshal([]byte(data), configuration); err != nil {
		uc.Log.Warn("configurationUsecase.loadFromRedis error unmarshaling cached sheet",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil
	}
	return configuration
}

func (uc *configurationUsecase) saveToRedis(ctx context.Context, configuration *models.Configuration) {
	ttl := uc.redisTTL()
	if ttl <= 0 {
		return
	}
	if err := uc.RedisRepository.Set(ctx, constvars.RedisKeyConfiguration, configuration, ttl); err != nil {
		uc.Log.Warn("configurationUsecase.saveToRedis error writing cache",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.Error(err),
		)
	}
}
