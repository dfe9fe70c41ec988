package icons

import (
	"context"
	"embrew-service/internal/app/config"
	"embrew-service/internal/app/contracts"
	"embrew-service/internal/pkg/constvars"
	"embrew-service/internal/pkg/exceptions"
	"embrew-service/internal/pkg/utils"
	"fmt"
	"path"
	"regexp"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

var iconNamePattern = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]*$`)

const iconFileExtension = ".svg"

type originIconSource struct {
	origin   contracts.OriginClient
	basePath string
}

type storageIconSource struct {
	storage    contracts.Storage
	bucketName string
}

type cachedIconSource struct {
	next      contracts.IconSource
	redisRepo contracts.RedisRepository
	ttl       time.Duration
	Log       *zap.Logger
}

// NewIconSource picks origin or bucket storage by config and puts the redis cache in front when available.
// storage and redisRepo may be nil.
func NewIconSource(
	internalConfig *config.InternalConfig,
	origin contracts.OriginClient,
	storage contracts.Storage,
	redisRepo contracts.RedisRepository,
	logger *zap.Logger,
) contracts.IconSource {
	var source contracts.IconSource = &originIconSource{origin: origin, basePath: internalConfig.Icons.OriginPath}
	if internalConfig.Icons.Source == constvars.IconSourceStorage && storage != nil {
		source = &storageIconSource{storage: storage, bucketName: internalConfig.Icons.BucketName}
	}

	logger.Info("icon source selected", zap.String(constvars.LoggingIconSourceKey, internalConfig.Icons.Source))

	ttl := time.Duration(internalConfig.Icons.RedisCacheTTLInSeconds) * time.Second
	if redisRepo == nil || ttl <= 0 {
		return source
	}
	return &cachedIconSource{next: source, redisRepo: redisRepo, ttl: ttl, Log: logger}
}

func validateIconName(name string) error {
	if !iconNamePattern.MatchString(name) {
		return exceptions.ErrInvalidFormat(fmt.Errorf("icon name %q", name), "icon name")
	}
	return nil
}

func (s *originIconSource) FetchIcon(ctx context.Context, name string) ([]byte, error) {
	if err := validateIconName(name); err != nil {
		return nil, err
	}

	iconPath := path.Join("/", s.basePath, name+iconFileExtension)
	resp, err := s.origin.Fetch(ctx, iconPath, nil)
	if err != nil {
		return nil, err
	}
	if !resp.IsSuccess() {
		return nil, exceptions.ErrOriginStatus(iconPath, resp.StatusCode)
	}
	return resp.Body, nil
}

func (s *storageIconSource) FetchIcon(ctx context.Context, name string) ([]byte, error) {
	if err := validateIconName(name); err != nil {
		return nil, err
	}
	return s.storage.GetObject(ctx, s.bucketName, name+iconFileExtension)
}

func (s *cachedIconSource) FetchIcon(ctx context.Context, name string) ([]byte, error) {
	requestID := utils.GetRequestID(ctx)
	key := fmt.Sprintf(constvars.RedisKeyIconFormat, name)

	cached, err := s.redisRepo.Get(ctx, key)
	if err != nil {
		s.Log.Warn("cachedIconSource.FetchIcon error reading cache, falling back to source",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRedisKey, key),
			zap.Error(err),
		)
	} else if cached != "" {
		var svg string
		if err := json.Unmarshal([]byte(cached), &svg); err == nil {
			return []byte(svg), nil
		}
	}

	icon, err := s.next.FetchIcon(ctx, name)
	if err != nil {
		return nil, err
	}

	if err := s.redisRepo.Set(ctx, key, string(icon), s.ttl); err != nil {
		s.Log.Warn("cachedIconSource.FetchIcon error writing cache",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRedisKey, key),
			zap.Error(err),
		)
	}
	return icon, nil
}
