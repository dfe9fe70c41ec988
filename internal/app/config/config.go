package config

import (
	"embrew-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		Redis: Redis{
			Enabled:  utils.GetEnvBool("REDIS_ENABLED", false),
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
			DB:       utils.GetEnvInt("REDIS_DB", 0),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
			AccessLogFileName:   utils.GetEnvString("LOGGER_ACCESS_LOG_FILENAME", "access.log"),
		},
		RabbitMQ: RabbitMQ{
			Enabled:  utils.GetEnvBool("RABBITMQ_ENABLED", false),
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
			VHost:    utils.GetEnvString("RABBITMQ_VHOST", "/"),
		},
		Minio: Minio{
			Enabled:  utils.GetEnvBool("MINIO_ENABLED", false),
			Port:     utils.GetEnvString("MINIO_PORT", "9000"),
			Host:     utils.GetEnvString("MINIO_HOST", "localhost"),
			Username: utils.GetEnvString("MINIO_USERNAME", "minioadmin"),
			Password: utils.GetEnvString("MINIO_PASSWORD", "minioadmin"),
			UseSSL:   utils.GetEnvBool("MINIO_USE_SSL", false),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                       utils.GetEnvString("APP_ENV", "development"),
			Port:                      utils.GetEnvString("APP_PORT", ":8080"),
			Version:                   utils.GetEnvString("APP_VERSION", "v1"),
			Address:                   utils.GetEnvString("APP_ADDRESS", "localhost"),
			Timezone:                  utils.GetEnvString("APP_TIMEZONE", "America/Denver"),
			EndpointPrefix:            utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			AllowedOrigins:            utils.GetEnvStringSlice("APP_ALLOWED_ORIGINS", "*"),
			MaxRequests:               utils.GetEnvInt("APP_MAX_REQUEST", 100),
			MaxTimeRequestsPerSeconds: utils.GetEnvInt("APP_MAX_TIME_REQUESTS_PER_SECONDS", 60),
			ShutdownTimeoutInSeconds:  utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT_IN_SECONDS", 10),
			RequestTimeoutInSeconds:   utils.GetEnvInt("APP_REQUEST_TIMEOUT_IN_SECONDS", 10),
		},
		Origin: AppOrigin{
			BaseUrl:                 utils.GetEnvString("ORIGIN_BASE_URL", "http://localhost:3000"),
			ConfigurationPath:       utils.GetEnvString("ORIGIN_CONFIGURATION_PATH", "/configuration.json"),
			NotFoundPath:            utils.GetEnvString("ORIGIN_NOT_FOUND_PATH", "/global/404.plain.html"),
			UserAgent:               utils.GetEnvString("ORIGIN_USER_AGENT", "embrew-service"),
			RequestTimeoutInSeconds: utils.GetEnvInt("ORIGIN_REQUEST_TIMEOUT_IN_SECONDS", 10),
			MaxBodySizeInBytes:      int64(utils.GetEnvInt("ORIGIN_MAX_BODY_SIZE_IN_BYTES", 10<<20)),
		},
		Configuration: AppConfiguration{
			CacheTTLInSeconds:      utils.GetEnvInt("CONFIGURATION_CACHE_TTL_IN_SECONDS", 0),
			RedisCacheTTLInSeconds: utils.GetEnvInt("CONFIGURATION_REDIS_CACHE_TTL_IN_SECONDS", 0),
		},
		Closures: AppClosures{
			ObserveUSFederalHolidays: utils.GetEnvBool("CLOSURES_OBSERVE_US_FEDERAL_HOLIDAYS", false),
			OpeningHoursCategory:     utils.GetEnvString("CLOSURES_OPENING_HOURS_CATEGORY", "Hours"),
		},
		Banner: AppBanner{
			DaysAhead:                 utils.GetEnvInt("BANNER_DAYS_AHEAD", 10),
			PathSuffixes:              utils.GetEnvStringSlice("BANNER_PATH_SUFFIXES", "/,order,reservation"),
			AppearDelayInMilliseconds: utils.GetEnvInt("BANNER_APPEAR_DELAY_IN_MILLISECONDS", 100),
		},
		Pages: AppPages{
			LazyStylesPath:                   utils.GetEnvString("PAGES_LAZY_STYLES_PATH", "/styles/lazy-styles.css"),
			DelayedScriptPath:                utils.GetEnvString("PAGES_DELAYED_SCRIPT_PATH", "/scripts/delayed.js"),
			DelayedScriptDelayInMilliseconds: utils.GetEnvInt("PAGES_DELAYED_SCRIPT_DELAY_IN_MILLISECONDS", 3000),
			HostMessagesPath:                 utils.GetEnvString("PAGES_HOST_MESSAGES_PATH", "/host-messages"),
			QuickNavPlaceholder:              utils.GetEnvString("PAGES_QUICK_NAV_PLACEHOLDER", "Browse the menu ..."),
			Language:                         utils.GetEnvString("PAGES_LANGUAGE", "en"),
			RateLimitPerSecond:               utils.GetEnvInt("PAGES_RATE_LIMIT_PER_SECOND", 20),
			RateLimitBurst:                   utils.GetEnvInt("PAGES_RATE_LIMIT_BURST", 60),
			RateLimitBlockInSeconds:          utils.GetEnvInt("PAGES_RATE_LIMIT_BLOCK_IN_SECONDS", 30),
		},
		Icons: AppIcons{
			Source:                 utils.GetEnvString("ICONS_SOURCE", "origin"),
			OriginPath:             utils.GetEnvString("ICONS_ORIGIN_PATH", "/icons"),
			BucketName:             utils.GetEnvString("ICONS_BUCKET_NAME", "icons"),
			RedisCacheTTLInSeconds: utils.GetEnvInt("ICONS_REDIS_CACHE_TTL_IN_SECONDS", 3600),
			MaxConcurrentFetches:   utils.GetEnvInt("ICONS_MAX_CONCURRENT_FETCHES", 8),
		},
		Announcement: AppAnnouncement{
			CronSpec:         utils.GetEnvString("ANNOUNCEMENT_CRON_SPEC", "@daily"),
			Queue:            utils.GetEnvString("ANNOUNCEMENT_QUEUE", "closure_announcements"),
			LockTTLInSeconds: utils.GetEnvInt("ANNOUNCEMENT_LOCK_TTL_IN_SECONDS", 86400),
		},
	}
}
