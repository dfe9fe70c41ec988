package config

type InternalConfig struct {
	App           App              `mapstructure:"app"`
	Origin        AppOrigin        `mapstructure:"origin"`
	Configuration AppConfiguration `mapstructure:"configuration"`
	Closures      AppClosures      `mapstructure:"closures"`
	Banner        AppBanner        `mapstructure:"banner"`
	Pages         AppPages         `mapstructure:"pages"`
	Icons         AppIcons         `mapstructure:"icons"`
	Announcement  AppAnnouncement  `mapstructure:"announcement"`
}

type App struct {
	Env                       string   `mapstructure:"env"`
	Port                      string   `mapstructure:"port"`
	Version                   string   `mapstructure:"version"`
	Address                   string   `mapstructure:"address"`
	Timezone                  string   `mapstructure:"timezone"`
	EndpointPrefix            string   `mapstructure:"endpoint_prefix"`
	AllowedOrigins            []string `mapstructure:"allowed_origins"`
	MaxRequests               int      `mapstructure:"max_requests"`
	MaxTimeRequestsPerSeconds int      `mapstructure:"max_time_requests_per_seconds"`
	ShutdownTimeoutInSeconds  int      `mapstructure:"shutdown_timeout_in_seconds"`
	RequestTimeoutInSeconds   int      `mapstructure:"request_timeout_in_seconds"`
}

// AppOrigin points at the CMS that serves the undecorated pages and the configuration sheet.
type AppOrigin struct {
	BaseUrl                 string `mapstructure:"base_url"`
	ConfigurationPath       string `mapstructure:"configuration_path"`
	NotFoundPath            string `mapstructure:"not_found_path"`
	UserAgent               string `mapstructure:"user_agent"`
	RequestTimeoutInSeconds int    `mapstructure:"request_timeout_in_seconds"`
	// MaxBodySizeInBytes caps an origin body before and after decompression; 0 disables the cap
	MaxBodySizeInBytes int64 `mapstructure:"max_body_size_in_bytes"`
}

type AppConfiguration struct {
	// CacheTTLInSeconds of 0 keeps the parsed sheet for the life of the process
	CacheTTLInSeconds int `mapstructure:"cache_ttl_in_seconds"`
	// RedisCacheTTLInSeconds of 0 disables the shared tier
	RedisCacheTTLInSeconds int `mapstructure:"redis_cache_ttl_in_seconds"`
}

type AppClosures struct {
	ObserveUSFederalHolidays bool   `mapstructure:"observe_us_federal_holidays"`
	OpeningHoursCategory     string `mapstructure:"opening_hours_category"`
}

type AppBanner struct {
	DaysAhead                 int      `mapstructure:"days_ahead"`
	PathSuffixes              []string `mapstructure:"path_suffixes"`
	AppearDelayInMilliseconds int      `mapstructure:"appear_delay_in_milliseconds"`
}

type AppPages struct {
	LazyStylesPath                   string `mapstructure:"lazy_styles_path"`
	DelayedScriptPath                string `mapstructure:"delayed_script_path"`
	DelayedScriptDelayInMilliseconds int    `mapstructure:"delayed_script_delay_in_milliseconds"`
	HostMessagesPath                 string `mapstructure:"host_messages_path"`
	QuickNavPlaceholder              string `mapstructure:"quick_nav_placeholder"`
	Language                         string `mapstructure:"language"`
	// Page requests are throttled per client IP and offenders blocked for RateLimitBlockInSeconds
	RateLimitPerSecond      int `mapstructure:"rate_limit_per_second"`
	RateLimitBurst          int `mapstructure:"rate_limit_burst"`
	RateLimitBlockInSeconds int `mapstructure:"rate_limit_block_in_seconds"`
}

// AppIcons selects where span.icon SVGs come from: "origin" or "storage" (minio bucket).
type AppIcons struct {
	Source                 string `mapstructure:"source"`
	OriginPath             string `mapstructure:"origin_path"`
	BucketName             string `mapstructure:"bucket_name"`
	RedisCacheTTLInSeconds int    `mapstructure:"redis_cache_ttl_in_seconds"`
	MaxConcurrentFetches   int    `mapstructure:"max_concurrent_fetches"`
}

type AppAnnouncement struct {
	CronSpec         string `mapstructure:"cron_spec"`
	Queue            string `mapstructure:"queue"`
	LockTTLInSeconds int    `mapstructure:"lock_ttl_in_seconds"`
}
