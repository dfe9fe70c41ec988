package constvars

const (
	LoggingRequestIDKey      = "request_id"
	LoggingMethodKey         = "method"
	LoggingEndpointKey       = "endpoint"
	LoggingRemoteAddrKey     = "remote_addr"
	LoggingUserAgentKey      = "user_agent"
	LoggingQueryKey          = "query"
	LoggingStatusCodeKey     = "status_code"
	LoggingDurationKey       = "duration"
	LoggingSuccessKey        = "success"
	LoggingOperationKey      = "operation"
	LoggingErrorCodeKey      = "error_code"
	LoggingErrorMessageKey   = "error_message"
	LoggingURLKey            = "url"
	LoggingPathKey           = "path"
	LoggingResponseLengthKey = "response_length"
	LoggingEncodingKey       = "encoding"

	LoggingCategoryKey       = "category"
	LoggingCategoryCountKey  = "category_count"
	LoggingRowCountKey       = "row_count"
	LoggingRowIndexKey       = "row_index"
	LoggingCacheTierKey      = "cache_tier"
	LoggingDateKey           = "date"
	LoggingOrderTypeKey      = "order_type"
	LoggingClosureKindKey    = "closure_kind"
	LoggingClosureReasonKey  = "closure_reason"
	LoggingClosureLabelKey   = "closure_label"
	LoggingClosureCountKey   = "closure_count"
	LoggingDecorationStepKey = "decoration_step"
	LoggingIconNameKey       = "icon_name"
	LoggingIconCountKey      = "icon_count"
	LoggingRedisKey          = "redis_key"
	LoggingBucketKey         = "bucket"
	LoggingQueueKey          = "queue"
	LoggingMessageIDKey      = "message_id"
	LoggingLockExpirationKey = "lock_expiration"
	LoggingLockValueKey      = "lock_value"
	LoggingCronSpecKey       = "cron_spec"
	LoggingIconSourceKey     = "icon_source"
)
