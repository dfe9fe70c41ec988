package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	ResourceConfiguration = "configuration"
	ResourceClosures      = "closures"
	ResourceOpeningHours  = "opening-hours"
)

const (
	AppEnvDevelopment = "development"
	AppEnvProduction  = "production"
)

const (
	IconSourceOrigin  = "origin"
	IconSourceStorage = "storage"
)

const (
	RedisKeyConfiguration         = "embrew:configuration"
	RedisKeyIconFormat            = "embrew:icon:%s"
	RedisKeyAnnouncementRunFormat = "embrew:announcement:%s"
)

const (
	DateQueryLayout = "2006-01-02"
)
