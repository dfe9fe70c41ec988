package constvars

// Validation messages for users, map it with respective tag field
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"datetime": "must follow the %s format",
	"max":      "maximum at %s characters long",
	"alphanum": "must contain only alphanumeric characters",
	"oneof":    "must be one of [%s]",
}

var TagsWithParams = map[string]bool{
	"datetime": true,
	"max":      true,
	"oneof":    true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientPageNotAvailable              = "the page is not available right now"
	ErrClientMethodNotAllowed              = "method not allowed"
	ErrClientTooManyRequests               = "too many requests, you are temporarily blocked"
)

// Error messages for developers
const (
	ErrDevInvalidInput              = "invalid input"
	ErrDevMissingRequestID          = "request id missing from context"
	ErrDevRateLimited               = "client %s exceeded the rate limit"
	ErrDevValidationFailed          = "validation failed"
	ErrDevInvalidFormat             = "invalid %s format"
	ErrDevCannotMarshalJSON         = "cannot marshal JSON"
	ErrDevServerDeadlineExceeded    = "server deadline exceeded"
	ErrDevCreateHTTPRequest         = "failed to create HTTP request"
	ErrDevSendHTTPRequest           = "failed to send HTTP request"
	ErrDevReadBody                  = "failed to read response body"
	ErrDevOriginStatus              = "origin %s answered with status %d"
	ErrDevCannotParseConfiguration  = "cannot parse configuration sheet"
	ErrDevCannotParseSheetDate      = "cannot parse sheet date %q"
	ErrDevCannotParseTimeOfDay      = "cannot parse time of day %q"
	ErrDevBannerTemplateMissing     = "banner template %s/%s is missing"
	ErrDevPageElementMissing        = "page element <%s> is missing"
	ErrDevCannotParseHTML           = "cannot parse HTML document"
	ErrDevCannotRenderHTML          = "cannot render HTML document"
	ErrDevCannotEncodeBody          = "cannot encode body with %s"
	ErrDevCannotDecodeBody          = "cannot decode body with %s"
	ErrDevBodyTooLarge              = "origin body is larger than %d bytes"
	ErrDevStorageGetObject          = "failed to get object from bucket %s"
	ErrDevRedisGetNoData            = "failed to get data from redis with key %s"
	ErrDevRedisSetData              = "failed to set data into redis"
	ErrDevRedisDeleteData           = "failed to delete data from redis"
	ErrDevRedisEvalScript           = "failed to evaluate redis script"
	ErrDevRedisUnlock               = "failed to release redis lock"
	ErrDevMessagingPublish          = "failed to publish message to queue %s"
	ErrDevMessagingChannel          = "failed to open messaging channel"
	ErrDevMessagingDeclareQueue     = "failed to declare queue %s"
	ErrDevOpeningHoursMissingDay    = "opening hours for %s are missing"
	ErrDevOpeningHoursInvalidFormat = "opening hours %q must look like 11:00am-9:00pm"
)
