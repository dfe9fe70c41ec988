package constvars

const (
	MethodGet     = "GET"
	MethodHead    = "HEAD"
	MethodPost    = "POST"
	MethodPut     = "PUT"
	MethodPatch   = "PATCH"
	MethodDelete  = "DELETE"
	MethodOptions = "OPTIONS"
)

const (
	MIMETextHTML        = "text/html"
	MIMETextPlain       = "text/plain"
	MIMEImageSVG        = "image/svg+xml"
	MIMEApplicationJSON = "application/json"

	MIMETextHTMLCharsetUTF8        = "text/html; charset=utf-8"
	MIMEApplicationJSONCharsetUTF8 = "application/json; charset=utf-8"
)

const (
	StatusOK                  = 200
	StatusMovedPermanently    = 301
	StatusFound               = 302
	StatusNotModified         = 304
	StatusBadRequest          = 400
	StatusNotFound            = 404
	StatusMethodNotAllowed    = 405
	StatusTooManyRequests     = 429
	StatusInternalServerError = 500
	StatusBadGateway          = 502
	StatusServiceUnavailable  = 503
	StatusGatewayTimeout      = 504
)

const (
	HeaderAccept          = "Accept"
	HeaderAcceptEncoding  = "Accept-Encoding"
	HeaderAuthorization   = "Authorization"
	HeaderCacheControl    = "Cache-Control"
	HeaderContentEncoding = "Content-Encoding"
	HeaderContentLength   = "Content-Length"
	HeaderContentType     = "Content-Type"
	HeaderCookie          = "Cookie"
	HeaderETag            = "ETag"
	HeaderLastModified    = "Last-Modified"
	HeaderLocation        = "Location"
	HeaderRetryAfter      = "Retry-After"
	HeaderUserAgent       = "User-Agent"
	HeaderVary            = "Vary"
	HeaderXRequestID      = "X-Request-ID"
)

const (
	EncodingIdentity = "identity"
	EncodingBrotli   = "br"
	EncodingGzip     = "gzip"
)
