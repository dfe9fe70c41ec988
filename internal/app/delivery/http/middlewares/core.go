package middlewares

import (
	"context"
	"embrew-service/internal/pkg/constvars"
	"embrew-service/internal/pkg/utils"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// maxClientRequestIDLength bounds ids taken from X-Request-ID before they reach the logs.
const maxClientRequestIDLength = 64

type responseRecorder struct {
	http.ResponseWriter
	statusCode int
	written    int
}

func (rec *responseRecorder) WriteHeader(code int) {
	rec.statusCode = code
	rec.ResponseWriter.WriteHeader(code)
}

func (rec *responseRecorder) Write(b []byte) (int, error) {
	n, err := rec.ResponseWriter.Write(b)
	rec.written += n
	return n, err
}

// Logging writes one line per request. Pages and API calls share it, 5xx are logged as errors.
func (m *Middlewares) Logging(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			requestID := utils.GetRequestID(r.Context())

			logger.Debug("Request started",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingMethodKey, r.Method),
				zap.String(constvars.LoggingEndpointKey, r.URL.Path),
				zap.String(constvars.LoggingQueryKey, r.URL.RawQuery),
				zap.String(constvars.LoggingRemoteAddrKey, r.RemoteAddr),
				zap.String(constvars.LoggingUserAgentKey, r.UserAgent()),
			)

			rec := &responseRecorder{ResponseWriter: w, statusCode: http.StatusOK}
			next.ServeHTTP(rec, r)

			level := zapcore.InfoLevel
			if rec.statusCode >= constvars.StatusInternalServerError {
				level = zapcore.ErrorLevel
			}
			logger.Log(level, "Request completed",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingMethodKey, r.Method),
				zap.String(constvars.LoggingEndpointKey, r.URL.Path),
				zap.Int(constvars.LoggingStatusCodeKey, rec.statusCode),
				zap.Int(constvars.LoggingResponseLengthKey, rec.written),
				zap.String(constvars.LoggingEncodingKey, rec.Header().Get(constvars.HeaderContentEncoding)),
				zap.Duration(constvars.LoggingDurationKey, time.Since(start)),
				zap.Bool(constvars.LoggingSuccessKey, rec.statusCode < constvars.StatusBadRequest),
			)
		})
	}
}

// RequestIDMiddleware keeps a well formed X-Request-ID from the client and generates one otherwise.
func (m *Middlewares) RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(constvars.HeaderXRequestID)
		isClientRequestID := isValidClientRequestID(requestID)
		if !isClientRequestID {
			requestID = utils.GenerateRequestID()
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_REQUEST_ID_KEY, requestID)
		ctx = context.WithValue(ctx, constvars.CONTEXT_IS_CLIENT_REQUEST_ID_KEY, isClientRequestID)

		w.Header().Set(constvars.HeaderXRequestID, requestID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func isValidClientRequestID(requestID string) bool {
	if requestID == "" || len(requestID) > maxClientRequestIDLength {
		return false
	}
	return !strings.ContainsFunc(requestID, func(r rune) bool {
		return r <= ' ' || r > '~'
	})
}
