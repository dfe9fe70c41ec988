package middlewares

import (
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// AccessLog writes one line per request to the access logger, timestamped in the business timezone.
func (m *Middlewares) AccessLog(location *time.Location, log *logrus.Logger) func(next http.Handler) http.Handler {
	if location == nil {
		location = time.UTC
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &responseRecorder{ResponseWriter: w, statusCode: http.StatusOK}
			next.ServeHTTP(rec, r)

			log.WithFields(logrus.Fields{
				"time":        start.In(location).Format(time.RFC3339),
				"remote_addr": r.RemoteAddr,
				"method":      r.Method,
				"uri":         r.RequestURI,
				"status":      rec.statusCode,
				"bytes":       rec.written,
				"duration":    time.Since(start).String(),
				"user_agent":  r.UserAgent(),
			}).Info("access")
		})
	}
}
