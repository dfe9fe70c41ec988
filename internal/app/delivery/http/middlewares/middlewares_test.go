package middlewares

import (
	"bytes"
	"embrew-service/internal/pkg/constvars"
	"embrew-service/internal/pkg/utils"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestMiddlewares() *Middlewares {
	return &Middlewares{Log: zap.NewNop()}
}

func TestRequestIDMiddleware(t *testing.T) {
	m := newTestMiddlewares()
	var seen string
	handler := m.RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = utils.GetRequestID(r.Context())
	}))

	t.Run("generated", func(t *testing.T) {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.NotEmpty(t, seen)
		assert.Equal(t, seen, rr.Header().Get(constvars.HeaderXRequestID))
	})

	t.Run("from client", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(constvars.HeaderXRequestID, "client-id")
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, "client-id", seen)
		assert.Equal(t, "client-id", rr.Header().Get(constvars.HeaderXRequestID))
	})

	for name, clientID := range map[string]string{
		"oversized":     strings.Repeat("a", 65),
		"control chars": "id\nforged log line",
	} {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set(constvars.HeaderXRequestID, clientID)
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.NotEqual(t, clientID, seen)
			assert.NotEmpty(t, seen)
		})
	}
}

func TestErrorHandlerRecoversPanics(t *testing.T) {
	m := newTestMiddlewares()
	handler := m.ErrorHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rr := httptest.NewRecorder()
	require.NotPanics(t, func() {
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	})

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, false, body["success"])
}

func TestAccessLog(t *testing.T) {
	var buf bytes.Buffer
	accessLogger := logrus.New()
	accessLogger.SetOutput(&buf)
	accessLogger.SetFormatter(&logrus.JSONFormatter{})

	m := newTestMiddlewares()
	handler := m.AccessLog(time.UTC, accessLogger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("short and stout"))
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/menu?x=1", nil))

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "GET", entry["method"])
	assert.Equal(t, "/menu?x=1", entry["uri"])
	assert.EqualValues(t, http.StatusTeapot, entry["status"])
	assert.EqualValues(t, len("short and stout"), entry["bytes"])
}

func TestRateLimiterBlocksAfterBurst(t *testing.T) {
	current := time.Date(2025, time.November, 1, 12, 0, 0, 0, time.UTC)
	rl := NewRateLimiter(1, 2, 30*time.Second, zap.NewNop())
	rl.now = func() time.Time { return current }

	handler := rl.Limit(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	do := func(remoteAddr string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = remoteAddr
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		return rr
	}

	assert.Equal(t, http.StatusOK, do("10.0.0.1:1000").Code)
	assert.Equal(t, http.StatusOK, do("10.0.0.1:1001").Code)

	blocked := do("10.0.0.1:1002")
	assert.Equal(t, http.StatusTooManyRequests, blocked.Code)
	assert.Equal(t, "30", blocked.Header().Get(constvars.HeaderRetryAfter))

	assert.Equal(t, http.StatusOK, do("10.0.0.2:1000").Code, "other clients are unaffected")

	current = current.Add(10 * time.Second)
	assert.Equal(t, http.StatusTooManyRequests, do("10.0.0.1:1003").Code, "still blocked although tokens refilled")

	current = current.Add(21 * time.Second)
	assert.Equal(t, http.StatusOK, do("10.0.0.1:1004").Code)
}

func TestRateLimiterForgetsIdleClients(t *testing.T) {
	current := time.Date(2025, time.November, 1, 12, 0, 0, 0, time.UTC)
	rl := NewRateLimiter(1, 2, 30*time.Second, zap.NewNop())
	rl.now = func() time.Time { return current }

	for i := 0; i < 1000; i++ {
		assert.True(t, rl.allow(fmt.Sprintf("10.1.%d.%d", i/256, i%256)))
	}
	assert.Len(t, rl.clients, 1000)

	current = current.Add(5 * time.Minute)
	assert.True(t, rl.allow("10.0.0.1"))
	assert.True(t, rl.allow("10.0.0.1"))
	assert.False(t, rl.allow("10.0.0.1"))
	assert.Len(t, rl.clients, 1001)

	current = current.Add(minClientIdleTTL - time.Minute)
	assert.True(t, rl.allow("10.0.0.2"))
	assert.Len(t, rl.clients, 2, "only the clients seen within the idle window remain")

	current = current.Add(2 * minClientIdleTTL)
	assert.True(t, rl.allow("10.0.0.1"), "a forgotten client starts with a full bucket")
	assert.Len(t, rl.clients, 1)
}
