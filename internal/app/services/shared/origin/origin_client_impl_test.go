package origin

import (
	"context"
	"embrew-service/internal/app/config"
	"embrew-service/internal/pkg/constvars"
	"embrew-service/internal/pkg/utils"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestClient(baseURL string) *originClient {
	cfg := &config.InternalConfig{Origin: config.AppOrigin{
		BaseUrl:                 baseURL,
		UserAgent:               "embrew-test",
		RequestTimeoutInSeconds: 2,
		MaxBodySizeInBytes:      4096,
	}}
	return NewOriginClient(cfg, zap.NewNop()).(*originClient)
}

func TestOriginClient_FetchDecodesBrotli(t *testing.T) {
	payload := []byte(`[{"name":"Closed on:","value":""}]`)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/configuration.json", r.URL.Path)
		assert.Contains(t, r.Header.Get(constvars.HeaderAcceptEncoding), "br")
		assert.Equal(t, "embrew-test", r.Header.Get(constvars.HeaderUserAgent))
		assert.Empty(t, r.Header.Get(constvars.HeaderCookie))

		encoded, err := utils.EncodeBody("br", payload)
		require.NoError(t, err)
		w.Header().Set(constvars.HeaderContentEncoding, "br")
		w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
		w.Write(encoded)
	}))
	defer server.Close()

	resp, err := newTestClient(server.URL).Fetch(context.Background(), "/configuration.json", nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, payload, resp.Body)
	assert.Empty(t, resp.Header.Get(constvars.HeaderContentEncoding))
	assert.True(t, resp.IsSuccess())
}

func TestOriginClient_FetchForwardsVisitorHeaders(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "session=abc", r.Header.Get(constvars.HeaderCookie))
		assert.Equal(t, "visitor-agent", r.Header.Get(constvars.HeaderUserAgent))
		assert.Empty(t, r.Header.Get(constvars.HeaderAuthorization))
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	header := http.Header{}
	header.Set(constvars.HeaderCookie, "session=abc")
	header.Set(constvars.HeaderUserAgent, "visitor-agent")
	header.Set(constvars.HeaderAuthorization, "Bearer secret")

	resp, err := newTestClient(server.URL).Fetch(context.Background(), "/missing", header)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.False(t, resp.IsSuccess())
}

func TestOriginClient_FetchNetworkFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	baseURL := server.URL
	server.Close()

	_, err := newTestClient(baseURL).Fetch(context.Background(), "/configuration.json", nil)
	require.Error(t, err)
}

func TestOriginClient_FetchHonoursContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestClient(server.URL).Fetch(ctx, "/", nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestOriginClient_FetchRejectsOversizedBodies(t *testing.T) {
	page := "<html><body>" + strings.Repeat("<p>Closed Today</p>", 1024) + "</body></html>"

	tests := []struct {
		name     string
		encoding string
	}{
		{name: "plain", encoding: ""},
		{name: "gzip bomb", encoding: "gzip"},
		{name: "brotli bomb", encoding: "br"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			encoded, err := utils.EncodeBody(tt.encoding, []byte(page))
			require.NoError(t, err)
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if tt.encoding != "" {
					w.Header().Set(constvars.HeaderContentEncoding, tt.encoding)
				}
				w.Write(encoded)
			}))
			defer server.Close()

			resp, err := newTestClient(server.URL).Fetch(context.Background(), "/", nil)
			assert.Nil(t, resp)
			require.Error(t, err)
			assert.ErrorIs(t, err, utils.ErrBodyTooLarge)
		})
	}
}
