package pages

import (
	"context"
	"embrew-service/internal/app/config"
	"embrew-service/internal/app/contracts"
	"embrew-service/internal/app/models"
	"net/http"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockOriginClient struct {
	mock.Mock
}

func (m *MockOriginClient) Fetch(ctx context.Context, path string, header http.Header) (*models.OriginResponse, error) {
	args := m.Called(ctx, path, header)
	resp, _ := args.Get(0).(*models.OriginResponse)
	return resp, args.Error(1)
}

type MockIconSource struct {
	mock.Mock
}

func (m *MockIconSource) FetchIcon(ctx context.Context, name string) ([]byte, error) {
	args := m.Called(ctx, name)
	icon, _ := args.Get(0).([]byte)
	return icon, args.Error(1)
}

type MockBannerUsecase struct {
	mock.Mock
}

func (m *MockBannerUsecase) ComposeBanner(ctx context.Context, surface contracts.PageSurface) error {
	args := m.Called(ctx, surface)
	return args.Error(0)
}

func (m *MockBannerUsecase) UpcomingClosures(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	closures, _ := args.Get(0).([]string)
	return closures, args.Error(1)
}

func (m *MockBannerUsecase) RenderBanner(ctx context.Context, closures []string) (string, error) {
	args := m.Called(ctx, closures)
	return args.String(0), args.Error(1)
}

func newTestConfig() *config.InternalConfig {
	return &config.InternalConfig{
		Origin: config.AppOrigin{NotFoundPath: "/global/404.plain.html"},
		Pages: config.AppPages{
			LazyStylesPath:                   "/styles/lazy-styles.css",
			DelayedScriptPath:                "/scripts/delayed.js",
			DelayedScriptDelayInMilliseconds: 3000,
			HostMessagesPath:                 "/host-messages",
			QuickNavPlaceholder:              "Browse the menu ...",
			Language:                         "en",
		},
		Icons: config.AppIcons{MaxConcurrentFetches: 2},
	}
}

func newTestDecorator(origin contracts.OriginClient, icons contracts.IconSource, banner contracts.BannerUsecase) *pageDecorator {
	return &pageDecorator{
		OriginClient:   origin,
		IconSource:     icons,
		BannerUsecase:  banner,
		InternalConfig: newTestConfig(),
		Log:            zap.NewNop(),
	}
}

func mustParse(t *testing.T, markup, path string) *document {
	t.Helper()
	doc, err := parseDocument([]byte(markup), path, http.Header{})
	require.NoError(t, err)
	return doc
}

func renderString(t *testing.T, sel *goquery.Selection) string {
	t.Helper()
	markup, err := goquery.OuterHtml(sel)
	require.NoError(t, err)
	return markup
}
