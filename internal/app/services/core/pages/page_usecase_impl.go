package pages

import (
	"context"
	"embrew-service/internal/app/config"
	"embrew-service/internal/app/contracts"
	"embrew-service/internal/app/models"
	"embrew-service/internal/pkg/constvars"
	"embrew-service/internal/pkg/exceptions"
	"embrew-service/internal/pkg/utils"
	"mime"
	"net/http"
	"net/url"

	"go.uber.org/zap"
)

const errorClassName = "error"

// notFoundSkeleton stands in for a 404 page the origin sent without markup.
const notFoundSkeleton = `<!DOCTYPE html><html><head></head><body><header></header><main class="error"></main><footer></footer></body></html>`

var (
	passThroughHeaders = []string{constvars.HeaderCacheControl, constvars.HeaderETag, constvars.HeaderLastModified}
	decoratedHeaders   = []string{constvars.HeaderCacheControl, constvars.HeaderLastModified}
)

type pageUsecase struct {
	OriginClient   contracts.OriginClient
	Decorator      *pageDecorator
	InternalConfig *config.InternalConfig
	Log            *zap.Logger
}

func NewPageUsecase(
	originClient contracts.OriginClient,
	iconSource contracts.IconSource,
	bannerUsecase contracts.BannerUsecase,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.PageUsecase {
	return &pageUsecase{
		OriginClient: originClient,
		Decorator: &pageDecorator{
			OriginClient:   originClient,
			IconSource:     iconSource,
			BannerUsecase:  bannerUsecase,
			InternalConfig: internalConfig,
			Log:            logger,
		},
		InternalConfig: internalConfig,
		Log:            logger,
	}
}

// RenderPage fetches requestURI from the origin and decorates it when it is an HTML page.
// Other content is passed through untouched. A 404 is answered with the site's not-found
// fragment, keeping the 404 status.
func (uc *pageUsecase) RenderPage(ctx context.Context, requestURI string, header http.Header) (*models.RenderedPage, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("pageUsecase.RenderPage called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingURLKey, requestURI),
	)

	pagePath, err := pathOf(requestURI)
	if err != nil {
		return nil, exceptions.ErrInvalidFormat(err, "request uri")
	}

	resp, err := uc.OriginClient.Fetch(ctx, requestURI, header)
	if err != nil {
		uc.Log.Error("pageUsecase.RenderPage error calling OriginClient.Fetch",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	if resp.StatusCode == http.StatusNotFound {
		return uc.renderNotFound(ctx, pagePath, resp, header)
	}
	if !resp.IsSuccess() {
		return nil, exceptions.ErrOriginStatus(requestURI, resp.StatusCode)
	}

	contentType := resp.Header.Get(constvars.HeaderContentType)
	if !isHTML(contentType) {
		uc.Log.Info("pageUsecase.RenderPage passing through",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingResponseLengthKey, len(resp.Body)),
		)
		return &models.RenderedPage{
			StatusCode:  resp.StatusCode,
			ContentType: contentType,
			Header:      copyHeaders(resp.Header, passThroughHeaders),
			Body:        resp.Body,
		}, nil
	}

	doc, err := parseDocument(resp.Body, pagePath, header)
	if err != nil {
		return nil, err
	}
	page, err := uc.decorateAndRender(ctx, doc, resp)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("pageUsecase.RenderPage succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseLengthKey, len(page.Body)),
	)
	return page, nil
}

func (uc *pageUsecase) renderNotFound(ctx context.Context, pagePath string, resp *models.OriginResponse, header http.Header) (*models.RenderedPage, error) {
	requestID := utils.GetRequestID(ctx)

	body := resp.Body
	if len(body) == 0 || !isHTML(resp.Header.Get(constvars.HeaderContentType)) {
		body = []byte(notFoundSkeleton)
	}
	doc, err := parseDocument(body, pagePath, header)
	if err != nil {
		return nil, err
	}

	notFoundPath := uc.InternalConfig.Origin.NotFoundPath
	fragment, err := uc.OriginClient.Fetch(ctx, notFoundPath, header)
	switch {
	case err != nil:
		uc.Log.Warn("pageUsecase.renderNotFound error fetching not found fragment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPathKey, notFoundPath),
			zap.Error(err),
		)
	case fragment.StatusCode != http.StatusOK:
		uc.Log.Warn("pageUsecase.renderNotFound not found fragment not available",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPathKey, notFoundPath),
			zap.Int(constvars.LoggingStatusCodeKey, fragment.StatusCode),
		)
	default:
		main := doc.main()
		if main.Length() == 0 {
			return nil, exceptions.ErrPageElementMissing("main")
		}
		main.SetHtml(string(fragment.Body)).RemoveClass(errorClassName)
	}

	return uc.decorateAndRender(ctx, doc, resp)
}

func (uc *pageUsecase) decorateAndRender(ctx context.Context, doc *document, resp *models.OriginResponse) (*models.RenderedPage, error) {
	if err := uc.Decorator.decorate(ctx, doc); err != nil {
		return nil, err
	}
	body, err := doc.render()
	if err != nil {
		return nil, err
	}
	return &models.RenderedPage{
		StatusCode:  resp.StatusCode,
		ContentType: constvars.MIMETextHTMLCharsetUTF8,
		Header:      copyHeaders(resp.Header, decoratedHeaders),
		Body:        body,
		Decorated:   true,
	}, nil
}

func pathOf(requestURI string) (string, error) {
	u, err := url.ParseRequestURI(requestURI)
	if err != nil {
		return "", err
	}
	return u.Path, nil
}

func isHTML(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	return err == nil && mediaType == constvars.MIMETextHTML
}

func copyHeaders(src http.Header, keys []string) http.Header {
	dst := make(http.Header)
	for _, key := range keys {
		if value := src.Get(key); value != "" {
			dst.Set(key, value)
		}
	}
	return dst
}
