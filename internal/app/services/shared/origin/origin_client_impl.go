package origin

import (
	"context"
	"embrew-service/internal/app/config"
	"embrew-service/internal/app/contracts"
	"embrew-service/internal/app/models"
	"embrew-service/internal/pkg/constvars"
	"embrew-service/internal/pkg/exceptions"
	"embrew-service/internal/pkg/utils"
	"errors"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

// forwardedHeaders are copied from the visitor request to the origin.
var forwardedHeaders = []string{
	constvars.HeaderAccept,
	constvars.HeaderCookie,
	constvars.HeaderUserAgent,
}

type originClient struct {
	BaseUrl     string
	UserAgent   string
	MaxBodySize int64
	Client      *http.Client
	Log         *zap.Logger
}

func NewOriginClient(internalConfig *config.InternalConfig, logger *zap.Logger) contracts.OriginClient {
	timeout := time.Duration(internalConfig.Origin.RequestTimeoutInSeconds) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &originClient{
		BaseUrl:     strings.TrimRight(internalConfig.Origin.BaseUrl, "/"),
		UserAgent:   internalConfig.Origin.UserAgent,
		MaxBodySize: internalConfig.Origin.MaxBodySizeInBytes,
		Client: &http.Client{
			Timeout:   timeout,
			Transport: &http.Transport{MaxIdleConnsPerHost: 100},
		},
		Log: logger,
	}
}

func (c *originClient) Fetch(ctx context.Context, path string, header http.Header) (*models.OriginResponse, error) {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("originClient.Fetch called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPathKey, path),
	)

	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, c.BaseUrl+path, nil)
	if err != nil {
		c.Log.Error("originClient.Fetch error creating request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}

	for _, name := range forwardedHeaders {
		if value := header.Get(name); value != "" {
			req.Header.Set(name, value)
		}
	}
	if req.Header.Get(constvars.HeaderUserAgent) == "" && c.UserAgent != "" {
		req.Header.Set(constvars.HeaderUserAgent, c.UserAgent)
	}
	req.Header.Set(constvars.HeaderAcceptEncoding, "br, gzip")
	if requestID != "" {
		req.Header.Set(constvars.HeaderXRequestID, requestID)
	}

	resp, err := c.Client.Do(req)
	if err != nil {
		c.Log.Error("originClient.Fetch error sending request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPathKey, path),
			zap.Error(err),
		)
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	rawBody, err := utils.ReadLimited(resp.Body, c.MaxBodySize)
	if err != nil {
		c.Log.Error("originClient.Fetch error reading body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPathKey, path),
			zap.Error(err),
		)
		if errors.Is(err, utils.ErrBodyTooLarge) {
			return nil, exceptions.ErrBodyTooLarge(err, c.MaxBodySize)
		}
		return nil, exceptions.ErrReadBody(err)
	}

	encoding := resp.Header.Get(constvars.HeaderContentEncoding)
	body, err := utils.DecodeBody(encoding, rawBody, c.MaxBodySize)
	if err != nil {
		c.Log.Error("originClient.Fetch error decoding body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEncodingKey, encoding),
			zap.Error(err),
		)
		if errors.Is(err, utils.ErrBodyTooLarge) {
			return nil, exceptions.ErrBodyTooLarge(err, c.MaxBodySize)
		}
		return nil, exceptions.ErrDecodeBody(err, encoding)
	}

	responseHeader := resp.Header.Clone()
	responseHeader.Del(constvars.HeaderContentEncoding)
	responseHeader.Del(constvars.HeaderContentLength)

	c.Log.Info("originClient.Fetch succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPathKey, path),
		zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
		zap.Int(constvars.LoggingResponseLengthKey, len(body)),
	)
	return &models.OriginResponse{
		StatusCode: resp.StatusCode,
		Header:     responseHeader,
		Body:       body,
	}, nil
}
