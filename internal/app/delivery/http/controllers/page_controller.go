package controllers

import (
	"context"
	"embrew-service/internal/app/config"
	"embrew-service/internal/app/contracts"
	"embrew-service/internal/app/models"
	"embrew-service/internal/pkg/constvars"
	"embrew-service/internal/pkg/exceptions"
	"embrew-service/internal/pkg/utils"
	"net/http"
	"strconv"

	"go.uber.org/zap"
)

type PageController struct {
	Log            *zap.Logger
	PageUsecase    contracts.PageUsecase
	InternalConfig *config.InternalConfig
}

func NewPageController(logger *zap.Logger, pageUsecase contracts.PageUsecase, internalConfig *config.InternalConfig) *PageController {
	return &PageController{
		Log:            logger,
		PageUsecase:    pageUsecase,
		InternalConfig: internalConfig,
	}
}

// RenderPage serves the decorated origin page for any path outside the API.
func (ctrl *PageController) RenderPage(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("PageController.RenderPage requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig))
	defer cancel()

	page, err := ctrl.PageUsecase.RenderPage(ctx, r.URL.RequestURI(), r.Header)
	if err != nil {
		ctrl.Log.Error("PageController.RenderPage error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPathKey, r.URL.Path),
			zap.Error(err),
		)
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.writePage(w, r, requestID, page)
}

// writePage copies the page to the client, compressing decorated pages by Accept-Encoding.
func (ctrl *PageController) writePage(w http.ResponseWriter, r *http.Request, requestID string, page *models.RenderedPage) {
	header := w.Header()
	for key, values := range page.Header {
		header[key] = values
	}
	if page.ContentType != "" {
		header.Set(constvars.HeaderContentType, page.ContentType)
	}

	body := page.Body
	if page.Decorated {
		header.Add(constvars.HeaderVary, constvars.HeaderAcceptEncoding)
		encoding := utils.NegotiateEncoding(r.Header.Get(constvars.HeaderAcceptEncoding))
		if encoding != constvars.EncodingIdentity {
			encoded, err := utils.EncodeBody(encoding, body)
			if err != nil {
				ctrl.Log.Warn("PageController.writePage cannot encode body, sending identity",
					zap.String(constvars.LoggingRequestIDKey, requestID),
					zap.String(constvars.LoggingEncodingKey, encoding),
					zap.Error(exceptions.ErrEncodeBody(err, encoding)),
				)
			} else {
				body = encoded
				header.Set(constvars.HeaderContentEncoding, encoding)
			}
		}
	}

	header.Set(constvars.HeaderContentLength, strconv.Itoa(len(body)))
	w.WriteHeader(page.StatusCode)
	if _, err := w.Write(body); err != nil {
		ctrl.Log.Warn("PageController.writePage failed writing response body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}
}
