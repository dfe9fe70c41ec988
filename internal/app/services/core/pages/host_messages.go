package pages

import (
	"context"
	"embrew-service/internal/pkg/constvars"
	"embrew-service/internal/pkg/utils"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"
)

const embedPathMarker = ".embed."

// embedHostMessages replaces paragraphs holding a site path ("/messages/welcome.html") with the
// embeddable variant of that page ("/messages/welcome.embed.html").
func (pd *pageDecorator) embedHostMessages(ctx context.Context, doc *document) error {
	if !strings.Contains(doc.CurrentPath(), pd.InternalConfig.Pages.HostMessagesPath) {
		return nil
	}
	requestID := utils.GetRequestID(ctx)

	doc.main().Find("div > p").EachWithBreak(func(_ int, p *goquery.Selection) bool {
		if ctx.Err() != nil {
			return false
		}
		text := p.Text()
		if !strings.HasPrefix(text, "/") {
			return true
		}
		embedPath := embedPathFor(strings.TrimSpace(text))

		resp, err := pd.OriginClient.Fetch(ctx, embedPath, doc.header)
		if err != nil {
			pd.Log.Warn("pageDecorator.embedHostMessages error fetching embed",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingPathKey, embedPath),
				zap.Error(err),
			)
			return true
		}
		if !resp.IsSuccess() {
			pd.Log.Warn("pageDecorator.embedHostMessages embed not available",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingPathKey, embedPath),
				zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
			)
			return true
		}

		p.SetHtml(string(resp.Body))
		return true
	})
	return ctx.Err()
}

func embedPathFor(path string) string {
	return strings.Join(strings.Split(path, "."), embedPathMarker)
}
