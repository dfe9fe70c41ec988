package pages

import (
	"bytes"
	"embrew-service/internal/pkg/constvars"
	"embrew-service/internal/pkg/exceptions"
	"fmt"
	"net/http"
	"time"

	"github.com/PuerkitoBio/goquery"
)

const bannerAppearScript = `window.setTimeout(function(){document.querySelectorAll('header .%s').forEach(function(el){el.classList.add('%s');});}, %d);`

// document is a parsed origin page. It satisfies contracts.PageSurface.
type document struct {
	dom  *goquery.Document
	path string
	// header holds the client request headers forwarded on follow-up origin fetches.
	header http.Header
}

func parseDocument(body []byte, path string, header http.Header) (*document, error) {
	dom, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, exceptions.ErrCannotParseHTML(err)
	}
	return &document{dom: dom, path: path, header: header}, nil
}

func (d *document) render() ([]byte, error) {
	markup, err := goquery.OuterHtml(d.dom.Selection)
	if err != nil {
		return nil, exceptions.ErrCannotRenderHTML(err)
	}
	return []byte(markup), nil
}

func (d *document) first(selector string) *goquery.Selection {
	return d.dom.Find(selector).First()
}

func (d *document) documentElement() *goquery.Selection { return d.first("html") }
func (d *document) head() *goquery.Selection            { return d.first("head") }
func (d *document) body() *goquery.Selection            { return d.first("body") }
func (d *document) main() *goquery.Selection            { return d.first("main") }

func (d *document) CurrentPath() string {
	return d.path
}

// AppendBanner adds div.banner holding markup to the page header and schedules the appear
// class after appearAfter.
func (d *document) AppendBanner(markup string, appearAfter time.Duration) error {
	header := d.first("header")
	if header.Length() == 0 {
		return exceptions.ErrPageElementMissing("header")
	}

	header.AppendHtml(fmt.Sprintf(`<div class="%s"></div>`, constvars.BannerClassName))
	header.Children().Last().SetHtml(markup)
	header.AppendHtml("<script>" + fmt.Sprintf(bannerAppearScript,
		constvars.BannerClassName, constvars.BannerAppearClassName, appearAfter.Milliseconds()) + "</script>")
	return nil
}
