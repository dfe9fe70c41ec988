package pages

import (
	"embrew-service/internal/pkg/exceptions"
	"fmt"
)

const (
	appearClassName     = "appear"
	delayedScriptFormat = "window.addEventListener('load', () => window.setTimeout(() => import('%s'), %d));"
)

// loadEager reveals the body once the page reaches the client.
func loadEager(doc *document) error {
	body := doc.body()
	if body.Length() == 0 {
		return exceptions.ErrPageElementMissing("body")
	}
	body.AddClass(appearClassName)
	return nil
}

// loadLazy links the lazy stylesheet and sets the document language.
func (pd *pageDecorator) loadLazy(doc *document) error {
	head := doc.head()
	if head.Length() == 0 {
		return exceptions.ErrPageElementMissing("head")
	}

	href := pd.InternalConfig.Pages.LazyStylesPath
	if head.Find(fmt.Sprintf(`link[href=%q]`, href)).Length() == 0 {
		head.AppendHtml(`<link rel="stylesheet">`)
		head.Children().Last().SetAttr("href", href)
	}

	doc.documentElement().SetAttr("lang", pd.InternalConfig.Pages.Language)
	return nil
}

// loadDelayed schedules the delayed script for some time after the load event.
func (pd *pageDecorator) loadDelayed(doc *document) error {
	head := doc.head()
	if head.Length() == 0 {
		return exceptions.ErrPageElementMissing("head")
	}

	head.AppendHtml(`<script type="module">` + fmt.Sprintf(delayedScriptFormat,
		pd.InternalConfig.Pages.DelayedScriptPath, pd.InternalConfig.Pages.DelayedScriptDelayInMilliseconds) + `</script>`)
	return nil
}
