package pages

import (
	"fmt"

	"github.com/PuerkitoBio/goquery"
)

const (
	menuSwitcherClassName = "menu-switcher"
	quickNavOnChange      = "window.location.hash = '#' + this.value;"
)

// addQuickNav puts a select listing the menu sections (h3) in front of the first one. Only menu
// pages, recognised by their h4 item headings, get one.
func (pd *pageDecorator) addQuickNav(doc *document) error {
	main := doc.main()
	h3s := main.Find("h3")
	if main.Find("h4").Length() == 0 || h3s.Length() == 0 {
		return nil
	}

	first := h3s.First()
	first.BeforeHtml(fmt.Sprintf(`<div class="%s"><select><option selected disabled></option></select></div>`, menuSwitcherClassName))
	selectElem := first.Prev().Find("select").SetAttr("onchange", quickNavOnChange)
	selectElem.Find("option").SetText(pd.InternalConfig.Pages.QuickNavPlaceholder)

	h3s.Each(func(_ int, h3 *goquery.Selection) {
		selectElem.AppendHtml("<option></option>")
		selectElem.Children().Last().
			SetAttr("value", h3.AttrOr("id", "")).
			SetText(h3.Text())
	})
	return nil
}
