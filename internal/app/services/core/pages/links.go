package pages

import (
	"embrew-service/internal/pkg/exceptions"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const squareupLinkPrefix = "https://squareup"

var phoneSchemes = []string{"tel", "sms"}

var titlePaths = map[string]bool{"/": true, "/index.html": true}

func removeSquareupLinks(doc *document) error {
	doc.dom.Find(fmt.Sprintf(`a[href^=%q]`, squareupLinkPrefix)).Remove()
	return nil
}

// decoratePhoneLinks rewrites ".../tel/<number>" and ".../sms/<number>" links into tel: and sms: links.
func decoratePhoneLinks(doc *document) error {
	for _, scheme := range phoneSchemes {
		marker := "/" + scheme + "/"
		doc.dom.Find(fmt.Sprintf(`a[href*=%q]`, marker)).Each(func(_ int, a *goquery.Selection) {
			parts := strings.Split(a.AttrOr("href", ""), marker)
			a.SetAttr("href", scheme+":"+parts[1])
		})
	}
	return nil
}

// hideTitle drops the page title on the home page, where the hero already carries it.
// It runs after decorateHeroSection, which looks for that title.
func hideTitle(doc *document) error {
	if !titlePaths[doc.CurrentPath()] {
		return nil
	}
	h1 := doc.main().Find("h1").First()
	if h1.Length() == 0 {
		return exceptions.ErrPageElementMissing("main h1")
	}
	h1.Remove()
	return nil
}
