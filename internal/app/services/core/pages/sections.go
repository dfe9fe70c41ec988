package pages

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const (
	heroBlockClassName      = "hero"
	heroOverlayClassName    = "hero-overlay"
	heroSectionClassName    = "hero-section"
	imageOnlyClassName      = "image-only"
	sectionWrapperClassName = "section-wrapper"

	// sectionSelector matches the blocks the CMS emits for each document section.
	sectionSelector = "main > div"
)

// heroSectionMarkup is a section holding a one-cell hero block: div.hero > div > div.
var heroSectionMarkup = fmt.Sprintf(`<div><div class="%s"><div><div><div class="%s"></div></div></div></div></div>`,
	heroBlockClassName, heroOverlayClassName)

// buildHeroBlock moves a picture placed before the page h1 into a hero block at the top of main,
// together with the content of the h1's block.
func buildHeroBlock(doc *document) error {
	main := doc.main()
	h1 := main.Find("h1").First()
	if h1.Length() == 0 {
		return nil
	}
	picture := main.Find("picture, h1").First()
	if !picture.Is("picture") {
		return nil
	}

	existing := h1.Parent().Closest("div")
	if existing.Length() == 0 {
		return nil
	}

	main.PrependHtml(heroSectionMarkup)
	hero := main.Children().First()
	hero.Find("." + heroOverlayClassName).AppendSelection(existing.Contents())
	hero.Find("." + heroBlockClassName + " > div > div").First().PrependSelection(picture)
	existing.Remove()
	return nil
}

func markImageOnlySections(doc *document) error {
	doc.dom.Find("picture").Each(func(_ int, picture *goquery.Selection) {
		section := picture.Closest(sectionSelector)
		if section.Length() > 0 && strings.TrimSpace(section.Text()) == "" {
			section.AddClass(imageOnlyClassName)
		}
	})
	return nil
}

// wrapSections moves every main > div without an id into its own div.section-wrapper,
// appended at the end of main.
func wrapSections(doc *document) error {
	main := doc.main()
	main.ChildrenFiltered("div:not([id])").Each(func(_ int, section *goquery.Selection) {
		main.AppendHtml(fmt.Sprintf(`<div class="%s"></div>`, sectionWrapperClassName))
		main.Children().Last().AppendSelection(section)
	})
	return nil
}

// decorateHeroSection turns the first section wrapper into the hero section when it holds
// both a picture and the page title. The class replaces the wrapper class.
func decorateHeroSection(doc *document) error {
	wrapper := doc.first("." + sectionWrapperClassName)
	if wrapper.Find("picture").Length() > 0 && wrapper.Find("h1").Length() > 0 {
		wrapper.SetAttr("class", heroSectionClassName)
	}
	return nil
}
