package pages

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestBuildHeroBlock(t *testing.T) {
	doc := mustParse(t, `<main><div><picture><img src="/hero.jpg"></picture><h1 id="welcome">Welcome</h1><p>Since 1994</p></div><div><p>Other</p></div></main>`, "/menu")

	require.NoError(t, buildHeroBlock(doc))

	sections := doc.main().Children()
	require.Equal(t, 2, sections.Length())
	assert.Equal(t, "Other", sections.Eq(1).Text())

	hero := sections.First().Children()
	require.Equal(t, 1, hero.Length())
	assert.True(t, hero.HasClass("hero"))

	content := hero.Children().Children().Children()
	require.Equal(t, 2, content.Length())
	assert.True(t, content.First().Is("picture"))
	assert.True(t, content.Eq(1).HasClass("hero-overlay"))

	overlay := content.Eq(1).Children()
	require.Equal(t, 2, overlay.Length())
	assert.True(t, overlay.First().Is("h1"))
	assert.Equal(t, "Since 1994", overlay.Eq(1).Text())
}

func TestBuildHeroBlockNeedsPictureBeforeTitle(t *testing.T) {
	for _, markup := range []string{
		`<main><div><h1>Welcome</h1></div><div><picture></picture></div></main>`,
		`<main><div><picture></picture></div></main>`,
	} {
		doc := mustParse(t, markup, "/menu")
		before := renderString(t, doc.dom.Selection)

		require.NoError(t, buildHeroBlock(doc))
		assert.Equal(t, before, renderString(t, doc.dom.Selection))
	}
}

func TestMarkImageOnlySections(t *testing.T) {
	doc := mustParse(t, `<main><div><picture><img src="/a.jpg"></picture></div><div><picture></picture><p>Text</p></div></main>`, "/")

	require.NoError(t, markImageOnlySections(doc))

	sections := doc.main().Children()
	assert.True(t, sections.Eq(0).HasClass("image-only"))
	assert.False(t, sections.Eq(1).HasClass("image-only"))
}

func TestRemoveSquareupLinks(t *testing.T) {
	doc := mustParse(t, `<main><div><a href="https://squareup.com/gift">Gift</a><a href="https://example.com">Other</a></div></main>`, "/")

	require.NoError(t, removeSquareupLinks(doc))

	links := doc.dom.Find("a")
	require.Equal(t, 1, links.Length())
	assert.Equal(t, "https://example.com", links.AttrOr("href", ""))
}

func TestDecoratePhoneLinks(t *testing.T) {
	doc := mustParse(t, `<main><div><a href="https://embrew.example/tel/+13035551234">Call</a><a href="/sms/3035551234">Text</a><a href="/contact">Contact</a></div></main>`, "/")

	require.NoError(t, decoratePhoneLinks(doc))

	links := doc.dom.Find("a")
	require.Equal(t, 3, links.Length())
	assert.Equal(t, "tel:+13035551234", links.Eq(0).AttrOr("href", ""))
	assert.Equal(t, "sms:3035551234", links.Eq(1).AttrOr("href", ""))
	assert.Equal(t, "/contact", links.Eq(2).AttrOr("href", ""))
}

func TestHideTitle(t *testing.T) {
	tests := []struct {
		name      string
		path      string
		markup    string
		wantTitle bool
		wantErr   bool
	}{
		{name: "home", path: "/", markup: `<main><h1>Embrew</h1></main>`, wantTitle: false},
		{name: "index", path: "/index.html", markup: `<main><h1>Embrew</h1></main>`, wantTitle: false},
		{name: "other page", path: "/menu", markup: `<main><h1>Menu</h1></main>`, wantTitle: true},
		{name: "home without title", path: "/", markup: `<main><p>x</p></main>`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := mustParse(t, tt.markup, tt.path)

			err := hideTitle(doc)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantTitle, doc.dom.Find("h1").Length() > 0)
		})
	}
}

func TestWrapSections(t *testing.T) {
	doc := mustParse(t, `<main><div>A</div><div id="keep">K</div><div>B</div></main>`, "/")

	require.NoError(t, wrapSections(doc))

	children := doc.main().Children()
	require.Equal(t, 3, children.Length())
	assert.Equal(t, "keep", children.First().AttrOr("id", ""))
	for i, want := range []string{"A", "B"} {
		wrapper := children.Eq(i + 1)
		assert.Equal(t, "section-wrapper", wrapper.AttrOr("class", ""))
		inner := wrapper.Children()
		require.Equal(t, 1, inner.Length())
		assert.Equal(t, want, inner.Text())
	}
}

func TestDecorateHeroSection(t *testing.T) {
	t.Run("picture and title", func(t *testing.T) {
		doc := mustParse(t, `<main><div class="section-wrapper"><div><picture></picture><h1>Hi</h1></div></div></main>`, "/menu")
		require.NoError(t, decorateHeroSection(doc))
		assert.Equal(t, "hero-section", doc.main().Children().First().AttrOr("class", ""))
	})

	t.Run("no title", func(t *testing.T) {
		doc := mustParse(t, `<main><div class="section-wrapper"><div><picture></picture></div></div></main>`, "/menu")
		require.NoError(t, decorateHeroSection(doc))
		assert.Equal(t, "section-wrapper", doc.main().Children().First().AttrOr("class", ""))
	})
}

func TestDecorateMarksHeroSection(t *testing.T) {
	const page = `<html><head></head><body><header></header><main>` +
		`<div><picture><img src="/hero.jpg"></picture><h1>Embrew</h1><p>Coffee since 1994</p></div>` +
		`<div><p>Visit us</p></div>` +
		`</main></body></html>`

	tests := []struct {
		path      string
		wantTitle bool
	}{
		{path: "/", wantTitle: false},
		{path: "/index.html", wantTitle: false},
		{path: "/about", wantTitle: true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			banner := new(MockBannerUsecase)
			banner.On("ComposeBanner", mock.Anything, mock.Anything).Return(nil)
			pd := newTestDecorator(new(MockOriginClient), new(MockIconSource), banner)
			doc := mustParse(t, page, tt.path)

			require.NoError(t, pd.decorate(context.Background(), doc))

			sections := doc.main().Children()
			require.Equal(t, 2, sections.Length())
			assert.Equal(t, "hero-section", sections.First().AttrOr("class", ""))
			assert.Equal(t, 1, sections.First().Find(".hero picture").Length())
			assert.Equal(t, "section-wrapper", sections.Eq(1).AttrOr("class", ""))
			assert.Equal(t, tt.wantTitle, doc.main().Find("h1").Length() == 1)
		})
	}
}

func TestAddQuickNav(t *testing.T) {
	pd := newTestDecorator(nil, nil, nil)

	t.Run("menu page", func(t *testing.T) {
		doc := mustParse(t, `<main><div><h3 id="starters">Starters</h3><h4>Soup</h4><h3 id="mains">Mains &amp; sides</h3></div></main>`, "/menu")

		require.NoError(t, pd.addQuickNav(doc))

		first := doc.main().Children().First().Children().First()
		require.True(t, first.HasClass("menu-switcher"))

		selectElem := first.Find("select")
		require.Equal(t, 1, selectElem.Length())
		assert.Contains(t, selectElem.AttrOr("onchange", ""), "window.location.hash")

		options := selectElem.Find("option")
		require.Equal(t, 3, options.Length())
		assert.Equal(t, "Browse the menu ...", options.First().Text())
		_, disabled := options.First().Attr("disabled")
		_, selected := options.First().Attr("selected")
		assert.True(t, disabled)
		assert.True(t, selected)
		assert.Equal(t, "Starters", options.Eq(1).Text())
		assert.Equal(t, "starters", options.Eq(1).AttrOr("value", ""))
		assert.Equal(t, "Mains & sides", options.Eq(2).Text())
		assert.Equal(t, "mains", options.Eq(2).AttrOr("value", ""))
	})

	t.Run("no item headings", func(t *testing.T) {
		doc := mustParse(t, `<main><div><h3 id="starters">Starters</h3></div></main>`, "/menu")
		require.NoError(t, pd.addQuickNav(doc))
		assert.Equal(t, 0, doc.dom.Find(".menu-switcher").Length())
	})
}

func TestLoadingPhases(t *testing.T) {
	pd := newTestDecorator(nil, nil, nil)
	doc := mustParse(t, `<html><head><link rel="stylesheet" href="/styles/styles.css"></head><body><main></main></body></html>`, "/")

	require.NoError(t, loadEager(doc))
	require.NoError(t, pd.loadLazy(doc))
	require.NoError(t, pd.loadLazy(doc))
	require.NoError(t, pd.loadDelayed(doc))

	assert.True(t, doc.body().HasClass("appear"))
	assert.Equal(t, "en", doc.documentElement().AttrOr("lang", ""))
	assert.Equal(t, 1, doc.head().Find(`link[href="/styles/lazy-styles.css"]`).Length())

	script := doc.head().Find("script")
	require.Equal(t, 1, script.Length())
	assert.Equal(t, "module", script.AttrOr("type", ""))
	assert.Contains(t, script.Text(), "import('/scripts/delayed.js'), 3000")
}

func TestAppendBanner(t *testing.T) {
	doc := mustParse(t, `<html><body><header><nav></nav></header><main></main></body></html>`, "/order")

	require.NoError(t, doc.AppendBanner(`<p>Closed <strong>Today Staff Party</strong></p>`, 100*time.Millisecond))

	banner := doc.dom.Find(".banner")
	require.Equal(t, 1, banner.Length())
	assert.True(t, banner.Parent().Is("header"))
	inner, err := banner.Html()
	require.NoError(t, err)
	assert.Equal(t, `<p>Closed <strong>Today Staff Party</strong></p>`, inner)

	script := banner.Parent().Find("script")
	require.Equal(t, 1, script.Length())
	assert.Contains(t, script.Text(), "classList.add('appear')")
	assert.Contains(t, script.Text(), "}, 100);")
}

func TestAppendBannerWithoutHeader(t *testing.T) {
	doc := mustParse(t, `<main></main>`, "/")
	assert.Error(t, doc.AppendBanner("<p>Closed</p>", time.Millisecond))
}

func TestRenderKeepsDoctype(t *testing.T) {
	doc := mustParse(t, `<!DOCTYPE html><html><head></head><body><main><p>x</p></main></body></html>`, "/")

	body, err := doc.render()

	require.NoError(t, err)
	assert.Equal(t, `<!DOCTYPE html><html><head></head><body><main><p>x</p></main></body></html>`, string(body))
}
