package pages

import (
	"context"
	"embrew-service/internal/pkg/constvars"
	"embrew-service/internal/pkg/utils"
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	iconClassName   = "icon"
	iconClassPrefix = "icon-"
	svgDataURIStart = "data:image/svg+xml,"
)

var svgStylePattern = regexp.MustCompile(`(?i)<style`)

type iconSlot struct {
	span *goquery.Selection
	name string
	svg  []byte
}

// decorateIcons inlines the SVG of every span.icon.icon-<name> in main. Icons are fetched
// concurrently; a missing icon leaves its span empty.
func (pd *pageDecorator) decorateIcons(ctx context.Context, doc *document) error {
	requestID := utils.GetRequestID(ctx)

	var slots []*iconSlot
	doc.main().Find("span." + iconClassName).Each(func(_ int, span *goquery.Selection) {
		classes := strings.Fields(span.AttrOr("class", ""))
		if len(classes) < 2 || !strings.HasPrefix(classes[1], iconClassPrefix) {
			return
		}
		slots = append(slots, &iconSlot{span: span, name: strings.TrimPrefix(classes[1], iconClassPrefix)})
	})
	if len(slots) == 0 {
		return nil
	}

	var g errgroup.Group
	if limit := pd.InternalConfig.Icons.MaxConcurrentFetches; limit > 0 {
		g.SetLimit(limit)
	}
	for _, slot := range slots {
		g.Go(func() error {
			svg, err := pd.IconSource.FetchIcon(ctx, slot.name)
			if err != nil {
				pd.Log.Warn("pageDecorator.decorateIcons skipping icon",
					zap.String(constvars.LoggingRequestIDKey, requestID),
					zap.String(constvars.LoggingIconNameKey, slot.name),
					zap.Error(err),
				)
				return nil
			}
			slot.svg = svg
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	decorated := 0
	for _, slot := range slots {
		if len(slot.svg) == 0 {
			continue
		}
		inlineIcon(slot.span, string(slot.svg))
		decorated++
	}

	pd.Log.Debug("pageDecorator.decorateIcons succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingIconCountKey, decorated),
	)
	return nil
}

// inlineIcon writes svg into span. SVGs with their own <style> go through an img so the styles
// stay scoped to the icon.
func inlineIcon(span *goquery.Selection, svg string) {
	if svgStylePattern.MatchString(svg) {
		span.AppendHtml("<img>")
		span.Children().Last().SetAttr("src", svgDataURI(svg))
		return
	}
	span.SetHtml(svg)
}

// svgDataURI percent-encodes svg the way encodeURIComponent does for the characters an SVG holds.
func svgDataURI(svg string) string {
	return svgDataURIStart + strings.ReplaceAll(url.QueryEscape(svg), "+", "%20")
}
