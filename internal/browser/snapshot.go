package browser

import (
	"context"
	"encoding/json"
	"fmt"
	"math"

	"github.com/playwright-community/playwright-go"
	"github.com/sirupsen/logrus"

	"github.com/nbenliogludev/go-page-brief/internal/metadata"
	"github.com/nbenliogludev/go-page-brief/internal/position"
)

// inspectScript collects raw element boxes; zone bucketing happens in Go.
const inspectScript = `() => {
	function cleanText(text) {
		if (!text) return '';
		return text.replace(/\s+/g, ' ').trim();
	}

	function isVisible(el) {
		if (!el || !el.getBoundingClientRect) return false;
		if (el.getAttribute('aria-hidden') === 'true') return false;

		const rect = el.getBoundingClientRect();
		const style = window.getComputedStyle(el);
		const inViewport = (
			rect.top < window.innerHeight &&
			rect.bottom > 0 &&
			rect.left < window.innerWidth &&
			rect.right > 0
		);

		return rect.width > 0 && rect.height > 0 &&
			style.visibility !== 'hidden' &&
			style.display !== 'none' &&
			style.opacity !== '0' &&
			inViewport;
	}

	function rectOf(el) {
		const r = el.getBoundingClientRect();
		return { x: r.left, y: r.top, width: r.width, height: r.height };
	}

	function labelFor(el) {
		if (el.id) {
			const lbl = document.querySelector('label[for="' + CSS.escape(el.id) + '"]');
			if (lbl) return cleanText(lbl.innerText);
		}
		return cleanText(
			el.getAttribute('aria-label') ||
			el.getAttribute('placeholder') ||
			el.getAttribute('title') ||
			el.getAttribute('name') || ''
		);
	}

	function bgColor(el) {
		const c = window.getComputedStyle(el).backgroundColor;
		if (!c || c === 'transparent' || c === 'rgba(0, 0, 0, 0)') return '';
		return c;
	}

	const videoHosts = /youtube|youtu\.be|vimeo|dailymotion|wistia|video/i;

	const images = Array.from(document.querySelectorAll('img')).map(el => ({
		displayed: isVisible(el),
		rect: rectOf(el),
		alt: cleanText(el.getAttribute('alt')),
	}));

	const buttons = Array.from(document.querySelectorAll('button, [role="button"], input[type="submit"], input[type="button"]')).map(el => ({
		displayed: isVisible(el),
		rect: rectOf(el),
		alt: cleanText(el.getAttribute('alt') || el.getAttribute('aria-label')),
		text: cleanText(el.innerText || el.value),
		bgColor: bgColor(el),
	}));

	const inputs = Array.from(document.querySelectorAll('input:not([type="submit"]):not([type="button"]), textarea, select')).map(el => ({
		displayed: isVisible(el),
		rect: rectOf(el),
		desc: labelFor(el),
		type: (el.getAttribute('type') || el.tagName).toLowerCase(),
	}));

	const iframes = Array.from(document.querySelectorAll('iframe')).map(el => {
		const title = cleanText(el.getAttribute('title'));
		return {
			displayed: isVisible(el),
			rect: rectOf(el),
			title: title,
			isVideo: videoHosts.test(el.getAttribute('src') || '') || /video/i.test(title),
		};
	});

	const meta = document.querySelector('meta[name="description"], meta[property="og:description"]');
	const nav = document.querySelector('nav, [role="navigation"]');

	return {
		viewportWidth: window.innerWidth,
		viewportHeight: window.innerHeight,
		desc: meta ? cleanText(meta.getAttribute('content')) : '',
		text: document.body ? document.body.innerText : '',
		navbar: nav ? nav.innerText : '',
		images: images,
		buttons: buttons,
		inputs: inputs,
		iframes: iframes,
	};
}`

type rawRect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type rawElement struct {
	Displayed bool    `json:"displayed"`
	Rect      rawRect `json:"rect"`
	Alt       string  `json:"alt"`
	Text      string  `json:"text"`
	BgColor   string  `json:"bgColor"`
	Desc      string  `json:"desc"`
	Type      string  `json:"type"`
	Title     string  `json:"title"`
	IsVideo   bool    `json:"isVideo"`
}

type rawPage struct {
	ViewportWidth  float64      `json:"viewportWidth"`
	ViewportHeight float64      `json:"viewportHeight"`
	Desc           string       `json:"desc"`
	Text           string       `json:"text"`
	Navbar         string       `json:"navbar"`
	Images         []rawElement `json:"images"`
	Buttons        []rawElement `json:"buttons"`
	Inputs         []rawElement `json:"inputs"`
	Iframes        []rawElement `json:"iframes"`
}

// Inspect loads url in a fresh page and captures it as a metadata document.
func (m *Manager) Inspect(ctx context.Context, url string) (*metadata.Document, error) {
	if m == nil || m.browser == nil {
		return nil, fmt.Errorf("browser is not initialized")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	page, err := m.browser.NewPage(playwright.BrowserNewPageOptions{
		Viewport: &m.opts.Viewport,
	})
	if err != nil {
		return nil, fmt.Errorf("new page failed: %w", err)
	}
	defer page.Close()

	timeout := float64(m.opts.Timeout.Milliseconds())
	page.SetDefaultTimeout(timeout)

	if _, err := page.Goto(url, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateNetworkidle,
		Timeout:   playwright.Float(timeout),
	}); err != nil {
		return nil, fmt.Errorf("could not navigate to %s: %w", url, err)
	}

	result, err := page.Evaluate(inspectScript)
	if err != nil {
		return nil, fmt.Errorf("js evaluation failed: %w", err)
	}

	// Evaluate hands back generic maps; round-trip through JSON to type them.
	data, err := json.Marshal(result)
	if err != nil {
		return nil, fmt.Errorf("encode inspection result: %w", err)
	}
	var raw rawPage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode inspection result: %w", err)
	}

	doc := raw.document()
	m.log.WithFields(logrus.Fields{
		"url":     url,
		"images":  len(doc.Images),
		"buttons": len(doc.Buttons),
		"inputs":  len(doc.Inputs),
		"iframes": len(doc.Iframes),
	}).Info("page inspected")
	return doc, nil
}

func (p rawPage) document() *metadata.Document {
	convert := func(in []rawElement) []metadata.VisualElement {
		if len(in) == 0 {
			return nil
		}
		out := make([]metadata.VisualElement, 0, len(in))
		for _, el := range in {
			out = append(out, metadata.VisualElement{
				IsDisplayed: el.Displayed,
				Position:    p.zone(el.Rect),
				Alt:         el.Alt,
				Text:        el.Text,
				BgColor:     el.BgColor,
				Desc:        el.Desc,
				Type:        el.Type,
				Title:       el.Title,
				IsVideo:     el.IsVideo,
			})
		}
		return out
	}

	return &metadata.Document{
		Desc:    p.Desc,
		Text:    p.Text,
		Navbar:  p.Navbar,
		Images:  convert(p.Images),
		Buttons: convert(p.Buttons),
		Inputs:  convert(p.Inputs),
		Iframes: convert(p.Iframes),
	}
}

func (p rawPage) zone(r rawRect) *metadata.GridPosition {
	return &metadata.GridPosition{
		Horizontal: bucket(r.X+r.Width/2, p.ViewportWidth),
		Vertical:   bucket(r.Y+r.Height/2, p.ViewportHeight),
	}
}

// bucket maps a centre coordinate to one of five equal bands of extent,
// clamping anything off-screen to the nearest edge band.
func bucket(center, extent float64) int {
	if extent <= 0 {
		return 0
	}
	band := int(math.Floor(center / extent * 5))
	band = max(0, min(band, 4))
	return band + position.Min
}
