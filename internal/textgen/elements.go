package textgen

import (
	"fmt"
	"strings"

	"github.com/nbenliogludev/go-page-brief/internal/metadata"
	"github.com/nbenliogludev/go-page-brief/internal/position"
)

// phraseFunc returns the phrase body for el, or false to skip it.
type phraseFunc func(el metadata.VisualElement) (string, bool)

func describeElements(section string, elems []metadata.VisualElement, phrase phraseFunc) (Result, error) {
	res := Result{Section: section}
	for i, el := range elems {
		if !el.IsDisplayed {
			continue
		}
		body, ok := phrase(el)
		if !ok {
			continue
		}
		if el.Position == nil {
			res.Parts = append(res.Parts, body)
			continue
		}
		where, err := position.Phrase(*el.Position)
		if err != nil {
			return Result{}, fmt.Errorf("%s[%d]: %w", strings.ToLower(section), i, err)
		}
		res.Parts = append(res.Parts, body+" in the "+where)
	}
	return res, nil
}

type Images struct{}

func (Images) Name() string { return "images" }

func (Images) Generate(doc *metadata.Document) (Result, error) {
	return describeElements(SectionImages, doc.Images, func(el metadata.VisualElement) (string, bool) {
		alt := strings.TrimSpace(el.Alt)
		if alt == "" {
			return "", false
		}
		return "an image of " + alt, true
	})
}

// Buttons labels each button by alt text, falling back to its visible text.
type Buttons struct {
	// NoColor leaves out the background colour.
	NoColor bool
}

func (Buttons) Name() string { return "buttons" }

func (b Buttons) Generate(doc *metadata.Document) (Result, error) {
	return describeElements(SectionButtons, doc.Buttons, func(el metadata.VisualElement) (string, bool) {
		label := strings.TrimSpace(el.Alt)
		if label == "" {
			label = strings.TrimSpace(el.Text)
		}
		if label == "" {
			return "", false
		}
		color := strings.TrimSpace(el.BgColor)
		if b.NoColor || color == "" {
			return "a button of " + label, true
		}
		return "a " + color + " colored button of " + label, true
	})
}

type Inputs struct{}

func (Inputs) Name() string { return "inputs" }

func (Inputs) Generate(doc *metadata.Document) (Result, error) {
	return describeElements(SectionInputs, doc.Inputs, func(el metadata.VisualElement) (string, bool) {
		if strings.EqualFold(el.Type, "hidden") {
			return "", false
		}
		desc := strings.TrimSpace(el.Desc)
		if desc == "" {
			return "", false
		}
		return "an input field of " + desc, true
	})
}

type Iframes struct{}

func (Iframes) Name() string { return "iframes" }

func (Iframes) Generate(doc *metadata.Document) (Result, error) {
	return describeElements(SectionIframes, doc.Iframes, func(el metadata.VisualElement) (string, bool) {
		title := strings.TrimSpace(el.Title)
		if title == "" {
			return "", false
		}
		kind := "non-video"
		if el.IsVideo {
			kind = "video"
		}
		return "a " + kind + " iframe of " + title, true
	})
}

// ObjectLocation lists images followed by buttons in a single result.
type ObjectLocation struct{}

func (ObjectLocation) Name() string { return "object-location" }

func (ObjectLocation) Generate(doc *metadata.Document) (Result, error) {
	res := Result{Section: SectionObjects}
	for _, s := range []Strategy{Images{}, Buttons{NoColor: true}} {
		part, err := s.Generate(doc)
		if err != nil {
			return Result{}, err
		}
		res.Parts = append(res.Parts, part.Parts...)
	}
	return res, nil
}
