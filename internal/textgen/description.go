package textgen

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/nbenliogludev/go-page-brief/internal/lexical"
	"github.com/nbenliogludev/go-page-brief/internal/metadata"
	"github.com/nbenliogludev/go-page-brief/internal/prefix"
)

// Description is the page description with proper nouns removed.
type Description struct {
	Filter *lexical.Filter
}

func (Description) Name() string { return "no-proper-nouns" }

func (d Description) Generate(doc *metadata.Document) (Result, error) {
	text, err := d.Filter.StripProperNouns(doc.Desc)
	if err != nil {
		return Result{}, fmt.Errorf("description: %w", err)
	}
	return single(SectionDescription, text), nil
}

// Content keeps the sentences of the page text that read like prose: they
// start with a title-cased word, contain a content word, and have no numbers
// or shouted words.
type Content struct {
	Tagger lexical.Tagger
}

func (Content) Name() string { return "content-summary" }

func (c Content) Generate(doc *metadata.Document) (Result, error) {
	res := Result{Section: SectionContent}
	if strings.TrimSpace(doc.Text) == "" {
		return res, nil
	}

	sentences, err := c.Tagger.Sentences(doc.Text)
	if err != nil {
		return Result{}, fmt.Errorf("content: %w", err)
	}
	for _, s := range sentences {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		toks, err := c.Tagger.Tag(s)
		if err != nil {
			return Result{}, fmt.Errorf("content: %w", err)
		}
		if c.keep(toks) {
			res.Parts = append(res.Parts, s)
		}
	}
	return res, nil
}

func (c Content) keep(toks []lexical.Token) bool {
	if len(toks) == 0 || !isTitle(toks[0].Text) {
		return false
	}
	content := false
	for _, t := range toks {
		if isDigits(t.Text) || isUpper(t.Text) {
			return false
		}
		if hasLetter(t.Text) && !c.Tagger.IsStopWord(strings.ToLower(t.Text)) {
			content = true
		}
	}
	return content
}

func isTitle(s string) bool {
	runes := []rune(s)
	if len(runes) == 0 || !unicode.IsUpper(runes[0]) {
		return false
	}
	for _, r := range runes[1:] {
		if unicode.IsUpper(r) {
			return false
		}
	}
	return true
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// isUpper reports whether s has cased letters and all of them are upper case.
func isUpper(s string) bool {
	cased := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) {
			cased = true
		}
	}
	return cased
}

func hasLetter(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}

// Prefix emits one synthesized lead-in sentence.
type Prefix struct {
	Table prefix.SynonymTable
	Rand  prefix.Rand
}

func (Prefix) Name() string { return "sentence-prefix" }

func (p Prefix) Generate(*metadata.Document) (Result, error) {
	return single(SectionPrefix, prefix.Synthesize(p.Table, p.Rand)), nil
}
