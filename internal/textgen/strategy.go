// Package textgen holds the independent text-generation strategies that each
// read one metadata document and emit a list of phrases.
package textgen

import (
	"strings"

	"github.com/nbenliogludev/go-page-brief/internal/metadata"
)

// Result is the ordered output of one strategy.
type Result struct {
	Section string
	Parts   []string
}

func (r Result) Empty() bool {
	return len(r.Parts) == 0
}

func (r Result) Join(sep string) string {
	return strings.Join(r.Parts, sep)
}

// Strategy generates text from a document. Implementations never mutate doc
// and return an empty Result, not an error, when their fields are absent.
type Strategy interface {
	Name() string
	Generate(doc *metadata.Document) (Result, error)
}

const (
	SectionPrefix      = "PREFIX"
	SectionDescription = "DESCRIPTION"
	SectionContent     = "CONTENT"
	SectionNavbar      = "NAVBAR"
	SectionImages      = "IMAGES"
	SectionButtons     = "BUTTONS"
	SectionInputs      = "INPUTS"
	SectionIframes     = "IFRAMES"
	SectionObjects     = "OBJECTS"
)

func single(section, text string) Result {
	if text == "" {
		return Result{Section: section}
	}
	return Result{Section: section, Parts: []string{text}}
}
