package textgen

import (
	"fmt"
	"strings"

	"github.com/nbenliogludev/go-page-brief/internal/lexical"
	"github.com/nbenliogludev/go-page-brief/internal/metadata"
)

// NavbarMode selects how the raw navbar text is turned into content.
type NavbarMode string

const (
	// NavbarParse splits the navbar into literal options.
	NavbarParse NavbarMode = "parse"
	// NavbarFilter runs the raw navbar text through the proper-noun filter.
	NavbarFilter NavbarMode = "filter"
)

func ParseNavbarMode(s string) (NavbarMode, error) {
	switch m := NavbarMode(strings.ToLower(strings.TrimSpace(s))); m {
	case "", NavbarParse:
		return NavbarParse, nil
	case NavbarFilter:
		return m, nil
	default:
		return "", fmt.Errorf("unknown navbar mode %q", s)
	}
}

// ParseNavbar splits raw on newlines when it has any, otherwise on
// whitespace. Empty entries are dropped.
func ParseNavbar(raw string) []string {
	var fields []string
	if strings.Contains(raw, "\n") {
		fields = strings.Split(raw, "\n")
	} else {
		fields = strings.Fields(raw)
	}

	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}

type Navbar struct {
	Mode   NavbarMode
	Filter *lexical.Filter
}

func (Navbar) Name() string { return "navbar" }

func (n Navbar) Generate(doc *metadata.Document) (Result, error) {
	if strings.TrimSpace(doc.Navbar) == "" {
		return Result{Section: SectionNavbar}, nil
	}
	if n.Mode != NavbarFilter {
		return Result{Section: SectionNavbar, Parts: ParseNavbar(doc.Navbar)}, nil
	}
	if n.Filter == nil {
		return Result{}, fmt.Errorf("navbar: filter mode without a filter")
	}
	text, err := n.Filter.StripProperNouns(doc.Navbar)
	if err != nil {
		return Result{}, fmt.Errorf("navbar: %w", err)
	}
	return single(SectionNavbar, text), nil
}
