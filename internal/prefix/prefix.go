// Package prefix builds varied lead-in sentences such as
// "Build us a site that has".
package prefix

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Omit is the alternative that drops a token from the sentence.
const Omit = ""

// SynonymTable maps a lower-case template token to its alternatives.
type SynonymTable map[string][]string

// Rand is the subset of *rand.Rand the synthesizer draws from.
type Rand interface {
	Intn(n int) int
}

var base = [...]string{"Create", "me", "a", "website", "with"}

var defaultTable = SynonymTable{
	"website": {"site", "page", "webpage", "web page", "internet site", "Internet website", "online page"},
	"create": {"make", "build", "construct", "design", "produce", "generate", "craft", "synthesize",
		"i want", "we need", "we want", "give", Omit},
	"me":   {"for me", "us", "our team", "my team", "the team", "the company", "the business", "our group", Omit},
	"with": {"that contains", "that has", "having", "made of", "composed of", "containing", "where"},
}

// DefaultTable returns a copy of the built-in synonym table.
func DefaultTable() SynonymTable {
	out := make(SynonymTable, len(defaultTable))
	for k, v := range defaultTable {
		out[k] = append([]string(nil), v...)
	}
	return out
}

// Synthesize fills the base template from table. Each known token is drawn
// uniformly from itself plus its alternatives. "me" is dropped when the token
// before it was omitted or became a multi-word phrase. The first surviving
// word is capitalised five times out of six.
func Synthesize(table SynonymTable, rng Rand) string {
	words := base

	for i, w := range words {
		lower := strings.ToLower(w)

		if lower == "me" && i > 0 && detached(words[i-1]) {
			words[i] = Omit
			continue
		}

		alts, ok := table[lower]
		if !ok {
			continue
		}
		// index 0 keeps the template word
		if pick := rng.Intn(len(alts) + 1); pick > 0 {
			words[i] = alts[pick-1]
		}
	}

	out := make([]string, 0, len(words))
	for _, w := range words {
		if w != Omit {
			out = append(out, w)
		}
	}
	if len(out) > 0 && rng.Intn(6) > 0 {
		out[0] = capitalize(out[0])
	}
	return strings.Join(out, " ")
}

func detached(prev string) bool {
	return prev == Omit || len(strings.Fields(prev)) > 1
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
