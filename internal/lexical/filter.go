package lexical

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

const asciiPunctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// Filter removes proper nouns, and any stop-word directly next to one, from
// free text.
type Filter struct {
	tagger Tagger
}

func NewFilter(t Tagger) *Filter {
	return &Filter{tagger: t}
}

// StripProperNouns returns text without NNP/NNPS tokens and their adjacent
// stop-words, with every sentence capitalised. Empty input yields "".
func (f *Filter) StripProperNouns(text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", nil
	}

	tokens, err := f.tagger.Tag(text)
	if err != nil {
		return "", err
	}

	words := make([]string, len(tokens))
	for i, tok := range tokens {
		words[i] = tok.Text
	}

	words = removeIndexes(words, f.removalSet(tokens))

	sentences, err := f.tagger.Sentences(joinTokens(words))
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	for _, s := range sentences {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(capitalize(s))
	}
	return sb.String(), nil
}

// removalSet collects proper-noun indexes plus stop-word neighbours, sorted
// descending and without duplicates.
func (f *Filter) removalSet(tokens []Token) []int {
	set := make(map[int]struct{})
	for i, tok := range tokens {
		if tok.Tag != "NNP" && tok.Tag != "NNPS" {
			continue
		}
		set[i] = struct{}{}
		if i+1 < len(tokens) && f.tagger.IsStopWord(tokens[i+1].Text) {
			set[i+1] = struct{}{}
		}
		if i > 0 && f.tagger.IsStopWord(tokens[i-1].Text) {
			set[i-1] = struct{}{}
		}
	}

	idx := make([]int, 0, len(set))
	for i := range set {
		idx = append(idx, i)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(idx)))
	return idx
}

// removeIndexes deletes positions in the order given. Indexes past the
// current end are skipped.
func removeIndexes(words []string, desc []int) []string {
	for _, i := range desc {
		if i < 0 || i >= len(words) {
			continue
		}
		words = append(words[:i], words[i+1:]...)
	}
	return words
}

func joinTokens(words []string) string {
	var sb strings.Builder
	for _, w := range words {
		if !isPunctuation(w) && sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(w)
	}
	return sb.String()
}

func isPunctuation(tok string) bool {
	return tok != "" && strings.Contains(asciiPunctuation, tok)
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
