package lexical

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedTagger returns fixed tokens and splits sentences after ". ".
type scriptedTagger struct {
	tokens []Token
	calls  int
}

func (s *scriptedTagger) Tag(string) ([]Token, error) {
	s.calls++
	return s.tokens, nil
}

func (s *scriptedTagger) Sentences(text string) ([]string, error) {
	return splitSentences(text), nil
}

func (s *scriptedTagger) IsStopWord(word string) bool { return IsEnglishStopWord(word) }

// lexiconTagger tokenises on whitespace, splits trailing punctuation and tags
// known names as NNP.
type lexiconTagger struct {
	names map[string]bool
}

func (l *lexiconTagger) Tag(text string) ([]Token, error) {
	var out []Token
	for _, f := range strings.Fields(text) {
		var trail string
		if n := len(f); n > 1 && strings.ContainsAny(f[n-1:], ".,!?") {
			f, trail = f[:n-1], f[n-1:]
		}
		tag := "NN"
		if l.names[f] {
			tag = "NNP"
		}
		out = append(out, Token{Text: f, Tag: tag})
		if trail != "" {
			out = append(out, Token{Text: trail, Tag: "."})
		}
	}
	return out, nil
}

func (l *lexiconTagger) Sentences(text string) ([]string, error) {
	return splitSentences(text), nil
}

func (l *lexiconTagger) IsStopWord(word string) bool { return IsEnglishStopWord(word) }

type failingTagger struct{}

func (failingTagger) Tag(string) ([]Token, error) { return nil, ErrTagger }
func (failingTagger) Sentences(string) ([]string, error) {
	return nil, ErrTagger
}
func (failingTagger) IsStopWord(string) bool { return false }

func splitSentences(text string) []string {
	var out []string
	for _, part := range strings.SplitAfter(text, ". ") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func tokens(pairs ...string) []Token {
	out := make([]Token, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, Token{Text: pairs[i], Tag: pairs[i+1]})
	}
	return out
}

func TestStripProperNouns(t *testing.T) {
	tests := []struct {
		name   string
		tokens []Token
		want   string
	}{
		{
			name:   "names and adjacent stop-word",
			tokens: tokens("John", "NNP", "went", "VBD", "to", "TO", "Paris", "NNP"),
			want:   "Went",
		},
		{
			name: "stop-word shared by two names removed once",
			tokens: tokens("Visit", "VB", "the", "DT", "Acme", "NNP", "and", "CC",
				"Bolt", "NNP", "store", "NN", ".", "."),
			want: "Visit store.",
		},
		{
			name:   "plural proper noun",
			tokens: tokens("the", "DT", "Smiths", "NNPS", "bake", "VBP", "bread", "NN"),
			want:   "Bake bread",
		},
		{
			name:   "capitalised stop-word is kept",
			tokens: tokens("The", "DT", "Louvre", "NNP", "is", "VBZ", "big", "JJ"),
			want:   "The big",
		},
		{
			name:   "punctuation attaches to previous token",
			tokens: tokens("hello", "UH", ",", ",", "world", "NN", ".", "."),
			want:   "Hello, world.",
		},
		{
			name: "every sentence capitalised",
			tokens: tokens("we", "PRP", "sell", "VBP", "shoes", "NNS", ".", ".",
				"they", "PRP", "fit", "VBP", ".", "."),
			want: "We sell shoes. They fit.",
		},
		{
			name:   "only proper nouns",
			tokens: tokens("Acme", "NNP", "Corp", "NNP"),
			want:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewFilter(&scriptedTagger{tokens: tt.tokens})
			got, err := f.StripProperNouns("ignored by the scripted tagger")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStripProperNounsEmptyInput(t *testing.T) {
	tagger := &scriptedTagger{tokens: tokens("x", "NN")}
	f := NewFilter(tagger)

	for _, in := range []string{"", "   \n"} {
		got, err := f.StripProperNouns(in)
		require.NoError(t, err)
		assert.Equal(t, "", got)
	}
	assert.Zero(t, tagger.calls)
}

func TestStripProperNounsIdempotent(t *testing.T) {
	f := NewFilter(&lexiconTagger{names: map[string]bool{"John": true, "Paris": true}})

	inputs := []string{
		"we build shoes. they fit well.",
		"a shop for running shoes, socks and laces.",
		"John flew to Paris. the trip was long.",
	}
	for _, in := range inputs {
		once, err := f.StripProperNouns(in)
		require.NoError(t, err)
		twice, err := f.StripProperNouns(once)
		require.NoError(t, err)
		assert.Equal(t, once, twice, "input %q", in)
	}
}

func TestStripProperNounsTaggerFailure(t *testing.T) {
	_, err := NewFilter(failingTagger{}).StripProperNouns("Acme sells shoes")
	assert.True(t, errors.Is(err, ErrTagger))
}

func TestRemoveIndexesSkipsOutOfRange(t *testing.T) {
	got := removeIndexes([]string{"a", "b", "c"}, []int{7, 3, 1})
	assert.Equal(t, []string{"a", "c"}, got)
}

func TestIsPunctuation(t *testing.T) {
	assert.True(t, isPunctuation("."))
	assert.True(t, isPunctuation(","))
	assert.False(t, isPunctuation(""))
	assert.False(t, isPunctuation("..."))
	assert.False(t, isPunctuation("word"))
}
