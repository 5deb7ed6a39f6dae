// Package lexical strips proper nouns from free text. Tokenising, tagging and
// sentence splitting are delegated to a Tagger.
package lexical

import (
	"errors"
	"fmt"

	"github.com/jdkato/prose/v2"
)

// ErrTagger wraps any failure of the tokenizer/tagger collaborator.
var ErrTagger = errors.New("tagger unavailable")

// Token is a word with its Penn Treebank part-of-speech tag.
type Token struct {
	Text string
	Tag  string
}

type Tagger interface {
	Tag(text string) ([]Token, error)
	Sentences(text string) ([]string, error)
	IsStopWord(word string) bool
}

// ProseTagger backs Tagger with the prose averaged-perceptron model and the
// English stop-word list.
type ProseTagger struct{}

func NewProseTagger() *ProseTagger {
	return &ProseTagger{}
}

func (p *ProseTagger) Tag(text string) ([]Token, error) {
	doc, err := prose.NewDocument(text,
		prose.WithSegmentation(false),
		prose.WithExtraction(false),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: tag: %v", ErrTagger, err)
	}

	toks := doc.Tokens()
	out := make([]Token, 0, len(toks))
	for _, tok := range toks {
		out = append(out, Token{Text: tok.Text, Tag: tok.Tag})
	}
	return out, nil
}

func (p *ProseTagger) Sentences(text string) ([]string, error) {
	doc, err := prose.NewDocument(text,
		prose.WithTokenization(false),
		prose.WithTagging(false),
		prose.WithExtraction(false),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: segment: %v", ErrTagger, err)
	}

	sents := doc.Sentences()
	out := make([]string, 0, len(sents))
	for _, s := range sents {
		out = append(out, s.Text)
	}
	return out, nil
}

func (p *ProseTagger) IsStopWord(word string) bool {
	return IsEnglishStopWord(word)
}
