// Package summary merges the output of every text strategy into one request
// to a completion service.
package summary

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/nbenliogludev/go-page-brief/internal/lexical"
	"github.com/nbenliogludev/go-page-brief/internal/llm"
	"github.com/nbenliogludev/go-page-brief/internal/metadata"
	"github.com/nbenliogludev/go-page-brief/internal/prefix"
	"github.com/nbenliogludev/go-page-brief/internal/textgen"
)

const DefaultDelimiter = "; "

type Orchestrator struct {
	completer llm.Completer
	tagger    lexical.Tagger
	detector  lexical.LanguageDetector

	navbarMode textgen.NavbarMode
	delimiter  string
	synonyms   prefix.SynonymTable
	rng        prefix.Rand
	log        logrus.FieldLogger
}

type Option func(*Orchestrator)

// WithNavbarMode chooses between literal navbar options and proper-noun
// filtered navbar text.
func WithNavbarMode(m textgen.NavbarMode) Option {
	return func(o *Orchestrator) { o.navbarMode = m }
}

func WithDelimiter(d string) Option {
	return func(o *Orchestrator) { o.delimiter = d }
}

func WithSynonyms(t prefix.SynonymTable) Option {
	return func(o *Orchestrator) { o.synonyms = t }
}

func WithRand(r prefix.Rand) Option {
	return func(o *Orchestrator) { o.rng = r }
}

// WithLanguageDetector adds a LANGUAGE section when the description is not
// in English.
func WithLanguageDetector(d lexical.LanguageDetector) Option {
	return func(o *Orchestrator) { o.detector = d }
}

func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Orchestrator) { o.log = l }
}

func New(c llm.Completer, t lexical.Tagger, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		completer:  c,
		tagger:     t,
		navbarMode: textgen.NavbarParse,
		delimiter:  DefaultDelimiter,
		synonyms:   prefix.DefaultTable(),
	}
	for _, opt := range opts {
		opt(o)
	}
	if o.rng == nil {
		o.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if o.log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		o.log = l
	}
	return o
}

// Summarize returns the completion for doc verbatim. maxWords <= 0 leaves the
// length unbounded. Documents with no description, page text or visible
// elements yield "" without contacting the completer.
func (o *Orchestrator) Summarize(ctx context.Context, doc *metadata.Document, maxWords int) (string, error) {
	prompt, ok, err := o.BuildPrompt(doc, maxWords)
	if err != nil {
		return "", err
	}
	if !ok {
		o.log.Debug("document has no content, skipping completion")
		return "", nil
	}

	out, err := o.completer.Complete(ctx, prompt, tokenBound(maxWords))
	if err != nil {
		return "", fmt.Errorf("summarize: %w", err)
	}
	return out, nil
}

// BuildPrompt runs every strategy against doc and assembles the request.
// ok is false when there is nothing worth describing.
func (o *Orchestrator) BuildPrompt(doc *metadata.Document, maxWords int) (prompt llm.Prompt, ok bool, err error) {
	if maxWords < 0 {
		return llm.Prompt{}, false, fmt.Errorf("max words must not be negative, got %d", maxWords)
	}

	filter := lexical.NewFilter(o.tagger)
	// order here is the order of sections in the request
	strategies := []textgen.Strategy{
		textgen.Description{Filter: filter},
		textgen.Content{Tagger: o.tagger},
		textgen.Navbar{Mode: o.navbarMode, Filter: filter},
		textgen.Images{},
		textgen.Buttons{},
		textgen.Inputs{},
		textgen.Iframes{},
	}

	results := make([]textgen.Result, 0, len(strategies))
	fields := logrus.Fields{}
	for _, s := range strategies {
		res, err := s.Generate(doc)
		if err != nil {
			return llm.Prompt{}, false, fmt.Errorf("%s: %w", s.Name(), err)
		}
		fields[s.Name()] = len(res.Parts)
		results = append(results, res)
	}
	o.log.WithFields(fields).Debug("strategies finished")

	if !hasContent(results) {
		return llm.Prompt{}, false, nil
	}

	lead, err := textgen.Prefix{Table: o.synonyms, Rand: o.rng}.Generate(doc)
	if err != nil {
		return llm.Prompt{}, false, err
	}

	var sb strings.Builder
	for _, res := range results {
		if res.Empty() {
			continue
		}
		sep := o.delimiter
		if res.Section == textgen.SectionContent {
			sep = "\n"
		}
		sb.WriteString(res.Section + ":\n" + res.Join(sep) + "\n\n")
	}
	if lang := o.language(doc); lang != "" {
		sb.WriteString("LANGUAGE:\nThe original description is written in " + lang + ".\n\n")
	}

	prompt = llm.Prompt{
		System: llm.BriefSystemPrompt,
		Turns: []string{
			lead.Join(" ") + ":",
			strings.TrimRight(sb.String(), "\n"),
		},
	}
	if maxWords > 0 {
		prompt.Turns = append(prompt.Turns, fmt.Sprintf("Keep the brief to roughly %d words.", maxWords))
	}
	return prompt, true, nil
}

func (o *Orchestrator) language(doc *metadata.Document) string {
	if o.detector == nil {
		return ""
	}
	lang, ok := o.detector.Detect(doc.Desc)
	if !ok || lang == "english" {
		return ""
	}
	return lang
}

// hasContent ignores the navbar: navigation alone does not describe a page.
func hasContent(results []textgen.Result) bool {
	for _, res := range results {
		if res.Section != textgen.SectionNavbar && !res.Empty() {
			return true
		}
	}
	return false
}

// tokenBound converts a word budget into a completion token limit, assuming
// about four tokens for every three words.
func tokenBound(maxWords int) int {
	if maxWords <= 0 {
		return 0
	}
	return (maxWords*4 + 2) / 3
}
