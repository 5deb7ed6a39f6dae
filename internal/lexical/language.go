package lexical

import (
	"strings"

	"github.com/pemistahl/lingua-go"
)

// LanguageDetector names the language a text is written in.
type LanguageDetector interface {
	Detect(text string) (string, bool)
}

var defaultLanguages = []lingua.Language{
	lingua.English,
	lingua.French,
	lingua.German,
	lingua.Spanish,
	lingua.Italian,
	lingua.Portuguese,
	lingua.Dutch,
}

type LinguaDetector struct {
	detector lingua.LanguageDetector
}

// NewLinguaDetector builds a detector limited to langs, or to a small set of
// western European languages when none are given.
func NewLinguaDetector(langs ...lingua.Language) *LinguaDetector {
	if len(langs) == 0 {
		langs = defaultLanguages
	}
	return &LinguaDetector{
		detector: lingua.NewLanguageDetectorBuilder().
			FromLanguages(langs...).
			WithMinimumRelativeDistance(0.1).
			Build(),
	}
}

// Detect returns the lower-case language name, e.g. "english".
func (d *LinguaDetector) Detect(text string) (string, bool) {
	if strings.TrimSpace(text) == "" {
		return "", false
	}
	lang, ok := d.detector.DetectLanguageOf(text)
	if !ok {
		return "", false
	}
	return strings.ToLower(lang.String()), true
}
