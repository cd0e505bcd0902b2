package textproc

import (
	"regexp"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var tokenPattern = regexp.MustCompile(`[a-z0-9]+`)

// Tokenize lowercases text and splits it into maximal runs of ASCII letters
// and digits. Punctuation, whitespace and any other characters separate tokens
// and are dropped.
func Tokenize(text string) []string {
	// A Caser keeps state between calls, so each call gets its own.
	lower := cases.Lower(language.Und).String(text)
	return tokenPattern.FindAllString(lower, -1)
}

// Normalize runs the fixed preprocessing pipeline: lowercase, tokenize, drop
// stopwords, stem, join with single spaces. It never fails; text with no
// surviving tokens yields "".
func Normalize(text string) string {
	tokens := Tokenize(text)
	kept := tokens[:0]
	for _, tok := range tokens {
		if IsStopword(tok) {
			continue
		}
		kept = append(kept, Stem(tok))
	}
	return strings.Join(kept, " ")
}

// TextProcessor applies Normalize and reports what it did to the logger.
type TextProcessor struct {
	logger *zap.Logger
}

// NewTextProcessor creates a new TextProcessor
func NewTextProcessor(logger *zap.Logger) *TextProcessor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TextProcessor{
		logger: logger,
	}
}

// Normalize normalizes text and logs the input and output sizes at debug level.
func (tp *TextProcessor) Normalize(text string) string {
	normalized := Normalize(text)

	tp.logger.Debug("Text normalized",
		zap.Int("original_size", len(text)),
		zap.Int("normalized_size", len(normalized)))

	return normalized
}
