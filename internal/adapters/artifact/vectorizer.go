package artifact

import (
	"fmt"
	"math"
	"regexp"
	"strings"
)

const (
	KindTfidf = "tfidf"
	KindCount = "count"

	NormL2   = "l2"
	NormL1   = "l1"
	NormNone = "none"
)

// DefaultTokenPattern selects tokens of two or more word characters, the
// scikit-learn vectorizer default.
const DefaultTokenPattern = `\b\w\w+\b`

// TermVectorizer maps documents onto a fixed vocabulary, producing raw term
// counts ("count") or tf-idf weights ("tfidf").
type TermVectorizer struct {
	Kind         string         `json:"kind" yaml:"kind"`
	Vocabulary   map[string]int `json:"vocabulary" yaml:"vocabulary"`
	IDF          []float64      `json:"idf,omitempty" yaml:"idf,omitempty"`
	Norm         string         `json:"norm,omitempty" yaml:"norm,omitempty"`
	SublinearTF  bool           `json:"sublinear_tf,omitempty" yaml:"sublinear_tf,omitempty"`
	Binary       bool           `json:"binary,omitempty" yaml:"binary,omitempty"`
	NgramRange   []int          `json:"ngram_range,omitempty" yaml:"ngram_range,omitempty"`
	TokenPattern string         `json:"token_pattern,omitempty" yaml:"token_pattern,omitempty"`

	pattern *regexp.Regexp
	minN    int
	maxN    int
}

// init fills defaults and validates the decoded artifact.
func (v *TermVectorizer) init() error {
	if len(v.Vocabulary) == 0 {
		return fmt.Errorf("%w: empty vocabulary", ErrInvalidArtifact)
	}

	seen := make([]bool, len(v.Vocabulary))
	for term, idx := range v.Vocabulary {
		if idx < 0 || idx >= len(seen) || seen[idx] {
			return fmt.Errorf("%w: term %q has bad column %d", ErrInvalidArtifact, term, idx)
		}
		seen[idx] = true
	}

	switch v.Kind {
	case KindTfidf:
		if len(v.IDF) != len(v.Vocabulary) {
			return fmt.Errorf("%w: %d idf weights for %d terms", ErrInvalidArtifact, len(v.IDF), len(v.Vocabulary))
		}
		if v.Norm == "" {
			v.Norm = NormL2
		}
	case KindCount:
		if len(v.IDF) != 0 {
			return fmt.Errorf("%w: count vectorizer carries idf weights", ErrInvalidArtifact)
		}
		if v.Norm == "" {
			v.Norm = NormNone
		}
	default:
		return fmt.Errorf("%w: vectorizer kind %q", ErrUnsupportedKind, v.Kind)
	}

	switch v.Norm {
	case NormL1, NormL2, NormNone:
	default:
		return fmt.Errorf("%w: norm %q", ErrInvalidArtifact, v.Norm)
	}

	v.minN, v.maxN = 1, 1
	switch len(v.NgramRange) {
	case 0:
	case 2:
		v.minN, v.maxN = v.NgramRange[0], v.NgramRange[1]
	default:
		return fmt.Errorf("%w: ngram_range must have two elements", ErrInvalidArtifact)
	}
	if v.minN < 1 || v.minN > v.maxN {
		return fmt.Errorf("%w: ngram_range [%d, %d]", ErrInvalidArtifact, v.minN, v.maxN)
	}

	expr := v.TokenPattern
	if expr == "" {
		expr = DefaultTokenPattern
	}
	pattern, err := regexp.Compile(expr)
	if err != nil {
		return fmt.Errorf("%w: token_pattern: %v", ErrInvalidArtifact, err)
	}
	v.pattern = pattern

	return nil
}

// Features returns the vocabulary size.
func (v *TermVectorizer) Features() int {
	return len(v.Vocabulary)
}

// Transform returns one weighted term row per document.
func (v *TermVectorizer) Transform(docs []string) ([][]float64, error) {
	rows := make([][]float64, len(docs))
	for i, doc := range docs {
		rows[i] = v.transformOne(doc)
	}
	return rows, nil
}

func (v *TermVectorizer) transformOne(doc string) []float64 {
	row := make([]float64, len(v.Vocabulary))
	for _, term := range v.analyze(doc) {
		if idx, ok := v.Vocabulary[term]; ok {
			row[idx]++
		}
	}

	for i, tf := range row {
		if tf == 0 {
			continue
		}
		switch {
		case v.Binary:
			tf = 1
		case v.SublinearTF:
			tf = math.Log(tf) + 1
		}
		if v.Kind == KindTfidf {
			tf *= v.IDF[i]
		}
		row[i] = tf
	}

	normalizeRow(row, v.Norm)
	return row
}

// analyze lowercases and tokenizes doc, then expands the tokens into n-grams.
func (v *TermVectorizer) analyze(doc string) []string {
	tokens := v.pattern.FindAllString(strings.ToLower(doc), -1)
	if v.maxN == 1 {
		return tokens
	}

	var terms []string
	for n := v.minN; n <= v.maxN && n <= len(tokens); n++ {
		for i := 0; i+n <= len(tokens); i++ {
			terms = append(terms, strings.Join(tokens[i:i+n], " "))
		}
	}
	return terms
}

func normalizeRow(row []float64, norm string) {
	var total float64
	switch norm {
	case NormL2:
		for _, x := range row {
			total += x * x
		}
		total = math.Sqrt(total)
	case NormL1:
		for _, x := range row {
			total += math.Abs(x)
		}
	default:
		return
	}
	if total == 0 {
		return
	}
	for i := range row {
		row[i] /= total
	}
}
