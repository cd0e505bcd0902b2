// Package artifact decodes pre-trained model artifacts exported from a training
// pipeline: a text vectorizer and a classifier. Artifacts are JSON or YAML
// documents, optionally gzip-compressed, carrying a "kind" discriminator.
package artifact

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"gopkg.in/yaml.v3"
)

var (
	// ErrUnsupportedFormat is returned for a file extension with no decoder
	ErrUnsupportedFormat = errors.New("unsupported artifact format")
	// ErrUnsupportedKind is returned when the artifact kind is unknown
	ErrUnsupportedKind = errors.New("unsupported artifact kind")
	// ErrInvalidArtifact is returned when an artifact fails validation
	ErrInvalidArtifact = errors.New("invalid artifact")
	// ErrShapeMismatch is returned when input does not fit the artifact's dimensions
	ErrShapeMismatch = errors.New("input shape mismatch")
)

// Transformer turns a sequence of documents into a matrix with one row per document.
type Transformer interface {
	Transform(docs []string) ([][]float64, error)
	// Features is the number of columns Transform produces.
	Features() int
}

// Classifier predicts one raw class per matrix row.
type Classifier interface {
	Predict(x [][]float64) ([]ClassValue, error)
	// Classes lists the raw classes the classifier can emit, in model order.
	Classes() []ClassValue
	// Features is the number of columns Predict expects.
	Features() int
}

// ClassValue is a class label as stored in the artifact. Numeric and string
// labels are both kept in their textual form, so 1 and "1" compare equal.
type ClassValue string

// UnmarshalJSON accepts a JSON string, number or boolean.
func (c *ClassValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return fmt.Errorf("%w: empty class value", ErrInvalidArtifact)
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*c = ClassValue(s)
	case 't', 'f':
		var b bool
		if err := json.Unmarshal(data, &b); err != nil {
			return err
		}
		*c = ClassValue(fmt.Sprint(b))
	default:
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return fmt.Errorf("%w: class value %s", ErrInvalidArtifact, data)
		}
		*c = ClassValue(n.String())
	}
	return nil
}

// UnmarshalYAML accepts any scalar.
func (c *ClassValue) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("%w: class value at line %d is not a scalar", ErrInvalidArtifact, value.Line)
	}
	*c = ClassValue(value.Value)
	return nil
}

type format int

const (
	formatJSON format = iota
	formatYAML
)

type header struct {
	Kind string `json:"kind" yaml:"kind"`
}

// document is a decoded-but-untyped artifact file.
type document struct {
	path   string
	kind   string
	format format
	data   []byte
}

func (d *document) decode(v any) error {
	var err error
	switch d.format {
	case formatYAML:
		err = yaml.Unmarshal(d.data, v)
	default:
		dec := json.NewDecoder(bytes.NewReader(d.data))
		err = dec.Decode(v)
	}
	if err != nil {
		return fmt.Errorf("failed to decode %s artifact %s: %w", d.kind, d.path, err)
	}
	return nil
}

// readDocument reads path, inflating it when it ends in .gz, and extracts the kind.
func readDocument(path string) (*document, error) {
	name := strings.ToLower(path)
	compressed := strings.HasSuffix(name, ".gz")
	name = strings.TrimSuffix(name, ".gz")

	var f format
	switch filepath.Ext(name) {
	case ".json":
		f = formatJSON
	case ".yaml", ".yml":
		f = formatYAML
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open artifact: %w", err)
	}
	defer file.Close()

	var r io.Reader = file
	if compressed {
		zr, err := gzip.NewReader(file)
		if err != nil {
			return nil, fmt.Errorf("failed to open gzip stream %s: %w", path, err)
		}
		defer zr.Close()
		r = zr
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read artifact %s: %w", path, err)
	}

	doc := &document{path: path, format: f, data: data}
	var h header
	if err := doc.decode(&h); err != nil {
		return nil, err
	}
	if h.Kind == "" {
		return nil, fmt.Errorf("%w: %s has no kind", ErrInvalidArtifact, path)
	}
	doc.kind = h.Kind

	return doc, nil
}

// LoadTransformer reads a vectorizer artifact.
func LoadTransformer(path string) (Transformer, error) {
	doc, err := readDocument(path)
	if err != nil {
		return nil, err
	}

	switch doc.kind {
	case KindTfidf, KindCount:
		var v TermVectorizer
		if err := doc.decode(&v); err != nil {
			return nil, err
		}
		if err := v.init(); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return &v, nil
	default:
		return nil, fmt.Errorf("%w: transformer %q in %s", ErrUnsupportedKind, doc.kind, path)
	}
}

// LoadClassifier reads a classifier artifact.
func LoadClassifier(path string) (Classifier, error) {
	doc, err := readDocument(path)
	if err != nil {
		return nil, err
	}

	switch doc.kind {
	case KindMultinomialNB:
		var nb NaiveBayes
		if err := doc.decode(&nb); err != nil {
			return nil, err
		}
		if err := nb.validate(); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return &nb, nil
	case KindLinear:
		var lm LinearModel
		if err := doc.decode(&lm); err != nil {
			return nil, err
		}
		if err := lm.validate(); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return &lm, nil
	default:
		return nil, fmt.Errorf("%w: classifier %q in %s", ErrUnsupportedKind, doc.kind, path)
	}
}
