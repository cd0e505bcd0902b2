// Package inference binds a vectorizer and a classifier into a single
// read-only classification context.
package inference

import (
	"errors"
	"fmt"

	"github.com/Mariakhan-AI/email-classifier-ML/internal/adapters/artifact"
	"github.com/Mariakhan-AI/email-classifier-ML/internal/core"
)

var (
	// ErrDimensionMismatch is returned when the vectorizer output width differs
	// from the classifier input width
	ErrDimensionMismatch = errors.New("vectorizer and classifier dimensions differ")
	// ErrUnknownSpamClass is returned when the configured spam class is not one
	// of the classifier's classes
	ErrUnknownSpamClass = errors.New("spam class not produced by classifier")
	// ErrBadPrediction is returned when an artifact breaks its one-row-per-input contract
	ErrBadPrediction = errors.New("unexpected prediction shape")
)

// Adapter classifies normalized text with a fixed pair of artifacts. It is
// immutable after construction and safe for concurrent use.
type Adapter struct {
	transformer artifact.Transformer
	classifier  artifact.Classifier
	spamClass   artifact.ClassValue
}

// NewAdapter checks that the artifacts fit together and that spamClass is
// one of the classifier's classes.
func NewAdapter(transformer artifact.Transformer, classifier artifact.Classifier, spamClass string) (*Adapter, error) {
	if transformer.Features() != classifier.Features() {
		return nil, fmt.Errorf("%w: vectorizer produces %d features, classifier expects %d",
			ErrDimensionMismatch, transformer.Features(), classifier.Features())
	}

	known := false
	for _, c := range classifier.Classes() {
		if string(c) == spamClass {
			known = true
			break
		}
	}
	if !known {
		return nil, fmt.Errorf("%w: %q not in %v", ErrUnknownSpamClass, spamClass, classifier.Classes())
	}

	return &Adapter{
		transformer: transformer,
		classifier:  classifier,
		spamClass:   artifact.ClassValue(spamClass),
	}, nil
}

// Load reads both artifacts from disk and builds an Adapter.
func Load(vectorizerPath, classifierPath, spamClass string) (*Adapter, error) {
	transformer, err := artifact.LoadTransformer(vectorizerPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load vectorizer: %w", err)
	}

	classifier, err := artifact.LoadClassifier(classifierPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load classifier: %w", err)
	}

	return NewAdapter(transformer, classifier, spamClass)
}

// Classify vectorizes the normalized text as a one-document batch and maps the
// single predicted class onto a label.
func (a *Adapter) Classify(normalized string) (core.Label, error) {
	class, err := a.RawClass(normalized)
	if err != nil {
		return core.LabelNotSpam, err
	}
	if class == a.spamClass {
		return core.LabelSpam, nil
	}
	return core.LabelNotSpam, nil
}

// RawClass returns the class exactly as the classifier emits it.
func (a *Adapter) RawClass(normalized string) (artifact.ClassValue, error) {
	x, err := a.transformer.Transform([]string{normalized})
	if err != nil {
		return "", fmt.Errorf("failed to vectorize: %w", err)
	}
	if len(x) != 1 {
		return "", fmt.Errorf("%w: vectorizer returned %d rows for 1 document", ErrBadPrediction, len(x))
	}

	classes, err := a.classifier.Predict(x)
	if err != nil {
		return "", fmt.Errorf("failed to predict: %w", err)
	}
	if len(classes) != 1 {
		return "", fmt.Errorf("%w: classifier returned %d labels for 1 row", ErrBadPrediction, len(classes))
	}

	return classes[0], nil
}

// SpamClass returns the raw class treated as spam.
func (a *Adapter) SpamClass() string {
	return string(a.spamClass)
}
