package core

// Normalizer turns a raw message into the token string the model was trained on
type Normalizer interface {
	Normalize(text string) string
}

// LabelClassifier maps a normalized message to a label
type LabelClassifier interface {
	Classify(normalized string) (Label, error)
}
