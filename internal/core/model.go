package core

import (
	"time"
)

// Label is the binary verdict for a message
type Label int

const (
	LabelNotSpam Label = iota
	LabelSpam
)

// String returns "spam" or "not-spam"
func (l Label) String() string {
	if l == LabelSpam {
		return "spam"
	}
	return "not-spam"
}

// IsSpam reports whether the label is LabelSpam
func (l Label) IsSpam() bool {
	return l == LabelSpam
}

// AnalysisResult represents the result of classifying one message
type AnalysisResult struct {
	ProcessingID string
	Label        Label
	IsSpam       bool
	Normalized   string
	AnalyzedAt   time.Time
	Duration     time.Duration
	ModelUsed    string
}
