package ports

import (
	"context"

	"github.com/Mariakhan-AI/email-classifier-ML/internal/core"
)

// MessageFilter is a front end that feeds user messages to the detector
type MessageFilter interface {
	// ProcessMessage classifies one raw message
	ProcessMessage(ctx context.Context, text string) (*core.AnalysisResult, error)

	// Start starts the front end
	Start() error

	// Stop stops the front end
	Stop() error
}
