package filter

import (
	"context"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/Mariakhan-AI/email-classifier-ML/internal/core"
	"go.uber.org/zap"
)

const previewLimit = 500

// CliFilter implements a command-line interface for spam detection
type CliFilter struct {
	service *core.DetectorService
	logger  *zap.Logger
	verbose bool
	out     io.Writer
}

// NewCliFilter creates a new CLI filter writing to stdout
func NewCliFilter(service *core.DetectorService, logger *zap.Logger, verbose bool) (*CliFilter, error) {
	return NewCliFilterWithOutput(service, logger, verbose, os.Stdout)
}

// NewCliFilterWithOutput creates a CLI filter that prints to out
func NewCliFilterWithOutput(service *core.DetectorService, logger *zap.Logger, verbose bool, out io.Writer) (*CliFilter, error) {
	if out == nil {
		return nil, fmt.Errorf("cli filter needs an output writer")
	}
	return &CliFilter{
		service: service,
		logger:  logger,
		verbose: verbose,
		out:     out,
	}, nil
}

// ProcessMessage classifies a message and prints the verdict
func (f *CliFilter) ProcessMessage(ctx context.Context, text string) (*core.AnalysisResult, error) {
	f.logger.Debug("Processing message", zap.Int("message_size", len(text)))

	fmt.Fprintf(f.out, "\n=== Message Summary ===\n")
	fmt.Fprintf(f.out, "Length: %d bytes\n", len(text))

	if f.verbose {
		fmt.Fprintf(f.out, "\nPreview:\n%s\n", truncate(text, previewLimit))
	}

	result, err := f.service.Analyze(ctx, text)
	if err != nil {
		f.logger.Error("Failed to analyze message", zap.Error(err))
		fmt.Fprintf(f.out, "\nError: %v\n", err)
		return nil, err
	}

	fmt.Fprintf(f.out, "\n=== Results ===\n")
	fmt.Fprintf(f.out, "Label: %s\n", result.Label)
	fmt.Fprintf(f.out, "Is spam: %t\n", result.IsSpam)
	if f.verbose {
		fmt.Fprintf(f.out, "Normalized: %q\n", truncate(result.Normalized, previewLimit))
	}
	fmt.Fprintf(f.out, "Model used: %s\n", result.ModelUsed)
	fmt.Fprintf(f.out, "Processing time: %v\n", result.Duration)

	return result, nil
}

// truncate cuts s to at most limit bytes on a rune boundary and marks the cut
func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	cut := limit
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}

// Start is a no-op for the CLI filter
func (f *CliFilter) Start() error {
	return nil
}

// Stop is a no-op for the CLI filter
func (f *CliFilter) Stop() error {
	return nil
}
