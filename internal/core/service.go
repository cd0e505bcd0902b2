package core

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DetectorService is the core service for spam detection
type DetectorService struct {
	normalizer Normalizer
	classifier LabelClassifier
	logger     *zap.Logger
	modelName  string
}

// NewDetectorService creates a new detector service
func NewDetectorService(
	normalizer Normalizer,
	classifier LabelClassifier,
	logger *zap.Logger,
	modelName string,
) *DetectorService {
	return &DetectorService{
		normalizer: normalizer,
		classifier: classifier,
		logger:     logger,
		modelName:  modelName,
	}
}

// Analyze classifies a raw message. Empty or whitespace-only input returns
// ErrEmptyMessage without touching the model.
func (s *DetectorService) Analyze(ctx context.Context, message string) (*AnalysisResult, error) {
	if strings.TrimSpace(message) == "" {
		return nil, ErrEmptyMessage
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := time.Now()
	normalized := s.normalizer.Normalize(message)

	label, err := s.classifier.Classify(normalized)
	if err != nil {
		return nil, fmt.Errorf("failed to classify message: %w", err)
	}

	result := &AnalysisResult{
		ProcessingID: uuid.NewString(),
		Label:        label,
		IsSpam:       label.IsSpam(),
		Normalized:   normalized,
		AnalyzedAt:   start,
		Duration:     time.Since(start),
		ModelUsed:    s.modelName,
	}

	s.logger.Debug("Message classified",
		zap.String("processing_id", result.ProcessingID),
		zap.String("label", label.String()),
		zap.Int("message_size", len(message)),
		zap.Int("token_count", countTokens(normalized)),
		zap.Duration("duration", result.Duration))

	return result, nil
}

func countTokens(normalized string) int {
	if normalized == "" {
		return 0
	}
	return strings.Count(normalized, " ") + 1
}
