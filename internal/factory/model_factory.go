package factory

import (
	"fmt"

	"github.com/Mariakhan-AI/email-classifier-ML/internal/config"
	"github.com/Mariakhan-AI/email-classifier-ML/internal/inference"
	"go.uber.org/zap"
)

// ModelFactory loads the inference adapter from the configured artifacts
type ModelFactory struct {
	cfg    *config.Config
	logger *zap.Logger
}

// NewModelFactory creates a new model factory
func NewModelFactory(cfg *config.Config, logger *zap.Logger) *ModelFactory {
	return &ModelFactory{
		cfg:    cfg,
		logger: logger,
	}
}

// CreateAdapter loads both artifacts. Any failure here is fatal for the caller.
func (f *ModelFactory) CreateAdapter() (*inference.Adapter, error) {
	modelCfg := f.cfg.GetModel()

	adapter, err := inference.Load(modelCfg.VectorizerPath, modelCfg.ClassifierPath, modelCfg.SpamClass)
	if err != nil {
		f.logger.Error("Failed to load model artifacts",
			zap.String("vectorizer", modelCfg.VectorizerPath),
			zap.String("classifier", modelCfg.ClassifierPath),
			zap.Error(err))
		return nil, fmt.Errorf("failed to load model %s: %w", modelCfg.Name, err)
	}

	f.logger.Info("Model loaded",
		zap.String("model", modelCfg.Name),
		zap.String("vectorizer", modelCfg.VectorizerPath),
		zap.String("classifier", modelCfg.ClassifierPath),
		zap.String("spam_class", adapter.SpamClass()))

	return adapter, nil
}

// ModelName returns the configured display name of the model
func (f *ModelFactory) ModelName() string {
	return f.cfg.GetModel().Name
}
