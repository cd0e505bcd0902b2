package di

import (
	"go.uber.org/dig"

	"github.com/Mariakhan-AI/email-classifier-ML/internal/core"
	"github.com/Mariakhan-AI/email-classifier-ML/internal/factory"
	"github.com/Mariakhan-AI/email-classifier-ML/internal/inference"
	"github.com/Mariakhan-AI/email-classifier-ML/internal/ports"
)

// provideDetector registers everything downstream of *config.Config and
// *zap.Logger. Both containers share it.
func provideDetector(container *dig.Container) error {
	// Register factories
	if err := container.Provide(factory.NewModelFactory); err != nil {
		return err
	}
	if err := container.Provide(factory.NewTextProcessorFactory); err != nil {
		return err
	}
	if err := container.Provide(factory.NewFilterFactory); err != nil {
		return err
	}

	// Register normalizer
	if err := container.Provide(func(f *factory.TextProcessorFactory) core.Normalizer {
		return f.CreateTextProcessor()
	}); err != nil {
		return err
	}

	// Register inference adapter; loading fails fast on bad artifacts
	if err := container.Provide(func(f *factory.ModelFactory) (*inference.Adapter, error) {
		return f.CreateAdapter()
	}); err != nil {
		return err
	}
	if err := container.Provide(func(a *inference.Adapter) core.LabelClassifier {
		return a
	}); err != nil {
		return err
	}

	// Register model name
	if err := container.Provide(func(f *factory.ModelFactory) string {
		return f.ModelName()
	}); err != nil {
		return err
	}

	// Register detector service
	if err := container.Provide(core.NewDetectorService); err != nil {
		return err
	}

	// Register message filter
	if err := container.Provide(func(f *factory.FilterFactory) (ports.MessageFilter, error) {
		return f.CreateMessageFilter()
	}); err != nil {
		return err
	}

	return nil
}
