package di

import (
	"go.uber.org/dig"

	"github.com/Mariakhan-AI/email-classifier-ML/internal/config"
	"github.com/Mariakhan-AI/email-classifier-ML/internal/logging"
)

// BuildContainer creates and configures a dependency injection container
func BuildContainer() (*dig.Container, error) {
	container := dig.New()

	// Register configuration
	if err := container.Provide(config.New); err != nil {
		return nil, err
	}

	// Register logger
	if err := container.Provide(logging.InitLogger); err != nil {
		return nil, err
	}

	if err := provideDetector(container); err != nil {
		return nil, err
	}

	return container, nil
}
