package factory

import (
	"fmt"

	"github.com/Mariakhan-AI/email-classifier-ML/internal/adapters/filter"
	"github.com/Mariakhan-AI/email-classifier-ML/internal/adapters/web"
	"github.com/Mariakhan-AI/email-classifier-ML/internal/config"
	"github.com/Mariakhan-AI/email-classifier-ML/internal/core"
	"github.com/Mariakhan-AI/email-classifier-ML/internal/ports"
	"go.uber.org/zap"
)

// FilterFactory creates message filters based on configuration
type FilterFactory struct {
	cfg     *config.Config
	logger  *zap.Logger
	service *core.DetectorService
}

// NewFilterFactory creates a new filter factory
func NewFilterFactory(cfg *config.Config, logger *zap.Logger, service *core.DetectorService) *FilterFactory {
	return &FilterFactory{
		cfg:     cfg,
		logger:  logger,
		service: service,
	}
}

// CreateMessageFilter creates a message filter based on the configuration
func (f *FilterFactory) CreateMessageFilter() (ports.MessageFilter, error) {
	serverCfg, err := f.cfg.GetServer()
	if err != nil {
		return nil, fmt.Errorf("invalid server configuration: %w", err)
	}

	switch serverCfg.FilterType {
	case "web":
		return web.NewWebFilter(f.service, f.logger, serverCfg, f.cfg.GetModel().Name)
	case "cli":
		return filter.NewCliFilter(
			f.service,
			f.logger,
			f.cfg.GetBool("cli.verbose"),
		)
	default:
		return nil, fmt.Errorf("unsupported filter type: %s", serverCfg.FilterType)
	}
}
