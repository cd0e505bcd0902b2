// Package web serves the single-page spam detector and its JSON endpoint.
package web

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"go.uber.org/zap"

	"github.com/Mariakhan-AI/email-classifier-ML/internal/config"
	"github.com/Mariakhan-AI/email-classifier-ML/internal/core"
)

//go:embed templates/index.html
var templateFS embed.FS

// WebFilter serves the detector over HTTP
type WebFilter struct {
	service   *core.DetectorService
	logger    *zap.Logger
	cfg       config.ServerConfig
	modelName string
	page      *template.Template
	validate  *validator.Validate

	mu       sync.Mutex
	server   *http.Server
	listener net.Listener
}

// NewWebFilter creates a new web filter
func NewWebFilter(service *core.DetectorService, logger *zap.Logger, cfg config.ServerConfig, modelName string) (*WebFilter, error) {
	page, err := template.ParseFS(templateFS, "templates/index.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse page template: %w", err)
	}

	validate := validator.New()
	if err := validate.RegisterValidation("notblank", validators.NotBlank); err != nil {
		return nil, fmt.Errorf("failed to register validator: %w", err)
	}

	return &WebFilter{
		service:   service,
		logger:    logger,
		cfg:       cfg,
		modelName: modelName,
		page:      page,
		validate:  validate,
	}, nil
}

// Handler returns the router with all routes and middleware mounted
func (f *WebFilter) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(Recoverer(f.logger))
	r.Use(RequestLogger(f.logger))

	r.Get("/", f.handleIndex)
	r.Post("/", f.handleAnalyzeForm)
	r.Post("/api/v1/classify", f.handleClassify)
	r.Get("/healthz", f.handleHealth)

	return r
}

// ProcessMessage classifies one raw message
func (f *WebFilter) ProcessMessage(ctx context.Context, text string) (*core.AnalysisResult, error) {
	return f.service.Analyze(ctx, text)
}

// Start binds the listen address and serves in the background. Bind errors
// are returned to the caller.
func (f *WebFilter) Start() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.server != nil {
		return errors.New("web filter already started")
	}

	ln, err := net.Listen("tcp", f.cfg.ListenAddress)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", f.cfg.ListenAddress, err)
	}

	srv := &http.Server{
		Handler:      f.Handler(),
		ReadTimeout:  f.cfg.ReadTimeout,
		WriteTimeout: f.cfg.WriteTimeout,
	}
	f.server = srv
	f.listener = ln

	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			f.logger.Error("Web server stopped", zap.Error(err))
		}
	}()

	f.logger.Info("Web filter listening", zap.String("address", ln.Addr().String()))
	return nil
}

// Addr returns the bound address, or "" before Start
func (f *WebFilter) Addr() string {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.listener == nil {
		return ""
	}
	return f.listener.Addr().String()
}

// Stop gracefully shuts the server down
func (f *WebFilter) Stop() error {
	f.mu.Lock()
	srv := f.server
	f.server = nil
	f.listener = nil
	f.mu.Unlock()

	if srv == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), f.cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shut down web server: %w", err)
	}
	f.logger.Info("Web filter stopped")
	return nil
}
