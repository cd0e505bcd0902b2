package config

import (
	"time"
)

// ModelConfig points at the artifact pair and records how to read its labels
type ModelConfig struct {
	Name           string
	VectorizerPath string
	ClassifierPath string
	// SpamClass is the raw classifier output that means spam. The artifacts do
	// not describe their own encoding.
	SpamClass string
}

// ServerConfig represents the configuration for the front end
type ServerConfig struct {
	FilterType      string
	ListenAddress   string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
	MaxMessageSize  int64
}

// GetModel returns the model configuration
func (c *Config) GetModel() ModelConfig {
	return ModelConfig{
		Name:           c.GetString("model.name"),
		VectorizerPath: c.GetString("model.vectorizer_path"),
		ClassifierPath: c.GetString("model.classifier_path"),
		SpamClass:      c.GetString("model.spam_class"),
	}
}

// GetServer returns the server configuration
func (c *Config) GetServer() (ServerConfig, error) {
	readTimeout, err := c.GetDuration("server.read_timeout")
	if err != nil {
		return ServerConfig{}, err
	}
	writeTimeout, err := c.GetDuration("server.write_timeout")
	if err != nil {
		return ServerConfig{}, err
	}
	shutdownTimeout, err := c.GetDuration("server.shutdown_timeout")
	if err != nil {
		return ServerConfig{}, err
	}

	return ServerConfig{
		FilterType:      c.GetString("server.filter_type"),
		ListenAddress:   c.GetString("server.listen_address"),
		ReadTimeout:     readTimeout,
		WriteTimeout:    writeTimeout,
		ShutdownTimeout: shutdownTimeout,
		MaxMessageSize:  c.GetInt64("server.max_message_size"),
	}, nil
}
