// internal/common/config/config.go
package config

import "fmt"

// Config is the main application configuration struct.
type Config struct {
	App        AppConfig        `mapstructure:"app"`
	Server     ServerConfig     `mapstructure:"server"`
	Ops        OpsConfig        `mapstructure:"ops"`
	Gateway    GatewayConfig    `mapstructure:"gateway"`
	Generation GenerationConfig `mapstructure:"generation"`
	Firm       FirmConfig       `mapstructure:"firm"`
	Logging    LoggingConfig    `mapstructure:"logging"`
}

// --- Core App/Infrastructure Config ---

type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

// ServerConfig holds settings for the public API listener.
type ServerConfig struct {
	Address         string `mapstructure:"address"`
	ReadTimeout     int    `mapstructure:"read_timeout"`     // milliseconds
	WriteTimeout    int    `mapstructure:"write_timeout"`    // milliseconds
	ShutdownTimeout int    `mapstructure:"shutdown_timeout"` // milliseconds
}

// OpsConfig holds settings for the metrics/pprof listener.
type OpsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Address string `mapstructure:"address"`
}

// GatewayConfig holds settings for the upstream chat-completions gateway.
// APIKey is deliberately not validated at load time: its absence is a
// per-request configuration error, surfaced before any network call.
type GatewayConfig struct {
	BaseURL     string  `mapstructure:"base_url"`
	APIKey      string  `mapstructure:"api_key"`
	Model       string  `mapstructure:"model"`
	Timeout     int     `mapstructure:"timeout"` // milliseconds
	Temperature float64 `mapstructure:"temperature"`
}

// GenerationConfig bounds the context snapshot sent with each request.
// These are caller-chosen limits, not server-enforced ones.
type GenerationConfig struct {
	MaxConversations int `mapstructure:"max_conversations"`
	MaxDocuments     int `mapstructure:"max_documents"`
}

// FirmConfig describes the firm whose datasets the dashboard renders.
type FirmConfig struct {
	Name     string `mapstructure:"name"`
	Industry string `mapstructure:"industry"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
}

// ChatCompletionsURL returns the full upstream endpoint URL.
func (g GatewayConfig) ChatCompletionsURL() string {
	return fmt.Sprintf("%s/v1/chat/completions", g.BaseURL)
}
