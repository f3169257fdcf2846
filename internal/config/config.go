package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the application
type Config struct {
	Server          ServerConfig          `yaml:"server"`
	Recommendations RecommendationsConfig `yaml:"recommendations"`
	Snippet         SnippetConfig         `yaml:"snippet"`
	RateLimit       RateLimitConfig       `yaml:"rate_limit"`
	CORS            CORSConfig            `yaml:"cors"`
	Logging         LoggingConfig         `yaml:"logging"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port                   int    `yaml:"port"`
	Host                   string `yaml:"host"`
	ReadTimeoutSeconds     int    `yaml:"read_timeout_seconds"`
	WriteTimeoutSeconds    int    `yaml:"write_timeout_seconds"`
	ShutdownTimeoutSeconds int    `yaml:"shutdown_timeout_seconds"`
}

// GetHost returns the server host, with ECS detection
func (c ServerConfig) GetHost() string {
	// On ECS/container, listen on all interfaces
	if os.Getenv("ECS_CONTAINER_METADATA_URI") != "" || os.Getenv("AWS_EXECUTION_ENV") != "" {
		return "0.0.0.0"
	}
	if host := os.Getenv("SERVER_HOST"); host != "" {
		return host
	}
	return c.Host
}

// Addr returns host:port for http.Server.
func (c ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.GetHost(), c.Port)
}

func (c ServerConfig) ReadTimeout() time.Duration {
	return time.Duration(c.ReadTimeoutSeconds) * time.Second
}

func (c ServerConfig) WriteTimeout() time.Duration {
	return time.Duration(c.WriteTimeoutSeconds) * time.Second
}

func (c ServerConfig) ShutdownTimeout() time.Duration {
	return time.Duration(c.ShutdownTimeoutSeconds) * time.Second
}

// RecommendationsConfig points the generated URLs at the recommendation
// service. Port 0 leaves the port out of the URL.
type RecommendationsConfig struct {
	Protocol string `yaml:"protocol"`
	Hostname string `yaml:"hostname"`
	Port     int    `yaml:"port"`
}

// SnippetConfig holds the Liquid template used for HTML slot snippets.
// TemplateFile wins over Template when both are set.
type SnippetConfig struct {
	Template     string `yaml:"template"`
	TemplateFile string `yaml:"template_file"`
}

// Source returns the template text, reading TemplateFile if configured.
// An empty result selects the built-in template.
func (c SnippetConfig) Source() (string, error) {
	if c.TemplateFile == "" {
		return c.Template, nil
	}
	data, err := os.ReadFile(c.TemplateFile)
	if err != nil {
		return "", fmt.Errorf("read snippet template: %w", err)
	}
	return string(data), nil
}

// RateLimitConfig holds per-IP request limits for the HTTP API
type RateLimitConfig struct {
	Enabled           bool `yaml:"enabled"`
	RequestsPerMinute int  `yaml:"requests_per_minute"`
}

// CORSConfig holds allowed origins for the HTTP API
type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// LoggingConfig holds logger settings
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// Default returns a Config with every default applied.
func Default() *Config {
	cfg := &Config{
		RateLimit: RateLimitConfig{Enabled: true},
	}
	applyDefaults(cfg)
	return cfg
}

// Load loads configuration from a YAML file. An empty path yields Default().
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		RateLimit: RateLimitConfig{Enabled: true},
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	applyDefaults(cfg)
	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Server.Host == "" {
		cfg.Server.Host = "localhost"
	}
	if cfg.Server.ReadTimeoutSeconds == 0 {
		cfg.Server.ReadTimeoutSeconds = 15
	}
	if cfg.Server.WriteTimeoutSeconds == 0 {
		cfg.Server.WriteTimeoutSeconds = 15
	}
	if cfg.Server.ShutdownTimeoutSeconds == 0 {
		cfg.Server.ShutdownTimeoutSeconds = 10
	}
	if cfg.Recommendations.Protocol == "" {
		cfg.Recommendations.Protocol = "https"
	}
	if cfg.Recommendations.Hostname == "" {
		cfg.Recommendations.Hostname = "api-atg.kohls.com"
	}
	if cfg.RateLimit.RequestsPerMinute == 0 {
		cfg.RateLimit.RequestsPerMinute = 600
	}
	if len(cfg.CORS.AllowedOrigins) == 0 {
		cfg.CORS.AllowedOrigins = []string{"*"}
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
}

// LoadFromEnv loads configuration with environment variable overrides.
// It automatically loads a .env file (if present) before reading env vars.
func LoadFromEnv(path string) (*Config, error) {
	// Load .env file if it exists (no error if missing)
	_ = godotenv.Load()

	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}

	if v := os.Getenv("RECO_PROTOCOL"); v != "" {
		cfg.Recommendations.Protocol = v
	}
	if v := os.Getenv("RECO_HOSTNAME"); v != "" {
		cfg.Recommendations.Hostname = v
	}
	if v := os.Getenv("RECO_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("RECO_PORT: %w", err)
		}
		cfg.Recommendations.Port = port
	}
	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("PORT: %w", err)
		}
		cfg.Server.Port = port
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Logging.Level = strings.ToLower(v)
	}
	if v := os.Getenv("SNIPPET_TEMPLATE"); v != "" {
		cfg.Snippet.Template = v
		cfg.Snippet.TemplateFile = ""
	}

	return cfg, nil
}
