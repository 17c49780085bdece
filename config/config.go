// Package config provides configuration loading and validation.
package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Client modes.
const (
	ModeBrowser = "browser"
	ModeServer  = "server"
)

// Config is the root configuration structure.
type Config struct {
	API       APIConfig       `yaml:"api"`
	Client    ClientConfig    `yaml:"client"`
	Logging   LoggingConfig   `yaml:"logging"`
	Metrics   MetricsConfig   `yaml:"metrics"`
	Monitor   MonitorConfig   `yaml:"monitor"`
	DevServer DevServerConfig `yaml:"devserver"`
}

// APIConfig configures the content API the executor talks to.
type APIConfig struct {
	BaseURL   string            `yaml:"base_url"`
	Timeout   time.Duration     `yaml:"timeout"`
	UserAgent string            `yaml:"user_agent"`
	Headers   map[string]string `yaml:"headers,omitempty"`
}

// ClientConfig selects the executor variant.
// Use "browser" for an ambient cookie jar or "server" to forward an identity.
type ClientConfig struct {
	Mode       string `yaml:"mode"`   // "browser" or "server"
	Locale     string `yaml:"locale"` // BCP 47 tag or Accept-Language value
	CookieFile string `yaml:"cookie_file,omitempty"`
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // "debug", "info", "warn", "error"
	Format string `yaml:"format"` // "json" or "console"
}

// MetricsConfig configures Prometheus metrics.
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled"`
	Addr    string `yaml:"addr"` // listen address of the monitor server
}

// MonitorConfig configures the API monitor.
type MonitorConfig struct {
	Interval time.Duration `yaml:"interval"`
}

// DevServerConfig configures the in-memory development API.
type DevServerConfig struct {
	Addr    string        `yaml:"addr"`
	Latency time.Duration `yaml:"latency,omitempty"`
}

var validLevels = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}

// Load reads configuration from a YAML file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	// Expand environment variables
	data = []byte(os.ExpandEnv(string(data)))

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	applyEnvOverrides(&cfg)
	setDefaults(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

// LoadFromEnv creates configuration entirely from environment variables.
//
// Environment variables:
//
//	CMP_API_BASE_URL       - Content API base URL (required)
//	CMP_API_TIMEOUT        - Default request timeout (default: 10s)
//	CMP_API_USER_AGENT     - User-Agent header (default: codemasterpiece/dev)
//	CMP_CLIENT_MODE        - browser or server (default: browser)
//	CMP_CLIENT_LOCALE      - Message language (default: ko)
//	CMP_CLIENT_COOKIE_FILE - Session cookies, one name=value per line
//	CMP_LOG_LEVEL          - debug, info, warn, error (default: info)
//	CMP_LOG_FORMAT         - json or console (default: json)
//	CMP_METRICS_ENABLED    - Expose /metrics on the monitor server (default: false)
//	CMP_METRICS_ADDR       - Monitor server address (default: :9090)
//	CMP_MONITOR_INTERVAL   - Monitor interval (default: 30s)
//	CMP_DEVSERVER_ADDR     - Development API address (default: 127.0.0.1:8081)
func LoadFromEnv() (*Config, error) {
	var cfg Config

	applyEnvOverrides(&cfg)
	setDefaults(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

// LoadWithFallback tries to load from file, falls back to environment variables.
func LoadWithFallback(path string) (*Config, error) {
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			return Load(path)
		}
	}

	if HasEnvConfig() {
		return LoadFromEnv()
	}

	return nil, fmt.Errorf("no configuration found: provide config file or set CMP_API_BASE_URL")
}

// HasEnvConfig returns true if essential environment variables are set.
func HasEnvConfig() bool {
	return os.Getenv("CMP_API_BASE_URL") != ""
}

// Defaults returns a configuration with every default applied and the
// given base URL. It is what the development commands run with when no
// file is present.
func Defaults(baseURL string) *Config {
	cfg := &Config{API: APIConfig{BaseURL: baseURL}}
	setDefaults(cfg)
	return cfg
}

// Validate checks cfg as Load would.
func Validate(cfg *Config) error {
	return validate(cfg)
}

// applyEnvOverrides applies CMP_* environment variables to the config.
// Environment variables always override file-based configuration.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("CMP_API_BASE_URL"); v != "" {
		cfg.API.BaseURL = v
	}
	if v := os.Getenv("CMP_API_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.API.Timeout = d
		}
	}
	if v := os.Getenv("CMP_API_USER_AGENT"); v != "" {
		cfg.API.UserAgent = v
	}

	if v := os.Getenv("CMP_CLIENT_MODE"); v != "" {
		cfg.Client.Mode = v
	}
	if v := os.Getenv("CMP_CLIENT_LOCALE"); v != "" {
		cfg.Client.Locale = v
	}
	if v := os.Getenv("CMP_CLIENT_COOKIE_FILE"); v != "" {
		cfg.Client.CookieFile = v
	}

	if v := os.Getenv("CMP_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("CMP_LOG_FORMAT"); v != "" {
		cfg.Logging.Format = v
	}

	if v := os.Getenv("CMP_METRICS_ENABLED"); v != "" {
		cfg.Metrics.Enabled = parseBool(v)
	}
	if v := os.Getenv("CMP_METRICS_ADDR"); v != "" {
		cfg.Metrics.Addr = v
	}

	if v := os.Getenv("CMP_MONITOR_INTERVAL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Monitor.Interval = d
		}
	}

	if v := os.Getenv("CMP_DEVSERVER_ADDR"); v != "" {
		cfg.DevServer.Addr = v
	}
	if v := os.Getenv("CMP_DEVSERVER_LATENCY"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.DevServer.Latency = d
		}
	}
}

// parseBool parses a boolean from common string values.
func parseBool(v string) bool {
	v = strings.ToLower(strings.TrimSpace(v))
	if b, err := strconv.ParseBool(v); err == nil {
		return b
	}
	return v == "yes" || v == "on"
}

func setDefaults(cfg *Config) {
	if cfg.API.Timeout == 0 {
		cfg.API.Timeout = 10 * time.Second
	}
	if cfg.API.UserAgent == "" {
		cfg.API.UserAgent = "codemasterpiece/dev"
	}

	if cfg.Client.Mode == "" {
		cfg.Client.Mode = ModeBrowser
	}
	if cfg.Client.Locale == "" {
		cfg.Client.Locale = "ko"
	}

	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "json"
	}

	if cfg.Metrics.Addr == "" {
		cfg.Metrics.Addr = ":9090"
	}
	if cfg.Monitor.Interval == 0 {
		cfg.Monitor.Interval = 30 * time.Second
	}
	if cfg.DevServer.Addr == "" {
		cfg.DevServer.Addr = "127.0.0.1:8081"
	}
}

func validate(cfg *Config) error {
	if cfg.API.BaseURL == "" {
		return fmt.Errorf("api.base_url is required")
	}
	u, err := url.Parse(cfg.API.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("api.base_url must be an absolute http(s) URL, got %q", cfg.API.BaseURL)
	}
	if cfg.API.Timeout < 0 {
		return fmt.Errorf("api.timeout must not be negative")
	}

	if cfg.Client.Mode != ModeBrowser && cfg.Client.Mode != ModeServer {
		return fmt.Errorf("client.mode must be 'browser' or 'server', got %q", cfg.Client.Mode)
	}

	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("logging.level must be one of: debug, info, warn, error")
	}
	if cfg.Logging.Format != "json" && cfg.Logging.Format != "console" {
		return fmt.Errorf("logging.format must be 'json' or 'console', got %q", cfg.Logging.Format)
	}

	if cfg.Monitor.Interval < time.Second {
		return fmt.Errorf("monitor.interval must be at least 1s, got %s", cfg.Monitor.Interval)
	}

	for name := range cfg.API.Headers {
		if strings.TrimSpace(name) == "" || strings.ContainsAny(name, " :\r\n") {
			return fmt.Errorf("api.headers: invalid header name %q", name)
		}
	}

	return nil
}
