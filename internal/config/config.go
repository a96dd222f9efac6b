// Package config loads tfdsearch configuration from the per-user config
// directory, with TFD_* environment variables overriding the file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// AppDirName is the directory under os.UserConfigDir holding the config
// file, cached metadata and logs. On Windows that lands in %LOCALAPPDATA%,
// elsewhere under ~/.config.
const AppDirName = "tfd-search"

// Config holds all tfdsearch configuration.
type Config struct {
	API     APIConfig     `yaml:"api"`
	Cache   CacheConfig   `yaml:"cache"`
	Export  ExportConfig  `yaml:"export"`
	Logging LoggingConfig `yaml:"logging"`
}

// APIConfig configures the upstream metadata endpoint.
type APIConfig struct {
	BaseURL   string `yaml:"base_url" env:"TFD_API_BASE_URL"`
	Language  string `yaml:"language" env:"TFD_LANGUAGE"`
	Timeout   string `yaml:"timeout" env:"TFD_API_TIMEOUT"`
	UserAgent string `yaml:"user_agent" env:"TFD_USER_AGENT"`
}

// CacheConfig configures local caching.
type CacheConfig struct {
	// Dir overrides the default cache location (the app config dir).
	Dir string `yaml:"dir" env:"TFD_CACHE_DIR"`
}

// ExportConfig configures CSV export defaults.
type ExportConfig struct {
	// Dir is the default directory offered for CSV output. Empty means
	// the current working directory.
	Dir string `yaml:"dir" env:"TFD_EXPORT_DIR"`
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Level string `yaml:"level" env:"TFD_LOG_LEVEL"` // debug, info, warn, error
	File  string `yaml:"file" env:"TFD_LOG_FILE"`   // empty = <config dir>/logs/tfd.log
}

// Languages the static API publishes documents for.
var supportedLanguages = map[string]bool{
	"ko": true, "en": true, "de": true, "fr": true, "ja": true,
	"zh-cn": true, "zh-tw": true, "it": true, "pl": true,
	"pt": true, "ru": true, "es": true,
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		API: APIConfig{
			BaseURL:   "https://open.api.nexon.com/static/tfd/meta",
			Language:  "en",
			Timeout:   "30s",
			UserAgent: "tfd-search",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Dir returns the app config directory, creating nothing.
func Dir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(base, AppDirName), nil
}

// DefaultPath returns the default config file location.
func DefaultPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load reads the config file at path (DefaultPath when empty), applies
// environment overrides, and validates. A missing file is not an error;
// defaults are used.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	case os.IsNotExist(err):
		// No file: defaults + env.
	default:
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("apply environment overrides: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the config as YAML, creating the directory if needed.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config %s: %w", path, err)
	}
	return nil
}

// Validate checks field values, filling blanks from defaults.
func (c *Config) Validate() error {
	def := Default()
	if c.API.BaseURL == "" {
		c.API.BaseURL = def.API.BaseURL
	}
	if c.API.Language == "" {
		c.API.Language = def.API.Language
	}
	if !supportedLanguages[c.API.Language] {
		return fmt.Errorf("unsupported language %q", c.API.Language)
	}
	if c.API.Timeout == "" {
		c.API.Timeout = def.API.Timeout
	}
	if _, err := time.ParseDuration(c.API.Timeout); err != nil {
		return fmt.Errorf("invalid api timeout %q: %w", c.API.Timeout, err)
	}
	switch c.Logging.Level {
	case "":
		c.Logging.Level = def.Logging.Level
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level %q", c.Logging.Level)
	}
	return nil
}

// APITimeout returns the parsed HTTP timeout. Validate guarantees the
// string parses.
func (c *Config) APITimeout() time.Duration {
	d, err := time.ParseDuration(c.API.Timeout)
	if err != nil {
		return 30 * time.Second
	}
	return d
}

// CacheDir returns the effective cache directory.
func (c *Config) CacheDir() (string, error) {
	if c.Cache.Dir != "" {
		return c.Cache.Dir, nil
	}
	return Dir()
}

// LogFile returns the effective log file path.
func (c *Config) LogFile() (string, error) {
	if c.Logging.File != "" {
		return c.Logging.File, nil
	}
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "logs", "tfd.log"), nil
}
