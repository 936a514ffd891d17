// Package config loads the client configuration from ~/.anketa/config.yaml,
// a .env file and the environment.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// Environment variables.
const (
	HomeEnv     = "ANKETA_HOME"
	BaseURLEnv  = "ANKETA_BASE_URL"
	TokenEnv    = "ANKETA_TOKEN"
	LogLevelEnv = "ANKETA_LOG_LEVEL"
)

// Defaults.
const (
	DefaultBaseURL  = "https://localhost:7109"
	DefaultTimeout  = 15 * time.Second
	DefaultLogLevel = "warn"
	FileName        = "config.yaml"
)

// Config represents the client configuration.
type Config struct {
	BaseURL        string        `yaml:"base_url"`
	Timeout        time.Duration `yaml:"timeout"`
	SubmitInterval time.Duration `yaml:"submit_interval"` // minimum spacing between answer requests; 0 = none
	LogFile        string        `yaml:"log_file,omitempty"`
	LogLevel       string        `yaml:"log_level"`

	// Token is only ever read from the environment.
	Token string `yaml:"-"`
}

// Keys lists the settable keys in file order.
var Keys = []string{"base_url", "timeout", "submit_interval", "log_file", "log_level"}

// Defaults returns the configuration used when no file exists.
func Defaults() *Config {
	return &Config{
		BaseURL:  DefaultBaseURL,
		Timeout:  DefaultTimeout,
		LogLevel: DefaultLogLevel,
	}
}

// Dir returns the directory holding the config file and the database.
func Dir() (string, error) {
	if dir := os.Getenv(HomeEnv); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".anketa"), nil
}

// LoadConfig reads config.yaml from dir. A missing file yields the defaults.
func LoadConfig(dir string) (*Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(filepath.Join(dir, FileName))
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SaveConfig writes config.yaml to dir.
func SaveConfig(dir string, cfg *Config) error {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(filepath.Join(dir, FileName), data, 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// LoadDotEnv loads .env from the working directory if there is one.
func LoadDotEnv() error {
	err := godotenv.Load()
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to load .env: %w", err)
	}
	return nil
}

// ApplyEnv overrides file values with environment variables.
func (c *Config) ApplyEnv(getenv func(string) string) {
	if v := strings.TrimSpace(getenv(BaseURLEnv)); v != "" {
		c.BaseURL = v
	}
	if v := strings.TrimSpace(getenv(LogLevelEnv)); v != "" {
		c.LogLevel = v
	}
	c.Token = strings.TrimSpace(getenv(TokenEnv))
}

// Set changes one key from its string form.
func (c *Config) Set(key, value string) error {
	value = strings.TrimSpace(value)
	switch key {
	case "base_url":
		c.BaseURL = value
	case "timeout", "submit_interval":
		d, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", key, value, err)
		}
		if key == "timeout" {
			c.Timeout = d
		} else {
			c.SubmitInterval = d
		}
	case "log_file":
		c.LogFile = value
	case "log_level":
		c.LogLevel = value
	default:
		return fmt.Errorf("unknown config key %q (valid: %s)", key, strings.Join(Keys, ", "))
	}
	return c.Validate()
}

// Validate checks that every value is usable.
func (c *Config) Validate() error {
	u, err := url.Parse(c.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("base_url must be an http(s) URL, got %q", c.BaseURL)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %s", c.Timeout)
	}
	if c.SubmitInterval < 0 {
		return fmt.Errorf("submit_interval must not be negative, got %s", c.SubmitInterval)
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log_level %q", c.LogLevel)
	}
	return nil
}
