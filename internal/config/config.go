// Package config loads the mimekit command configuration from an optional YAML
// file and the environment. Environment variables always win.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Delivery methods understood by the deliver package.
const (
	DeliveryFile   = "file"
	DeliveryStdout = "stdout"
	DeliverySES    = "ses"
)

// Config holds the complete command configuration.
type Config struct {
	Logging  LoggingConfig  `yaml:"logging"`
	Delivery DeliveryConfig `yaml:"delivery"`
	SES      SESConfig      `yaml:"ses"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// DeliveryConfig selects where "mimekit send" puts a finished document.
type DeliveryConfig struct {
	Method string `yaml:"method"`
	Output string `yaml:"output"`
}

// SESConfig holds AWS SES v2 settings.
type SESConfig struct {
	Region          string `yaml:"region"`
	AccessKeyID     string `yaml:"access_key_id"`
	SecretAccessKey string `yaml:"secret_access_key"`
	Sender          string `yaml:"sender"`
}

// Load loads configuration from environment variables on top of the defaults.
func Load() (*Config, error) {
	cfg := &Config{}
	cfg.applyDefaults()
	cfg.applyEnvVars()
	return cfg, nil
}

// LoadFromFile loads configuration from a YAML file on top of the defaults,
// then applies environment variables. It fails if the file cannot be read or
// parsed.
func LoadFromFile(path string) (*Config, error) {
	cfg := &Config{}
	cfg.applyDefaults()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.applyEnvVars()

	return cfg, nil
}

// SESConfigured returns true if both the SES region and sender are set.
func (c *Config) SESConfigured() bool {
	return c.SES.Region != "" && c.SES.Sender != ""
}

// LogLevel maps the configured level name to a slog.Level. Unknown names
// mean info.
func (c *Config) LogLevel() slog.Level {
	switch c.Logging.Level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func (c *Config) applyDefaults() {
	c.Logging.Level = "info"
	c.Logging.Format = "text"
	c.Delivery.Method = DeliveryStdout
}

func (c *Config) applyEnvVars() {
	if v := os.Getenv("MIMEKIT_LOG_LEVEL"); v != "" {
		c.Logging.Level = strings.ToLower(v)
	}
	if v := os.Getenv("MIMEKIT_LOG_FORMAT"); v != "" {
		c.Logging.Format = strings.ToLower(v)
	}

	if v := os.Getenv("MIMEKIT_DELIVERY"); v != "" {
		c.Delivery.Method = strings.ToLower(v)
	}
	if v := os.Getenv("MIMEKIT_OUTPUT"); v != "" {
		c.Delivery.Output = v
	}

	if v := os.Getenv("SES_REGION"); v != "" {
		c.SES.Region = v
	}
	if v := os.Getenv("SES_SENDER"); v != "" {
		c.SES.Sender = v
	}
	if v := os.Getenv("AWS_ACCESS_KEY_ID"); v != "" {
		c.SES.AccessKeyID = v
	}
	if v := os.Getenv("AWS_SECRET_ACCESS_KEY"); v != "" {
		c.SES.SecretAccessKey = v
	}
}
