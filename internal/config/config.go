// Package config loads settings for the API server and the CLI. Values come
// from built-in defaults, then an optional YAML file, then the environment
// (including a .env file in the working directory).
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"toolbox/internal/currency"
	"toolbox/internal/theme"
)

const (
	EnvConfig    = "TOOLBOX_CONFIG"
	EnvAddr      = "TOOLBOX_ADDR"
	EnvEndpoint  = "TOOLBOX_EXCHANGE_ENDPOINT"
	EnvAccessKey = "TOOLBOX_EXCHANGE_ACCESS_KEY"
	EnvTelemetry = "TOOLBOX_TELEMETRY"
	EnvLogLevel  = "TOOLBOX_LOG_LEVEL"
	EnvTheme     = "TOOLBOX_THEME"
)

type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Exchange  ExchangeConfig  `yaml:"exchange"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
	Log       LogConfig       `yaml:"log"`
	Theme     ThemeConfig     `yaml:"theme"`
	Currency  CurrencyConfig  `yaml:"currency"`
}

type ServerConfig struct {
	Addr            string        `yaml:"addr"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

type ExchangeConfig struct {
	Endpoint  string        `yaml:"endpoint"`
	AccessKey string        `yaml:"access_key"`
	Timeout   time.Duration `yaml:"timeout"`
}

type TelemetryConfig struct {
	Enabled bool `yaml:"enabled"`
}

type LogConfig struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

type ThemeConfig struct {
	Default string `yaml:"default"`
}

type CurrencyConfig struct {
	ConvertOnCreate bool `yaml:"convert_on_create"`
}

// Default returns the settings used when nothing overrides them.
func Default() Config {
	return Config{
		Server:    ServerConfig{Addr: ":8080", ShutdownTimeout: 5 * time.Second},
		Exchange:  ExchangeConfig{Endpoint: currency.DefaultEndpoint},
		Telemetry: TelemetryConfig{Enabled: true},
		Log:       LogConfig{Level: "info"},
		Theme:     ThemeConfig{Default: string(theme.Light)},
		Currency:  CurrencyConfig{ConvertOnCreate: true},
	}
}

// Load builds the configuration. An empty path falls back to TOOLBOX_CONFIG;
// if both are empty no file is read.
func Load(path string) (Config, error) {
	if err := LoadDotEnv(); err != nil {
		return Config{}, err
	}

	cfg := Default()

	if path == "" {
		path = os.Getenv(EnvConfig)
	}
	if path != "" {
		if err := cfg.loadFile(path); err != nil {
			return Config{}, err
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadDotEnv loads environment variables from .env when present.
// Existing process environment variables are not overridden.
func LoadDotEnv() error {
	err := godotenv.Load()
	if err == nil {
		return nil
	}

	if errors.Is(err, os.ErrNotExist) {
		return nil
	}

	return fmt.Errorf("load .env: %w", err)
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() error {
	if v, ok := os.LookupEnv(EnvAddr); ok && v != "" {
		c.Server.Addr = v
	}
	if v, ok := os.LookupEnv(EnvEndpoint); ok && v != "" {
		c.Exchange.Endpoint = v
	}
	if v, ok := os.LookupEnv(EnvAccessKey); ok {
		c.Exchange.AccessKey = v
	}
	if v, ok := os.LookupEnv(EnvLogLevel); ok && v != "" {
		c.Log.Level = v
	}
	if v, ok := os.LookupEnv(EnvTheme); ok && v != "" {
		c.Theme.Default = v
	}
	if v, ok := os.LookupEnv(EnvTelemetry); ok && v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvTelemetry, err)
		}
		c.Telemetry.Enabled = enabled
	}
	return nil
}

// Validate reports settings that cannot be used.
func (c Config) Validate() error {
	if c.Server.Addr == "" {
		return errors.New("server.addr is empty")
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("server.shutdown_timeout must be positive, got %s", c.Server.ShutdownTimeout)
	}
	if c.Exchange.Endpoint == "" {
		return errors.New("exchange.endpoint is empty")
	}
	if c.Exchange.Timeout < 0 {
		return fmt.Errorf("exchange.timeout must not be negative, got %s", c.Exchange.Timeout)
	}
	if _, err := theme.Parse(c.Theme.Default); err != nil {
		return fmt.Errorf("theme.default: %w", err)
	}
	return nil
}

// DefaultTheme is the parsed theme.default value.
func (c Config) DefaultTheme() theme.Theme {
	t, err := theme.Parse(c.Theme.Default)
	if err != nil {
		return theme.Light
	}
	return t
}
