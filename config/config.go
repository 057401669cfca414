// Package config holds application configuration loaded from an optional
// YAML file with environment variable overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/kelseyhightower/envconfig"
	stockviewer "github.com/shamsherkhan80/Real-time-stock-price-viewer"
	"github.com/shamsherkhan80/Real-time-stock-price-viewer/marketdata"
	"gopkg.in/yaml.v3"
)

var (
	ErrNoSymbols      = errors.New("symbols list is empty")
	ErrInvalidHorizon = errors.New("horizon must be positive")
	ErrNoPalette      = errors.New("background color palette is empty")
)

// Config holds all application configuration.
type Config struct {
	ListenAddr      string        `yaml:"listen_addr" envconfig:"LISTEN_ADDR"`
	ProviderBaseURL string        `yaml:"provider_base_url" envconfig:"PROVIDER_BASE_URL"`
	RequestTimeout  time.Duration `yaml:"request_timeout" envconfig:"REQUEST_TIMEOUT"`

	Symbols []string `yaml:"symbols" envconfig:"SYMBOLS"`
	Horizon int      `yaml:"horizon" envconfig:"HORIZON"`

	BackgroundColors []string `yaml:"background_colors" envconfig:"BACKGROUND_COLORS"`

	Profile bool `yaml:"profile" envconfig:"PROFILE"`
}

// Load reads config from a YAML file if present, applies STOCKVIEWER_*
// environment variable overrides, then fills in defaults.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := envconfig.Process("stockviewer", cfg); err != nil {
		return nil, fmt.Errorf("process env overrides: %w", err)
	}

	// Defaults
	if cfg.ListenAddr == "" {
		cfg.ListenAddr = ":8080"
	}
	if cfg.ProviderBaseURL == "" {
		cfg.ProviderBaseURL = marketdata.DefaultBaseURL
	}
	if cfg.RequestTimeout == 0 {
		cfg.RequestTimeout = 30 * time.Second
	}
	if len(cfg.Symbols) == 0 {
		cfg.Symbols = marketdata.DefaultSymbols
	}
	if cfg.Horizon == 0 {
		cfg.Horizon = stockviewer.DefaultHorizon
	}
	if len(cfg.BackgroundColors) == 0 {
		cfg.BackgroundColors = stockviewer.BackgroundColors
	}

	return cfg, nil
}

// Validate checks that all required fields are set.
func (c *Config) Validate() error {
	if len(c.Symbols) == 0 {
		return ErrNoSymbols
	}
	if c.Horizon <= 0 {
		return ErrInvalidHorizon
	}
	if len(c.BackgroundColors) == 0 {
		return ErrNoPalette
	}
	return nil
}
