package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Colour modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// AdapterConfig configures the adapter demo.
type AdapterConfig struct {
	// Amount is the payment amount sent through the adapter
	Amount int64 `yaml:"amount"`
}

// DecoratorConfig configures the decorator demo.
type DecoratorConfig struct {
	// Message is the notification text
	Message string `yaml:"message"`

	// Channels lists decorators to wrap around the base notifier, innermost first
	Channels []string `yaml:"channels"`
}

// FactoryConfig configures the factory method demo.
type FactoryConfig struct {
	// OSTypes are rendered in order
	OSTypes []string `yaml:"os_types"`
}

// ObserverConfig configures the observer demo.
type ObserverConfig struct {
	// Prices are applied to the stock in order
	Prices []float64 `yaml:"prices"`

	// AlertThreshold is the price above which PriceAlert signals a sale
	AlertThreshold float64 `yaml:"alert_threshold"`
}

// VisitorConfig configures the visitor demo.
type VisitorConfig struct {
	// IndentStep is the number of spaces per nesting level in the name tree
	IndentStep int `yaml:"indent_step"`

	// RecordFormat selects the record encoding (json or yaml)
	RecordFormat string `yaml:"record_format"`
}

// Config represents the pattern catalog configuration
type Config struct {
	// LogLevel sets the logging verbosity (trace, debug, info, warn, error)
	LogLevel string `yaml:"log_level"`

	// Color selects colour output (auto, always, never)
	Color string `yaml:"color"`

	Adapter   AdapterConfig   `yaml:"adapter"`
	Decorator DecoratorConfig `yaml:"decorator"`
	Factory   FactoryConfig   `yaml:"factory"`
	Observer  ObserverConfig  `yaml:"observer"`
	Visitor   VisitorConfig   `yaml:"visitor"`
}

// DefaultConfig returns a Config reproducing the classic demo scenarios
func DefaultConfig() *Config {
	return &Config{
		LogLevel: "info",
		Color:    ColorAuto,
		Adapter: AdapterConfig{
			Amount: 1000,
		},
		Decorator: DecoratorConfig{
			Message:  "🚨 Emergency: server outage detected!",
			Channels: []string{"email", "sms", "slack", "push"},
		},
		Factory: FactoryConfig{
			OSTypes: []string{"Windows", "Mac"},
		},
		Observer: ObserverConfig{
			Prices:         []float64{80, 120, 95},
			AlertThreshold: 100,
		},
		Visitor: VisitorConfig{
			IndentStep:   2,
			RecordFormat: "json",
		},
	}
}

// LoadConfig loads configuration from the specified file path.
// Keys present in the file override the defaults; absent keys keep them.
// If the file doesn't exist, returns default configuration without error.
// If the file exists but is malformed or has unknown keys, returns an error.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return cfg, nil
}

// LoadConfigFromDir loads configuration from .patterns/config.yaml in the specified directory
func LoadConfigFromDir(dir string) (*Config, error) {
	return LoadConfig(filepath.Join(dir, DirName, FileName))
}

// MergeWithFlags merges CLI flags into the configuration.
// Non-nil flag values override configuration values.
func (c *Config) MergeWithFlags(logLevel *string, color *string) {
	if logLevel != nil {
		c.LogLevel = *logLevel
	}
	if color != nil {
		c.Color = *color
	}
}

// Validate validates the configuration values
func (c *Config) Validate() error {
	switch c.LogLevel {
	case "trace", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log_level %q, must be one of: trace, debug, info, warn, error", c.LogLevel)
	}

	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("invalid color %q, must be one of: auto, always, never", c.Color)
	}

	if c.Adapter.Amount <= 0 {
		return fmt.Errorf("adapter.amount must be > 0, got %d", c.Adapter.Amount)
	}

	if strings.TrimSpace(c.Decorator.Message) == "" {
		return fmt.Errorf("decorator.message cannot be empty")
	}

	if len(c.Factory.OSTypes) == 0 {
		return fmt.Errorf("factory.os_types cannot be empty")
	}

	for i, p := range c.Observer.Prices {
		if p < 0 {
			return fmt.Errorf("observer.prices[%d] must be >= 0, got %g", i, p)
		}
	}
	if c.Observer.AlertThreshold < 0 {
		return fmt.Errorf("observer.alert_threshold must be >= 0, got %g", c.Observer.AlertThreshold)
	}

	if c.Visitor.IndentStep <= 0 {
		return fmt.Errorf("visitor.indent_step must be > 0, got %d", c.Visitor.IndentStep)
	}
	switch strings.ToLower(c.Visitor.RecordFormat) {
	case "json", "yaml":
	default:
		return fmt.Errorf("invalid visitor.record_format %q, must be one of: json, yaml", c.Visitor.RecordFormat)
	}

	return nil
}
