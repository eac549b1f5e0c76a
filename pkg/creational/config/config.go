package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

// ErrInvalid indicates a configuration value failed validation.
var ErrInvalid = errors.New("invalid config")

// Config is the complete driver configuration.
type Config struct {
	Singleton SingletonConfig `yaml:"singleton" json:"singleton"`
	Factory   FactoryConfig   `yaml:"factory" json:"factory"`
	Log       LogConfig       `yaml:"log" json:"log"`
	Telemetry TelemetryConfig `yaml:"telemetry" json:"telemetry"`
}

// SingletonConfig holds the two values written through the shared instance.
type SingletonConfig struct {
	First  int `yaml:"first" json:"first"`
	Second int `yaml:"second" json:"second"`
}

// FactoryConfig lists the variants the factory demo produces, in order.
type FactoryConfig struct {
	Variants []string `yaml:"variants" json:"variants"`
}

// LogConfig selects the slog handler.
type LogConfig struct {
	// Level is one of debug, info, warn, error (case-insensitive).
	Level string `yaml:"level" json:"level"`
	// Format is text or json.
	Format string `yaml:"format" json:"format"`
}

// TelemetryConfig toggles the OTel SDK providers.
type TelemetryConfig struct {
	Metrics bool `yaml:"metrics" json:"metrics"`
	Tracing bool `yaml:"tracing" json:"tracing"`
}

// Default returns the configuration matching the classic demo output.
func Default() Config {
	return Config{
		Singleton: SingletonConfig{First: 123, Second: 456},
		Factory:   FactoryConfig{Variants: []string{"A", "B"}},
		Log:       LogConfig{Level: "info", Format: "text"},
	}
}

// Validate checks every field and reports all problems at once.
func (c Config) Validate() error {
	var errs []error

	if len(c.Factory.Variants) == 0 {
		errs = append(errs, fmt.Errorf("%w: factory.variants must not be empty", ErrInvalid))
	}
	for i, v := range c.Factory.Variants {
		if strings.TrimSpace(v) == "" {
			errs = append(errs, fmt.Errorf("%w: factory.variants[%d] is blank", ErrInvalid, i))
		}
	}
	if _, err := parseLevel(c.Log.Level); err != nil {
		errs = append(errs, err)
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("%w: log.format %q (want text or json)", ErrInvalid, c.Log.Format))
	}

	return errors.Join(errs...)
}

// SlogLevel returns the configured level, or slog.LevelInfo if it is invalid.
func (l LogConfig) SlogLevel() slog.Level {
	level, err := parseLevel(l.Level)
	if err != nil {
		return slog.LevelInfo
	}
	return level
}

// JSON reports whether the json format was selected.
func (l LogConfig) JSON() bool {
	return strings.EqualFold(l.Format, "json")
}

func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("%w: log.level %q", ErrInvalid, s)
	}
}
