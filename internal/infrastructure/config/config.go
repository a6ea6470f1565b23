package config

import (
	"fmt"
	"io"
	"os"

	"cl-interface/internal/domain/constants"
	"cl-interface/internal/domain/errors"

	"github.com/sirupsen/logrus"
)

// Config is a struct that holds module configuration
type Config struct {
	Log     LogConfig
	Output  OutputConfig
	Metrics MetricsConfig
}

// LogConfig is a struct that holds logging configuration
type LogConfig struct {
	Level  string
	Format string // json or text
}

// OutputConfig is a struct that holds result output configuration
type OutputConfig struct {
	Format string // json or yaml
}

// MetricsConfig is a struct that holds metrics configuration
type MetricsConfig struct {
	// TextfilePath is the node exporter textfile collector file written on exit.
	// Metrics are not written when empty.
	TextfilePath string
}

// ConfigLoader is an interface for loading configuration
type ConfigLoader interface {
	Load() (*Config, error)
}

// EnvironmentConfigLoader is an implementation that loads configuration from environment variables
type EnvironmentConfigLoader struct{}

// NewEnvironmentConfigLoader creates a new EnvironmentConfigLoader
func NewEnvironmentConfigLoader() ConfigLoader {
	return &EnvironmentConfigLoader{}
}

// Load loads configuration from environment variables
func (l *EnvironmentConfigLoader) Load() (*Config, error) {
	config := &Config{
		Log: LogConfig{
			Level:  getEnvOrDefault("LOG_LEVEL", constants.DefaultLogLevel),
			Format: getEnvOrDefault("LOG_FORMAT", "json"),
		},
		Output: OutputConfig{
			Format: getEnvOrDefault("OUTPUT_FORMAT", constants.DefaultOutputFormat),
		},
		Metrics: MetricsConfig{
			TextfilePath: os.Getenv("METRICS_TEXTFILE"),
		},
	}

	if err := Validate(config); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate validates the configuration. It is exported so that flag
// overrides applied after Load can be checked again. An unknown log level is
// not an error, NewLogger falls back to Info for it.
func Validate(config *Config) error {
	switch config.Log.Format {
	case "json", "text":
	default:
		return errors.NewValidationError(fmt.Sprintf("invalid log format %q", config.Log.Format), nil)
	}

	switch config.Output.Format {
	case constants.OutputFormatJSON, constants.OutputFormatYAML:
	default:
		return errors.NewValidationError(fmt.Sprintf("invalid output format %q", config.Output.Format), nil)
	}

	return nil
}

// NewLogger builds the logger described by the configuration. out must not
// be stdout, which carries the module result.
func (c *Config) NewLogger(out io.Writer) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(out)

	if c.Log.Format == "text" {
		logger.SetFormatter(&logrus.TextFormatter{DisableColors: true})
	} else {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}

	level, err := logrus.ParseLevel(c.Log.Level)
	if err != nil {
		logger.WithError(err).Warnf("Unknown LOG_LEVEL value: %s. Using default Info level.", c.Log.Level)
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	return logger
}

// Environment variable helper functions

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
