package config

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// BuildLogger constructs a zap logger from the logging configuration.
// With no file configured the logger writes to stderr so it never corrupts
// the TUI's stdout stream.
func (c *Config) BuildLogger(verbose bool) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	zc.OutputPaths = []string{"stderr"}
	zc.ErrorOutputPaths = []string{"stderr"}
	if c.Logging.File != "" {
		zc.OutputPaths = []string{c.Logging.File}
		zc.ErrorOutputPaths = []string{c.Logging.File}
	}

	level := c.Logging.Level
	if verbose {
		level = "debug"
	}
	switch level {
	case "debug":
		zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	case "", "info":
		zc.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	case "warn", "warning":
		zc.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	case "error":
		zc.Level = zap.NewAtomicLevelAt(zapcore.ErrorLevel)
	default:
		return nil, fmt.Errorf("unknown log level %q", level)
	}

	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}
