package utils

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	// DefaultLogLevel keeps diagnostics quiet unless something needs attention.
	DefaultLogLevel = "warn"

	invalidLogLevelFormat = "invalid log level %q; accepted values: debug, info, warn, error"
)

// ParseLogLevel converts a level name into a zap level.
func ParseLogLevel(levelName string) (zapcore.Level, error) {
	normalized := strings.ToLower(strings.TrimSpace(levelName))
	if normalized == "" {
		normalized = DefaultLogLevel
	}
	switch normalized {
	case "debug", "info", "warn", "error":
	default:
		return zapcore.InvalidLevel, fmt.Errorf(invalidLogLevelFormat, levelName)
	}
	return zapcore.ParseLevel(normalized)
}

// NewApplicationLogger constructs a zap logger configured for human-readable console output on standard error.
func NewApplicationLogger(levelName string) (*zap.Logger, error) {
	level, levelError := ParseLogLevel(levelName)
	if levelError != nil {
		return nil, levelError
	}
	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(level)
	config.Encoding = "console"
	config.OutputPaths = []string{"stderr"}
	config.ErrorOutputPaths = []string{"stderr"}
	config.DisableCaller = true
	config.DisableStacktrace = true
	config.Sampling = nil
	config.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	config.EncoderConfig.TimeKey = ""
	config.EncoderConfig.NameKey = ""
	config.EncoderConfig.CallerKey = ""
	config.EncoderConfig.MessageKey = "message"
	config.EncoderConfig.StacktraceKey = ""
	return config.Build()
}
