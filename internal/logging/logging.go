// Package logging builds zap loggers from the logging section of the root configuration.
package logging

import (
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	consoleFormat            = "console"
	jsonFormat               = "json"
	parseLevelErrorFormat    = "parse logging level %q: %w"
	unsupportedFormatMessage = "unsupported logging format %q"
)

// New returns a logger writing to sink at the given level ("debug", "info", "warn", "error")
// in console or json format.
func New(level string, format string, sink io.Writer) (*zap.Logger, error) {
	atomicLevel, levelErr := zap.ParseAtomicLevel(strings.ToLower(strings.TrimSpace(level)))
	if levelErr != nil {
		return nil, fmt.Errorf(parseLevelErrorFormat, level, levelErr)
	}

	encoderConfiguration := zap.NewProductionEncoderConfig()
	encoderConfiguration.EncodeTime = zapcore.ISO8601TimeEncoder

	var encoder zapcore.Encoder
	switch strings.ToLower(strings.TrimSpace(format)) {
	case consoleFormat, "":
		encoderConfiguration.EncodeLevel = zapcore.CapitalLevelEncoder
		encoder = zapcore.NewConsoleEncoder(encoderConfiguration)
	case jsonFormat:
		encoder = zapcore.NewJSONEncoder(encoderConfiguration)
	default:
		return nil, fmt.Errorf(unsupportedFormatMessage, format)
	}

	core := zapcore.NewCore(encoder, zapcore.AddSync(sink), atomicLevel)
	return zap.New(core), nil
}
