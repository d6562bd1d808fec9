// Package logging holds the process-wide structured logger.
//
// The terminal belongs to the TUI, so log lines go to a file instead of stderr.
package logging

import (
	"github.com/Laisky/errors/v2"
	"github.com/Laisky/zap"
	"github.com/Laisky/zap/zapcore"
)

// Logger is the shared logger. It is a no-op until Setup is called.
var Logger = zap.NewNop()

// Setup replaces Logger with one writing JSON lines to path.
// An empty path keeps the no-op logger.
func Setup(path string, debug bool) (*zap.Logger, error) {
	if path == "" {
		return Logger, nil
	}

	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.Sampling = nil
	if debug {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}

	logger, err := cfg.Build()
	if err != nil {
		return nil, errors.Wrapf(err, "build logger for %s", path)
	}

	Logger = logger.Named("sitesearch")
	return Logger, nil
}

// Named returns a child of the shared logger
func Named(name string) *zap.Logger {
	return Logger.Named(name)
}
