// Package logging builds the application logger. Logs go to a file next
// to the database rather than stderr so they never bleed into the TUI.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// DefaultLogPath returns the log file location next to dbPath.
func DefaultLogPath(dbPath string) string {
	return filepath.Join(filepath.Dir(dbPath), "durus.log")
}

// New creates a JSON file logger at path. The level comes from
// DURUS_LOG_LEVEL (debug, info, warn, error) and defaults to info.
func New(path string) (*zap.Logger, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}

	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	cfg.Level = zap.NewAtomicLevelAt(levelFromEnv())
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger, nil
}

// NewOrNop returns a file logger, or a no-op logger if the file cannot
// be created. Logging must never keep the app from starting.
func NewOrNop(path string) *zap.Logger {
	logger, err := New(path)
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

func levelFromEnv() zapcore.Level {
	switch strings.ToLower(os.Getenv("DURUS_LOG_LEVEL")) {
	case "debug":
		return zapcore.DebugLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}
