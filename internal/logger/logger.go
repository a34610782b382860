// Package logger builds the diagnostic logger. The TUI owns the terminal, so
// diagnostics go to a file.
package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// warnings receives the notice printed when the log file can't be opened.
var warnings io.Writer = os.Stderr

// New returns a logger that appends JSON lines to logPath, creating the
// parent directory if needed. verbose enables debug output.
func New(logPath string, verbose bool) (*zap.SugaredLogger, error) {
	if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
		return nil, err
	}

	config := zap.NewProductionConfig()
	config.OutputPaths = []string{logPath}
	config.ErrorOutputPaths = []string{logPath}
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}

	log, err := config.Build()
	if err != nil {
		return nil, err
	}

	return log.Sugar(), nil
}

// NewOrNop is New, falling back to a logger that discards everything. The
// fallback is announced on stderr, before any TUI takes the terminal.
func NewOrNop(logPath string, verbose bool) *zap.SugaredLogger {
	log, err := New(logPath, verbose)
	if err != nil {
		fmt.Fprintf(warnings, "emotionai: diagnostics disabled, cannot open log %s: %v\n", logPath, err)
		return zap.NewNop().Sugar()
	}
	return log
}
