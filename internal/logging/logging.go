// Package logging wires up the zap logger shared by every tfdsearch
// component. Logs go to a file under the app config dir so the TUI stays
// clean; warn and above are mirrored to stderr outside TUI mode.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	mu     sync.RWMutex
	logger = zap.NewNop()
)

// Options controls logger construction.
type Options struct {
	Level   string // debug, info, warn, error
	File    string // log file path; empty disables file output
	Verbose bool   // forces debug level
	Quiet   bool   // suppress the stderr mirror (TUI mode)
}

// Init builds the process logger. Safe to call once at startup; before
// Init, L() returns a no-op logger.
func Init(opts Options) (*zap.Logger, error) {
	level := zapcore.InfoLevel
	if err := level.Set(opts.Level); opts.Level != "" && err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", opts.Level, err)
	}
	if opts.Verbose {
		level = zapcore.DebugLevel
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	var cores []zapcore.Core

	if opts.File != "" {
		if err := os.MkdirAll(filepath.Dir(opts.File), 0o755); err != nil {
			return nil, fmt.Errorf("create log dir: %w", err)
		}
		f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		cores = append(cores, zapcore.NewCore(
			zapcore.NewJSONEncoder(encCfg),
			zapcore.AddSync(f),
			level,
		))
	}

	if !opts.Quiet {
		stderrLevel := level
		if stderrLevel < zapcore.WarnLevel {
			stderrLevel = zapcore.WarnLevel
		}
		cores = append(cores, zapcore.NewCore(
			zapcore.NewConsoleEncoder(encCfg),
			zapcore.Lock(os.Stderr),
			stderrLevel,
		))
	}

	l := zap.New(zapcore.NewTee(cores...))

	mu.Lock()
	logger = l
	mu.Unlock()
	return l, nil
}

// L returns the process logger.
func L() *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

// Named returns a component-scoped logger (api, cache, store, ...).
func Named(component string) *zap.Logger {
	return L().Named(component)
}

// Sync flushes buffered log entries. Call at shutdown.
func Sync() {
	_ = L().Sync()
}
