// Package logger holds the process-wide structured logger.
package logger

import (
	"io"
	"log/slog"
	"sync"
)

// Config controls where diagnostics go.
type Config struct {
	Out     io.Writer
	Verbose bool
}

var (
	mu     sync.RWMutex
	global = discard()
)

// Setup installs a debug-level text handler on cfg.Out when Verbose is
// set. Otherwise everything is discarded: user-facing messages go through
// the command output, never through the logger.
func Setup(cfg Config) {
	if cfg.Out == nil || !cfg.Verbose {
		reset()
		return
	}

	h := slog.NewTextHandler(cfg.Out, &slog.HandlerOptions{
		Level: slog.LevelDebug,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			// CLI diagnostics don't need timestamps
			if a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	})

	mu.Lock()
	global = slog.New(h)
	mu.Unlock()
}

// L returns the current logger.
func L() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return global
}

func reset() {
	mu.Lock()
	defer mu.Unlock()
	global = discard()
}

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
