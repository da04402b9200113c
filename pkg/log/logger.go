// Package log holds the module-wide zerolog logger. The binding is a leaf
// library, so it stays quiet by default (warn level, stderr) and lets the
// embedding application swap in its own logger.
package log

import (
	"os"
	"sync"

	"github.com/rs/zerolog"
)

var (
	mu     sync.RWMutex
	logger = zerolog.New(os.Stderr).
		With().Timestamp().Str("component", "lgbm").Logger().
		Level(zerolog.WarnLevel)
)

// Logger returns the current module logger.
func Logger() zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

// SetLogger replaces the module logger.
func SetLogger(l zerolog.Logger) {
	mu.Lock()
	defer mu.Unlock()
	logger = l
}

// SetLevel adjusts the level of the current module logger. The level string
// follows zerolog conventions ("debug", "info", "warn", "error", ...).
func SetLevel(level string) error {
	parsed, err := zerolog.ParseLevel(level)
	if err != nil {
		return err
	}
	mu.Lock()
	defer mu.Unlock()
	logger = logger.Level(parsed)
	return nil
}
