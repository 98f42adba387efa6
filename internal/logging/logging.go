// Package logging provides the process-wide logger. Output always goes to
// stderr so stdout stays reserved for command results.
package logging

import (
	"os"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
)

var root atomic.Pointer[zerolog.Logger]

func init() {
	l := zerolog.New(os.Stderr).Level(zerolog.WarnLevel).With().Timestamp().Logger()
	root.Store(&l)
}

// Setup configures the global logger. Verbose lowers the level to debug and
// switches to the human-readable console writer.
func Setup(verbose bool) {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	w := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	l := zerolog.New(w).Level(level).With().Timestamp().Logger()
	root.Store(&l)
}

// L returns the current global logger.
func L() *zerolog.Logger {
	return root.Load()
}
