// Package clilog provides the CLI's structured logging and phase timing,
// generalizing the original prototype's ad hoc stopwatch into zerolog
// events so phase durations show up alongside the rest of the run's logs.
package clilog

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New builds a console-friendly zerolog.Logger. verbose raises the level to
// debug; otherwise only info-and-above events are emitted.
func New(w io.Writer, verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	console := zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	return zerolog.New(console).Level(level).With().Timestamp().Logger()
}

// NewDefault builds a logger writing to stderr, matching the CLI's default
// destination for diagnostic output.
func NewDefault(verbose bool) zerolog.Logger {
	return New(os.Stderr, verbose)
}

// Timing marks named phase boundaries and logs each phase's duration as
// soon as the phase ends (at the next Mark, or at Finish), replacing the original's buffer-then-print stopwatch
// with incremental debug-level log events.
type Timing struct {
	log   zerolog.Logger
	start time.Time
	last  time.Time
	name  string
}

// NewTiming starts a Timing clock under the given logger.
func NewTiming(log zerolog.Logger) *Timing {
	now := time.Now()
	return &Timing{log: log, start: now, last: now, name: "start"}
}

// Mark records the end of the phase named by the previous Mark call (or
// "start" for the first one) and begins timing a phase named name.
func (t *Timing) Mark(name string) {
	now := time.Now()
	t.log.Debug().
		Str("phase", t.name).
		Dur("elapsed", now.Sub(t.last)).
		Msg("phase complete")
	t.last = now
	t.name = name
}

// Finish marks the end of the final phase and logs the run's total
// duration at info level.
func (t *Timing) Finish() {
	now := time.Now()
	t.log.Debug().
		Str("phase", t.name).
		Dur("elapsed", now.Sub(t.last)).
		Msg("phase complete")
	t.log.Info().Dur("total", now.Sub(t.start)).Msg("run complete")
}
