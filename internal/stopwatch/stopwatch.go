// Package stopwatch measures the wall time between named steps of a run.
//
// Callers pick an implementation once: New for diagnostics, Nop when timing
// is disabled. Both satisfy Timer, so measurement code never checks a flag.
package stopwatch

import (
	"log/slog"
	"time"

	"gitfortune/internal/logging"
)

// Timer records elapsed time between laps.
type Timer interface {
	// Restart begins a new measurement without reporting.
	Restart()
	// Lap reports the time since the previous Lap or Restart under step.
	Lap(step string) time.Duration
}

// Option customizes a Stopwatch.
type Option func(*Stopwatch)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Stopwatch) {
		if now != nil {
			s.now = now
		}
	}
}

// Stopwatch logs each lap at info level.
type Stopwatch struct {
	logger *slog.Logger
	now    func() time.Time
	last   time.Time
}

// New starts a stopwatch. A nil logger discards lap reports.
func New(logger *slog.Logger, opts ...Option) *Stopwatch {
	s := &Stopwatch{
		logger: logging.NewComponentLogger(logger, "timing"),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.last = s.now()
	return s
}

// Restart implements Timer.
func (s *Stopwatch) Restart() {
	s.last = s.now()
}

// Lap implements Timer.
func (s *Stopwatch) Lap(step string) time.Duration {
	current := s.now()
	elapsed := current.Sub(s.last)
	s.last = current
	s.logger.Info("step finished",
		logging.String("step", step),
		logging.Duration("elapsed", elapsed),
	)
	return elapsed
}

type nopTimer struct{}

func (nopTimer) Restart() {}

func (nopTimer) Lap(string) time.Duration { return 0 }

// Nop returns a Timer that measures nothing.
func Nop() Timer {
	return nopTimer{}
}
