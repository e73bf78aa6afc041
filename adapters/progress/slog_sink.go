// Package progress provides ProgressPort adapters for sweep reporting.
package progress

import (
	"log/slog"
	"sync/atomic"
)

// Logger reports accumulated sample-units through slog, emitting a line at
// each 5% boundary so an hours-long sweep stays observable without flooding
// the log.
type Logger struct {
	log     *slog.Logger
	total   int64
	done    atomic.Int64
	lastPct atomic.Int64
}

// NewLogger creates a progress logger. total is the expected number of
// sample-units; a non-positive total disables percentage lines.
func NewLogger(log *slog.Logger, total int64) *Logger {
	return &Logger{log: log, total: total}
}

// Step records n completed sample-units.
func (l *Logger) Step(n int64) {
	done := l.done.Add(n)
	if l.total <= 0 {
		return
	}
	pct := done * 100 / l.total
	last := l.lastPct.Load()
	if pct >= last+5 && l.lastPct.CompareAndSwap(last, pct) {
		l.log.Info("sweep progress",
			"done", done,
			"total", l.total,
			"pct", pct)
	}
}

// Done returns the sample-units recorded so far.
func (l *Logger) Done() int64 {
	return l.done.Load()
}

// Counter is a ProgressPort that only accumulates, for tests and pollers.
type Counter struct {
	n atomic.Int64
}

// Step records n completed sample-units.
func (c *Counter) Step(n int64) {
	c.n.Add(n)
}

// Total returns the sample-units recorded so far.
func (c *Counter) Total() int64 {
	return c.n.Load()
}
