// Package watchdog detects deadlocks and invariant violations while a table
// runs.  Every philosopher touches the monitor on each state change; a seat
// that has not made progress within StallAfter is reported as stalled.
package watchdog

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/viant/philo/internal/clock"
	"github.com/viant/philo/model"
)

// Config represents watchdog configuration
type Config struct {
	// PollingInterval is how often the monitor samples the table
	PollingInterval time.Duration
	// StallAfter is how long a seat may go without progress before it is
	// reported as stalled
	StallAfter time.Duration
}

// DefaultConfig returns the default watchdog configuration
func DefaultConfig() Config {
	return Config{
		PollingInterval: 500 * time.Millisecond,
		StallAfter:      time.Minute,
	}
}

// Snapshotter returns a consistent copy of the state table
type Snapshotter interface {
	Snapshot() []model.State
}

// Monitor tracks per-seat progress and validates table snapshots
type Monitor struct {
	config      Config
	table       Snapshotter
	logger      *slog.Logger
	onStall     func(seat int, idle time.Duration)
	onViolation func(err error)

	mu         sync.Mutex
	last       []time.Time
	stalled    []bool
	violations int
}

// Option represents a monitor option
type Option func(m *Monitor)

// WithLogger sets the diagnostics logger
func WithLogger(logger *slog.Logger) Option {
	return func(m *Monitor) { m.logger = logger }
}

// WithStallHandler sets a callback invoked once per detected stall
func WithStallHandler(fn func(seat int, idle time.Duration)) Option {
	return func(m *Monitor) { m.onStall = fn }
}

// WithViolationHandler sets a callback invoked for every invalid snapshot
func WithViolationHandler(fn func(err error)) Option {
	return func(m *Monitor) { m.onViolation = fn }
}

// New creates a monitor for a table with size seats
func New(table Snapshotter, size int, config Config, opts ...Option) *Monitor {
	if config.PollingInterval <= 0 {
		config.PollingInterval = DefaultConfig().PollingInterval
	}
	if config.StallAfter <= 0 {
		config.StallAfter = DefaultConfig().StallAfter
	}
	ret := &Monitor{
		config:  config,
		table:   table,
		logger:  slog.Default(),
		last:    make([]time.Time, size),
		stalled: make([]bool, size),
	}
	now := clock.Now()
	for i := range ret.last {
		ret.last[i] = now
	}
	for _, opt := range opts {
		opt(ret)
	}
	return ret
}

// Touch records progress of seat
func (m *Monitor) Touch(seat int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if seat < 0 || seat >= len(m.last) {
		return
	}
	m.last[seat] = clock.Now()
	m.stalled[seat] = false
}

// Start polls until ctx is done
func (m *Monitor) Start(ctx context.Context) {
	ticker := time.NewTicker(m.config.PollingInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.Check()
		}
	}
}

// Check validates the current table snapshot and reports newly stalled seats
func (m *Monitor) Check() {
	if err := model.Validate(m.table.Snapshot()); err != nil {
		m.mu.Lock()
		m.violations++
		m.mu.Unlock()
		m.logger.Error("table invariant violated", "error", err)
		if m.onViolation != nil {
			m.onViolation(err)
		}
	}

	type stall struct {
		seat int
		idle time.Duration
	}
	var stalls []stall
	now := clock.Now()
	m.mu.Lock()
	for seat, last := range m.last {
		idle := now.Sub(last)
		if idle >= m.config.StallAfter && !m.stalled[seat] {
			m.stalled[seat] = true
			stalls = append(stalls, stall{seat: seat, idle: idle})
		}
	}
	m.mu.Unlock()

	for _, s := range stalls {
		m.logger.Warn("philosopher made no progress", "seat", s.seat, "idle", s.idle)
		if m.onStall != nil {
			m.onStall(s.seat, s.idle)
		}
	}
}

// Stalled returns seats currently considered stalled
func (m *Monitor) Stalled() []int {
	m.mu.Lock()
	defer m.mu.Unlock()
	var ret []int
	for seat, stalled := range m.stalled {
		if stalled {
			ret = append(ret, seat)
		}
	}
	return ret
}

// Violations returns number of invalid snapshots observed
func (m *Monitor) Violations() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.violations
}
