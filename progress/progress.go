// Package progress provides a lightweight tracker that keeps aggregated
// table counters (philosophers per state, meals, fork waits) for a single
// simulation run.  The tracker instance lives in the run context; every
// philosopher that receives the context can update the counters via the
// Delta helper without requiring a global registry.
//
// Counters are updated outside of the table's state mutex, so a snapshot is
// an approximation of the table, never a substitute for table.Snapshot.
package progress

import (
	"context"
	"sync"
	"time"
)

// Delta represents an incremental counter change emitted by a philosopher.
// The fields are signed and therefore can be either positive (increment) or
// negative (decrement).
type Delta struct {
	Seat     int
	Thinking int
	Hungry   int
	Eating   int
	Meals    int
	Waits    int
}

// Progress keeps aggregated counters for a table.  It is safe for concurrent
// use.
type Progress struct {
	RunID     string
	Seats     int
	StartedAt time.Time

	Thinking int
	Hungry   int
	Eating   int
	Meals    int
	Waits    int
	// MealsBySeat counts meals per seat
	MealsBySeat []int

	sync.Mutex
	onChange func(Progress)
}

// New creates a tracker with every seat thinking
func New(runID string, seats int, onChange func(Progress)) *Progress {
	return &Progress{
		RunID:       runID,
		Seats:       seats,
		StartedAt:   time.Now(),
		Thinking:    seats,
		MealsBySeat: make([]int, seats),
		onChange:    onChange,
	}
}

// Update applies the supplied delta to the tracker.  If an onChange callback
// has been registered it will be invoked with a copy of the updated tracker
// outside the critical section.
func (p *Progress) Update(d Delta) {
	if p == nil {
		return
	}

	p.Lock()
	p.Thinking += d.Thinking
	p.Hungry += d.Hungry
	p.Eating += d.Eating
	p.Meals += d.Meals
	p.Waits += d.Waits
	if d.Meals != 0 && d.Seat >= 0 && d.Seat < len(p.MealsBySeat) {
		p.MealsBySeat[d.Seat] += d.Meals
	}
	snapshot := p.copy()
	cb := p.onChange
	p.Unlock()

	if cb != nil {
		cb(snapshot)
	}
}

// copy must be called with the lock held
func (p *Progress) copy() Progress {
	return Progress{
		RunID:       p.RunID,
		Seats:       p.Seats,
		StartedAt:   p.StartedAt,
		Thinking:    p.Thinking,
		Hungry:      p.Hungry,
		Eating:      p.Eating,
		Meals:       p.Meals,
		Waits:       p.Waits,
		MealsBySeat: append([]int(nil), p.MealsBySeat...),
	}
}

// Snapshot returns a copy of the tracker suitable for read-only inspection.
func (p *Progress) Snapshot() Progress {
	if p == nil {
		return Progress{}
	}
	p.Lock()
	defer p.Unlock()
	return p.copy()
}

// OnChange registers a callback that is invoked after every successful
// Update.  Passing nil disables the callback.
func (p *Progress) OnChange(cb func(Progress)) {
	if p == nil {
		return
	}
	p.Lock()
	p.onChange = cb
	p.Unlock()
}

// ----------------------------------------------------------------------------
// Context helpers
// ----------------------------------------------------------------------------

type trackerKeyT struct{}

var trackerKey trackerKeyT

// WithTracker embeds tracker in a derived context
func WithTracker(ctx context.Context, tracker *Progress) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, trackerKey, tracker)
}

// FromContext extracts the Progress tracker from ctx.
func FromContext(ctx context.Context) (*Progress, bool) {
	if ctx == nil {
		return nil, false
	}
	tr, ok := ctx.Value(trackerKey).(*Progress)
	return tr, ok
}

// UpdateCtx is a helper that looks up the tracker in ctx (if any) and applies
// the supplied delta.
func UpdateCtx(ctx context.Context, d Delta) {
	if tr, ok := FromContext(ctx); ok {
		tr.Update(d)
	}
}
