package table

import "github.com/viant/philo/model"

// StateListener is invoked under the state mutex after every state change.
// Implementations must not call back into the table.
type StateListener func(seat int, from, to model.State)

// WaitListener is invoked, outside of the state mutex, every time a
// philosopher is about to block waiting for a neighbour to finish eating.
type WaitListener func(seat int)

// Option represents a table option
type Option func(t *Table)

// WithStateListener registers state transition listeners
func WithStateListener(fns ...StateListener) Option {
	return func(t *Table) {
		t.stateListeners = append(t.stateListeners, fns...)
	}
}

// WithWaitListener registers fork wait listeners
func WithWaitListener(fns ...WaitListener) Option {
	return func(t *Table) {
		t.waitListeners = append(t.waitListeners, fns...)
	}
}
