package model

import (
	"errors"
	"fmt"
)

var (
	// ErrAdjacentEating is returned when two philosophers sharing a fork
	// are both eating.
	ErrAdjacentEating = errors.New("model: adjacent philosophers eating")

	// ErrAdmissionBound is returned when more than size-1 philosophers are
	// hungry or eating at the same time.
	ErrAdmissionBound = errors.New("model: admission bound exceeded")
)

// Validate checks a consistent snapshot of the state table against the table
// invariants.  It returns nil when the snapshot is valid.
func Validate(states []State) error {
	n := len(states)
	active := 0
	for i, state := range states {
		if state.IsActive() {
			active++
		}
		if n < 2 || state != StateEating {
			continue
		}
		left := NewSeat(i, n).Left()
		if left != i && states[left] == StateEating {
			return fmt.Errorf("%w: seats %d and %d", ErrAdjacentEating, i, left)
		}
	}
	if n > 0 && active > n-1 {
		return fmt.Errorf("%w: %d active of %d seats", ErrAdmissionBound, active, n)
	}
	return nil
}
