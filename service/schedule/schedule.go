// Package schedule decides how long every philosopher thinks and eats.
package schedule

import (
	"errors"
	"time"
)

// ErrInvalid is returned for schedules that cannot produce durations
var ErrInvalid = errors.New("schedule: invalid")

// Schedule returns thinking and eating durations for a seat.  Implementations
// must be safe for concurrent use by different seats.
type Schedule interface {
	Think(seat int) time.Duration
	Eat(seat int) time.Duration
}

// MaxCycle returns the longest think+eat cycle the schedule can produce,
// used to derive stall thresholds.
type MaxCycle interface {
	MaxCycle() time.Duration
}
