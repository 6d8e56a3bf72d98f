package table

import "errors"

var (
	// ErrInvalidSize is returned when a table is created with fewer than two
	// seats.
	ErrInvalidSize = errors.New("table: size must be at least 2")

	// ErrInvalidSeat indicates that a seat index is outside of the ring.
	ErrInvalidSeat = errors.New("table: invalid seat")
)
