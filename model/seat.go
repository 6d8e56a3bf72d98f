package model

// Seat identifies a philosopher position on a ring of Size seats.
//
// Fork k lies between seat k-1 and seat k, so seat i uses fork i (shared with
// its right neighbour) and fork i+1 (shared with its left neighbour).
type Seat struct {
	ID   int
	Size int
}

// NewSeat creates a seat
func NewSeat(id, size int) Seat {
	return Seat{ID: id, Size: size}
}

// Valid returns true when the seat lies on the ring
func (s Seat) Valid() bool {
	return s.Size > 0 && s.ID >= 0 && s.ID < s.Size
}

// Left returns the left neighbour seat index
func (s Seat) Left() int {
	return (s.ID + 1) % s.Size
}

// Right returns the right neighbour seat index
func (s Seat) Right() int {
	return (s.ID + s.Size - 1) % s.Size
}

// LeftFork returns the fork shared with the left neighbour
func (s Seat) LeftFork() int {
	return (s.ID + 1) % s.Size
}

// RightFork returns the fork shared with the right neighbour
func (s Seat) RightFork() int {
	return s.ID
}

// Forks returns both fork indices in global acquisition order (lowest first).
func (s Seat) Forks() (first, second int) {
	first, second = s.RightFork(), s.LeftFork()
	if second < first {
		first, second = second, first
	}
	return first, second
}

// Adjacent returns true when seats a and b share a fork on a ring of size n.
func Adjacent(a, b, n int) bool {
	if n < 2 || a == b {
		return false
	}
	return (a+1)%n == b || (b+1)%n == a
}
