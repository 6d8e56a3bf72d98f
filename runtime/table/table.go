package table

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/viant/philo/model"
	"golang.org/x/sync/semaphore"
)

const noHolder = -1

type fork struct {
	mu     sync.Mutex
	holder atomic.Int32
}

// Table coordinates access to forks for a ring of philosophers
type Table struct {
	size   int
	mu     sync.Mutex
	cond   *sync.Cond
	states []model.State
	forks  []*fork
	gate   *semaphore.Weighted

	stateListeners []StateListener
	waitListeners  []WaitListener
}

// New creates a table with size seats, size forks and size-1 admission permits
func New(size int, opts ...Option) (*Table, error) {
	if size < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSize, size)
	}
	t := &Table{
		size:   size,
		states: make([]model.State, size),
		forks:  make([]*fork, size),
		gate:   semaphore.NewWeighted(int64(size - 1)),
	}
	t.cond = sync.NewCond(&t.mu)
	for i := range t.states {
		t.states[i] = model.StateThinking
		t.forks[i] = &fork{}
		t.forks[i].holder.Store(noHolder)
	}
	for _, opt := range opts {
		opt(t)
	}
	return t, nil
}

// Size returns number of seats
func (t *Table) Size() int {
	return t.size
}

// Permits returns the admission gate capacity
func (t *Table) Permits() int {
	return t.size - 1
}

// Seat returns the seat for id
func (t *Table) Seat(id int) (model.Seat, error) {
	seat := model.NewSeat(id, t.size)
	if !seat.Valid() {
		return seat, fmt.Errorf("%w: %d", ErrInvalidSeat, id)
	}
	return seat, nil
}

func (t *Table) mustSeat(id int) model.Seat {
	seat, err := t.Seat(id)
	if err != nil {
		panic(err)
	}
	return seat
}

// EnterTable blocks until an admission permit is available or ctx is done
func (t *Table) EnterTable(ctx context.Context, id int) error {
	if _, err := t.Seat(id); err != nil {
		return err
	}
	return t.gate.Acquire(ctx, 1)
}

// LeaveTable returns the admission permit taken by EnterTable
func (t *Table) LeaveTable(id int) {
	t.mustSeat(id)
	t.gate.Release(1)
}

// SetState updates the state of a philosopher
func (t *Table) SetState(id int, state model.State) {
	t.mustSeat(id)
	t.mu.Lock()
	defer t.mu.Unlock()
	prev := t.states[id]
	t.states[id] = state
	for _, fn := range t.stateListeners {
		fn(id, prev, state)
	}
}

// State returns the current state of a philosopher
func (t *Table) State(id int) model.State {
	t.mustSeat(id)
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.states[id]
}

// Snapshot returns a consistent copy of the state table
func (t *Table) Snapshot() []model.State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]model.State(nil), t.states...)
}

// Holder returns the seat currently holding fork, or -1 when it is free
func (t *Table) Holder(forkID int) int {
	if forkID < 0 || forkID >= t.size {
		return noHolder
	}
	return int(t.forks[forkID].holder.Load())
}

// AcquireForks blocks until neither neighbour of id is eating, then locks both
// adjacent forks lowest index first.  It returns ctx.Err() when ctx is done
// before the forks could be taken; no fork is held in that case.
func (t *Table) AcquireForks(ctx context.Context, id int) error {
	seat, err := t.Seat(id)
	if err != nil {
		return err
	}
	if err = t.awaitNeighbours(ctx, seat); err != nil {
		return err
	}
	first, second := seat.Forks()
	t.lock(first, id)
	t.lock(second, id)
	return nil
}

func (t *Table) awaitNeighbours(ctx context.Context, seat model.Seat) error {
	stop := context.AfterFunc(ctx, func() {
		t.mu.Lock()
		t.cond.Broadcast()
		t.mu.Unlock()
	})
	defer stop()

	t.mu.Lock()
	defer t.mu.Unlock()
	for t.neighbourEating(seat) {
		if err := ctx.Err(); err != nil {
			return err
		}
		if len(t.waitListeners) > 0 {
			t.mu.Unlock()
			for _, fn := range t.waitListeners {
				fn(seat.ID)
			}
			t.mu.Lock()
			// a release or cancellation may have been broadcast while unlocked
			if !t.neighbourEating(seat) || ctx.Err() != nil {
				continue
			}
		}
		t.cond.Wait()
	}
	return ctx.Err()
}

// neighbourEating must be called with t.mu held
func (t *Table) neighbourEating(seat model.Seat) bool {
	return t.states[seat.Left()] == model.StateEating || t.states[seat.Right()] == model.StateEating
}

func (t *Table) lock(forkID, id int) {
	f := t.forks[forkID]
	f.mu.Lock()
	if !f.holder.CompareAndSwap(noHolder, int32(id)) {
		panic(fmt.Sprintf("table: fork %d taken by %d while held by %d", forkID, id, f.holder.Load()))
	}
}

func (t *Table) unlock(forkID, id int) {
	f := t.forks[forkID]
	if !f.holder.CompareAndSwap(int32(id), noHolder) {
		panic(fmt.Sprintf("table: seat %d released fork %d held by %d", id, forkID, f.holder.Load()))
	}
	f.mu.Unlock()
}

// ReleaseForks unlocks both forks of id and wakes every philosopher waiting for
// a neighbour to finish eating.  The caller must hold both forks.
func (t *Table) ReleaseForks(id int) {
	seat := t.mustSeat(id)
	first, second := seat.Forks()
	t.unlock(second, id)
	t.unlock(first, id)
	t.mu.Lock()
	t.cond.Broadcast()
	t.mu.Unlock()
}
