package progress

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgress_Update(t *testing.T) {
	var last Progress
	tracker := New("run", 3, func(p Progress) { last = p })
	ctx := WithTracker(context.Background(), tracker)

	UpdateCtx(ctx, Delta{Seat: 1, Thinking: -1, Hungry: 1})
	UpdateCtx(ctx, Delta{Seat: 1, Waits: 1})
	UpdateCtx(ctx, Delta{Seat: 1, Hungry: -1, Eating: 1})
	UpdateCtx(ctx, Delta{Seat: 1, Eating: -1, Thinking: 1, Meals: 1})

	snapshot := tracker.Snapshot()
	assert.Equal(t, 3, snapshot.Thinking)
	assert.Equal(t, 0, snapshot.Hungry)
	assert.Equal(t, 0, snapshot.Eating)
	assert.Equal(t, 1, snapshot.Meals)
	assert.Equal(t, 1, snapshot.Waits)
	assert.Equal(t, []int{0, 1, 0}, snapshot.MealsBySeat)
	assert.Equal(t, snapshot.MealsBySeat, last.MealsBySeat)

	snapshot.MealsBySeat[0] = 99
	assert.Equal(t, 0, tracker.Snapshot().MealsBySeat[0], "snapshot must not alias tracker")
}

func TestProgress_Concurrent(t *testing.T) {
	tracker := New("run", 4, nil)
	var wg sync.WaitGroup
	for seat := 0; seat < 4; seat++ {
		wg.Add(1)
		go func(seat int) {
			defer wg.Done()
			for i := 0; i < 250; i++ {
				tracker.Update(Delta{Seat: seat, Meals: 1})
			}
		}(seat)
	}
	wg.Wait()
	assert.Equal(t, 1000, tracker.Snapshot().Meals)
	assert.Equal(t, []int{250, 250, 250, 250}, tracker.Snapshot().MealsBySeat)
}

func TestProgress_Nil(t *testing.T) {
	var tracker *Progress
	tracker.Update(Delta{Meals: 1})
	tracker.OnChange(nil)
	assert.Equal(t, Progress{}, tracker.Snapshot())
	_, ok := FromContext(context.Background())
	assert.False(t, ok)
	UpdateCtx(context.Background(), Delta{Meals: 1})
}
