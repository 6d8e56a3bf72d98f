package clock

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSleep(t *testing.T) {
	ctx := context.Background()
	started := time.Now()
	assert.NoError(t, Sleep(ctx, 10*time.Millisecond))
	assert.GreaterOrEqual(t, time.Since(started), 10*time.Millisecond)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	started = time.Now()
	assert.ErrorIs(t, Sleep(cancelled, time.Hour), context.Canceled)
	assert.Less(t, time.Since(started), time.Second)
	assert.ErrorIs(t, Sleep(cancelled, 0), context.Canceled)
}

func TestNowFunc(t *testing.T) {
	fixed := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	NowFunc = func() time.Time { return fixed }
	defer func() { NowFunc = time.Now }()
	assert.Equal(t, fixed, Now())
}
