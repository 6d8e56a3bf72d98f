package printer

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/philo/service/event"
)

func TestService_Handle(t *testing.T) {
	testCases := []struct {
		name      string
		seat      int
		eventType event.Type
		expect    string
	}{
		{name: "hungry", seat: 0, eventType: event.TypeHungry, expect: "Philosopher 0 is hungry."},
		{name: "waiting", seat: 4, eventType: event.TypeWaitingForForks, expect: "Philosopher 4 is waiting for forks."},
		{name: "forks", seat: 2, eventType: event.TypePickedUpForks, expect: "Philosopher 2 picked up both forks."},
		{name: "eating", seat: 1, eventType: event.TypeStartsEating, expect: "Philosopher 1 starts eating."},
		{name: "thinking", seat: 3, eventType: event.TypeStartsThinking, expect: "Philosopher 3 starts thinking."},
		{name: "done thinking", seat: 3, eventType: event.TypeFinishesThinking, expect: "Philosopher 3 finishes thinking."},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			srv := New(buf, false)
			srv.Handle(event.NewEvent(&event.Context{Seat: tc.seat, EventType: tc.eventType}, event.Lifecycle{}))
			assert.Equal(t, tc.expect+"\n", buf.String())
			assert.Equal(t, 1, srv.Lines())
		})
	}
}

func TestService_Colour(t *testing.T) {
	buf := &bytes.Buffer{}
	srv := New(buf, true)
	srv.Handle(event.NewEvent(&event.Context{Seat: 1, EventType: event.TypeStartsEating}, event.Lifecycle{}))
	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "\x1b["), "expected ANSI prefix in %q", out)
	assert.Contains(t, out, "Philosopher 1 starts eating.")

	srv.Handle(nil)
	srv.Handle(&event.Event[event.Lifecycle]{})
	assert.Equal(t, 1, srv.Lines())
}
