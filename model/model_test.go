package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeat_Ring(t *testing.T) {
	testCases := []struct {
		name            string
		seat            Seat
		left, right     int
		leftFork, rFork int
		first, second   int
	}{
		{name: "first seat", seat: NewSeat(0, 5), left: 1, right: 4, leftFork: 1, rFork: 0, first: 0, second: 1},
		{name: "middle seat", seat: NewSeat(2, 5), left: 3, right: 1, leftFork: 3, rFork: 2, first: 2, second: 3},
		{name: "last seat wraps", seat: NewSeat(4, 5), left: 0, right: 3, leftFork: 0, rFork: 4, first: 0, second: 4},
		{name: "two seats", seat: NewSeat(1, 2), left: 0, right: 0, leftFork: 0, rFork: 1, first: 0, second: 1},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.True(t, tc.seat.Valid())
			assert.Equal(t, tc.left, tc.seat.Left())
			assert.Equal(t, tc.right, tc.seat.Right())
			assert.Equal(t, tc.leftFork, tc.seat.LeftFork())
			assert.Equal(t, tc.rFork, tc.seat.RightFork())
			first, second := tc.seat.Forks()
			assert.Equal(t, tc.first, first)
			assert.Equal(t, tc.second, second)
		})
	}
}

func TestSeat_SharedForks(t *testing.T) {
	const n = 5
	for i := 0; i < n; i++ {
		seat := NewSeat(i, n)
		left := NewSeat(seat.Left(), n)
		// the fork on my left is the fork on my left neighbour's right
		assert.Equal(t, seat.LeftFork(), left.RightFork())
		assert.True(t, Adjacent(i, seat.Left(), n))
		assert.True(t, Adjacent(i, seat.Right(), n))
		assert.False(t, Adjacent(i, (i+2)%n, n))
	}
	assert.False(t, NewSeat(5, 5).Valid())
	assert.False(t, NewSeat(-1, 5).Valid())
}

func TestState_Next(t *testing.T) {
	assert.Equal(t, StateHungry, StateThinking.Next())
	assert.Equal(t, StateEating, StateHungry.Next())
	assert.Equal(t, StateThinking, StateEating.Next())
	assert.False(t, StateThinking.IsActive())
	assert.True(t, StateHungry.IsActive())
	assert.True(t, StateEating.IsActive())
}

func TestValidate(t *testing.T) {
	T, H, E := StateThinking, StateHungry, StateEating
	testCases := []struct {
		name   string
		states []State
		expect error
	}{
		{name: "all thinking", states: []State{T, T, T, T, T}},
		{name: "two non adjacent eaters", states: []State{E, T, E, H, T}},
		{name: "adjacent eaters", states: []State{T, E, E, T, T}, expect: ErrAdjacentEating},
		{name: "adjacent eaters across wrap", states: []State{E, T, T, T, E}, expect: ErrAdjacentEating},
		{name: "four active of five", states: []State{E, H, E, H, T}},
		{name: "all active", states: []State{H, H, H, H, H}, expect: ErrAdmissionBound},
		{name: "empty", states: nil},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := Validate(tc.states)
			if tc.expect == nil {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, tc.expect), "got %v", err)
		})
	}
}
