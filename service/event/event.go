package event

import (
	"time"

	"github.com/viant/philo/internal/clock"
)

// Type represents a philosopher lifecycle event type
type Type string

const (
	TypeStartsThinking   Type = "starts thinking"
	TypeFinishesThinking Type = "finishes thinking"
	TypeHungry           Type = "is hungry"
	TypeWaitingForForks  Type = "is waiting for forks"
	TypePickedUpForks    Type = "picked up both forks"
	TypeStartsEating     Type = "starts eating"
)

// Types returns all lifecycle event types in cycle order
func Types() []Type {
	return []Type{TypeStartsThinking, TypeFinishesThinking, TypeHungry, TypeWaitingForForks, TypePickedUpForks, TypeStartsEating}
}

type Context struct {
	RunID     string `json:"runID"`
	Seat      int    `json:"seat"`
	EventType Type   `json:"eventType"`
}

type Event[T any] struct {
	Context   *Context  `json:"context"`
	CreatedAt time.Time `json:"createdAt"`
	Data      T         `json:"data"`
}

// Lifecycle carries the details of a philosopher lifecycle event
type Lifecycle struct {
	Meal     int           `json:"meal"`
	Duration time.Duration `json:"duration,omitempty"`
}

func NewEvent[T any](context *Context, data T) *Event[T] {
	return &Event[T]{
		Context:   context,
		CreatedAt: clock.Now(),
		Data:      data,
	}
}
