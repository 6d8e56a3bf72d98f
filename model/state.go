package model

// State represents the current lifecycle state of a philosopher
type State string

const (
	StateThinking State = "thinking"
	StateHungry   State = "hungry"
	StateEating   State = "eating"
)

// IsActive returns true when the philosopher holds an admission permit,
// i.e. it is hungry or eating.
func (s State) IsActive() bool {
	return s == StateHungry || s == StateEating
}

// Next returns the state that follows s in the lifecycle cycle
// thinking -> hungry -> eating -> thinking.
func (s State) Next() State {
	switch s {
	case StateThinking:
		return StateHungry
	case StateHungry:
		return StateEating
	default:
		return StateThinking
	}
}

func (s State) String() string {
	return string(s)
}
