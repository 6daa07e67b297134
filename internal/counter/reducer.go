package counter

import (
	"fmt"
	"sync"
)

// ActionType names a counter action.
type ActionType string

const (
	Increment         ActionType = "increment"
	Decrement         ActionType = "decrement"
	IncrementByAmount ActionType = "incrementByAmount"
)

// Action is dispatched to the reducer. Amount is only read by
// IncrementByAmount.
type Action struct {
	Type   ActionType `json:"type"`
	Amount int        `json:"amount,omitempty"`
}

// State is the counter's whole state.
type State struct {
	Value int `json:"value"`
}

// Validate reports whether a names a known action.
func (a Action) Validate() error {
	switch a.Type {
	case Increment, Decrement, IncrementByAmount:
		return nil
	}
	return fmt.Errorf("unknown action %q", a.Type)
}

// Reduce returns the state after a. Unknown actions leave s unchanged.
func Reduce(s State, a Action) State {
	switch a.Type {
	case Increment:
		s.Value++
	case Decrement:
		s.Value--
	case IncrementByAmount:
		s.Value += a.Amount
	}
	return s
}

// ByAmount builds an IncrementByAmount action.
func ByAmount(n int) Action {
	return Action{Type: IncrementByAmount, Amount: n}
}

// Store holds one counter and applies dispatched actions in order.
type Store struct {
	mu    sync.Mutex
	state State
}

func NewStore() *Store {
	return &Store{}
}

// Dispatch applies actions atomically and returns the resulting state.
func (s *Store) Dispatch(actions ...Action) State {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, a := range actions {
		s.state = Reduce(s.state, a)
	}
	return s.state
}

func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}
