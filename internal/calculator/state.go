package calculator

import (
	"strings"
	"sync"

	"toolbox/internal/numeric"
)

// Pending is an operand waiting for its right-hand side.
type Pending struct {
	Previous float64
	Op       Operator
}

// State is the calculator's whole session. A nil Pending means no operation
// is waiting; otherwise both the stored operand and the operator are set.
type State struct {
	Display         string
	Pending         *Pending
	AwaitingOperand bool
}

// NewState returns the cleared calculator.
func NewState() State {
	return State{Display: "0"}
}

// Press applies one key and returns the next state. It never fails:
// unparseable displays turn into NaN.
func (s State) Press(k Key) State {
	switch k.Kind() {
	case KindDigit:
		return s.digit(string(k))
	case KindDecimal:
		return s.decimal()
	case KindOperator:
		return s.operator(Operator(k))
	case KindEquals:
		return s.equals()
	case KindClear:
		return NewState()
	case KindDelete:
		return s.deleteLast()
	case KindSign:
		s.Display = numeric.Format(numeric.Parse(s.Display) * -1)
		return s
	default:
		return s
	}
}

// PressAll applies keys in order.
func (s State) PressAll(keys ...Key) State {
	for _, k := range keys {
		s = s.Press(k)
	}
	return s
}

func (s State) digit(d string) State {
	switch {
	case s.AwaitingOperand:
		s.Display = d
		s.AwaitingOperand = false
	case s.Display == "0":
		s.Display = d
	default:
		s.Display += d
	}
	return s
}

func (s State) decimal() State {
	switch {
	case s.AwaitingOperand:
		s.Display = "0."
		s.AwaitingOperand = false
	case !strings.Contains(s.Display, "."):
		s.Display += "."
	}
	return s
}

func (s State) operator(op Operator) State {
	current := numeric.Parse(s.Display)

	if s.Pending == nil {
		s.Pending = &Pending{Previous: current, Op: op}
	} else {
		result := Apply(s.Pending.Previous, current, s.Pending.Op)
		s.Pending = &Pending{Previous: result, Op: op}
		s.Display = numeric.Format(result)
	}

	s.AwaitingOperand = true
	return s
}

func (s State) equals() State {
	if s.Pending == nil {
		return s
	}

	result := Apply(s.Pending.Previous, numeric.Parse(s.Display), s.Pending.Op)
	s.Display = numeric.Format(result)
	s.Pending = nil
	s.AwaitingOperand = true
	return s
}

func (s State) deleteLast() State {
	r := []rune(s.Display)
	if len(r) > 1 {
		s.Display = string(r[:len(r)-1])
	} else {
		s.Display = "0"
	}
	return s
}

// Session is a calculator owned by one workspace.
type Session struct {
	mu    sync.Mutex
	state State
}

func NewSession() *Session {
	return &Session{state: NewState()}
}

// Press applies keys atomically and returns the resulting state.
func (s *Session) Press(keys ...Key) State {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = s.state.PressAll(keys...)
	return s.state
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}
