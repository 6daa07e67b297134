package calculator

import "math"

// Operator is a pending arithmetic operation.
type Operator string

const (
	Add      Operator = "+"
	Subtract Operator = "-"
	Multiply Operator = "*"
	Divide   Operator = "/"
	Modulo   Operator = "%"
)

// Symbol returns the glyph shown next to the pending operand.
func (o Operator) Symbol() string {
	switch o {
	case Multiply:
		return "×"
	case Divide:
		return "÷"
	default:
		return string(o)
	}
}

// Apply evaluates previous <op> current with plain float64 semantics.
// Division by zero yields ±Inf or NaN, and % keeps the sign of the dividend.
// An unknown operator yields current.
func Apply(previous, current float64, op Operator) float64 {
	switch op {
	case Add:
		return previous + current
	case Subtract:
		return previous - current
	case Multiply:
		return previous * current
	case Divide:
		return previous / current
	case Modulo:
		return math.Mod(previous, current)
	default:
		return current
	}
}
