package calculator

import (
	"context"

	"toolbox/internal/numeric"
	"toolbox/internal/theme"
)

// displayWidth is how many trailing characters of the display are shown.
const displayWidth = 10

// View is the rendered calculator.
type View struct {
	Display         string      `json:"display"`
	Expression      string      `json:"expression,omitempty"`
	AwaitingOperand bool        `json:"awaiting_operand"`
	Theme           theme.Theme `json:"theme"`
}

// Render builds the view for s using the theme carried by ctx.
func Render(ctx context.Context, s State) View {
	v := View{
		Display:         TruncateDisplay(s.Display),
		AwaitingOperand: s.AwaitingOperand,
		Theme:           theme.FromContext(ctx),
	}
	if s.Pending != nil {
		v.Expression = numeric.Format(s.Pending.Previous) + " " + s.Pending.Op.Symbol()
	}
	return v
}

// TruncateDisplay keeps the last displayWidth characters of display.
func TruncateDisplay(display string) string {
	r := []rune(display)
	if len(r) > displayWidth {
		return string(r[len(r)-displayWidth:])
	}
	return display
}
