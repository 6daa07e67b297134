package counter

import (
	"context"

	"toolbox/internal/theme"
)

// View is the rendered counter.
type View struct {
	Value int         `json:"value"`
	Theme theme.Theme `json:"theme"`
}

func Render(ctx context.Context, s State) View {
	return View{Value: s.Value, Theme: theme.FromContext(ctx)}
}
