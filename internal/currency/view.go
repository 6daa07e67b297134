package currency

import (
	"context"
	"fmt"

	"toolbox/internal/numeric"
	"toolbox/internal/theme"
)

// View is the rendered converter.
type View struct {
	From    Currency    `json:"from"`
	To      Currency    `json:"to"`
	Amount  string      `json:"amount"`
	Loading bool        `json:"loading"`
	Error   string      `json:"error,omitempty"`
	Result  *ResultView `json:"result,omitempty"`
	Theme   theme.Theme `json:"theme"`
}

// ResultView is the result panel, shown only when there is a result and no
// error.
type ResultView struct {
	Summary   string `json:"summary"`
	Converted string `json:"converted"`
	Rate      string `json:"rate,omitempty"`
}

// Render builds the view for s using the theme carried by ctx. Labels come
// from the current selection, not from the request that produced the result.
func Render(ctx context.Context, s Snapshot) View {
	from := Describe(s.From)
	to := Describe(s.To)

	v := View{
		From:    from,
		To:      to,
		Amount:  s.Amount,
		Loading: s.Loading,
		Error:   s.Error,
		Theme:   theme.FromContext(ctx),
	}

	if s.Result != nil && s.Error == "" {
		v.Result = &ResultView{
			Summary:   fmt.Sprintf("%s %s (%s) equals", s.Amount, from.Code, from.Name),
			Converted: fmt.Sprintf("%s %s", numeric.ToFixed(s.Result.Result, 2), to.Code),
		}
		if s.Result.Rate != 0 {
			v.Result.Rate = fmt.Sprintf("1 %s = %s %s", from.Code, numeric.ToFixed(s.Result.Rate, 4), to.Code)
		}
	}

	return v
}
