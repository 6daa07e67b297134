package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"toolbox/internal/calculator"
)

// calc <key>...: press keys on a fresh calculator.
func calcCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "calc <key>...",
		Short: "Press calculator keys and print the display",
		Long: `Press calculator keys left to right and print the display.

Each argument is a key (0-9 . + - * / % = AC DEL toggleSign, or an alias
such as x, ÷, +/-) or a run of single-character keys, so "12.5" presses
1 2 . 5 and "2+3=" presses four keys.`,
		Example: "  tools calc 5 + 3 x 2 =\n  tools calc 2+3=",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var keys []calculator.Key
			for _, arg := range args {
				ks, err := calculator.Tokenize(arg)
				if err != nil {
					return err
				}
				keys = append(keys, ks...)
			}

			v := calculator.Render(renderContext(cmd), calculator.NewState().PressAll(keys...))

			out := cmd.OutOrStdout()
			if v.Expression != "" {
				fmt.Fprintln(out, v.Expression)
			}
			fmt.Fprintln(out, v.Display)
			return nil
		},
	}
}
