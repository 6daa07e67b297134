package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"toolbox/internal/counter"
)

// count <action>...: apply actions to a counter starting at 0.
func countCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "count <action>...",
		Short: "Apply counter actions and print the value",
		Long: `Apply counter actions to a counter starting at 0 and print the value.

Actions are inc, dec, or a signed amount such as +5. Put -- before the first
negative amount so it is not read as a flag.`,
		Example: "  tools count inc inc +5\n  tools count -- -3 inc",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			actions := make([]counter.Action, 0, len(args))
			for _, arg := range args {
				a, err := counter.ParseAction(arg)
				if err != nil {
					return err
				}
				actions = append(actions, a)
			}

			s := counter.State{}
			for _, a := range actions {
				s = counter.Reduce(s, a)
			}

			fmt.Fprintln(cmd.OutOrStdout(), counter.Render(renderContext(cmd), s).Value)
			return nil
		},
	}
}
