package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"toolbox/internal/currency"
)

func currenciesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "currencies",
		Short: "List the supported currencies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, c := range currency.All() {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", c.Flag, c.Code, c.Name)
			}
			return tw.Flush()
		},
	}
}
