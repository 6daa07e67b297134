package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"toolbox/internal/currency"
)

// convert <amount> <from> <to>: one conversion against the exchange-rate API.
func convertCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "convert <amount> <from> <to>",
		Short:   "Convert an amount between two currencies",
		Example: "  tools convert 100 USD INR",
		Args:    cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := currency.ParseCode(args[1])
			if err != nil {
				return err
			}
			to, err := currency.ParseCode(args[2])
			if err != nil {
				return err
			}

			snap := currency.Snapshot{From: from, To: to, Amount: args[0]}
			req := currency.Request{From: from, To: to, Amount: args[0]}

			res, err := currency.Track(cmd.Context(), "cli", func(ctx context.Context) (currency.Result, error) {
				return rater.Convert(ctx, req)
			})
			if err != nil {
				snap.Error = currency.Message(err)
			} else {
				snap.Result = &res
			}

			v := currency.Render(renderContext(cmd), snap)
			out := cmd.OutOrStdout()
			if v.Error != "" {
				return errors.New(v.Error)
			}
			fmt.Fprintln(out, v.Result.Summary)
			fmt.Fprintln(out, v.Result.Converted)
			if v.Result.Rate != "" {
				fmt.Fprintln(out, v.Result.Rate)
			}
			return nil
		},
	}
}
