package cli

import (
	"github.com/spf13/cobra"
)

// BudgetCmd returns the budget command
func BudgetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "budget",
		Short: "Manage the shopping budget",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "set [amount]",
		Short: "Set the budget; no amount means 0",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := appFrom(cmd)
			if err != nil {
				return err
			}
			raw := ""
			if len(args) == 1 {
				raw = args[0]
			}
			return a.ProductAdapter(cmd.OutOrStdout(), outputFormat(cmd)).SetBudget(cmd.Context(), raw)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show budget, spent and remaining",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := appFrom(cmd)
			if err != nil {
				return err
			}
			return a.ProductAdapter(cmd.OutOrStdout(), outputFormat(cmd)).Budget(cmd.Context())
		},
	})

	return cmd
}
