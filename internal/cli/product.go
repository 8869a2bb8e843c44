package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/lister/internal/core/form"
	"github.com/example/lister/internal/ports/primary"
)

// ProductCmd returns the product command
func ProductCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "product",
		Aliases: []string{"productos"},
		Short:   "Manage the shopping list",
		Long:    "Add, edit, show, list, delete and check off products; the remaining budget is shown after every change",
	}

	cmd.AddCommand(productAddCmd())
	cmd.AddCommand(productUpdateCmd())
	cmd.AddCommand(productShowCmd())
	cmd.AddCommand(productListCmd())
	cmd.AddCommand(productDeleteCmd())
	cmd.AddCommand(productPurchasedCmd("purchase", "Mark a product purchased", true))
	cmd.AddCommand(productPurchasedCmd("unpurchase", "Mark a product not purchased", false))
	return cmd
}

// Numeric flags are strings so that malformed input coerces to 0 instead
// of failing flag parsing.
func productFieldFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("name", "n", "", "Product name")
	cmd.Flags().StringP("brand", "b", "", "Brand")
	cmd.Flags().StringP("quantity", "q", "", "Quantity")
	cmd.Flags().StringP("price", "p", "", "Unit price")
	cmd.Flags().Bool("purchased", false, "Already purchased")
}

func productAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a product",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := appFrom(cmd)
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			name, _ := flags.GetString("name")
			brand, _ := flags.GetString("brand")
			quantity, _ := flags.GetString("quantity")
			price, _ := flags.GetString("price")
			purchased, _ := flags.GetBool("purchased")

			return a.ProductAdapter(cmd.OutOrStdout(), outputFormat(cmd)).Add(cmd.Context(), primary.ProductFields{
				Name:      name,
				Brand:     brand,
				Quantity:  form.Number(quantity),
				UnitPrice: form.Number(price),
				Purchased: purchased,
			})
		},
	}
	productFieldFlags(cmd)
	return cmd
}

func productUpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update [id]",
		Short: "Edit a product; the subtotal computed at creation is kept",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := appFrom(cmd)
			if err != nil {
				return err
			}
			id, err := form.ParseID(args[0])
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			return a.ProductAdapter(cmd.OutOrStdout(), outputFormat(cmd)).Update(cmd.Context(), id, func(f *primary.ProductFields) {
				if flags.Changed("name") {
					f.Name, _ = flags.GetString("name")
				}
				if flags.Changed("brand") {
					f.Brand, _ = flags.GetString("brand")
				}
				if flags.Changed("quantity") {
					raw, _ := flags.GetString("quantity")
					f.Quantity = form.Number(raw)
				}
				if flags.Changed("price") {
					raw, _ := flags.GetString("price")
					f.UnitPrice = form.Number(raw)
				}
				if flags.Changed("purchased") {
					f.Purchased, _ = flags.GetBool("purchased")
				}
			})
		},
	}
	productFieldFlags(cmd)
	return cmd
}

func productShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [id]",
		Short: "Show a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := appFrom(cmd)
			if err != nil {
				return err
			}
			id, err := form.ParseID(args[0])
			if err != nil {
				return err
			}
			return a.ProductAdapter(cmd.OutOrStdout(), outputFormat(cmd)).Show(cmd.Context(), id)
		},
	}
}

func productListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List products and the remaining budget",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := appFrom(cmd)
			if err != nil {
				return err
			}
			return a.ProductAdapter(cmd.OutOrStdout(), outputFormat(cmd)).List(cmd.Context())
		},
	}
}

func productDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete [id]",
		Short: "Delete a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := appFrom(cmd)
			if err != nil {
				return err
			}
			id, err := form.ParseID(args[0])
			if err != nil {
				return err
			}
			return a.ProductAdapter(cmd.OutOrStdout(), outputFormat(cmd)).Delete(cmd.Context(), id)
		},
	}
}

func productPurchasedCmd(use, short string, purchased bool) *cobra.Command {
	return &cobra.Command{
		Use:   use + " [id]",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := appFrom(cmd)
			if err != nil {
				return err
			}
			id, err := form.ParseID(args[0])
			if err != nil {
				return err
			}
			return a.ProductAdapter(cmd.OutOrStdout(), outputFormat(cmd)).SetPurchased(cmd.Context(), id, purchased)
		},
	}
}
