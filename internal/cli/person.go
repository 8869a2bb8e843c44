package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/lister/internal/core/form"
	"github.com/example/lister/internal/ports/primary"
)

// PersonCmd returns the person command
func PersonCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "person",
		Aliases: []string{"personas"},
		Short:   "Manage the people list",
		Long:    "Add, edit, show, list and delete people (name, apellido, ciudad)",
	}

	cmd.AddCommand(personAddCmd())
	cmd.AddCommand(personUpdateCmd())
	cmd.AddCommand(personShowCmd())
	cmd.AddCommand(personListCmd())
	cmd.AddCommand(personDeleteCmd())
	return cmd
}

func personFieldFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("name", "n", "", "Name")
	cmd.Flags().StringP("apellido", "a", "", "Apellido (surname)")
	cmd.Flags().StringP("ciudad", "c", "", "Ciudad (city)")
}

func personAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a person",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := appFrom(cmd)
			if err != nil {
				return err
			}

			name, _ := cmd.Flags().GetString("name")
			apellido, _ := cmd.Flags().GetString("apellido")
			ciudad, _ := cmd.Flags().GetString("ciudad")

			return a.PersonAdapter(cmd.OutOrStdout(), outputFormat(cmd)).Add(cmd.Context(), primary.PersonFields{
				Name:    name,
				Surname: apellido,
				City:    ciudad,
			})
		},
	}
	personFieldFlags(cmd)
	return cmd
}

func personUpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update [id]",
		Short: "Edit a person; fields not given keep their value",
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
			return a.PersonAdapter(cmd.OutOrStdout(), outputFormat(cmd)).Update(cmd.Context(), id, func(f *primary.PersonFields) {
				if flags.Changed("name") {
					f.Name, _ = flags.GetString("name")
				}
				if flags.Changed("apellido") {
					f.Surname, _ = flags.GetString("apellido")
				}
				if flags.Changed("ciudad") {
					f.City, _ = flags.GetString("ciudad")
				}
			})
		},
	}
	personFieldFlags(cmd)
	return cmd
}

func personShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [id]",
		Short: "Show a person",
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
			return a.PersonAdapter(cmd.OutOrStdout(), outputFormat(cmd)).Show(cmd.Context(), id)
		},
	}
}

func personListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List people",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := appFrom(cmd)
			if err != nil {
				return err
			}
			return a.PersonAdapter(cmd.OutOrStdout(), outputFormat(cmd)).List(cmd.Context())
		},
	}
}

func personDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete [id]",
		Short: "Delete a person",
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
			return a.PersonAdapter(cmd.OutOrStdout(), outputFormat(cmd)).Delete(cmd.Context(), id)
		},
	}
}
