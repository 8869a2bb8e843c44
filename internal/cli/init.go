package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/lister/internal/config"
	"github.com/example/lister/internal/db"
)

// InitCmd returns the init command
func InitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize the lister database",
		Long:  `Initialize the lister database (~/.lister/lister.db by default) and write a config file if none exists.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := appFrom(cmd)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			fmt.Fprintf(out, "Initialized lister database at %s\n", a.Config.DBPath)

			path, err := config.Path()
			if err != nil {
				return err
			}
			if _, err := os.Stat(path); os.IsNotExist(err) {
				if err := config.SaveConfig(path, a.Config); err != nil {
					return err
				}
				fmt.Fprintf(out, "✓ Config written to %s\n", path)
			}

			seed, _ := cmd.Flags().GetBool("seed")
			if seed {
				if err := db.SeedFixtures(a.DB); err != nil {
					return fmt.Errorf("failed to seed database: %w", err)
				}
				fmt.Fprintln(out, "✓ Demo records added")
			}

			fmt.Fprintln(out, "✓ Database initialized successfully")
			fmt.Fprintln(out)
			fmt.Fprintln(out, "Next steps:")
			fmt.Fprintln(out, "  lister person add --name Ana --apellido Gomez --ciudad Lima")
			fmt.Fprintln(out, "  lister serve")

			return nil
		},
	}

	cmd.Flags().Bool("seed", false, "Insert demo people and products")
	return cmd
}
