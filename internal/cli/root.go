// Package cli defines the cobra command tree for lister.
package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	cliadapter "github.com/example/lister/internal/adapters/cli"
	"github.com/example/lister/internal/config"
	"github.com/example/lister/internal/logging"
	"github.com/example/lister/internal/version"
	"github.com/example/lister/internal/wire"
)

type sessionKey struct{}

// session carries the App opened by the root pre-run hook so Execute can
// close it whether or not the command failed.
type session struct {
	app *wire.App
}

// Execute runs root and releases the App afterwards.
func Execute(ctx context.Context, root *cobra.Command) error {
	s := &session{}
	err := root.ExecuteContext(context.WithValue(ctx, sessionKey{}, s))
	if s.app != nil {
		_ = s.app.Logger.Sync()
		if cerr := s.app.Close(); err == nil {
			err = cerr
		}
	}
	return err
}

// RootCmd returns the lister root command with every subcommand attached.
func RootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:     "lister",
		Short:   "lister - people and shopping lists",
		Version: version.String(),
		Long: `lister keeps two local lists in one SQLite database:
people (name, apellido, ciudad) and a shopping list with a budget.`,
		SilenceUsage:      true,
		PersistentPreRunE: openApp,
	}

	root.PersistentFlags().String("db", "", "Database path (default: ~/.lister/lister.db)")
	root.PersistentFlags().String("format", cliadapter.FormatText, "Output format (text, json)")
	root.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")

	root.AddCommand(InitCmd())
	root.AddCommand(PersonCmd())
	root.AddCommand(ProductCmd())
	root.AddCommand(BudgetCmd())
	root.AddCommand(ServeCmd())

	return root
}

// openApp resolves configuration, builds the logger and opens the App.
func openApp(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	if !cliadapter.IsValidFormat(format) {
		return fmt.Errorf("invalid format %q: must be one of %v", format, cliadapter.ValidFormats)
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("db") {
		cfg.DBPath, _ = cmd.Flags().GetString("db")
	}
	verbose, _ := cmd.Flags().GetBool("verbose")

	logger, err := logging.New(logging.Options{
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
		Verbose: verbose,
	})
	if err != nil {
		return err
	}

	a, err := wire.New(cfg, logger)
	if err != nil {
		_ = logger.Sync()
		return err
	}

	s, ok := cmd.Context().Value(sessionKey{}).(*session)
	if !ok {
		s = &session{}
		cmd.SetContext(context.WithValue(cmd.Context(), sessionKey{}, s))
	}
	s.app = a
	return nil
}

func appFrom(cmd *cobra.Command) (*wire.App, error) {
	s, ok := cmd.Context().Value(sessionKey{}).(*session)
	if !ok || s.app == nil {
		return nil, errors.New("application not initialized")
	}
	return s.app, nil
}

func outputFormat(cmd *cobra.Command) string {
	format, _ := cmd.Flags().GetString("format")
	return format
}
