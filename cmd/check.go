package cmd

import (
	"errors"
	"fmt"

	"serverconf/core/logger"
	"serverconf/core/server"

	"github.com/spf13/cobra"
)

var errPlaceholderSecret = errors.New("ADMIN_JWT_SECRET is the committed placeholder")

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the resolved server settings",
	Long: `Resolves the server settings and validates them: the port must be in 1-65535
and the host and admin secret must be non-empty. Using the placeholder admin
secret is reported as a warning, or as an error with --strict.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logg, err := bootstrap(cmd)
		if err != nil {
			return err
		}
		defer func() { _ = logg.Sync() }()

		strict, _ := cmd.Flags().GetBool("strict")

		settings := server.Resolve(cfg.Env().WithLogger(logg))
		l := logger.WithSettings(logg, settings)

		if err := settings.Validate(); err != nil {
			return fmt.Errorf("invalid server settings: %w", err)
		}

		if settings.UsesDefaultSecret() {
			if strict {
				return errPlaceholderSecret
			}
			l.Warn("Placeholder admin secret in use, set ADMIN_JWT_SECRET outside source control")
		}

		l.Info("Server settings are valid")
		fmt.Fprintf(cmd.OutOrStdout(), "ok %s\n", settings.Address())
		return nil
	},
}

func init() {
	checkCmd.Flags().Bool("strict", false, "Fail when the placeholder admin secret is in use")
	RootCmd.AddCommand(checkCmd)
}
