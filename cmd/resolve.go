package cmd

import (
	"serverconf/core/logger"
	"serverconf/core/server"

	"github.com/spf13/cobra"
)

// resolveCmd represents the resolve command
var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Resolve the server settings and print them",
	Long: `Resolves HOST, PORT and ADMIN_JWT_SECRET from the environment (falling back to
the .env file, then to built-in defaults) and prints the resulting settings.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logg, err := bootstrap(cmd)
		if err != nil {
			return err
		}
		defer func() { _ = logg.Sync() }()

		format, _ := cmd.Flags().GetString("format")
		redact, _ := cmd.Flags().GetBool("redact")

		settings := server.Resolve(cfg.Env().WithLogger(logg))
		logger.WithSettings(logg, settings).Debug("Resolved server settings")

		if redact {
			settings = settings.Redacted()
		}
		return server.Encode(cmd.OutOrStdout(), settings, server.Format(format))
	},
}

func init() {
	resolveCmd.Flags().StringP("format", "f", string(server.FormatJSON), "Output format (json, yaml, env)")
	resolveCmd.Flags().Bool("redact", false, "Mask the admin secret in the output")
	RootCmd.AddCommand(resolveCmd)
}
