package cmd

import (
	"fmt"

	"serverconf/core/server"

	"github.com/spf13/cobra"
)

// secretCmd represents the secret command
var secretCmd = &cobra.Command{
	Use:   "secret",
	Short: "Generate a new admin JWT secret",
	Long:  `Prints a freshly generated ADMIN_JWT_SECRET assignment suitable for a .env file.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "%s=%s\n", server.EnvAdminJWTSecret, server.NewSecret())
	},
}

func init() {
	RootCmd.AddCommand(secretCmd)
}
