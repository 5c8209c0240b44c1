package cmd

import (
	"fmt"
	"os"

	"serverconf/core/config"
	"serverconf/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "serverconf",
	Short: "Server settings resolver",
	Long: `serverconf resolves the server binding and admin authentication settings
(HOST, PORT, ADMIN_JWT_SECRET) from the environment and an optional .env file.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// newLogger builds the command logger; tests replace it to capture entries.
var newLogger = logger.New

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console format with the development preset (ISO8601 timestamps) for CLI errors
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

// bootstrap loads the tool configuration and builds its logger, applying
// command line overrides on top of the environment.
func bootstrap(cmd *cobra.Command) (*config.Config, *zap.Logger, error) {
	envFile, _ := cmd.Flags().GetString("env-file")

	cfg, err := config.LoadConfig(envFile)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	if cmd.Flags().Changed("log-level") {
		cfg.Log.Level, _ = cmd.Flags().GetString("log-level")
	}
	if cmd.Flags().Changed("log-format") {
		cfg.Log.Format, _ = cmd.Flags().GetString("log-format")
	}

	logg, err := newLogger(&cfg.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return cfg, logg, nil
}

func init() {
	RootCmd.PersistentFlags().String("env-file", ".env", "Path to an optional .env file")
	RootCmd.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error); overrides LOG_LEVEL")
	RootCmd.PersistentFlags().String("log-format", "console", "Log format (console, json); overrides LOG_FORMAT")
}
