// Package commands implements the finance-tracker command line interface.
package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/finance-tracker/backend/internal/config"
	"github.com/finance-tracker/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// skipConfig is the annotation for commands that do not need the configuration.
const skipConfig = "skip-config"

type rootOptions struct {
	envFile string
	config  *config.Config
}

// NewRootCommand returns the finance-tracker command with all subcommands.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "finance-tracker",
		Short: "Personal finance tracker backend",
		Long: `finance-tracker records income and expenses, tracks budgets,
savings goals and investments, and serves them over a JSON API.

Configuration is read from the environment and an optional .env file.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if _, ok := cmd.Annotations[skipConfig]; ok {
				return nil
			}

			cfg, err := config.Load(opts.envFile)
			if err != nil {
				return err
			}

			if err := cfg.Validate(); err != nil {
				return err
			}

			// gin uses debug as the default mode, we use release for
			// security reasons unless configured otherwise
			gin.SetMode(cfg.GinMode)
			setupLogger(cfg, cmd.ErrOrStderr())

			opts.config = cfg
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.envFile, "env-file", ".env", "file to load environment variables from, skipped if it does not exist")

	cmd.AddCommand(
		newServeCommand(opts),
		newSeedCommand(opts),
		newSummaryCommand(opts),
		newVersionCommand(),
	)

	return cmd
}

// Execute runs the root command with the process arguments.
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

// setupLogger configures the global zerolog logger.
//
// Log format can be explicitly set. If it is not set, it defaults
// to human readable for development and JSON for release.
func setupLogger(cfg *config.Config, out io.Writer) {
	output := out
	if cfg.HumanLogs() {
		output = zerolog.ConsoleWriter{Out: out}
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if gin.IsDebugging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(output).With().Timestamp().Logger()
}

// connect creates the directory for the database and connects to it.
func connect(cfg *config.Config) error {
	err := os.MkdirAll(filepath.Dir(cfg.DBPath), os.ModePerm)
	if err != nil {
		return fmt.Errorf("could not create database directory: %w", err)
	}

	return models.Connect(cfg.DBPath)
}

// disconnect closes the database connection.
func disconnect() {
	sqlDB, err := models.DB.DB()
	if err != nil {
		return
	}

	if err := sqlDB.Close(); err != nil {
		log.Error().Err(err).Msg("could not close database")
	}
}
