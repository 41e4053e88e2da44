// Package commands implements the finance-calculators command line.
package commands

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/iwvelando/finance-calculators/internal/config"
	"github.com/iwvelando/finance-calculators/internal/logging"
	"github.com/iwvelando/finance-calculators/pkg/constants"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// app is the state shared by every subcommand once the root pre-run has
// loaded configuration and built the logger.
type app struct {
	version    string
	configFile string
	logLevel   string
	envFile    string

	conf   *config.Configuration
	logger *zap.Logger
}

// NewRootCommand builds the command tree.
func NewRootCommand(version string) *cobra.Command {
	a := &app{version: version}

	rootCmd := &cobra.Command{
		Use:   "finance-calculators",
		Short: "Financial calculators website and command line",
		Long: `finance-calculators serves a website of financial calculators with
SEO metadata, a sitemap and feeds, and evaluates the same formulas from the
command line.

Examples:
  finance-calculators serve --config config.yaml
  finance-calculators list
  finance-calculators eval capital-gains-tax basis=1000 salePrice=1500
  finance-calculators export --dir public`,
		Version:           version,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.configFile, "config", constants.DefaultConfigFile, "path to configuration file")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level override (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&a.envFile, "env-file", constants.DefaultEnvFile, "dotenv file loaded before configuration")

	rootCmd.AddCommand(
		newServeCommand(a),
		newListCommand(a),
		newEvalCommand(a),
		newExportCommand(a),
	)

	return rootCmd
}

// Execute runs the root command.
func Execute(version string) error {
	return NewRootCommand(version).Execute()
}

func (a *app) setup(cmd *cobra.Command, args []string) error {
	if a.envFile != "" {
		if err := godotenv.Load(a.envFile); err != nil {
			// The default file is optional; an explicit one is not.
			if !errors.Is(err, fs.ErrNotExist) || cmd.Flags().Changed("env-file") {
				return fmt.Errorf("failed to load env file %s: %w", a.envFile, err)
			}
		}
	}

	conf, err := config.LoadConfiguration(a.configFile)
	if err != nil {
		return fmt.Errorf("failed to load configuration at %s: %w", a.configFile, err)
	}
	if err := conf.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger, err := logging.New(conf.Logging, a.logLevel)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	a.conf = conf
	a.logger = logger
	return nil
}
