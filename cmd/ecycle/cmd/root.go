// Package cmd implements the CLI commands for the ecycle server.
package cmd

import (
	"context"
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/donaldgifford/ecycle/internal/config"
	"github.com/donaldgifford/ecycle/pkg/logger"
)

var (
	cfgFile string
	envFile string
)

var rootCmd = &cobra.Command{
	Use:   "ecycle",
	Short: "E-waste valuation and pickup service",
	Long: "An API service that values e-waste devices, schedules individual and bulk pickups, " +
		"reconciles bulk inventories from forms and spreadsheets, and issues disposal certificates.",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file loaded before the config")
	rootCmd.AddCommand(versionCommand())
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.ExecuteContext(context.Background())
}

// loadConfig loads the dotenv file, if present, then the YAML config, and
// builds the logger it describes.
func loadConfig() (*config.Config, *slog.Logger, error) {
	envErr := godotenv.Load(envFile)

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, nil, err
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	if envErr != nil {
		log.Debug("no dotenv file loaded", "path", envFile, "error", envErr)
	}
	return cfg, log, nil
}
