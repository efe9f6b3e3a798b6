// Package cli provides the grimoire command-line interface.
package cli

import (
	"context"
	"fmt"
	"os"

	"grimoire/browser/internal/config"
	"grimoire/browser/internal/container"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Version is set at build time.
var Version = "0.1.0"

// NewRootCmd creates the root command with every subcommand attached.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "grimoire",
		Short: "Browse the Grimoire wargame rules API",
		Long: `grimoire serves a web browser over the Grimoire REST API and offers the
same look-ups from the terminal: units, factions, catalogues and search.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./config.yaml)")
	rootCmd.PersistentFlags().String("api-url", "", "Grimoire API base URL")
	rootCmd.PersistentFlags().String("log-level", "", "Log level (debug|info|warn|error)")

	rootCmd.AddCommand(newServeCommand())
	rootCmd.AddCommand(newCataloguesCommand())
	rootCmd.AddCommand(newUnitsCommand())
	rootCmd.AddCommand(newUnitCommand())
	rootCmd.AddCommand(newFactionsCommand())
	rootCmd.AddCommand(newSearchCommand())
	rootCmd.AddCommand(newGameSystemCommand())
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}

// Execute runs the root command with ctx.
func Execute(ctx context.Context) error {
	if err := NewRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}

// withContainer builds the application from the command's flags and any
// overrides, then hands it to run. The container is closed afterwards.
func withContainer(cmd *cobra.Command, run func(ctx context.Context, app *container.Container) error, overrides ...func(cfg *config.Config)) error {
	cfgFile, _ := cmd.Flags().GetString("config")

	cfg, err := config.Load(cfgFile, cmd.Flags())
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	for _, override := range overrides {
		override(cfg)
	}
	setupLogging(cfg.Log)

	app, err := container.New(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := app.Close(); err != nil {
			log.Warnf("⚠️ Failed to close container: %v", err)
		}
	}()

	return run(cmd.Context(), app)
}

func setupLogging(cfg config.LogConfig) {
	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		log.Warnf("⚠️ Unknown log level %q, using info", cfg.Level)
		level = log.InfoLevel
	}
	log.SetLevel(level)

	if cfg.Format == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
}
