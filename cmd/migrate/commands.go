package main

import (
	"fmt"

	"trivia-api/internal/config"
	"trivia-api/internal/database"
	"trivia-api/internal/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type migratorFactory func(cfg config.DBConfig) (database.Migrator, error)

// App carries what every migrate subcommand needs.
type App struct {
	configPath string
	open       migratorFactory
	migrator   database.Migrator
}

func newRootCmd(open migratorFactory) *cobra.Command {
	app := &App{open: open}

	rootCmd := &cobra.Command{
		Use:               "migrate",
		Short:             "manage the trivia database schema",
		SilenceUsage:      true,
		PersistentPreRunE: app.setup,
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return app.Close()
		},
	}
	rootCmd.PersistentFlags().StringVar(&app.configPath, "config", "", "directory containing config.yaml")

	upCmd := &cobra.Command{
		Use:   "up",
		Short: "apply all pending migrations",
		Args:  cobra.NoArgs,
		RunE:  app.Up,
	}
	downCmd := &cobra.Command{
		Use:   "down",
		Short: "roll back the latest migration",
		Args:  cobra.NoArgs,
		RunE:  app.Down,
	}
	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "print the applied schema version",
		Args:  cobra.NoArgs,
		RunE:  app.Version,
	}

	rootCmd.AddCommand(upCmd, downCmd, versionCmd)
	return rootCmd
}

func (app *App) setup(cmd *cobra.Command, args []string) error {
	var paths []string
	if app.configPath != "" {
		paths = append(paths, app.configPath)
	}
	cfg, err := config.LoadConfig(paths...)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := logger.Initialize(cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	m, err := app.open(cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to open migrator: %w", err)
	}
	app.migrator = m
	return nil
}

func (app *App) Close() error {
	defer logger.Sync()
	if app.migrator == nil {
		return nil
	}
	err := app.migrator.Close()
	app.migrator = nil
	return err
}

func (app *App) Up(cmd *cobra.Command, args []string) error {
	if err := app.migrator.Up(); err != nil {
		return fmt.Errorf("migrate up: %w", err)
	}
	return app.printVersion(cmd)
}

func (app *App) Down(cmd *cobra.Command, args []string) error {
	if err := app.migrator.Down(); err != nil {
		return fmt.Errorf("migrate down: %w", err)
	}
	return app.printVersion(cmd)
}

func (app *App) Version(cmd *cobra.Command, args []string) error {
	return app.printVersion(cmd)
}

func (app *App) printVersion(cmd *cobra.Command) error {
	version, dirty, err := app.migrator.Version()
	if err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}
	logger.Get().Info("Schema version", zap.Uint("version", version), zap.Bool("dirty", dirty))
	fmt.Fprintf(cmd.OutOrStdout(), "version %d (dirty: %t)\n", version, dirty)
	return nil
}
