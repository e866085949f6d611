package migrate

import (
	"fmt"

	"github.com/spf13/cobra"

	"modportal/internal/infrastructure/config"
	"modportal/internal/infrastructure/database"
	"modportal/internal/infrastructure/migration"
	"modportal/internal/shared/logger"
)

var (
	env   string
	steps int
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tools",
		Long:  `Run pending migrations, roll them back, or inspect the current schema version.`,
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	cmd.AddCommand(
		newUpCommand(),
		newDownCommand(),
		newStatusCommand(),
	)

	return cmd
}

func newUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Run all pending migrations",
		RunE:  runUp,
	}
}

func newDownCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "down",
		Short: "Rollback migrations",
		RunE:  runDown,
	}

	cmd.Flags().IntVarP(&steps, "steps", "n", 1, "Number of migrations to rollback")

	return cmd
}

func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		RunE:  runStatus,
	}
}

func setup() (*config.Config, error) {
	cfg, err := config.Load(env)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := database.Init(&cfg.Database); err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return cfg, nil
}

func runUp(cmd *cobra.Command, args []string) error {
	cfg, err := setup()
	if err != nil {
		return err
	}
	defer database.Close()

	manager := migration.NewManager(cfg.Database.Driver)
	return manager.Migrate(database.Get(), migration.AutoMigrateModels()...)
}

func runDown(cmd *cobra.Command, args []string) error {
	cfg, err := setup()
	if err != nil {
		return err
	}
	defer database.Close()

	if cfg.Database.Driver != "" && cfg.Database.Driver != "sqlite" && cfg.Database.Driver != "sqlite3" {
		return fmt.Errorf("rollback is only supported for the sqlite script migrations")
	}

	strategy := migration.NewGooseStrategy()
	if err := strategy.MigrateDown(database.Get(), steps); err != nil {
		return err
	}

	version, err := strategy.GetVersion(database.Get())
	if err != nil {
		return err
	}
	logger.Info("rollback completed", "version", version)
	return nil
}

func runStatus(cmd *cobra.Command, args []string) error {
	cfg, err := setup()
	if err != nil {
		return err
	}
	defer database.Close()

	if cfg.Database.Driver != "" && cfg.Database.Driver != "sqlite" && cfg.Database.Driver != "sqlite3" {
		logger.Info("status is only tracked for the sqlite script migrations")
		return nil
	}

	return migration.NewGooseStrategy().Status(database.Get())
}
