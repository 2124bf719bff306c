package migrate

import (
	"fmt"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"leafsmp/internal/infrastructure/config"
	"leafsmp/internal/infrastructure/database"
	"leafsmp/internal/infrastructure/migration"
	"leafsmp/internal/shared/logger"
)

var steps int

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tools",
		Long:  `Manage the sqlite/mysql schema: apply pending migrations, roll back, and inspect status.`,
	}

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

type migrateEnv struct {
	driver  string
	db      *gorm.DB
	manager *migration.Manager
	log     logger.Interface
}

func initEnv() (*migrateEnv, error) {
	cfg, err := config.Load("")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger, cfg.Server.Mode); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	log := logger.NewLogger()

	if !cfg.Storage.UsesDatabase() {
		return nil, fmt.Errorf("storage driver %q has no schema to migrate", cfg.Storage.Driver)
	}

	if err := database.Init(cfg.Storage.Driver, &cfg.Database); err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	manager, err := migration.NewManager(cfg.Storage.Driver, log)
	if err != nil {
		_ = database.Close()
		return nil, fmt.Errorf("failed to create migration manager: %w", err)
	}

	return &migrateEnv{
		driver:  cfg.Storage.Driver,
		db:      database.Get(),
		manager: manager,
		log:     log,
	}, nil
}

func runUp(cmd *cobra.Command, args []string) error {
	e, err := initEnv()
	if err != nil {
		return err
	}
	defer database.Close()

	e.log.Infow("running up migrations", "driver", e.driver)

	if err := e.manager.Migrate(e.db); err != nil {
		return err
	}

	e.log.Infow("migrations completed successfully")
	return nil
}

func runDown(cmd *cobra.Command, args []string) error {
	e, err := initEnv()
	if err != nil {
		return err
	}
	defer database.Close()

	e.log.Infow("running down migrations", "driver", e.driver, "steps", steps)

	if err := e.manager.Rollback(e.db, steps); err != nil {
		e.log.Errorw("down migration failed", "error", err)
		return fmt.Errorf("down migration failed: %w", err)
	}

	e.log.Infow("down migration completed successfully")
	return nil
}

func runStatus(cmd *cobra.Command, args []string) error {
	e, err := initEnv()
	if err != nil {
		return err
	}
	defer database.Close()

	version, err := e.manager.Version(e.db)
	if err != nil {
		return fmt.Errorf("failed to get migration version: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "\nMigration Status:\n")
	fmt.Fprintf(cmd.OutOrStdout(), "  Driver:          %s\n", e.driver)
	fmt.Fprintf(cmd.OutOrStdout(), "  Current Version: %d\n", version)

	if err := e.manager.Status(e.db); err != nil {
		return fmt.Errorf("failed to get detailed status: %w", err)
	}

	return nil
}
