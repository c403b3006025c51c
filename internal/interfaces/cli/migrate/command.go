package migrate

import (
	"fmt"

	"github.com/spf13/cobra"

	"dishpatch/internal/infrastructure/config"
	"dishpatch/internal/infrastructure/database"
	"dishpatch/internal/infrastructure/persistence/migrations"
	"dishpatch/internal/shared/logger"
)

var env string

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tools",
		Long:  `Apply the database schema for accounts, orders, and issues.`,
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	cmd.AddCommand(newUpCommand())

	return cmd
}

func newUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Run all migrations",
		Long:  `Create or update the account, order, and issue tables.`,
		RunE:  runUp,
	}
}

func runUp(cmd *cobra.Command, args []string) error {
	log, err := initEnv()
	if err != nil {
		return err
	}
	defer database.Close()

	gormDB := database.Get()

	if err := migrations.MigrateAccountTables(gormDB); err != nil {
		return fmt.Errorf("failed to migrate account tables: %w", err)
	}
	if err := migrations.MigrateOrderTables(gormDB); err != nil {
		return fmt.Errorf("failed to migrate order tables: %w", err)
	}
	if err := migrations.MigrateIssueTables(gormDB); err != nil {
		return fmt.Errorf("failed to migrate issue tables: %w", err)
	}

	log.Info("migrations applied")
	return nil
}

func initEnv() (logger.Interface, error) {
	cfg, err := config.Load(env)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(logger.Config{
		Level:      cfg.Logger.Level,
		OutputPath: cfg.Logger.OutputPath,
	}); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := database.Init(&cfg.Database); err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return logger.NewLogger(), nil
}
