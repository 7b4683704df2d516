package migrate

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"litrevu/internal/infrastructure/config"
	"litrevu/internal/infrastructure/database"
	"litrevu/internal/infrastructure/migration"
	"litrevu/internal/shared/logger"
)

var (
	env   string
	steps int
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tools",
		Long:  `Run, roll back and inspect database schema migrations.`,
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
		Short: "Show the current schema version",
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

func gooseStrategy(cfg *config.Config) (*migration.GooseStrategy, error) {
	scriptsPath, err := filepath.Abs("./internal/infrastructure/migration/scripts")
	if err != nil {
		return nil, fmt.Errorf("failed to resolve scripts path: %w", err)
	}

	strategy := migration.NewGooseStrategy(migration.DialectForDriver(cfg.Database.Driver), scriptsPath)
	goose, ok := strategy.(*migration.GooseStrategy)
	if !ok {
		return nil, fmt.Errorf("unexpected strategy type %T", strategy)
	}
	return goose, nil
}

func runUp(cmd *cobra.Command, args []string) error {
	cfg, err := setup()
	if err != nil {
		return err
	}
	defer database.Close()

	strategy, err := gooseStrategy(cfg)
	if err != nil {
		return err
	}

	manager := migration.NewManagerWithStrategy(strategy)
	if err := manager.Migrate(database.Get()); err != nil {
		return err
	}

	fmt.Println("migrations applied")
	return nil
}

func runDown(cmd *cobra.Command, args []string) error {
	cfg, err := setup()
	if err != nil {
		return err
	}
	defer database.Close()

	strategy, err := gooseStrategy(cfg)
	if err != nil {
		return err
	}

	if err := strategy.MigrateDown(database.Get(), steps); err != nil {
		return err
	}

	fmt.Printf("rolled back %d migration(s)\n", steps)
	return nil
}

func runStatus(cmd *cobra.Command, args []string) error {
	cfg, err := setup()
	if err != nil {
		return err
	}
	defer database.Close()

	strategy, err := gooseStrategy(cfg)
	if err != nil {
		return err
	}

	version, err := strategy.GetVersion(database.Get())
	if err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}

	fmt.Printf("current schema version: %d\n", version)
	return nil
}
