package main

import (
	"os"

	"cardbot/internal/config"
	"cardbot/internal/database"
	"cardbot/internal/logger"
	"cardbot/internal/repository/sqlstore"

	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "cardsctl",
		Short:         "Card bot administration",
		Long:          "cardsctl manages the card bot vocabulary database: migrations, imports and statistics.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides DB_DRIVER and DB_PATH)")

	rootCmd.AddCommand(newMigrateCmd())
	rootCmd.AddCommand(newImportCmd())
	rootCmd.AddCommand(newStatsCmd())
	rootCmd.AddCommand(newDeleteWordCmd())
	return rootCmd
}

// env bundles what every subcommand works with
type env struct {
	db     *sqlx.DB
	store  *sqlstore.Store
	logger *zap.Logger
	// migrated is true when opening the database applied migrations
	migrated bool
}

func (e *env) Close() {
	e.db.Close()
	e.logger.Sync()
}

// openEnv connects to the database named by --db, or by the environment
// when the flag is empty, and applies pending migrations.
func openEnv(cmd *cobra.Command) (*env, error) {
	mode := os.Getenv("LOG_MODE")
	if mode == "" {
		mode = "dev"
	}
	log, err := logger.New(mode)
	if err != nil {
		return nil, err
	}

	var cfg *config.DatabaseConfig
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		cfg = &config.DatabaseConfig{Driver: config.DriverSQLite, Path: p}
	} else if cfg, err = config.LoadDatabase(); err != nil {
		return nil, err
	}

	db, err := database.Connect(cfg, log)
	if err != nil {
		return nil, err
	}
	migrated, err := database.Migrate(db, log)
	if err != nil {
		db.Close()
		return nil, err
	}

	return &env{db: db, store: sqlstore.New(db), logger: log, migrated: migrated}, nil
}
