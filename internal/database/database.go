package database

import (
	"embed"
	"errors"
	"fmt"
	"time"

	"cardbot/internal/config"

	"github.com/golang-migrate/migrate/v4"
	migratedb "github.com/golang-migrate/migrate/v4/database"
	postgresdb "github.com/golang-migrate/migrate/v4/database/postgres"
	sqlitedb "github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"
)

//go:embed migrations
var migrations embed.FS

const (
	maxRetries = 30
	retryDelay = 2 * time.Second
)

// Connect opens the configured database, retrying while it is not reachable
func Connect(cfg *config.DatabaseConfig, logger *zap.Logger) (*sqlx.DB, error) {
	return connect(cfg.Driver, cfg.DSN(), maxRetries, retryDelay, logger)
}

func connect(driver, dsn string, attempts int, delay time.Duration, logger *zap.Logger) (*sqlx.DB, error) {
	var db *sqlx.DB
	var err error

	for i := 0; i < attempts; i++ {
		db, err = sqlx.Open(driver, dsn)
		if err != nil {
			logger.Warn("Failed to open database connection",
				zap.Int("attempt", i+1),
				zap.Error(err),
			)
			time.Sleep(delay)
			continue
		}

		if err = db.Ping(); err != nil {
			logger.Warn("Failed to ping database",
				zap.Int("attempt", i+1),
				zap.Error(err),
			)
			db.Close()
			time.Sleep(delay)
			continue
		}

		configurePool(db)
		return db, nil
	}

	return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", attempts, err)
}

func configurePool(db *sqlx.DB) {
	if db.DriverName() == config.DriverSQLite {
		// SQLite allows a single writer
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
		return
	}
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)
}

// Migrate applies the embedded migrations for the connection's driver.
// It reports whether any migration was applied.
func Migrate(db *sqlx.DB, logger *zap.Logger) (bool, error) {
	driverName := db.DriverName()

	var driver migratedb.Driver
	var err error
	switch driverName {
	case config.DriverPostgres:
		driver, err = postgresdb.WithInstance(db.DB, &postgresdb.Config{})
	case config.DriverSQLite:
		driver, err = sqlitedb.WithInstance(db.DB, &sqlitedb.Config{})
	default:
		return false, fmt.Errorf("unsupported driver %q", driverName)
	}
	if err != nil {
		return false, fmt.Errorf("failed to create migration driver: %w", err)
	}

	source, err := iofs.New(migrations, "migrations/"+driverName)
	if err != nil {
		return false, fmt.Errorf("failed to open migrations: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, driverName, driver)
	if err != nil {
		return false, fmt.Errorf("failed to create migration instance: %w", err)
	}

	err = m.Up()
	switch {
	case errors.Is(err, migrate.ErrNoChange):
		logger.Info("No new migrations to apply")
		return false, nil
	case err != nil:
		return false, fmt.Errorf("failed to run migrations: %w", err)
	}

	logger.Info("Migrations applied successfully")
	return true, nil
}
