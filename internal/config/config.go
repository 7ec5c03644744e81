package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite3"
)

// Config holds all application configuration
type Config struct {
	BotToken      string
	AdminIDs      []int64
	SeedFile      string
	StatsInterval time.Duration
	RestartDelay  time.Duration
	LogMode       string
	Database      DatabaseConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Driver   string
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	SSLMode  string
	// Path is the SQLite database file, used only with the sqlite3 driver.
	Path string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	db, err := LoadDatabase()
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		BotToken: os.Getenv("BOT_TOKEN"),
		SeedFile: os.Getenv("SEED_FILE"),
		LogMode:  getEnv("LOG_MODE", "prod"),
		Database: *db,
	}

	if cfg.BotToken == "" {
		return nil, fmt.Errorf("BOT_TOKEN is required")
	}

	if cfg.AdminIDs, err = parseIDs(os.Getenv("ADMIN_USER_IDS")); err != nil {
		return nil, fmt.Errorf("ADMIN_USER_IDS: %w", err)
	}
	if cfg.StatsInterval, err = getDuration("STATS_INTERVAL", time.Hour); err != nil {
		return nil, err
	}
	if cfg.RestartDelay, err = getDuration("RESTART_DELAY", 5*time.Second); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadDatabase reads only the database settings
func LoadDatabase() (*DatabaseConfig, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	db := &DatabaseConfig{
		Driver:   getEnv("DB_DRIVER", DriverPostgres),
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     getEnv("DB_PORT", "5432"),
		Name:     getEnv("DB_NAME", "cardbot"),
		User:     getEnv("DB_USER", "cardbot"),
		Password: os.Getenv("DB_PASSWORD"),
		SSLMode:  getEnv("DB_SSLMODE", "disable"),
		Path:     getEnv("DB_PATH", "cardbot.db"),
	}

	switch db.Driver {
	case DriverPostgres:
		if db.Password == "" {
			return nil, fmt.Errorf("DB_PASSWORD is required")
		}
	case DriverSQLite:
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", db.Driver)
	}

	return db, nil
}

// DSN returns the driver-specific connection string
func (c *DatabaseConfig) DSN() string {
	if c.Driver == DriverSQLite {
		return fmt.Sprintf("file:%s?_foreign_keys=on&_busy_timeout=5000", c.Path)
	}
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host,
		c.Port,
		c.User,
		c.Password,
		c.Name,
		c.SSLMode,
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}

// parseIDs parses a comma-separated list of user ids
func parseIDs(raw string) ([]int64, error) {
	var ids []int64
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid user id %q", part)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
