package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetEnv(t *testing.T) {
	tests := []struct {
		name         string
		key          string
		defaultValue string
		setEnv       bool
		envValue     string
		expected     string
	}{
		{
			name:         "env variable set",
			key:          "TEST_KEY",
			defaultValue: "default",
			setEnv:       true,
			envValue:     "custom",
			expected:     "custom",
		},
		{
			name:         "env variable not set",
			key:          "TEST_KEY_NOT_SET",
			defaultValue: "default",
			setEnv:       false,
			expected:     "default",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.setEnv {
				t.Setenv(tt.key, tt.envValue)
			}

			result := getEnv(tt.key, tt.defaultValue)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestDatabaseConfig_DSN(t *testing.T) {
	cfg := &DatabaseConfig{
		Driver:   DriverPostgres,
		Host:     "localhost",
		Port:     "5432",
		User:     "testuser",
		Password: "testpass",
		Name:     "testdb",
		SSLMode:  "disable",
	}

	expected := "host=localhost port=5432 user=testuser password=testpass dbname=testdb sslmode=disable"
	assert.Equal(t, expected, cfg.DSN())

	sqlite := &DatabaseConfig{Driver: DriverSQLite, Path: "/tmp/cards.db"}
	assert.Equal(t, "file:/tmp/cards.db?_foreign_keys=on&_busy_timeout=5000", sqlite.DSN())
}

func TestParseIDs(t *testing.T) {
	tests := []struct {
		name          string
		raw           string
		expected      []int64
		expectedError bool
	}{
		{name: "empty", raw: "", expected: nil},
		{name: "single", raw: "42", expected: []int64{42}},
		{name: "list with spaces", raw: " 1, 2 ,3,", expected: []int64{1, 2, 3}},
		{name: "invalid", raw: "1,abc", expectedError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ids, err := parseIDs(tt.raw)
			if tt.expectedError {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, ids)
		})
	}
}

// clearEnv unsets every variable Load reads; t.Setenv restores them afterwards
func clearEnv(t *testing.T) {
	for _, key := range []string{
		"BOT_TOKEN", "ADMIN_USER_IDS", "SEED_FILE", "STATS_INTERVAL", "RESTART_DELAY", "LOG_MODE",
		"DB_DRIVER", "DB_HOST", "DB_PORT", "DB_NAME", "DB_USER", "DB_PASSWORD", "DB_SSLMODE", "DB_PATH",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoad_MissingBotToken(t *testing.T) {
	clearEnv(t)
	t.Setenv("DB_PASSWORD", "test_db_password")

	cfg, err := Load()
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "BOT_TOKEN")
}

func TestLoad_MissingDBPassword(t *testing.T) {
	clearEnv(t)
	t.Setenv("BOT_TOKEN", "test_token")

	cfg, err := Load()
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "DB_PASSWORD")
}

func TestLoad_SQLiteDoesNotNeedPassword(t *testing.T) {
	clearEnv(t)
	t.Setenv("BOT_TOKEN", "test_token")
	t.Setenv("DB_DRIVER", DriverSQLite)
	t.Setenv("DB_PATH", "cards.db")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, "cards.db", cfg.Database.Path)
}

func TestLoad_UnsupportedDriver(t *testing.T) {
	clearEnv(t)
	t.Setenv("BOT_TOKEN", "test_token")
	t.Setenv("DB_DRIVER", "mysql")

	cfg, err := Load()
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "DB_DRIVER")
}

func TestLoad_WithDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("BOT_TOKEN", "test_token")
	t.Setenv("DB_PASSWORD", "test_db_password")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "test_token", cfg.BotToken)
	assert.Empty(t, cfg.AdminIDs)
	assert.Equal(t, time.Hour, cfg.StatsInterval)
	assert.Equal(t, 5*time.Second, cfg.RestartDelay)
	assert.Equal(t, "prod", cfg.LogMode)
	assert.Equal(t, DriverPostgres, cfg.Database.Driver)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, "5432", cfg.Database.Port)
	assert.Equal(t, "cardbot", cfg.Database.Name)
	assert.Equal(t, "cardbot", cfg.Database.User)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
}

func TestLoad_CustomValues(t *testing.T) {
	clearEnv(t)
	t.Setenv("BOT_TOKEN", "test_token")
	t.Setenv("DB_PASSWORD", "test_db_password")
	t.Setenv("ADMIN_USER_IDS", "10,20")
	t.Setenv("STATS_INTERVAL", "15m")
	t.Setenv("RESTART_DELAY", "1s")
	t.Setenv("SEED_FILE", "words.xlsx")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, []int64{10, 20}, cfg.AdminIDs)
	assert.Equal(t, 15*time.Minute, cfg.StatsInterval)
	assert.Equal(t, time.Second, cfg.RestartDelay)
	assert.Equal(t, "words.xlsx", cfg.SeedFile)
}

func TestLoad_InvalidDuration(t *testing.T) {
	clearEnv(t)
	t.Setenv("BOT_TOKEN", "test_token")
	t.Setenv("DB_PASSWORD", "test_db_password")
	t.Setenv("STATS_INTERVAL", "soon")

	cfg, err := Load()
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "STATS_INTERVAL")
}
