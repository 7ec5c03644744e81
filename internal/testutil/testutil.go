package testutil

import (
	"testing"

	"cardbot/internal/config"
	"cardbot/internal/database"
	"cardbot/internal/domain"
	"cardbot/internal/repository/sqlstore"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestWord creates a test word
func NewTestWord(id int64, target, translation string) *domain.Word {
	return &domain.Word{
		ID:          id,
		Target:      target,
		Translation: translation,
	}
}

// NewSQLiteStore returns a store over a fresh migrated in-memory database
func NewSQLiteStore(t *testing.T) *sqlstore.Store {
	t.Helper()
	logger := NewTestLogger()

	db, err := database.Connect(&config.DatabaseConfig{Driver: config.DriverSQLite, Path: ":memory:"}, logger)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	_, err = database.Migrate(db, logger)
	require.NoError(t, err)
	return sqlstore.New(db)
}
