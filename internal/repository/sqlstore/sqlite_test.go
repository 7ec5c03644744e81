package sqlstore

import (
	"context"
	"testing"

	"cardbot/internal/config"
	"cardbot/internal/database"
	"cardbot/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// newSQLiteStore returns a store over a fresh migrated in-memory database
func newSQLiteStore(t *testing.T) *Store {
	t.Helper()
	logger := zap.NewNop()

	db, err := database.Connect(&config.DatabaseConfig{Driver: config.DriverSQLite, Path: ":memory:"}, logger)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	_, err = database.Migrate(db, logger)
	require.NoError(t, err)
	return New(db)
}

func seedColors(t *testing.T, store *Store) map[string]int64 {
	t.Helper()
	ctx := context.Background()
	ids := make(map[string]int64)
	for _, p := range []domain.WordPair{
		{Word: "red", Translation: "красный"},
		{Word: "blue", Translation: "синий"},
		{Word: "green", Translation: "зеленый"},
	} {
		id, err := store.CreateWord(ctx, p.Word, p.Translation)
		require.NoError(t, err)
		ids[p.Word] = id
	}
	return ids
}

func TestSQLite_CreateWordRejectsCaseInsensitiveDuplicate(t *testing.T) {
	tests := []struct {
		name       string
		stored     string
		duplicates []string
		lookup     string
	}{
		{name: "ascii", stored: "Cat", duplicates: []string{"cat", "CAT", " cAt "}, lookup: "CAT"},
		{name: "cyrillic", stored: "Ёж", duplicates: []string{"ёж", "ЁЖ", " ёЖ "}, lookup: "ёж"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newSQLiteStore(t)
			ctx := context.Background()

			_, err := store.CreateWord(ctx, tt.stored, "перевод")
			require.NoError(t, err)

			for _, dup := range tt.duplicates {
				_, err = store.CreateWord(ctx, dup, "другой")
				assert.ErrorIs(t, err, domain.ErrDuplicateWord, dup)
			}

			st, err := store.Stats(ctx)
			require.NoError(t, err)
			assert.Equal(t, 1, st.Words)

			exists, err := store.WordExists(ctx, tt.lookup)
			require.NoError(t, err)
			assert.True(t, exists)
		})
	}
}

func TestSQLite_SeedWordsFoldsNonASCIICase(t *testing.T) {
	store := newSQLiteStore(t)
	ctx := context.Background()

	n, err := store.SeedWords(ctx, []domain.WordPair{
		{Word: "Ёж", Translation: "hedgehog"},
		{Word: "ёж", Translation: "hedgehog"},
		{Word: "Über", Translation: "над"},
		{Word: "über", Translation: "над"},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestSQLite_DeletedWordIsReportedMissing(t *testing.T) {
	store := newSQLiteStore(t)
	ctx := context.Background()
	ids := seedColors(t, store)
	require.NoError(t, store.EnsureUser(ctx, 1, "bob"))

	w, err := store.WordByID(ctx, ids["blue"])
	require.NoError(t, err)
	require.NotNil(t, w)
	assert.Equal(t, "blue", w.Target)

	_, err = store.DeleteWord(ctx, ids["blue"])
	require.NoError(t, err)

	w, err = store.WordByID(ctx, ids["blue"])
	require.NoError(t, err)
	assert.Nil(t, w)

	inserted, err := store.MarkKnown(ctx, 1, ids["blue"])
	assert.ErrorIs(t, err, domain.ErrWordNotFound)
	assert.NotErrorIs(t, err, domain.ErrStoreUnavailable)
	assert.False(t, inserted)
}

func TestSQLite_MarkKnownIsIdempotent(t *testing.T) {
	store := newSQLiteStore(t)
	ctx := context.Background()
	ids := seedColors(t, store)
	require.NoError(t, store.EnsureUser(ctx, 1, "alice"))
	require.NoError(t, store.EnsureUser(ctx, 1, "alice"))

	inserted, err := store.MarkKnown(ctx, 1, ids["red"])
	require.NoError(t, err)
	assert.True(t, inserted)

	inserted, err = store.MarkKnown(ctx, 1, ids["red"])
	require.NoError(t, err)
	assert.False(t, inserted)

	count, err := store.CountKnown(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestSQLite_RandomUnseenWordSkipsKnownWords(t *testing.T) {
	store := newSQLiteStore(t)
	ctx := context.Background()
	ids := seedColors(t, store)
	require.NoError(t, store.EnsureUser(ctx, 1, "alice"))

	_, err := store.MarkKnown(ctx, 1, ids["red"])
	require.NoError(t, err)

	for i := 0; i < 20; i++ {
		w, err := store.RandomUnseenWord(ctx, 1)
		require.NoError(t, err)
		require.NotNil(t, w)
		assert.NotEqual(t, "red", w.Target)
	}

	for _, name := range []string{"blue", "green"} {
		_, err := store.MarkKnown(ctx, 1, ids[name])
		require.NoError(t, err)
	}

	w, err := store.RandomUnseenWord(ctx, 1)
	require.NoError(t, err)
	assert.Nil(t, w)

	// another user still sees everything
	require.NoError(t, store.EnsureUser(ctx, 2, "bob"))
	w, err = store.RandomUnseenWord(ctx, 2)
	require.NoError(t, err)
	assert.NotNil(t, w)
}

func TestSQLite_ResetProgressRestoresCycle(t *testing.T) {
	store := newSQLiteStore(t)
	ctx := context.Background()
	ids := seedColors(t, store)
	require.NoError(t, store.EnsureUser(ctx, 1, "alice"))

	for _, id := range ids {
		_, err := store.MarkKnown(ctx, 1, id)
		require.NoError(t, err)
	}

	w, err := store.RandomUnseenWord(ctx, 1)
	require.NoError(t, err)
	require.Nil(t, w)

	n, err := store.ResetProgress(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	w, err = store.RandomUnseenWord(ctx, 1)
	require.NoError(t, err)
	assert.NotNil(t, w)
}

func TestSQLite_RandomDistractors(t *testing.T) {
	store := newSQLiteStore(t)
	ctx := context.Background()
	ids := seedColors(t, store)

	words, err := store.RandomDistractors(ctx, ids["red"], 3)
	require.NoError(t, err)
	assert.Len(t, words, 2)
	for _, w := range words {
		assert.NotEqual(t, ids["red"], w.ID)
	}
}

func TestSQLite_AddUserWordLinksUser(t *testing.T) {
	store := newSQLiteStore(t)
	ctx := context.Background()
	require.NoError(t, store.EnsureUser(ctx, 1, "alice"))

	id, err := store.AddUserWord(ctx, 1, "cat", "кот")
	require.NoError(t, err)
	assert.NotZero(t, id)

	count, err := store.CountKnown(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	_, err = store.AddUserWord(ctx, 1, "Cat", "кошка")
	assert.ErrorIs(t, err, domain.ErrDuplicateWord)

	st, err := store.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.Stats{Users: 1, Words: 1, KnownLinks: 1}, st)
}

func TestSQLite_DeleteWordCascades(t *testing.T) {
	store := newSQLiteStore(t)
	ctx := context.Background()
	ids := seedColors(t, store)

	for _, uid := range []int64{1, 2} {
		require.NoError(t, store.EnsureUser(ctx, uid, ""))
		_, err := store.MarkKnown(ctx, uid, ids["blue"])
		require.NoError(t, err)
	}

	deleted, err := store.DeleteWord(ctx, ids["blue"])
	require.NoError(t, err)
	assert.True(t, deleted)

	st, err := store.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, st.Words)
	assert.Equal(t, 0, st.KnownLinks)

	deleted, err = store.DeleteWord(ctx, ids["blue"])
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestSQLite_SeedWordsIsIdempotent(t *testing.T) {
	store := newSQLiteStore(t)
	ctx := context.Background()
	pairs := []domain.WordPair{
		{Word: "red", Translation: "красный"},
		{Word: "blue", Translation: "синий"},
	}

	n, err := store.SeedWords(ctx, pairs)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	n, err = store.SeedWords(ctx, append(pairs, domain.WordPair{Word: "RED", Translation: "алый"}))
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}
