package repository

import (
	"context"

	"cardbot/internal/domain"
)

// UserRepository defines user data operations
type UserRepository interface {
	EnsureUser(ctx context.Context, userID int64, username string) error
}

// WordRepository defines word and progress data operations
type WordRepository interface {
	// RandomUnseenWord returns nil when the user already knows every word.
	RandomUnseenWord(ctx context.Context, userID int64) (*domain.Word, error)
	// WordByID returns nil when the word has been deleted.
	WordByID(ctx context.Context, wordID int64) (*domain.Word, error)
	RandomDistractors(ctx context.Context, wordID int64, count int) ([]domain.Word, error)
	// MarkKnown fails with domain.ErrWordNotFound when the word is gone.
	MarkKnown(ctx context.Context, userID, wordID int64) (bool, error)
	UnmarkKnown(ctx context.Context, userID, wordID int64) (bool, error)
	ResetProgress(ctx context.Context, userID int64) (int64, error)
	CountKnown(ctx context.Context, userID int64) (int, error)

	WordExists(ctx context.Context, target string) (bool, error)
	CreateWord(ctx context.Context, target, translation string) (int64, error)
	// AddUserWord creates a word and links it to the user in one transaction.
	AddUserWord(ctx context.Context, userID int64, target, translation string) (int64, error)
	DeleteWord(ctx context.Context, wordID int64) (bool, error)
	SeedWords(ctx context.Context, pairs []domain.WordPair) (int, error)
}

// StatsRepository exposes store-wide counters
type StatsRepository interface {
	Stats(ctx context.Context) (domain.Stats, error)
}
