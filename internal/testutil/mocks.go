package testutil

import (
	"context"

	"cardbot/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock for UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) EnsureUser(ctx context.Context, userID int64, username string) error {
	args := m.Called(ctx, userID, username)
	return args.Error(0)
}

// MockWordRepository is a mock for WordRepository
type MockWordRepository struct {
	mock.Mock
}

func (m *MockWordRepository) RandomUnseenWord(ctx context.Context, userID int64) (*domain.Word, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Word), args.Error(1)
}

func (m *MockWordRepository) WordByID(ctx context.Context, wordID int64) (*domain.Word, error) {
	args := m.Called(ctx, wordID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Word), args.Error(1)
}

func (m *MockWordRepository) RandomDistractors(ctx context.Context, wordID int64, count int) ([]domain.Word, error) {
	args := m.Called(ctx, wordID, count)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Word), args.Error(1)
}

func (m *MockWordRepository) MarkKnown(ctx context.Context, userID, wordID int64) (bool, error) {
	args := m.Called(ctx, userID, wordID)
	return args.Bool(0), args.Error(1)
}

func (m *MockWordRepository) UnmarkKnown(ctx context.Context, userID, wordID int64) (bool, error) {
	args := m.Called(ctx, userID, wordID)
	return args.Bool(0), args.Error(1)
}

func (m *MockWordRepository) ResetProgress(ctx context.Context, userID int64) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockWordRepository) CountKnown(ctx context.Context, userID int64) (int, error) {
	args := m.Called(ctx, userID)
	return args.Int(0), args.Error(1)
}

func (m *MockWordRepository) WordExists(ctx context.Context, target string) (bool, error) {
	args := m.Called(ctx, target)
	return args.Bool(0), args.Error(1)
}

func (m *MockWordRepository) CreateWord(ctx context.Context, target, translation string) (int64, error) {
	args := m.Called(ctx, target, translation)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockWordRepository) AddUserWord(ctx context.Context, userID int64, target, translation string) (int64, error) {
	args := m.Called(ctx, userID, target, translation)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockWordRepository) DeleteWord(ctx context.Context, wordID int64) (bool, error) {
	args := m.Called(ctx, wordID)
	return args.Bool(0), args.Error(1)
}

func (m *MockWordRepository) SeedWords(ctx context.Context, pairs []domain.WordPair) (int, error) {
	args := m.Called(ctx, pairs)
	return args.Int(0), args.Error(1)
}

// MockStatsRepository is a mock for StatsRepository
type MockStatsRepository struct {
	mock.Mock
}

func (m *MockStatsRepository) Stats(ctx context.Context) (domain.Stats, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.Stats), args.Error(1)
}
