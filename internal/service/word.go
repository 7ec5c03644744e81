package service

import (
	"context"
	"fmt"
	"strings"

	"cardbot/internal/domain"
	"cardbot/internal/repository"

	"go.uber.org/zap"
)

// WordService handles vocabulary and progress changes
type WordService struct {
	wordRepo repository.WordRepository
	logger   *zap.Logger
}

// NewWordService creates a new word service
func NewWordService(wordRepo repository.WordRepository, logger *zap.Logger) *WordService {
	return &WordService{
		wordRepo: wordRepo,
		logger:   logger,
	}
}

// NormalizeNewWord validates a word typed in the add-word dialogue.
// It returns the normalized text, ErrEmptyInput or ErrDuplicateWord.
func (s *WordService) NormalizeNewWord(ctx context.Context, text string) (string, error) {
	word := strings.ToLower(strings.TrimSpace(text))
	if word == "" {
		return "", domain.ErrEmptyInput
	}

	exists, err := s.wordRepo.WordExists(ctx, word)
	if err != nil {
		return "", err
	}
	if exists {
		return "", fmt.Errorf("%q: %w", word, domain.ErrDuplicateWord)
	}
	return word, nil
}

// AddWord stores a word-translation pair and links it to the user
func (s *WordService) AddWord(ctx context.Context, userID int64, word, translation string) (int64, error) {
	word = strings.TrimSpace(word)
	translation = strings.TrimSpace(translation)
	if word == "" || translation == "" {
		return 0, domain.ErrEmptyInput
	}

	id, err := s.wordRepo.AddUserWord(ctx, userID, word, translation)
	if err != nil {
		return 0, err
	}

	s.logger.Info("Word added",
		zap.Int64("user_id", userID),
		zap.Int64("word_id", id),
		zap.String("word", word),
	)
	return id, nil
}

// ForgetWord removes the word from the user's known list only
func (s *WordService) ForgetWord(ctx context.Context, userID, wordID int64) (bool, error) {
	return s.wordRepo.UnmarkKnown(ctx, userID, wordID)
}

// DeleteWord removes the word for everyone
func (s *WordService) DeleteWord(ctx context.Context, wordID int64) (bool, error) {
	deleted, err := s.wordRepo.DeleteWord(ctx, wordID)
	if err != nil {
		return false, err
	}
	s.logger.Info("Word deleted", zap.Int64("word_id", wordID), zap.Bool("deleted", deleted))
	return deleted, nil
}

// ResetProgress forgets every known word of the user
func (s *WordService) ResetProgress(ctx context.Context, userID int64) error {
	n, err := s.wordRepo.ResetProgress(ctx, userID)
	if err != nil {
		return err
	}
	s.logger.Info("Progress reset", zap.Int64("user_id", userID), zap.Int64("removed", n))
	return nil
}

// CountKnown returns how many words the user knows
func (s *WordService) CountKnown(ctx context.Context, userID int64) (int, error) {
	return s.wordRepo.CountKnown(ctx, userID)
}

// Seed inserts the pairs that are not stored yet
func (s *WordService) Seed(ctx context.Context, pairs []domain.WordPair) (int, error) {
	valid := make([]domain.WordPair, 0, len(pairs))
	for _, p := range pairs {
		if strings.TrimSpace(p.Word) == "" || strings.TrimSpace(p.Translation) == "" {
			continue
		}
		valid = append(valid, p)
	}
	if len(valid) == 0 {
		return 0, nil
	}

	n, err := s.wordRepo.SeedWords(ctx, valid)
	if err != nil {
		return 0, err
	}
	s.logger.Info("Vocabulary seeded", zap.Int("offered", len(valid)), zap.Int("inserted", n))
	return n, nil
}
