package service

import (
	"context"
	"errors"
	"math/rand"

	"cardbot/internal/domain"
	"cardbot/internal/repository"
	"cardbot/internal/session"

	"go.uber.org/zap"
)

// DistractorCount is how many wrong choices a card offers at most
const DistractorCount = 3

// Card is a word ready to be shown: the translation as prompt and shuffled choices
type Card struct {
	Word    domain.Word
	Choices []string
}

// Outcome is the result of checking an answer
type Outcome int

const (
	// OutcomeNoCard means there was no active card to compare against.
	OutcomeNoCard Outcome = iota
	OutcomeCorrect
	OutcomeIncorrect
)

// Answer describes an evaluated answer
type Answer struct {
	Outcome Outcome
	Word    domain.Word
	// NewlyKnown is false when the word was already marked known before.
	NewlyKnown bool
}

// CardService selects cards and evaluates answers
type CardService struct {
	wordRepo repository.WordRepository
	sessions *session.Store
	logger   *zap.Logger
	shuffle  func(n int, swap func(i, j int))
}

// NewCardService creates a new card service
func NewCardService(wordRepo repository.WordRepository, sessions *session.Store, logger *zap.Logger) *CardService {
	return &CardService{
		wordRepo: wordRepo,
		sessions: sessions,
		logger:   logger,
		shuffle:  rand.Shuffle,
	}
}

// PresentNextCard picks a random word unknown to the user and makes it the active card.
// It returns nil when the user knows every word.
func (s *CardService) PresentNextCard(ctx context.Context, userID int64) (*Card, error) {
	word, err := s.wordRepo.RandomUnseenWord(ctx, userID)
	if err != nil {
		return nil, err
	}

	if word == nil {
		s.sessions.Update(userID, func(sess *domain.Session) {
			sess.Step = domain.StepIdle
			sess.Card = nil
		})
		s.logger.Info("Deck is empty", zap.Int64("user_id", userID))
		return nil, nil
	}

	card, err := s.buildCard(ctx, *word)
	if err != nil {
		return nil, err
	}

	s.sessions.Update(userID, func(sess *domain.Session) {
		sess.Step = domain.StepAwaitingChoice
		sess.Card = word
		sess.PendingWord = ""
	})

	s.logger.Debug("Card presented",
		zap.Int64("user_id", userID),
		zap.Int64("word_id", word.ID),
		zap.Int("choices", len(card.Choices)),
	)
	return card, nil
}

// RetryCard renders the active card again with a fresh set of distractors
func (s *CardService) RetryCard(ctx context.Context, userID int64) (*Card, error) {
	sess := s.sessions.Get(userID)
	if !sess.HasCard() {
		return s.PresentNextCard(ctx, userID)
	}
	return s.buildCard(ctx, *sess.Card)
}

// EvaluateAnswer compares text with the active card and marks the word known on a match.
// A card whose word was deleted meanwhile is dropped and reported as OutcomeNoCard.
func (s *CardService) EvaluateAnswer(ctx context.Context, userID int64, text string) (Answer, error) {
	sess := s.sessions.Get(userID)
	if !sess.HasCard() {
		return Answer{Outcome: OutcomeNoCard}, nil
	}

	word := *sess.Card
	if !word.Matches(text) {
		current, err := s.wordRepo.WordByID(ctx, word.ID)
		if err != nil {
			return Answer{}, err
		}
		if current == nil {
			return s.staleCard(userID, word), nil
		}
		return Answer{Outcome: OutcomeIncorrect, Word: word}, nil
	}

	inserted, err := s.wordRepo.MarkKnown(ctx, userID, word.ID)
	if errors.Is(err, domain.ErrWordNotFound) {
		return s.staleCard(userID, word), nil
	}
	if err != nil {
		return Answer{}, err
	}

	return Answer{Outcome: OutcomeCorrect, Word: word, NewlyKnown: inserted}, nil
}

func (s *CardService) staleCard(userID int64, word domain.Word) Answer {
	s.DropCard(userID)
	s.logger.Info("Active card refers to a deleted word",
		zap.Int64("user_id", userID),
		zap.Int64("word_id", word.ID),
	)
	return Answer{Outcome: OutcomeNoCard}
}

// ActiveCard returns the user's active card, nil when none
func (s *CardService) ActiveCard(userID int64) *domain.Word {
	return s.sessions.Get(userID).Card
}

// DropCard forgets the active card
func (s *CardService) DropCard(userID int64) {
	s.sessions.Update(userID, func(sess *domain.Session) {
		sess.Card = nil
		if sess.Step == domain.StepAwaitingChoice {
			sess.Step = domain.StepIdle
		}
	})
}

func (s *CardService) buildCard(ctx context.Context, word domain.Word) (*Card, error) {
	others, err := s.wordRepo.RandomDistractors(ctx, word.ID, DistractorCount)
	if err != nil {
		return nil, err
	}

	choices := make([]string, 0, len(others)+1)
	choices = append(choices, word.Target)
	for _, o := range others {
		choices = append(choices, o.Target)
	}
	s.shuffle(len(choices), func(i, j int) {
		choices[i], choices[j] = choices[j], choices[i]
	})

	return &Card{Word: word, Choices: choices}, nil
}
