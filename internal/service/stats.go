package service

import (
	"context"

	"cardbot/internal/domain"
	"cardbot/internal/repository"

	"go.uber.org/zap"
)

// StatsService reports store-wide counters
type StatsService struct {
	statsRepo repository.StatsRepository
	logger    *zap.Logger
}

// NewStatsService creates a new stats service
func NewStatsService(statsRepo repository.StatsRepository, logger *zap.Logger) *StatsService {
	return &StatsService{
		statsRepo: statsRepo,
		logger:    logger,
	}
}

// Snapshot returns the current counters
func (s *StatsService) Snapshot(ctx context.Context) (domain.Stats, error) {
	return s.statsRepo.Stats(ctx)
}

// Report logs the current counters
func (s *StatsService) Report(ctx context.Context) error {
	st, err := s.statsRepo.Stats(ctx)
	if err != nil {
		s.logger.Error("Failed to collect stats", zap.Error(err))
		return err
	}

	s.logger.Info("Stats",
		zap.Int("users", st.Users),
		zap.Int("words", st.Words),
		zap.Int("known_links", st.KnownLinks),
	)
	return nil
}
