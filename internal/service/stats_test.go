package service

import (
	"context"
	"fmt"
	"testing"

	"cardbot/internal/domain"
	"cardbot/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestStatsService_Report(t *testing.T) {
	tests := []struct {
		name          string
		mockStats     domain.Stats
		mockError     error
		expectedError bool
	}{
		{
			name:      "successful report",
			mockStats: domain.Stats{Users: 3, Words: 40, KnownLinks: 12},
		},
		{
			name:          "database error",
			mockError:     fmt.Errorf("db error"),
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(testutil.MockStatsRepository)
			mockRepo.On("Stats", mock.Anything).Return(tt.mockStats, tt.mockError)

			service := NewStatsService(mockRepo, testutil.NewTestLogger())

			err := service.Report(context.Background())

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestStatsService_Snapshot(t *testing.T) {
	mockRepo := new(testutil.MockStatsRepository)
	mockRepo.On("Stats", mock.Anything).Return(domain.Stats{Users: 1, Words: 2, KnownLinks: 3}, nil)

	service := NewStatsService(mockRepo, testutil.NewTestLogger())

	st, err := service.Snapshot(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, domain.Stats{Users: 1, Words: 2, KnownLinks: 3}, st)
}
