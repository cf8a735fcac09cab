package statistics

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/fadedpez/twentyone/pkg/entities"
	"github.com/fadedpez/twentyone/pkg/repositories/game"
)

// MockRepository is a mock implementation of the game.Repository interface
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) SaveRound(ctx context.Context, playerID string, result entities.RoundResult) error {
	args := m.Called(ctx, playerID, result)
	return args.Error(0)
}

func (m *MockRepository) GetRounds(ctx context.Context, playerID string, limit int) ([]entities.RoundResult, error) {
	args := m.Called(ctx, playerID, limit)
	return args.Get(0).([]entities.RoundResult), args.Error(1)
}

func (m *MockRepository) GetPlayerStatistics(ctx context.Context, playerID string) (*entities.PlayerStatistics, error) {
	args := m.Called(ctx, playerID)
	if stats, ok := args.Get(0).(*entities.PlayerStatistics); ok {
		return stats, args.Error(1)
	}
	return nil, args.Error(1)
}

func TestSummary(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockRepository)
	mockRepo.On("GetPlayerStatistics", ctx, "player").Return(&entities.PlayerStatistics{
		PlayerID:     "player",
		RoundsPlayed: 4,
		Wins:         3,
		Losses:       1,
		TotalBet:     100,
		NetProfit:    40,
	}, nil)
	mockRepo.On("GetRounds", ctx, "player", DefaultRecentRounds).Return([]entities.RoundResult{{Number: 4}}, nil)

	summary, err := NewService(mockRepo).Summary(ctx, "player", 0)

	require.NoError(t, err)
	assert.Equal(t, 75.0, summary.WinRate)
	assert.InDelta(t, 0.4, summary.ProfitRate, 0.0001)
	assert.Len(t, summary.RecentRounds, 1)
	assert.Equal(t, 4, summary.RoundsPlayed)
	mockRepo.AssertExpectations(t)
}

func TestSummaryRepositoryError(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockRepository)
	mockRepo.On("GetPlayerStatistics", ctx, "player").Return(nil, errors.New("unavailable"))

	_, err := NewService(mockRepo).Summary(ctx, "player", 3)

	assert.EqualError(t, err, "unavailable")
	mockRepo.AssertNotCalled(t, "GetRounds", mock.Anything, mock.Anything, mock.Anything)
}

func TestRecorderFeedsSummary(t *testing.T) {
	ctx := context.Background()
	service := NewService(game.NewMemoryRepository())
	recorder := service.Recorder("player")

	require.NoError(t, recorder.RecordRound(ctx, "session", entities.RoundResult{Number: 1, Bet: 10, Won: true, CreditBefore: 100, CreditAfter: 110}))
	require.NoError(t, recorder.RecordRound(ctx, "session", entities.RoundResult{Number: 2, Bet: 10, PlayerBust: true, CreditBefore: 110, CreditAfter: 100}))

	summary, err := service.Summary(ctx, "player", 1)
	require.NoError(t, err)

	assert.Equal(t, 2, summary.RoundsPlayed)
	assert.Equal(t, 1, summary.Busts)
	assert.Equal(t, 50.0, summary.WinRate)
	require.Len(t, summary.RecentRounds, 1)
	assert.Equal(t, 2, summary.RecentRounds[0].Number)
}
