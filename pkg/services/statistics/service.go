package statistics

import (
	"context"
	"time"

	"github.com/fadedpez/twentyone/pkg/entities"
	"github.com/fadedpez/twentyone/pkg/repositories/game"
	"github.com/fadedpez/twentyone/pkg/services/blackjack"
)

// DefaultRecentRounds is how many rounds a summary lists
const DefaultRecentRounds = 5

// Service provides methods for recording rounds and summarising a player's session
type Service struct {
	repository game.Repository
}

// NewService creates a new statistics service
func NewService(repository game.Repository) *Service {
	return &Service{
		repository: repository,
	}
}

// Summary is a player's statistics with the latest rounds attached
type Summary struct {
	*entities.PlayerStatistics
	WinRate      float64                `json:"win_rate"`
	ProfitRate   float64                `json:"profit_rate"`
	RecentRounds []entities.RoundResult `json:"recent_rounds"`
	GeneratedAt  time.Time              `json:"generated_at"`
}

// Summary builds the statistics summary for a player
func (s *Service) Summary(ctx context.Context, playerID string, recent int) (*Summary, error) {
	if recent < 1 {
		recent = DefaultRecentRounds
	}

	stats, err := s.repository.GetPlayerStatistics(ctx, playerID)
	if err != nil {
		return nil, err
	}

	rounds, err := s.repository.GetRounds(ctx, playerID, recent)
	if err != nil {
		return nil, err
	}

	var profitRate float64
	if stats.TotalBet > 0 {
		profitRate = float64(stats.NetProfit) / float64(stats.TotalBet)
	}

	return &Summary{
		PlayerStatistics: stats,
		WinRate:          stats.WinRate(),
		ProfitRate:       profitRate,
		RecentRounds:     rounds,
		GeneratedAt:      time.Now(),
	}, nil
}

// Recorder returns a round recorder that files rounds under playerID
func (s *Service) Recorder(playerID string) blackjack.RoundRecorder {
	return &recorder{repository: s.repository, playerID: playerID}
}

type recorder struct {
	repository game.Repository
	playerID   string
}

func (r *recorder) RecordRound(ctx context.Context, sessionID string, result entities.RoundResult) error {
	return r.repository.SaveRound(ctx, r.playerID, result)
}
