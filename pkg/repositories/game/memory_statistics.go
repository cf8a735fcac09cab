package game

import (
	"context"
	"time"

	"github.com/fadedpez/twentyone/pkg/entities"
)

// GetPlayerStatistics aggregates every round saved for a player
func (r *MemoryRepository) GetPlayerStatistics(ctx context.Context, playerID string) (*entities.PlayerStatistics, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stats := &entities.PlayerStatistics{
		PlayerID:    playerID,
		LastUpdated: time.Now(),
	}

	for _, round := range r.rounds[playerID] {
		stats.RoundsPlayed++
		stats.TotalBet += round.Bet
		stats.NetProfit += round.Delta()

		if round.Won {
			stats.Wins++
			if round.Delta() > stats.BiggestWin {
				stats.BiggestWin = round.Delta()
			}
		} else {
			stats.Losses++
		}

		if round.PlayerBust {
			stats.Busts++
		}
		if round.Blackjack {
			stats.Blackjacks++
		}
		if round.DealerBust {
			stats.DealerBusts++
		}
	}

	return stats, nil
}
