package game

import (
	"context"

	"github.com/fadedpez/twentyone/pkg/entities"
)

// Repository defines storage operations for settled rounds and the
// statistics derived from them
type Repository interface {
	// Round results
	SaveRound(ctx context.Context, playerID string, result entities.RoundResult) error
	GetRounds(ctx context.Context, playerID string, limit int) ([]entities.RoundResult, error)

	// Statistics
	GetPlayerStatistics(ctx context.Context, playerID string) (*entities.PlayerStatistics, error)
}
