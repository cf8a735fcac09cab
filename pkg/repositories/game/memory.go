package game

import (
	"context"
	"sync"

	"github.com/fadedpez/twentyone/pkg/entities"
)

// MemoryRepository implements Repository interface with in-memory storage
type MemoryRepository struct {
	mu sync.RWMutex
	// Map of playerID to settled rounds, oldest first
	rounds map[string][]entities.RoundResult
}

// NewMemoryRepository creates a new in-memory repository
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		rounds: make(map[string][]entities.RoundResult),
	}
}

// SaveRound appends a settled round to the player's history
func (r *MemoryRepository) SaveRound(ctx context.Context, playerID string, result entities.RoundResult) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.rounds[playerID] = append(r.rounds[playerID], result)
	return nil
}

// GetRounds retrieves the most recent rounds for a player. A limit of zero
// or less returns every round.
func (r *MemoryRepository) GetRounds(ctx context.Context, playerID string, limit int) ([]entities.RoundResult, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rounds := r.rounds[playerID]
	if limit > 0 && len(rounds) > limit {
		rounds = rounds[len(rounds)-limit:]
	}

	out := make([]entities.RoundResult, len(rounds))
	copy(out, rounds)
	return out, nil
}
