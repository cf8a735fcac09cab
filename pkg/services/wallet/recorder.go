package wallet

import (
	"context"

	"github.com/fadedpez/twentyone/pkg/entities"
	"github.com/fadedpez/twentyone/pkg/services/blackjack"
)

var _ blackjack.RoundRecorder = (*Recorder)(nil)

// Recorder feeds a session's rounds into one player's ledger
type Recorder struct {
	service *Service
	userID  string
}

// NewRecorder creates a recorder for userID
func NewRecorder(service *Service, userID string) *Recorder {
	return &Recorder{service: service, userID: userID}
}

// RecordRound implements blackjack.RoundRecorder
func (r *Recorder) RecordRound(ctx context.Context, sessionID string, result entities.RoundResult) error {
	_, err := r.service.RecordRound(ctx, r.userID, result)
	return err
}
