package blackjack

import (
	"context"

	"github.com/fadedpez/twentyone/pkg/entities"
)

//go:generate mockgen -destination=mocks/mock_renderer.go -package=mocks github.com/fadedpez/twentyone/pkg/services/blackjack Renderer,RoundRecorder

// BetSource returns the wager for the next round given the current credit
type BetSource func(credit int64) int64

// StandDecision reports whether the player stands at the current decision point
type StandDecision func() bool

// ContinueDecision reports whether the player wants another round
type ContinueDecision func() bool

// Renderer receives one-way notifications about the game. Implementations
// must not affect game state.
type Renderer interface {
	ShowHands(player, dealer Hand, hideDealer bool)
	RoundSummary(won bool, player, dealer Hand)
	SessionEnded(outcome SessionOutcome, state entities.GameState)
}

// RoundRecorder is notified after every settled round
type RoundRecorder interface {
	RecordRound(ctx context.Context, sessionID string, result entities.RoundResult) error
}

// NopRenderer discards every notification
type NopRenderer struct{}

func (NopRenderer) ShowHands(Hand, Hand, bool) {}

func (NopRenderer) RoundSummary(bool, Hand, Hand) {}

func (NopRenderer) SessionEnded(SessionOutcome, entities.GameState) {}
