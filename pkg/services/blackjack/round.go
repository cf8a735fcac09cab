package blackjack

import (
	"fmt"

	"github.com/fadedpez/twentyone/internal/types"
	"github.com/fadedpez/twentyone/pkg/entities"
)

// ErrRoundFinished is returned when a finished round is asked to advance
var ErrRoundFinished = types.NewGameError(types.ErrInvalidState, "round is already finished")

// RoundState represents where a round is in its hit/stand loop
type RoundState string

const (
	RoundInProgress RoundState = "IN_PROGRESS"
	RoundPlayerBust RoundState = "PLAYER_BUST"
	RoundStanding   RoundState = "STANDING"
)

// IsTerminal reports whether no further decisions are taken
func (s RoundState) IsTerminal() bool {
	return s == RoundPlayerBust || s == RoundStanding
}

// Round is the immutable state of one hand of play
type Round struct {
	Player Hand
	Dealer Hand
	Deck   entities.Deck
	State  RoundState
}

// NewRound starts a round from freshly dealt hands
func NewRound(player, dealer Hand, deck entities.Deck) Round {
	state := RoundInProgress
	if player.IsBust() {
		state = RoundPlayerBust
	}
	return Round{
		Player: player,
		Dealer: dealer,
		Deck:   deck,
		State:  state,
	}
}

// Step applies one player decision and returns the next round state.
// Hitting draws one card for the player; standing lets the dealer play out
// and ends the round.
func (r Round) Step(stand bool) (Round, error) {
	if r.State.IsTerminal() {
		return r, ErrRoundFinished
	}

	if stand {
		dealer, deck, err := PlayDealer(r.Dealer, r.Deck)
		if err != nil {
			return r, err
		}
		r.Dealer = dealer
		r.Deck = deck
		r.State = RoundStanding
		return r, nil
	}

	card, deck, err := r.Deck.Deal()
	if err != nil {
		return r, fmt.Errorf("player hit: %w", err)
	}
	r.Player = r.Player.AddCard(card)
	r.Deck = deck
	if r.Player.IsBust() {
		r.State = RoundPlayerBust
	}
	return r, nil
}

// PlayerWon reports the outcome of a finished round. A bust player always
// loses; otherwise the player wins on a dealer bust or a higher best total.
func (r Round) PlayerWon() bool {
	switch r.State {
	case RoundStanding:
		return r.Dealer.IsBust() || r.Player.WinsOver(r.Dealer)
	default:
		return false
	}
}

// PlayRound runs the hit/stand loop until the player busts or stands.
// stand is asked exactly once per decision point.
func PlayRound(round Round, stand StandDecision, renderer Renderer) (Round, error) {
	if renderer == nil {
		renderer = NopRenderer{}
	}

	for !round.State.IsTerminal() {
		renderer.ShowHands(round.Player, round.Dealer, true)

		next, err := round.Step(stand())
		if err != nil {
			return round, err
		}
		round = next
	}

	renderer.RoundSummary(round.PlayerWon(), round.Player, round.Dealer)
	return round, nil
}
