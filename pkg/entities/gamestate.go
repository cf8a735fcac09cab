package entities

import "time"

// GameState is the player's standing between rounds
type GameState struct {
	Credit int64
}

// NewGameState creates the state a session starts from
func NewGameState(credit int64) GameState {
	return GameState{Credit: credit}
}

// Settle returns the state after a round played for bet
func (g GameState) Settle(bet int64, won bool) GameState {
	if won {
		return GameState{Credit: g.Credit + bet}
	}
	return GameState{Credit: g.Credit - bet}
}

// IsBankrupt reports whether no credit remains
func (g GameState) IsBankrupt() bool {
	return g.Credit <= 0
}

// RoundResult records one completed round of a session
type RoundResult struct {
	ID           string
	Number       int
	Bet          int64
	Won          bool
	PlayerBust   bool
	DealerBust   bool
	Blackjack    bool // player finished on 21
	PlayerTotal  int
	DealerTotal  int
	PlayerCards  []Card
	DealerCards  []Card
	CreditBefore int64
	CreditAfter  int64
	CompletedAt  time.Time
}

// Delta returns the signed credit change of the round
func (r RoundResult) Delta() int64 {
	return r.CreditAfter - r.CreditBefore
}
