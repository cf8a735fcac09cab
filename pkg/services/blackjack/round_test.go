package blackjack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fadedpez/twentyone/internal/types"
	"github.com/fadedpez/twentyone/pkg/entities"
)

// recordingRenderer keeps every notification for assertions
type recordingRenderer struct {
	shown     []bool
	summaries []bool
	outcomes  []SessionOutcome
}

func (r *recordingRenderer) ShowHands(player, dealer Hand, hideDealer bool) {
	r.shown = append(r.shown, hideDealer)
}

func (r *recordingRenderer) RoundSummary(won bool, player, dealer Hand) {
	r.summaries = append(r.summaries, won)
}

func (r *recordingRenderer) SessionEnded(outcome SessionOutcome, state entities.GameState) {
	r.outcomes = append(r.outcomes, outcome)
}

// scripted answers stand decisions in order and counts the calls
type scripted struct {
	answers []bool
	calls   int
}

func (s *scripted) next() bool {
	answer := s.answers[s.calls]
	s.calls++
	return answer
}

func TestStepHit(t *testing.T) {
	round := NewRound(
		MakeHand(card(entities.Five, entities.Hearts), card(entities.Six, entities.Clubs)),
		MakeHand(card(entities.King, entities.Hearts), card(entities.Seven, entities.Clubs)),
		entities.NewDeck(card(entities.Nine, entities.Spades)),
	)

	next, err := round.Step(false)

	require.NoError(t, err)
	assert.Equal(t, RoundInProgress, next.State)
	assert.Equal(t, 20, next.Player.BestTotal())
	assert.Equal(t, 0, next.Deck.Len())
	assert.Equal(t, 11, round.Player.RawTotal(), "the previous round should be unchanged")
}

func TestStepHitBusts(t *testing.T) {
	round := NewRound(
		MakeHand(card(entities.King, entities.Hearts), card(entities.Queen, entities.Clubs)),
		MakeHand(card(entities.Two, entities.Hearts), card(entities.Three, entities.Clubs)),
		entities.NewDeck(card(entities.Two, entities.Spades)),
	)

	next, err := round.Step(false)

	require.NoError(t, err)
	assert.Equal(t, RoundPlayerBust, next.State)
	assert.False(t, next.PlayerWon())
	assert.Equal(t, 2, next.Dealer.Len(), "the dealer does not play when the player busts")
}

func TestStepStandPlaysDealer(t *testing.T) {
	round := NewRound(
		MakeHand(card(entities.King, entities.Hearts), card(entities.Eight, entities.Clubs)),
		MakeHand(card(entities.Ten, entities.Spades), card(entities.Six, entities.Hearts)),
		entities.NewDeck(card(entities.Two, entities.Clubs), card(entities.Five, entities.Clubs)),
	)

	next, err := round.Step(true)

	require.NoError(t, err)
	assert.Equal(t, RoundStanding, next.State)
	assert.Equal(t, 18, next.Dealer.RawTotal())
	assert.Equal(t, 1, next.Deck.Len())
	assert.False(t, next.PlayerWon(), "18 against 18 is not a win")
}

func TestStepAfterFinish(t *testing.T) {
	round := Round{State: RoundStanding}

	_, err := round.Step(false)

	assert.ErrorIs(t, err, ErrRoundFinished)
	assert.True(t, types.IsGameError(err, types.ErrInvalidState))
}

func TestPlayerWon(t *testing.T) {
	twenty := MakeHand(card(entities.King, entities.Hearts), card(entities.Queen, entities.Clubs))
	nineteen := MakeHand(card(entities.King, entities.Spades), card(entities.Nine, entities.Clubs))
	dealerBust := MakeHand(card(entities.King, entities.Diamonds), card(entities.Six, entities.Clubs), card(entities.Ten, entities.Clubs))

	testCases := []struct {
		name     string
		round    Round
		expected bool
	}{
		{name: "higher total", round: Round{Player: twenty, Dealer: nineteen, State: RoundStanding}, expected: true},
		{name: "lower total", round: Round{Player: nineteen, Dealer: twenty, State: RoundStanding}, expected: false},
		{name: "tie loses", round: Round{Player: twenty, Dealer: twenty, State: RoundStanding}, expected: false},
		{name: "dealer bust", round: Round{Player: nineteen, Dealer: dealerBust, State: RoundStanding}, expected: true},
		{name: "player bust", round: Round{Player: dealerBust, Dealer: nineteen, State: RoundPlayerBust}, expected: false},
		{name: "in progress", round: Round{Player: twenty, Dealer: nineteen, State: RoundInProgress}, expected: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.round.PlayerWon())
		})
	}
}

func TestPlayRoundHitThenStand(t *testing.T) {
	renderer := &recordingRenderer{}
	decisions := &scripted{answers: []bool{false, true}}
	round := NewRound(
		MakeHand(card(entities.Five, entities.Hearts), card(entities.Six, entities.Clubs)),
		MakeHand(card(entities.King, entities.Hearts), card(entities.Seven, entities.Clubs)),
		entities.NewDeck(card(entities.Nine, entities.Spades), card(entities.Two, entities.Spades)),
	)

	final, err := PlayRound(round, decisions.next, renderer)

	require.NoError(t, err)
	assert.Equal(t, 2, decisions.calls, "stand should be asked once per decision point")
	assert.Equal(t, RoundStanding, final.State)
	assert.Equal(t, 20, final.Player.BestTotal())
	assert.Equal(t, 2, final.Dealer.Len(), "dealer stands on 17")
	assert.True(t, final.PlayerWon())
	assert.Equal(t, []bool{true, true}, renderer.shown, "dealer is hidden at every decision")
	assert.Equal(t, []bool{true}, renderer.summaries)
}

func TestPlayRoundBustStopsAsking(t *testing.T) {
	renderer := &recordingRenderer{}
	decisions := &scripted{answers: []bool{false, false, false}}
	round := NewRound(
		MakeHand(card(entities.Ten, entities.Hearts), card(entities.Six, entities.Clubs)),
		MakeHand(card(entities.King, entities.Hearts), card(entities.Seven, entities.Clubs)),
		entities.NewDeck(card(entities.Two, entities.Spades), card(entities.King, entities.Spades), card(entities.Ace, entities.Spades)),
	)

	final, err := PlayRound(round, decisions.next, renderer)

	require.NoError(t, err)
	assert.Equal(t, 2, decisions.calls)
	assert.Equal(t, RoundPlayerBust, final.State)
	assert.Equal(t, 28, final.Player.RawTotal())
	assert.Equal(t, []bool{false}, renderer.summaries)
}

func TestPlayRoundEmptyDeck(t *testing.T) {
	round := NewRound(
		MakeHand(card(entities.Two, entities.Hearts), card(entities.Three, entities.Clubs)),
		MakeHand(card(entities.King, entities.Hearts), card(entities.Seven, entities.Clubs)),
		entities.NewDeck(),
	)

	_, err := PlayRound(round, func() bool { return false }, nil)

	assert.ErrorIs(t, err, entities.ErrEmptyDeck)
}

func TestPlayRoundIsDeterministic(t *testing.T) {
	deck := entities.NewStandardDeck()
	play := func() Round {
		player, dealer, rest, err := DealInitialHands(deck)
		require.NoError(t, err)
		decisions := &scripted{answers: []bool{false, false, true}}
		stand := func() bool {
			if decisions.calls == len(decisions.answers) {
				return true
			}
			return decisions.next()
		}
		final, err := PlayRound(NewRound(player, dealer, rest), stand, NopRenderer{})
		require.NoError(t, err)
		return final
	}

	first := play()
	second := play()

	assert.Equal(t, first.State, second.State)
	assert.Equal(t, first.PlayerWon(), second.PlayerWon())
	assert.Equal(t, first.Player.Cards(), second.Player.Cards())
	assert.Equal(t, first.Dealer.Cards(), second.Dealer.Cards())
}
