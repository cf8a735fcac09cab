package blackjack

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/fadedpez/twentyone/internal/logging"
	"github.com/fadedpez/twentyone/internal/types"
	"github.com/fadedpez/twentyone/pkg/entities"
)

// ErrInvalidBet is returned for a wager outside [0, credit]
var ErrInvalidBet = types.NewGameError(types.ErrInvalidBet, "bet must be between 0 and the current credit")

// SessionOutcome represents why a session stopped
type SessionOutcome string

const (
	SessionBankrupt SessionOutcome = "BANKRUPT"
	SessionExited   SessionOutcome = "EXITED"
)

// SessionResult is the record of a finished session
type SessionResult struct {
	ID      string
	Outcome SessionOutcome
	Final   entities.GameState
	Rounds  []entities.RoundResult
}

// Collaborators are the decision sources and listeners a session talks to.
// Shuffle, Bet, Stand and Continue are required.
type Collaborators struct {
	Shuffle   entities.ShuffleFunc
	Bet       BetSource
	Stand     StandDecision
	Continue  ContinueDecision
	Renderer  Renderer
	Recorders []RoundRecorder
}

// Session repeats rounds against the house until the player is out of
// credit or chooses to stop
type Session struct {
	ID string

	shuffle   entities.ShuffleFunc
	bet       BetSource
	stand     StandDecision
	cont      ContinueDecision
	renderer  Renderer
	recorders []RoundRecorder
	logger    *logging.Logger
	now       func() time.Time
}

// NewSession creates a session. A nil renderer discards notifications and a
// nil logger falls back to logging.Default.
func NewSession(c Collaborators, logger *logging.Logger) (*Session, error) {
	if c.Shuffle == nil || c.Bet == nil || c.Stand == nil || c.Continue == nil {
		return nil, types.NewGameError(types.ErrInvalidArgument, "shuffle, bet, stand and continue are required")
	}
	if c.Renderer == nil {
		c.Renderer = NopRenderer{}
	}
	if logger == nil {
		logger = logging.Default
	}

	return &Session{
		ID:        uuid.New().String(),
		shuffle:   c.Shuffle,
		bet:       c.Bet,
		stand:     c.Stand,
		cont:      c.Continue,
		renderer:  c.Renderer,
		recorders: c.Recorders,
		logger:    logger,
		now:       time.Now,
	}, nil
}

// ValidateBet checks that bet lies in [0, credit]
func ValidateBet(bet, credit int64) error {
	if bet < 0 || bet > credit {
		return types.NewGameError(types.ErrInvalidBet, fmt.Sprintf("bet of %d is outside [0, %d]", bet, credit))
	}
	return nil
}

// Run plays rounds starting from initial until the credit reaches zero or
// the player declines to continue. A core failure or a cancelled ctx aborts
// the session and is returned together with the rounds completed so far.
func (s *Session) Run(ctx context.Context, initial entities.GameState) (SessionResult, error) {
	result := SessionResult{ID: s.ID, Final: initial}
	if initial.IsBankrupt() {
		return result, types.NewGameError(types.ErrInvalidState, fmt.Sprintf("cannot start a session with %d credit", initial.Credit))
	}

	s.logger.Info("Session %s started with %d credit", s.ID, initial.Credit)

	state := initial
	for number := 1; ; number++ {
		if err := ctx.Err(); err != nil {
			s.logger.Warn("Session %s interrupted before round %d", s.ID, number)
			return result, fmt.Errorf("round %d: %w", number, err)
		}

		round, err := s.playRound(ctx, number, state)
		if err != nil {
			s.logger.LogError(err)
			return result, fmt.Errorf("round %d: %w", number, err)
		}

		result.Rounds = append(result.Rounds, round)
		state = entities.NewGameState(round.CreditAfter)
		result.Final = state

		if state.IsBankrupt() {
			result.Outcome = SessionBankrupt
			break
		}
		if err := ctx.Err(); err != nil {
			s.logger.Warn("Session %s interrupted after round %d", s.ID, number)
			return result, fmt.Errorf("round %d: %w", number, err)
		}
		if !s.cont() {
			result.Outcome = SessionExited
			break
		}
	}

	s.logger.Info("Session %s ended %s after %d rounds with %d credit", s.ID, result.Outcome, len(result.Rounds), state.Credit)
	s.renderer.SessionEnded(result.Outcome, state)
	return result, nil
}

func (s *Session) playRound(ctx context.Context, number int, state entities.GameState) (entities.RoundResult, error) {
	deck := entities.NewStandardDeck().Shuffle(s.shuffle)
	if deck.Len() != 52 {
		return entities.RoundResult{}, types.NewGameError(types.ErrInvalidArgument, fmt.Sprintf("shuffle returned %d cards, want 52", deck.Len()))
	}

	bet := s.bet(state.Credit)
	if err := ctx.Err(); err != nil {
		return entities.RoundResult{}, err
	}
	if err := ValidateBet(bet, state.Credit); err != nil {
		return entities.RoundResult{}, err
	}
	s.logger.Debug("Round %d: bet %d of %d credit", number, bet, state.Credit)

	player, dealer, rest, err := DealInitialHands(deck)
	if err != nil {
		return entities.RoundResult{}, err
	}

	final, err := PlayRound(NewRound(player, dealer, rest), s.stand, s.renderer)
	if err != nil {
		return entities.RoundResult{}, err
	}

	won := final.PlayerWon()
	next := state.Settle(bet, won)
	round := entities.RoundResult{
		ID:           uuid.New().String(),
		Number:       number,
		Bet:          bet,
		Won:          won,
		PlayerBust:   final.Player.IsBust(),
		DealerBust:   final.Dealer.IsBust(),
		Blackjack:    final.Player.IsBlackjack(),
		PlayerTotal:  final.Player.BestTotal(),
		DealerTotal:  final.Dealer.BestTotal(),
		PlayerCards:  final.Player.Cards(),
		DealerCards:  final.Dealer.Cards(),
		CreditBefore: state.Credit,
		CreditAfter:  next.Credit,
		CompletedAt:  s.now(),
	}
	s.logger.Debug("Round %d: player %s (%d) dealer %s (%d) won=%v", number, final.Player, final.Player.BestTotal(), final.Dealer, final.Dealer.BestTotal(), won)

	for _, recorder := range s.recorders {
		if err := recorder.RecordRound(ctx, s.ID, round); err != nil {
			return round, types.WrapError(types.ErrInternalError, "recording round", err)
		}
	}

	return round, nil
}
