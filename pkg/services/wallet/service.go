package wallet

import (
	"context"
	"fmt"
	"time"

	"github.com/fadedpez/twentyone/internal/logging"
	"github.com/fadedpez/twentyone/internal/types"
	"github.com/fadedpez/twentyone/pkg/entities"
	walletRepo "github.com/fadedpez/twentyone/pkg/repositories/wallet"
	"github.com/google/uuid"
)

// Service keeps a ledger of the player's credit as rounds settle
type Service struct {
	repo   walletRepo.Repository
	logger *logging.Logger
}

// NewService creates a new wallet service
func NewService(repo walletRepo.Repository, logger *logging.Logger) *Service {
	if logger == nil {
		logger = logging.Default
	}
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// Open creates (or resets) the wallet a session starts from
func (s *Service) Open(ctx context.Context, userID string, credit int64) (*entities.Wallet, error) {
	if credit <= 0 {
		return nil, types.NewGameError(types.ErrInvalidArgument, "starting credit must be positive")
	}

	wallet := &entities.Wallet{
		UserID:      userID,
		Balance:     credit,
		LastUpdated: time.Now(),
	}
	if err := s.repo.SaveWallet(ctx, wallet); err != nil {
		return nil, err
	}

	transaction := &entities.Transaction{
		ID:           uuid.New().String(),
		UserID:       userID,
		Amount:       credit,
		Type:         entities.TransactionTypeOpen,
		Description:  "Starting credit",
		Timestamp:    time.Now(),
		BalanceAfter: credit,
	}
	if err := s.repo.AddTransaction(ctx, transaction); err != nil {
		return nil, err
	}

	s.logger.Debug("[WALLET] Opened wallet for %s with $%d", userID, credit)
	return wallet, nil
}

// RecordRound applies a settled round to the ledger. The ledger must agree
// with the credit the round started from.
func (s *Service) RecordRound(ctx context.Context, userID string, result entities.RoundResult) (*entities.Wallet, error) {
	wallet, err := s.repo.GetWallet(ctx, userID)
	if err != nil {
		return nil, err
	}

	if wallet.Balance != result.CreditBefore {
		return nil, types.NewGameError(types.ErrInternalError,
			fmt.Sprintf("ledger balance %d does not match round credit %d", wallet.Balance, result.CreditBefore))
	}

	s.logger.Debug("[WALLET] Before round %d - User %s: Balance=$%d", result.Number, userID, wallet.Balance)

	wallet.Balance += result.Delta()
	wallet.LastUpdated = time.Now()
	if err := s.repo.SaveWallet(ctx, wallet); err != nil {
		return nil, err
	}

	txType := entities.TransactionTypeLoss
	if result.Won {
		txType = entities.TransactionTypeWin
	}
	transaction := &entities.Transaction{
		ID:           uuid.New().String(),
		UserID:       userID,
		Amount:       result.Delta(),
		Type:         txType,
		ReferenceID:  result.ID,
		Description:  fmt.Sprintf("Round %d: bet $%d", result.Number, result.Bet),
		Timestamp:    time.Now(),
		BalanceAfter: wallet.Balance,
	}
	if err := s.repo.AddTransaction(ctx, transaction); err != nil {
		return nil, err
	}

	s.logger.Debug("[WALLET] After round %d - User %s: Balance=$%d", result.Number, userID, wallet.Balance)
	return wallet, nil
}

// Balance returns the current balance for a user
func (s *Service) Balance(ctx context.Context, userID string) (int64, error) {
	wallet, err := s.repo.GetWallet(ctx, userID)
	if err != nil {
		return 0, err
	}
	return wallet.Balance, nil
}

// History returns the most recent transactions for a user
func (s *Service) History(ctx context.Context, userID string, limit int) ([]*entities.Transaction, error) {
	return s.repo.GetTransactions(ctx, userID, limit)
}
