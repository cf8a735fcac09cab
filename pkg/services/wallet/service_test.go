package wallet

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/fadedpez/twentyone/internal/logging"
	"github.com/fadedpez/twentyone/internal/types"
	"github.com/fadedpez/twentyone/pkg/entities"
	walletRepo "github.com/fadedpez/twentyone/pkg/repositories/wallet"
)

// MockRepository is a mock implementation of the wallet.Repository interface
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetWallet(ctx context.Context, userID string) (*entities.Wallet, error) {
	args := m.Called(ctx, userID)
	if wallet, ok := args.Get(0).(*entities.Wallet); ok {
		return wallet, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRepository) SaveWallet(ctx context.Context, wallet *entities.Wallet) error {
	args := m.Called(ctx, wallet)
	return args.Error(0)
}

func (m *MockRepository) AddTransaction(ctx context.Context, transaction *entities.Transaction) error {
	args := m.Called(ctx, transaction)
	return args.Error(0)
}

func (m *MockRepository) GetTransactions(ctx context.Context, userID string, limit int) ([]*entities.Transaction, error) {
	args := m.Called(ctx, userID, limit)
	return args.Get(0).([]*entities.Transaction), args.Error(1)
}

type ServiceTestSuite struct {
	suite.Suite
	ctx    context.Context
	logger *logging.Logger
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceTestSuite))
}

func (s *ServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.logger = logging.NewLogger(logging.ERROR, io.Discard)
}

func (s *ServiceTestSuite) TestLedgerTracksCredit() {
	service := NewService(walletRepo.NewMemoryRepository(), s.logger)

	_, err := service.Open(s.ctx, "player", 100)
	s.Require().NoError(err)

	_, err = service.RecordRound(s.ctx, "player", entities.RoundResult{ID: "r1", Number: 1, Bet: 20, Won: false, CreditBefore: 100, CreditAfter: 80})
	s.Require().NoError(err)
	wallet, err := service.RecordRound(s.ctx, "player", entities.RoundResult{ID: "r2", Number: 2, Bet: 30, Won: true, CreditBefore: 80, CreditAfter: 110})
	s.Require().NoError(err)
	s.Equal(int64(110), wallet.Balance)

	balance, err := service.Balance(s.ctx, "player")
	s.Require().NoError(err)
	s.Equal(int64(110), balance)

	history, err := service.History(s.ctx, "player", 10)
	s.Require().NoError(err)
	s.Require().Len(history, 3)
	s.Equal(entities.TransactionTypeOpen, history[0].Type)
	s.Equal(entities.TransactionTypeLoss, history[1].Type)
	s.Equal(int64(-20), history[1].Amount)
	s.Equal("r1", history[1].ReferenceID)
	s.Equal(entities.TransactionTypeWin, history[2].Type)
	s.Equal(int64(110), history[2].BalanceAfter)
}

func (s *ServiceTestSuite) TestRecordRoundRejectsMismatch() {
	service := NewService(walletRepo.NewMemoryRepository(), s.logger)
	_, err := service.Open(s.ctx, "player", 100)
	s.Require().NoError(err)

	_, err = service.RecordRound(s.ctx, "player", entities.RoundResult{Bet: 20, CreditBefore: 90, CreditAfter: 70})

	s.True(types.IsGameError(err, types.ErrInternalError))
}

func (s *ServiceTestSuite) TestRecordRoundUnknownWallet() {
	service := NewService(walletRepo.NewMemoryRepository(), s.logger)

	_, err := service.RecordRound(s.ctx, "ghost", entities.RoundResult{CreditBefore: 10, CreditAfter: 5})

	s.ErrorIs(err, walletRepo.ErrWalletNotFound)
}

func (s *ServiceTestSuite) TestOpenRejectsEmptyCredit() {
	service := NewService(walletRepo.NewMemoryRepository(), s.logger)

	_, err := service.Open(s.ctx, "player", 0)

	s.True(types.IsGameError(err, types.ErrInvalidArgument))
}

func (s *ServiceTestSuite) TestRecordRoundSaveFailure() {
	repo := new(MockRepository)
	repo.On("GetWallet", s.ctx, "player").Return(&entities.Wallet{UserID: "player", Balance: 50}, nil)
	repo.On("SaveWallet", s.ctx, mock.AnythingOfType("*entities.Wallet")).Return(errors.New("disk full"))
	service := NewService(repo, s.logger)

	_, err := service.RecordRound(s.ctx, "player", entities.RoundResult{Bet: 10, CreditBefore: 50, CreditAfter: 60, Won: true})

	s.EqualError(err, "disk full")
	repo.AssertNotCalled(s.T(), "AddTransaction", mock.Anything, mock.Anything)
	repo.AssertExpectations(s.T())
}

func (s *ServiceTestSuite) TestRecorderAdaptsService() {
	repo := new(MockRepository)
	repo.On("GetWallet", s.ctx, "player").Return(&entities.Wallet{UserID: "player", Balance: 100}, nil)
	repo.On("SaveWallet", s.ctx, mock.MatchedBy(func(w *entities.Wallet) bool { return w.Balance == 80 })).Return(nil)
	repo.On("AddTransaction", s.ctx, mock.MatchedBy(func(tx *entities.Transaction) bool {
		return tx.Type == entities.TransactionTypeLoss && tx.Amount == -20 && tx.BalanceAfter == 80
	})).Return(nil)

	recorder := NewRecorder(NewService(repo, s.logger), "player")
	err := recorder.RecordRound(s.ctx, "session-1", entities.RoundResult{ID: "r1", Number: 1, Bet: 20, CreditBefore: 100, CreditAfter: 80})

	s.Require().NoError(err)
	repo.AssertExpectations(s.T())
}
