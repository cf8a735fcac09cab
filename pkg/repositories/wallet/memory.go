package wallet

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/fadedpez/twentyone/internal/types"
	"github.com/fadedpez/twentyone/pkg/entities"
)

var ErrWalletNotFound = types.NewGameError(types.ErrAccountNotFound, "wallet not found")

// account is one player's wallet and the ledger that produced its balance
type account struct {
	wallet  entities.Wallet
	entries []entities.Transaction
}

// MemoryRepository keeps ledgers in process memory, keyed by user ID
type MemoryRepository struct {
	mu       sync.RWMutex
	accounts map[string]*account
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{accounts: make(map[string]*account)}
}

func (r *MemoryRepository) GetWallet(ctx context.Context, userID string) (*entities.Wallet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	acc, ok := r.accounts[userID]
	if !ok {
		return nil, ErrWalletNotFound
	}
	wallet := acc.wallet
	return &wallet, nil
}

// SaveWallet opens an account on first save. Later saves replace the
// balance and keep the ledger.
func (r *MemoryRepository) SaveWallet(ctx context.Context, wallet *entities.Wallet) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	wallet.LastUpdated = time.Now()
	acc, ok := r.accounts[wallet.UserID]
	if !ok {
		acc = &account{}
		r.accounts[wallet.UserID] = acc
	}
	acc.wallet = *wallet
	return nil
}

// AddTransaction appends to an open account. The entry's BalanceAfter must
// equal the saved balance, so the wallet is always saved first.
func (r *MemoryRepository) AddTransaction(ctx context.Context, transaction *entities.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	acc, ok := r.accounts[transaction.UserID]
	if !ok {
		return ErrWalletNotFound
	}
	if transaction.BalanceAfter != acc.wallet.Balance {
		return types.NewGameError(types.ErrInternalError,
			fmt.Sprintf("transaction leaves balance %d but wallet holds %d", transaction.BalanceAfter, acc.wallet.Balance))
	}

	if transaction.ID == "" {
		transaction.ID = uuid.New().String()
	}
	if transaction.Timestamp.IsZero() {
		transaction.Timestamp = time.Now()
	}
	acc.entries = append(acc.entries, *transaction)
	return nil
}

// GetTransactions returns the last limit ledger entries, oldest first.
// A limit of zero or less returns the whole ledger.
func (r *MemoryRepository) GetTransactions(ctx context.Context, userID string, limit int) ([]*entities.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	acc, ok := r.accounts[userID]
	if !ok {
		return []*entities.Transaction{}, nil
	}

	entries := acc.entries
	if limit > 0 && len(entries) > limit {
		entries = entries[len(entries)-limit:]
	}
	result := make([]*entities.Transaction, len(entries))
	for i := range entries {
		entry := entries[i]
		result[i] = &entry
	}
	return result, nil
}
