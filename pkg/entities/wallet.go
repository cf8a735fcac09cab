package entities

import (
	"time"
)

// Wallet represents a player's credit inventory
type Wallet struct {
	UserID      string    // Player name
	Balance     int64     // Current credit
	LastUpdated time.Time // When the wallet was last updated
}

// TransactionType represents the type of wallet transaction
type TransactionType string

const (
	TransactionTypeOpen TransactionType = "OPEN"
	TransactionTypeWin  TransactionType = "WIN"
	TransactionTypeLoss TransactionType = "LOSS"
)

// Transaction represents a single wallet transaction
type Transaction struct {
	ID           string          // Unique identifier
	UserID       string          // User associated with the transaction
	Amount       int64           // Amount (positive for additions, negative for subtractions)
	Type         TransactionType // Type of transaction
	ReferenceID  string          // Round ID the transaction settles, if any
	Description  string          // Human-readable description
	Timestamp    time.Time       // When the transaction occurred
	BalanceAfter int64           // Balance after this transaction
}
