package storage

//go:generate moq -out transaction_mock.go . TransactionStorage

import (
	"context"

	"github.com/iudanet/gophcert/internal/models"
)

// TransactionStorage defines interface for submitted transactions persistence
type TransactionStorage interface {
	// SaveTransaction stores a new pending transaction
	// Returns ErrTransactionExists if the hash is already known
	SaveTransaction(ctx context.Context, tx *models.Transaction) error

	// GetTransaction retrieves transaction by hash
	// Returns ErrTransactionNotFound if transaction doesn't exist
	GetTransaction(ctx context.Context, hash string) (*models.Transaction, error)

	// PendingTransactions returns up to limit pending transactions in submission order
	PendingTransactions(ctx context.Context, limit int) ([]*models.Transaction, error)

	// NextSequence returns the number of transactions the sender has submitted so far
	NextSequence(ctx context.Context, sender models.Address) (uint64, error)

	// LatestVersion returns the version of the last confirmed transaction, 0 if none
	LatestVersion(ctx context.Context) (uint64, error)
}
