package storage

import (
	"context"

	"github.com/iudanet/gophcert/internal/models"
)

//go:generate moq -out metadata_mock.go . MetadataStorage

// MetadataStorage defines interface for storing client session metadata
type MetadataStorage interface {
	// SaveActiveAccount запоминает подключённый аккаунт (connect)
	SaveActiveAccount(ctx context.Context, account models.Address) error

	// GetActiveAccount возвращает подключённый аккаунт.
	// Returns an empty address if no account is connected
	GetActiveAccount(ctx context.Context) (models.Address, error)

	// ClearActiveAccount забывает подключённый аккаунт (disconnect)
	ClearActiveAccount(ctx context.Context) error
}
