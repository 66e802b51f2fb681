package storage

import (
	"context"

	"github.com/iudanet/gophcert/internal/client/readmodel"
	"github.com/iudanet/gophcert/internal/models"
)

//go:generate moq -out snapshot_mock.go . SnapshotStorage

// SnapshotStorage хранит снимки материализованных коллекций по аккаунтам
type SnapshotStorage interface {
	// SaveSnapshot сохраняет снимок, заменяя предыдущий снимок того же аккаунта
	SaveSnapshot(ctx context.Context, snapshot *readmodel.Snapshot) error

	// GetSnapshot возвращает снимок аккаунта.
	// Returns ErrSnapshotNotFound if the account was never synchronized
	GetSnapshot(ctx context.Context, account models.Address) (*readmodel.Snapshot, error)

	// DeleteSnapshot удаляет снимок аккаунта (disconnect)
	DeleteSnapshot(ctx context.Context, account models.Address) error
}
