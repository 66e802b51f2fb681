package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/gophcert/internal/client/readmodel"
	"github.com/iudanet/gophcert/internal/client/storage"
	"github.com/iudanet/gophcert/internal/models"
)

// SaveSnapshot сохраняет снимок под ключом адреса аккаунта
func (s *Storage) SaveSnapshot(ctx context.Context, snapshot *readmodel.Snapshot) error {
	if snapshot == nil || snapshot.Account == "" {
		return fmt.Errorf("snapshot account is empty")
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSnapshots)
		if bucket == nil {
			return fmt.Errorf("snapshots bucket not found")
		}

		// Сериализуем снимок в JSON
		data, err := json.Marshal(snapshot)
		if err != nil {
			return fmt.Errorf("failed to marshal snapshot: %w", err)
		}

		if err := bucket.Put([]byte(snapshot.Account), data); err != nil {
			return fmt.Errorf("failed to save snapshot: %w", err)
		}

		return nil
	})
}

// GetSnapshot возвращает снимок аккаунта
func (s *Storage) GetSnapshot(ctx context.Context, account models.Address) (*readmodel.Snapshot, error) {
	var snapshot *readmodel.Snapshot

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSnapshots)
		if bucket == nil {
			return fmt.Errorf("snapshots bucket not found")
		}

		data := bucket.Get([]byte(account))
		if data == nil {
			return storage.ErrSnapshotNotFound
		}

		// Десериализуем
		snapshot = &readmodel.Snapshot{}
		if err := json.Unmarshal(data, snapshot); err != nil {
			return fmt.Errorf("failed to unmarshal snapshot: %w", err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return snapshot, nil
}

// DeleteSnapshot удаляет снимок аккаунта. Отсутствие снимка не ошибка.
func (s *Storage) DeleteSnapshot(ctx context.Context, account models.Address) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSnapshots)
		if bucket == nil {
			return fmt.Errorf("snapshots bucket not found")
		}

		if err := bucket.Delete([]byte(account)); err != nil {
			return fmt.Errorf("failed to delete snapshot: %w", err)
		}

		return nil
	})
}
