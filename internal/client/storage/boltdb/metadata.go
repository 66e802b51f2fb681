package boltdb

import (
	"context"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/gophcert/internal/models"
)

const (
	keyActiveAccount = "active_account"
)

// SaveActiveAccount запоминает подключённый аккаунт
func (s *Storage) SaveActiveAccount(ctx context.Context, account models.Address) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return fmt.Errorf("metadata bucket not found")
		}

		if err := bucket.Put([]byte(keyActiveAccount), []byte(account)); err != nil {
			return fmt.Errorf("failed to save active account: %w", err)
		}

		return nil
	})
}

// GetActiveAccount возвращает подключённый аккаунт или пустой адрес
func (s *Storage) GetActiveAccount(ctx context.Context) (models.Address, error) {
	var account models.Address

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return fmt.Errorf("metadata bucket not found")
		}

		// Если аккаунт не найден, возвращаем пустой адрес (не подключены)
		if v := bucket.Get([]byte(keyActiveAccount)); v != nil {
			account = models.Address(v)
		}
		return nil
	})

	if err != nil {
		return "", fmt.Errorf("failed to get active account: %w", err)
	}

	return account, nil
}

// ClearActiveAccount забывает подключённый аккаунт
func (s *Storage) ClearActiveAccount(ctx context.Context) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return fmt.Errorf("metadata bucket not found")
		}

		if err := bucket.Delete([]byte(keyActiveAccount)); err != nil {
			return fmt.Errorf("failed to clear active account: %w", err)
		}

		return nil
	})
}
