package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/gophcert/internal/client/storage"
)

var walletKey = []byte("current")

// SaveWallet stores the wallet record
func (s *Storage) SaveWallet(ctx context.Context, w *storage.WalletData) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketWallet)
		if bucket == nil {
			return fmt.Errorf("wallet bucket not found")
		}

		// Сериализуем данные в JSON
		data, err := json.Marshal(w)
		if err != nil {
			return fmt.Errorf("failed to marshal wallet: %w", err)
		}

		if err := bucket.Put(walletKey, data); err != nil {
			return fmt.Errorf("failed to save wallet: %w", err)
		}

		return nil
	})
}

// GetWallet retrieves the wallet record
func (s *Storage) GetWallet(ctx context.Context) (*storage.WalletData, error) {
	var w *storage.WalletData

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketWallet)
		if bucket == nil {
			return fmt.Errorf("wallet bucket not found")
		}

		data := bucket.Get(walletKey)
		if data == nil {
			return storage.ErrWalletNotFound
		}

		w = &storage.WalletData{}
		if err := json.Unmarshal(data, w); err != nil {
			return fmt.Errorf("failed to unmarshal wallet: %w", err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return w, nil
}

// DeleteWallet removes the wallet record
func (s *Storage) DeleteWallet(ctx context.Context) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketWallet)
		if bucket == nil {
			return fmt.Errorf("wallet bucket not found")
		}

		// Проверяем существование данных
		if bucket.Get(walletKey) == nil {
			return storage.ErrWalletNotFound
		}

		if err := bucket.Delete(walletKey); err != nil {
			return fmt.Errorf("failed to delete wallet: %w", err)
		}

		return nil
	})
}
