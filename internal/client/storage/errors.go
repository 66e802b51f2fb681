package storage

import "errors"

// Common client storage errors
var (
	// ErrSnapshotNotFound indicates that no read-model snapshot exists for the account
	ErrSnapshotNotFound = errors.New("snapshot not found")

	// ErrWalletNotFound indicates that no wallet has been created yet
	ErrWalletNotFound = errors.New("wallet not found")

	// ErrStorageClosed indicates that storage is closed
	ErrStorageClosed = errors.New("storage is closed")
)
