package storage

import "context"

//go:generate moq -out wallet_mock.go . WalletStorage

// WalletStorage defines interface for storing the local wallet.
// Seed хранится только в зашифрованном виде; шифрование выполняет wallet.Service.
type WalletStorage interface {
	// SaveWallet stores the wallet record as-is
	SaveWallet(ctx context.Context, w *WalletData) error

	// GetWallet retrieves the wallet record
	// Returns ErrWalletNotFound if no wallet exists
	GetWallet(ctx context.Context) (*WalletData, error)

	// DeleteWallet removes the wallet record
	DeleteWallet(ctx context.Context) error
}

// WalletData represents the wallet record in storage
type WalletData struct {
	Address       string `json:"address"`        // 0x-адрес аккаунта
	PublicKey     string `json:"public_key"`     // base64 ed25519 public key
	EncryptedSeed string `json:"encrypted_seed"` // base64(nonce || ciphertext) ed25519 seed
	Salt          string `json:"salt"`           // base64 соль Argon2id
	CreatedAt     int64  `json:"created_at"`
}
