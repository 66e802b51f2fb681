// Package wallet управляет локальным кошельком: ed25519 ключом,
// seed которого хранится зашифрованным паролем пользователя.
package wallet

import (
	"context"
	"crypto/ed25519"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/gophcert/internal/client/storage"
	"github.com/iudanet/gophcert/internal/crypto"
	"github.com/iudanet/gophcert/internal/validation"
)

var (
	// ErrWalletExists is returned by Create when a wallet is already stored
	ErrWalletExists = errors.New("wallet already exists")

	// ErrWrongPassphrase is returned when the seed cannot be decrypted
	ErrWrongPassphrase = errors.New("wrong passphrase")
)

// Info публичные данные кошелька, доступные без пароля
type Info struct {
	CreatedAt time.Time
	Address   string
	PublicKey string
}

// Service предоставляет операции над локальным кошельком
type Service struct {
	store storage.WalletStorage
	now   func() time.Time
}

// NewService создает новый сервис кошелька
func NewService(store storage.WalletStorage) *Service {
	return &Service{
		store: store,
		now:   time.Now,
	}
}

// Create генерирует новый ключ и сохраняет seed, зашифрованный паролем
func (s *Service) Create(ctx context.Context, passphrase string) (*Info, error) {
	if err := validation.ValidatePassphrase(passphrase); err != nil {
		return nil, fmt.Errorf("invalid passphrase: %w", err)
	}

	if _, err := s.store.GetWallet(ctx); err == nil {
		return nil, ErrWalletExists
	} else if !errors.Is(err, storage.ErrWalletNotFound) {
		return nil, fmt.Errorf("failed to check existing wallet: %w", err)
	}

	// 1. Генерируем ключ подписи
	key, err := crypto.GenerateSigningKey()
	if err != nil {
		return nil, err
	}
	pub := key.Public().(ed25519.PublicKey)

	// 2. Адрес аккаунта выводится из публичного ключа
	address, err := crypto.DeriveAddress(pub)
	if err != nil {
		return nil, err
	}

	// 3. Деривируем ключ шифрования и шифруем seed
	salt, err := crypto.GenerateSalt()
	if err != nil {
		return nil, err
	}
	walletKey, err := crypto.DeriveWalletKey(passphrase, address, salt)
	if err != nil {
		return nil, fmt.Errorf("failed to derive wallet key: %w", err)
	}
	sealed, err := crypto.Seal(key.Seed(), walletKey, []byte(address))
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt seed: %w", err)
	}

	data := &storage.WalletData{
		Address:       address,
		PublicKey:     base64.StdEncoding.EncodeToString(pub),
		EncryptedSeed: sealed,
		Salt:          base64.StdEncoding.EncodeToString(salt),
		CreatedAt:     s.now().Unix(),
	}
	if err := s.store.SaveWallet(ctx, data); err != nil {
		return nil, fmt.Errorf("failed to save wallet: %w", err)
	}

	return infoFrom(data), nil
}

// Info возвращает публичные данные кошелька.
// Возвращает storage.ErrWalletNotFound если кошелёк не создан.
func (s *Service) Info(ctx context.Context) (*Info, error) {
	data, err := s.store.GetWallet(ctx)
	if err != nil {
		return nil, err
	}
	return infoFrom(data), nil
}

// Unlock расшифровывает seed и возвращает Signer для подписи транзакций
func (s *Service) Unlock(ctx context.Context, passphrase string) (*Signer, error) {
	data, err := s.store.GetWallet(ctx)
	if err != nil {
		return nil, err
	}

	salt, err := base64.StdEncoding.DecodeString(data.Salt)
	if err != nil {
		return nil, fmt.Errorf("corrupted wallet salt: %w", err)
	}
	walletKey, err := crypto.DeriveWalletKey(passphrase, data.Address, salt)
	if err != nil {
		return nil, fmt.Errorf("failed to derive wallet key: %w", err)
	}

	seed, err := crypto.Open(data.EncryptedSeed, walletKey, []byte(data.Address))
	if err != nil {
		return nil, ErrWrongPassphrase
	}
	key, err := crypto.SigningKeyFromSeed(seed)
	if err != nil {
		return nil, fmt.Errorf("corrupted wallet seed: %w", err)
	}

	// Адрес в записи должен соответствовать ключу
	if derived, err := crypto.DeriveAddress(key.Public().(ed25519.PublicKey)); err != nil || derived != data.Address {
		return nil, fmt.Errorf("wallet address does not match its key")
	}
	return newSigner(key, data.Address), nil
}

// Delete удаляет кошелёк из локального хранилища
func (s *Service) Delete(ctx context.Context) error {
	return s.store.DeleteWallet(ctx)
}

func infoFrom(data *storage.WalletData) *Info {
	return &Info{
		Address:   data.Address,
		PublicKey: data.PublicKey,
		CreatedAt: time.Unix(data.CreatedAt, 0),
	}
}
