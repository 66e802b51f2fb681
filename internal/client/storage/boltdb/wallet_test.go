package boltdb

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/gophcert/internal/client/storage"
)

func TestStorage_SaveGetDeleteWallet(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	w := &storage.WalletData{
		Address:       "0x4f2a",
		PublicKey:     "cHVibGlj",
		EncryptedSeed: "c2VlZA==",
		Salt:          "c2FsdA==",
		CreatedAt:     1700000000,
	}

	// Проверяем что GetWallet до сохранения выдаст ErrWalletNotFound
	_, err := store.GetWallet(ctx)
	assert.ErrorIs(t, err, storage.ErrWalletNotFound)

	require.NoError(t, store.SaveWallet(ctx, w))

	got, err := store.GetWallet(ctx)
	require.NoError(t, err)
	assert.Equal(t, w, got)

	require.NoError(t, store.DeleteWallet(ctx))

	_, err = store.GetWallet(ctx)
	assert.ErrorIs(t, err, storage.ErrWalletNotFound)

	// Повторное удаление
	err = store.DeleteWallet(ctx)
	assert.ErrorIs(t, err, storage.ErrWalletNotFound)
}
