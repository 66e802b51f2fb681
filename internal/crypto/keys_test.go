package crypto

import (
	"bytes"
	"crypto/ed25519"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSalt(t *testing.T) {
	salt1, err := GenerateSalt()
	require.NoError(t, err)
	assert.Len(t, salt1, SaltSize)

	salt2, err := GenerateSalt()
	require.NoError(t, err)
	assert.NotEqual(t, salt1, salt2, "salts should be random")
}

func TestDeriveWalletKey(t *testing.T) {
	salt := bytes.Repeat([]byte{7}, SaltSize)

	tests := []struct {
		name       string
		passphrase string
		address    string
		salt       []byte
		wantErr    string
	}{
		{name: "valid", passphrase: "correct horse battery", address: "0xabc", salt: salt},
		{name: "empty passphrase", passphrase: "", address: "0xabc", salt: salt, wantErr: "passphrase cannot be empty"},
		{name: "empty address", passphrase: "pass", address: "", salt: salt, wantErr: "address cannot be empty"},
		{name: "short salt", passphrase: "pass", address: "0xabc", salt: []byte{1, 2}, wantErr: "salt must be 32 bytes, got 2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, err := DeriveWalletKey(tt.passphrase, tt.address, tt.salt)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Len(t, key, Argon2KeyLen)
		})
	}
}

func TestDeriveWalletKey_Determinism(t *testing.T) {
	salt := bytes.Repeat([]byte{1}, SaltSize)

	k1, err := DeriveWalletKey("passphrase", "0xabc", salt)
	require.NoError(t, err)
	k2, err := DeriveWalletKey("passphrase", "0xabc", salt)
	require.NoError(t, err)
	assert.Equal(t, k1, k2)

	// другой адрес или соль дают другой ключ
	k3, err := DeriveWalletKey("passphrase", "0xabd", salt)
	require.NoError(t, err)
	assert.NotEqual(t, k1, k3)

	k4, err := DeriveWalletKey("passphrase", "0xabc", bytes.Repeat([]byte{2}, SaltSize))
	require.NoError(t, err)
	assert.NotEqual(t, k1, k4)
}

func TestSigningKeyFromSeed(t *testing.T) {
	priv, err := GenerateSigningKey()
	require.NoError(t, err)
	require.Len(t, priv, ed25519.PrivateKeySize)

	restored, err := SigningKeyFromSeed(priv.Seed())
	require.NoError(t, err)
	assert.True(t, priv.Equal(restored))

	_, err = SigningKeyFromSeed([]byte("short"))
	require.Error(t, err)
}
