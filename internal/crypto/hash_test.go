package crypto

import (
	"crypto/ed25519"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveAddress(t *testing.T) {
	seed := make([]byte, ed25519.SeedSize)
	pub := ed25519.NewKeyFromSeed(seed).Public().(ed25519.PublicKey)

	addr, err := DeriveAddress(pub)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(addr, "0x"))
	assert.Len(t, addr, 2+64)

	again, err := DeriveAddress(pub)
	require.NoError(t, err)
	assert.Equal(t, addr, again, "address derivation is deterministic")

	seed[0] = 1
	other := ed25519.NewKeyFromSeed(seed).Public().(ed25519.PublicKey)
	otherAddr, err := DeriveAddress(other)
	require.NoError(t, err)
	assert.NotEqual(t, addr, otherAddr)

	_, err = DeriveAddress(ed25519.PublicKey{1, 2, 3})
	assert.Error(t, err)
}

func TestTransactionHash(t *testing.T) {
	h1 := TransactionHash("0xa", 0, "0xm::certificates::claim_certificate", []string{"0xb", "1"})
	h2 := TransactionHash("0xa", 0, "0xm::certificates::claim_certificate", []string{"0xb", "1"})
	assert.Equal(t, h1, h2)
	assert.True(t, strings.HasPrefix(h1, "0x"))
	assert.Len(t, h1, 66)

	// sequence, границы аргументов и отправитель влияют на хеш
	assert.NotEqual(t, h1, TransactionHash("0xa", 1, "0xm::certificates::claim_certificate", []string{"0xb", "1"}))
	assert.NotEqual(t, h1, TransactionHash("0xa", 0, "0xm::certificates::claim_certificate", []string{"0xb1"}))
	assert.NotEqual(t, h1, TransactionHash("0xc", 0, "0xm::certificates::claim_certificate", []string{"0xb", "1"}))
}

func TestPayloadDigest(t *testing.T) {
	fn := "0xm::certificates::create_template"

	d := PayloadDigest(fn, []string{"Diploma", ""})
	assert.Equal(t, d, PayloadDigest(fn, []string{"Diploma", ""}))
	assert.NotEqual(t, d, PayloadDigest(fn, []string{"Diploma", "x"}))
	assert.NotEqual(t, d, PayloadDigest("0xm::certificates::claim_certificate", []string{"Diploma", ""}))

	// дайджест не зависит от отправителя, в отличие от хеша транзакции
	assert.NotEqual(t, d, TransactionHash("0xa", 0, fn, []string{"Diploma", ""}))
}
