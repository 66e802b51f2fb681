package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/gophcert/internal/models"
	"github.com/iudanet/gophcert/internal/server/storage"
	"github.com/iudanet/gophcert/pkg/api"
)

func newPendingTx(hash string, sender models.Address, seq uint64) *models.Transaction {
	return &models.Transaction{
		Hash:        hash,
		Sender:      sender,
		Sequence:    seq,
		Function:    "0xce27::certificates::create_template",
		Arguments:   []string{"Diploma", "desc"},
		Status:      api.TxStatusPending,
		SubmittedAt: time.Now().UTC().Truncate(time.Second),
	}
}

func TestTransactionStorage_SaveAndGet(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	tx := newPendingTx("0x01", "0xa", 0)
	require.NoError(t, s.SaveTransaction(ctx, tx))

	got, err := s.GetTransaction(ctx, "0x01")
	require.NoError(t, err)
	assert.Equal(t, tx.Hash, got.Hash)
	assert.Equal(t, tx.Sender, got.Sender)
	assert.Equal(t, tx.Function, got.Function)
	assert.Equal(t, tx.Arguments, got.Arguments)
	assert.Equal(t, api.TxStatusPending, got.Status)
	assert.True(t, tx.SubmittedAt.Equal(got.SubmittedAt))

	err = s.SaveTransaction(ctx, tx)
	assert.ErrorIs(t, err, storage.ErrTransactionExists)

	_, err = s.GetTransaction(ctx, "0xmissing")
	assert.ErrorIs(t, err, storage.ErrTransactionNotFound)
}

func TestTransactionStorage_PendingOrderAndFinalize(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	for i, hash := range []string{"0x03", "0x01", "0x02"} {
		require.NoError(t, s.SaveTransaction(ctx, newPendingTx(hash, "0xa", uint64(i))))
	}

	pending, err := s.PendingTransactions(ctx, 10)
	require.NoError(t, err)
	require.Len(t, pending, 3)
	// порядок приёма, а не порядок хешей
	assert.Equal(t, "0x03", pending[0].Hash)
	assert.Equal(t, "0x01", pending[1].Hash)
	assert.Equal(t, "0x02", pending[2].Hash)

	limited, err := s.PendingTransactions(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)

	err = s.Apply(ctx, func(tx storage.LedgerTx) error {
		if err := tx.FinalizeTransaction(ctx, "0x03", api.TxStatusSuccess, "", 1); err != nil {
			return err
		}
		return tx.FinalizeTransaction(ctx, "0x01", api.TxStatusFailed, "ENOT_ISSUER", 2)
	})
	require.NoError(t, err)

	pending, err = s.PendingTransactions(ctx, 10)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "0x02", pending[0].Hash)

	failed, err := s.GetTransaction(ctx, "0x01")
	require.NoError(t, err)
	assert.Equal(t, api.TxStatusFailed, failed.Status)
	assert.Equal(t, "ENOT_ISSUER", failed.VMStatus)
	assert.Equal(t, uint64(2), failed.Version)

	version, err := s.LatestVersion(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), version)

	// финальный статус повторно не меняется
	err = s.Apply(ctx, func(tx storage.LedgerTx) error {
		return tx.FinalizeTransaction(ctx, "0x03", api.TxStatusFailed, "X", 3)
	})
	assert.ErrorIs(t, err, storage.ErrTransactionNotFound)
}

func TestTransactionStorage_Sequence(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	seq, err := s.NextSequence(ctx, "0xa")
	require.NoError(t, err)
	assert.Zero(t, seq)

	require.NoError(t, s.SaveTransaction(ctx, newPendingTx("0x01", "0xa", 0)))
	require.NoError(t, s.SaveTransaction(ctx, newPendingTx("0x02", "0xb", 0)))

	seq, err = s.NextSequence(ctx, "0xa")
	require.NoError(t, err)
	assert.Equal(t, uint64(1), seq)

	version, err := s.LatestVersion(ctx)
	require.NoError(t, err)
	assert.Zero(t, version)
}
