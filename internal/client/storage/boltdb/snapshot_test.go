package boltdb

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/gophcert/internal/client/readmodel"
	"github.com/iudanet/gophcert/internal/client/storage"
	"github.com/iudanet/gophcert/internal/models"
)

func TestStorage_SaveGetDeleteSnapshot(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	snapshot := &readmodel.Snapshot{
		SyncedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		Account:  "0xB0B",
		Owned:    []models.CertRef{{Issuer: "0xA11CE", Index: 0}, {Issuer: "0xA11CE", Index: 1}},
		Details: map[string]models.Certificate{
			"0xA11CE:0": {TemplateIndex: 0, Recipient: "0xB0B", StudentName: "Ana", ClassName: "CS101", Grades: "A"},
		},
		Templates: []models.Template{{Name: "Honor Roll", Description: "Top grades"}},
		Issued:    []models.IssuedCert{{Index: 0, Cert: models.Certificate{StudentName: "Bob"}}},
	}

	// До сохранения снимка нет
	_, err := store.GetSnapshot(ctx, "0xB0B")
	assert.ErrorIs(t, err, storage.ErrSnapshotNotFound)

	require.NoError(t, store.SaveSnapshot(ctx, snapshot))

	got, err := store.GetSnapshot(ctx, "0xB0B")
	require.NoError(t, err)
	assert.Equal(t, snapshot, got)

	// Снимки разных аккаунтов независимы
	_, err = store.GetSnapshot(ctx, "0xA11CE")
	assert.ErrorIs(t, err, storage.ErrSnapshotNotFound)

	require.NoError(t, store.DeleteSnapshot(ctx, "0xB0B"))
	_, err = store.GetSnapshot(ctx, "0xB0B")
	assert.ErrorIs(t, err, storage.ErrSnapshotNotFound)

	// Повторное удаление не ошибка
	assert.NoError(t, store.DeleteSnapshot(ctx, "0xB0B"))
}

func TestStorage_SaveSnapshot_Overwrite(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	require.NoError(t, store.SaveSnapshot(ctx, &readmodel.Snapshot{
		Account: "0xB0B",
		Owned:   []models.CertRef{{Issuer: "0xA", Index: 0}},
	}))
	require.NoError(t, store.SaveSnapshot(ctx, &readmodel.Snapshot{
		Account: "0xB0B",
		Owned:   []models.CertRef{{Issuer: "0xA", Index: 0}, {Issuer: "0xA", Index: 1}},
	}))

	got, err := store.GetSnapshot(ctx, "0xB0B")
	require.NoError(t, err)
	assert.Len(t, got.Owned, 2)
}

func TestStorage_SaveSnapshot_NoAccount(t *testing.T) {
	store := createTestStorage(t)
	assert.Error(t, store.SaveSnapshot(context.Background(), &readmodel.Snapshot{}))
	assert.Error(t, store.SaveSnapshot(context.Background(), nil))
}
