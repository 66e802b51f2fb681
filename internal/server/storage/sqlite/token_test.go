package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/gophcert/internal/models"
	"github.com/iudanet/gophcert/internal/server/storage"
)

func TestTokenStorage_UseToken(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	now := time.Now()
	token := &models.UsedToken{
		ID:        "jti-1",
		Sender:    "0xa",
		ExpiresAt: now.Add(time.Minute),
		UsedAt:    now,
	}

	require.NoError(t, s.UseToken(ctx, token))

	err := s.UseToken(ctx, token)
	assert.ErrorIs(t, err, storage.ErrTokenReused)
}

func TestTokenStorage_DeleteExpiredTokens(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	now := time.Now()
	tokens := []*models.UsedToken{
		{ID: "expired-1", Sender: "0xa", ExpiresAt: now.Add(-time.Hour), UsedAt: now.Add(-2 * time.Hour)},
		{ID: "expired-2", Sender: "0xa", ExpiresAt: now.Add(-time.Minute), UsedAt: now.Add(-time.Hour)},
		{ID: "valid", Sender: "0xb", ExpiresAt: now.Add(time.Hour), UsedAt: now},
	}
	for _, tok := range tokens {
		require.NoError(t, s.UseToken(ctx, tok))
	}

	deleted, err := s.DeleteExpiredTokens(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, 2, deleted)

	// истёкший id снова принимается, действующий нет
	require.NoError(t, s.UseToken(ctx, tokens[0]))
	assert.ErrorIs(t, s.UseToken(ctx, tokens[2]), storage.ErrTokenReused)

	deleted, err = s.DeleteExpiredTokens(ctx, now.Add(-24*time.Hour))
	require.NoError(t, err)
	assert.Zero(t, deleted)
}
