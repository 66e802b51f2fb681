package storage

//go:generate moq -out token_mock.go . TokenStorage

import (
	"context"
	"time"

	"github.com/iudanet/gophcert/internal/models"
)

// TokenStorage defines interface for used session token persistence
type TokenStorage interface {
	// UseToken records the token id
	// Returns ErrTokenReused if the id was already recorded
	UseToken(ctx context.Context, token *models.UsedToken) error

	// DeleteExpiredTokens removes records that expired before now
	// Returns number of deleted records
	DeleteExpiredTokens(ctx context.Context, now time.Time) (int, error)
}
