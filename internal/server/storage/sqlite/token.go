package sqlite

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/iudanet/gophcert/internal/models"
	"github.com/iudanet/gophcert/internal/server/storage"
)

// UseToken records the session token id; a repeated id is rejected
func (s *Storage) UseToken(ctx context.Context, token *models.UsedToken) error {
	query := `
		INSERT INTO used_tokens (id, sender, expires_at, used_at)
		VALUES (?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		token.ID,
		string(token.Sender),
		token.ExpiresAt.Unix(),
		token.UsedAt,
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return storage.ErrTokenReused
		}
		return fmt.Errorf("failed to record used token: %w", err)
	}

	return nil
}

// DeleteExpiredTokens removes records that expired before now
func (s *Storage) DeleteExpiredTokens(ctx context.Context, now time.Time) (int, error) {
	result, err := s.db.ExecContext(ctx, `DELETE FROM used_tokens WHERE expires_at < ?`, now.Unix())
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired tokens: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return int(rows), nil
}
