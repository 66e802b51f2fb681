package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/iudanet/gophcert/internal/models"
	"github.com/iudanet/gophcert/internal/server/storage"
	"github.com/iudanet/gophcert/pkg/api"
)

const transactionColumns = `hash, sender, sequence, function, arguments, status, vm_status, version, submitted_at`

// SaveTransaction stores a new pending transaction
func (s *Storage) SaveTransaction(ctx context.Context, tx *models.Transaction) error {
	args, err := json.Marshal(tx.Arguments)
	if err != nil {
		return fmt.Errorf("failed to marshal arguments: %w", err)
	}

	query := `
		INSERT INTO transactions (` + transactionColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err = s.db.ExecContext(ctx, query,
		tx.Hash,
		string(tx.Sender),
		tx.Sequence,
		tx.Function,
		string(args),
		string(tx.Status),
		tx.VMStatus,
		tx.Version,
		tx.SubmittedAt,
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return storage.ErrTransactionExists
		}
		return fmt.Errorf("failed to save transaction: %w", err)
	}

	return nil
}

// GetTransaction retrieves transaction by hash
func (s *Storage) GetTransaction(ctx context.Context, hash string) (*models.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE hash = ?`

	tx, err := scanTransaction(s.db.QueryRowContext(ctx, query, hash))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}

	return tx, nil
}

// PendingTransactions returns pending transactions in submission order
func (s *Storage) PendingTransactions(ctx context.Context, limit int) ([]*models.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE status = ?
		ORDER BY id ASC
		LIMIT ?
	`

	rows, err := s.db.QueryContext(ctx, query, string(api.TxStatusPending), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query pending transactions: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var txs []*models.Transaction

	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		txs = append(txs, tx)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return txs, nil
}

// NextSequence returns the number of transactions submitted by the sender
func (s *Storage) NextSequence(ctx context.Context, sender models.Address) (uint64, error) {
	return s.count(ctx, `SELECT COUNT(*) FROM transactions WHERE sender = ?`, string(sender))
}

// LatestVersion returns the highest confirmed version
func (s *Storage) LatestVersion(ctx context.Context) (uint64, error) {
	return s.count(ctx, `SELECT COALESCE(MAX(version), 0) FROM transactions`)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTransaction(row rowScanner) (*models.Transaction, error) {
	var (
		sender, status, args string
	)

	tx := &models.Transaction{}
	if err := row.Scan(
		&tx.Hash,
		&sender,
		&tx.Sequence,
		&tx.Function,
		&args,
		&status,
		&tx.VMStatus,
		&tx.Version,
		&tx.SubmittedAt,
	); err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(args), &tx.Arguments); err != nil {
		return nil, fmt.Errorf("failed to unmarshal arguments: %w", err)
	}
	tx.Sender = models.Address(sender)
	tx.Status = api.TxStatus(status)

	return tx, nil
}
