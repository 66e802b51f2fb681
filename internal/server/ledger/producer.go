package ledger

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/gophcert/internal/server/storage"
	"github.com/iudanet/gophcert/pkg/api"
)

// DefaultMaxBlockSize ограничивает число транзакций в одном блоке
const DefaultMaxBlockSize = 100

// ProduceBlock executes pending transactions in submission order.
// Every transaction gets the next ledger version. An aborted transaction
// leaves the state untouched and is marked failed with its abort code.
// Returns the number of finalized transactions.
func (l *Ledger) ProduceBlock(ctx context.Context, maxSize int) (int, error) {
	pending, err := l.txs.PendingTransactions(ctx, maxSize)
	if err != nil {
		return 0, fmt.Errorf("failed to load pending transactions: %w", err)
	}

	version, err := l.txs.LatestVersion(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to load ledger version: %w", err)
	}

	processed := 0
	defer func() {
		l.recorder.BlockProduced(version, processed)
	}()

	for _, tx := range pending {
		if err := ctx.Err(); err != nil {
			return processed, err
		}

		next := version + 1
		status := api.TxStatusSuccess
		vmStatus := ""

		err := l.state.Apply(ctx, func(st storage.LedgerTx) error {
			if err := l.execute(ctx, st, tx); err != nil {
				return err
			}
			return st.FinalizeTransaction(ctx, tx.Hash, status, vmStatus, next)
		})

		var abort *AbortError
		if errors.As(err, &abort) {
			status, vmStatus = api.TxStatusFailed, abort.Code
			err = l.state.Apply(ctx, func(st storage.LedgerTx) error {
				return st.FinalizeTransaction(ctx, tx.Hash, status, vmStatus, next)
			})
		}
		if err != nil {
			// транзакция остаётся pending и будет повторена в следующем блоке
			return processed, fmt.Errorf("failed to execute transaction %s: %w", tx.Hash, err)
		}

		version = next
		processed++
		l.recorder.TransactionExecuted(status)
		l.logger.Info("Transaction confirmed",
			"hash", tx.Hash,
			"status", status,
			"vm_status", vmStatus,
			"version", version)
	}

	return processed, nil
}

// BlockProducer confirms pending transactions on a fixed interval.
type BlockProducer struct {
	ledger   *Ledger
	interval time.Duration
	maxSize  int
}

// NewBlockProducer creates a producer that runs every interval.
func NewBlockProducer(l *Ledger, interval time.Duration) *BlockProducer {
	return &BlockProducer{
		ledger:   l,
		interval: interval,
		maxSize:  DefaultMaxBlockSize,
	}
}

// Run produces blocks until ctx is canceled.
// Block errors are logged; the next tick retries the remaining transactions.
func (p *BlockProducer) Run(ctx context.Context) error {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.ledger.logger.Info("Block producer started", "interval", p.interval)

	for {
		select {
		case <-ctx.Done():
			p.ledger.logger.Info("Block producer stopped")
			return nil
		case <-ticker.C:
			n, err := p.ledger.ProduceBlock(ctx, p.maxSize)
			if err != nil && !errors.Is(err, context.Canceled) {
				p.ledger.logger.Error("Failed to produce block", "error", err, "processed", n)
				continue
			}
			if n > 0 {
				p.ledger.logger.Debug("Block produced", "transactions", n)
			}
		}
	}
}
