// Package ledger реализует модуль certificates для devnet-шлюза:
// view-функции, приём транзакций и их выполнение блоками.
package ledger

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/iudanet/gophcert/internal/crypto"
	"github.com/iudanet/gophcert/internal/models"
	"github.com/iudanet/gophcert/internal/server/storage"
	"github.com/iudanet/gophcert/pkg/api"
)

// Recorder receives ledger events for metrics.
type Recorder interface {
	TransactionSubmitted(function string)
	TransactionExecuted(status api.TxStatus)
	BlockProduced(version uint64, size int)
	ViewCalled(function string, err error)
}

type nopRecorder struct{}

func (nopRecorder) TransactionSubmitted(string) {}
func (nopRecorder) TransactionExecuted(api.TxStatus) {}
func (nopRecorder) BlockProduced(uint64, int) {}
func (nopRecorder) ViewCalled(string, error) {}

// Ledger is the certificates module published at a fixed module address.
type Ledger struct {
	state    storage.LedgerStorage
	txs      storage.TransactionStorage
	recorder Recorder
	logger   *slog.Logger
	now      func() time.Time
	module   string

	// submitMu сериализует выдачу sequence и сохранение транзакции
	submitMu sync.Mutex
}

// Option configures a Ledger.
type Option func(*Ledger)

// WithRecorder sets the metrics recorder.
func WithRecorder(r Recorder) Option {
	return func(l *Ledger) {
		if r != nil {
			l.recorder = r
		}
	}
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(l *Ledger) {
		l.now = now
	}
}

// New creates a ledger for the module address.
func New(module string, state storage.LedgerStorage, txs storage.TransactionStorage, logger *slog.Logger, opts ...Option) *Ledger {
	l := &Ledger{
		module:   module,
		state:    state,
		txs:      txs,
		recorder: nopRecorder{},
		logger:   logger,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Module returns the module address.
func (l *Ledger) Module() string {
	return l.module
}

// Submit validates the call and stores it as a pending transaction.
// The transaction is executed later by the block producer.
func (l *Ledger) Submit(ctx context.Context, sender models.Address, req api.SubmitRequest) (*models.Transaction, error) {
	if len(req.TypeArguments) != 0 {
		return nil, ErrTypeArguments
	}

	name, err := l.resolve(req.Function)
	if err != nil {
		return nil, err
	}
	if err := validateEntry(name, req.Arguments); err != nil {
		return nil, err
	}

	args := req.Arguments
	if args == nil {
		args = []string{}
	}

	l.submitMu.Lock()
	defer l.submitMu.Unlock()

	seq, err := l.txs.NextSequence(ctx, sender)
	if err != nil {
		return nil, fmt.Errorf("failed to get sender sequence: %w", err)
	}

	tx := &models.Transaction{
		Hash:        crypto.TransactionHash(sender.String(), seq, req.Function, args),
		Sender:      sender,
		Sequence:    seq,
		Function:    req.Function,
		Arguments:   args,
		Status:      api.TxStatusPending,
		SubmittedAt: l.now().UTC(),
	}

	if err := l.txs.SaveTransaction(ctx, tx); err != nil {
		return nil, fmt.Errorf("failed to save transaction: %w", err)
	}

	l.recorder.TransactionSubmitted(name)
	l.logger.Info("Transaction accepted",
		"hash", tx.Hash,
		"sender", sender,
		"function", name,
		"sequence", seq)

	return tx, nil
}

// Transaction returns the transaction by hash.
func (l *Ledger) Transaction(ctx context.Context, hash string) (*models.Transaction, error) {
	return l.txs.GetTransaction(ctx, hash)
}

// Version returns the version of the last confirmed transaction.
func (l *Ledger) Version(ctx context.Context) (uint64, error) {
	return l.txs.LatestVersion(ctx)
}
