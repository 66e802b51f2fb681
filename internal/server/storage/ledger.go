package storage

//go:generate moq -out ledger_mock.go . LedgerStorage

import (
	"context"

	"github.com/iudanet/gophcert/internal/models"
	"github.com/iudanet/gophcert/pkg/api"
)

// LedgerReader provides read access to the certificates module state.
// Indices are dense: the n-th element of a per-address collection has index n.
type LedgerReader interface {
	// IsIssuer reports whether the address has created at least one template
	IsIssuer(ctx context.Context, address models.Address) (bool, error)

	// TemplateCount returns the number of templates of the issuer
	TemplateCount(ctx context.Context, issuer models.Address) (uint64, error)

	// GetTemplate returns ErrTemplateNotFound if index is out of range
	GetTemplate(ctx context.Context, issuer models.Address, index uint64) (*models.Template, error)

	// CertificateCount returns the number of certificates issued by the issuer
	CertificateCount(ctx context.Context, issuer models.Address) (uint64, error)

	// GetCertificate returns ErrCertificateNotFound if index is out of range
	GetCertificate(ctx context.Context, issuer models.Address, index uint64) (*models.Certificate, error)

	// RefCount returns the number of certificates claimed by the recipient
	RefCount(ctx context.Context, recipient models.Address) (uint64, error)

	// GetRef returns ErrRefNotFound if index is out of range
	GetRef(ctx context.Context, recipient models.Address, index uint64) (*models.CertRef, error)

	// HasRef reports whether the recipient already claimed the certificate
	HasRef(ctx context.Context, recipient models.Address, ref models.CertRef) (bool, error)
}

// LedgerWriter mutates the module state. Only available inside LedgerStorage.Apply.
type LedgerWriter interface {
	// AddIssuer registers the address as an issuer; repeated calls are no-ops
	AddIssuer(ctx context.Context, address models.Address) error

	// AppendTemplate stores the template under the next index and returns it
	AppendTemplate(ctx context.Context, issuer models.Address, template models.Template) (uint64, error)

	// AppendCertificate stores the certificate under the next index and returns it
	AppendCertificate(ctx context.Context, issuer models.Address, cert models.Certificate) (uint64, error)

	// AppendRef records a claimed certificate for the recipient and returns its index
	AppendRef(ctx context.Context, recipient models.Address, ref models.CertRef) (uint64, error)

	// FinalizeTransaction moves a pending transaction to its final status
	// Returns ErrTransactionNotFound if there is no pending transaction with this hash
	FinalizeTransaction(ctx context.Context, hash string, status api.TxStatus, vmStatus string, version uint64) error
}

// LedgerTx is the state view passed to LedgerStorage.Apply.
type LedgerTx interface {
	LedgerReader
	LedgerWriter
}

// LedgerStorage defines interface for certificates module state persistence
type LedgerStorage interface {
	LedgerReader

	// Apply runs fn in a single database transaction.
	// If fn returns an error, every change made through tx is rolled back.
	Apply(ctx context.Context, fn func(tx LedgerTx) error) error
}
