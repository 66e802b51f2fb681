package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/iudanet/gophcert/internal/models"
	"github.com/iudanet/gophcert/internal/server/storage"
	"github.com/iudanet/gophcert/pkg/api"
)

// state реализует чтение и запись состояния модуля поверх *sql.DB или *sql.Tx
type state struct {
	q querier
}

var _ storage.LedgerTx = (*state)(nil)

// IsIssuer reports whether the address is registered as an issuer
func (s *state) IsIssuer(ctx context.Context, address models.Address) (bool, error) {
	var exists bool
	err := s.q.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM issuers WHERE address = ?)`, string(address),
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check issuer: %w", err)
	}
	return exists, nil
}

// TemplateCount returns the number of templates of the issuer
func (s *state) TemplateCount(ctx context.Context, issuer models.Address) (uint64, error) {
	return s.count(ctx, `SELECT COUNT(*) FROM templates WHERE issuer = ?`, string(issuer))
}

// GetTemplate retrieves template by issuer and index
func (s *state) GetTemplate(ctx context.Context, issuer models.Address, index uint64) (*models.Template, error) {
	query := `
		SELECT name, description
		FROM templates
		WHERE issuer = ? AND idx = ?
	`

	t := &models.Template{}
	err := s.q.QueryRowContext(ctx, query, string(issuer), index).Scan(&t.Name, &t.Description)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrTemplateNotFound
		}
		return nil, fmt.Errorf("failed to get template: %w", err)
	}

	return t, nil
}

// CertificateCount returns the number of certificates issued by the issuer
func (s *state) CertificateCount(ctx context.Context, issuer models.Address) (uint64, error) {
	return s.count(ctx, `SELECT COUNT(*) FROM certificates WHERE issuer = ?`, string(issuer))
}

// GetCertificate retrieves certificate by issuer and index
func (s *state) GetCertificate(ctx context.Context, issuer models.Address, index uint64) (*models.Certificate, error) {
	query := `
		SELECT template_index, recipient, student_name, class_name, grades
		FROM certificates
		WHERE issuer = ? AND idx = ?
	`

	var recipient string
	c := &models.Certificate{}
	err := s.q.QueryRowContext(ctx, query, string(issuer), index).Scan(
		&c.TemplateIndex,
		&recipient,
		&c.StudentName,
		&c.ClassName,
		&c.Grades,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrCertificateNotFound
		}
		return nil, fmt.Errorf("failed to get certificate: %w", err)
	}
	c.Recipient = models.Address(recipient)

	return c, nil
}

// RefCount returns the number of certificates claimed by the recipient
func (s *state) RefCount(ctx context.Context, recipient models.Address) (uint64, error) {
	return s.count(ctx, `SELECT COUNT(*) FROM cert_refs WHERE recipient = ?`, string(recipient))
}

// GetRef retrieves the i-th claimed certificate reference of the recipient
func (s *state) GetRef(ctx context.Context, recipient models.Address, index uint64) (*models.CertRef, error) {
	var issuer string
	ref := &models.CertRef{}
	err := s.q.QueryRowContext(ctx,
		`SELECT issuer, cert_index FROM cert_refs WHERE recipient = ? AND idx = ?`,
		string(recipient), index,
	).Scan(&issuer, &ref.Index)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrRefNotFound
		}
		return nil, fmt.Errorf("failed to get certificate reference: %w", err)
	}
	ref.Issuer = models.Address(issuer)

	return ref, nil
}

// HasRef reports whether the recipient already holds the reference
func (s *state) HasRef(ctx context.Context, recipient models.Address, ref models.CertRef) (bool, error) {
	var exists bool
	err := s.q.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM cert_refs WHERE recipient = ? AND issuer = ? AND cert_index = ?)`,
		string(recipient), string(ref.Issuer), ref.Index,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check certificate reference: %w", err)
	}
	return exists, nil
}

// AddIssuer registers the address as an issuer
func (s *state) AddIssuer(ctx context.Context, address models.Address) error {
	if _, err := s.q.ExecContext(ctx,
		`INSERT OR IGNORE INTO issuers (address) VALUES (?)`, string(address),
	); err != nil {
		return fmt.Errorf("failed to add issuer: %w", err)
	}
	return nil
}

// AppendTemplate stores the template under the next dense index
func (s *state) AppendTemplate(ctx context.Context, issuer models.Address, template models.Template) (uint64, error) {
	index, err := s.TemplateCount(ctx, issuer)
	if err != nil {
		return 0, err
	}

	if _, err := s.q.ExecContext(ctx,
		`INSERT INTO templates (issuer, idx, name, description) VALUES (?, ?, ?, ?)`,
		string(issuer), index, template.Name, template.Description,
	); err != nil {
		return 0, fmt.Errorf("failed to append template: %w", err)
	}

	return index, nil
}

// AppendCertificate stores the certificate under the next dense index
func (s *state) AppendCertificate(ctx context.Context, issuer models.Address, cert models.Certificate) (uint64, error) {
	index, err := s.CertificateCount(ctx, issuer)
	if err != nil {
		return 0, err
	}

	query := `
		INSERT INTO certificates (issuer, idx, template_index, recipient, student_name, class_name, grades)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	if _, err := s.q.ExecContext(ctx, query,
		string(issuer),
		index,
		cert.TemplateIndex,
		string(cert.Recipient),
		cert.StudentName,
		cert.ClassName,
		cert.Grades,
	); err != nil {
		return 0, fmt.Errorf("failed to append certificate: %w", err)
	}

	return index, nil
}

// AppendRef records a claimed certificate for the recipient
func (s *state) AppendRef(ctx context.Context, recipient models.Address, ref models.CertRef) (uint64, error) {
	index, err := s.RefCount(ctx, recipient)
	if err != nil {
		return 0, err
	}

	if _, err := s.q.ExecContext(ctx,
		`INSERT INTO cert_refs (recipient, idx, issuer, cert_index) VALUES (?, ?, ?, ?)`,
		string(recipient), index, string(ref.Issuer), ref.Index,
	); err != nil {
		return 0, fmt.Errorf("failed to append certificate reference: %w", err)
	}

	return index, nil
}

// FinalizeTransaction sets the final status of a pending transaction
func (s *state) FinalizeTransaction(ctx context.Context, hash string, status api.TxStatus, vmStatus string, version uint64) error {
	query := `
		UPDATE transactions
		SET status = ?, vm_status = ?, version = ?
		WHERE hash = ? AND status = ?
	`

	result, err := s.q.ExecContext(ctx, query,
		string(status), vmStatus, version, hash, string(api.TxStatusPending),
	)
	if err != nil {
		return fmt.Errorf("failed to finalize transaction: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return storage.ErrTransactionNotFound
	}

	return nil
}

func (s *state) count(ctx context.Context, query string, args ...any) (uint64, error) {
	var n uint64
	if err := s.q.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count rows: %w", err)
	}
	return n, nil
}
