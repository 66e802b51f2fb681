package ledger

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/iudanet/gophcert/internal/models"
	"github.com/iudanet/gophcert/internal/server/storage"
)

// execute применяет транзакцию к состоянию.
// *AbortError означает штатное прерывание: вызывающий откатывает изменения
// и помечает транзакцию failed.
func (l *Ledger) execute(ctx context.Context, st storage.LedgerTx, tx *models.Transaction) error {
	name, err := l.resolve(tx.Function)
	if err != nil {
		return err
	}
	if err := validateEntry(name, tx.Arguments); err != nil {
		return err
	}

	args := tx.Arguments
	switch name {
	case fnCreateTemplate:
		return createTemplate(ctx, st, tx.Sender, models.Template{
			Name:        args[0],
			Description: args[1],
		})

	case fnIssueCertificate:
		templateIndex, _ := parseIndex(args[0])
		return issueCertificate(ctx, st, tx.Sender, models.Certificate{
			TemplateIndex: templateIndex,
			Recipient:     models.Address(args[1]),
			StudentName:   args[2],
			ClassName:     args[3],
			Grades:        args[4],
		})

	case fnClaimCertificate:
		index, _ := parseIndex(args[1])
		return claimCertificate(ctx, st, tx.Sender, models.CertRef{
			Issuer: models.Address(args[0]),
			Index:  index,
		})
	}

	return fmt.Errorf("%w: %s", ErrUnknownFunction, name)
}

// createTemplate регистрирует отправителя issuer'ом и добавляет шаблон
func createTemplate(ctx context.Context, st storage.LedgerTx, sender models.Address, tpl models.Template) error {
	if err := st.AddIssuer(ctx, sender); err != nil {
		return err
	}
	_, err := st.AppendTemplate(ctx, sender, tpl)
	return err
}

func issueCertificate(ctx context.Context, st storage.LedgerTx, sender models.Address, cert models.Certificate) error {
	ok, err := st.IsIssuer(ctx, sender)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotIssuer
	}

	templates, err := st.TemplateCount(ctx, sender)
	if err != nil {
		return err
	}
	if cert.TemplateIndex >= templates {
		return ErrTemplateNotFound
	}

	_, err = st.AppendCertificate(ctx, sender, cert)
	return err
}

func claimCertificate(ctx context.Context, st storage.LedgerTx, sender models.Address, ref models.CertRef) error {
	cert, err := st.GetCertificate(ctx, ref.Issuer, ref.Index)
	if err != nil {
		if errors.Is(err, storage.ErrCertificateNotFound) {
			return ErrCertificateNotFound
		}
		return err
	}

	// адреса сравниваются без учёта регистра hex-цифр
	if !strings.EqualFold(cert.Recipient.String(), sender.String()) {
		return ErrNotRecipient
	}

	claimed, err := st.HasRef(ctx, sender, ref)
	if err != nil {
		return err
	}
	if claimed {
		return ErrAlreadyClaimed
	}

	_, err = st.AppendRef(ctx, sender, ref)
	return err
}
