package chain

import (
	"context"
	"fmt"
	"strconv"

	"github.com/iudanet/gophcert/internal/models"
)

// Views выполняет типизированные view-вызовы модуля certificates
type Views struct {
	viewer Viewer
	module Module
}

// NewViews creates typed view accessors over the given viewer.
func NewViews(viewer Viewer, module Module) *Views {
	return &Views{viewer: viewer, module: module}
}

// Module returns the module address the views are bound to.
func (v *Views) Module() Module {
	return v.module
}

func (v *Views) call(ctx context.Context, name string, args ...string) (any, error) {
	return v.viewer.View(ctx, v.module.ViewCall(name, args...))
}

// RecipientCertCount возвращает число сертификатов, заявленных аккаунтом
func (v *Views) RecipientCertCount(ctx context.Context, account models.Address) (uint64, error) {
	raw, err := v.call(ctx, FnGetRecipientCertCount, account.String())
	if err != nil {
		return 0, err
	}
	n, err := Count(raw)
	if err != nil {
		return 0, fmt.Errorf("decode recipient cert count: %w", err)
	}
	return n, nil
}

// RecipientCertRef возвращает i-ю ссылку на заявленный сертификат
func (v *Views) RecipientCertRef(ctx context.Context, account models.Address, i uint64) (models.CertRef, error) {
	raw, err := v.call(ctx, FnGetRecipientCertRef, account.String(), strconv.FormatUint(i, 10))
	if err != nil {
		return models.CertRef{}, err
	}
	return DecodeCertRef(raw)
}

// Certificate возвращает сертификат issuer'а по индексу
func (v *Views) Certificate(ctx context.Context, issuer models.Address, index uint64) (models.Certificate, error) {
	raw, err := v.call(ctx, FnGetCertificate, issuer.String(), strconv.FormatUint(index, 10))
	if err != nil {
		return models.Certificate{}, err
	}
	return DecodeCertificate(raw)
}

// IsIssuer сообщает, зарегистрирован ли аккаунт как issuer
func (v *Views) IsIssuer(ctx context.Context, account models.Address) (bool, error) {
	raw, err := v.call(ctx, FnIsIssuer, account.String())
	if err != nil {
		return false, err
	}
	ok, err := AsBool(Unwrap(raw))
	if err != nil {
		return false, fmt.Errorf("decode is_issuer: %w", err)
	}
	return ok, nil
}

// TemplateCount возвращает число шаблонов issuer'а
func (v *Views) TemplateCount(ctx context.Context, issuer models.Address) (uint64, error) {
	raw, err := v.call(ctx, FnGetTemplateCount, issuer.String())
	if err != nil {
		return 0, err
	}
	n, err := Count(raw)
	if err != nil {
		return 0, fmt.Errorf("decode template count: %w", err)
	}
	return n, nil
}

// Template возвращает шаблон issuer'а по индексу
func (v *Views) Template(ctx context.Context, issuer models.Address, index uint64) (models.Template, error) {
	raw, err := v.call(ctx, FnGetTemplate, issuer.String(), strconv.FormatUint(index, 10))
	if err != nil {
		return models.Template{}, err
	}
	return DecodeTemplate(raw)
}

// CertificateCount возвращает число сертификатов, выпущенных issuer'ом
func (v *Views) CertificateCount(ctx context.Context, issuer models.Address) (uint64, error) {
	raw, err := v.call(ctx, FnGetCertificateCount, issuer.String())
	if err != nil {
		return 0, err
	}
	n, err := Count(raw)
	if err != nil {
		return 0, fmt.Errorf("decode certificate count: %w", err)
	}
	return n, nil
}
