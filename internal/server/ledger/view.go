package ledger

import (
	"context"
	"errors"
	"strconv"

	"github.com/iudanet/gophcert/internal/server/storage"
	"github.com/iudanet/gophcert/pkg/api"
)

// View executes a read-only module function.
// The result is the list of return values: u64 as decimal strings,
// addresses as 0x-strings, bools as JSON booleans.
func (l *Ledger) View(ctx context.Context, req api.ViewRequest) ([]any, error) {
	if len(req.TypeArguments) != 0 {
		return nil, ErrTypeArguments
	}

	name, err := l.resolve(req.Function)
	if err != nil {
		return nil, err
	}

	result, err := l.view(ctx, name, req.FunctionArguments)
	l.recorder.ViewCalled(name, err)
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (l *Ledger) view(ctx context.Context, name string, args []string) ([]any, error) {
	if err := checkArity(viewArity, name, args); err != nil {
		return nil, err
	}

	addr, err := parseAddress(args[0])
	if err != nil {
		return nil, err
	}

	var index uint64
	if len(args) == 2 {
		if index, err = parseIndex(args[1]); err != nil {
			return nil, err
		}
	}

	switch name {
	case fnIsIssuer:
		ok, err := l.state.IsIssuer(ctx, addr)
		if err != nil {
			return nil, err
		}
		return []any{ok}, nil

	case fnGetTemplateCount:
		return count(l.state.TemplateCount(ctx, addr))

	case fnGetCertificateCount:
		return count(l.state.CertificateCount(ctx, addr))

	case fnGetRecipientCertCount:
		return count(l.state.RefCount(ctx, addr))

	case fnGetTemplate:
		t, err := l.state.GetTemplate(ctx, addr, index)
		if err != nil {
			return nil, abortOn(err, storage.ErrTemplateNotFound, ErrTemplateNotFound)
		}
		return []any{t.Name, t.Description}, nil

	case fnGetCertificate:
		c, err := l.state.GetCertificate(ctx, addr, index)
		if err != nil {
			return nil, abortOn(err, storage.ErrCertificateNotFound, ErrCertificateNotFound)
		}
		return []any{
			strconv.FormatUint(c.TemplateIndex, 10),
			c.Recipient.String(),
			c.StudentName,
			c.ClassName,
			c.Grades,
		}, nil

	case fnGetRecipientCertRef:
		ref, err := l.state.GetRef(ctx, addr, index)
		if err != nil {
			return nil, abortOn(err, storage.ErrRefNotFound, ErrRefNotFound)
		}
		return []any{ref.Issuer.String(), strconv.FormatUint(ref.Index, 10)}, nil
	}

	return nil, ErrUnknownFunction
}

func count(n uint64, err error) ([]any, error) {
	if err != nil {
		return nil, err
	}
	return []any{strconv.FormatUint(n, 10)}, nil
}

// abortOn заменяет ошибку хранилища notFound на код abort
func abortOn(err, notFound error, abort *AbortError) error {
	if errors.Is(err, notFound) {
		return abort
	}
	return err
}
