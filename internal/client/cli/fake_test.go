package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/iudanet/gophcert/internal/client/chain"
	"github.com/iudanet/gophcert/internal/models"
	"github.com/iudanet/gophcert/pkg/api"
)

// fakeLedger минимальный ledger в памяти: views и три транзакции модуля
type fakeLedger struct {
	module    string
	refs      map[models.Address][]models.CertRef
	certs     map[models.Address][]models.Certificate
	templates map[models.Address][]models.Template
	receipts  map[string]api.TxReceipt
	version   uint64
	mu        sync.Mutex
}

func newFakeLedger(module string) *fakeLedger {
	return &fakeLedger{
		module:    module,
		refs:      map[models.Address][]models.CertRef{},
		certs:     map[models.Address][]models.Certificate{},
		templates: map[models.Address][]models.Template{},
		receipts:  map[string]api.TxReceipt{},
	}
}

func (l *fakeLedger) name(function string) string {
	return strings.TrimPrefix(function, l.module+"::certificates::")
}

func (l *fakeLedger) View(_ context.Context, req api.ViewRequest) (any, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	args := req.FunctionArguments
	addr := models.Address(args[0])
	index := func() uint64 {
		n, _ := strconv.ParseUint(args[1], 10, 64)
		return n
	}
	count := func(n int) []any { return []any{strconv.Itoa(n)} }

	switch l.name(req.Function) {
	case chain.FnGetRecipientCertCount:
		return count(len(l.refs[addr])), nil
	case chain.FnGetRecipientCertRef:
		ref := l.refs[addr][index()]
		return []any{ref.Issuer.String(), strconv.FormatUint(ref.Index, 10)}, nil
	case chain.FnGetCertificate:
		i := index()
		if i >= uint64(len(l.certs[addr])) {
			return nil, errors.New("ECERTIFICATE_NOT_FOUND")
		}
		c := l.certs[addr][i]
		return []any{strconv.FormatUint(c.TemplateIndex, 10), c.Recipient.String(), c.StudentName, c.ClassName, c.Grades}, nil
	case chain.FnIsIssuer:
		_, ok := l.templates[addr]
		return []any{ok}, nil
	case chain.FnGetTemplateCount:
		return count(len(l.templates[addr])), nil
	case chain.FnGetTemplate:
		i := index()
		if i >= uint64(len(l.templates[addr])) {
			return nil, errors.New("ETEMPLATE_NOT_FOUND")
		}
		t := l.templates[addr][i]
		return []any{t.Name, t.Description}, nil
	case chain.FnGetCertificateCount:
		return count(len(l.certs[addr])), nil
	}
	return nil, fmt.Errorf("unknown view %s", req.Function)
}

// apply исполняет транзакцию сразу; пустая строка означает успех
func (l *fakeLedger) apply(sender models.Address, req api.SubmitRequest) string {
	args := req.Arguments
	switch l.name(req.Function) {
	case chain.FnCreateTemplate:
		l.templates[sender] = append(l.templates[sender], models.Template{Name: args[0], Description: args[1]})
	case chain.FnIssueCertificate:
		tmpl, _ := strconv.ParseUint(args[0], 10, 64)
		if _, ok := l.templates[sender]; !ok {
			return "ENOT_ISSUER"
		}
		if tmpl >= uint64(len(l.templates[sender])) {
			return "ETEMPLATE_NOT_FOUND"
		}
		l.certs[sender] = append(l.certs[sender], models.Certificate{
			TemplateIndex: tmpl,
			Recipient:     models.Address(args[1]),
			StudentName:   args[2],
			ClassName:     args[3],
			Grades:        args[4],
		})
	case chain.FnClaimCertificate:
		issuer := models.Address(args[0])
		index, _ := strconv.ParseUint(args[1], 10, 64)
		if index >= uint64(len(l.certs[issuer])) {
			return "ECERTIFICATE_NOT_FOUND"
		}
		if l.certs[issuer][index].Recipient != sender {
			return "ENOT_RECIPIENT"
		}
		ref := models.CertRef{Issuer: issuer, Index: index}
		for _, r := range l.refs[sender] {
			if r.Equal(ref) {
				return "EALREADY_CLAIMED"
			}
		}
		l.refs[sender] = append(l.refs[sender], ref)
	default:
		return "EUNKNOWN_FUNCTION"
	}
	return ""
}

// fakeGateway шлюз поверх fakeLedger от имени отправителя
type fakeGateway struct {
	ledger *fakeLedger
	sender models.Address
}

func (g *fakeGateway) View(ctx context.Context, req api.ViewRequest) (any, error) {
	return g.ledger.View(ctx, req)
}

func (g *fakeGateway) Submit(_ context.Context, req api.SubmitRequest) (*api.TxReceipt, error) {
	if g.sender == "" {
		return nil, chain.ErrNoTokenSource
	}
	l := g.ledger
	l.mu.Lock()
	defer l.mu.Unlock()

	l.version++
	receipt := api.TxReceipt{
		Hash:     fmt.Sprintf("0xtx%d", l.version),
		Sender:   g.sender.String(),
		Function: req.Function,
		Status:   api.TxStatusSuccess,
		Version:  l.version,
	}
	if code := l.apply(g.sender, req); code != "" {
		receipt.Status = api.TxStatusFailed
		receipt.VMStatus = code
	}
	l.receipts[receipt.Hash] = receipt
	return &api.TxReceipt{Hash: receipt.Hash, Status: api.TxStatusPending}, nil
}

func (g *fakeGateway) WaitForTransaction(_ context.Context, hash string) (*api.TxReceipt, error) {
	g.ledger.mu.Lock()
	defer g.ledger.mu.Unlock()
	receipt, ok := g.ledger.receipts[hash]
	if !ok {
		return nil, fmt.Errorf("transaction %s not found", hash)
	}
	if receipt.Status == api.TxStatusFailed {
		return &receipt, fmt.Errorf("%w: %s", chain.ErrTransactionFailed, receipt.VMStatus)
	}
	return &receipt, nil
}

func (g *fakeGateway) Health(context.Context) (*api.HealthResponse, error) {
	g.ledger.mu.Lock()
	defer g.ledger.mu.Unlock()
	return &api.HealthResponse{Status: "ok", LedgerVersion: g.ledger.version}, nil
}
