package ledger

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/gophcert/internal/crypto"
	"github.com/iudanet/gophcert/internal/models"
	"github.com/iudanet/gophcert/internal/server/storage/sqlite"
	"github.com/iudanet/gophcert/pkg/api"
)

const (
	testModule = "0xce27"
	alice      = models.Address("0xa11ce")
	bob        = models.Address("0xb0b")
	carol      = models.Address("0xca201")
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func setupLedger(t *testing.T) (*Ledger, *sqlite.Storage) {
	t.Helper()

	s, err := sqlite.New(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	return New(testModule, s, s, discardLogger()), s
}

func fn(name string) string {
	return testModule + "::certificates::" + name
}

func entry(name string, args ...string) api.SubmitRequest {
	return api.SubmitRequest{Function: fn(name), TypeArguments: []string{}, Arguments: args}
}

func view(name string, args ...string) api.ViewRequest {
	return api.ViewRequest{Function: fn(name), TypeArguments: []string{}, FunctionArguments: args}
}

// submitAndConfirm отправляет транзакцию и сразу производит блок
func submitAndConfirm(t *testing.T, l *Ledger, sender models.Address, req api.SubmitRequest) *models.Transaction {
	t.Helper()
	ctx := context.Background()

	tx, err := l.Submit(ctx, sender, req)
	require.NoError(t, err)

	n, err := l.ProduceBlock(ctx, DefaultMaxBlockSize)
	require.NoError(t, err)
	require.Equal(t, 1, n)

	confirmed, err := l.Transaction(ctx, tx.Hash)
	require.NoError(t, err)
	return confirmed
}

func TestLedger_Submit(t *testing.T) {
	ctx := context.Background()
	l, _ := setupLedger(t)

	req := entry(fnCreateTemplate, "Diploma", "desc")

	first, err := l.Submit(ctx, alice, req)
	require.NoError(t, err)
	assert.Equal(t, api.TxStatusPending, first.Status)
	assert.Equal(t, uint64(0), first.Sequence)
	assert.Equal(t, crypto.TransactionHash(alice.String(), 0, req.Function, req.Arguments), first.Hash)

	// тот же вызов ещё раз получает новый sequence и новый хеш
	second, err := l.Submit(ctx, alice, req)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), second.Sequence)
	assert.NotEqual(t, first.Hash, second.Hash)

	stored, err := l.Transaction(ctx, first.Hash)
	require.NoError(t, err)
	assert.Equal(t, req.Arguments, stored.Arguments)
}

func TestLedger_Submit_Rejected(t *testing.T) {
	l, _ := setupLedger(t)

	tests := []struct {
		name    string
		req     api.SubmitRequest
		wantErr error
	}{
		{
			name:    "other module",
			req:     api.SubmitRequest{Function: "0x1::certificates::create_template", Arguments: []string{"a", "b"}},
			wantErr: ErrUnknownModule,
		},
		{
			name:    "malformed function",
			req:     api.SubmitRequest{Function: "create_template", Arguments: []string{"a", "b"}},
			wantErr: ErrUnknownFunction,
		},
		{
			name:    "view function as entry",
			req:     entry(fnGetTemplate, alice.String(), "0"),
			wantErr: ErrUnknownFunction,
		},
		{
			name:    "type arguments",
			req:     api.SubmitRequest{Function: fn(fnCreateTemplate), TypeArguments: []string{"u64"}, Arguments: []string{"a", "b"}},
			wantErr: ErrTypeArguments,
		},
		{
			name:    "wrong arity",
			req:     entry(fnCreateTemplate, "only name"),
			wantErr: ErrInvalidArguments,
		},
		{
			name:    "empty template name",
			req:     entry(fnCreateTemplate, "", "desc"),
			wantErr: ErrInvalidArguments,
		},
		{
			name:    "bad recipient",
			req:     entry(fnIssueCertificate, "0", "bob", "Bob", "", ""),
			wantErr: ErrInvalidArguments,
		},
		{
			name:    "negative template index",
			req:     entry(fnIssueCertificate, "-1", bob.String(), "Bob", "", ""),
			wantErr: ErrInvalidArguments,
		},
		{
			name:    "bad claim index",
			req:     entry(fnClaimCertificate, alice.String(), "x"),
			wantErr: ErrInvalidArguments,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := l.Submit(context.Background(), alice, tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLedger_CertificateLifecycle(t *testing.T) {
	ctx := context.Background()
	l, _ := setupLedger(t)

	viewOf := func(name string, args ...string) []any {
		t.Helper()
		res, err := l.View(ctx, view(name, args...))
		require.NoError(t, err)
		return res
	}

	assert.Equal(t, []any{false}, viewOf(fnIsIssuer, alice.String()))
	assert.Equal(t, []any{"0"}, viewOf(fnGetTemplateCount, alice.String()))

	tx := submitAndConfirm(t, l, alice, entry(fnCreateTemplate, "Diploma", "University diploma"))
	assert.Equal(t, api.TxStatusSuccess, tx.Status)
	assert.Equal(t, uint64(1), tx.Version)

	assert.Equal(t, []any{true}, viewOf(fnIsIssuer, alice.String()))
	assert.Equal(t, []any{"1"}, viewOf(fnGetTemplateCount, alice.String()))
	assert.Equal(t, []any{"Diploma", "University diploma"}, viewOf(fnGetTemplate, alice.String(), "0"))

	tx = submitAndConfirm(t, l, alice, entry(fnIssueCertificate, "0", bob.String(), "Bob", "Math 101", "A"))
	assert.Equal(t, api.TxStatusSuccess, tx.Status)
	assert.Equal(t, uint64(2), tx.Version)

	assert.Equal(t, []any{"1"}, viewOf(fnGetCertificateCount, alice.String()))
	assert.Equal(t, []any{"0", bob.String(), "Bob", "Math 101", "A"}, viewOf(fnGetCertificate, alice.String(), "0"))

	// выпуск не создаёт ссылку у получателя
	assert.Equal(t, []any{"0"}, viewOf(fnGetRecipientCertCount, bob.String()))

	tx = submitAndConfirm(t, l, bob, entry(fnClaimCertificate, alice.String(), "0"))
	assert.Equal(t, api.TxStatusSuccess, tx.Status)

	assert.Equal(t, []any{"1"}, viewOf(fnGetRecipientCertCount, bob.String()))
	assert.Equal(t, []any{alice.String(), "0"}, viewOf(fnGetRecipientCertRef, bob.String(), "0"))

	version, err := l.Version(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(3), version)
}

func TestLedger_Aborts(t *testing.T) {
	ctx := context.Background()
	l, s := setupLedger(t)

	submitAndConfirm(t, l, alice, entry(fnCreateTemplate, "Diploma", ""))
	submitAndConfirm(t, l, alice, entry(fnIssueCertificate, "0", bob.String(), "Bob", "", ""))
	submitAndConfirm(t, l, bob, entry(fnClaimCertificate, alice.String(), "0"))

	tests := []struct {
		name     string
		sender   models.Address
		req      api.SubmitRequest
		vmStatus string
	}{
		{
			name:     "issue by non-issuer",
			sender:   carol,
			req:      entry(fnIssueCertificate, "0", bob.String(), "Bob", "", ""),
			vmStatus: "ENOT_ISSUER",
		},
		{
			name:     "issue with missing template",
			sender:   alice,
			req:      entry(fnIssueCertificate, "5", bob.String(), "Bob", "", ""),
			vmStatus: "ETEMPLATE_NOT_FOUND",
		},
		{
			name:     "claim missing certificate",
			sender:   bob,
			req:      entry(fnClaimCertificate, alice.String(), "9"),
			vmStatus: "ECERTIFICATE_NOT_FOUND",
		},
		{
			name:     "claim by someone else",
			sender:   carol,
			req:      entry(fnClaimCertificate, alice.String(), "0"),
			vmStatus: "ENOT_RECIPIENT",
		},
		{
			name:     "claim twice",
			sender:   bob,
			req:      entry(fnClaimCertificate, alice.String(), "0"),
			vmStatus: "EALREADY_CLAIMED",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before, err := l.Version(ctx)
			require.NoError(t, err)

			tx := submitAndConfirm(t, l, tt.sender, tt.req)
			assert.Equal(t, api.TxStatusFailed, tx.Status)
			assert.Equal(t, tt.vmStatus, tx.VMStatus)
			assert.Equal(t, before+1, tx.Version, "failed transaction still takes a version")
		})
	}

	// состояние не изменилось
	n, err := s.CertificateCount(ctx, alice)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), n)
	n, err = s.RefCount(ctx, bob)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), n)
	ok, err := s.IsIssuer(ctx, carol)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestLedger_ProduceBlock_SubmissionOrder(t *testing.T) {
	ctx := context.Background()
	l, _ := setupLedger(t)

	// выпуск до создания шаблона в том же блоке должен упасть,
	// выпуск после него пройти
	early, err := l.Submit(ctx, alice, entry(fnIssueCertificate, "0", bob.String(), "Bob", "", ""))
	require.NoError(t, err)
	create, err := l.Submit(ctx, alice, entry(fnCreateTemplate, "Diploma", ""))
	require.NoError(t, err)
	late, err := l.Submit(ctx, alice, entry(fnIssueCertificate, "0", bob.String(), "Bob", "", ""))
	require.NoError(t, err)

	n, err := l.ProduceBlock(ctx, DefaultMaxBlockSize)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	for i, want := range []struct {
		hash   string
		status api.TxStatus
	}{
		{early.Hash, api.TxStatusFailed},
		{create.Hash, api.TxStatusSuccess},
		{late.Hash, api.TxStatusSuccess},
	} {
		tx, err := l.Transaction(ctx, want.hash)
		require.NoError(t, err)
		assert.Equal(t, want.status, tx.Status)
		assert.Equal(t, uint64(i+1), tx.Version)
	}

	n, err = l.ProduceBlock(ctx, DefaultMaxBlockSize)
	require.NoError(t, err)
	assert.Zero(t, n, "nothing left to confirm")
}

func TestLedger_View_Errors(t *testing.T) {
	ctx := context.Background()
	l, _ := setupLedger(t)

	tests := []struct {
		name    string
		req     api.ViewRequest
		wantErr error
	}{
		{"unknown module", api.ViewRequest{Function: "0x1::certificates::is_issuer", FunctionArguments: []string{"0x1"}}, ErrUnknownModule},
		{"unknown function", view("get_everything", "0x1"), ErrUnknownFunction},
		{"entry function", view(fnCreateTemplate, "a", "b"), ErrUnknownFunction},
		{"wrong arity", view(fnGetTemplate, alice.String()), ErrInvalidArguments},
		{"bad address", view(fnIsIssuer, "alice"), ErrInvalidArguments},
		{"bad index", view(fnGetTemplate, alice.String(), "one"), ErrInvalidArguments},
		{"missing template", view(fnGetTemplate, alice.String(), "0"), ErrTemplateNotFound},
		{"missing certificate", view(fnGetCertificate, alice.String(), "0"), ErrCertificateNotFound},
		{"missing ref", view(fnGetRecipientCertRef, bob.String(), "0"), ErrRefNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := l.View(ctx, tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLedger_ModuleAddressCaseInsensitive(t *testing.T) {
	l, _ := setupLedger(t)

	res, err := l.View(context.Background(), api.ViewRequest{
		Function:          "0xCE27::certificates::get_template_count",
		FunctionArguments: []string{alice.String()},
	})
	require.NoError(t, err)
	assert.Equal(t, []any{"0"}, res)
	assert.Equal(t, testModule, l.Module())
}
