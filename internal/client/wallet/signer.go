package wallet

import (
	"context"
	"crypto/ed25519"
	"time"

	"github.com/iudanet/gophcert/internal/client/chain"
	"github.com/iudanet/gophcert/internal/session"
	"github.com/iudanet/gophcert/pkg/api"
)

// Signer подписывает транзакции разблокированным ключом кошелька
type Signer struct {
	now     func() time.Time
	key     ed25519.PrivateKey
	address string
	ttl     time.Duration
}

var _ chain.TokenSource = (*Signer)(nil)

func newSigner(key ed25519.PrivateKey, address string) *Signer {
	return &Signer{
		key:     key,
		address: address,
		ttl:     session.DefaultTTL,
		now:     time.Now,
	}
}

// Address возвращает адрес аккаунта кошелька
func (s *Signer) Address() string {
	return s.address
}

// Token выпускает session token, привязанный к транзакции req
func (s *Signer) Token(ctx context.Context, req api.SubmitRequest) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return session.Sign(s.key, req, s.ttl, s.now())
}
