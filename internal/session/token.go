package session

import (
	"crypto/ed25519"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/iudanet/gophcert/internal/crypto"
	"github.com/iudanet/gophcert/pkg/api"
)

// Issuer значение claim iss для всех session token'ов
const Issuer = "gophcert"

// DefaultTTL срок жизни токена, подписанного для одной транзакции
const DefaultTTL = 2 * time.Minute

var (
	// ErrAddressMismatch indicates that the subject is not derived from the embedded key
	ErrAddressMismatch = errors.New("token subject does not match public key")

	// ErrDigestMismatch indicates that the token was signed for another transaction
	ErrDigestMismatch = errors.New("token was signed for a different transaction")
)

// Claims представляет claims session token'а.
// Токен самоподписан: публичный ключ передаётся в pk, адрес в sub.
type Claims struct {
	PublicKey string `json:"pk"`  // base64 ed25519 public key
	Digest    string `json:"txd"` // PayloadDigest подписанной транзакции
	jwt.RegisteredClaims
}

// Sign подписывает транзакцию ключом кошелька и возвращает EdDSA JWT
func Sign(key ed25519.PrivateKey, req api.SubmitRequest, ttl time.Duration, now time.Time) (string, error) {
	pub, ok := key.Public().(ed25519.PublicKey)
	if !ok {
		return "", fmt.Errorf("unexpected public key type %T", key.Public())
	}
	address, err := crypto.DeriveAddress(pub)
	if err != nil {
		return "", err
	}

	claims := Claims{
		PublicKey: base64.StdEncoding.EncodeToString(pub),
		Digest:    crypto.PayloadDigest(req.Function, req.Arguments),
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			Subject:   address,
			Issuer:    Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now.Add(-5 * time.Second)),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodEdDSA, claims)
	tokenString, err := token.SignedString(key)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return tokenString, nil
}

// Verify проверяет подпись, срок действия, адрес и привязку к транзакции.
// now задаёт текущее время для проверки exp/nbf.
func Verify(tokenString string, req api.SubmitRequest, now func() time.Time) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		// Проверяем что используется правильный алгоритм подписи
		if _, ok := token.Method.(*jwt.SigningMethodEd25519); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		claims, ok := token.Claims.(*Claims)
		if !ok {
			return nil, fmt.Errorf("unexpected claims type")
		}
		raw, err := base64.StdEncoding.DecodeString(claims.PublicKey)
		if err != nil || len(raw) != ed25519.PublicKeySize {
			return nil, fmt.Errorf("invalid public key claim")
		}
		return ed25519.PublicKey(raw), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodEdDSA.Alg()}),
		jwt.WithIssuer(Issuer),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
		jwt.WithTimeFunc(now),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	pub, _ := base64.StdEncoding.DecodeString(claims.PublicKey)
	address, err := crypto.DeriveAddress(pub)
	if err != nil {
		return nil, err
	}
	if address != claims.Subject {
		return nil, ErrAddressMismatch
	}
	if claims.Digest != crypto.PayloadDigest(req.Function, req.Arguments) {
		return nil, ErrDigestMismatch
	}

	return claims, nil
}
