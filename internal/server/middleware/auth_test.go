package middleware

import (
	"bytes"
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/gophcert/internal/crypto"
	"github.com/iudanet/gophcert/internal/models"
	"github.com/iudanet/gophcert/internal/server/handlers"
	"github.com/iudanet/gophcert/internal/server/storage"
	"github.com/iudanet/gophcert/internal/session"
	"github.com/iudanet/gophcert/pkg/api"
)

// setupTestLogger creates a logger for testing
func setupTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
}

// memoryTokens реализует TokenStorage в памяти поверх сгенерированного мока
func memoryTokens() *storage.TokenStorageMock {
	var mu sync.Mutex
	used := make(map[string]bool)

	return &storage.TokenStorageMock{
		UseTokenFunc: func(ctx context.Context, token *models.UsedToken) error {
			mu.Lock()
			defer mu.Unlock()
			if used[token.ID] {
				return storage.ErrTokenReused
			}
			used[token.ID] = true
			return nil
		},
	}
}

type signer struct {
	key     ed25519.PrivateKey
	address string
}

func newSigner(t *testing.T) signer {
	t.Helper()
	pub, key, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)
	address, err := crypto.DeriveAddress(pub)
	require.NoError(t, err)
	return signer{key: key, address: address}
}

var testSubmit = api.SubmitRequest{
	Function:      "0xce27::certificates::create_template",
	TypeArguments: []string{},
	Arguments:     []string{"Diploma", "desc"},
}

func submitRequest(t *testing.T, token string, req api.SubmitRequest) *http.Request {
	t.Helper()
	body, err := json.Marshal(req)
	require.NoError(t, err)

	r := httptest.NewRequest(http.MethodPost, "/v1/transactions", bytes.NewReader(body))
	if token != "" {
		r.Header.Set("Authorization", "Bearer "+token)
	}
	return r
}

// echoSender возвращает адрес отправителя и тело запроса, дошедшие до handler'а
func echoSender(t *testing.T) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sender, ok := handlers.GetSender(r.Context())
		require.True(t, ok, "sender should be in context")

		var req api.SubmitRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req), "body must be readable again")

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(sender.String() + " " + req.Arguments[0]))
	}
}

func TestSessionAuth_Success(t *testing.T) {
	s := newSigner(t)
	tokens := memoryTokens()
	auth := NewSessionAuth(tokens, 5*time.Minute, setupTestLogger())

	token, err := session.Sign(s.key, testSubmit, session.DefaultTTL, time.Now())
	require.NoError(t, err)

	w := httptest.NewRecorder()
	auth.Middleware(echoSender(t)).ServeHTTP(w, submitRequest(t, token, testSubmit))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, s.address+" Diploma", w.Body.String())

	calls := tokens.UseTokenCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, models.Address(s.address), calls[0].Token.Sender)
	assert.NotEmpty(t, calls[0].Token.ID)
}

func TestSessionAuth_Rejects(t *testing.T) {
	s := newSigner(t)
	now := time.Now()

	valid, err := session.Sign(s.key, testSubmit, session.DefaultTTL, now)
	require.NoError(t, err)
	old, err := session.Sign(s.key, testSubmit, time.Hour, now.Add(-10*time.Minute))
	require.NoError(t, err)

	tampered := testSubmit
	tampered.Arguments = []string{"Forged", "desc"}

	tests := []struct {
		name       string
		header     string
		req        api.SubmitRequest
		wantStatus int
	}{
		{"missing header", "", testSubmit, http.StatusUnauthorized},
		{"wrong scheme", "Basic " + valid, testSubmit, http.StatusUnauthorized},
		{"empty token", "Bearer ", testSubmit, http.StatusUnauthorized},
		{"garbage token", "Bearer not-a-jwt", testSubmit, http.StatusUnauthorized},
		{"body does not match token", "Bearer " + valid, tampered, http.StatusUnauthorized},
		{"token older than max age", "Bearer " + old, testSubmit, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := memoryTokens()
			auth := NewSessionAuth(tokens, 5*time.Minute, setupTestLogger())

			r := submitRequest(t, "", tt.req)
			if tt.header != "" {
				r.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()

			auth.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				t.Fatal("handler must not be called")
			})).ServeHTTP(w, r)

			assert.Equal(t, tt.wantStatus, w.Code)

			var errResp api.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &errResp))
			assert.Equal(t, "unauthorized", errResp.Error)
			assert.Empty(t, tokens.UseTokenCalls(), "rejected tokens are not recorded")
		})
	}
}

func TestSessionAuth_Replay(t *testing.T) {
	s := newSigner(t)
	auth := NewSessionAuth(memoryTokens(), 5*time.Minute, setupTestLogger())
	handler := auth.Middleware(echoSender(t))

	token, err := session.Sign(s.key, testSubmit, session.DefaultTTL, time.Now())
	require.NoError(t, err)

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, submitRequest(t, token, testSubmit))
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	handler.ServeHTTP(w, submitRequest(t, token, testSubmit))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "token already used")
}

func TestSessionAuth_BadBodyAndStorageError(t *testing.T) {
	s := newSigner(t)
	token, err := session.Sign(s.key, testSubmit, session.DefaultTTL, time.Now())
	require.NoError(t, err)

	t.Run("malformed body", func(t *testing.T) {
		auth := NewSessionAuth(memoryTokens(), time.Minute, setupTestLogger())
		r := httptest.NewRequest(http.MethodPost, "/v1/transactions", bytes.NewReader([]byte("{")))
		r.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()

		auth.Middleware(echoSender(t)).ServeHTTP(w, r)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("token storage failure", func(t *testing.T) {
		tokens := &storage.TokenStorageMock{
			UseTokenFunc: func(ctx context.Context, token *models.UsedToken) error {
				return errors.New("database is locked")
			},
		}
		auth := NewSessionAuth(tokens, time.Minute, setupTestLogger())
		w := httptest.NewRecorder()

		auth.Middleware(echoSender(t)).ServeHTTP(w, submitRequest(t, token, testSubmit))
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "locked")
	})
}
