package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/iudanet/gophcert/internal/models"
	"github.com/iudanet/gophcert/internal/server/handlers"
	"github.com/iudanet/gophcert/internal/server/storage"
	"github.com/iudanet/gophcert/internal/session"
	"github.com/iudanet/gophcert/pkg/api"
)

// maxSubmitBody ограничение размера тела транзакции
const maxSubmitBody = 1 << 20

// SessionAuth проверяет session token транзакции.
// Токен подписан ключом отправителя и привязан к телу запроса,
// каждый jti принимается один раз.
type SessionAuth struct {
	tokens storage.TokenStorage
	logger *slog.Logger
	now    func() time.Time
	maxAge time.Duration
}

// NewSessionAuth creates the middleware; tokens older than maxAge are rejected.
func NewSessionAuth(tokens storage.TokenStorage, maxAge time.Duration, logger *slog.Logger) *SessionAuth {
	return &SessionAuth{
		tokens: tokens,
		logger: logger,
		now:    time.Now,
		maxAge: maxAge,
	}
}

// Middleware authenticates the sender and stores it in the request context.
func (a *SessionAuth) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Ожидаем формат: "Bearer <token>"
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			a.logger.Warn("Missing Authorization header")
			a.unauthorized(w, "missing token")
			return
		}

		scheme, tokenString, ok := strings.Cut(authHeader, " ")
		if !ok || !strings.EqualFold(scheme, "Bearer") || tokenString == "" {
			a.logger.Warn("Invalid Authorization header format")
			a.unauthorized(w, "invalid token format")
			return
		}

		// Тело читается целиком: дайджест токена сверяется с функцией и аргументами
		body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxSubmitBody))
		if err != nil {
			handlers.WriteError(w, a.logger, http.StatusRequestEntityTooLarge, "request body too large", "")
			return
		}

		var req api.SubmitRequest
		if err := json.Unmarshal(body, &req); err != nil {
			handlers.WriteError(w, a.logger, http.StatusBadRequest, "invalid request body", err.Error())
			return
		}

		claims, err := session.Verify(tokenString, req, a.now)
		if err != nil {
			a.logger.Warn("Invalid session token", slog.Any("error", err))
			a.unauthorized(w, "invalid token")
			return
		}

		now := a.now()
		if claims.IssuedAt == nil || now.Sub(claims.IssuedAt.Time) > a.maxAge {
			a.logger.Warn("Session token too old", "sender", claims.Subject)
			a.unauthorized(w, "token too old")
			return
		}

		sender := models.Address(claims.Subject)
		err = a.tokens.UseToken(r.Context(), &models.UsedToken{
			ID:        claims.ID,
			Sender:    sender,
			ExpiresAt: claims.ExpiresAt.Time,
			UsedAt:    now,
		})
		if err != nil {
			if errors.Is(err, storage.ErrTokenReused) {
				a.logger.Warn("Session token replayed", "sender", sender)
				a.unauthorized(w, "token already used")
				return
			}
			a.logger.Error("Failed to record session token", slog.Any("error", err))
			handlers.WriteError(w, a.logger, http.StatusInternalServerError, "internal server error", "")
			return
		}

		a.logger.Debug("Sender authenticated", "sender", sender)

		r.Body = io.NopCloser(bytes.NewReader(body))
		next.ServeHTTP(w, r.WithContext(handlers.WithSender(r.Context(), sender)))
	})
}

func (a *SessionAuth) unauthorized(w http.ResponseWriter, details string) {
	handlers.WriteError(w, a.logger, http.StatusUnauthorized, "unauthorized", details)
}
