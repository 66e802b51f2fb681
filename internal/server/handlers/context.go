package handlers

import (
	"context"

	"github.com/iudanet/gophcert/internal/models"
)

// contextKey тип для ключей контекста
type contextKey string

const (
	// SenderKey ключ для адреса отправителя, подтверждённого session token
	SenderKey contextKey = "sender"
	// RequestIDKey ключ для идентификатора запроса
	RequestIDKey contextKey = "request_id"
)

// WithSender stores the authenticated sender address.
func WithSender(ctx context.Context, sender models.Address) context.Context {
	return context.WithValue(ctx, SenderKey, sender)
}

// GetSender извлекает адрес отправителя из контекста запроса
func GetSender(ctx context.Context) (models.Address, bool) {
	sender, ok := ctx.Value(SenderKey).(models.Address)
	return sender, ok && sender != ""
}

// WithRequestID stores the request id.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, RequestIDKey, id)
}

// GetRequestID извлекает идентификатор запроса из контекста
func GetRequestID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(RequestIDKey).(string)
	return id, ok
}
