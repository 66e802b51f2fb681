package chain

import (
	"context"

	"github.com/iudanet/gophcert/pkg/api"
)

//go:generate moq -out gateway_mock.go . Gateway Viewer

// Viewer выполняет read-only вызовы view-функций.
// Результат: сырой JSON-ответ (обычно массив значений), который
// нормализуется через Unwrap.
type Viewer interface {
	View(ctx context.Context, req api.ViewRequest) (any, error)
}

// Gateway определяет удалённый шлюз ledger'а: view-вызовы, отправка
// транзакций и ожидание их подтверждения.
// Эффекты транзакции видны во view только после подтверждения.
type Gateway interface {
	Viewer

	// Submit отправляет транзакцию; возвращает квитанцию со статусом pending
	Submit(ctx context.Context, req api.SubmitRequest) (*api.TxReceipt, error)

	// WaitForTransaction ждёт финального статуса транзакции.
	// Для failed возвращает квитанцию и ошибку, оборачивающую ErrTransactionFailed.
	WaitForTransaction(ctx context.Context, hash string) (*api.TxReceipt, error)
}

// TokenSource выдаёт session token отправителя, привязанный к конкретной транзакции
type TokenSource interface {
	Token(ctx context.Context, req api.SubmitRequest) (string, error)
}
