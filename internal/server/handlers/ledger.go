package handlers

//go:generate moq -out ledger_mock.go . Ledger

import (
	"context"

	"github.com/iudanet/gophcert/internal/models"
	"github.com/iudanet/gophcert/pkg/api"
)

// Ledger определяет операции модуля, доступные через HTTP
type Ledger interface {
	View(ctx context.Context, req api.ViewRequest) ([]any, error)
	Submit(ctx context.Context, sender models.Address, req api.SubmitRequest) (*models.Transaction, error)
	Transaction(ctx context.Context, hash string) (*models.Transaction, error)
	Version(ctx context.Context) (uint64, error)
}
