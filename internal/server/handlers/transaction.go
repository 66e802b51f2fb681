package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/iudanet/gophcert/pkg/api"
)

// TransactionHandler принимает транзакции и отдаёт их статус
type TransactionHandler struct {
	logger *slog.Logger
	ledger Ledger
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(logger *slog.Logger, ledger Ledger) *TransactionHandler {
	return &TransactionHandler{
		logger: logger,
		ledger: ledger,
	}
}

// Submit обрабатывает POST /v1/transactions
// Отправитель берётся из контекста (устанавливается session auth middleware)
func (h *TransactionHandler) Submit(w http.ResponseWriter, r *http.Request) {
	sender, ok := GetSender(r.Context())
	if !ok {
		h.logger.Error("Sender not found in context")
		WriteError(w, h.logger, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	var req api.SubmitRequest
	if err := decodeBody(w, r, &req); err != nil {
		h.logger.Warn("Invalid transaction body", slog.Any("error", err))
		WriteError(w, h.logger, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	tx, err := h.ledger.Submit(r.Context(), sender, req)
	if err != nil {
		h.logger.Warn("Transaction rejected",
			"sender", sender,
			"function", req.Function,
			slog.Any("error", err))
		writeLedgerError(w, h.logger, err)
		return
	}

	WriteJSON(w, h.logger, http.StatusAccepted, tx.Receipt())
}

// ByHash обрабатывает GET /v1/transactions/by_hash/{hash}
func (h *TransactionHandler) ByHash(w http.ResponseWriter, r *http.Request) {
	hash := mux.Vars(r)["hash"]
	if hash == "" {
		WriteError(w, h.logger, http.StatusBadRequest, "missing transaction hash", "")
		return
	}

	tx, err := h.ledger.Transaction(r.Context(), hash)
	if err != nil {
		writeLedgerError(w, h.logger, err)
		return
	}

	WriteJSON(w, h.logger, http.StatusOK, tx.Receipt())
}
