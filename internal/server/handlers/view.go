package handlers

import (
	"log/slog"
	"net/http"

	"github.com/iudanet/gophcert/pkg/api"
)

// ViewHandler обрабатывает read-only вызовы модуля
type ViewHandler struct {
	logger *slog.Logger
	ledger Ledger
}

// NewViewHandler creates a new view handler
func NewViewHandler(logger *slog.Logger, ledger Ledger) *ViewHandler {
	return &ViewHandler{
		logger: logger,
		ledger: ledger,
	}
}

// View обрабатывает POST /v1/view
// Ответ: JSON-массив возвращаемых значений функции
func (h *ViewHandler) View(w http.ResponseWriter, r *http.Request) {
	var req api.ViewRequest
	if err := decodeBody(w, r, &req); err != nil {
		h.logger.Warn("Invalid view request body", slog.Any("error", err))
		WriteError(w, h.logger, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	result, err := h.ledger.View(r.Context(), req)
	if err != nil {
		h.logger.Debug("View call failed", "function", req.Function, slog.Any("error", err))
		writeLedgerError(w, h.logger, err)
		return
	}

	WriteJSON(w, h.logger, http.StatusOK, result)
}
