package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/iudanet/gophcert/internal/server/ledger"
	"github.com/iudanet/gophcert/internal/server/storage"
	"github.com/iudanet/gophcert/pkg/api"
)

// maxBodySize ограничение размера тела запроса
const maxBodySize = 1 << 20

// WriteJSON writes v with the given status code.
func WriteJSON(w http.ResponseWriter, logger *slog.Logger, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("failed to encode response", slog.Any("error", err))
	}
}

// WriteError writes an api.ErrorResponse.
func WriteError(w http.ResponseWriter, logger *slog.Logger, status int, msg, details string) {
	WriteJSON(w, logger, status, api.ErrorResponse{Error: msg, Message: details})
}

// decodeBody разбирает JSON-тело с ограничением размера
func decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

// writeLedgerError отображает ошибки ledger'а на HTTP-статусы
func writeLedgerError(w http.ResponseWriter, logger *slog.Logger, err error) {
	var abort *ledger.AbortError

	switch {
	case errors.As(err, &abort):
		WriteError(w, logger, http.StatusBadRequest, "execution aborted", abort.Code)
	case errors.Is(err, ledger.ErrUnknownModule), errors.Is(err, ledger.ErrUnknownFunction):
		WriteError(w, logger, http.StatusNotFound, "function not found", err.Error())
	case errors.Is(err, ledger.ErrInvalidArguments), errors.Is(err, ledger.ErrTypeArguments):
		WriteError(w, logger, http.StatusBadRequest, "invalid arguments", err.Error())
	case errors.Is(err, storage.ErrTransactionNotFound):
		WriteError(w, logger, http.StatusNotFound, "transaction not found", "")
	case errors.Is(err, storage.ErrTransactionExists):
		WriteError(w, logger, http.StatusConflict, "transaction already submitted", "")
	default:
		logger.Error("Ledger request failed", slog.Any("error", err))
		WriteError(w, logger, http.StatusInternalServerError, "internal server error", "")
	}
}
