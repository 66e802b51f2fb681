package handlers

import (
	"log/slog"
	"net/http"

	"github.com/iudanet/gophcert/pkg/api"
)

// HealthHandler обрабатывает health check запросы
type HealthHandler struct {
	logger  *slog.Logger
	ledger  Ledger
	version string
}

// NewHealthHandler создает новый handler для health check
// version версия сборки шлюза
func NewHealthHandler(logger *slog.Logger, ledger Ledger, version string) *HealthHandler {
	return &HealthHandler{
		logger:  logger,
		ledger:  ledger,
		version: version,
	}
}

// Health обрабатывает GET /v1/health
// Возвращает версию ledger; 503 если хранилище недоступно
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ledgerVersion, err := h.ledger.Version(r.Context())
	if err != nil {
		h.logger.Error("Health check failed", slog.Any("error", err))
		WriteJSON(w, h.logger, http.StatusServiceUnavailable, api.HealthResponse{
			Status:  "unavailable",
			Version: h.version,
		})
		return
	}

	WriteJSON(w, h.logger, http.StatusOK, api.HealthResponse{
		Status:        "ok",
		Version:       h.version,
		LedgerVersion: ledgerVersion,
	})
}
