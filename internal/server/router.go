// Package server собирает HTTP API devnet-шлюза.
package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/iudanet/gophcert/internal/server/handlers"
	"github.com/iudanet/gophcert/internal/server/metrics"
	"github.com/iudanet/gophcert/internal/server/middleware"
	"github.com/iudanet/gophcert/internal/server/storage"
)

// Deps содержит зависимости HTTP API
type Deps struct {
	Ledger      handlers.Ledger
	Tokens      storage.TokenStorage
	Gatherer    prometheus.Gatherer // nil отключает /metrics
	Metrics     *metrics.Metrics
	Limiter     *middleware.RateLimiter // nil отключает ограничение частоты
	Logger      *slog.Logger
	Version     string
	TokenMaxAge time.Duration
}

// NewRouter builds the gateway routes:
//
//	POST /v1/view
//	POST /v1/transactions (session token)
//	GET  /v1/transactions/by_hash/{hash}
//	GET  /v1/health
//	GET  /metrics
func NewRouter(d Deps) http.Handler {
	r := mux.NewRouter()

	r.Use(
		middleware.RequestID,
		middleware.Recovery(d.Logger),
		middleware.Logging(d.Logger, "/v1/health", "/metrics"),
		middleware.Metrics(d.Metrics),
	)
	if d.Limiter != nil {
		r.Use(d.Limiter.Middleware)
	}

	view := handlers.NewViewHandler(d.Logger, d.Ledger)
	txs := handlers.NewTransactionHandler(d.Logger, d.Ledger)
	health := handlers.NewHealthHandler(d.Logger, d.Ledger, d.Version)
	auth := middleware.NewSessionAuth(d.Tokens, d.TokenMaxAge, d.Logger)

	v1 := r.PathPrefix("/v1").Subrouter()
	v1.HandleFunc("/view", view.View).Methods(http.MethodPost)
	v1.Handle("/transactions", auth.Middleware(http.HandlerFunc(txs.Submit))).Methods(http.MethodPost)
	v1.HandleFunc("/transactions/by_hash/{hash}", txs.ByHash).Methods(http.MethodGet)
	v1.HandleFunc("/health", health.Health).Methods(http.MethodGet)

	if d.Gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(d.Gatherer, promhttp.HandlerOpts{})).Methods(http.MethodGet)
	}

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		handlers.WriteError(w, d.Logger, http.StatusNotFound, "not found", "")
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		handlers.WriteError(w, d.Logger, http.StatusMethodNotAllowed, "method not allowed", "")
	})

	return r
}
