package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/gophcert/pkg/api"
)

// setupTestLogger creates a logger for testing
func setupTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestHealthHandler_Health(t *testing.T) {
	ledger := &LedgerMock{
		VersionFunc: func(ctx context.Context) (uint64, error) {
			return 42, nil
		},
	}
	handler := NewHealthHandler(setupTestLogger(), ledger, "dev")

	req := httptest.NewRequest(http.MethodGet, "/v1/health", nil)
	w := httptest.NewRecorder()

	handler.Health(w, req)

	resp := w.Result()
	defer func() {
		err := resp.Body.Close()
		assert.NoError(t, err)
	}()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	var healthResp api.HealthResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&healthResp))

	assert.Equal(t, "ok", healthResp.Status)
	assert.Equal(t, "dev", healthResp.Version)
	assert.Equal(t, uint64(42), healthResp.LedgerVersion)
}

func TestHealthHandler_Unavailable(t *testing.T) {
	ledger := &LedgerMock{
		VersionFunc: func(ctx context.Context) (uint64, error) {
			return 0, errors.New("database is closed")
		},
	}
	handler := NewHealthHandler(setupTestLogger(), ledger, "dev")

	w := httptest.NewRecorder()
	handler.Health(w, httptest.NewRequest(http.MethodGet, "/v1/health", nil))

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	var healthResp api.HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &healthResp))
	assert.Equal(t, "unavailable", healthResp.Status)
}
