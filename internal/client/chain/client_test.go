package chain

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/gophcert/pkg/api"
)

type staticToken string

func (s staticToken) Token(context.Context, api.SubmitRequest) (string, error) { return string(s), nil }

type failingToken struct{}

func (failingToken) Token(context.Context, api.SubmitRequest) (string, error) { return "", errors.New("wallet locked") }

// TestNewClient проверяет создание нового клиента
func TestNewClient(t *testing.T) {
	client := NewClient("http://localhost:8080")

	assert.Equal(t, "http://localhost:8080", client.baseURL)
	assert.NotNil(t, client.httpClient)
	assert.Zero(t, client.httpClient.Timeout)
	assert.Equal(t, DefaultPollInterval, client.pollInterval)
	assert.Equal(t, DefaultMaxPollInterval, client.maxPollInterval)

	client = NewClient("http://x", WithTimeout(5*time.Second), WithPollInterval(time.Millisecond, 0))
	assert.Equal(t, 5*time.Second, client.httpClient.Timeout)
	assert.Equal(t, time.Millisecond, client.pollInterval)
	assert.Equal(t, DefaultMaxPollInterval, client.maxPollInterval)
}

func TestClient_View(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/view", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))

		var req api.ViewRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "0xMOD::certificates::get_recipient_cert_ref", req.Function)
		assert.Equal(t, []string{"0xB0B", "0"}, req.FunctionArguments)

		_, _ = w.Write([]byte(`["0xA11CE","3"]`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	raw, err := client.View(context.Background(), NewModule("0xMOD").ViewCall(FnGetRecipientCertRef, "0xB0B", "0"))
	require.NoError(t, err)

	ref, err := DecodeCertRef(raw)
	require.NoError(t, err)
	assert.Equal(t, "0xA11CE:3", ref.Key())
}

func TestClient_View_NumbersPreserved(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[18446744073709551615]`))
	}))
	defer server.Close()

	raw, err := NewClient(server.URL).View(context.Background(), api.ViewRequest{Function: "f"})
	require.NoError(t, err)

	n, err := Count(raw)
	require.NoError(t, err)
	assert.Equal(t, uint64(18446744073709551615), n)
}

func TestClient_View_Error(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		expectedErrMsg string
		statusCode     int
	}{
		{
			name:           "gateway error with message",
			statusCode:     http.StatusBadRequest,
			body:           `{"error":"invalid_request","message":"unknown function"}`,
			expectedErrMsg: "gateway error (400): invalid_request: unknown function",
		},
		{
			name:           "gateway error without message",
			statusCode:     http.StatusNotFound,
			body:           `{"error":"not_found"}`,
			expectedErrMsg: "gateway error (404): not_found",
		},
		{
			name:           "plain text",
			statusCode:     http.StatusInternalServerError,
			body:           "boom",
			expectedErrMsg: "request failed with status 500: boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.statusCode)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			_, err := NewClient(server.URL).View(context.Background(), api.ViewRequest{Function: "f"})
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.expectedErrMsg)
		})
	}
}

func TestClient_Submit(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/transactions", r.URL.Path)
		assert.Equal(t, "Bearer session-token", r.Header.Get("Authorization"))

		var req api.SubmitRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, []string{"Honor Roll", "Top"}, req.Arguments)

		w.WriteHeader(http.StatusAccepted)
		_ = json.NewEncoder(w).Encode(api.TxReceipt{Hash: "0xh1", Status: api.TxStatusPending})
	}))
	defer server.Close()

	client := NewClient(server.URL, WithTokenSource(staticToken("session-token")))
	receipt, err := client.Submit(context.Background(), NewModule("0xMOD").CreateTemplate("Honor Roll", "Top"))
	require.NoError(t, err)
	assert.Equal(t, "0xh1", receipt.Hash)
	assert.Equal(t, api.TxStatusPending, receipt.Status)
}

func TestClient_Submit_NoWallet(t *testing.T) {
	client := NewClient("http://127.0.0.1:1")
	_, err := client.Submit(context.Background(), api.SubmitRequest{})
	require.ErrorIs(t, err, ErrNoTokenSource)

	client = NewClient("http://127.0.0.1:1", WithTokenSource(failingToken{}))
	_, err = client.Submit(context.Background(), api.SubmitRequest{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "wallet locked")
}

func TestClient_WaitForTransaction(t *testing.T) {
	var polls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/transactions/by_hash/0xh1", r.URL.Path)
		status := api.TxStatusPending
		if polls.Add(1) >= 3 {
			status = api.TxStatusSuccess
		}
		_ = json.NewEncoder(w).Encode(api.TxReceipt{Hash: "0xh1", Status: status, Version: 9})
	}))
	defer server.Close()

	client := NewClient(server.URL, WithPollInterval(time.Millisecond, 5*time.Millisecond))
	receipt, err := client.WaitForTransaction(context.Background(), "0xh1")
	require.NoError(t, err)
	assert.Equal(t, api.TxStatusSuccess, receipt.Status)
	assert.Equal(t, uint64(9), receipt.Version)
	assert.Equal(t, int32(3), polls.Load())
}

func TestClient_WaitForTransaction_Failed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(api.TxReceipt{
			Hash:     "0xh2",
			Status:   api.TxStatusFailed,
			VMStatus: "EALREADY_CLAIMED",
		})
	}))
	defer server.Close()

	receipt, err := NewClient(server.URL).WaitForTransaction(context.Background(), "0xh2")
	require.ErrorIs(t, err, ErrTransactionFailed)
	assert.Contains(t, err.Error(), "EALREADY_CLAIMED")
	require.NotNil(t, receipt)
	assert.Equal(t, "0xh2", receipt.Hash)
}

func TestClient_WaitForTransaction_RequestError(t *testing.T) {
	var polls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		polls.Add(1)
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"not_found"}`))
	}))
	defer server.Close()

	_, err := NewClient(server.URL, WithPollInterval(time.Millisecond, time.Millisecond)).
		WaitForTransaction(context.Background(), "0xmissing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "gateway error (404)")
	// ошибка запроса не повторяется
	assert.Equal(t, int32(1), polls.Load())
}

func TestClient_WaitForTransaction_ContextCanceled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(api.TxReceipt{Hash: "0xh3", Status: api.TxStatusPending})
	}))
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	_, err := NewClient(server.URL, WithPollInterval(time.Millisecond, 5*time.Millisecond)).
		WaitForTransaction(ctx, "0xh3")
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled), "got %v", err)
}

func TestClient_Health(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/health", r.URL.Path)
		_ = json.NewEncoder(w).Encode(api.HealthResponse{Status: "ok", LedgerVersion: 4})
	}))
	defer server.Close()

	resp, err := NewClient(server.URL).Health(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, uint64(4), resp.LedgerVersion)
}
