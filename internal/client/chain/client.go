package chain

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/cenkalti/backoff"

	"github.com/iudanet/gophcert/pkg/api"
)

const (
	// DefaultPollInterval начальный интервал опроса статуса транзакции
	DefaultPollInterval = 250 * time.Millisecond
	// DefaultMaxPollInterval максимальный интервал опроса статуса транзакции
	DefaultMaxPollInterval = 2 * time.Second
)

// Client представляет HTTP клиент для взаимодействия с шлюзом ledger'а
type Client struct {
	httpClient      *http.Client
	tokens          TokenSource
	baseURL         string
	pollInterval    time.Duration
	maxPollInterval time.Duration
}

// Compile-time check that Client implements Gateway
var _ Gateway = (*Client)(nil)

// Option настраивает Client
type Option func(*Client)

// WithTokenSource задаёт источник session token для Submit
func WithTokenSource(ts TokenSource) Option {
	return func(c *Client) {
		c.tokens = ts
	}
}

// WithPollInterval задаёт интервалы опроса статуса транзакции
func WithPollInterval(initial, maxInterval time.Duration) Option {
	return func(c *Client) {
		if initial > 0 {
			c.pollInterval = initial
		}
		if maxInterval > 0 {
			c.maxPollInterval = maxInterval
		}
	}
}

// WithTimeout задаёт таймаут HTTP запроса. По умолчанию таймаут не задан:
// зависший шлюз блокирует вызов до отмены контекста.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// NewClient создает новый клиент шлюза
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:         baseURL,
		pollInterval:    DefaultPollInterval,
		maxPollInterval: DefaultMaxPollInterval,
		httpClient: &http.Client{
			// Ограничиваем количество редиректов
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				// Копируем заголовок Authorization при редиректе
				if len(via) > 0 && via[0].Header.Get("Authorization") != "" {
					req.Header.Set("Authorization", via[0].Header.Get("Authorization"))
				}
				return nil
			},
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// View выполняет view-вызов и возвращает сырой ответ
func (c *Client) View(ctx context.Context, req api.ViewRequest) (any, error) {
	var result any
	if err := c.doRequest(ctx, http.MethodPost, "/v1/view", "", req, &result); err != nil {
		return nil, fmt.Errorf("view %s failed: %w", req.Function, err)
	}
	return result, nil
}

// Submit отправляет транзакцию, подписанную session token'ом кошелька
func (c *Client) Submit(ctx context.Context, req api.SubmitRequest) (*api.TxReceipt, error) {
	if c.tokens == nil {
		return nil, ErrNoTokenSource
	}
	token, err := c.tokens.Token(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to sign transaction: %w", err)
	}

	var receipt api.TxReceipt
	if err := c.doRequest(ctx, http.MethodPost, "/v1/transactions", token, req, &receipt); err != nil {
		return nil, fmt.Errorf("submit %s failed: %w", req.Function, err)
	}
	return &receipt, nil
}

// GetTransaction получает текущую квитанцию транзакции по хешу
func (c *Client) GetTransaction(ctx context.Context, hash string) (*api.TxReceipt, error) {
	var receipt api.TxReceipt
	path := "/v1/transactions/by_hash/" + url.PathEscape(hash)
	if err := c.doRequest(ctx, http.MethodGet, path, "", nil, &receipt); err != nil {
		return nil, fmt.Errorf("get transaction %s failed: %w", hash, err)
	}
	return &receipt, nil
}

// WaitForTransaction опрашивает статус транзакции до подтверждения.
// Это ожидание, а не повтор: ошибки запроса прерывают ожидание сразу.
// Общий таймаут не задаётся, ожидание ограничено только контекстом.
func (c *Client) WaitForTransaction(ctx context.Context, hash string) (*api.TxReceipt, error) {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = c.pollInterval
	b.MaxInterval = c.maxPollInterval
	b.MaxElapsedTime = 0

	var receipt *api.TxReceipt
	operation := func() error {
		r, err := c.GetTransaction(ctx, hash)
		if err != nil {
			return backoff.Permanent(err)
		}
		if !r.Status.IsFinal() {
			return errTxPending
		}
		receipt = r
		return nil
	}

	if err := backoff.Retry(operation, backoff.WithContext(b, ctx)); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil && errors.Is(err, errTxPending) {
			return nil, fmt.Errorf("waiting for transaction %s: %w", hash, ctxErr)
		}
		return nil, err
	}

	if receipt.Status == api.TxStatusFailed {
		return receipt, fmt.Errorf("%w: %s", ErrTransactionFailed, receipt.VMStatus)
	}
	return receipt, nil
}

// Health проверяет доступность шлюза
func (c *Client) Health(ctx context.Context) (*api.HealthResponse, error) {
	var resp api.HealthResponse
	if err := c.doRequest(ctx, http.MethodGet, "/v1/health", "", nil, &resp); err != nil {
		return nil, fmt.Errorf("health request failed: %w", err)
	}
	return &resp, nil
}

// doRequest выполняет HTTP запрос
func (c *Client) doRequest(ctx context.Context, method, path, token string, body, result any) error {
	endpoint := c.baseURL + path

	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	// Читаем тело ответа
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	// Проверяем статус код
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errResp api.ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Error != "" {
			if errResp.Message != "" {
				return fmt.Errorf("gateway error (%d): %s: %s", resp.StatusCode, errResp.Error, errResp.Message)
			}
			return fmt.Errorf("gateway error (%d): %s", resp.StatusCode, errResp.Error)
		}
		return fmt.Errorf("request failed with status %d: %s", resp.StatusCode, string(respBody))
	}

	// Декодируем успешный ответ; числа сохраняем как json.Number
	if result != nil {
		dec := json.NewDecoder(bytes.NewReader(respBody))
		dec.UseNumber()
		if err := dec.Decode(result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}
