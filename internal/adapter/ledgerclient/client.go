// Package ledgerclient is the storefront's handle on the remote wallet
// ledger. One client with one underlying connection pool is created at
// startup and reused for every call.
package ledgerclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"payment-settlement/internal/core/ports"
	"payment-settlement/pkg/apperror"
)

// Client talks JSON over HTTP to the wallet ledger service.
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a Client for the ledger at baseURL. timeout bounds each call
// end to end; zero means no client-side timeout.
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// envelope mirrors the ledger's response wrapper.
type envelope struct {
	Data      json.RawMessage `json:"data"`
	ErrorCode string          `json:"error_code"`
	Message   string          `json:"message"`
	Status    int             `json:"status"`
}

// Balance returns the wallet's balance on the ledger.
func (c *Client) Balance(ctx context.Context, walletID string) (int64, error) {
	var data struct {
		Balance int64 `json:"balance"`
	}
	path := "/api/v1/wallets/" + url.PathEscape(walletID) + "/balance"
	if err := c.call(ctx, http.MethodGet, path, nil, &data); err != nil {
		return 0, err
	}
	return data.Balance, nil
}

// Transfer redeems a payment order on the ledger.
func (c *Client) Transfer(ctx context.Context, req ports.TransferRequest) error {
	body := map[string]interface{}{
		"order_id":  req.OrderID,
		"amount":    req.ExpectedAmount,
		"wallet_id": req.DestWalletID,
	}
	var data struct {
		Status int `json:"status"`
	}
	return c.call(ctx, http.MethodPost, "/api/v1/transfers", body, &data)
}

// EndExecution asks the ledger to terminate and returns its final pendency
// count.
func (c *Client) EndExecution(ctx context.Context) (int, error) {
	var data struct {
		Pendencies int `json:"pendencies"`
	}
	if err := c.call(ctx, http.MethodPost, "/api/v1/shutdown", nil, &data); err != nil {
		return 0, err
	}
	return data.Pendencies, nil
}

// Ping implements ports.HealthChecker against the ledger's health endpoint.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("ledger health returned %d", resp.StatusCode)
	}
	return nil
}

// Name implements ports.HealthChecker.
func (c *Client) Name() string { return "wallet-ledger" }

// call performs one request and decodes the envelope. Protocol rejections
// are rebuilt as *apperror.AppError with the ledger's code and status;
// transport failures are wrapped as STORE_001.
func (c *Client) call(ctx context.Context, method, path string, body interface{}, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return apperror.InternalError(fmt.Errorf("marshal request: %w", err))
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("build request: %w", err))
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return apperror.ErrLedgerUnavailable(err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return apperror.ErrLedgerUnavailable(err)
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return apperror.ErrLedgerUnavailable(fmt.Errorf("decode response: %w", err))
	}

	if resp.StatusCode >= http.StatusBadRequest {
		if env.ErrorCode == "" {
			return apperror.ErrLedgerUnavailable(fmt.Errorf("ledger returned %d", resp.StatusCode))
		}
		return apperror.New(env.ErrorCode, env.Message, env.Status, resp.StatusCode)
	}

	if out != nil && env.Data != nil {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return apperror.ErrLedgerUnavailable(fmt.Errorf("decode response data: %w", err))
		}
	}
	return nil
}
