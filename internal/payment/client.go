// Package payment charges tokenized payment instruments through the external
// gateway. Every charge carries an idempotency key so a retried request is
// never applied twice.
package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"closetshare-backend/internal/domain"
)

const (
	sandboxBaseURL    = "https://connect.squareupsandbox.com"
	productionBaseURL = "https://connect.squareup.com"
)

// Gateway is the charge contract the booking engine depends on.
type Gateway interface {
	CreatePayment(ctx context.Context, req ChargeRequest) (*ChargeResult, error)
}

// ChargeRequest describes one charge attempt. IdempotencyKey must be reused
// verbatim when retrying the same logical attempt.
type ChargeRequest struct {
	SourceID       string
	IdempotencyKey string
	AmountCents    int32
	Currency       string
	Note           string
	ReferenceID    string
}

// ChargeResult is the gateway's record of a completed charge.
type ChargeResult struct {
	PaymentID string
	Status    string
}

// Client is a minimal Square payments API client.
type Client struct {
	httpClient  *http.Client
	accessToken string
	baseURL     string
}

// NewClient constructs a gateway client for the given environment
// ("production" selects the live endpoint, anything else the sandbox).
func NewClient(httpClient *http.Client, accessToken, environment string) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	baseURL := sandboxBaseURL
	if environment == "production" {
		baseURL = productionBaseURL
	}
	return &Client{
		httpClient:  httpClient,
		accessToken: accessToken,
		baseURL:     baseURL,
	}
}

// NewClientWithBaseURL constructs a client against an explicit endpoint.
// Used by tests to point at a local stub gateway.
func NewClientWithBaseURL(httpClient *http.Client, accessToken, baseURL string) *Client {
	c := NewClient(httpClient, accessToken, "")
	c.baseURL = baseURL
	return c
}

func (c *Client) CreatePayment(ctx context.Context, req ChargeRequest) (*ChargeResult, error) {
	currency := req.Currency
	if currency == "" {
		currency = "USD"
	}
	payload := map[string]interface{}{
		"source_id":       req.SourceID,
		"idempotency_key": req.IdempotencyKey,
		"amount_money": map[string]interface{}{
			"amount":   req.AmountCents,
			"currency": currency,
		},
		"note":         req.Note,
		"reference_id": req.ReferenceID,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v2/payments", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.accessToken)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		// Network fault or timeout: the charge may or may not have landed.
		// Surface as retryable with the same key, never as a plain failure.
		return nil, &domain.TransientError{IdempotencyKey: req.IdempotencyKey, Cause: err}
	}
	defer resp.Body.Close()

	var apiResp struct {
		Payment struct {
			ID     string `json:"id"`
			Status string `json:"status"`
		} `json:"payment"`
		Errors []struct {
			Category string `json:"category"`
			Code     string `json:"code"`
			Detail   string `json:"detail"`
		} `json:"errors"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, &domain.TransientError{IdempotencyKey: req.IdempotencyKey, Cause: fmt.Errorf("malformed gateway response: %w", err)}
	}

	if resp.StatusCode >= 500 {
		return nil, &domain.TransientError{
			IdempotencyKey: req.IdempotencyKey,
			Cause:          fmt.Errorf("gateway status %s", resp.Status),
		}
	}
	if resp.StatusCode >= 300 || len(apiResp.Errors) > 0 {
		code := "UNKNOWN"
		declined := false
		if len(apiResp.Errors) > 0 {
			code = apiResp.Errors[0].Code
			declined = apiResp.Errors[0].Category == "PAYMENT_METHOD_ERROR"
		}
		return nil, &domain.GatewayError{Code: code, Declined: declined}
	}
	if apiResp.Payment.ID == "" {
		return nil, &domain.GatewayError{Code: "EMPTY_PAYMENT"}
	}

	return &ChargeResult{PaymentID: apiResp.Payment.ID, Status: apiResp.Payment.Status}, nil
}
