// Package identity resolves opaque user identifiers (emails) to stable
// account ids through the external identity provider's admin API.
package identity

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"closetshare-backend/internal/domain"
)

// Resolver maps an email to the provider's account record.
type Resolver interface {
	FindAccountByEmail(ctx context.Context, email string) (*domain.Account, error)
}

// Client is a minimal identity-provider admin API client. Lookups are keyed
// by email; the provider's full account set is never enumerated.
type Client struct {
	httpClient *http.Client
	baseURL    string
	serviceKey string
}

func NewClient(httpClient *http.Client, baseURL, serviceKey string) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		serviceKey: serviceKey,
	}
}

func (c *Client) FindAccountByEmail(ctx context.Context, email string) (*domain.Account, error) {
	endpoint := fmt.Sprintf("%s/auth/v1/admin/users?email=%s", c.baseURL, url.QueryEscape(email))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.serviceKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("identity lookup failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, domain.ErrAccountNotFound
	}
	if resp.StatusCode >= 300 {
		return nil, fmt.Errorf("identity provider: unexpected status %s", resp.Status)
	}

	var apiResp struct {
		Users []struct {
			ID    string `json:"id"`
			Email string `json:"email"`
		} `json:"users"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("identity provider: malformed response: %w", err)
	}
	if len(apiResp.Users) == 0 {
		return nil, domain.ErrAccountNotFound
	}
	return &domain.Account{ID: apiResp.Users[0].ID, Email: apiResp.Users[0].Email}, nil
}
