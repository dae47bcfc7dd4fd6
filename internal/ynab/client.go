package ynab

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

	"golang.org/x/oauth2"
)

// DefaultAPIURL is the production API base.
const DefaultAPIURL = "https://api.ynab.com/v1"

// ClientConfig represents the configuration for the YNAB API client.
type ClientConfig struct {
	APIURL      string
	AccessToken string
	Timeout     time.Duration // Default: 30 seconds
}

// Client is a YNAB API client.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// APIError is a non-2xx response from the API.
type APIError struct {
	StatusCode int
	Name       string
	Detail     string
}

func (e *APIError) Error() string {
	if e.Name == "" && e.Detail == "" {
		return fmt.Sprintf("ynab API error (status %d)", e.StatusCode)
	}
	return fmt.Sprintf("ynab API error (status %d): %s - %s", e.StatusCode, e.Name, e.Detail)
}

// NewClient creates a client that authenticates every request with the
// configured personal access token.
func NewClient(ctx context.Context, config ClientConfig) *Client {
	timeout := config.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	apiURL := config.APIURL
	if apiURL == "" {
		apiURL = DefaultAPIURL
	}

	httpClient := oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{
		AccessToken: config.AccessToken,
	}))
	httpClient.Timeout = timeout

	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimSuffix(apiURL, "/"),
	}
}

// CreateTransaction creates a single transaction in the given budget and
// returns the id assigned by YNAB. It makes exactly one request.
func (c *Client) CreateTransaction(ctx context.Context, budgetID string, transaction NewTransaction) (string, error) {
	endpoint := fmt.Sprintf("%s/budgets/%s/transactions", c.baseURL, url.PathEscape(budgetID))

	body, err := json.Marshal(PostTransactionsWrapper{Transaction: transaction})
	if err != nil {
		return "", fmt.Errorf("failed to encode transaction: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", parseError(resp)
	}

	var saved SaveTransactionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&saved); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	if saved.Data.Transaction != nil {
		return saved.Data.Transaction.ID, nil
	}
	if len(saved.Data.TransactionIDs) > 0 {
		return saved.Data.TransactionIDs[0], nil
	}
	return "", nil
}

func parseError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err != nil {
		return apiErr
	}

	var errResp ErrorResponse
	if err := json.Unmarshal(body, &errResp); err != nil {
		apiErr.Detail = strings.TrimSpace(string(body))
		return apiErr
	}

	apiErr.Name = errResp.Error.Name
	apiErr.Detail = errResp.Error.Detail
	return apiErr
}
