// Package frankfurter is a thin HTTP client for the Frankfurter exchange
// rate API (https://api.frankfurter.app).
package frankfurter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/shopspring/decimal"

	"github.com/blance-app/blance_backend/internal/apperrors"
)

const defaultBaseURL = "https://api.frankfurter.app"

// LatestRates is the response of the /latest endpoint.
type LatestRates struct {
	Base  string                     `json:"base"`
	Date  string                     `json:"date"`
	Rates map[string]decimal.Decimal `json:"rates"`
}

// Client fetches daily rates from Frankfurter.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option customizes a Client.
type Option func(*Client)

// WithBaseURL overrides the API base URL, used in tests.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.httpClient = h }
}

// NewClient returns a Client with a 10 second request timeout.
func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FetchLatest returns the latest published rates for the given base
// currency. Provider failures surface as this API's upstream errors: a
// timeout maps to 504, any other transport failure or non-2xx provider
// status maps to 502. Callers decide whether a cached fallback exists.
func (c *Client) FetchLatest(ctx context.Context, base string) (*LatestRates, error) {
	endpoint := fmt.Sprintf("%s/latest?from=%s", c.baseURL, url.QueryEscape(base))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("building rates request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		var netErr net.Error
		if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
			return nil, apperrors.NewGatewayTimeoutError(
				fmt.Sprintf("rates provider timed out for base %s", base))
		}
		return nil, apperrors.NewAppError(http.StatusBadGateway,
			fmt.Sprintf("rates provider unreachable for base %s", base), err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, apperrors.NewAppError(http.StatusBadGateway,
			fmt.Sprintf("rates provider returned %d for base %s: %s", resp.StatusCode, base, string(body)), nil)
	}

	var out LatestRates
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decoding rates response: %w", err)
	}
	if out.Date == "" || len(out.Rates) == 0 {
		return nil, fmt.Errorf("rates response for %s is missing date or rates", base)
	}
	return &out, nil
}
