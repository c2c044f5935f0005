// Package stats fetches per-platform rating snapshots from the public stat
// APIs for Codeforces, LeetCode and CodeChef.
package stats

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/codescout/codescout/schema"
)

// ErrNoData means the provider answered but has no rating data for the
// handle, typically because the user never entered a rated contest. It is
// a skip, not a failure.
var ErrNoData = errors.New("no rating data for handle")

// Provider fetches the rating snapshot for one judge platform.
type Provider interface {
	Platform() schema.Platform
	FetchSnapshot(ctx context.Context, handle string) (schema.RatingSnapshot, error)
}

// Option configures a provider client.
type Option func(*clientBase)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *clientBase) {
		c.httpClient = client
	}
}

// WithTimeout sets the client timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *clientBase) {
		c.httpClient.Timeout = timeout
	}
}

type clientBase struct {
	baseURL    string
	httpClient *http.Client
}

func newClientBase(baseURL string, opts ...Option) clientBase {
	c := clientBase{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// getJSON fetches a URL and decodes the JSON body into out.
func (c *clientBase) getJSON(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("stat API returned HTTP %d", resp.StatusCode)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to unmarshal response: %w", err)
	}
	return nil
}
