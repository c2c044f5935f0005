// Package clist is a client for the clist.by contest feed API.
package clist

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/codescout/codescout/schema"
	"github.com/google/go-querystring/query"
)

// feedTimeLayout is the timestamp format used by the feed. The values have
// no zone suffix and are documented as UTC.
const feedTimeLayout = "2006-01-02T15:04:05"

// Client talks to the contest feed API. Authentication is per-request via
// username and API key query parameters.
type Client struct {
	baseURL    string
	username   string
	apiKey     string
	httpClient *http.Client
}

// Option configures the client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.httpClient = client
	}
}

// WithTimeout sets the client timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// NewClient creates a new contest feed client.
func NewClient(baseURL, username, apiKey string, opts ...Option) *Client {
	c := &Client{
		baseURL:  baseURL,
		username: username,
		apiKey:   apiKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// feedQuery is the query string for one upcoming-contest request.
type feedQuery struct {
	Username string `url:"username"`
	APIKey   string `url:"api_key"`
	Resource string `url:"resource"`
	Upcoming bool   `url:"upcoming"`
	Format   string `url:"format"`
	OrderBy  string `url:"order_by"`
}

// feedContest is one contest object as the feed returns it.
type feedContest struct {
	ID       int64  `json:"id"`
	Resource string `json:"resource"`
	Event    string `json:"event"`
	Start    string `json:"start"`
	End      string `json:"end"`
	Href     string `json:"href"`
}

type feedResponse struct {
	Objects []feedContest `json:"objects"`
}

// FetchUpcoming returns the upcoming contests for one platform.
func (c *Client) FetchUpcoming(ctx context.Context, platform schema.Platform) ([]schema.Contest, error) {
	values, err := query.Values(feedQuery{
		Username: c.username,
		APIKey:   c.apiKey,
		Resource: string(platform),
		Upcoming: true,
		Format:   "json",
		OrderBy:  "start",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode query: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+values.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("contest feed request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("contest feed returned HTTP %d for %s", resp.StatusCode, platform)
	}

	var feed feedResponse
	if err := json.Unmarshal(body, &feed); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	contests := make([]schema.Contest, 0, len(feed.Objects))
	for _, obj := range feed.Objects {
		start, err := parseFeedTime(obj.Start)
		if err != nil {
			return nil, fmt.Errorf("bad start time %q for contest %d: %w", obj.Start, obj.ID, err)
		}
		end, err := parseFeedTime(obj.End)
		if err != nil {
			return nil, fmt.Errorf("bad end time %q for contest %d: %w", obj.End, obj.ID, err)
		}
		contests = append(contests, schema.Contest{
			ID:       obj.ID,
			Resource: schema.Platform(obj.Resource),
			Event:    obj.Event,
			Start:    start,
			End:      end,
			Href:     obj.Href,
		})
	}
	return contests, nil
}

// parseFeedTime parses a feed timestamp as UTC. Timestamps with an explicit
// zone are accepted as-is.
func parseFeedTime(value string) (time.Time, error) {
	if t, err := time.Parse(feedTimeLayout, value); err == nil {
		return t.UTC(), nil
	}
	return time.Parse(time.RFC3339, value)
}
