// Package account is a client for the codescout account API. All
// authenticated calls go through the session transport, which attaches the
// bearer credential and drops the local session whenever the API rejects it.
package account

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/codescout/codescout/internal/session"
	"github.com/codescout/codescout/schema"
)

// Client talks to the account API.
type Client struct {
	baseURL    string
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

// NewClient creates a new account API client. The session store wires the
// credential handling into every request.
func NewClient(baseURL string, store *session.Store, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout:   30 * time.Second,
			Transport: session.NewTransport(store, nil),
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// LoginRequest carries the credentials for a login call.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignupRequest carries the fields for account creation.
type SignupRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

// ProfileUpdate carries the editable profile fields. ProfileUpdate is a
// discriminator the API uses to tell profile edits from platform edits.
type ProfileUpdate struct {
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	Email         string `json:"email"`
	ProfileUpdate bool   `json:"profileUpdate"`
}

// PlatformUpdate sets the user's handle on one judge platform.
type PlatformUpdate struct {
	PlatformURL schema.Platform `json:"platformUrl"`
	NewUsername string          `json:"newUsername"`
}

// Login exchanges credentials for a bearer token.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	body, err := json.Marshal(LoginRequest{Email: email, Password: password})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	resp, err := c.doRequest(ctx, http.MethodPost, "/users/login", bytes.NewReader(body))
	if err != nil {
		return "", err
	}

	var result struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(resp, &result); err != nil {
		return "", fmt.Errorf("failed to unmarshal response: %w", err)
	}
	if result.Token == "" {
		return "", fmt.Errorf("login response carried no token")
	}

	return result.Token, nil
}

// Signup creates a new account. The API does not log the user in; a login
// call follows on success.
func (c *Client) Signup(ctx context.Context, req SignupRequest) error {
	body, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	_, err = c.doRequest(ctx, http.MethodPost, "/users/signup", bytes.NewReader(body))
	return err
}

// GetProfile retrieves the account profile for a user.
func (c *Client) GetProfile(ctx context.Context, userID string) (*schema.Profile, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/users/"+userID, nil)
	if err != nil {
		return nil, err
	}

	var profile schema.Profile
	if err := json.Unmarshal(resp, &profile); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}
	profile.ID = userID
	return &profile, nil
}

// GetPlatforms retrieves the user's linked judge platform handles.
func (c *Client) GetPlatforms(ctx context.Context, userID string) ([]schema.PlatformLink, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/users/"+userID+"/platforms", nil)
	if err != nil {
		return nil, err
	}

	var links []schema.PlatformLink
	if err := json.Unmarshal(resp, &links); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}
	return links, nil
}

// UpdateProfile updates the editable profile fields.
func (c *Client) UpdateProfile(ctx context.Context, userID string, update ProfileUpdate) error {
	update.ProfileUpdate = true
	body, err := json.Marshal(update)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	_, err = c.doRequest(ctx, http.MethodPatch, "/users/"+userID, bytes.NewReader(body))
	return err
}

// SetPlatformHandle records the user's handle on one judge platform.
func (c *Client) SetPlatformHandle(ctx context.Context, userID string, platform schema.Platform, handle string) error {
	body, err := json.Marshal(PlatformUpdate{PlatformURL: platform, NewUsername: handle})
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	_, err = c.doRequest(ctx, http.MethodPatch, "/users/"+userID, bytes.NewReader(body))
	return err
}

// DeleteAccount permanently removes the account.
func (c *Client) DeleteAccount(ctx context.Context, userID string) error {
	_, err := c.doRequest(ctx, http.MethodDelete, "/users/"+userID, nil)
	return err
}

// doRequest performs an HTTP request against the account API.
func (c *Client) doRequest(ctx context.Context, method, path string, body io.Reader) ([]byte, error) {
	url := c.baseURL + path

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, fmt.Errorf("%w: %s", session.ErrUnauthorized, summarizeBody(respBody))
	}
	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("HTTP %d: %s", resp.StatusCode, summarizeBody(respBody))
	}

	return respBody, nil
}

// summarizeBody extracts the API's message field when present, falling back
// to the raw body.
func summarizeBody(body []byte) string {
	var errResp struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Message != "" {
		return errResp.Message
	}
	return string(body)
}
