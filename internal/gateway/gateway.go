package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/oklog/ulid/v2"

	"github.com/shopd-dev/shopd/internal/session"
)

// ErrNoToken is returned when the server answers 2xx without a usable token.
var ErrNoToken = errors.New("login response carried no access token")

// Client talks to the shop server's auth endpoints.
type Client struct {
	baseURL    string
	httpClient *http.Client
	validate   *validator.Validate
}

// New creates a new auth gateway client.
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		validate: validator.New(),
	}
}

// SetHTTPClient sets a custom HTTP client
func (c *Client) SetHTTPClient(httpClient *http.Client) {
	c.httpClient = httpClient
}

// LoginRequest represents the unified login request body. Both roles log in
// through the same endpoint; the role field selects which account table the
// server authenticates against.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role" validate:"required,oneof=user merchant"`
}

// LoginResponse represents the server's token payload.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
	UserID      string `json:"user_id,omitempty"`
}

// Login authenticates the user and returns the issued token. A 2xx response
// without an access token is a failure.
func (c *Client) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	if err := c.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("invalid login request: %w", err)
	}

	var resp LoginResponse
	if err := c.postJSON(ctx, "/api/auth/login", req, &resp); err != nil {
		return nil, err
	}

	if resp.AccessToken == "" {
		return nil, ErrNoToken
	}

	return &resp, nil
}

// Authenticate adapts Login to the session store's Authenticator contract.
func (c *Client) Authenticate(ctx context.Context, username, password, role string) (session.Credentials, error) {
	resp, err := c.Login(ctx, LoginRequest{Username: username, Password: password, Role: role})
	if err != nil {
		return session.Credentials{}, err
	}
	return session.Credentials{Token: resp.AccessToken, UserID: resp.UserID}, nil
}

// postJSON sends a JSON POST request and decodes the response into out when
// out is non-nil. Every request carries a fresh X-Request-ID.
func (c *Client) postJSON(ctx context.Context, path string, payload, out any) error {
	jsonData, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", ulid.Make().String())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("request failed (status %d): %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}
