package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultBaseURL is used when Client.BaseURL is empty.
const DefaultBaseURL = "http://localhost:8000/api"

// Client resolves endpoint paths against a base URL and decorates requests
// with JSON and bearer-token headers.
type Client struct {
	BaseURL string
	Tokens  TokenStore

	// now is overridden in tests.
	now func() time.Time
}

// New creates a client for baseURL. An empty baseURL selects DefaultBaseURL.
func New(baseURL string, tokens TokenStore) *Client {
	return &Client{BaseURL: baseURL, Tokens: tokens}
}

// URL joins path onto the base URL.
func (c *Client) URL(path string) string {
	base := c.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(path, "/")
}

// NewRequest builds a request for path. A non-nil body is encoded as JSON.
// A stored access token is always attached; use AccessExpired to decide when
// to refresh it first.
func (c *Client) NewRequest(ctx context.Context, method, path string, body any) (*http.Request, error) {
	var r io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encoding request body: %w", err)
		}
		r = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.URL(path), r)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	if c.Tokens == nil {
		return req, nil
	}
	creds, err := c.Tokens.Load()
	if err != nil {
		return nil, fmt.Errorf("loading credentials: %w", err)
	}
	if creds.Access != "" {
		req.Header.Set("Authorization", "Bearer "+creds.Access)
	}
	return req, nil
}

// AccessExpired reports whether the stored access token is missing or past
// its exp claim. The signature is not verified; the backend does that.
// Tokens that are not JWTs count as expired, JWTs without exp do not.
func (c *Client) AccessExpired() (bool, error) {
	if c.Tokens == nil {
		return true, nil
	}
	creds, err := c.Tokens.Load()
	if err != nil {
		return false, fmt.Errorf("loading credentials: %w", err)
	}
	if creds.Access == "" {
		return true, nil
	}
	return c.expired(creds.Access), nil
}

func (c *Client) expired(token string) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return true
	}
	exp, err := claims.GetExpirationTime()
	if err != nil {
		return true
	}
	if exp == nil {
		return false
	}
	now := time.Now
	if c.now != nil {
		now = c.now
	}
	return !now().Before(exp.Time)
}
