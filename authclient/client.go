package authclient

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Verifier validates a bearer token with the authority of record.
type Verifier interface {
	Verify(ctx context.Context, token string) error
}

// ErrTokenRejected means the auth service answered and did not accept the
// token. Any other non-nil error from Verify means the auth service could not
// be reached at all — callers must keep the two apart.
var ErrTokenRejected = errors.New("token invalid or expired")

// Client talks to the auth service over HTTP. No caching, no retry: every
// Verify is one synchronous round trip.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// New builds a client for the auth service at baseURL (e.g. "http://auth:8001").
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
}

// Verify posts the token to the auth service's verify endpoint. nil means the
// token was accepted.
func (c *Client) Verify(ctx context.Context, token string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/auth/verify", nil)
	if err != nil {
		return fmt.Errorf("build verify request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("auth service unreachable: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w (auth service returned %d)", ErrTokenRejected, resp.StatusCode)
	}
	return nil
}
