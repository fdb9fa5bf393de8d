package apiclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/oksasatya/edo-marketplace-admin/pkg/helpers"
)

var (
	ErrRequestFailed = errors.New("request failed")
	ErrNotConfigured = errors.New("api base url not configured")
)

// Client performs GET requests against the marketplace REST API.
// A nil Client or one with an empty BaseURL fails every request with ErrNotConfigured.
type Client struct {
	BaseURL string
	HTTP    *http.Client
	Signer  *helpers.TokenSigner
	Subject string
}

func New(baseURL string, timeout time.Duration, signer *helpers.TokenSigner) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP:    &http.Client{Timeout: timeout},
		Signer:  signer,
		Subject: helpers.ServiceTokenIssuer,
	}
}

func (c *Client) configured() bool {
	return c != nil && c.BaseURL != ""
}

func (c *Client) url(path string) string {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return c.BaseURL + path
}

// Get decodes the JSON body of GET path into T.
func Get[T any](ctx context.Context, c *Client, path string) (T, error) {
	var out T
	if !c.configured() {
		return out, ErrNotConfigured
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url(path), nil)
	if err != nil {
		return out, fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	req.Header.Set("Accept", "application/json")
	if c.Signer != nil {
		token, _, err := c.Signer.Sign(c.Subject)
		if err != nil {
			return out, fmt.Errorf("%w: sign token: %v", ErrRequestFailed, err)
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	hc := c.HTTP
	if hc == nil {
		hc = http.DefaultClient
	}
	resp, err := hc.Do(req)
	if err != nil {
		return out, fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return out, fmt.Errorf("%w: GET %s: status %d", ErrRequestFailed, path, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return out, fmt.Errorf("%w: decode %s: %v", ErrRequestFailed, path, err)
	}
	// late response after the caller went away
	if err := ctx.Err(); err != nil {
		var zero T
		return zero, fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	return out, nil
}
