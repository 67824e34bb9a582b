package e2etest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client is a session-aware JSON API client for end-to-end tests.
type Client struct {
	client *http.Client
	url    string
}

// NewClient creates a client with a cookie jar so the anonymous session
// persists across requests.
func NewClient(url string) (*Client, error) {
	jar, err := newUnsafeCookieJar()
	if err != nil {
		return nil, fmt.Errorf("create unsafe cookie jar: %w", err)
	}
	return &Client{
		client: &http.Client{Jar: jar},
		url:    url,
	}, nil
}

// WaitForReady calls the specified endpoint until it gets a HTTP 200 Success
// response or until the context is cancelled or the 1-second timeout is reached.
func (c *Client) WaitForReady(ctx context.Context, urlPath string) error {
	timeout := 1 * time.Second
	startTime := time.Now()
	var (
		err  error
		req  *http.Request
		resp *http.Response
	)
	for {
		if req, err = http.NewRequestWithContext(
			ctx,
			http.MethodGet,
			c.url+urlPath,
			nil,
		); err != nil {
			return fmt.Errorf("create request: %w", err)
		}

		if resp, err = c.client.Do(req); err == nil {
			if resp.StatusCode == http.StatusOK {
				if err = resp.Body.Close(); err != nil {
					return fmt.Errorf("close response body: %w", err)
				}
				return nil
			}
			if err = resp.Body.Close(); err != nil {
				return fmt.Errorf("close response body: %w", err)
			}
		}
		select {
		case <-ctx.Done():
			return fmt.Errorf("context cancelled: %w", ctx.Err())
		default:
			if time.Since(startTime) >= timeout {
				return errors.New("timeout waiting for endpoint to be ready")
			}
			time.Sleep(100 * time.Millisecond) //nolint:mnd // 100ms
		}
	}
}

// Get fetches a URL and returns the response.
func (c *Client) Get(ctx context.Context, urlPath string) (*http.Response, error) {
	return c.do(ctx, http.MethodGet, urlPath, nil)
}

// GetJSON fetches a URL and decodes the response body into dst. Returns the
// HTTP status code.
func (c *Client) GetJSON(ctx context.Context, urlPath string, dst any) (int, error) {
	return c.doJSON(ctx, http.MethodGet, urlPath, nil, dst)
}

// PostJSON sends body as JSON and decodes the response into dst. Returns the
// HTTP status code. A nil body sends an empty request.
func (c *Client) PostJSON(ctx context.Context, urlPath string, body, dst any) (int, error) {
	return c.doJSON(ctx, http.MethodPost, urlPath, body, dst)
}

// PutJSON sends body as JSON and decodes the response into dst. Returns the
// HTTP status code.
func (c *Client) PutJSON(ctx context.Context, urlPath string, body, dst any) (int, error) {
	return c.doJSON(ctx, http.MethodPut, urlPath, body, dst)
}

func (c *Client) do(ctx context.Context, method, urlPath string, body io.Reader) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.url+urlPath, body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	return resp, nil
}

func (c *Client) doJSON(ctx context.Context, method, urlPath string, body, dst any) (int, error) {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return 0, fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	resp, err := c.do(ctx, method, urlPath, reader)
	if err != nil {
		return 0, err
	}
	defer func() { _ = resp.Body.Close() }()

	if dst != nil {
		if err = json.NewDecoder(resp.Body).Decode(dst); err != nil {
			return resp.StatusCode, fmt.Errorf("decode response body: %w", err)
		}
	}
	return resp.StatusCode, nil
}
