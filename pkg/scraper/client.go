package scraper

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"socctl/pkg/config"
	"socctl/pkg/soc"
)

const maxAttempts = 3

// retryBackoff is multiplied by the attempt number between retries.
var retryBackoff = 500 * time.Millisecond

// Client downloads schedule of classes feeds from the registrar.
type Client struct {
	httpClient *http.Client
	baseURL    string
	cacheTTL   time.Duration

	// Reporter receives parser diagnostics; nil discards them.
	Reporter soc.Reporter
}

// NewClient creates a client for the feed location and cache lifetime in cfg.
// A nil cfg uses the defaults.
func NewClient(cfg *config.AppConfig) *Client {
	if cfg == nil {
		cfg = &config.AppConfig{}
	}
	return &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseURL:  strings.TrimRight(cfg.FeedURL(), "/"),
		cacheTTL: cfg.CacheDuration(),
	}
}

// WithoutCache returns a copy of c that always downloads.
func (c *Client) WithoutCache() *Client {
	cp := *c
	cp.cacheTTL = 0
	return &cp
}

type statusError struct {
	code int
	url  string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("unexpected status code %d when fetching %s", e.code, e.url)
}

func (e *statusError) retryable() bool {
	switch e.code {
	case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return true
	}
	return false
}

// Get fetches path relative to the base URL. Network errors and gateway failures are
// retried; the caller must close the body.
func (c *Client) Get(ctx context.Context, path string) (*http.Response, error) {
	return c.do(ctx, http.MethodGet, path)
}

func (c *Client) do(ctx context.Context, method, path string) (*http.Response, error) {
	url := fmt.Sprintf("%s/%s", c.baseURL, path)

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		resp, err := c.once(ctx, method, url)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		var se *statusError
		if errors.As(err, &se) && !se.retryable() {
			return nil, err
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		if attempt < maxAttempts {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(retryBackoff * time.Duration(attempt)):
			}
		}
	}
	return nil, fmt.Errorf("giving up after %d attempts: %w", maxAttempts, lastErr)
}

func (c *Client) once(ctx context.Context, method, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "socctl/1.0 (+schedule of classes parser)")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", url, err)
	}

	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, &statusError{code: resp.StatusCode, url: url}
	}

	return resp, nil
}
