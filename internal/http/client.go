package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Failure kinds. Remote checks must never crash the CLI, so every
// failure a fetch can produce is classified into one of these
// sentinels and handed back as a value for the caller to log and
// discard.
var (
	// ErrNetwork marks connection errors, timeouts and non-2xx
	// responses.
	ErrNetwork = errors.New("network failure")

	// ErrMalformedResponse marks responses that arrived but could
	// not be decoded (bad JSON, bad archive).
	ErrMalformedResponse = errors.New("malformed response")
)

const (
	downloadTimeout = 60 * time.Second
	probeTimeout    = 10 * time.Second
)

// Client wraps HTTP operations for bgmi.
//
// Two timeout regimes exist: generic downloads get 60 seconds, while
// connectivity probes get 10. Failures are values, never panics.
type Client struct {
	httpClient  *http.Client
	probeClient *http.Client
	userAgent   string
}

// NewClient creates a new HTTP client.
func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: downloadTimeout,
		},
		probeClient: &http.Client{
			Timeout: probeTimeout,
		},
		userAgent: "BGmi",
	}
}

// Fetch performs a GET request and returns the response body.
//
// Only http:// and https:// URLs are attempted; any other scheme
// yields (nil, nil): no result, no error. Network failures and
// non-200 responses are reported as errors wrapping ErrNetwork.
func (c *Client) Fetch(ctx context.Context, url string) ([]byte, error) {
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		return nil, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: HTTP %d fetching %s", ErrNetwork, resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}

	return body, nil
}

// FetchJSON performs a GET request and decodes the JSON body into v.
//
// Transport failures wrap ErrNetwork, decode failures wrap
// ErrMalformedResponse, so callers can tell "the registry was down"
// apart from "the registry answered garbage".
func (c *Client) FetchJSON(ctx context.Context, url string, v any) error {
	body, err := c.Fetch(ctx, url)
	if err != nil {
		return err
	}
	if body == nil {
		return fmt.Errorf("%w: unsupported URL %q", ErrNetwork, url)
	}

	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("%w: decoding %s: %v", ErrMalformedResponse, url, err)
	}

	return nil
}

// Probe reports whether url answers a HEAD request within the probe
// timeout. It is used for data-source connectivity checks and never
// returns an error.
func (c *Client) Probe(ctx context.Context, url string) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		return false
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.probeClient.Do(req)
	if err != nil {
		return false
	}
	resp.Body.Close()

	return true
}
