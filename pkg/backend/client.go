package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"movie-review/pkg/utils"
)

// Iface abstracts the remote movie review function endpoint.
type Iface interface {
	// Do sends body (when non-nil) as JSON to base+path and returns the raw
	// response body of a 2xx answer. Non-2xx answers come back as *APIError.
	Do(ctx context.Context, method, path string, body any) ([]byte, error)
	BaseURL() string
}

// Client wrapper around net/http
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// BaseURL implements Iface
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Do implements Iface
func (c *Client) Do(ctx context.Context, method, path string, body any) ([]byte, error) {
	endpoint := c.baseURL + path

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &APIError{
			Method:     method,
			URL:        endpoint,
			StatusCode: resp.StatusCode,
			Body:       string(respBody),
		}
	}

	return respBody, nil
}

// ResourcePath joins an identifier onto the collection path.
func ResourcePath(id string) string {
	return "/" + url.PathEscape(id)
}

// Init builds the client for the configured endpoint
func Init(config utils.BackendConfig) (Iface, error) {
	return InitWithHTTPClient(config, &http.Client{Timeout: config.Timeout})
}

// InitWithHTTPClient is Init with a caller supplied transport.
func InitWithHTTPClient(config utils.BackendConfig, httpClient *http.Client) (Iface, error) {
	if config.URL == "" {
		return nil, fmt.Errorf("%w: backend URL is required", ErrInvalidConfig)
	}

	parsed, err := url.Parse(config.URL)
	if err != nil {
		return nil, fmt.Errorf("%w: parse backend URL: %v", ErrInvalidConfig, err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("%w: unsupported backend URL scheme %q", ErrInvalidConfig, parsed.Scheme)
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: config.Timeout}
	}

	return &Client{
		baseURL:    strings.TrimRight(config.URL, "/"),
		httpClient: httpClient,
	}, nil
}
