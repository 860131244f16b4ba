// Package client is a typed Go client for the storefront API. Reads go
// through an endpoint-keyed cache; mutations invalidate the touched
// collection so subsequent reads see fresh data.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"
)

// APIError carries the error envelope returned by the server.
type APIError struct {
	Status  int    // HTTP status code
	Code    string // business error code, e.g. "PRODUCT_NOT_FOUND"
	Message string // localized user-facing message
	Details string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d %s: %s", e.Status, e.Code, e.Message)
}

// envelope mirrors the server's unified response structure.
type envelope struct {
	Success bool            `json:"success"`
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Details string `json:"details"`
	} `json:"error"`
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) { c.httpClient = httpClient }
}

// WithCacheTTL sets the lifetime of cached GET responses.
func WithCacheTTL(ttl time.Duration) Option {
	return func(c *Client) { c.cache = NewCache(ttl) }
}

// Client talks to the storefront API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	cache      *Cache

	mu    sync.RWMutex
	token string
}

// New builds a client for the API at baseURL, e.g. "http://localhost:8080".
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
		cache:      NewCache(defaultCacheTTL),
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// SetToken stores the bearer token attached to subsequent requests.
// An empty string clears it; the cache is dropped either way since cached
// reads may be identity-dependent.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()

	c.cache.Clear()
}

// Get performs a cached GET and decodes the envelope's data into out.
func (c *Client) Get(ctx context.Context, path string, out any) error {
	if data, ok := c.cache.Get(path); ok {
		return decodeData(data, out)
	}

	data, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}

	c.cache.Set(path, data)

	return decodeData(data, out)
}

// Post performs a POST and invalidates the touched collection.
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.mutate(ctx, http.MethodPost, path, body, out)
}

// Patch performs a PATCH and invalidates the touched collection.
func (c *Client) Patch(ctx context.Context, path string, body, out any) error {
	return c.mutate(ctx, http.MethodPatch, path, body, out)
}

// Delete performs a DELETE and invalidates the touched collection.
func (c *Client) Delete(ctx context.Context, path string) error {
	return c.mutate(ctx, http.MethodDelete, path, nil, nil)
}

func (c *Client) mutate(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "failed to encode request body")
		}
		reader = bytes.NewReader(encoded)
	}

	data, err := c.do(ctx, method, path, reader)
	if err != nil {
		return err
	}

	c.cache.InvalidatePrefix(collectionPrefix(path))

	if out == nil {
		return nil
	}

	return decodeData(data, out)
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build request")
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.mu.RLock()
	token := c.token
	c.mu.RUnlock()
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "request failed")
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read response body")
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, errors.Wrapf(err, "unexpected response (status %d)", resp.StatusCode)
	}

	if !env.Success {
		apiErr := &APIError{
			Status:  resp.StatusCode,
			Message: env.Message,
		}
		if env.Error != nil {
			apiErr.Code = env.Error.Code
			apiErr.Details = env.Error.Details
		}

		return nil, apiErr
	}

	return env.Data, nil
}

// decodeData unmarshals the envelope payload into out, tolerating empty data.
func decodeData(data json.RawMessage, out any) error {
	if out == nil || len(data) == 0 {
		return nil
	}

	return errors.Wrap(json.Unmarshal(data, out), "failed to decode response data")
}

// collectionPrefix maps a request path to the cache prefix its mutation
// invalidates: "/api/cart/123" touches everything under "/api/cart".
func collectionPrefix(path string) string {
	segments := strings.SplitN(strings.TrimPrefix(path, "/"), "/", 3)
	if len(segments) < 2 {
		return path
	}

	return "/" + segments[0] + "/" + segments[1]
}
