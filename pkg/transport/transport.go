// Package transport is the single configured HTTP client behind every
// admin API call. It attaches the session token as a bearer authorization
// header, encodes multipart write payloads, decodes JSON responses, and
// logs each request under a generated request id.
//
// Errors are propagated unmodified: a non-2xx response becomes an
// *APIError and nothing here retries or transforms failures.
package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/edusite/adminkit/pkg/forms"
)

// TokenSource supplies the current auth token, or "" when logged out. The
// session store implements it.
type TokenSource interface {
	Token() string
}

// APIError is a non-2xx response from the backend.
type APIError struct {
	StatusCode int
	Status     string
	Body       string
}

func (e *APIError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("transport: %s: %s", e.Status, e.Body)
	}
	return fmt.Sprintf("transport: %s", e.Status)
}

// IsNotFound reports whether err is an APIError with status 404.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// Client sends all requests for the SDK. Safe for concurrent use.
type Client struct {
	baseURL        string
	httpClient     *http.Client
	tokens         TokenSource
	logger         zerolog.Logger
	onUnauthorized func()
}

// Option configures the Client.
type Option func(*Client)

// WithHTTPClient sets a custom http.Client, mainly for tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithTimeout sets the default request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) { c.httpClient.Timeout = timeout }
}

// WithLogger sets the request logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// WithUnauthorizedHook runs fn after any 401 response, letting the
// session store drop a token the server no longer accepts.
func WithUnauthorizedHook(fn func()) Option {
	return func(c *Client) { c.onUnauthorized = fn }
}

// New creates a client for the API at baseURL. tokens may be nil for an
// unauthenticated client.
func New(baseURL string, tokens TokenSource, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		tokens: tokens,
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get issues a GET for path and decodes the JSON response into out.
func (c *Client) Get(ctx context.Context, path string, query url.Values, out any) error {
	p := path
	if len(query) > 0 {
		p += "?" + query.Encode()
	}
	req, err := c.buildRequest(ctx, http.MethodGet, p, nil, "")
	if err != nil {
		return err
	}
	return c.do(req, out)
}

// Post submits a multipart payload and decodes the response into out.
func (c *Client) Post(ctx context.Context, path string, payload *forms.Payload, out any) error {
	return c.send(ctx, http.MethodPost, path, payload, out)
}

// Put submits a multipart payload, possibly a partial field set, and
// decodes the response into out.
func (c *Client) Put(ctx context.Context, path string, payload *forms.Payload, out any) error {
	return c.send(ctx, http.MethodPut, path, payload, out)
}

// Delete issues a DELETE and decodes the acknowledgement into out when out
// is non-nil.
func (c *Client) Delete(ctx context.Context, path string, out any) error {
	req, err := c.buildRequest(ctx, http.MethodDelete, path, nil, "")
	if err != nil {
		return err
	}
	return c.do(req, out)
}

// PostJSON issues a POST with a JSON body. The login endpoint is the one
// write that is not multipart.
func (c *Client) PostJSON(ctx context.Context, path string, body any, out any) error {
	encoded, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("transport: encode request body: %w", err)
	}
	req, err := c.buildRequest(ctx, http.MethodPost, path, bytes.NewReader(encoded), "application/json")
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *Client) send(ctx context.Context, method, path string, payload *forms.Payload, out any) error {
	var buf bytes.Buffer
	contentType, err := payload.Encode(&buf)
	if err != nil {
		return err
	}
	req, err := c.buildRequest(ctx, method, path, &buf, contentType)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *Client) buildRequest(ctx context.Context, method, path string, body io.Reader, contentType string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("transport: create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}
	return req, nil
}

func (c *Client) do(req *http.Request, out any) error {
	requestID := uuid.NewString()
	log := c.logger.With().
		Str("request_id", requestID).
		Str("method", req.Method).
		Str("url", req.URL.String()).
		Logger()

	started := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Debug().Err(err).Msg("request failed")
		return fmt.Errorf("transport: perform request: %w", err)
	}
	defer resp.Body.Close()

	log.Debug().Int("status", resp.StatusCode).Dur("elapsed", time.Since(started)).Msg("request done")

	if resp.StatusCode >= 400 {
		body, _ := io.ReadAll(resp.Body)
		if resp.StatusCode == http.StatusUnauthorized && c.onUnauthorized != nil {
			c.onUnauthorized()
		}
		return &APIError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Body:       string(bytes.TrimSpace(body)),
		}
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("transport: decode response: %w", err)
	}
	return nil
}
