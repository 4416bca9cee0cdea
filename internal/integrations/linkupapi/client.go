package linkupapi

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

// DefaultTimeout bounds a request when no per-request override is given
const DefaultTimeout = 10 * time.Second

// Logger interface for logging
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// MetricsRecorder records outbound request outcomes. Optional; a nil
// recorder disables collection.
type MetricsRecorder interface {
	ObserveOutbound(method string, status int, duration time.Duration)
}

// Client is the HTTP client for the LinkUp backend. Every call builds the
// full URL from the configured base URL, injects the current bearer token
// unless skipped, bounds the request with a timeout and normalizes failures
// into the package error taxonomy: ErrTimeout, ErrNetwork, *HTTPError for
// non-2xx responses and ErrParse for malformed success bodies. A nil error
// means the call succeeded and out (if non-nil) holds the decoded body;
// there is no second result channel.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenProvider
	timeout    time.Duration
	metrics    MetricsRecorder
	log        Logger
}

// NewClient creates a new LinkUp backend client. A zero timeout falls back
// to DefaultTimeout; metrics may be nil.
func NewClient(baseURL string, timeout time.Duration, tokens TokenProvider, metrics MetricsRecorder, log Logger) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{},
		tokens:     tokens,
		timeout:    timeout,
		metrics:    metrics,
		log:        log,
	}
}

// Get issues a GET request against path and decodes the JSON response into out
func (c *Client) Get(ctx context.Context, path string, out any, opts ...RequestOption) error {
	return c.do(ctx, http.MethodGet, path, nil, out, opts...)
}

// Post issues a POST request with body serialized as JSON and decodes the
// response into out. out may be nil when the caller does not need the body.
func (c *Client) Post(ctx context.Context, path string, body any, out any, opts ...RequestOption) error {
	return c.do(ctx, http.MethodPost, path, body, out, opts...)
}

func (c *Client) do(ctx context.Context, method, path string, body any, out any, opts ...RequestOption) error {
	options := requestOptions{timeout: c.timeout}
	for _, opt := range opts {
		opt(&options)
	}

	url := c.baseURL + path

	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%w: marshal request body: %v", ErrInternal, err)
		}
		reqBody = bytes.NewReader(payload)
	}

	ctx, cancel := context.WithTimeout(ctx, options.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return fmt.Errorf("%w: create request: %v", ErrInternal, err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if !options.skipAuth && req.Header.Get("Authorization") == "" {
		if token, ok := c.tokens.Token(ctx); ok && token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.observe(method, 0, start)
		if errors.Is(err, context.DeadlineExceeded) {
			c.log.Warn("%s %s timed out after %s", method, path, options.timeout)
			return fmt.Errorf("%w: %s %s after %s", ErrTimeout, method, path, options.timeout)
		}
		c.log.Error("%s %s failed: %v", method, path, err)
		return fmt.Errorf("%w: %s %s: %v", ErrNetwork, method, path, err)
	}
	defer resp.Body.Close()

	c.observe(method, resp.StatusCode, start)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		message := extractErrorMessage(resp)
		c.log.Warn("%s %s returned status %d: %s", method, path, resp.StatusCode, message)
		return &HTTPError{Status: resp.StatusCode, Message: message}
	}

	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: read response body: %v", ErrNetwork, err)
	}

	// Legacy endpoints answer 200 with an empty body
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, out); err != nil {
		c.log.Error("%s %s returned malformed body: %v", method, path, err)
		return fmt.Errorf("%w: decode response: %v", ErrParse, err)
	}

	return nil
}

func (c *Client) observe(method string, status int, start time.Time) {
	if c.metrics != nil {
		c.metrics.ObserveOutbound(method, status, time.Since(start))
	}
}

// extractErrorMessage pulls a human-readable error out of a non-2xx
// response: the JSON "message" field if present, otherwise the whole JSON
// body, otherwise the raw body text, otherwise the HTTP status line.
func extractErrorMessage(resp *http.Response) string {
	data, err := io.ReadAll(resp.Body)
	if err == nil {
		trimmed := bytes.TrimSpace(data)
		if len(trimmed) > 0 {
			var payload map[string]any
			if json.Unmarshal(trimmed, &payload) == nil {
				if msg, ok := payload["message"].(string); ok && msg != "" {
					return msg
				}
				if compact, err := json.Marshal(payload); err == nil {
					return string(compact)
				}
			}
			return string(trimmed)
		}
	}

	if text := http.StatusText(resp.StatusCode); text != "" {
		return text
	}
	return fmt.Sprintf("HTTP %d", resp.StatusCode)
}
