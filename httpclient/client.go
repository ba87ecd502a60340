package httpclient

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

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"

	"github.com/ParthKapoor-dev/better-axios/logger"
)

// Client wraps an *http.Client with auth injection, a uniform envelope, and
// success/error hooks. Safe for concurrent use; token and default-header
// changes are observed by whichever requests build after them.
type Client struct {
	httpClient *http.Client
	config     Config
	log        *logger.Logger

	mu      sync.RWMutex
	baseURL string
	headers map[string]string

	authMu   sync.RWMutex
	token    string
	tokenExp time.Time
}

// New creates a new client with the given configuration.
func New(cfg Config) (*Client, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log := cfg.Logger
	if log == nil {
		log = logger.Nop()
	}

	headers := make(map[string]string, len(cfg.Headers))
	for k, v := range cfg.Headers {
		headers[k] = v
	}

	// The effective timeout (per-call override or cfg.Timeout) is enforced
	// via context in execute, so a per-call value may extend past the
	// client default.
	return &Client{
		httpClient: &http.Client{},
		config:     cfg,
		log:        log.WithComponent("http_client"),
		baseURL:    cfg.BaseURL,
		headers:    headers,
	}, nil
}

// Do executes an HTTP request. Exactly one of the results is non-nil: a
// settled 2xx call yields a *Response, everything else a *Error. The
// applicable hook fires before Do returns.
func (c *Client) Do(ctx context.Context, req Request) (*Response, error) {
	resp, err := c.execute(ctx, req)
	if err != nil {
		apiErr, ok := AsError(err)
		if !ok {
			apiErr = newTransportError(err)
		}
		c.fireError(req, apiErr)
		return nil, apiErr
	}
	c.fireSuccess(req, resp)
	return resp, nil
}

// Unwrap returns the underlying *http.Client for advanced use cases.
func (c *Client) Unwrap() *http.Client {
	return c.httpClient
}

// BaseURL returns the current base URL.
func (c *Client) BaseURL() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.baseURL
}

// SetBaseURL replaces the base URL for subsequent requests.
func (c *Client) SetBaseURL(baseURL string) {
	c.mu.Lock()
	c.baseURL = baseURL
	c.config.BaseURL = baseURL
	c.mu.Unlock()
	c.log.Debug("base url replaced", logger.Fields("base_url", baseURL))
}

// SetHeader sets a default header applied to all subsequent requests.
func (c *Client) SetHeader(key, value string) {
	c.mu.Lock()
	c.headers[key] = value
	c.mu.Unlock()
}

// RemoveHeader removes a default header.
func (c *Client) RemoveHeader(key string) {
	c.mu.Lock()
	delete(c.headers, key)
	c.mu.Unlock()
}

// execute runs the request pipeline. Every returned error is a *Error.
func (c *Client) execute(ctx context.Context, req Request) (*Response, error) {
	timeout := c.config.Timeout
	if req.Timeout > 0 {
		timeout = req.Timeout
	}
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	httpReq, err := c.buildRequest(ctx, req)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	c.log.Debug("dispatching request", logger.Fields(
		"method", httpReq.Method,
		"url", httpReq.URL.String(),
	))

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, newTransportError(err)
	}

	if c.config.ResponseInterceptor != nil {
		intercepted, err := c.config.ResponseInterceptor(resp)
		if err != nil {
			_ = resp.Body.Close()
			return nil, newTransportError(err)
		}
		if intercepted != nil && intercepted != resp {
			_ = resp.Body.Close()
			resp = intercepted
		}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, newTransportError(fmt.Errorf("read response body: %w", err))
	}

	c.log.Debug("request settled", logger.Fields(
		"method", httpReq.Method,
		"status", resp.StatusCode,
		"duration_ms", time.Since(start).Milliseconds(),
	))

	if apiErr := classifyResponse(resp, body); apiErr != nil {
		return nil, apiErr
	}

	return &Response{
		Success:    true,
		StatusCode: resp.StatusCode,
		Message:    http.StatusText(resp.StatusCode),
		Headers:    flattenHeaders(resp.Header),
		Body:       body,
	}, nil
}

// buildRequest constructs the *http.Request. Header precedence, lowest to
// highest: defaults, per-request headers, request ID, trace context, auth.
// The request interceptor then sees the fully stamped request; SkipAuth is
// applied last so the explicit opt-out always wins.
func (c *Client) buildRequest(ctx context.Context, req Request) (*http.Request, error) {
	c.mu.RLock()
	baseURL := c.baseURL
	defaults := make(map[string]string, len(c.headers))
	for k, v := range c.headers {
		defaults[k] = v
	}
	c.mu.RUnlock()

	url := req.Path
	if baseURL != "" && !strings.HasPrefix(req.Path, "http://") && !strings.HasPrefix(req.Path, "https://") {
		url = strings.TrimRight(baseURL, "/") + "/" + strings.TrimLeft(req.Path, "/")
	}

	body, contentType, err := encodeBody(req.Body)
	if err != nil {
		return nil, newTransportError(fmt.Errorf("encode body: %w", err))
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, url, body)
	if err != nil {
		return nil, newTransportError(fmt.Errorf("create request: %w", err))
	}

	if len(req.Query) > 0 {
		q := httpReq.URL.Query()
		for k, v := range req.Query {
			q.Set(k, v)
		}
		httpReq.URL.RawQuery = q.Encode()
	}

	for k, v := range defaults {
		httpReq.Header.Set(k, v)
	}
	for k, v := range req.Headers {
		httpReq.Header.Set(k, v)
	}
	if body != nil && httpReq.Header.Get("Content-Type") == "" && contentType != "" {
		httpReq.Header.Set("Content-Type", contentType)
	}

	if c.config.RequestIDHeader != "" && httpReq.Header.Get(c.config.RequestIDHeader) == "" {
		httpReq.Header.Set(c.config.RequestIDHeader, uuid.NewString())
	}

	if c.config.PropagateTrace {
		otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(httpReq.Header))
	}

	if token, exp := c.authState(); token != "" {
		httpReq.Header.Set(c.config.AuthHeader, c.config.AuthPrefix+token)
		if !exp.IsZero() && time.Now().After(exp) {
			c.log.Warn("bearer token is expired", logger.Fields(
				"expired_at", exp.Format(time.RFC3339),
			))
		}
	}

	if c.config.RequestInterceptor != nil {
		intercepted, err := c.config.RequestInterceptor(httpReq)
		if err != nil {
			return nil, newTransportError(err)
		}
		if intercepted != nil {
			httpReq = intercepted
		}
	}

	if req.SkipAuth {
		httpReq.Header.Del(c.config.AuthHeader)
	}

	return httpReq, nil
}

// fireSuccess runs the applicable success hook: the per-call hook when
// supplied, else the global hook unless skipped.
func (c *Client) fireSuccess(req Request, resp *Response) {
	hook := req.OnSuccess
	if hook == nil && !req.SkipGlobalHooks {
		hook = c.config.OnSuccess
	}
	if hook == nil {
		return
	}
	c.runHook("success", func() { hook(resp) })
}

// fireError mirrors fireSuccess for the error hooks.
func (c *Client) fireError(req Request, apiErr *Error) {
	hook := req.OnError
	if hook == nil && !req.SkipGlobalHooks {
		hook = c.config.OnError
	}
	if hook == nil {
		return
	}
	c.runHook("error", func() { hook(apiErr) })
}

// runHook guards a hook invocation. A panicking hook is logged and
// discarded; it never replaces the call's real outcome.
func (c *Client) runHook(kind string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			c.log.Error("hook panicked", logger.Fields(
				"hook", kind,
				"panic", fmt.Sprintf("%v", r),
			))
		}
	}()
	fn()
}

// encodeBody converts a body value into an io.Reader and content type.
func encodeBody(body any) (io.Reader, string, error) {
	if body == nil {
		return nil, "", nil
	}
	switch v := body.(type) {
	case io.Reader:
		return v, "", nil
	case []byte:
		return bytes.NewReader(v), "", nil
	case string:
		return strings.NewReader(v), "text/plain", nil
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return nil, "", err
		}
		return bytes.NewReader(data), "application/json", nil
	}
}
