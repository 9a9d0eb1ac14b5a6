package client

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

	"github.com/dmitrijs2005/recipebook/internal/logging"
	"github.com/google/uuid"
	"github.com/tidwall/gjson"
	"golang.org/x/time/rate"
)

const (
	DefaultTimeout      = 10 * time.Second
	RequestIDHeaderName = "X-Request-ID"
)

type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource
	limiter    *rate.Limiter
	log        logging.Logger
	requestID  func() string
}

type Option func(*HTTPClient)

// WithHTTPClient replaces the underlying *http.Client (its Timeout included).
func WithHTTPClient(c *http.Client) Option {
	return func(h *HTTPClient) { h.httpClient = c }
}

// WithRateLimit allows at most rps requests per second with a burst of one.
// rps <= 0 disables pacing.
func WithRateLimit(rps float64) Option {
	return func(h *HTTPClient) {
		if rps > 0 {
			h.limiter = rate.NewLimiter(rate.Limit(rps), 1)
		}
	}
}

func WithLogger(l logging.Logger) Option {
	return func(h *HTTPClient) { h.log = l }
}

// NewHTTPClient builds a client for baseURL (e.g. http://127.0.0.1:5001/api).
// A zero timeout means DefaultTimeout. tokens may be nil for an
// unauthenticated client.
func NewHTTPClient(baseURL string, timeout time.Duration, tokens TokenSource, opts ...Option) *HTTPClient {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	c := &HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		tokens:     tokens,
		log:        logging.Nop(),
		requestID:  func() string { return uuid.NewString() },
	}
	for _, opt := range opts {
		opt(c)
	}
	c.log = c.log.With("component", "api")
	return c
}

func (c *HTTPClient) BaseURL() string {
	return c.baseURL
}

func (c *HTTPClient) Get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

func (c *HTTPClient) Post(ctx context.Context, path string, body any, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

func (c *HTTPClient) Put(ctx context.Context, path string, body any, out any) error {
	return c.do(ctx, http.MethodPut, path, nil, body, out)
}

func (c *HTTPClient) Delete(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, out)
}

func (c *HTTPClient) endpoint(path string, query url.Values) string {
	u := c.baseURL + "/" + strings.TrimLeft(path, "/")
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

func (c *HTTPClient) do(ctx context.Context, method, path string, query url.Values, body any, out any) error {
	target := c.endpoint(path, query)
	reqID := c.requestID()
	log := c.log.With("method", method, "url", target, "request_id", reqID)

	var payload io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%w: encode request: %v", ErrTransport, err)
		}
		payload = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, payload)
	if err != nil {
		return fmt.Errorf("%w: build request: %v", ErrTransport, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeaderName, reqID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	c.authorize(req)

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("%w: rate limiter: %v", ErrTransport, err)
		}
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Debug(ctx, "request failed", "error", err, "elapsed", time.Since(start))
		if errors.Is(err, context.Canceled) {
			return fmt.Errorf("%w: %v", ErrTransport, err)
		}
		return &NetworkError{URL: target, BaseURL: c.baseURL, Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &NetworkError{URL: target, BaseURL: c.baseURL, Err: err}
	}
	log.Debug(ctx, "request done", "status", resp.StatusCode, "elapsed", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := gjson.GetBytes(data, "message").String()
		if msg == "" {
			msg = DefaultServerMessage
		}
		return &ServerError{Status: resp.StatusCode, Message: msg}
	}

	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%w: decode response: %v", ErrTransport, err)
	}
	return nil
}

// authorize is the request interceptor: it reads the current token and
// attaches it when present.
func (c *HTTPClient) authorize(req *http.Request) {
	if c.tokens == nil {
		return
	}
	if token, ok := c.tokens.GetToken(req.Context()); ok {
		req.Header.Set("Authorization", "Bearer "+token)
	}
}
