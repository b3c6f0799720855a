package fetcher

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/hashicorp/go-cleanhttp"

	"github.com/flxhelpers/flxhelpers/pkg/logger"
)

const (
	DefaultTimeout     = 30 * time.Second
	DefaultMaxBodySize = 10 << 20

	// ParseErrorMessage is reported when a successful response has a body
	// that is not valid JSON for the requested type.
	ParseErrorMessage = "Failed to parse JSON"

	// BodyTooLargeMessage prefixes the error reported when the response body
	// exceeds the client's size limit. No data is decoded in that case.
	BodyTooLargeMessage = "Response body too large"
)

// Client performs JSON requests and folds every outcome into a Response.
type Client struct {
	http        *http.Client
	headers     http.Header
	timeout     time.Duration
	maxBodySize int64
	logger      *slog.Logger
}

// Options describe a single request. The zero value is a GET without body.
type Options struct {
	Method  string
	Headers map[string]string
	Body    any
	Token   string
}

// Response is the outcome of a request. Status is 0 when no response was
// received. Error is empty on success.
type Response[T any] struct {
	Data   *T     `json:"data,omitempty"`
	Error  string `json:"error,omitempty"`
	Status int    `json:"status"`
}

// OK reports whether the request completed with a 2xx status and no error.
func (r Response[T]) OK() bool {
	return r.Error == "" && r.Status >= 200 && r.Status < 300
}

func New(opts ...Option) *Client {
	c := &Client{
		http:        cleanhttp.DefaultPooledClient(),
		headers:     make(http.Header),
		timeout:     DefaultTimeout,
		maxBodySize: DefaultMaxBodySize,
		logger:      logger.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = c.logger.With(logger.Component("fetcher"))
	return c
}

// NewFromConfig creates a Client from cfg. Explicit options win over cfg.
func NewFromConfig(cfg Config, opts ...Option) *Client {
	configOpts := []Option{WithTimeout(cfg.Timeout)}
	if cfg.UserAgent != "" {
		configOpts = append(configOpts, WithHeader("User-Agent", cfg.UserAgent))
	}
	return New(append(configOpts, opts...)...)
}

// CloseIdleConnections releases pooled keep-alive connections.
func (c *Client) CloseIdleConnections() {
	c.http.CloseIdleConnections()
}

// Fetch sends exactly one request and decodes a JSON response into T.
// It never returns a Go error: failures are described by Response.Error.
func Fetch[T any](ctx context.Context, c *Client, url string, opts Options) Response[T] {
	method := strings.ToUpper(opts.Method)
	if method == "" {
		method = http.MethodGet
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	req, err := c.newRequest(ctx, method, url, opts)
	if err != nil {
		return Response[T]{Error: err.Error()}
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.DebugContext(ctx, "request failed",
			logger.Method(method),
			logger.URL(url),
			logger.Duration(time.Since(start)),
			logger.Error(err),
		)
		return Response[T]{Error: err.Error()}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBodySize+1))
	c.logger.DebugContext(ctx, "request completed",
		logger.Method(method),
		logger.URL(url),
		logger.Status(resp.StatusCode),
		logger.Duration(time.Since(start)),
	)
	if err != nil {
		return Response[T]{Status: resp.StatusCode, Error: err.Error()}
	}
	if int64(len(body)) > c.maxBodySize {
		return Response[T]{Status: resp.StatusCode, Error: bodyTooLarge(c.maxBodySize)}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return Response[T]{Status: resp.StatusCode, Error: errorMessage(resp, body)}
	}

	out := Response[T]{Status: resp.StatusCode}
	if len(bytes.TrimSpace(body)) == 0 {
		return out
	}

	var data T
	if err := json.Unmarshal(body, &data); err != nil {
		out.Error = ParseErrorMessage
		return out
	}
	out.Data = &data
	return out
}

func Get[T any](ctx context.Context, c *Client, url string, opts Options) Response[T] {
	opts.Method = http.MethodGet
	return Fetch[T](ctx, c, url, opts)
}

func Post[T any](ctx context.Context, c *Client, url string, opts Options) Response[T] {
	opts.Method = http.MethodPost
	return Fetch[T](ctx, c, url, opts)
}

func Put[T any](ctx context.Context, c *Client, url string, opts Options) Response[T] {
	opts.Method = http.MethodPut
	return Fetch[T](ctx, c, url, opts)
}

func Delete[T any](ctx context.Context, c *Client, url string, opts Options) Response[T] {
	opts.Method = http.MethodDelete
	return Fetch[T](ctx, c, url, opts)
}

func (c *Client) newRequest(ctx context.Context, method, url string, opts Options) (*http.Request, error) {
	var body io.Reader
	if opts.Body != nil {
		payload, err := json.Marshal(opts.Body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	for k, vs := range c.headers {
		for _, v := range vs {
			req.Header.Set(k, v)
		}
	}
	for k, v := range opts.Headers {
		req.Header.Set(k, v)
	}
	if opts.Token != "" {
		req.Header.Set("Authorization", "Bearer "+opts.Token)
	}
	return req, nil
}

// errorMessage prefers a non-empty JSON "message" field and falls back to
// the status text.
func errorMessage(resp *http.Response, body []byte) string {
	var payload struct {
		Message any `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if msg, ok := payload.Message.(string); ok && msg != "" {
			return msg
		}
	}
	return statusText(resp)
}

// statusText returns the reason phrase the server sent, falling back to the
// canonical text for the code when the phrase is missing.
func statusText(resp *http.Response) string {
	reason := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
	if reason != "" {
		return reason
	}
	if text := http.StatusText(resp.StatusCode); text != "" {
		return text
	}
	return "HTTP " + strconv.Itoa(resp.StatusCode)
}

func bodyTooLarge(limit int64) string {
	return fmt.Sprintf("%s: limit is %d bytes", BodyTooLargeMessage, limit)
}
