// FILE: srunauth/src/internal/transport/client.go
package transport

import (
	"context"
	"fmt"
	"net/url"
	"sort"
	"strings"
	"time"

	"srunauth/src/internal/config"
	"srunauth/src/internal/core"
	ltls "srunauth/src/internal/tls"

	"github.com/lixenwraith/log"
	"github.com/valyala/fasthttp"
)

// Response is the status and raw body of a completed GET.
type Response struct {
	StatusCode int
	Body       []byte
}

// Doer issues GET requests with query parameters.
type Doer interface {
	Get(ctx context.Context, rawURL string, params url.Values) (*Response, error)
}

// Client is a fasthttp backed Doer. Every non-200 answer is reported as core.ErrNetwork.
type Client struct {
	client     *fasthttp.Client
	tlsManager *ltls.ClientManager
	userAgent  string
	timeout    time.Duration
	logger     *log.Logger
}

// Option customizes a Client.
type Option func(*Client)

// WithDial replaces the dialer, used to route requests over in-memory listeners.
func WithDial(dial fasthttp.DialFunc) Option {
	return func(c *Client) {
		c.client.Dial = dial
	}
}

// NewClient creates a transport client from the http config section.
func NewClient(cfg config.HTTPConfig, userAgent string, logger *log.Logger, opts ...Option) (*Client, error) {
	if cfg.TimeoutMS <= 0 {
		return nil, fmt.Errorf("%w: http timeout must be positive: %d", core.ErrConfiguration, cfg.TimeoutMS)
	}

	timeout := time.Duration(cfg.TimeoutMS) * time.Millisecond
	if cfg.UserAgentHeader != "" {
		userAgent = cfg.UserAgentHeader
	}

	tlsManager, err := ltls.NewClientManager(&cfg.TLS, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create TLS client manager: %w", err)
	}

	c := &Client{
		client: &fasthttp.Client{
			MaxConnsPerHost:               4,
			MaxIdleConnDuration:           10 * time.Second,
			ReadTimeout:                   timeout,
			WriteTimeout:                  timeout,
			DisableHeaderNamesNormalizing: true,
			TLSConfig:                     tlsManager.GetConfig(),
		},
		tlsManager: tlsManager,
		userAgent:  userAgent,
		timeout:    timeout,
		logger:     logger,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// Get sends a GET to rawURL with params appended to any query it already carries.
// The request is bounded by the configured timeout and the context deadline.
func (c *Client) Get(ctx context.Context, rawURL string, params url.Values) (*Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: request to %s not sent: %v", core.ErrNetwork, endpointName(rawURL), err)
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(rawURL)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "*/*")

	args := req.URI().QueryArgs()
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		for _, v := range params[k] {
			args.Add(k, v)
		}
	}

	deadline := time.Now().Add(c.timeout)
	if ctxDeadline, ok := ctx.Deadline(); ok && ctxDeadline.Before(deadline) {
		deadline = ctxDeadline
	}

	start := time.Now()
	err := c.client.DoDeadline(req, resp, deadline)
	if err != nil {
		c.logger.Debug("msg", "HTTP request failed",
			"component", "transport",
			"endpoint", endpointName(rawURL),
			"error", err)
		return nil, fmt.Errorf("%w: request to %s failed: %v", core.ErrNetwork, endpointName(rawURL), err)
	}

	statusCode := resp.StatusCode()
	body := make([]byte, len(resp.Body()))
	copy(body, resp.Body())

	c.logger.Debug("msg", "HTTP request completed",
		"component", "transport",
		"endpoint", endpointName(rawURL),
		"status_code", statusCode,
		"bytes", len(body),
		"duration_ms", time.Since(start).Milliseconds())

	if statusCode != fasthttp.StatusOK {
		return &Response{StatusCode: statusCode, Body: body},
			fmt.Errorf("%w: %s returned status %d", core.ErrNetwork, endpointName(rawURL), statusCode)
	}

	return &Response{StatusCode: statusCode, Body: body}, nil
}

// GetStats returns transport settings for diagnostics.
func (c *Client) GetStats() map[string]any {
	return map[string]any{
		"timeout_ms": c.timeout.Milliseconds(),
		"user_agent": c.userAgent,
		"tls":        c.tlsManager.GetStats(),
	}
}

// endpointName strips the query from a URL so credentials never reach the log.
func endpointName(rawURL string) string {
	if i := strings.IndexByte(rawURL, '?'); i >= 0 {
		return rawURL[:i]
	}
	return rawURL
}
