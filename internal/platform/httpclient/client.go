// Package httpclient is the outbound client for the hosted backend's table
// and storage APIs. Every call goes through, in order, a circuit breaker, a
// rate limiter, header stamping, a client span and the retry loop:
//
//	client := httpclient.New(&cfg.Client, "backend", metrics, logger,
//	    httpclient.WithHeader("apikey", cfg.Backend.APIKey))
//	resp, err := client.Do(ctx, req)
//
// Request and correlation IDs placed in the context by the inbound
// middleware (WithRequestID, WithCorrelationID) are forwarded as headers.
// Only idempotent methods are retried unless the context says AllowRetry.
package httpclient

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"

	"github.com/MiguelCav2025/sitecav/internal/platform/config"
	"github.com/MiguelCav2025/sitecav/internal/platform/telemetry"
)

// Client is safe for concurrent use.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	serviceName string
	breaker     *gobreaker.CircuitBreaker[struct{}]
	limiter     *rate.Limiter // nil when unlimited
	headers     http.Header
	retry       retryPolicy
	metrics     *telemetry.Metrics
	logger      *slog.Logger
}

// Option customizes a Client.
type Option func(*Client)

// WithHeader sends key: value on every request that does not set key
// itself. An empty value is ignored, so an unset API key adds nothing.
func WithHeader(key, value string) Option {
	return func(c *Client) {
		if value != "" {
			c.headers.Set(key, value)
		}
	}
}

// WithHTTPClient swaps the transport client. It inherits the configured
// timeout when it has none of its own.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc.Timeout == 0 {
			hc.Timeout = c.httpClient.Timeout
		}
		c.httpClient = hc
	}
}

// New builds a client for the service named serviceName, which labels
// spans, metrics and health results. metrics may be nil.
func New(cfg *config.ClientConfig, serviceName string, metrics *telemetry.Metrics, logger *slog.Logger, opts ...Option) *Client {
	c := &Client{
		httpClient:  &http.Client{Timeout: cfg.Timeout},
		baseURL:     strings.TrimRight(cfg.BaseURL, "/"),
		serviceName: serviceName,
		breaker:     newBreaker(serviceName, cfg.CircuitBreaker, logger),
		headers:     make(http.Header),
		retry:       newRetryPolicy(cfg.Retry),
		metrics:     metrics,
		logger:      logger,
	}
	if rl := cfg.RateLimit; rl.RequestsPerSecond > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(rl.RequestsPerSecond), rl.BurstSize)
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Do sends req. On success the caller owns resp.Body. When retries run out
// on a retryable status both resp and err are non-nil and the caller still
// closes the body. A breaker rejection or transport failure returns a nil
// resp.
func (c *Client) Do(ctx context.Context, req *http.Request) (*http.Response, error) {
	start := time.Now()

	var resp *http.Response
	_, err := c.breaker.Execute(func() (struct{}, error) {
		if c.limiter != nil {
			if err := c.limiter.Wait(ctx); err != nil {
				return struct{}{}, err
			}
		}
		stampHeaders(ctx, req, c.headers)

		spanCtx, span := c.startSpan(ctx, req)
		var err error
		resp, err = c.send(spanCtx, req.WithContext(spanCtx))
		endSpan(span, resp, err)
		return struct{}{}, err
	})

	c.record(ctx, req.Method, time.Since(start), resp, err)
	return resp, err
}

// BaseURL is the configured backend URL without a trailing slash.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Name is the service name given to New. With HealthCheck it makes the
// client a ports.HealthChecker.
func (c *Client) Name() string {
	return c.serviceName
}
