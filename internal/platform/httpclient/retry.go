package httpclient

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"math/rand/v2"
	"net/http"
	"strconv"
	"time"

	"github.com/MiguelCav2025/sitecav/internal/platform/config"
	"github.com/MiguelCav2025/sitecav/internal/platform/logging"
)

// jitter spreads each delay over ±25% of its nominal value.
const jitter = 0.25

// retryPolicy is exponential backoff with jitter, capped at ceiling.
type retryPolicy struct {
	attempts int
	initial  time.Duration
	ceiling  time.Duration
	factor   float64
}

func newRetryPolicy(cfg config.RetryConfig) retryPolicy {
	return retryPolicy{
		attempts: cfg.MaxAttempts,
		initial:  cfg.InitialInterval,
		ceiling:  cfg.MaxInterval,
		factor:   cfg.Multiplier,
	}
}

// delay is the pause before retry n, where n=1 is the first retry.
func (p retryPolicy) delay(n int) time.Duration {
	d := min(float64(p.initial)*math.Pow(p.factor, float64(n-1)), float64(p.ceiling))
	d += d * jitter * (2*rand.Float64() - 1)
	return time.Duration(max(d, 0))
}

// attemptsFor limits calls that are not safe to replay to one attempt.
func (p retryPolicy) attemptsFor(ctx context.Context, req *http.Request) int {
	if replayable(ctx, req) {
		return p.attempts
	}
	return 1
}

// send performs req with retries. A replayable body is buffered so every
// attempt sends the same bytes; a single-attempt body, such as an upload,
// streams as is. When retries run out on a retryable status the last
// response is returned with its body open alongside the error, and the
// caller closes it either way.
func (c *Client) send(ctx context.Context, req *http.Request) (*http.Response, error) {
	if c.retry.attempts < 1 {
		return nil, fmt.Errorf("httpclient: max attempts must be at least 1, got %d", c.retry.attempts)
	}

	attempts := c.retry.attemptsFor(ctx, req)
	var body []byte
	if attempts > 1 && req.Body != nil && req.Body != http.NoBody {
		var err error
		if body, err = io.ReadAll(req.Body); err != nil {
			return nil, fmt.Errorf("reading request body: %w", err)
		}
		_ = req.Body.Close()
	}

	var (
		lastErr    error
		retryAfter time.Duration
	)
	for n := range attempts {
		if n > 0 {
			if err := c.pause(ctx, req, n, retryAfter, lastErr); err != nil {
				return nil, err
			}
		}
		if body != nil {
			req.Body = io.NopCloser(bytes.NewReader(body))
			req.ContentLength = int64(len(body))
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			if !retryableErr(err) {
				return nil, err
			}
			lastErr, retryAfter = err, 0
			continue
		}
		if !retryableStatus(resp.StatusCode) {
			return resp, nil
		}

		lastErr = fmt.Errorf("HTTP %d from %s", resp.StatusCode, c.serviceName)
		if n == attempts-1 {
			return resp, lastErr
		}
		retryAfter = parseRetryAfter(resp.Header.Get("Retry-After"), time.Now())
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}
	return nil, lastErr
}

// pause waits before retry n. A Retry-After from the backend can lengthen
// the wait up to the policy ceiling.
func (c *Client) pause(ctx context.Context, req *http.Request, n int, retryAfter time.Duration, cause error) error {
	wait := max(c.retry.delay(n), min(retryAfter, c.retry.ceiling))

	logging.FromContext(ctx).WarnContext(ctx, "retrying HTTP request",
		slog.String("operation", "httpclient.Do"),
		slog.String("method", req.Method),
		slog.String("url", req.URL.Redacted()),
		slog.String("peer_service", c.serviceName),
		slog.Int("attempt", n+1),
		slog.Int("max_attempts", c.retry.attempts),
		slog.Duration("backoff", wait),
		slog.Any("error", cause),
	)

	t := time.NewTimer(wait)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// parseRetryAfter accepts delay-seconds or an HTTP date. Anything else,
// including a date in the past, yields zero.
func parseRetryAfter(v string, now time.Time) time.Duration {
	if v == "" {
		return 0
	}
	if secs, err := strconv.Atoi(v); err == nil {
		return time.Duration(max(secs, 0)) * time.Second
	}
	if at, err := http.ParseTime(v); err == nil && at.After(now) {
		return at.Sub(now)
	}
	return 0
}

// replayable allows idempotent methods, and any method under AllowRetry.
func replayable(ctx context.Context, req *http.Request) bool {
	switch req.Method {
	case http.MethodGet, http.MethodHead, http.MethodOptions, http.MethodPut, http.MethodDelete:
		return true
	}
	return retryAllowed(ctx)
}

// retryableErr retries transport failures but not a canceled or expired
// caller.
func retryableErr(err error) bool {
	return err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
}

func retryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}
