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

	"github.com/jsamuelsen11/appsync-todo-client/internal/platform/logging"
)

// jitterFraction is the maximum jitter as a fraction of the delay (±25%).
const jitterFraction = 0.25

// doWithRetry executes the HTTP request, retrying transport failures and
// retryable statuses with exponential backoff. The request body is buffered
// so it can be replayed. The result is written to resp rather than returned
// to keep the bodyclose linter quiet; the caller closes the body.
//
// A context marked with WithoutRetry gets exactly one attempt. A throttled
// response's Retry-After header, when present, replaces the computed delay
// (still capped at the configured maximum interval).
func (c *Client) doWithRetry(ctx context.Context, req *http.Request, resp **http.Response) error {
	if c.retryCfg.maxAttempts <= 0 {
		return fmt.Errorf("httpclient: maxAttempts must be >= 1, got %d", c.retryCfg.maxAttempts)
	}

	maxAttempts := c.retryCfg.maxAttempts
	if retryDisabled(ctx) {
		maxAttempts = 1
	}

	body, err := bufferRequestBody(req)
	if err != nil {
		return err
	}

	var (
		lastErr error
		hint    time.Duration
	)
	for attempt := range maxAttempts {
		if attempt > 0 {
			delay := backoff(attempt, c.retryCfg)
			if hint > 0 {
				delay = min(hint, c.retryCfg.maxInterval)
			}
			if err := c.waitForRetry(ctx, req, attempt, delay, lastErr); err != nil {
				return err
			}
		}

		if body != nil {
			req.Body = io.NopCloser(bytes.NewReader(body))
			req.ContentLength = int64(len(body))
		}

		r, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = err
			if !isRetryable(err) {
				return err
			}
			hint = 0
			continue
		}

		if !isRetryableStatus(r.StatusCode) {
			*resp = r
			return nil
		}

		lastErr = fmt.Errorf("HTTP %d from %s", r.StatusCode, c.serviceName)
		if attempt == maxAttempts-1 {
			*resp = r
			return lastErr
		}

		hint = retryAfter(r.Header.Get("Retry-After"), time.Now())
		_, _ = io.Copy(io.Discard, r.Body)
		_ = r.Body.Close()
	}

	return lastErr
}

// bufferRequestBody reads and closes the request body. Returns nil for a
// bodiless request.
func bufferRequestBody(req *http.Request) ([]byte, error) {
	if req.Body == nil || req.Body == http.NoBody {
		return nil, nil
	}

	b, err := io.ReadAll(req.Body)
	if err != nil {
		return nil, fmt.Errorf("reading request body: %w", err)
	}
	_ = req.Body.Close()
	return b, nil
}

func (c *Client) waitForRetry(ctx context.Context, req *http.Request, attempt int, delay time.Duration, lastErr error) error {
	logging.FromContext(ctx).WarnContext(ctx, "retrying HTTP request",
		slog.String("method", req.Method),
		slog.String("url", req.URL.Redacted()),
		slog.String("peer_service", c.serviceName),
		slog.Int("attempt", attempt+1),
		slog.Int("max_attempts", c.retryCfg.maxAttempts),
		slog.Duration("backoff", delay),
		slog.Any("error", lastErr),
	)

	t := time.NewTimer(delay)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// backoff returns the delay before retry number attempt (1-indexed):
// initial * multiplier^(attempt-1), capped at the maximum interval, then
// jittered by ±25%.
func backoff(attempt int, cfg retryConfig) time.Duration {
	delay := float64(cfg.initialInterval) * math.Pow(cfg.multiplier, float64(attempt-1))
	delay = math.Min(delay, float64(cfg.maxInterval))

	jitter := delay * jitterFraction
	delay += jitter * (2*rand.Float64() - 1) //nolint:gosec // jitter needs no crypto

	return time.Duration(math.Max(delay, 0))
}

// retryAfter parses a Retry-After value given in seconds or as an HTTP
// date. Zero means absent or unusable.
func retryAfter(value string, now time.Time) time.Duration {
	if value == "" {
		return 0
	}
	if secs, err := strconv.Atoi(value); err == nil {
		if secs <= 0 {
			return 0
		}
		return time.Duration(secs) * time.Second
	}
	if at, err := http.ParseTime(value); err == nil {
		if d := at.Sub(now); d > 0 {
			return d
		}
	}
	return 0
}

// isRetryable reports whether a transport error is worth another attempt.
// Cancellation and deadline expiry are final; everything else (connection
// refused, resets, DNS hiccups) is retried.
func isRetryable(err error) bool {
	if err == nil {
		return false
	}
	return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
}

// isRetryableStatus reports whether a status is transient: 429 throttling
// and any 5xx.
func isRetryableStatus(statusCode int) bool {
	return statusCode == http.StatusTooManyRequests || statusCode >= http.StatusInternalServerError
}
