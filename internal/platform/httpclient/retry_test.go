package httpclient

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/sony/gobreaker/v2"
)

func TestBackoff(t *testing.T) {
	t.Parallel()

	cfg := retryConfig{
		initialInterval: 100 * time.Millisecond,
		maxInterval:     1 * time.Second,
		multiplier:      2.0,
	}

	tests := []struct {
		attempt int
		base    time.Duration
	}{
		{attempt: 1, base: 100 * time.Millisecond},
		{attempt: 2, base: 200 * time.Millisecond},
		{attempt: 3, base: 400 * time.Millisecond},
		{attempt: 5, base: 1 * time.Second},
		{attempt: 10, base: 1 * time.Second},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("attempt %d", tt.attempt), func(t *testing.T) {
			t.Parallel()

			lo := time.Duration(float64(tt.base) * (1 - jitterFraction))
			hi := time.Duration(float64(tt.base) * (1 + jitterFraction))
			for range 50 {
				got := backoff(tt.attempt, cfg)
				if got < lo || got > hi {
					t.Fatalf("backoff(%d) = %v, want within [%v, %v]", tt.attempt, got, lo, hi)
				}
			}
		})
	}
}

func TestRetryAfter(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		value string
		want  time.Duration
	}{
		{name: "absent", value: "", want: 0},
		{name: "seconds", value: "3", want: 3 * time.Second},
		{name: "zero seconds", value: "0", want: 0},
		{name: "negative", value: "-2", want: 0},
		{name: "http date", value: now.Add(5 * time.Second).Format(http.TimeFormat), want: 5 * time.Second},
		{name: "date in the past", value: now.Add(-time.Minute).Format(http.TimeFormat), want: 0},
		{name: "garbage", value: "soon", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := retryAfter(tt.value, now); got != tt.want {
				t.Errorf("retryAfter(%q) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestIsRetryable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil", err: nil, want: false},
		{name: "canceled", err: context.Canceled, want: false},
		{name: "deadline", err: fmt.Errorf("post: %w", context.DeadlineExceeded), want: false},
		{name: "connection refused", err: &net.OpError{Op: "dial", Err: errors.New("connection refused")}, want: true},
		{name: "unknown", err: errors.New("unexpected EOF"), want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := isRetryable(tt.err); got != tt.want {
				t.Errorf("isRetryable(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestIsRetryableStatus(t *testing.T) {
	t.Parallel()

	retryable := map[int]bool{
		http.StatusOK:                  false,
		http.StatusBadRequest:          false,
		http.StatusUnauthorized:        false,
		http.StatusNotFound:            false,
		http.StatusTooManyRequests:     true,
		http.StatusInternalServerError: true,
		http.StatusBadGateway:          true,
		http.StatusServiceUnavailable:  true,
	}

	for code, want := range retryable {
		if got := isRetryableStatus(code); got != want {
			t.Errorf("isRetryableStatus(%d) = %v, want %v", code, got, want)
		}
	}
}

func TestOutcome(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		resp       *http.Response
		err        error
		wantStatus int
		wantResult string
	}{
		{"ok", &http.Response{StatusCode: http.StatusOK}, nil, http.StatusOK, "success"},
		{"client error", &http.Response{StatusCode: http.StatusUnauthorized}, nil, http.StatusUnauthorized, "error"},
		{"exhausted", &http.Response{StatusCode: http.StatusBadGateway}, errors.New("HTTP 502"), http.StatusBadGateway, "error"},
		{"transport", nil, errors.New("connection refused"), 0, "error"},
		{"breaker open", nil, gobreaker.ErrOpenState, 0, "circuit_open"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			status, result := outcome(tt.resp, tt.err)
			if status != tt.wantStatus || result != tt.wantResult {
				t.Errorf("outcome() = (%d, %q), want (%d, %q)", status, result, tt.wantStatus, tt.wantResult)
			}
		})
	}
}

func TestClampUint32(t *testing.T) {
	t.Parallel()

	for in, want := range map[int]uint32{-1: 0, 0: 0, 3: 3, math.MaxInt64: math.MaxUint32} {
		if got := clampUint32(in); got != want {
			t.Errorf("clampUint32(%d) = %d, want %d", in, got, want)
		}
	}
}
