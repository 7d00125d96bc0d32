package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/samber/do/v2"

	adapthttp "github.com/jsamuelsen11/appsync-todo-client/internal/adapters/http"
	"github.com/jsamuelsen11/appsync-todo-client/internal/platform/config"
)

// errCallbackDisabled is returned by startCallback when callback.enabled is
// off.
var errCallbackDisabled = errors.New("callback server disabled")

// signInWaiter carries the outcome of the first sign-in redirect to a
// command that is blocked on it. Later outcomes are dropped.
type signInWaiter struct {
	ch chan error
}

func newSignInWaiter() *signInWaiter {
	return &signInWaiter{ch: make(chan error, 1)}
}

func (w *signInWaiter) done(err error) {
	select {
	case w.ch <- err:
	default:
	}
}

// wait blocks until a redirect arrives or ctx ends.
func (w *signInWaiter) wait(ctx context.Context) error {
	select {
	case err := <-w.ch:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// startCallback binds and serves the sign-in callback server. The returned
// stop function shuts it down.
func startCallback(ctx context.Context, injector do.Injector, logger *slog.Logger) (func(), error) {
	cfg := do.MustInvoke[*config.Config](injector)
	if !cfg.Callback.Enabled {
		return nil, errCallbackDisabled
	}

	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return nil, fmt.Errorf("resolving callback server: %w", err)
	}
	if _, err := server.Listen(); err != nil {
		return nil, err
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- server.Start()
	}()

	return func() {
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), serverShutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("callback server shutdown error", slog.Any("error", err))
		}
		if err := <-serveErr; err != nil {
			logger.Error("callback server error", slog.Any("error", err))
		}
	}, nil
}
