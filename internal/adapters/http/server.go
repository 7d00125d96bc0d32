package http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/jsamuelsen11/appsync-todo-client/internal/domain"
	"github.com/jsamuelsen11/appsync-todo-client/internal/platform/config"
)

const defaultShutdownTimeout = 10 * time.Second

// ErrNotLoopback is returned by CallbackTarget when the redirect URI does
// not point at this machine, so no local server can receive it.
var ErrNotLoopback = errors.New("redirect is not a loopback http URI")

// CallbackTarget derives the listen address and route path from a sign-in
// redirect URI such as http://localhost:8765/callback. Only plain http on
// a loopback host qualifies; a missing port means 80.
func CallbackTarget(redirect string) (addr, path string, err error) {
	u, err := url.Parse(redirect)
	if err != nil {
		return "", "", &domain.ValidationError{Fields: map[string]string{
			"redirect_sign_in": err.Error(),
		}}
	}
	if u.Scheme != "http" {
		return "", "", fmt.Errorf("%w: %s", ErrNotLoopback, redirect)
	}

	host := u.Hostname()
	if host != "localhost" {
		ip := net.ParseIP(host)
		if ip == nil || !ip.IsLoopback() {
			return "", "", fmt.Errorf("%w: %s", ErrNotLoopback, redirect)
		}
	}

	port := u.Port()
	if port == "" {
		port = "80"
	}

	path = u.Path
	if path == "" {
		path = "/"
	}
	return net.JoinHostPort(host, port), path, nil
}

// Server wraps http.Server with graceful shutdown support.
type Server struct {
	srv    *http.Server
	logger *slog.Logger

	mu sync.Mutex
	ln net.Listener
}

// NewServer creates the callback server listening on addr.
func NewServer(addr string, cfg config.CallbackConfig, handler http.Handler, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Server{
		srv: &http.Server{
			Addr:         addr,
			Handler:      handler,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
			IdleTimeout:  cfg.IdleTimeout,
		},
		logger: logger,
	}
}

// Listen binds the listen address without serving yet, so a port already
// in use is reported before the browser is sent to the provider.
func (s *Server) Listen() (net.Addr, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ln != nil {
		return s.ln.Addr(), nil
	}
	ln, err := net.Listen("tcp", s.srv.Addr)
	if err != nil {
		return nil, fmt.Errorf("listen on %s: %w", s.srv.Addr, err)
	}
	s.ln = ln
	return ln.Addr(), nil
}

// Start binds (if Listen was not called) and serves requests. It blocks
// until the server stops. Returns nil on graceful shutdown.
func (s *Server) Start() error {
	addr, err := s.Listen()
	if err != nil {
		return err
	}

	s.mu.Lock()
	ln := s.ln
	s.mu.Unlock()

	s.logger.Info("starting callback server", slog.String("addr", addr.String()))

	if err := s.srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("callback server error: %w", err)
	}
	return nil
}

// Shutdown gracefully shuts down the server, waiting for in-flight requests
// to complete within the given context deadline. If ctx has no deadline,
// a default 10-second timeout is applied.
func (s *Server) Shutdown(ctx context.Context) error {
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, defaultShutdownTimeout)
		defer cancel()
	}

	s.logger.Info("shutting down callback server")
	return s.srv.Shutdown(ctx)
}

// Addr returns the bound address once Listen has succeeded, otherwise the
// configured one.
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ln != nil {
		return s.ln.Addr().String()
	}
	return s.srv.Addr
}
