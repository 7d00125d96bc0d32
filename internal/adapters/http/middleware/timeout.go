package middleware

import (
	"context"
	"maps"
	"net/http"
	"sync"
	"time"

	"github.com/jsamuelsen11/appsync-todo-client/internal/adapters/http/dto"
)

// Timeout returns middleware that bounds how long a handler may run. The
// handler's context carries the deadline, so a stalled token exchange is
// abandoned; the browser gets a 504 Problem Details response.
//
// The handler runs in its own goroutine and writes into a buffer; exactly
// one of the handler and the timeout path writes the real response.
func Timeout(timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()

			tw := &timeoutWriter{w: w}
			done := make(chan struct{})

			go func() {
				next.ServeHTTP(tw, r.WithContext(ctx))
				close(done)
			}()

			select {
			case <-done:
				tw.mu.Lock()
				defer tw.mu.Unlock()
				tw.flush()
			case <-ctx.Done():
				tw.mu.Lock()
				defer tw.mu.Unlock()
				tw.timedOut = true
				writeTimeout(w, r)
			}
		})
	}
}

func writeTimeout(w http.ResponseWriter, r *http.Request) {
	dto.WriteProblem(w, r, dto.NewProblem(r, http.StatusGatewayTimeout, "sign-in did not complete in time"))
}

// timeoutWriter buffers the handler's response. Writes after the timeout
// are discarded.
type timeoutWriter struct {
	w          http.ResponseWriter
	mu         sync.Mutex
	header     http.Header
	buf        []byte
	statusCode int
	wrote      bool
	timedOut   bool
}

func (tw *timeoutWriter) Header() http.Header {
	tw.mu.Lock()
	defer tw.mu.Unlock()

	if tw.header == nil {
		tw.header = make(http.Header)
	}
	return tw.header
}

func (tw *timeoutWriter) Write(b []byte) (int, error) {
	tw.mu.Lock()
	defer tw.mu.Unlock()

	if tw.timedOut {
		return 0, http.ErrHandlerTimeout
	}
	if !tw.wrote {
		tw.statusCode = http.StatusOK
		tw.wrote = true
	}
	tw.buf = append(tw.buf, b...)
	return len(b), nil
}

func (tw *timeoutWriter) WriteHeader(code int) {
	tw.mu.Lock()
	defer tw.mu.Unlock()

	if tw.wrote || tw.timedOut {
		return
	}
	tw.statusCode = code
	tw.wrote = true
}

// flush copies the buffered response to the real writer. Callers hold tw.mu.
func (tw *timeoutWriter) flush() {
	if tw.header != nil {
		maps.Copy(tw.w.Header(), tw.header)
	}
	if tw.wrote {
		tw.w.WriteHeader(tw.statusCode)
	}
	if len(tw.buf) > 0 {
		_, _ = tw.w.Write(tw.buf)
	}
}
