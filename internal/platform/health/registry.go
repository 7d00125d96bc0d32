// Package health tracks the availability of the remote services the client
// talks to. The registry backs the callback server's readiness endpoint and
// the status command.
package health

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/jsamuelsen11/appsync-todo-client/internal/ports"
)

var _ ports.HealthRegistry = (*Registry)(nil)

// Registry is a concurrency-safe [ports.HealthRegistry].
type Registry struct {
	mu       sync.RWMutex
	checkers []ports.HealthChecker
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{}
}

// Register adds a checker.
func (r *Registry) Register(checker ports.HealthChecker) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.checkers = append(r.checkers, checker)
}

// CheckAll runs every registered check concurrently and returns the
// results keyed by checker name; nil means healthy. Checkers sharing a name
// are combined, so one failing instance marks the name unhealthy.
func (r *Registry) CheckAll(ctx context.Context) map[string]error {
	r.mu.RLock()
	checkers := make([]ports.HealthChecker, len(r.checkers))
	copy(checkers, r.checkers)
	r.mu.RUnlock()

	errs := make([]error, len(checkers))
	var wg sync.WaitGroup
	for i, c := range checkers {
		wg.Go(func() {
			errs[i] = c.HealthCheck(ctx)
		})
	}
	wg.Wait()

	results := make(map[string]error, len(checkers))
	for i, c := range checkers {
		name := c.Name()
		results[name] = errors.Join(results[name], errs[i])
	}
	return results
}

// Check is the outcome of one named component.
type Check struct {
	Name string
	Err  error
}

// Summary orders CheckAll results by name and reports whether every
// component is healthy.
func Summary(results map[string]error) (checks []Check, healthy bool) {
	healthy = true
	checks = make([]Check, 0, len(results))
	for name, err := range results {
		checks = append(checks, Check{Name: name, Err: err})
		if err != nil {
			healthy = false
		}
	}
	sort.Slice(checks, func(i, j int) bool { return checks[i].Name < checks[j].Name })
	return checks, healthy
}
