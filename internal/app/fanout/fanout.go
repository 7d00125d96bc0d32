// Package fanout runs one blocking call per item concurrently and collects
// the outcomes in input order. The action service uses it to open the
// create, update and delete subscriptions at once instead of one after the
// other.
package fanout

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// Result holds the outcome for one item: Value on success, Err otherwise.
type Result[R any] struct {
	Value R
	Err   error
}

// Run calls fn for every item with at most maxWorkers calls in flight and
// returns the results in item order. It blocks until every call returns.
//
// An item still waiting for a slot when ctx is canceled gets ctx.Err()
// without fn being called. Calls already running are left to honor ctx
// themselves.
//
// An empty items slice yields an empty, non-nil result slice. maxWorkers
// below 1 is treated as 1.
func Run[T, R any](ctx context.Context, maxWorkers int, items []T, fn func(context.Context, T) (R, error)) []Result[R] {
	if len(items) == 0 {
		return []Result[R]{}
	}
	if maxWorkers < 1 {
		maxWorkers = 1
	}

	results := make([]Result[R], len(items))
	sem := make(chan struct{}, maxWorkers)
	var wg sync.WaitGroup

	for i, item := range items {
		wg.Go(func() {
			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-ctx.Done():
				results[i] = Result[R]{Err: ctx.Err()}
				return
			}

			val, err := fn(ctx, item)
			results[i] = Result[R]{Value: val, Err: err}
		})
	}

	wg.Wait()
	return results
}

// Errors joins the failed results, each prefixed with its item. It returns
// nil when every item succeeded.
func Errors[T, R any](items []T, results []Result[R]) error {
	var errs []error
	for i, r := range results {
		if r.Err != nil {
			errs = append(errs, fmt.Errorf("%v: %w", items[i], r.Err))
		}
	}
	return errors.Join(errs...)
}
