// Package fanout runs independent fetches concurrently with a cap on the
// number in flight. The public pages use it to load their sections in
// parallel.
package fanout

import (
	"context"
	"sync"
)

// Result is the outcome for one item: Value on success, Err otherwise.
type Result[R any] struct {
	Value R
	Err   error
}

// Run calls fn for every item with at most maxWorkers calls in flight and
// returns the results in input order. Items still waiting for a slot when
// ctx is canceled get ctx.Err() and fn is not called for them. Run returns
// once every started call has finished. A maxWorkers below 1 is treated as 1.
func Run[T, R any](ctx context.Context, maxWorkers int, items []T, fn func(context.Context, T) (R, error)) []Result[R] {
	results := make([]Result[R], len(items))
	if len(items) == 0 {
		return results
	}
	if maxWorkers < 1 {
		maxWorkers = 1
	}

	sem := make(chan struct{}, maxWorkers)
	var wg sync.WaitGroup
	for i, item := range items {
		wg.Add(1)
		go func() {
			defer wg.Done()

			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-ctx.Done():
				results[i] = Result[R]{Err: ctx.Err()}
				return
			}

			val, err := fn(ctx, item)
			results[i] = Result[R]{Value: val, Err: err}
		}()
	}
	wg.Wait()
	return results
}

// Task is a unit of work for All. It usually writes its result into a
// variable captured by the closure.
type Task func(ctx context.Context) error

// All runs heterogeneous tasks through Run and returns their errors in
// input order; a nil entry means the task succeeded.
func All(ctx context.Context, maxWorkers int, tasks ...Task) []error {
	results := Run(ctx, maxWorkers, tasks, func(ctx context.Context, task Task) (struct{}, error) {
		return struct{}{}, task(ctx)
	})
	errs := make([]error, len(results))
	for i, r := range results {
		errs[i] = r.Err
	}
	return errs
}
