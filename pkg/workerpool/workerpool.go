// Package workerpool runs independent work items with bounded concurrency.
package workerpool

import (
	"context"
	"sync"
)

// Process calls fn for every item using at most workers goroutines. The first error returned by
// fn cancels the context passed to the remaining calls, no new items are started and that error
// is returned. If the parent context ends first its error is returned.
func Process[T any](ctx context.Context, workers int, items []T, fn func(context.Context, T) error) error {
	if workers < 1 {
		workers = 1
	}
	if workers > len(items) {
		workers = len(items)
	}

	ctx, cancel := context.WithCancelCause(ctx)
	defer cancel(nil)

	next := make(chan T)
	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for item := range next {
				if err := fn(ctx, item); err != nil {
					cancel(err)
				}
			}
		}()
	}

feed:
	for _, item := range items {
		select {
		case <-ctx.Done():
			break feed
		case next <- item:
		}
	}
	close(next)
	wg.Wait()

	if err := context.Cause(ctx); err != nil {
		return err
	}
	return nil
}
