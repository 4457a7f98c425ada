package async

import (
	"context"
	"errors"
	"time"
)

// Future is the eventual result of a job started by Async or Map.
type Future[U any] struct {
	result U
	err    error
	done   chan struct{}
}

// Await blocks until the job finishes.
func (f *Future[U]) Await() (U, error) {
	<-f.done
	return f.result, f.err
}

// AwaitWithTimeout is Await bounded by timeout; it returns ErrTimeout when
// the job is still running.
func (f *Future[U]) AwaitWithTimeout(timeout time.Duration) (U, error) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case <-f.done:
		return f.result, f.err
	case <-timer.C:
		var zero U
		return zero, ErrTimeout
	}
}

// Done reports whether the job has finished without blocking.
func (f *Future[U]) Done() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// Async runs fn(ctx, param) on a new goroutine.
func Async[T, U any](ctx context.Context, param T, fn func(context.Context, T) (U, error)) *Future[U] {
	f := &Future[U]{done: make(chan struct{})}

	go func() {
		defer close(f.done)
		if err := ctx.Err(); err != nil {
			f.err = err
			return
		}
		f.result, f.err = fn(ctx, param)
	}()

	return f
}

// Map runs fn for every param with at most limit jobs in flight. A limit
// below 1 means no limit. Futures are returned in params order.
func Map[T, U any](ctx context.Context, limit int, params []T, fn func(context.Context, T) (U, error)) []*Future[U] {
	futures := make([]*Future[U], len(params))
	if limit < 1 || limit > len(params) {
		limit = len(params)
	}
	sem := make(chan struct{}, max(limit, 1))

	for i, param := range params {
		futures[i] = Async(ctx, param, func(ctx context.Context, p T) (U, error) {
			select {
			case sem <- struct{}{}:
			case <-ctx.Done():
				var zero U
				return zero, ctx.Err()
			}
			defer func() { <-sem }()
			return fn(ctx, p)
		})
	}

	return futures
}

// WaitAll waits for every future and returns all results in order together
// with the joined errors of the failed jobs.
func WaitAll[U any](futures ...*Future[U]) ([]U, error) {
	results := make([]U, len(futures))
	var errs []error

	for i, f := range futures {
		res, err := f.Await()
		results[i] = res
		if err != nil {
			errs = append(errs, err)
		}
	}

	return results, errors.Join(errs...)
}
