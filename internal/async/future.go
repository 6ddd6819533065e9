// Package async turns callback-style completion into a value that can be
// waited on. A Future settles exactly once; later settle calls are ignored.
package async

import (
	"context"
	"sync"
)

type Future[T any] struct {
	once sync.Once
	done chan struct{}
	val  T
	err  error
}

// New returns an unsettled future and the function that settles it.
func New[T any]() (*Future[T], func(T, error)) {
	f := &Future[T]{done: make(chan struct{})}

	return f, f.settle
}

// Resolved returns a future that is already settled.
func Resolved[T any](val T, err error) *Future[T] {
	f, settle := New[T]()
	settle(val, err)

	return f
}

func (f *Future[T]) settle(val T, err error) {
	f.once.Do(func() {
		f.val = val
		f.err = err
		close(f.done)
	})
}

// Done is closed once the future settles.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// Wait blocks until the future settles or ctx ends. A ctx ending only stops
// the wait; the underlying call still runs to completion.
func (f *Future[T]) Wait(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.val, f.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Then returns a future settled with fn applied to this future's outcome.
func Then[T, U any](f *Future[T], fn func(T, error) (U, error)) *Future[U] {
	next, settle := New[U]()

	go func() {
		<-f.done
		settle(fn(f.val, f.err))
	}()

	return next
}
