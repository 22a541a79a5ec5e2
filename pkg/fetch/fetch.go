// Package fetch drives asynchronous API operations through a small state
// machine: idle, loading, success, error. It is entity-agnostic and
// underpins every page of the console.
//
// The central rule is supersession: within one fetcher, starting a new
// call always cancels the previous one, and a superseded call's result is
// never committed, regardless of the order responses arrive in.
// Cancellation is cooperative and context-based; it does not stop the
// request on the wire, it guarantees the response is discarded.
package fetch

import (
	"context"
	"errors"
	"sync"
)

// Status is the lifecycle phase of a fetcher.
type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusSuccess
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusLoading:
		return "loading"
	case StatusSuccess:
		return "success"
	case StatusError:
		return "error"
	}
	return "unknown"
}

// Operation is one cancellable API call.
type Operation[T any] func(ctx context.Context) (T, error)

// Fetcher drives exactly one operation at a time. Starting a new Execute
// supersedes any in-flight one. Safe for concurrent use.
type Fetcher[T any] struct {
	mu      sync.Mutex
	status  Status
	data    T
	hasData bool
	err     error

	gen    uint64
	cancel context.CancelFunc

	// cbMu serializes callback delivery; deliveredGen drops a callback
	// whose generation is older than one already delivered, so a slow
	// subscriber can never apply a superseded result over a newer one.
	cbMu         sync.Mutex
	deliveredGen uint64

	onSuccess func(T)
	onError   func(error)
}

// Option configures a Fetcher.
type Option[T any] func(*Fetcher[T])

// OnSuccess registers a callback invoked after a successful commit.
func OnSuccess[T any](fn func(T)) Option[T] {
	return func(f *Fetcher[T]) { f.onSuccess = fn }
}

// OnError registers a callback invoked after an error commit. It does not
// fire for cancelled calls.
func OnError[T any](fn func(error)) Option[T] {
	return func(f *Fetcher[T]) { f.onError = fn }
}

func NewFetcher[T any](opts ...Option[T]) *Fetcher[T] {
	f := &Fetcher[T]{}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Execute runs op, transitioning to loading and clearing prior data and
// error first. Any previous in-flight call is cancelled. On success the
// result is stored and returned; a superseded or cancelled call leaves
// state untouched and re-signals context.Canceled to its caller.
func (f *Fetcher[T]) Execute(ctx context.Context, op Operation[T]) (T, error) {
	var zero T

	f.mu.Lock()
	if f.cancel != nil {
		f.cancel()
	}
	callCtx, cancel := context.WithCancel(ctx)
	f.cancel = cancel
	f.gen++
	gen := f.gen
	f.status = StatusLoading
	f.data = zero
	f.hasData = false
	f.err = nil
	f.mu.Unlock()

	out, err := op(callCtx)

	f.mu.Lock()
	if gen != f.gen {
		// Superseded while running; a Reset or newer Execute owns the
		// state now.
		f.mu.Unlock()
		if err != nil {
			return zero, err
		}
		return zero, context.Canceled
	}

	if err != nil {
		if canceled(callCtx, err) {
			f.mu.Unlock()
			return zero, err
		}
		f.status = StatusError
		f.err = err
		f.cancel = nil
		f.mu.Unlock()
		if f.onError != nil {
			f.deliver(gen, func() { f.onError(err) })
		}
		return zero, err
	}

	f.status = StatusSuccess
	f.data = out
	f.hasData = true
	f.cancel = nil
	f.mu.Unlock()
	if f.onSuccess != nil {
		f.deliver(gen, func() { f.onSuccess(out) })
	}
	return out, nil
}

// deliver invokes a commit callback unless a newer generation's callback
// already ran. Delivery is serialized, so callbacks observe commits in
// order even when an older caller is slow to get here.
func (f *Fetcher[T]) deliver(gen uint64, fn func()) {
	f.cbMu.Lock()
	defer f.cbMu.Unlock()
	if gen < f.deliveredGen {
		return
	}
	f.deliveredGen = gen
	fn()
}

func canceled(ctx context.Context, err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(ctx.Err(), context.Canceled)
}

// Cancel requests cancellation of the current in-flight call, if any.
// Idempotent; cancelling a finished call has no effect.
func (f *Fetcher[T]) Cancel() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.cancel != nil {
		f.cancel()
	}
}

// Reset cancels any in-flight call and returns to the idle baseline. A
// cancelled call resolving later never mutates state again.
func (f *Fetcher[T]) Reset() {
	var zero T
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.cancel != nil {
		f.cancel()
		f.cancel = nil
	}
	f.gen++
	f.status = StatusIdle
	f.data = zero
	f.hasData = false
	f.err = nil
}

// Close is the teardown hook: it cancels in-flight work so a disposed
// owner is never updated again.
func (f *Fetcher[T]) Close() {
	f.Reset()
}

// Status returns the current lifecycle phase.
func (f *Fetcher[T]) Status() Status {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.status
}

// Loading reports whether a call is in flight. It is true exactly when
// Status is StatusLoading.
func (f *Fetcher[T]) Loading() bool {
	return f.Status() == StatusLoading
}

// Data returns the last committed result and whether one is present.
func (f *Fetcher[T]) Data() (T, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.data, f.hasData
}

// Err returns the stored error, non-nil exactly when Status is StatusError.
func (f *Fetcher[T]) Err() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.err
}
