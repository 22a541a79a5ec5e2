package fetch

import (
	"context"
	"sync"
)

// PageRequest describes one page load: the 1-based page number, the fixed
// page size, and the merged query params.
type PageRequest struct {
	Page   int
	Limit  int
	Params map[string]string
}

// PageOperation loads one page of a list.
type PageOperation[T any] func(ctx context.Context, req PageRequest) ([]T, error)

// PageFetcher accumulates pages of a list operation. Page 1 replaces the
// accumulated items, later pages append. HasMore is true exactly when the
// last fetched page was full. Safe for concurrent use.
type PageFetcher[T any] struct {
	op       PageOperation[T]
	pageSize int

	mu     sync.Mutex
	status Status
	err    error
	items  []T
	page   int
	more   bool
	params map[string]string

	gen    uint64
	cancel context.CancelFunc
}

func NewPageFetcher[T any](op PageOperation[T], pageSize int) *PageFetcher[T] {
	return &PageFetcher[T]{
		op:       op,
		pageSize: pageSize,
		params:   map[string]string{},
	}
}

// FetchPage loads one page, merging extra into the stored params first.
// Any in-flight page load is superseded; a superseded load never mutates
// state.
func (p *PageFetcher[T]) FetchPage(ctx context.Context, page int, extra map[string]string) ([]T, error) {
	if page < 1 {
		page = 1
	}

	p.mu.Lock()
	if p.cancel != nil {
		p.cancel()
	}
	callCtx, cancel := context.WithCancel(ctx)
	p.cancel = cancel
	p.gen++
	gen := p.gen
	p.status = StatusLoading
	p.err = nil
	for k, v := range extra {
		p.params[k] = v
	}
	req := PageRequest{Page: page, Limit: p.pageSize, Params: copyParams(p.params)}
	p.mu.Unlock()

	result, err := p.op(callCtx, req)

	p.mu.Lock()
	defer p.mu.Unlock()
	if gen != p.gen {
		if err != nil {
			return nil, err
		}
		return nil, context.Canceled
	}

	if err != nil {
		if canceled(callCtx, err) {
			return nil, err
		}
		p.status = StatusError
		p.err = err
		p.cancel = nil
		return nil, err
	}

	if page == 1 {
		p.items = append([]T(nil), result...)
	} else {
		p.items = append(p.items, result...)
	}
	p.page = page
	p.more = len(result) == p.pageSize
	p.status = StatusSuccess
	p.cancel = nil
	return result, nil
}

// LoadMore fetches the next page with the current params. It is a no-op
// while a load is in flight or when the list is exhausted.
func (p *PageFetcher[T]) LoadMore(ctx context.Context) ([]T, error) {
	p.mu.Lock()
	if p.status == StatusLoading || !p.more {
		p.mu.Unlock()
		return nil, nil
	}
	next := p.page + 1
	p.mu.Unlock()
	return p.FetchPage(ctx, next, nil)
}

// Refresh re-fetches page 1 with the current params, replacing all
// accumulated items.
func (p *PageFetcher[T]) Refresh(ctx context.Context) ([]T, error) {
	return p.FetchPage(ctx, 1, nil)
}

// SetParams merges new params and restarts from page 1. Used for filter
// changes.
func (p *PageFetcher[T]) SetParams(ctx context.Context, params map[string]string) ([]T, error) {
	return p.FetchPage(ctx, 1, params)
}

// Cancel requests cancellation of the in-flight page load, if any.
func (p *PageFetcher[T]) Cancel() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.cancel != nil {
		p.cancel()
	}
}

// Close cancels in-flight work and drops the accumulated state.
func (p *PageFetcher[T]) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.cancel != nil {
		p.cancel()
		p.cancel = nil
	}
	p.gen++
	p.status = StatusIdle
	p.err = nil
	p.items = nil
	p.page = 0
	p.more = false
	p.params = map[string]string{}
}

// Items returns the accumulated records.
func (p *PageFetcher[T]) Items() []T {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]T(nil), p.items...)
}

// Page returns the last successfully loaded page number.
func (p *PageFetcher[T]) Page() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.page
}

// HasMore reports whether the last fetched page was full.
func (p *PageFetcher[T]) HasMore() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.more
}

// Loading reports whether a page load is in flight.
func (p *PageFetcher[T]) Loading() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.status == StatusLoading
}

// Err returns the stored error from the last failed load.
func (p *PageFetcher[T]) Err() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.err
}

func copyParams(in map[string]string) map[string]string {
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
