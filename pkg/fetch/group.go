package fetch

import (
	"context"
	"sync"
)

// Query is one independent read operation of a QueryGroup.
type Query func(ctx context.Context) (any, error)

type querySlot struct {
	status Status
	data   any
	err    error
}

// QueryGroup runs a fixed, named set of independent read operations in
// parallel and tracks each one's status, result, and error separately.
// One query's failure never aborts the others.
//
// The key set is fixed at construction; there is no way to add or remove
// queries afterwards.
type QueryGroup struct {
	queries map[string]Query

	mu      sync.Mutex
	slots   map[string]*querySlot
	pending int

	gen    uint64
	cancel context.CancelFunc
}

func NewQueryGroup(queries map[string]Query) *QueryGroup {
	g := &QueryGroup{
		queries: queries,
		slots:   make(map[string]*querySlot, len(queries)),
	}
	for name := range queries {
		g.slots[name] = &querySlot{status: StatusIdle}
	}
	return g
}

// FetchAll cancels any previously tracked in-flight calls, marks every
// query loading, launches all of them concurrently, and returns when all
// have settled regardless of individual outcomes.
func (g *QueryGroup) FetchAll(ctx context.Context) {
	g.mu.Lock()
	if g.cancel != nil {
		g.cancel()
	}
	callCtx, cancel := context.WithCancel(ctx)
	g.cancel = cancel
	g.gen++
	gen := g.gen
	g.pending = len(g.queries)
	for name := range g.queries {
		g.slots[name].status = StatusLoading
		g.slots[name].data = nil
		g.slots[name].err = nil
	}
	g.mu.Unlock()

	var wg sync.WaitGroup
	for name, query := range g.queries {
		wg.Add(1)
		go func(name string, query Query) {
			defer wg.Done()
			data, err := query(callCtx)

			g.mu.Lock()
			defer g.mu.Unlock()
			if gen != g.gen {
				return
			}
			g.pending--
			slot := g.slots[name]
			if err != nil {
				slot.status = StatusError
				slot.err = err
				return
			}
			slot.status = StatusSuccess
			slot.data = data
		}(name, query)
	}
	wg.Wait()
}

// Cancel requests cancellation of every in-flight query.
func (g *QueryGroup) Cancel() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.cancel != nil {
		g.cancel()
	}
}

// Close cancels outstanding work and invalidates pending commits.
func (g *QueryGroup) Close() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.cancel != nil {
		g.cancel()
		g.cancel = nil
	}
	g.gen++
	g.pending = 0
}

// Loading reports whether any launched query has not settled yet.
func (g *QueryGroup) Loading() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.pending > 0
}

// Result returns the named query's data and whether it succeeded.
func (g *QueryGroup) Result(name string) (any, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	slot, ok := g.slots[name]
	if !ok || slot.status != StatusSuccess {
		return nil, false
	}
	return slot.data, true
}

// Err returns the named query's error, if it failed.
func (g *QueryGroup) Err(name string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	slot, ok := g.slots[name]
	if !ok {
		return nil
	}
	return slot.err
}

// StatusOf returns the named query's lifecycle phase.
func (g *QueryGroup) StatusOf(name string) Status {
	g.mu.Lock()
	defer g.mu.Unlock()
	slot, ok := g.slots[name]
	if !ok {
		return StatusIdle
	}
	return slot.status
}

// AllSuccess is true only if every query's status is success.
func (g *QueryGroup) AllSuccess() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	for _, slot := range g.slots {
		if slot.status != StatusSuccess {
			return false
		}
	}
	return len(g.slots) > 0
}

// HasErrors is true if any query holds an error.
func (g *QueryGroup) HasErrors() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	for _, slot := range g.slots {
		if slot.err != nil {
			return true
		}
	}
	return false
}
