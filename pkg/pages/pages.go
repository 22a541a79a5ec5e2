// Package pages implements the per-entity console pages: each one owns a
// list snapshot fetched through the request-lifecycle layer, client-side
// search/filter/pagination over that snapshot, and the create/update/
// delete flow with a full re-fetch after every successful mutation.
//
// Search and filtering never hit the network; they slice the already
// fetched list. A failed list load keeps the previous snapshot on screen
// rather than clearing it.
package pages

import (
	"context"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/edusite/adminkit/pkg/fetch"
	"github.com/edusite/adminkit/pkg/forms"
)

// Service is the slice of an entity service a page needs.
type Service[T any] interface {
	All(ctx context.Context) ([]T, error)
	Create(ctx context.Context, payload *forms.Payload) (T, error)
	Update(ctx context.Context, id int64, payload *forms.Payload) (T, error)
	Delete(ctx context.Context, id int64) error
}

// Descriptor tells the generic controller how to read one entity type.
// Accessors for fields an entity does not have are left nil.
type Descriptor[T any] struct {
	ID         func(T) int64
	SearchText func(T) []string
	DomainID   func(T) int64
	CourseID   func(T) int64
	FileType   func(T) string
	IsActive   func(T) bool
	SetActive  func(*T, bool)
	// BoolStyle is how this entity's backend encodes the publish flag in
	// partial updates.
	BoolStyle forms.BoolStyle
}

// Filters are the equality filters of the list view. Nil pointer means
// "no restriction"; FileType "" likewise.
type Filters struct {
	DomainID *int64
	CourseID *int64
	FileType string
	Active   *bool
}

// Controller is one page instance: snapshot, view state, and the
// lifecycle fetchers driving its service.
type Controller[T any] struct {
	svc      Service[T]
	desc     Descriptor[T]
	pageSize int
	logger   zerolog.Logger

	loader *fetch.Fetcher[[]T]
	submit *fetch.Submission[T]
	remove *fetch.Mutation[struct{}]

	mu      sync.Mutex
	items   []T
	search  string
	filters Filters
	page    int
}

// NewController builds a page for svc with client-side pages of pageSize
// rows.
func NewController[T any](svc Service[T], desc Descriptor[T], pageSize int, logger zerolog.Logger) *Controller[T] {
	c := &Controller[T]{
		svc:      svc,
		desc:     desc,
		pageSize: pageSize,
		logger:   logger,
		submit:   fetch.NewSubmission[T](),
		remove:   fetch.NewMutation[struct{}](),
		page:     1,
	}
	c.loader = fetch.NewFetcher(fetch.OnSuccess[[]T](c.replace))
	return c
}

func (c *Controller[T]) replace(items []T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = items
}

// Load fetches the full admin listing. On failure the previous snapshot
// stays visible and the error is returned for the page to surface.
func (c *Controller[T]) Load(ctx context.Context) error {
	_, err := c.loader.Execute(ctx, func(ctx context.Context) ([]T, error) {
		return c.svc.All(ctx)
	})
	if err != nil {
		c.logger.Warn().Err(err).Msg("list load failed, keeping stale data")
	}
	return err
}

// Loading reports whether a list load is in flight.
func (c *Controller[T]) Loading() bool {
	return c.loader.Loading()
}

// Mutating reports whether a create/update/delete is in flight.
func (c *Controller[T]) Mutating() bool {
	return c.submit.IsSubmitting() || c.remove.IsMutating()
}

// Items returns the unfiltered snapshot.
func (c *Controller[T]) Items() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]T(nil), c.items...)
}

// SetSearch updates the search term and resets to page 1.
func (c *Controller[T]) SetSearch(term string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.search = term
	c.page = 1
}

// SetFilters updates the equality filters and resets to page 1.
func (c *Controller[T]) SetFilters(f Filters) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.filters = f
	c.page = 1
}

// Filtered returns the snapshot restricted by search term and filters.
func (c *Controller[T]) Filtered() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.filteredLocked()
}

func (c *Controller[T]) filteredLocked() []T {
	out := make([]T, 0, len(c.items))
	for _, item := range c.items {
		if c.matches(item) {
			out = append(out, item)
		}
	}
	return out
}

func (c *Controller[T]) matches(item T) bool {
	if term := strings.ToLower(strings.TrimSpace(c.search)); term != "" {
		if c.desc.SearchText == nil {
			return false
		}
		hit := false
		for _, text := range c.desc.SearchText(item) {
			if strings.Contains(strings.ToLower(text), term) {
				hit = true
				break
			}
		}
		if !hit {
			return false
		}
	}

	f := c.filters
	if f.DomainID != nil && c.desc.DomainID != nil && c.desc.DomainID(item) != *f.DomainID {
		return false
	}
	if f.CourseID != nil && c.desc.CourseID != nil && c.desc.CourseID(item) != *f.CourseID {
		return false
	}
	if f.FileType != "" && c.desc.FileType != nil && !strings.EqualFold(c.desc.FileType(item), f.FileType) {
		return false
	}
	if f.Active != nil && c.desc.IsActive != nil && c.desc.IsActive(item) != *f.Active {
		return false
	}
	return true
}

// Page returns the current 1-based page number.
func (c *Controller[T]) Page() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.page
}

// TotalPages returns the page count of the filtered set; at least 1.
func (c *Controller[T]) TotalPages() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := len(c.filteredLocked())
	if n == 0 {
		return 1
	}
	return (n + c.pageSize - 1) / c.pageSize
}

// SetPage moves to page n, clamped to the valid range.
func (c *Controller[T]) SetPage(n int) {
	total := c.TotalPages()
	c.mu.Lock()
	defer c.mu.Unlock()
	if n < 1 {
		n = 1
	}
	if n > total {
		n = total
	}
	c.page = n
}

// NextPage advances one page when possible.
func (c *Controller[T]) NextPage() { c.SetPage(c.Page() + 1) }

// PrevPage goes back one page when possible.
func (c *Controller[T]) PrevPage() { c.SetPage(c.Page() - 1) }

// Visible returns the current page of the filtered set. It is a pure
// read: a page number that fell out of range after the list shrank
// renders the first page without touching the stored page.
func (c *Controller[T]) Visible() []T {
	c.mu.Lock()
	defer c.mu.Unlock()

	filtered := c.filteredLocked()
	start := (c.page - 1) * c.pageSize
	if start >= len(filtered) {
		start = 0
	}
	end := start + c.pageSize
	if end > len(filtered) {
		end = len(filtered)
	}
	return filtered[start:end]
}

// Create validates nothing itself: the caller submits a payload its form
// already validated. On success the list is re-fetched exactly once.
func (c *Controller[T]) Create(ctx context.Context, payload *forms.Payload) (T, error) {
	created, err := c.submit.Submit(ctx, func(ctx context.Context) (T, error) {
		return c.svc.Create(ctx, payload)
	})
	if err != nil {
		return created, err
	}
	return created, c.Load(ctx)
}

// Update submits an edit and re-fetches the list on success.
func (c *Controller[T]) Update(ctx context.Context, id int64, payload *forms.Payload) (T, error) {
	updated, err := c.submit.Submit(ctx, func(ctx context.Context) (T, error) {
		return c.svc.Update(ctx, id, payload)
	})
	if err != nil {
		return updated, err
	}
	return updated, c.Load(ctx)
}

// Delete removes a record and re-fetches the list on success.
func (c *Controller[T]) Delete(ctx context.Context, id int64) error {
	_, err := c.remove.Mutate(ctx, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, c.svc.Delete(ctx, id)
	})
	if err != nil {
		return err
	}
	return c.Load(ctx)
}

// ToggleActive flips the publish flag optimistically: the visible row
// changes immediately, then the server is told. A server failure rolls
// the snapshot back through a forced re-fetch.
func (c *Controller[T]) ToggleActive(ctx context.Context, id int64) error {
	c.mu.Lock()
	var target *T
	for i := range c.items {
		if c.desc.ID(c.items[i]) == id {
			target = &c.items[i]
			break
		}
	}
	if target == nil {
		c.mu.Unlock()
		return nil
	}
	next := !c.desc.IsActive(*target)
	c.desc.SetActive(target, next)
	c.mu.Unlock()

	_, err := c.submit.Submit(ctx, func(ctx context.Context) (T, error) {
		return c.svc.Update(ctx, id, forms.ActivePayload(next, c.desc.BoolStyle))
	})
	if err != nil {
		c.logger.Warn().Err(err).Int64("id", id).Msg("toggle failed, rolling back")
		if loadErr := c.Load(ctx); loadErr != nil {
			c.logger.Warn().Err(loadErr).Msg("rollback re-fetch failed")
		}
		return err
	}
	return nil
}

// Close cancels in-flight work before the page goes away.
func (c *Controller[T]) Close() {
	c.loader.Close()
	c.submit.Close()
	c.remove.Close()
}
