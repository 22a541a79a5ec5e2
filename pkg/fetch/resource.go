package fetch

import "context"

// ByID is one "fetch a record by identifier" API call.
type ByID[T any] func(ctx context.Context, id int64) (T, error)

// ResourceFetcher specializes Fetcher for fetching one record by id, with
// an optional default identifier chosen at construction.
type ResourceFetcher[T any] struct {
	*Fetcher[T]
	op        ByID[T]
	defaultID int64
}

func NewResourceFetcher[T any](op ByID[T], defaultID int64, opts ...Option[T]) *ResourceFetcher[T] {
	return &ResourceFetcher[T]{
		Fetcher:   NewFetcher(opts...),
		op:        op,
		defaultID: defaultID,
	}
}

// Fetch loads the record with the given id, superseding any prior fetch
// from this instance.
func (r *ResourceFetcher[T]) Fetch(ctx context.Context, id int64) (T, error) {
	return r.Execute(ctx, func(ctx context.Context) (T, error) {
		return r.op(ctx, id)
	})
}

// FetchDefault loads the record with the default identifier.
func (r *ResourceFetcher[T]) FetchDefault(ctx context.Context) (T, error) {
	return r.Fetch(ctx, r.defaultID)
}

// Refetch repeats the fetch with the default identifier.
func (r *ResourceFetcher[T]) Refetch(ctx context.Context) (T, error) {
	return r.FetchDefault(ctx)
}
