package fetch

import "context"

// Submission adapts Fetcher for form submissions. It is the same state
// machine under write-flavored names.
type Submission[T any] struct {
	*Fetcher[T]
}

func NewSubmission[T any](opts ...Option[T]) *Submission[T] {
	return &Submission[T]{Fetcher: NewFetcher(opts...)}
}

// Submit runs the write operation, superseding any in-flight submit.
func (s *Submission[T]) Submit(ctx context.Context, op Operation[T]) (T, error) {
	return s.Execute(ctx, op)
}

func (s *Submission[T]) IsSubmitting() bool  { return s.Loading() }
func (s *Submission[T]) SubmitSuccess() bool { return s.Status() == StatusSuccess }
func (s *Submission[T]) SubmitError() bool   { return s.Status() == StatusError }

// Mutation adapts Fetcher for create/update/delete calls.
type Mutation[T any] struct {
	*Fetcher[T]
}

func NewMutation[T any](opts ...Option[T]) *Mutation[T] {
	return &Mutation[T]{Fetcher: NewFetcher(opts...)}
}

// Mutate runs the write operation, superseding any in-flight mutation.
func (m *Mutation[T]) Mutate(ctx context.Context, op Operation[T]) (T, error) {
	return m.Execute(ctx, op)
}

func (m *Mutation[T]) IsMutating() bool { return m.Loading() }
func (m *Mutation[T]) IsSuccess() bool  { return m.Status() == StatusSuccess }
func (m *Mutation[T]) IsError() bool    { return m.Status() == StatusError }
