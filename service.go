package adminkit

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/edusite/adminkit/pkg/forms"
	"github.com/edusite/adminkit/pkg/transport"
)

// Filter restricts an Active listing to one domain and/or course. Zero
// values mean no restriction.
type Filter struct {
	DomainID int64
	CourseID int64
}

func (f Filter) query() url.Values {
	q := url.Values{}
	if f.DomainID > 0 {
		q.Set("domainId", strconv.FormatInt(f.DomainID, 10))
	}
	if f.CourseID > 0 {
		q.Set("courseId", strconv.FormatInt(f.CourseID, 10))
	}
	return q
}

// Ack is the generic acknowledgement returned by delete endpoints.
type Ack struct {
	Message string `json:"message,omitempty"`
}

// crud is the shared plumbing of every entity service: one base path, one
// transport, and the standard six endpoints.
type crud struct {
	tr   *transport.Client
	base string
}

// listAll fetches the administrative listing, drafts included. A null or
// non-array body is coerced into an empty list so the admin table renders
// instead of crashing on a misbehaving backend.
func listAll[T any](ctx context.Context, c crud) ([]T, error) {
	var out []T
	if err := c.tr.Get(ctx, c.base+"/admin/all", nil, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []T{}
	}
	return out, nil
}

// listActive fetches the published-only listing with optional filters.
func listActive[T any](ctx context.Context, c crud, filter Filter) ([]T, error) {
	var out []T
	if err := c.tr.Get(ctx, c.base, filter.query(), &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []T{}
	}
	return out, nil
}

func getOne[T any](ctx context.Context, c crud, id int64) (T, error) {
	var out T
	err := c.tr.Get(ctx, fmt.Sprintf("%s/%d", c.base, id), nil, &out)
	return out, err
}

func createOne[T any](ctx context.Context, c crud, payload *forms.Payload) (T, error) {
	var out T
	err := c.tr.Post(ctx, c.base, payload, &out)
	return out, err
}

func updateOne[T any](ctx context.Context, c crud, id int64, payload *forms.Payload) (T, error) {
	var out T
	err := c.tr.Put(ctx, fmt.Sprintf("%s/%d", c.base, id), payload, &out)
	return out, err
}

func deleteOne(ctx context.Context, c crud, id int64) error {
	var ack Ack
	return c.tr.Delete(ctx, fmt.Sprintf("%s/%d", c.base, id), &ack)
}
