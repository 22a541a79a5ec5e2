package fetch_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/edusite/adminkit/pkg/fetch"
)

// pagedBackend serves sequential ints, total records deep, pageSize at a
// time, and records the params it saw.
type pagedBackend struct {
	total      int
	lastParams map[string]string
	calls      int
}

func (b *pagedBackend) op(ctx context.Context, req fetch.PageRequest) ([]int, error) {
	b.calls++
	b.lastParams = req.Params

	start := (req.Page - 1) * req.Limit
	var out []int
	for i := start; i < start+req.Limit && i < b.total; i++ {
		out = append(out, i)
	}
	return out, nil
}

func TestFetchPageAppendsAndReplaces(t *testing.T) {
	backend := &pagedBackend{total: 25}
	p := fetch.NewPageFetcher(backend.op, 10)

	_, err := p.FetchPage(context.Background(), 1, nil)
	require.NoError(t, err)
	require.Len(t, p.Items(), 10)
	require.True(t, p.HasMore())

	_, err = p.LoadMore(context.Background())
	require.NoError(t, err)
	require.Len(t, p.Items(), 20)
	require.Equal(t, 2, p.Page())
	require.True(t, p.HasMore())

	_, err = p.LoadMore(context.Background())
	require.NoError(t, err)
	require.Len(t, p.Items(), 25)
	require.False(t, p.HasMore(), "short page means exhausted")

	// Page 1 replaces everything accumulated so far.
	_, err = p.FetchPage(context.Background(), 1, nil)
	require.NoError(t, err)
	require.Len(t, p.Items(), 10)
	require.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, p.Items())
}

func TestHasMoreBoundary(t *testing.T) {
	// Exactly one full page: HasMore stays true until a short page shows up.
	backend := &pagedBackend{total: 10}
	p := fetch.NewPageFetcher(backend.op, 10)

	_, err := p.FetchPage(context.Background(), 1, nil)
	require.NoError(t, err)
	require.True(t, p.HasMore())

	_, err = p.LoadMore(context.Background())
	require.NoError(t, err)
	require.False(t, p.HasMore())
	require.Len(t, p.Items(), 10)
}

func TestLoadMoreNoOpWhenExhausted(t *testing.T) {
	backend := &pagedBackend{total: 3}
	p := fetch.NewPageFetcher(backend.op, 10)

	_, err := p.FetchPage(context.Background(), 1, nil)
	require.NoError(t, err)
	require.False(t, p.HasMore())

	calls := backend.calls
	out, err := p.LoadMore(context.Background())
	require.NoError(t, err)
	require.Nil(t, out)
	require.Equal(t, calls, backend.calls, "exhausted LoadMore must not hit the backend")
}

func TestLoadMoreNoOpWhileLoading(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{})
	calls := 0
	op := func(ctx context.Context, req fetch.PageRequest) ([]int, error) {
		calls++
		if calls == 1 {
			close(started)
			select {
			case <-release:
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}
		return []int{1, 2, 3}, nil
	}

	p := fetch.NewPageFetcher(op, 3)
	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = p.FetchPage(context.Background(), 1, nil)
	}()
	<-started

	out, err := p.LoadMore(context.Background())
	require.NoError(t, err)
	require.Nil(t, out)
	require.Equal(t, 1, calls)

	close(release)
	<-done
}

func TestSetParamsMergesAndRestarts(t *testing.T) {
	backend := &pagedBackend{total: 40}
	p := fetch.NewPageFetcher(backend.op, 10)

	_, err := p.SetParams(context.Background(), map[string]string{"domainId": "2"})
	require.NoError(t, err)
	_, err = p.LoadMore(context.Background())
	require.NoError(t, err)
	require.Len(t, p.Items(), 20)

	_, err = p.SetParams(context.Background(), map[string]string{"courseId": "5"})
	require.NoError(t, err)
	require.Len(t, p.Items(), 10, "param change restarts from page 1")
	require.Equal(t, "2", backend.lastParams["domainId"], "params merge, not replace")
	require.Equal(t, "5", backend.lastParams["courseId"])
}

func TestSupersededPageNeverMutatesState(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{})
	op := func(ctx context.Context, req fetch.PageRequest) ([]int, error) {
		if req.Page == 2 {
			close(started)
			// Resolve late, ignoring cancellation, like a slow response.
			<-release
			return []int{98, 99}, nil
		}
		return []int{1}, nil
	}

	p := fetch.NewPageFetcher(op, 2)
	_, err := p.FetchPage(context.Background(), 1, nil)
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() {
		_, err := p.FetchPage(context.Background(), 2, nil)
		done <- err
	}()
	<-started

	// Refresh supersedes the slow page-2 load.
	_, err = p.Refresh(context.Background())
	require.NoError(t, err)

	close(release)
	require.ErrorIs(t, <-done, context.Canceled)
	require.Equal(t, []int{1}, p.Items(), "stale page must not be appended")
	require.Equal(t, 1, p.Page())
}

func TestFetchPageError(t *testing.T) {
	boom := errors.New("list failed")
	op := func(ctx context.Context, req fetch.PageRequest) ([]int, error) {
		return nil, boom
	}
	p := fetch.NewPageFetcher(op, 10)
	_, err := p.FetchPage(context.Background(), 1, nil)
	require.ErrorIs(t, err, boom)
	require.ErrorIs(t, p.Err(), boom)
}

func TestPageFetcherClose(t *testing.T) {
	backend := &pagedBackend{total: 5}
	p := fetch.NewPageFetcher(backend.op, 10)
	_, err := p.FetchPage(context.Background(), 1, nil)
	require.NoError(t, err)
	require.NotEmpty(t, p.Items())

	p.Close()
	require.Empty(t, p.Items())
	require.False(t, p.HasMore())
}

func ExamplePageFetcher() {
	op := func(ctx context.Context, req fetch.PageRequest) ([]int, error) {
		if req.Page > 1 {
			return nil, nil
		}
		return []int{1, 2}, nil
	}
	p := fetch.NewPageFetcher(op, 2)
	_, _ = p.FetchPage(context.Background(), 1, nil)
	fmt.Println(len(p.Items()), p.HasMore())
	_, _ = p.LoadMore(context.Background())
	fmt.Println(len(p.Items()), p.HasMore())
	// Output:
	// 2 true
	// 2 false
}
