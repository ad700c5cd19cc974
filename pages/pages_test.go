package pages_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/123jimin/tooltool/pages"
	"gotest.tools/v3/assert"
)

// fakeAPI serves n items in pages of pageSize, keyed by a numeric cursor.
func fakeAPI(n, pageSize int) func(ctx context.Context, cursor string) ([]int, string, error) {
	return func(_ context.Context, cursor string) ([]int, string, error) {
		start := 0
		if cursor != "" {
			if _, err := fmt.Sscanf(cursor, "%d", &start); err != nil {
				return nil, "", err
			}
		}

		end := start + pageSize
		if end > n {
			end = n
		}
		items := make([]int, 0, end-start)
		for i := start; i < end; i++ {
			items = append(items, i)
		}

		next := ""
		if end < n {
			next = fmt.Sprint(end)
		}
		return items, next, nil
	}
}

func TestFetch(t *testing.T) {
	ctx := context.Background()

	src := pages.Fetch(ctx, fakeAPI(10, 3))
	all, err := pages.All(ctx, src)
	assert.NilError(t, err)
	assert.DeepEqual(t, all, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9})

	total, err := src.Result(ctx)
	assert.NilError(t, err)
	assert.Equal(t, total, 10)
}

func TestFetch_Replayable(t *testing.T) {
	ctx := context.Background()

	fetches := 0
	api := fakeAPI(6, 2)
	src := pages.Fetch(ctx, func(ctx context.Context, cursor string) ([]int, string, error) {
		fetches++
		return api(ctx, cursor)
	})

	first, err := pages.All(ctx, src)
	assert.NilError(t, err)
	second, err := pages.All(ctx, src)
	assert.NilError(t, err)

	// the second drain replays the log; the API is not hit again
	assert.DeepEqual(t, first, second)
	assert.Equal(t, fetches, 3)
}

func TestFetch_Error(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("boom")

	src := pages.Fetch(ctx, func(_ context.Context, cursor string) ([]int, string, error) {
		if cursor == "" {
			return []int{1, 2}, "next", nil
		}
		return nil, "", boom
	})

	_, err := pages.All(ctx, src)
	assert.ErrorIs(t, err, boom)
	_, err = src.Result(ctx)
	assert.ErrorIs(t, err, boom)
}

func TestFetch_Empty(t *testing.T) {
	ctx := context.Background()

	src := pages.Fetch(ctx, fakeAPI(0, 3))
	all, err := pages.All(ctx, src)
	assert.NilError(t, err)
	assert.Equal(t, len(all), 0)

	total, err := src.Result(ctx)
	assert.NilError(t, err)
	assert.Equal(t, total, 0)
}

func TestFetchN_OrderedDespiteConcurrency(t *testing.T) {
	ctx := context.Background()

	src := pages.FetchN(ctx, 8, 4, func(_ context.Context, page int) ([]int, error) {
		// later pages finish first
		time.Sleep(time.Duration(8-page) * time.Millisecond)
		return []int{page}, nil
	})

	all, err := pages.All(ctx, src)
	assert.NilError(t, err)
	assert.DeepEqual(t, all, []int{0, 1, 2, 3, 4, 5, 6, 7})

	total, err := src.Result(ctx)
	assert.NilError(t, err)
	assert.Equal(t, total, 8)
}

func TestFetchN_Error(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("page down")

	src := pages.FetchN(ctx, 4, 2, func(_ context.Context, page int) ([]int, error) {
		if page == 2 {
			return nil, boom
		}
		return []int{page}, nil
	})

	_, err := pages.All(ctx, src)
	assert.ErrorIs(t, err, boom)
}

func TestFetch_SubscribeSeesPages(t *testing.T) {
	ctx := context.Background()

	src := pages.Fetch(ctx, fakeAPI(4, 2))

	// settle first so the subscription below is a pure replay
	_, err := src.Result(ctx)
	assert.NilError(t, err)

	var got [][]int
	src.OnYield(func(page []int) { got = append(got, page) })
	assert.DeepEqual(t, got, [][]int{{0, 1}, {2, 3}})

	var seen bool
	src.OnReturn(func(total int) {
		seen = true
		assert.Equal(t, total, 4)
	})
	assert.Assert(t, seen)
}
