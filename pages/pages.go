// Package pages bridges paginated fetch APIs to replayable channel sources.
package pages

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/123jimin/tooltool/channel"
)

// Fetch walks a cursor-paginated API and exposes the pages as a channel
// source: each fetched page is yielded in order, a fetch error fails the
// source, and completion carries the total item count. Fetching starts
// immediately in the background; fetch receives the previous call's next
// cursor, starting with "", and the walk stops when next is "".
func Fetch[T any](ctx context.Context, fetch func(ctx context.Context, cursor string) (items []T, next string, err error)) channel.Source[[]T, int] {
	return channel.Run(func(sink channel.Sink[[]T, int]) error {
		go func() {
			total := 0
			cursor := ""
			for {
				items, next, err := fetch(ctx, cursor)
				if err != nil {
					sink.Error(err)
					return
				}
				if len(items) > 0 {
					total += len(items)
					sink.Next(items)
				}
				if next == "" {
					sink.Complete(total)
					return
				}
				cursor = next
			}
		}()
		return nil
	})
}

// FetchN fetches pages 0 through n-1 concurrently, at most limit fetches in
// flight, and exposes them as a channel source in page order. The first
// fetch error cancels the remaining fetches and fails the source.
func FetchN[T any](ctx context.Context, n, limit int, fetch func(ctx context.Context, page int) ([]T, error)) channel.Source[[]T, int] {
	return channel.Run(func(sink channel.Sink[[]T, int]) error {
		go func() {
			results := make([][]T, n)
			g, ctx := errgroup.WithContext(ctx)
			g.SetLimit(limit)
			for i := 0; i < n; i++ {
				g.Go(func() error {
					items, err := fetch(ctx, i)
					if err != nil {
						return err
					}
					results[i] = items
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				sink.Error(err)
				return
			}

			total := 0
			for _, page := range results {
				total += len(page)
				sink.Next(page)
			}
			sink.Complete(total)
		}()
		return nil
	})
}

// All drains every page from src into one slice.
func All[T any](ctx context.Context, src channel.Source[[]T, int]) ([]T, error) {
	var all []T
	it := src.Iterate()
	for {
		page, err := it.Next(ctx)
		if err == channel.ErrDone {
			return all, nil
		}
		if err != nil {
			return nil, err
		}
		all = append(all, page...)
	}
}
