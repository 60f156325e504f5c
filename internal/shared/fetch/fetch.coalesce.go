package fetch

import (
	"context"

	"golang.org/x/sync/singleflight"
)

type coalescing struct {
	next  Fetcher
	group singleflight.Group
}

// Coalesce wraps next so concurrent fetches of the same URL share a single
// call. Every waiter receives the same byte slice.
func Coalesce(next Fetcher) Fetcher {
	return &coalescing{next: next}
}

func (c *coalescing) Fetch(ctx context.Context, url string) ([]byte, error) {
	ch := c.group.DoChan(url, func() (any, error) {
		return c.next.Fetch(context.WithoutCancel(ctx), url)
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.([]byte), nil
	}
}
