package fetch

import (
	"context"
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v3/client"
	"github.com/valyala/fasthttp"
	"golang.org/x/sync/semaphore"
)

var _ Fetcher = (*httpFetcher)(nil)

type httpFetcher struct {
	client *client.Client
	slots  *semaphore.Weighted
	opts   Options
}

// New returns a Fetcher backed by the fiber HTTP client. At most
// opts.MaxConcurrent requests are on the wire at once.
func New(opts Options) Fetcher {
	opts = opts.withDefaults()

	cc := client.New().
		SetTimeout(opts.Timeout).
		SetUserAgent(opts.UserAgent)

	// fasthttp aborts the read once the body passes the limit instead of
	// buffering the whole response first.
	cc.FasthttpClient().MaxResponseBodySize = int(opts.MaxBodyBytes)

	return &httpFetcher{
		client: cc,
		slots:  semaphore.NewWeighted(opts.MaxConcurrent),
		opts:   opts,
	}
}

func (f *httpFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	if err := f.slots.Acquire(ctx, 1); err != nil {
		return nil, fmt.Errorf("fetch: waiting for slot: %w", err)
	}
	defer f.slots.Release(1)

	resp, err := f.client.Get(url, client.Config{
		Ctx:          ctx,
		Timeout:      f.opts.Timeout,
		MaxRedirects: f.opts.MaxRedirects,
	})
	if errors.Is(err, fasthttp.ErrBodyTooLarge) {
		return nil, fmt.Errorf("%w: over %d bytes", ErrBodyTooLarge, f.opts.MaxBodyBytes)
	}
	if err != nil {
		return nil, fmt.Errorf("fetch: get %s: %w", url, err)
	}
	defer resp.Close()

	status := resp.StatusCode()
	if status < 200 || status > 299 {
		return nil, fmt.Errorf("%w: %d", ErrUnexpectedStatus, status)
	}

	raw := resp.Body()
	if len(raw) == 0 {
		return nil, ErrEmptyBody
	}
	if int64(len(raw)) > f.opts.MaxBodyBytes {
		return nil, fmt.Errorf("%w: %d bytes", ErrBodyTooLarge, len(raw))
	}

	// The response buffer is pooled and reused after Close.
	body := make([]byte, len(raw))
	copy(body, raw)
	return body, nil
}
