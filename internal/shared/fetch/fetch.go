// Package fetch retrieves encoded image bytes over HTTP.
package fetch

import (
	"context"
	"errors"
	"time"
)

const (
	DefaultTimeout       = 15 * time.Second
	DefaultMaxRedirects  = 5
	DefaultMaxBodyBytes  = 32 * 1024 * 1024
	DefaultMaxConcurrent = 16
	DefaultUserAgent     = "remote-image-loader/1.0"
)

var (
	ErrUnexpectedStatus = errors.New("fetch: unexpected status")
	ErrEmptyBody        = errors.New("fetch: empty response body")
	ErrBodyTooLarge     = errors.New("fetch: response body exceeds limit")
)

// Fetcher retrieves the raw bytes behind a URL. Implementations must support
// concurrent calls for distinct URLs. The returned slice must not be modified
// by callers.
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// Options configures the HTTP fetcher. Zero values fall back to the defaults above.
type Options struct {
	Timeout       time.Duration
	UserAgent     string
	MaxRedirects  int
	MaxBodyBytes  int64
	MaxConcurrent int64
}

func (o Options) withDefaults() Options {
	if o.Timeout <= 0 {
		o.Timeout = DefaultTimeout
	}
	if o.UserAgent == "" {
		o.UserAgent = DefaultUserAgent
	}
	if o.MaxRedirects < 0 {
		o.MaxRedirects = 0
	} else if o.MaxRedirects == 0 {
		o.MaxRedirects = DefaultMaxRedirects
	}
	if o.MaxBodyBytes <= 0 {
		o.MaxBodyBytes = DefaultMaxBodyBytes
	}
	if o.MaxConcurrent <= 0 {
		o.MaxConcurrent = DefaultMaxConcurrent
	}
	return o
}
