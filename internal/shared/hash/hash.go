// Package hash derives fixed-length storage keys from URLs for the
// persistent cache tiers.
package hash

import (
	"fmt"
)

// Strategy defines which digest to use.
type Strategy string

const (
	StrategyBlake2b Strategy = "blake2b"
)

// Options configures the keyer.
type Options struct {
	Strategy Strategy

	// Salt is mixed into every key so several deployments can share one
	// backend without colliding.
	Salt string
}

// Keyer maps an arbitrary string onto a hex key of constant length.
// Implementations must be safe for concurrent use.
type Keyer interface {
	Key(value string) string
}

// New creates a Keyer based on the provided options.
func New(opts Options) (Keyer, error) {
	switch opts.Strategy {
	case StrategyBlake2b, "":
		return NewBlake2b(opts.Salt), nil
	default:
		return nil, fmt.Errorf("hash: unknown strategy %q", opts.Strategy)
	}
}
