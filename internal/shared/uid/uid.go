// Package uid issues identifiers for load sessions.
package uid

import (
	"context"
	"fmt"
	"strings"
)

// Strategy defines which ID generation algorithm to use.
type Strategy string

const (
	StrategySnowflake Strategy = "snowflake"
	StrategyUUIDv7    Strategy = "uuidv7"
)

// Options configures the generator.
type Options struct {
	Strategy Strategy

	// NodeID identifies this process when several instances share logs or a
	// persistent cache (Snowflake only). Valid range: 0–1023.
	NodeID int64
}

// Generator issues unique, time-ordered identifiers.
// Implementations must be safe for concurrent use.
type Generator interface {
	Generate(ctx context.Context) (string, error)
}

// New creates a Generator based on the provided options.
func New(opts Options) (Generator, error) {
	switch opts.Strategy {
	case StrategySnowflake:
		return NewSnowflake(opts.NodeID)
	case StrategyUUIDv7, "":
		return NewUUIDv7(), nil
	default:
		return nil, fmt.Errorf("uid: unknown strategy %q", opts.Strategy)
	}
}

// ParseStrategy maps a config value onto a Strategy. Unknown values are
// returned as-is so New can report them.
func ParseStrategy(value string) Strategy {
	return Strategy(strings.ToLower(strings.TrimSpace(value)))
}
