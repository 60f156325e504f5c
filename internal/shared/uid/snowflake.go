package uid

import (
	"context"
	"fmt"
	"sync"

	"github.com/bwmarrin/snowflake"
)

var _ Generator = (*snowflakeGenerator)(nil)

type snowflakeGenerator struct {
	node *snowflake.Node
	mu   sync.Mutex
}

// NewSnowflake creates a Snowflake-based Generator. Snowflake IDs sort by
// creation time, which keeps session IDs in log order.
func NewSnowflake(nodeID int64) (Generator, error) {
	node, err := snowflake.NewNode(nodeID)
	if err != nil {
		return nil, fmt.Errorf("uid: failed to create snowflake node: %w", err)
	}
	return &snowflakeGenerator{node: node}, nil
}

func (g *snowflakeGenerator) Generate(ctx context.Context) (string, error) {
	g.mu.Lock()
	id := g.node.Generate()
	g.mu.Unlock()
	return id.Base36(), nil
}
