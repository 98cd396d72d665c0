package sqlite

import (
	"context"

	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the SQLite cache store Graft node.
const NodeID graft.ID = "adapter.cache_store.sqlite"

func init() {
	graft.Register(graft.Node[*Store]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Store, error) {
			return NewStore(), nil
		},
	})
}
