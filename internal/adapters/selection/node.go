package selection

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/famsnap/internal/core/ports"
)

// NodeID is the unique identifier for the selection store Graft node.
const NodeID graft.ID = "adapter.selection_store"

func init() {
	graft.Register(graft.Node[ports.SelectionStore]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.SelectionStore, error) {
			return NewStore(), nil
		},
	})
}
