package gedcom

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/famsnap/internal/core/ports"
)

// NodeID is the unique identifier for the GEDCOM source loader Graft node.
const NodeID graft.ID = "adapter.gedcom"

func init() {
	graft.Register(graft.Node[ports.SourceLoader]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.SourceLoader, error) {
			return NewLoader(), nil
		},
	})
}
