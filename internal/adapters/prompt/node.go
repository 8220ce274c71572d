package prompt

import (
	"context"

	"github.com/FloatyJellyfish/mod-updater/internal/core/ports"
	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the interactive chooser Graft node.
const NodeID graft.ID = "adapter.prompt"

func init() {
	graft.Register(graft.Node[ports.Chooser]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Chooser, error) {
			return New(nil, nil), nil
		},
	})
}
