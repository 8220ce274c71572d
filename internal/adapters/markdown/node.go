package markdown

import (
	"context"

	"github.com/FloatyJellyfish/mod-updater/internal/core/ports"
	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the markdown renderer Graft node.
const NodeID graft.ID = "adapter.markdown"

func init() {
	graft.Register(graft.Node[ports.MarkdownRenderer]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.MarkdownRenderer, error) {
			return NewForStdout()
		},
	})
}
