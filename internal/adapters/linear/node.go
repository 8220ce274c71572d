package linear

import (
	"context"

	"github.com/FloatyJellyfish/mod-updater/internal/core/ports"
	"github.com/grindlemire/graft"
)

const (
	// RendererNodeID is the unique identifier for the progress renderer Graft node.
	RendererNodeID graft.ID = "adapter.linear.renderer"
	// ReporterNodeID is the unique identifier for the result printer Graft node.
	ReporterNodeID graft.ID = "adapter.linear.reporter"
)

func init() {
	graft.Register(graft.Node[ports.Renderer]{
		ID:        RendererNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Renderer, error) {
			return NewRenderer(nil), nil
		},
	})

	graft.Register(graft.Node[ports.Reporter]{
		ID:        ReporterNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Reporter, error) {
			return NewPrinter(nil), nil
		},
	})
}
