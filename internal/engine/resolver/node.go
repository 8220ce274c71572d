package resolver

import (
	"context"

	"github.com/FloatyJellyfish/mod-updater/internal/adapters/config"
	"github.com/FloatyJellyfish/mod-updater/internal/adapters/modrinth"
	"github.com/FloatyJellyfish/mod-updater/internal/core/ports"
	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the compatibility resolver Graft node.
const NodeID graft.ID = "engine.resolver"

func init() {
	graft.Register(graft.Node[*Resolver]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{modrinth.NodeID, config.SettingsNodeID},
		Run: func(ctx context.Context) (*Resolver, error) {
			registry, err := graft.Dep[ports.Registry](ctx)
			if err != nil {
				return nil, err
			}
			settings, err := graft.Dep[config.Settings](ctx)
			if err != nil {
				return nil, err
			}
			return New(registry, settings.Concurrency), nil
		},
	})
}
