package modrinth

import (
	"context"

	"github.com/FloatyJellyfish/mod-updater/internal/adapters/config"
	"github.com/FloatyJellyfish/mod-updater/internal/core/ports"
	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the registry Graft node.
const NodeID graft.ID = "adapter.modrinth"

func init() {
	graft.Register(graft.Node[ports.Registry]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.SettingsNodeID},
		Run: func(ctx context.Context) (ports.Registry, error) {
			settings, err := graft.Dep[config.Settings](ctx)
			if err != nil {
				return nil, err
			}
			return NewClient(
				WithBaseURL(settings.RegistryURL),
				WithUserAgent(settings.UserAgent),
				WithCatalogTTL(settings.CatalogTTL),
			), nil
		},
	})
}
