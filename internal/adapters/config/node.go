package config

import (
	"context"

	"github.com/FloatyJellyfish/mod-updater/internal/adapters/logger"
	"github.com/FloatyJellyfish/mod-updater/internal/core/ports"
	"github.com/grindlemire/graft"
)

const (
	// SettingsNodeID is the unique identifier for the settings Graft node.
	SettingsNodeID graft.ID = "adapter.config.settings"
	// PackNodeID is the unique identifier for the pack loader Graft node.
	PackNodeID graft.ID = "adapter.config.pack"
)

func init() {
	graft.Register(graft.Node[Settings]{
		ID:        SettingsNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (Settings, error) {
			return LoadSettings(".")
		},
	})

	graft.Register(graft.Node[ports.PackLoader]{
		ID:        PackNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{SettingsNodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.PackLoader, error) {
			settings, err := graft.Dep[Settings](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewPackLoader(settings.PackPath, NewOSFS(), log), nil
		},
	})
}
