package app

import (
	"context"

	"github.com/FloatyJellyfish/mod-updater/internal/adapters/config"   //nolint:depguard // Wired in app layer
	"github.com/FloatyJellyfish/mod-updater/internal/adapters/linear"   //nolint:depguard // Wired in app layer
	"github.com/FloatyJellyfish/mod-updater/internal/adapters/logger"   //nolint:depguard // Wired in app layer
	"github.com/FloatyJellyfish/mod-updater/internal/adapters/manifest" //nolint:depguard // Wired in app layer
	"github.com/FloatyJellyfish/mod-updater/internal/adapters/markdown" //nolint:depguard // Wired in app layer
	"github.com/FloatyJellyfish/mod-updater/internal/adapters/modrinth" //nolint:depguard // Wired in app layer
	"github.com/FloatyJellyfish/mod-updater/internal/adapters/prompt"   //nolint:depguard // Wired in app layer
	"github.com/FloatyJellyfish/mod-updater/internal/core/ports"
	"github.com/FloatyJellyfish/mod-updater/internal/engine/resolver"
	"github.com/grindlemire/graft"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components contains all the initialized application components.
// This struct provides controlled access to components needed by the CLI layer.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			modrinth.NodeID,
			resolver.NodeID,
			prompt.NodeID,
			manifest.NodeID,
			config.PackNodeID,
			config.SettingsNodeID,
			linear.ReporterNodeID,
			linear.RendererNodeID,
			markdown.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			config.SettingsNodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	registry, err := graft.Dep[ports.Registry](ctx)
	if err != nil {
		return nil, err
	}

	res, err := graft.Dep[*resolver.Resolver](ctx)
	if err != nil {
		return nil, err
	}

	chooser, err := graft.Dep[ports.Chooser](ctx)
	if err != nil {
		return nil, err
	}

	manifests, err := graft.Dep[ports.ManifestStore](ctx)
	if err != nil {
		return nil, err
	}

	packs, err := graft.Dep[ports.PackLoader](ctx)
	if err != nil {
		return nil, err
	}

	settings, err := graft.Dep[config.Settings](ctx)
	if err != nil {
		return nil, err
	}

	reporter, err := graft.Dep[ports.Reporter](ctx)
	if err != nil {
		return nil, err
	}

	renderer, err := graft.Dep[ports.Renderer](ctx)
	if err != nil {
		return nil, err
	}

	md, err := graft.Dep[ports.MarkdownRenderer](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(registry, res, chooser, manifests, packs, reporter, md, log).
		WithRenderer(renderer).
		WithConcurrency(settings.Concurrency).
		WithTraceFile(settings.TraceFile), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	settings, err := graft.Dep[config.Settings](ctx)
	if err != nil {
		return nil, err
	}

	if l, ok := log.(*logger.Logger); ok {
		l.SetJSON(settings.LogFormat == "json")
	}

	return &Components{
		App:    app,
		Logger: log,
	}, nil
}
