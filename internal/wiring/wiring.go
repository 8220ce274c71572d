// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/FloatyJellyfish/mod-updater/internal/adapters/config"
	_ "github.com/FloatyJellyfish/mod-updater/internal/adapters/linear"
	_ "github.com/FloatyJellyfish/mod-updater/internal/adapters/logger"
	_ "github.com/FloatyJellyfish/mod-updater/internal/adapters/manifest"
	_ "github.com/FloatyJellyfish/mod-updater/internal/adapters/markdown"
	_ "github.com/FloatyJellyfish/mod-updater/internal/adapters/modrinth"
	_ "github.com/FloatyJellyfish/mod-updater/internal/adapters/prompt"
	// Register app and engine nodes.
	_ "github.com/FloatyJellyfish/mod-updater/internal/app"
	_ "github.com/FloatyJellyfish/mod-updater/internal/engine/resolver"
)
