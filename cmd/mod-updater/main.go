// Package main is the entry point for the mod-updater tool.
package main

import (
	"context"
	"errors"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/FloatyJellyfish/mod-updater/cmd/mod-updater/commands"
	"github.com/FloatyJellyfish/mod-updater/internal/app"
	"github.com/FloatyJellyfish/mod-updater/internal/core/domain"
	_ "github.com/FloatyJellyfish/mod-updater/internal/wiring"
	"github.com/grindlemire/graft"
)

// componentsProvider builds the application graph.
type componentsProvider func(ctx context.Context) (*app.Components, func(), error)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	os.Exit(run(ctx, os.Args[1:], os.Stderr, defaultProvider))
}

func defaultProvider(ctx context.Context) (*app.Components, func(), error) {
	components, _, err := graft.ExecuteFor[*app.Components](ctx)
	if err != nil {
		return nil, nil, err
	}
	return components, func() {}, nil
}

func run(ctx context.Context, args []string, stderr io.Writer, provider componentsProvider) int {
	components, cleanup, err := provider(ctx)
	if err != nil {
		// Logger is not available yet if initialization failed
		_, _ = io.WriteString(stderr, "Error: "+err.Error()+"\n")
		return 1
	}
	defer cleanup()

	cli := commands.New(components.App)
	cli.SetArgs(args)

	if err := cli.Execute(ctx); err != nil {
		// Per-item failures have already been reported.
		if errors.Is(err, domain.ErrCommandFailed) {
			return 1
		}
		components.Logger.Error(err)
		return 1
	}
	return 0
}
