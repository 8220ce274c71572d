// Package app implements the application layer for mod-updater.
package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/FloatyJellyfish/mod-updater/internal/adapters/telemetry"
	"github.com/FloatyJellyfish/mod-updater/internal/build"
	"github.com/FloatyJellyfish/mod-updater/internal/core/domain"
	"github.com/FloatyJellyfish/mod-updater/internal/core/ports"
	"github.com/FloatyJellyfish/mod-updater/internal/engine/orchestrator"
	"github.com/FloatyJellyfish/mod-updater/internal/engine/reconciler"
	"github.com/FloatyJellyfish/mod-updater/internal/engine/resolver"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	registry  ports.Registry
	resolver  *resolver.Resolver
	chooser   ports.Chooser
	manifests ports.ManifestStore
	packs     ports.PackLoader
	reporter  ports.Reporter
	markdown  ports.MarkdownRenderer
	logger    ports.Logger

	renderer    ports.Renderer
	tracer      ports.Tracer
	dir         string
	concurrency int
	traceFile   string
}

// New creates a new App instance.
func New(
	registry ports.Registry,
	res *resolver.Resolver,
	chooser ports.Chooser,
	manifests ports.ManifestStore,
	packs ports.PackLoader,
	reporter ports.Reporter,
	markdown ports.MarkdownRenderer,
	log ports.Logger,
) *App {
	return &App{
		registry:    registry,
		resolver:    res,
		chooser:     chooser,
		manifests:   manifests,
		packs:       packs,
		reporter:    reporter,
		markdown:    markdown,
		logger:      log,
		dir:         ".",
		concurrency: 1,
	}
}

// WithRenderer sets the renderer that receives task progress.
func (a *App) WithRenderer(r ports.Renderer) *App {
	a.renderer = r
	return a
}

// WithTracer makes every run use t instead of a fresh telemetry pipeline.
// This is primarily used for testing.
func (a *App) WithTracer(t ports.Tracer) *App {
	a.tracer = t
	return a
}

// WithDir sets the directory files are installed into.
func (a *App) WithDir(dir string) *App {
	a.dir = dir
	return a
}

// WithConcurrency bounds the number of tasks running at once.
func (a *App) WithConcurrency(n int) *App {
	a.concurrency = n
	return a
}

// WithTraceFile makes runs export their spans to path.
func (a *App) WithTraceFile(path string) *App {
	a.traceFile = path
	return a
}

// Target selects the items a command acts on.
// Empty fields are filled from the pack file.
type Target struct {
	Items        []string
	Loader       domain.Loader
	GameVersion  string
	SelectLatest bool
}

// Versions lists the releases of item.
func (a *App) Versions(ctx context.Context, item string, filter domain.VersionFilter) error {
	releases, err := a.registry.ListVersions(ctx, item, filter)
	if err != nil {
		return err
	}
	a.reporter.Releases(item, releases)
	return nil
}

// Latest prints the newest release of item.
func (a *App) Latest(ctx context.Context, item string, filter domain.VersionFilter) error {
	releases, err := a.registry.ListVersions(ctx, item, filter)
	if err != nil {
		return err
	}
	if len(releases) == 0 {
		a.reporter.Latest(item, nil)
		return nil
	}
	a.reporter.Latest(item, &releases[0])
	return nil
}

// Changelog prints the changelog of the newest release of item.
func (a *App) Changelog(ctx context.Context, item string, filter domain.VersionFilter) error {
	releases, err := a.registry.ListVersions(ctx, item, filter)
	if err != nil {
		return err
	}
	if len(releases) == 0 {
		return zerr.With(zerr.Wrap(domain.ErrNoVersionsFound, "changelog"), "item", item)
	}

	latest := releases[0]
	body, err := a.markdown.Render(latest.Changelog)
	if err != nil {
		return err
	}
	a.reporter.Changelog(latest, body)
	return nil
}

// Search lists registry projects matching query.
func (a *App) Search(ctx context.Context, query domain.SearchQuery) error {
	hits, err := a.registry.Search(ctx, query)
	if err != nil {
		return err
	}
	a.reporter.SearchHits(hits)
	return nil
}

// List prints the installed items.
func (a *App) List(_ context.Context) error {
	m, err := a.manifests.Load()
	if err != nil {
		return err
	}
	a.reporter.Manifest(m)
	return nil
}

// Compat prints the game versions every item supports.
func (a *App) Compat(ctx context.Context, target Target) error {
	target, err := a.resolveTarget(target, false)
	if err != nil {
		return err
	}

	result, err := a.resolver.Resolve(ctx, target.Items, target.Loader)
	if err != nil {
		return err
	}
	if len(result.Unsupported) > 0 {
		a.logger.Warn(fmt.Sprintf("no %s releases for: %s", target.Loader, strings.Join(result.Unsupported, ", ")))
	}
	a.reporter.PlatformVersions(result.Versions)
	return nil
}

// Download installs a release of every item.
func (a *App) Download(ctx context.Context, target Target) error {
	target, err := a.resolveTarget(target, true)
	if err != nil {
		return err
	}
	return a.run(ctx, domain.TaskDownload, target)
}

// Update replaces every item with its newest release.
func (a *App) Update(ctx context.Context, target Target) error {
	target, err := a.resolveTarget(target, true)
	if err != nil {
		return err
	}
	target.SelectLatest = true
	return a.run(ctx, domain.TaskUpdate, target)
}

// Remove deletes the files of items and forgets them.
func (a *App) Remove(ctx context.Context, items []string) error {
	if len(items) == 0 {
		return domain.ErrNoItemsSpecified
	}
	return a.run(ctx, domain.TaskRemove, Target{Items: items})
}

// Rollback reinstalls the previous release of items.
func (a *App) Rollback(ctx context.Context, items []string) error {
	if len(items) == 0 {
		return domain.ErrNoItemsSpecified
	}
	return a.run(ctx, domain.TaskRollback, Target{Items: items})
}

// run loads the manifest, executes one task per item, records the outcomes and saves the manifest once.
func (a *App) run(ctx context.Context, kind domain.TaskKind, target Target) error {
	m, err := a.manifests.Load()
	if err != nil {
		return err
	}

	tasks := make([]domain.Task, len(target.Items))
	for i, item := range target.Items {
		tasks[i] = domain.Task{
			Kind:            kind,
			Item:            item,
			Loader:          target.Loader,
			PlatformVersion: target.GameVersion,
			SelectLatest:    target.SelectLatest,
			Installed:       installed(m, item),
		}
	}

	tracer, shutdown, err := a.startTelemetry()
	if err != nil {
		return err
	}
	defer func() {
		if err := shutdown(context.WithoutCancel(ctx)); err != nil {
			a.logger.Warn("failed to flush traces: " + err.Error())
		}
	}()

	orch := orchestrator.New(a.registry, a.chooser, tracer, a.dir, a.concurrency)
	outcomes, err := orch.RunAll(ctx, tasks)
	if err != nil {
		return err
	}

	if err := a.manifests.Save(reconciler.Apply(outcomes, m)); err != nil {
		return err
	}

	a.reporter.Outcomes(kind.String(), outcomes)

	if failed := domain.CountFailed(outcomes); failed > 0 {
		return zerr.With(zerr.Wrap(domain.ErrCommandFailed, kind.String()), "failed", failed)
	}
	return nil
}

// resolveTarget fills missing items, loader and game version from the pack.
// The pack is only read when something is missing.
func (a *App) resolveTarget(t Target, needVersion bool) (Target, error) {
	complete := len(t.Items) > 0 && t.Loader != "" && (t.GameVersion != "" || !needVersion)
	if !complete {
		pack, err := a.packs.Load()
		if err != nil {
			return Target{}, err
		}
		if len(t.Items) == 0 {
			t.Items = pack.Mods
		}
		if t.Loader == "" {
			t.Loader = pack.Loader
		}
		if t.GameVersion == "" {
			t.GameVersion = pack.GameVersion
		}
	}

	if len(t.Items) == 0 {
		return Target{}, domain.ErrNoItemsSpecified
	}
	if needVersion && t.GameVersion == "" {
		return Target{}, domain.ErrMissingGameVersion
	}
	return t, nil
}

func (a *App) startTelemetry() (ports.Tracer, func(context.Context) error, error) {
	if a.tracer != nil {
		return a.tracer, func(context.Context) error { return nil }, nil
	}
	pipeline, err := telemetry.NewPipeline(telemetry.PipelineOptions{
		Renderer:  a.renderer,
		TraceFile: a.traceFile,
		Version:   build.Version,
	})
	if err != nil {
		return nil, nil, err
	}
	return pipeline.Tracer(), pipeline.Shutdown, nil
}

// installed copies the manifest entry of item so tasks never share it.
func installed(m domain.Manifest, item string) *domain.InstalledEntry {
	entry, ok := m.Get(item)
	if !ok {
		return nil
	}
	if entry.Previous != nil {
		prev := *entry.Previous
		entry.Previous = &prev
	}
	return &entry
}
