// Package resolver computes the game versions that a whole set of items supports.
package resolver

import (
	"context"

	"github.com/FloatyJellyfish/mod-updater/internal/core/domain"
	"github.com/FloatyJellyfish/mod-updater/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Result is the outcome of a compatibility resolution.
type Result struct {
	// Versions supported by every item, newest first.
	Versions []domain.PlatformVersion
	// Unsupported lists items without any release for the loader, in input order.
	// Any such item makes Versions empty.
	Unsupported []string
}

// Resolver intersects the supported game versions of several items.
type Resolver struct {
	registry    ports.Registry
	concurrency int
}

// New creates a Resolver fetching at most concurrency items at once.
func New(registry ports.Registry, concurrency int) *Resolver {
	if concurrency < 1 {
		concurrency = 1
	}
	return &Resolver{registry: registry, concurrency: concurrency}
}

// Resolve returns the game versions that every item in items supports with loader.
// Any registry failure aborts the resolution.
func (r *Resolver) Resolve(ctx context.Context, items []string, loader domain.Loader) (Result, error) {
	if len(items) == 0 {
		return Result{}, nil
	}
	if err := domain.ValidateItems(items); err != nil {
		return Result{}, err
	}

	catalog, err := r.registry.ListPlatformVersions(ctx)
	if err != nil {
		return Result{}, zerr.Wrap(err, "failed to fetch game version catalog")
	}
	byVersion := make(map[string]domain.PlatformVersion, len(catalog))
	for _, v := range catalog {
		byVersion[v.Version] = v
	}

	supported := make([][]domain.PlatformVersion, len(items))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.concurrency)
	for i, item := range items {
		g.Go(func() error {
			releases, err := r.registry.ListVersions(gctx, item, domain.VersionFilter{Loader: loader})
			if err != nil {
				return err
			}
			versions, err := distinctVersions(item, releases, byVersion)
			if err != nil {
				return err
			}
			supported[i] = versions
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	var result Result
	for i, versions := range supported {
		if len(versions) == 0 {
			result.Unsupported = append(result.Unsupported, items[i])
		}
	}
	result.Versions = intersect(supported)
	return result, nil
}

// distinctVersions reduces releases to the set of catalog versions they declare, in discovery order.
func distinctVersions(
	item string,
	releases []domain.Release,
	catalog map[string]domain.PlatformVersion,
) ([]domain.PlatformVersion, error) {
	seen := make(map[string]struct{})
	var out []domain.PlatformVersion
	for _, release := range releases {
		for _, declared := range release.GameVersions {
			if _, dup := seen[declared]; dup {
				continue
			}
			v, ok := catalog[declared]
			if !ok {
				err := zerr.With(zerr.Wrap(domain.ErrInvalidPlatformVersion, "unknown game version"), "item", item)
				return nil, zerr.With(err, "version", declared)
			}
			seen[declared] = struct{}{}
			out = append(out, v)
		}
	}
	return out, nil
}

// intersect keeps the versions present in every set, sorted newest first.
// Ties on publication time keep the order in which versions were first seen.
func intersect(sets [][]domain.PlatformVersion) []domain.PlatformVersion {
	tally := make(map[string]int)
	var order []domain.PlatformVersion
	for _, set := range sets {
		for _, v := range set {
			if tally[v.Version] == 0 {
				order = append(order, v)
			}
			tally[v.Version]++
		}
	}

	compatible := make([]domain.PlatformVersion, 0, len(order))
	for _, v := range order {
		if tally[v.Version] == len(sets) {
			compatible = append(compatible, v)
		}
	}
	domain.SortNewestFirst(compatible)
	return compatible
}
