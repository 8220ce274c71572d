package ports

import (
	"context"

	"github.com/FloatyJellyfish/mod-updater/internal/core/domain"
)

// Registry is the read-only view of the package registry.
// Implementations make exactly one attempt per call and classify failures
// as domain.ErrNotFound, domain.ErrInvalidRequest or domain.ErrRegistryUnavailable.
//
//go:generate mockgen -source=registry.go -destination=mocks/mock_registry.go -package=mocks
type Registry interface {
	// ListVersions returns the releases of item in registry order (newest first).
	// Empty filter fields are not sent.
	ListVersions(ctx context.Context, item string, filter domain.VersionFilter) ([]domain.Release, error)

	// ListPlatformVersions returns the game version catalog.
	ListPlatformVersions(ctx context.Context) ([]domain.PlatformVersion, error)

	// Search returns projects matching the query.
	Search(ctx context.Context, query domain.SearchQuery) ([]domain.SearchHit, error)

	// Download fetches the complete contents of file.
	Download(ctx context.Context, file domain.File) ([]byte, error)
}
