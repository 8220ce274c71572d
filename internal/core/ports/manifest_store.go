package ports

import "github.com/FloatyJellyfish/mod-updater/internal/core/domain"

// ManifestStore persists the installation manifest.
//
//go:generate mockgen -source=manifest_store.go -destination=mocks/mock_manifest_store.go -package=mocks
type ManifestStore interface {
	// Load reads the manifest. A missing manifest is returned as an empty one.
	Load() (domain.Manifest, error)

	// Save replaces the persisted manifest with m.
	Save(m domain.Manifest) error
}
