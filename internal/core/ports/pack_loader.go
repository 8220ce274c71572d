package ports

import "github.com/FloatyJellyfish/mod-updater/internal/core/domain"

// PackLoader reads the pack definition.
//
//go:generate mockgen -source=pack_loader.go -destination=mocks/mock_pack_loader.go -package=mocks
type PackLoader interface {
	// Load returns the validated pack.
	Load() (domain.Pack, error)
}
