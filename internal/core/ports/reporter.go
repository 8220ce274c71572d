package ports

import "github.com/FloatyJellyfish/mod-updater/internal/core/domain"

// Reporter prints the results of a command to the user.
//
//go:generate mockgen -source=reporter.go -destination=mocks/mock_reporter.go -package=mocks
type Reporter interface {
	// Outcomes prints one line per item plus a summary.
	Outcomes(action string, outcomes []domain.Outcome)
	// Releases lists the releases of an item in registry order.
	Releases(item string, releases []domain.Release)
	// Latest prints the newest release of an item, or that none exists.
	Latest(item string, release *domain.Release)
	// PlatformVersions lists compatible game versions.
	PlatformVersions(versions []domain.PlatformVersion)
	// SearchHits lists search results.
	SearchHits(hits []domain.SearchHit)
	// Manifest lists the installed items.
	Manifest(m domain.Manifest)
	// Changelog prints the rendered changelog of a release.
	Changelog(release domain.Release, body string)
}
