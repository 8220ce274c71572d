// Package reconciler merges task outcomes into the installation manifest.
package reconciler

import "github.com/FloatyJellyfish/mod-updater/internal/core/domain"

// Apply returns m updated with outcomes. The input manifest is not modified.
//
// Installs and rollbacks replace the entry and keep the replaced one as Previous,
// so rolling back twice returns to where it started. Failed outcomes leave the item untouched.
func Apply(outcomes []domain.Outcome, m domain.Manifest) domain.Manifest {
	out := m.Clone()
	for _, o := range outcomes {
		switch o.Status {
		case domain.StatusInstalled, domain.StatusRolledBack:
			entry := domain.InstalledEntry{
				Version:   o.Version,
				VersionID: o.VersionID,
				Filename:  o.Filename,
			}
			if old, ok := out.Get(o.Item); ok {
				entry.Previous = old.AsPrevious()
				if sameInstall(old, entry) {
					entry.Previous = old.Previous
				}
			}
			out.Set(o.Item, entry)
		case domain.StatusUpToDate:
			entry, _ := out.Get(o.Item)
			entry.Version = o.Version
			entry.VersionID = o.VersionID
			entry.Filename = o.Filename
			out.Set(o.Item, entry)
		case domain.StatusRemoved:
			out.Delete(o.Item)
		}
	}
	return out
}

// sameInstall reports whether next reinstalled the release already tracked.
// Such a reinstall keeps the existing Previous.
func sameInstall(old, next domain.InstalledEntry) bool {
	return old.Filename == next.Filename && old.VersionID == next.VersionID
}
