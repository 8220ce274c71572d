package domain

import (
	"maps"
	"slices"
)

// PreviousEntry records the install that was replaced by the current one.
type PreviousEntry struct {
	Version   string
	VersionID string
	Filename  string
}

// InstalledEntry describes the release of an item currently on disk.
type InstalledEntry struct {
	Version   string
	VersionID string
	Filename  string
	Previous  *PreviousEntry
}

// AsPrevious converts the entry into the form stored for rollback.
func (e InstalledEntry) AsPrevious() *PreviousEntry {
	return &PreviousEntry{
		Version:   e.Version,
		VersionID: e.VersionID,
		Filename:  e.Filename,
	}
}

// Manifest maps items to their installed entry.
// The zero value is an empty manifest ready for use.
type Manifest struct {
	Entries map[string]InstalledEntry
}

// NewManifest returns an empty manifest.
func NewManifest() Manifest {
	return Manifest{Entries: make(map[string]InstalledEntry)}
}

// Get returns the entry for item.
func (m Manifest) Get(item string) (InstalledEntry, bool) {
	e, ok := m.Entries[item]
	return e, ok
}

// Set stores the entry for item, replacing any existing one.
func (m *Manifest) Set(item string, entry InstalledEntry) {
	if m.Entries == nil {
		m.Entries = make(map[string]InstalledEntry)
	}
	m.Entries[item] = entry
}

// Delete removes item from the manifest.
func (m *Manifest) Delete(item string) {
	delete(m.Entries, item)
}

// Len returns the number of tracked items.
func (m Manifest) Len() int {
	return len(m.Entries)
}

// Items returns the tracked items in lexical order.
func (m Manifest) Items() []string {
	return slices.Sorted(maps.Keys(m.Entries))
}

// Clone returns a copy that shares no map with m.
func (m Manifest) Clone() Manifest {
	out := NewManifest()
	for k, v := range m.Entries {
		if v.Previous != nil {
			prev := *v.Previous
			v.Previous = &prev
		}
		out.Entries[k] = v
	}
	return out
}
