package manifest

import "github.com/FloatyJellyfish/mod-updater/internal/core/domain"

// document is the on-disk layout of the manifest file.
type document struct {
	Mods map[string]entry `yaml:"mods"`
}

type entry struct {
	Version   string         `yaml:"version"`
	VersionID string         `yaml:"version_id"`
	Filename  string         `yaml:"filename"`
	Previous  *previousEntry `yaml:"previous,omitempty"`
}

type previousEntry struct {
	Version   string `yaml:"version"`
	VersionID string `yaml:"version_id"`
	Filename  string `yaml:"filename"`
}

func fromDomain(m domain.Manifest) document {
	doc := document{Mods: make(map[string]entry, m.Len())}
	for item, e := range m.Entries {
		out := entry{
			Version:   e.Version,
			VersionID: e.VersionID,
			Filename:  e.Filename,
		}
		if e.Previous != nil {
			out.Previous = &previousEntry{
				Version:   e.Previous.Version,
				VersionID: e.Previous.VersionID,
				Filename:  e.Previous.Filename,
			}
		}
		doc.Mods[item] = out
	}
	return doc
}

func (d document) toDomain() domain.Manifest {
	m := domain.NewManifest()
	for item, e := range d.Mods {
		in := domain.InstalledEntry{
			Version:   e.Version,
			VersionID: e.VersionID,
			Filename:  e.Filename,
		}
		if e.Previous != nil {
			in.Previous = &domain.PreviousEntry{
				Version:   e.Previous.Version,
				VersionID: e.Previous.VersionID,
				Filename:  e.Previous.Filename,
			}
		}
		m.Set(item, in)
	}
	return m
}
