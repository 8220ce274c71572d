package domain

import "time"

// File is a downloadable artifact of a release.
// Hashes are carried through without verification.
type File struct {
	URL      string
	Filename string
	Size     int64
	Primary  bool
	Hashes   map[string]string
}

// Release is one published version of an item.
type Release struct {
	ID            string
	ProjectID     string
	Name          string
	VersionNumber string
	Changelog     string
	GameVersions  []string
	Loaders       []string
	Channel       string
	Featured      bool
	Published     time.Time
	Downloads     int
	Files         []File
}

// PrimaryFile returns the file flagged as primary, falling back to the first file.
// The boolean is false when the release has no files.
func (r Release) PrimaryFile() (File, bool) {
	if len(r.Files) == 0 {
		return File{}, false
	}
	for _, f := range r.Files {
		if f.Primary {
			return f, true
		}
	}
	return r.Files[0], true
}

// FileNamed returns the file with the given name.
func (r Release) FileNamed(name string) (File, bool) {
	for _, f := range r.Files {
		if f.Filename == name {
			return f, true
		}
	}
	return File{}, false
}

// VersionFilter narrows a release listing. Empty fields are not sent.
type VersionFilter struct {
	Loader          Loader
	PlatformVersion string
}

// SearchQuery describes a registry search.
type SearchQuery struct {
	Query           string
	PlatformVersion string
	Loader          Loader
	Limit           int
}

// SearchHit is a single search result.
type SearchHit struct {
	ProjectID     string
	Slug          string
	Title         string
	Description   string
	Author        string
	Downloads     int
	Versions      []string
	LatestVersion string
}
