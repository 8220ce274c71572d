package modrinth

import (
	"time"

	"github.com/FloatyJellyfish/mod-updater/internal/core/domain"
)

// versionResponse is the wire format of one entry of GET /project/{id}/version.
type versionResponse struct {
	ID            string         `json:"id"`
	ProjectID     string         `json:"project_id"`
	AuthorID      string         `json:"author_id"`
	Name          string         `json:"name"`
	VersionNumber string         `json:"version_number"`
	Changelog     string         `json:"changelog"`
	GameVersions  []string       `json:"game_versions"`
	VersionType   string         `json:"version_type"`
	Loaders       []string       `json:"loaders"`
	Featured      bool           `json:"featured"`
	Status        string         `json:"status"`
	DatePublished time.Time      `json:"date_published"`
	Downloads     int            `json:"downloads"`
	Files         []fileResponse `json:"files"`
}

type fileResponse struct {
	Hashes   map[string]string `json:"hashes"`
	URL      string            `json:"url"`
	Filename string            `json:"filename"`
	Primary  bool              `json:"primary"`
	Size     int64             `json:"size"`
	FileType *string           `json:"file_type"`
}

// gameVersionResponse is the wire format of one entry of GET /tag/game_version.
type gameVersionResponse struct {
	Version     string    `json:"version"`
	VersionType string    `json:"version_type"`
	Date        time.Time `json:"date"`
	Major       bool      `json:"major"`
}

// searchResponse is the wire format of GET /search.
type searchResponse struct {
	Hits      []searchHitResponse `json:"hits"`
	Offset    int                 `json:"offset"`
	Limit     int                 `json:"limit"`
	TotalHits int                 `json:"total_hits"`
}

type searchHitResponse struct {
	ProjectID     string   `json:"project_id"`
	Slug          string   `json:"slug"`
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Author        string   `json:"author"`
	Downloads     int      `json:"downloads"`
	Versions      []string `json:"versions"`
	LatestVersion string   `json:"latest_version"`
}

func (v versionResponse) toDomain() domain.Release {
	files := make([]domain.File, len(v.Files))
	for i, f := range v.Files {
		files[i] = domain.File{
			URL:      f.URL,
			Filename: f.Filename,
			Size:     f.Size,
			Primary:  f.Primary,
			Hashes:   f.Hashes,
		}
	}
	return domain.Release{
		ID:            v.ID,
		ProjectID:     v.ProjectID,
		Name:          v.Name,
		VersionNumber: v.VersionNumber,
		Changelog:     v.Changelog,
		GameVersions:  v.GameVersions,
		Loaders:       v.Loaders,
		Channel:       v.VersionType,
		Featured:      v.Featured,
		Published:     v.DatePublished,
		Downloads:     v.Downloads,
		Files:         files,
	}
}

func (g gameVersionResponse) toDomain() domain.PlatformVersion {
	return domain.PlatformVersion{
		Version:   g.Version,
		Channel:   domain.ChannelFromVersionType(g.VersionType),
		Published: g.Date,
		Major:     g.Major,
	}
}

func (h searchHitResponse) toDomain() domain.SearchHit {
	return domain.SearchHit{
		ProjectID:     h.ProjectID,
		Slug:          h.Slug,
		Title:         h.Title,
		Description:   h.Description,
		Author:        h.Author,
		Downloads:     h.Downloads,
		Versions:      h.Versions,
		LatestVersion: h.LatestVersion,
	}
}
