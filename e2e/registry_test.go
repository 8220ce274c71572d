//go:build e2e

package e2e_test

import (
	"encoding/json"
	"net/http"
	"slices"
	"strings"
	"time"
)

type fakeFile struct {
	URL      string `json:"url"`
	Filename string `json:"filename"`
	Primary  bool   `json:"primary"`
	Size     int64  `json:"size"`
}

type fakeVersion struct {
	ID            string     `json:"id"`
	ProjectID     string     `json:"project_id"`
	Name          string     `json:"name"`
	VersionNumber string     `json:"version_number"`
	Changelog     string     `json:"changelog"`
	GameVersions  []string   `json:"game_versions"`
	VersionType   string     `json:"version_type"`
	Loaders       []string   `json:"loaders"`
	DatePublished time.Time  `json:"date_published"`
	Files         []fakeFile `json:"files"`
}

func day(n int) time.Time {
	return time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, n)
}

var catalog = []map[string]any{
	{"version": "1.21.4", "version_type": "release", "date": day(300), "major": false},
	{"version": "1.21.4-rc1", "version_type": "snapshot", "date": day(290), "major": false},
	{"version": "1.21.1", "version_type": "release", "date": day(200), "major": false},
	{"version": "1.20.1", "version_type": "release", "date": day(10), "major": false},
}

func version(project, id, name string, published int, gameVersions []string, loaders []string, files ...string) fakeVersion {
	v := fakeVersion{
		ID:            id,
		ProjectID:     project,
		Name:          name,
		VersionNumber: id,
		Changelog:     "## " + name + "\n\n- Fixed things",
		GameVersions:  gameVersions,
		VersionType:   "release",
		Loaders:       loaders,
		DatePublished: day(published),
	}
	for i, f := range files {
		v.Files = append(v.Files, fakeFile{Filename: f, Primary: i == 0, Size: int64(len(f))})
	}
	return v
}

// projects lists releases newest first, the way the registry orders them.
var projects = map[string][]fakeVersion{
	"sodium": {
		version("sodium", "s3", "Sodium 0.6.0", 310, []string{"1.21.4"}, []string{"fabric", "neoforge"}, "sodium-0.6.0.jar"),
		version("sodium", "s2", "Sodium 0.5.11", 250, []string{"1.21.4", "1.21.1"}, []string{"fabric"}, "sodium-0.5.11.jar"),
		version("sodium", "s1", "Sodium 0.5.3", 20, []string{"1.20.1"}, []string{"fabric"}, "sodium-0.5.3.jar"),
	},
	"lithium": {
		version("lithium", "l2", "Lithium 0.14.3", 305, []string{"1.21.4"}, []string{"fabric"}, "lithium-0.14.3.jar", "lithium-0.14.3-sources.jar"),
		version("lithium", "l1", "Lithium 0.11.2", 15, []string{"1.20.1"}, []string{"fabric"}, "lithium-0.11.2.jar"),
	},
	"iris": {
		version("iris", "i1", "Iris 1.8.0", 302, []string{"1.21.4"}, []string{"fabric", "quilt"}, "iris-1.8.0.jar"),
	},
}

func newFakeRegistry() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /v2/tag/game_version", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, catalog)
	})

	mux.HandleFunc("GET /v2/project/{id}/version", func(w http.ResponseWriter, r *http.Request) {
		versions, ok := projects[r.PathValue("id")]
		if !ok {
			http.NotFound(w, r)
			return
		}
		loaders := jsonList(r.URL.Query().Get("loaders"))
		gameVersions := jsonList(r.URL.Query().Get("game_versions"))

		out := []fakeVersion{}
		for _, v := range versions {
			if !matches(v.Loaders, loaders) || !matches(v.GameVersions, gameVersions) {
				continue
			}
			v.Files = slices.Clone(v.Files)
			for i := range v.Files {
				v.Files[i].URL = "http://" + r.Host + "/files/" + v.Files[i].Filename
			}
			out = append(out, v)
		}
		writeJSON(w, out)
	})

	mux.HandleFunc("GET /v2/search", func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query().Get("query")
		hits := []map[string]any{}
		for _, slug := range []string{"iris", "lithium", "sodium"} {
			if !strings.Contains(slug, query) {
				continue
			}
			latest := projects[slug][0]
			hits = append(hits, map[string]any{
				"project_id":     slug,
				"slug":           slug,
				"title":          strings.ToUpper(slug[:1]) + slug[1:],
				"description":    "Makes the game faster",
				"author":         "CaffeineMC",
				"downloads":      1000,
				"versions":       latest.GameVersions,
				"latest_version": latest.GameVersions[0],
			})
		}
		writeJSON(w, map[string]any{"hits": hits, "offset": 0, "limit": 10, "total_hits": len(hits)})
	})

	mux.HandleFunc("GET /files/{name}", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("jar:" + r.PathValue("name") + "\n"))
	})

	return mux
}

func jsonList(raw string) []string {
	if raw == "" {
		return nil
	}
	var out []string
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return nil
	}
	return out
}

func matches(have, want []string) bool {
	if len(want) == 0 {
		return true
	}
	for _, w := range want {
		if slices.Contains(have, w) {
			return true
		}
	}
	return false
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
