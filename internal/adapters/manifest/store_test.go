package manifest_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/FloatyJellyfish/mod-updater/internal/adapters/manifest"
	"github.com/FloatyJellyfish/mod-updater/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_LoadMissing(t *testing.T) {
	t.Parallel()

	store := manifest.NewStore(filepath.Join(t.TempDir(), "mods.lock.yaml"))

	m, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, 0, m.Len())
	assert.NotNil(t, m.Entries)
}

func TestStore_RoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "mods.lock.yaml")
	store := manifest.NewStore(path)

	want := domain.NewManifest()
	want.Set("sodium", domain.InstalledEntry{
		Version:   "Sodium 0.6.0",
		VersionID: "v2",
		Filename:  "sodium-0.6.0.jar",
		Previous: &domain.PreviousEntry{
			Version:   "Sodium 0.5.11",
			VersionID: "v1",
			Filename:  "sodium-0.5.11.jar",
		},
	})
	want.Set("iris", domain.InstalledEntry{
		Version:   "Iris 1.8.0",
		VersionID: "i1",
		Filename:  "iris-1.8.0.jar",
	})

	require.NoError(t, store.Save(want))

	got, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, want, got)

	// Saving what was loaded produces identical bytes.
	first, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NoError(t, store.Save(got))
	second, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, string(first), string(second))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temporary files left behind")
}

func TestStore_Format(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "mods.lock.yaml")
	store := manifest.NewStore(path)

	m := domain.NewManifest()
	m.Set("sodium", domain.InstalledEntry{Version: "0.6.0", VersionID: "v2", Filename: "sodium.jar"})
	require.NoError(t, store.Save(m))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, `mods:
    sodium:
        version: 0.6.0
        version_id: v2
        filename: sodium.jar
`, string(data))
}

func TestStore_LoadCorrupt(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "mods.lock.yaml")
	require.NoError(t, os.WriteFile(path, []byte("mods: [unclosed"), 0o600))

	_, err := manifest.NewStore(path).Load()
	require.Error(t, err)
	require.ErrorIs(t, err, domain.ErrManifestUnmarshalFailed)
}

func TestStore_LoadEmptyFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "mods.lock.yaml")
	require.NoError(t, os.WriteFile(path, nil, 0o600))

	m, err := manifest.NewStore(path).Load()
	require.NoError(t, err)
	assert.Equal(t, 0, m.Len())
}
