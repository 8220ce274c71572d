// Package manifest persists the installation manifest as a YAML document.
package manifest

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/FloatyJellyfish/mod-updater/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Store implements ports.ManifestStore backed by a single file.
type Store struct {
	path string
}

// NewStore creates a Store for the manifest at path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the location of the manifest file.
func (s *Store) Path() string {
	return s.path
}

// Load reads the manifest. A missing file yields an empty manifest.
func (s *Store) Load() (domain.Manifest, error) {
	//nolint:gosec // Path comes from trusted settings
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.NewManifest(), nil
		}
		readErr := zerr.With(zerr.Wrap(domain.ErrManifestReadFailed, err.Error()), "path", s.path)
		return domain.Manifest{}, readErr
	}

	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		parseErr := zerr.With(zerr.Wrap(domain.ErrManifestUnmarshalFailed, err.Error()), "path", s.path)
		return domain.Manifest{}, parseErr
	}

	return doc.toDomain(), nil
}

// Save replaces the manifest file with m.
// The file is written to a temporary sibling and renamed into place.
func (s *Store) Save(m domain.Manifest) error {
	data, err := yaml.Marshal(fromDomain(m))
	if err != nil {
		return zerr.Wrap(domain.ErrManifestMarshalFailed, err.Error())
	}

	if err := atomicWriteFile(s.path, data); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrManifestWriteFailed, err.Error()), "path", s.path)
	}
	return nil
}

func atomicWriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return err
	}

	tmpFile, err := os.CreateTemp(dir, ".manifest-*.yaml")
	if err != nil {
		return err
	}
	tmpName := tmpFile.Name()

	// Clean up temp file on error
	defer func() {
		if _, statErr := os.Stat(tmpName); statErr == nil {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		return err
	}

	if err := tmpFile.Close(); err != nil {
		return err
	}

	if err := os.Chmod(tmpName, domain.FilePerm); err != nil {
		return err
	}

	return os.Rename(tmpName, path)
}
