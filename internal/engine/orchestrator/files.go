package orchestrator

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/FloatyJellyfish/mod-updater/internal/core/domain"
	"go.trai.ch/zerr"
)

// path resolves a registry-provided file name inside the install directory.
// Names that are not a single path element are rejected.
func (o *Orchestrator) path(name string) (string, error) {
	if name == "" || name == "." || name == ".." || filepath.Base(name) != name {
		return "", zerr.With(zerr.Wrap(domain.ErrFileWriteFailed, "unsafe file name"), "filename", name)
	}
	return filepath.Join(o.dir, name), nil
}

func (o *Orchestrator) writeFile(name string, data []byte) error {
	path, err := o.path(name)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(o.dir, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrFileWriteFailed, err.Error()), "path", o.dir)
	}
	//nolint:gosec // Path is confined to the install directory
	if err := os.WriteFile(path, data, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrFileWriteFailed, err.Error()), "path", path)
	}
	return nil
}

// removeFile deletes name and reports whether it existed.
func (o *Orchestrator) removeFile(name string) (bool, error) {
	path, err := o.path(name)
	if err != nil {
		return false, err
	}
	if err := os.Remove(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, zerr.With(zerr.Wrap(domain.ErrFileRemoveFailed, err.Error()), "path", path)
	}
	return true, nil
}

func (o *Orchestrator) present(name string) (bool, error) {
	path, err := o.path(name)
	if err != nil {
		return false, err
	}
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, zerr.With(zerr.Wrap(domain.ErrFileWriteFailed, err.Error()), "path", path)
	}
	return info.Mode().IsRegular(), nil
}
