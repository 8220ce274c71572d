// Package config provides settings and the pack loader for mod-updater.
package config

import (
	"errors"
	"io/fs"
	"strings"

	"github.com/FloatyJellyfish/mod-updater/internal/core/domain"
	"github.com/FloatyJellyfish/mod-updater/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// PackLoader implements ports.PackLoader using a YAML file.
type PackLoader struct {
	path   string
	fs     FileSystem
	logger ports.Logger
}

// NewPackLoader creates a PackLoader reading the pack file at path.
func NewPackLoader(path string, fsys FileSystem, logger ports.Logger) *PackLoader {
	if fsys == nil {
		fsys = NewOSFS()
	}
	return &PackLoader{path: path, fs: fsys, logger: logger}
}

// Load reads, normalizes and validates the pack file.
func (l *PackLoader) Load() (domain.Pack, error) {
	data, err := l.fs.ReadFile(l.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.Pack{}, zerr.With(zerr.Wrap(domain.ErrPackReadFailed, "pack file does not exist"), "path", l.path)
		}
		return domain.Pack{}, zerr.With(zerr.Wrap(err, domain.ErrPackReadFailed.Error()), "path", l.path)
	}

	var file PackFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return domain.Pack{}, zerr.With(zerr.Wrap(err, domain.ErrPackParseFailed.Error()), "path", l.path)
	}

	loader, err := domain.ParseLoader(file.Loader)
	if err != nil {
		return domain.Pack{}, zerr.With(err, "path", l.path)
	}

	mods := make([]string, 0, len(file.Mods))
	for _, mod := range file.Mods {
		mods = append(mods, strings.TrimSpace(mod))
	}

	pack := domain.Pack{
		Loader:      loader,
		GameVersion: strings.TrimSpace(file.GameVersion),
		Mods:        mods,
	}
	if err := pack.Validate(); err != nil {
		return domain.Pack{}, zerr.With(err, "path", l.path)
	}

	if len(pack.Mods) == 0 && l.logger != nil {
		l.logger.Warn("pack " + l.path + " lists no mods")
	}

	return pack, nil
}
