package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// Pack is the curated set of items maintained together.
type Pack struct {
	Loader      Loader
	GameVersion string
	Mods        []string
}

// Validate checks the pack for a known loader, a game version and unique, non-empty items.
func (p Pack) Validate() error {
	if _, err := ParseLoader(string(p.Loader)); err != nil {
		return err
	}
	if strings.TrimSpace(p.GameVersion) == "" {
		return zerr.Wrap(ErrMissingGameVersion, "validate pack")
	}
	return ValidateItems(p.Mods)
}

// ValidateItems rejects empty and duplicate item identifiers.
func ValidateItems(items []string) error {
	seen := make(map[string]struct{}, len(items))
	for i, item := range items {
		if strings.TrimSpace(item) == "" {
			return zerr.With(zerr.Wrap(ErrEmptyItem, "validate items"), "index", i)
		}
		if _, ok := seen[item]; ok {
			return zerr.With(zerr.Wrap(ErrDuplicateItem, "validate items"), "item", item)
		}
		seen[item] = struct{}{}
	}
	return nil
}
