package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// Loader identifies the mod runtime a release targets.
type Loader string

// Supported loaders.
const (
	LoaderFabric     Loader = "fabric"
	LoaderForge      Loader = "forge"
	LoaderNeoForge   Loader = "neoforge"
	LoaderQuilt      Loader = "quilt"
	LoaderLiteLoader Loader = "liteloader"
)

// Loaders lists every supported loader in display order.
var Loaders = []Loader{LoaderFabric, LoaderForge, LoaderNeoForge, LoaderQuilt, LoaderLiteLoader}

// ParseLoader converts a user supplied name into a Loader. Matching is case-insensitive.
func ParseLoader(s string) (Loader, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, l := range Loaders {
		if string(l) == name {
			return l, nil
		}
	}
	return "", zerr.With(zerr.Wrap(ErrUnknownLoader, "parse loader"), "loader", s)
}

// String returns the registry name of the loader.
func (l Loader) String() string {
	return string(l)
}
