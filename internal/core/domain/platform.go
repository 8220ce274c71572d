package domain

import (
	"slices"
	"time"
)

// Channel is the release channel of a platform version.
type Channel string

// Release channels.
const (
	ChannelStable       Channel = "stable"
	ChannelPreview      Channel = "preview"
	ChannelExperimental Channel = "experimental"
	ChannelOther        Channel = "other"
)

// ChannelFromVersionType maps the registry's version_type onto a Channel.
func ChannelFromVersionType(versionType string) Channel {
	switch versionType {
	case "release":
		return ChannelStable
	case "snapshot":
		return ChannelPreview
	case "alpha", "beta":
		return ChannelExperimental
	default:
		return ChannelOther
	}
}

// PlatformVersion is a game version from the registry catalog.
type PlatformVersion struct {
	Version   string
	Channel   Channel
	Published time.Time
	Major     bool
}

// SameVersion reports whether two platform versions are the same.
// Only the display string takes part in the comparison.
func (v PlatformVersion) SameVersion(other PlatformVersion) bool {
	return v.Version == other.Version
}

// NewerFirst orders platform versions by publication time, newest first.
// It is suitable for slices.SortStableFunc so equal timestamps keep their order.
func NewerFirst(a, b PlatformVersion) int {
	return b.Published.Compare(a.Published)
}

// SortNewestFirst sorts versions in place, newest first, keeping the relative order of ties.
func SortNewestFirst(versions []PlatformVersion) {
	slices.SortStableFunc(versions, NewerFirst)
}

// VersionStrings returns the display strings of versions in order.
func VersionStrings(versions []PlatformVersion) []string {
	out := make([]string, len(versions))
	for i, v := range versions {
		out[i] = v.Version
	}
	return out
}
