package domain

import (
	"errors"
	"io/fs"

	"go.trai.ch/zerr"
)

var (
	// ErrNotFound is returned when the registry has no project with the requested identifier.
	ErrNotFound = zerr.New("project not found")

	// ErrInvalidRequest is returned when the registry rejects a query, e.g. an unknown game version filter.
	ErrInvalidRequest = zerr.New("invalid registry request")

	// ErrRegistryUnavailable is returned for transport failures and unclassified registry responses.
	ErrRegistryUnavailable = zerr.New("registry unavailable")

	// ErrNoVersionsFound is returned when no release matches the requested loader and game version.
	ErrNoVersionsFound = zerr.New("no versions found")

	// ErrNoFilesFound is returned when the chosen release has no downloadable files.
	ErrNoFilesFound = zerr.New("no files found")

	// ErrInvalidSelection is returned when an interactive selection is out of range or not a number.
	ErrInvalidSelection = zerr.New("invalid selection")

	// ErrInvalidPlatformVersion is returned when a release declares a game version missing from the catalog.
	ErrInvalidPlatformVersion = zerr.New("game version not present in catalog")

	// ErrNothingToRollback is returned when an item has no previously installed release recorded.
	ErrNothingToRollback = zerr.New("nothing to roll back")

	// ErrEmptyItem is returned when an item identifier is empty.
	ErrEmptyItem = zerr.New("item identifier is empty")

	// ErrDuplicateItem is returned when the same item appears twice in one pack or task list.
	ErrDuplicateItem = zerr.New("duplicate item")

	// ErrUnknownLoader is returned when a loader name is not one of the supported loaders.
	ErrUnknownLoader = zerr.New("unknown loader, expected one of fabric, forge, neoforge, quilt, liteloader")

	// ErrMissingGameVersion is returned when a pack or command has no target game version.
	ErrMissingGameVersion = zerr.New("missing game version")

	// ErrNoItemsSpecified is returned when a command needs items and neither arguments nor a pack provide them.
	ErrNoItemsSpecified = zerr.New("no items specified")

	// ErrTaskPanicked is returned when a task goroutine panics. It aborts the whole run.
	ErrTaskPanicked = zerr.New("task panicked")

	// ErrCommandFailed is returned when at least one item of a command failed.
	// The per-item failures have already been reported.
	ErrCommandFailed = zerr.New("one or more items failed")

	// ErrFileWriteFailed is returned when a downloaded file cannot be written to disk.
	ErrFileWriteFailed = zerr.New("failed to write file")

	// ErrFileRemoveFailed is returned when a tracked file cannot be removed.
	ErrFileRemoveFailed = zerr.New("failed to remove file")

	// ErrManifestReadFailed is returned when the manifest cannot be read.
	ErrManifestReadFailed = zerr.New("failed to read manifest")

	// ErrManifestUnmarshalFailed is returned when the manifest cannot be parsed.
	ErrManifestUnmarshalFailed = zerr.New("failed to parse manifest")

	// ErrManifestMarshalFailed is returned when the manifest cannot be serialized.
	ErrManifestMarshalFailed = zerr.New("failed to serialize manifest")

	// ErrManifestWriteFailed is returned when the manifest cannot be written.
	ErrManifestWriteFailed = zerr.New("failed to write manifest")

	// ErrPackReadFailed is returned when the pack file cannot be read.
	ErrPackReadFailed = zerr.New("failed to read pack file")

	// ErrPackParseFailed is returned when the pack file cannot be parsed.
	ErrPackParseFailed = zerr.New("failed to parse pack file")

	// ErrSettingsReadFailed is returned when the settings file exists but cannot be read.
	ErrSettingsReadFailed = zerr.New("failed to read settings")
)

// ErrorKind classifies a failure into the taxonomy reported to users.
type ErrorKind int

const (
	// KindNone means there was no error.
	KindNone ErrorKind = iota
	// KindNotFound means the registry does not know the item.
	KindNotFound
	// KindInvalidRequest means the registry rejected the query.
	KindInvalidRequest
	// KindRegistryUnavailable covers transport failures and unexpected statuses.
	KindRegistryUnavailable
	// KindNoVersionsFound means no release matched the constraints.
	KindNoVersionsFound
	// KindNoFilesFound means the chosen release had no files.
	KindNoFilesFound
	// KindInvalidSelection means the interactive choice was rejected.
	KindInvalidSelection
	// KindInvalidPlatformVersion means the catalog and a release disagree.
	KindInvalidPlatformVersion
	// KindNothingToRollback means no previous install is recorded.
	KindNothingToRollback
	// KindFilesystem covers local file errors.
	KindFilesystem
	// KindUnknown is anything else.
	KindUnknown
)

var kindNames = map[ErrorKind]string{
	KindNone:                   "none",
	KindNotFound:               "not found",
	KindInvalidRequest:         "invalid request",
	KindRegistryUnavailable:    "registry unavailable",
	KindNoVersionsFound:        "no versions found",
	KindNoFilesFound:           "no files found",
	KindInvalidSelection:       "invalid selection",
	KindInvalidPlatformVersion: "invalid platform version",
	KindNothingToRollback:      "nothing to roll back",
	KindFilesystem:             "filesystem",
	KindUnknown:                "unknown",
}

// String returns the human-readable name of the kind.
func (k ErrorKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return kindNames[KindUnknown]
}

var kindSentinels = []struct {
	err  error
	kind ErrorKind
}{
	{ErrNotFound, KindNotFound},
	{ErrInvalidRequest, KindInvalidRequest},
	{ErrRegistryUnavailable, KindRegistryUnavailable},
	{ErrNoVersionsFound, KindNoVersionsFound},
	{ErrNoFilesFound, KindNoFilesFound},
	{ErrInvalidSelection, KindInvalidSelection},
	{ErrInvalidPlatformVersion, KindInvalidPlatformVersion},
	{ErrNothingToRollback, KindNothingToRollback},
	{ErrFileWriteFailed, KindFilesystem},
	{ErrFileRemoveFailed, KindFilesystem},
}

// ClassifyError maps an error chain onto an ErrorKind.
// Sentinels must be wrapped, not decorated directly, for the match to succeed.
func ClassifyError(err error) ErrorKind {
	if err == nil {
		return KindNone
	}
	for _, s := range kindSentinels {
		if errors.Is(err, s.err) {
			return s.kind
		}
	}
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return KindFilesystem
	}
	return KindUnknown
}
