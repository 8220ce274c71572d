package domain

// TaskKind is the operation a task performs on one item.
type TaskKind int

const (
	// TaskDownload installs a release matching the loader and game version.
	TaskDownload TaskKind = iota
	// TaskUpdate replaces the installed file with the newest matching release.
	TaskUpdate
	// TaskRemove deletes the tracked file and forgets the item.
	TaskRemove
	// TaskRollback reinstalls the previously installed release.
	TaskRollback
)

// String returns the verb used in reports.
func (k TaskKind) String() string {
	switch k {
	case TaskDownload:
		return "download"
	case TaskUpdate:
		return "update"
	case TaskRemove:
		return "remove"
	case TaskRollback:
		return "rollback"
	default:
		return "unknown"
	}
}

// Task is one unit of orchestrated work.
// Installed is a copy of the manifest entry taken before dispatch, never a reference into the manifest.
type Task struct {
	Kind            TaskKind
	Item            string
	Loader          Loader
	PlatformVersion string
	SelectLatest    bool
	Installed       *InstalledEntry
}
