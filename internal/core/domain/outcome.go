package domain

// OutcomeStatus tags the result of a task.
type OutcomeStatus int

const (
	// StatusFailed means the task did not change anything on disk that should be recorded.
	StatusFailed OutcomeStatus = iota
	// StatusInstalled means a new file was written.
	StatusInstalled
	// StatusUpToDate means the newest file was already present.
	StatusUpToDate
	// StatusRemoved means the item was removed.
	StatusRemoved
	// StatusRolledBack means the previous release was reinstalled.
	StatusRolledBack
)

// String returns the label used in reports.
func (s OutcomeStatus) String() string {
	switch s {
	case StatusInstalled:
		return "installed"
	case StatusUpToDate:
		return "up to date"
	case StatusRemoved:
		return "removed"
	case StatusRolledBack:
		return "rolled back"
	default:
		return "failed"
	}
}

// Outcome is the tagged result of one task.
type Outcome struct {
	Item      string
	Kind      TaskKind
	Status    OutcomeStatus
	Version   string
	VersionID string
	Filename  string
	// Removed is the file deleted while replacing or removing the item, if any.
	Removed string
	Err     error
}

// Ok reports whether the task succeeded.
func (o Outcome) Ok() bool {
	return o.Status != StatusFailed
}

// ErrorKind classifies the failure of the task.
func (o Outcome) ErrorKind() ErrorKind {
	return ClassifyError(o.Err)
}

// Failed builds a failed outcome for task.
func Failed(task Task, err error) Outcome {
	return Outcome{
		Item:   task.Item,
		Kind:   task.Kind,
		Status: StatusFailed,
		Err:    err,
	}
}

// CountFailed returns the number of failed outcomes.
func CountFailed(outcomes []Outcome) int {
	n := 0
	for _, o := range outcomes {
		if !o.Ok() {
			n++
		}
	}
	return n
}
