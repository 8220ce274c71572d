package ports

import "time"

// Renderer is the abstraction for progress output.
// It is driven by span events so the orchestrator stays unaware of presentation.
//
//go:generate mockgen -source=renderer.go -destination=mocks/mock_renderer.go -package=mocks
type Renderer interface {
	// OnPlanEmit is called before tasks are dispatched.
	// action: the verb applied to every item (download, update, ...)
	// items: the items in submission order
	OnPlanEmit(action string, items []string)

	// OnTaskStart is called when a task begins.
	// spanID: unique identifier for this task execution
	// name: human-readable task name
	OnTaskStart(spanID, name string, startTime time.Time)

	// OnTaskComplete is called when a task finishes.
	// err is nil if the task succeeded.
	OnTaskComplete(spanID string, endTime time.Time, err error)
}
