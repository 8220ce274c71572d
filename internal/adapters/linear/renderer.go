// Package linear provides synchronous, line-oriented progress output and reports.
package linear

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/FloatyJellyfish/mod-updater/internal/ui/output"
	"github.com/FloatyJellyfish/mod-updater/internal/ui/style"
	"github.com/muesli/termenv"
)

// Renderer implements ports.Renderer with chronological, item-prefixed lines.
// Tasks run concurrently, so every write happens under mu.
type Renderer struct {
	out *termenv.Output

	mu    sync.Mutex
	tasks map[string]taskState // spanID -> task state
}

type taskState struct {
	name      string
	startTime time.Time
}

// NewRenderer creates a Renderer writing to w, or stderr when w is nil.
func NewRenderer(w io.Writer) *Renderer {
	if w == nil {
		w = os.Stderr
	}
	return &Renderer{
		out:   output.NewANSI(w),
		tasks: make(map[string]taskState),
	}
}

// OnPlanEmit prints what is about to happen.
func (r *Renderer) OnPlanEmit(action string, items []string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, _ = fmt.Fprintf(r.out, "Planning to %s %d mod(s): %s\n", action, len(items), strings.Join(items, ", "))
}

// OnTaskStart prints a task start message.
func (r *Renderer) OnTaskStart(spanID, name string, startTime time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.tasks[spanID] = taskState{name: name, startTime: startTime}

	_, _ = fmt.Fprintf(r.out, "%s Starting...\n", r.prefix(name))
}

// OnTaskComplete prints the completion status. Unknown span IDs are ignored.
func (r *Renderer) OnTaskComplete(spanID string, endTime time.Time, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	task, ok := r.tasks[spanID]
	if !ok {
		return
	}
	delete(r.tasks, spanID)

	duration := endTime.Sub(task.startTime).Round(time.Millisecond)

	if err != nil {
		symbol := r.out.String(style.Cross).Foreground(termenv.ANSIRed).String()
		_, _ = fmt.Fprintf(r.out, "%s %s Failed after %v: %v\n", r.prefix(task.name), symbol, duration, err)
		return
	}

	symbol := r.out.String(style.Check).Foreground(termenv.ANSIGreen).String()
	_, _ = fmt.Fprintf(r.out, "%s %s Completed in %v\n", r.prefix(task.name), symbol, duration)
}

func (r *Renderer) prefix(name string) string {
	return r.out.String("[" + name + "]").Faint().String()
}
