// Package orchestrator runs one concurrent, fault-isolated task per item.
package orchestrator

import (
	"context"

	"github.com/FloatyJellyfish/mod-updater/internal/core/domain"
	"github.com/FloatyJellyfish/mod-updater/internal/core/ports"
	"github.com/google/uuid"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Orchestrator dispatches download, update, remove and rollback tasks.
// Tasks never share mutable state; each one reports a domain.Outcome.
type Orchestrator struct {
	registry    ports.Registry
	chooser     ports.Chooser
	tracer      ports.Tracer
	dir         string
	concurrency int
}

// New creates an Orchestrator that installs files into dir.
func New(
	registry ports.Registry,
	chooser ports.Chooser,
	tracer ports.Tracer,
	dir string,
	concurrency int,
) *Orchestrator {
	if concurrency < 1 {
		concurrency = 1
	}
	return &Orchestrator{
		registry:    registry,
		chooser:     chooser,
		tracer:      tracer,
		dir:         dir,
		concurrency: concurrency,
	}
}

// Dir returns the directory files are installed into.
func (o *Orchestrator) Dir() string {
	return o.dir
}

// RunAll executes every task and waits for all of them.
// A failing task becomes a failed outcome and never stops its siblings.
// The returned error is reserved for invalid input and panics; outcomes are in completion order.
func (o *Orchestrator) RunAll(ctx context.Context, tasks []domain.Task) ([]domain.Outcome, error) {
	if len(tasks) == 0 {
		return nil, nil
	}

	items := make([]string, len(tasks))
	for i, t := range tasks {
		items[i] = t.Item
	}
	if err := domain.ValidateItems(items); err != nil {
		return nil, err
	}

	action := planAction(tasks)
	ctx, span := o.tracer.Start(ctx, action,
		ports.WithAttribute("run.id", uuid.NewString()),
		ports.WithAttribute("run.items", len(tasks)),
	)
	defer span.End()

	o.tracer.EmitPlan(ctx, action, items)

	resultsCh := make(chan domain.Outcome, len(tasks))

	var g errgroup.Group
	g.SetLimit(o.concurrency)
	for _, task := range tasks {
		g.Go(func() (err error) {
			defer zerr.Defer(func(panicErr error) {
				err = zerr.With(zerr.Wrap(domain.ErrTaskPanicked, panicErr.Error()), "item", task.Item)
			})
			resultsCh <- o.executeTask(ctx, task)
			return nil
		})
	}

	err := g.Wait()
	close(resultsCh)

	outcomes := make([]domain.Outcome, 0, len(tasks))
	for outcome := range resultsCh {
		outcomes = append(outcomes, outcome)
	}

	if err != nil {
		span.RecordError(err)
		return outcomes, err
	}
	span.SetAttribute("run.failed", domain.CountFailed(outcomes))
	return outcomes, nil
}

// executeTask runs one task inside its own span.
// The span ends before the outcome is handed back so renderers see completion first.
func (o *Orchestrator) executeTask(ctx context.Context, task domain.Task) domain.Outcome {
	ctx, span := o.tracer.Start(ctx, task.Item, ports.WithAttribute("task.kind", task.Kind.String()))
	defer span.End()

	var outcome domain.Outcome
	var err error
	switch task.Kind {
	case domain.TaskDownload:
		outcome, err = o.download(ctx, task)
	case domain.TaskUpdate:
		outcome, err = o.update(ctx, task)
	case domain.TaskRemove:
		outcome, err = o.remove(task)
	case domain.TaskRollback:
		outcome, err = o.rollback(ctx, task)
	default:
		err = zerr.With(zerr.New("unknown task kind"), "kind", int(task.Kind))
	}

	if err != nil {
		span.RecordError(err)
		return domain.Failed(task, err)
	}

	span.SetAttribute("task.status", outcome.Status.String())
	if outcome.Filename != "" {
		span.SetAttribute("task.filename", outcome.Filename)
	}
	return outcome
}

// planAction names a run after its task kind, or "run" when kinds are mixed.
func planAction(tasks []domain.Task) string {
	kind := tasks[0].Kind
	for _, t := range tasks[1:] {
		if t.Kind != kind {
			return "run"
		}
	}
	return kind.String()
}
