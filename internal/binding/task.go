package binding

import (
	"context"

	"github.com/alexisbeaulieu97/wxaverages/internal/chart"
	"github.com/alexisbeaulieu97/wxaverages/internal/render"
)

// Task is a run started with Start. cfg belongs to the task until Done is
// closed.
type Task struct {
	done   chan struct{}
	handle *render.Chart
	err    error
}

// Start runs the pipeline on its own goroutine and returns immediately. A
// pipeline that already ran yields a task that is done with INVALID_STATE.
func (p *Pipeline) Start(ctx context.Context, cfg *chart.Configuration, sourceURL string) *Task {
	t := &Task{done: make(chan struct{})}
	if !p.used.CompareAndSwap(false, true) {
		t.err = newStateError("pipeline has already run")
		close(t.done)
		return t
	}

	go func() {
		defer close(t.done)
		t.handle, t.err = p.run(ctx, cfg, sourceURL)
	}()
	return t
}

// Done is closed once the run has finished.
func (t *Task) Done() <-chan struct{} {
	return t.done
}

// Wait blocks until the run finishes or ctx ends. Giving up on the wait does
// not stop the run; cancel the context passed to Start for that.
func (t *Task) Wait(ctx context.Context) (*render.Chart, error) {
	select {
	case <-t.done:
		return t.handle, t.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Err returns the run's error once it has finished and nil before.
func (t *Task) Err() error {
	select {
	case <-t.done:
		return t.err
	default:
		return nil
	}
}
