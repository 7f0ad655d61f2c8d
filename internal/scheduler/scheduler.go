// Package scheduler runs recurring background tasks with a lifecycle owned
// by the process, so tests can trigger a single cycle deterministically
// instead of waiting on wall-clock intervals.
package scheduler

import (
	"context"
	"log/slog"
	"time"
)

// Task is one recurring job: it fires once after InitialDelay, then every
// Interval until the context is cancelled. A failing cycle is logged and
// never stops the timer.
type Task struct {
	Name         string
	InitialDelay time.Duration
	Interval     time.Duration
	Run          func(ctx context.Context) error
	Logger       *slog.Logger
}

// RunOnce executes one cycle, logging any failure.
func (t *Task) RunOnce(ctx context.Context) {
	if err := t.Run(ctx); err != nil {
		t.Logger.Error("scheduled task failed", "task", t.Name, "error", err)
	}
}

// Start blocks, running cycles until ctx is cancelled. Callers run it in a
// goroutine.
func (t *Task) Start(ctx context.Context) {
	t.Logger.Info("scheduled task started",
		"task", t.Name,
		"initial_delay", t.InitialDelay,
		"interval", t.Interval,
	)

	select {
	case <-ctx.Done():
		return
	case <-time.After(t.InitialDelay):
		t.RunOnce(ctx)
	}

	ticker := time.NewTicker(t.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			t.Logger.Info("scheduled task stopped", "task", t.Name)
			return
		case <-ticker.C:
			t.RunOnce(ctx)
		}
	}
}

// Scheduler owns a set of tasks and their shared lifecycle.
type Scheduler struct {
	tasks  []*Task
	cancel context.CancelFunc
}

// New creates a Scheduler over the given tasks.
func New(tasks ...*Task) *Scheduler {
	return &Scheduler{tasks: tasks}
}

// Start launches every task. Stop cancels them all.
func (s *Scheduler) Start(ctx context.Context) {
	ctx, s.cancel = context.WithCancel(ctx)
	for _, task := range s.tasks {
		go task.Start(ctx)
	}
}

// Stop cancels all running tasks.
func (s *Scheduler) Stop() {
	if s.cancel != nil {
		s.cancel()
	}
}
