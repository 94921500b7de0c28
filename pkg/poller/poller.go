// Package poller runs recurring tasks whose lifetime is bound to a context.
package poller

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

type Func func(ctx context.Context) error

// Task calls fn every interval until ctx is done. Errors are logged and do not stop the task.
type Task struct {
	Name      string
	Interval  time.Duration
	Fn        Func
	Immediate bool
}

func (t Task) Run(ctx context.Context) {
	ticker := time.NewTicker(t.Interval)
	defer ticker.Stop()

	if t.Immediate {
		t.call(ctx)
	}
	for {
		select {
		case <-ctx.Done():
			zap.L().Debug("poll task stopped", zap.String("task", t.Name))
			return
		case <-ticker.C:
			t.call(ctx)
		}
	}
}

func (t Task) call(ctx context.Context) {
	if err := t.Fn(ctx); err != nil && ctx.Err() == nil {
		zap.L().Warn("poll task failed", zap.String("task", t.Name), zap.Error(err))
	}
}

// Group runs several tasks and waits for all of them once ctx is done.
type Group struct {
	wg sync.WaitGroup
}

func (g *Group) Go(ctx context.Context, t Task) {
	g.wg.Add(1)
	go func() {
		defer g.wg.Done()
		t.Run(ctx)
	}()
}

func (g *Group) Wait() {
	g.wg.Wait()
}
