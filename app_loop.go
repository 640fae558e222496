package flip

import (
	"context"
	"time"
)

// QueueMicrotask runs fn after the current unit of work, before the next
// layout commit.
func (a *App) QueueMicrotask(fn func()) {
	a.microtasks = append(a.microtasks, fn)
}

// AfterCommit runs fn once the next layout commit has happened, so geometry
// read inside fn reflects every mutation made before it.
func (a *App) AfterCommit(fn func()) {
	a.afterCommit = append(a.afterCommit, fn)
}

// RequestFrame runs fn on the next animation frame.
func (a *App) RequestFrame(fn func(now time.Time)) {
	a.frames = append(a.frames, fn)
}

// Flush runs queued microtasks, commits layout when needed and runs
// after-commit callbacks, repeating until nothing is pending.
func (a *App) Flush() {
	for {
		if len(a.microtasks) > 0 {
			tasks := a.microtasks
			a.microtasks = nil
			for _, task := range tasks {
				task()
			}
			continue
		}
		if a.dirty.Load() || len(a.afterCommit) > 0 {
			a.commit()
			callbacks := a.afterCommit
			a.afterCommit = nil
			for _, fn := range callbacks {
				fn()
			}
			continue
		}
		return
	}
}

// Frame runs one animation frame at now: flush, frame callbacks, flush.
func (a *App) Frame(now time.Time) {
	a.Flush()
	callbacks := a.frames
	a.frames = nil
	for _, fn := range callbacks {
		fn(now)
	}
	a.Flush()
}

// Run drives the loop in real time until ctx is cancelled or Stop is called.
// Queued updates are applied as they arrive; frames fire at the configured
// frame rate.
func (a *App) Run(ctx context.Context) error {
	ticker := time.NewTicker(a.frameDuration)
	defer ticker.Stop()

	a.Flush()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-a.stopCh:
			return nil
		case fn := <-a.updateQueue:
			fn()
			a.Flush()
		case now := <-ticker.C:
			a.Frame(now)
		}
	}
}

// Stop signals Run to exit. Stop is idempotent.
func (a *App) Stop() {
	a.stopOnce.Do(func() {
		close(a.stopCh)
	})
}

// QueueUpdate enqueues a function to run on the loop.
// Safe to call from any goroutine.
func (a *App) QueueUpdate(fn func()) {
	select {
	case a.updateQueue <- fn:
	case <-a.stopCh:
	default:
		a.warn("QueueUpdate: queue full, dropping update")
	}
}
