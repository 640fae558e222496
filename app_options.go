package flip

import (
	"fmt"
	"time"
)

// AppOption is a functional option for configuring an App.
type AppOption func(*App) error

// WithFrameRate sets the target frame rate for Run.
// Default is 60 fps. Valid range is 1-240 fps.
func WithFrameRate(fps int) AppOption {
	return func(a *App) error {
		if fps < 1 {
			return fmt.Errorf("frame rate must be at least 1 fps")
		}
		if fps > 240 {
			return fmt.Errorf("frame rate cannot exceed 240 fps")
		}
		a.frameDuration = time.Second / time.Duration(fps)
		return nil
	}
}

// WithUpdateQueueSize sets the capacity of the QueueUpdate buffer.
// Default is 256. Must be at least 1.
func WithUpdateQueueSize(size int) AppOption {
	return func(a *App) error {
		if size < 1 {
			return fmt.Errorf("update queue size must be at least 1")
		}
		a.queueSize = size
		return nil
	}
}

// WithLogger routes warnings (such as a region that does not resolve to a
// single element) to fn instead of the debug log.
func WithLogger(fn func(format string, args ...any)) AppOption {
	return func(a *App) error {
		a.logf = fn
		return nil
	}
}

// WithConfig replaces the animation defaults and frame rate.
func WithConfig(cfg Config) AppOption {
	return func(a *App) error {
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}
		a.config = cfg
		return WithFrameRate(cfg.FrameRate)(a)
	}
}

// WithOnCommit registers fn to run after every layout commit. Renderers
// use it to draw the tree.
func WithOnCommit(fn func(*App)) AppOption {
	return func(a *App) error {
		a.onCommit = append(a.onCommit, fn)
		return nil
	}
}
