// Package autosave persists the session list after a quiet period following
// the last change.
package autosave

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/creami/internal/logging"
)

// DefaultDelay is the quiet period between the last change and the save.
const DefaultDelay = 2 * time.Second

// SaveFunc persists the state current at call time.
type SaveFunc func(ctx context.Context) error

// Debouncer coalesces bursts of Trigger calls into a single save that runs
// delay after the last one.
type Debouncer struct {
	delay time.Duration
	save  SaveFunc
	log   logging.Logger

	mu      sync.Mutex
	timer   *time.Timer
	pending bool
	stopped bool
	saving  sync.Mutex
}

func New(delay time.Duration, save SaveFunc, log logging.Logger) *Debouncer {
	if delay <= 0 {
		delay = DefaultDelay
	}
	return &Debouncer{delay: delay, save: save, log: log.With("component", "autosave")}
}

// Trigger (re)starts the quiet period.
func (d *Debouncer) Trigger() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}
	d.pending = true
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, d.fire)
}

func (d *Debouncer) fire() {
	if err := d.Flush(context.Background()); err != nil {
		d.log.Error(context.Background(), "auto-save failed", "error", err)
	}
}

// Flush saves immediately if a change is pending and cancels the timer.
func (d *Debouncer) Flush(ctx context.Context) error {
	d.mu.Lock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	pending := d.pending
	d.pending = false
	d.mu.Unlock()

	if !pending {
		return nil
	}

	d.saving.Lock()
	defer d.saving.Unlock()

	if err := d.save(ctx); err != nil {
		return err
	}
	d.log.Debug(ctx, "auto-saved")
	return nil
}

// Stop flushes any pending change and ignores later triggers.
func (d *Debouncer) Stop(ctx context.Context) error {
	d.mu.Lock()
	d.stopped = true
	d.mu.Unlock()

	return d.Flush(ctx)
}

// Pending reports whether a change is waiting to be saved.
func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pending
}
