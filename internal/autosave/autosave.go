// Package autosave periodically writes modified buffers that already have a
// file path. The ticker runs on its own goroutine but every save is handed
// to the UI event loop through the injected dispatch function, so saves
// never race with user edits.
package autosave

import (
	"sync"
	"time"

	"modern-notepad/internal/logger"
)

// Saver is the session-side surface the timer drives.
type Saver interface {
	SaveAll() (int, []error)
}

// Timer fires SaveAll on a fixed period. Failures are reported through the
// notify callback and retried on the next tick, never sooner.
type Timer struct {
	interval time.Duration
	saver    Saver
	dispatch func(func())
	notify   func(string)
	logger   logger.Logger

	mu      sync.Mutex
	stop    chan struct{}
	running bool
}

// NewTimer creates a timer. dispatch marshals the save onto the UI thread
// (fyne.Do in the application, a direct call in tests); notify receives
// status-bar messages and may be nil.
func NewTimer(interval time.Duration, saver Saver, dispatch func(func()), notify func(string), log logger.Logger) *Timer {
	if log == nil {
		log = logger.NewNopLogger()
	}
	if notify == nil {
		notify = func(string) {}
	}
	return &Timer{
		interval: interval,
		saver:    saver,
		dispatch: dispatch,
		notify:   notify,
		logger:   log,
	}
}

// Start begins the tick loop. A non-positive interval disables auto-save.
func (t *Timer) Start() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.running || t.interval <= 0 {
		return
	}

	t.stop = make(chan struct{})
	t.running = true
	go t.run(t.stop)

	t.logger.Info("auto-save started", map[string]interface{}{
		"interval": t.interval.String(),
	})
}

// Stop cancels pending ticks. Safe to call more than once.
func (t *Timer) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.running {
		return
	}
	close(t.stop)
	t.running = false
}

// Shutdown satisfies the shutdown manager.
func (t *Timer) Shutdown() {
	t.Stop()
}

func (t *Timer) run(stop chan struct{}) {
	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			t.dispatch(t.tick)
		case <-stop:
			return
		}
	}
}

// tick runs on the UI thread.
func (t *Timer) tick() {
	saved, errs := t.saver.SaveAll()

	for _, err := range errs {
		t.logger.Error("auto-save failed", err, nil)
	}

	switch {
	case len(errs) > 0:
		t.notify("Auto-save: some files could not be saved")
	case saved > 0:
		t.logger.Debug("auto-save completed", map[string]interface{}{
			"saved": saved,
		})
		t.notify("Auto-saved")
	}
}
