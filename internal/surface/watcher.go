package surface

import (
	"sync"
	"time"
)

const (
	// Debounce is how long a width change must hold steady before the
	// recompute callback runs.
	Debounce = 100 * time.Millisecond

	// widthEpsilon filters sub-pixel layout jitter; smaller movements
	// never reach the callback, which keeps resize feedback loops from
	// oscillating.
	widthEpsilon = 0.5
)

// Watcher coalesces host width changes and invokes a recompute callback once
// per settled change. The callback runs on the debounce timer's goroutine;
// callers hop to the UI thread themselves.
type Watcher struct {
	mu       sync.Mutex
	debounce time.Duration
	onChange func(width float32)
	width    float32
	pending  float32
	timer    *time.Timer
	stopped  bool
}

// NewWatcher returns a watcher delivering settled widths to onChange.
func NewWatcher(onChange func(width float32)) *Watcher {
	return &Watcher{
		debounce: Debounce,
		onChange: onChange,
		width:    -1,
	}
}

// Observe notes a newly measured width. Changes within the jitter epsilon of
// the last delivered (or already pending) width are ignored; anything larger
// re-arms the debounce timer.
func (w *Watcher) Observe(width float32) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.stopped || width <= 0 {
		return
	}
	ref := w.width
	if w.timer != nil {
		ref = w.pending
	}
	if ref > 0 && abs32(width-ref) <= widthEpsilon {
		return
	}
	w.pending = width
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, w.fire)
}

// Stop detaches the watcher. No callback runs afterwards.
func (w *Watcher) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.stopped = true
	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
}

func (w *Watcher) fire() {
	w.mu.Lock()
	if w.stopped {
		w.mu.Unlock()
		return
	}
	w.timer = nil
	w.width = w.pending
	cb := w.onChange
	width := w.width
	w.mu.Unlock()

	if cb != nil {
		cb(width)
	}
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
