package surface

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type widthRecorder struct {
	mu     sync.Mutex
	widths []float32
}

func (r *widthRecorder) record(w float32) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.widths = append(r.widths, w)
}

func (r *widthRecorder) snapshot() []float32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]float32(nil), r.widths...)
}

func newTestWatcher(rec *widthRecorder) *Watcher {
	w := NewWatcher(rec.record)
	w.debounce = 10 * time.Millisecond
	return w
}

func TestWatcherCoalescesBursts(t *testing.T) {
	rec := &widthRecorder{}
	w := newTestWatcher(rec)
	defer w.Stop()

	// a resize burst: several layout ticks inside one debounce window
	w.Observe(300)
	w.Observe(220)
	w.Observe(150)

	require.Eventually(t, func() bool { return len(rec.snapshot()) == 1 },
		time.Second, time.Millisecond)
	time.Sleep(30 * time.Millisecond)

	got := rec.snapshot()
	require.Equal(t, []float32{150}, got, "only the settled width is delivered")
}

func TestWatcherIgnoresSubPixelJitter(t *testing.T) {
	rec := &widthRecorder{}
	w := newTestWatcher(rec)
	defer w.Stop()

	w.Observe(150)
	require.Eventually(t, func() bool { return len(rec.snapshot()) == 1 },
		time.Second, time.Millisecond)

	w.Observe(150.2)
	w.Observe(149.9)
	time.Sleep(40 * time.Millisecond)
	require.Len(t, rec.snapshot(), 1, "jitter within the epsilon must not recompute")

	w.Observe(200)
	require.Eventually(t, func() bool { return len(rec.snapshot()) == 2 },
		time.Second, time.Millisecond)
}

func TestWatcherIgnoresZeroWidth(t *testing.T) {
	rec := &widthRecorder{}
	w := newTestWatcher(rec)
	defer w.Stop()

	w.Observe(0)
	w.Observe(-10)
	time.Sleep(40 * time.Millisecond)
	require.Empty(t, rec.snapshot())
}

func TestWatcherStopDetaches(t *testing.T) {
	rec := &widthRecorder{}
	w := newTestWatcher(rec)

	w.Observe(320)
	w.Stop()
	time.Sleep(40 * time.Millisecond)
	require.Empty(t, rec.snapshot(), "no callback may fire after Stop")

	// observing after Stop stays inert
	w.Observe(400)
	time.Sleep(40 * time.Millisecond)
	require.Empty(t, rec.snapshot())
}
