package anim

import (
	"sort"
	"sync"
	"time"
)

// Manual is a hand-cranked Scheduler for tests. Advance moves a synthetic
// clock and fires one tick per live subscription, so animation behavior can
// be asserted deterministically without a running driver.
type Manual struct {
	mu   sync.Mutex
	now  time.Time
	next int
	subs map[int]func(time.Time)
}

// NewManual returns a manual scheduler with its clock at a fixed epoch.
func NewManual() *Manual {
	return &Manual{
		now:  time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		subs: make(map[int]func(time.Time)),
	}
}

// Schedule registers a tick callback. The first tick fires on the next
// Advance call.
func (m *Manual) Schedule(tick func(time.Time)) Handle {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := m.next
	m.next++
	m.subs[id] = tick
	return &manualHandle{m: m, id: id}
}

// Advance moves the clock forward by d and delivers one frame to every
// subscription that is still live when its turn comes. Subscriptions added
// during the frame start ticking on the next Advance.
func (m *Manual) Advance(d time.Duration) {
	m.mu.Lock()
	m.now = m.now.Add(d)
	now := m.now
	ids := make([]int, 0, len(m.subs))
	for id := range m.subs {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	m.mu.Unlock()

	for _, id := range ids {
		m.mu.Lock()
		tick, ok := m.subs[id]
		m.mu.Unlock()
		if ok {
			tick(now)
		}
	}
}

// AdvanceFrames delivers n frames of the given step.
func (m *Manual) AdvanceFrames(n int, step time.Duration) {
	for i := 0; i < n; i++ {
		m.Advance(step)
	}
}

// Live reports how many subscriptions have not been cancelled.
func (m *Manual) Live() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.subs)
}

// Now returns the current synthetic time.
func (m *Manual) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

type manualHandle struct {
	m  *Manual
	id int
}

func (h *manualHandle) Cancel() {
	h.m.mu.Lock()
	defer h.m.mu.Unlock()
	delete(h.m.subs, h.id)
}
