package anim

import "time"

// Kind identifies one of the coordinator's loop concerns.
type Kind int

const (
	// KindValue eases the drawn value toward the logical value.
	KindValue Kind = iota
	// KindCycle drives the circular indeterminate choreography.
	KindCycle
	// KindWave advances continuous wave time.
	KindWave

	numKinds
)

// String returns the loop name for log messages.
func (k Kind) String() string {
	switch k {
	case KindValue:
		return "value"
	case KindCycle:
		return "cycle"
	case KindWave:
		return "wave"
	}
	return "unknown"
}

// FrameFunc receives the loop's animation time each frame. Returning false
// cancels the loop after the current frame.
type FrameFunc func(t time.Duration) bool

// Coordinator owns at most one live subscription per kind. Starting a kind
// always cancels its predecessor first, so loop switches can never deliver a
// frame from a superseded subscription.
type Coordinator struct {
	sched Scheduler
	loops [numKinds]*loop
}

type loop struct {
	handle  Handle
	phase   time.Duration
	first   time.Time
	started bool
	done    bool
	last    time.Duration
}

// NewCoordinator binds a coordinator to a scheduler.
func NewCoordinator(sched Scheduler) *Coordinator {
	return &Coordinator{sched: sched}
}

// Start replaces any live loop of the same kind. The new loop's clock begins
// at phase, so a restart continues from wherever the previous loop stopped.
func (c *Coordinator) Start(kind Kind, phase time.Duration, frame FrameFunc) {
	c.Stop(kind)
	l := &loop{phase: phase, last: phase}
	c.loops[kind] = l
	l.handle = c.sched.Schedule(func(now time.Time) {
		if l.done || c.loops[kind] != l {
			return
		}
		if !l.started {
			l.started = true
			l.first = now
		}
		t := l.phase + now.Sub(l.first)
		l.last = t
		if !frame(t) {
			c.stopLoop(kind, l)
		}
	})
}

// Stop cancels the live loop of the given kind, if any.
func (c *Coordinator) Stop(kind Kind) {
	if l := c.loops[kind]; l != nil {
		c.stopLoop(kind, l)
	}
}

// StopAll cancels every live loop. Teardown path; idempotent.
func (c *Coordinator) StopAll() {
	for k := Kind(0); k < numKinds; k++ {
		c.Stop(k)
	}
}

// Active reports whether a loop of the given kind is live.
func (c *Coordinator) Active(kind Kind) bool {
	return c.loops[kind] != nil
}

// Phase returns the animation time most recently delivered to the given
// kind, or its seed phase if no frame has run yet. Feeding this back into
// Start keeps motion continuous across a restart.
func (c *Coordinator) Phase(kind Kind) time.Duration {
	if l := c.loops[kind]; l != nil {
		return l.last
	}
	return 0
}

func (c *Coordinator) stopLoop(kind Kind, l *loop) {
	if l.done {
		return
	}
	l.done = true
	if l.handle != nil {
		l.handle.Cancel()
	}
	if c.loops[kind] == l {
		c.loops[kind] = nil
	}
}
