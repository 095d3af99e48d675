package anim

import (
	"time"

	"fyne.io/fyne/v2"
)

// Handle is a live frame subscription that can be cancelled.
type Handle interface {
	Cancel()
}

// Scheduler issues repeating frame callbacks until the returned handle is
// cancelled.
type Scheduler interface {
	Schedule(tick func(now time.Time)) Handle
}

// Frames returns the driver-backed scheduler widgets run on. Ticks arrive on
// the UI goroutine, once per rendered frame.
func Frames() Scheduler {
	return frameScheduler{}
}

type frameScheduler struct{}

// The animation repeats forever and the tick ignores its progress argument,
// so the nominal cycle length is irrelevant.
const frameCycle = time.Second

func (frameScheduler) Schedule(tick func(time.Time)) Handle {
	a := &fyne.Animation{
		Duration:    frameCycle,
		Curve:       fyne.AnimationLinear,
		RepeatCount: fyne.AnimationRepeatForever,
		Tick: func(float32) {
			tick(time.Now())
		},
	}
	a.Start()
	return driverHandle{a}
}

type driverHandle struct {
	a *fyne.Animation
}

func (h driverHandle) Cancel() {
	h.a.Stop()
}
