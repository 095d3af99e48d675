package progress

import (
	"image/color"
	"math"
	"sync"
	"time"

	"github.com/crestui/crest/internal/anim"
	"github.com/crestui/crest/internal/geom"
	"github.com/crestui/crest/internal/paint"
	"github.com/crestui/crest/internal/surface"
)

// core is the state machine both widgets share. It owns the logical and
// drawn values, decides which coordinator loop the current mode needs, and
// produces paint.Frame snapshots for the renderer.
//
// The mutex guards the fields against the renderer's raster goroutine;
// mutations themselves are expected on the UI goroutine, like any Fyne
// widget. Every setter folds bad input into range and no-ops when nothing
// changes.
type core struct {
	mu sync.Mutex

	cfg      Config
	coord    *anim.Coordinator
	circular bool

	max      float64
	value    float64 // logical target
	drawn    float64 // displayed value, eased toward the target
	buffer   float64
	indet    bool
	shape    Shape
	stroke   float32
	diameter float32

	// clock is the shared animation time. The cycle and wave loops both
	// feed it, and it seeds whichever loop starts next, so switching
	// shape or mode never resets phase.
	clock time.Duration

	completed bool
	destroyed bool

	repaint    func()
	onComplete func()
}

func newCore(cfg Config, coord *anim.Coordinator, circular bool) *core {
	c := &core{cfg: cfg, coord: coord, circular: circular}

	c.max = cfg.Max
	if math.IsNaN(c.max) || math.IsInf(c.max, 0) || c.max <= 0 {
		c.max = 1
	}
	c.value = geom.Clamp(cfg.Value, 0, c.max)
	c.drawn = c.value
	c.buffer = geom.Clamp(cfg.Buffer, 0, c.max)
	c.indet = cfg.Indeterminate
	c.shape = normalizeShape(cfg.Shape)
	c.stroke = cfg.Thickness.stroke()
	d := cfg.Diameter
	if d == 0 {
		d = defaultDiameter
	}
	c.diameter = surface.ClampDiameter(d)

	// starting at max is not an arrival, so pre-latch without firing
	c.completed = !c.indet && c.drawn >= c.max

	c.mu.Lock()
	c.syncLoopsLocked()
	c.mu.Unlock()
	return c
}

func (c *core) setRepaint(fn func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.destroyed {
		c.repaint = fn
	}
}

func (c *core) setValue(v float64) {
	c.mu.Lock()
	if c.destroyed {
		c.mu.Unlock()
		return
	}
	v = geom.Clamp(v, 0, c.max)
	if v == c.value {
		c.mu.Unlock()
		return
	}
	c.value = v
	if c.indet {
		// remembered; shown when indeterminate switches back off
		c.mu.Unlock()
		return
	}

	from, to := c.drawn, v
	dur, ease := c.transitionLocked(from, to)
	if dur <= 0 {
		c.drawn = to
		fire := c.updateCompletionLocked()
		c.mu.Unlock()
		c.notify(fire)
		return
	}
	c.mu.Unlock()

	c.coord.Start(anim.KindValue, 0, func(t time.Duration) bool {
		c.mu.Lock()
		if c.destroyed {
			c.mu.Unlock()
			return false
		}
		u := float64(t) / float64(dur)
		done := u >= 1
		if done {
			u = 1
		}
		c.drawn = geom.Lerp(from, to, ease.Ease(u))
		fire := c.updateCompletionLocked()
		c.mu.Unlock()
		c.notify(fire)
		return !done
	})
}

// transitionLocked picks the duration and curve for a value animation. The
// final run into max settles with a gentler, slightly longer curve.
func (c *core) transitionLocked(from, to float64) (time.Duration, geom.CubicBezier) {
	dur := c.cfg.TransitionDuration
	if dur == 0 {
		dur = defaultTransition
	}
	if dur < 0 {
		return 0, geom.EaseStandard
	}
	if to >= c.max && from < c.max {
		return dur * 3 / 2, geom.EaseSettle
	}
	return dur, geom.EaseStandard
}

func (c *core) setBuffer(v float64) {
	c.mu.Lock()
	if c.destroyed {
		c.mu.Unlock()
		return
	}
	v = geom.Clamp(v, 0, c.max)
	if v == c.buffer {
		c.mu.Unlock()
		return
	}
	c.buffer = v
	c.mu.Unlock()
	c.invalidate()
}

func (c *core) setIndeterminate(on bool) {
	c.mu.Lock()
	if c.destroyed || c.indet == on {
		c.mu.Unlock()
		return
	}
	c.indet = on
	c.drawn = c.value
	var fire func()
	if !on {
		fire = c.updateCompletionLocked()
	}
	c.coord.Stop(anim.KindValue)
	c.syncLoopsLocked()
	c.mu.Unlock()
	c.notify(fire)
}

func (c *core) setShape(s Shape) {
	s = normalizeShape(s)
	c.mu.Lock()
	if c.destroyed || s == c.shape {
		c.mu.Unlock()
		return
	}
	c.shape = s
	c.syncLoopsLocked()
	c.mu.Unlock()
	c.invalidate()
}

func (c *core) setThickness(t Thickness) {
	w := t.stroke()
	c.mu.Lock()
	if c.destroyed || w == c.stroke {
		c.mu.Unlock()
		return
	}
	c.stroke = w
	c.mu.Unlock()
	c.invalidate()
}

func (c *core) setDiameter(d float32) {
	d = surface.ClampDiameter(d)
	c.mu.Lock()
	if c.destroyed || d == c.diameter {
		c.mu.Unlock()
		return
	}
	c.diameter = d
	c.mu.Unlock()
	c.invalidate()
}

func (c *core) destroy() {
	c.mu.Lock()
	if c.destroyed {
		c.mu.Unlock()
		return
	}
	c.destroyed = true
	c.repaint = nil
	c.mu.Unlock()
	c.coord.StopAll()
}

// loopKind names the continuous loop the current mode needs. A flat
// indeterminate dial runs on the cycle loop; every other animated mode,
// indeterminate or wavy, rides the wave loop. Determinate flat modes need
// no continuous loop at all.
func (c *core) loopKind() (anim.Kind, bool) {
	switch {
	case c.indet && c.circular && c.shape == ShapeFlat:
		return anim.KindCycle, true
	case c.indet || c.shape == ShapeWavy:
		return anim.KindWave, true
	}
	return 0, false
}

// syncLoopsLocked reconciles the running continuous loop with the mode.
// A loop that survives the change keeps running untouched; a handoff seeds
// the successor with the current clock so animation time stays monotonic.
func (c *core) syncLoopsLocked() {
	kind, need := c.loopKind()
	if c.destroyed {
		need = false
	}
	for _, k := range []anim.Kind{anim.KindCycle, anim.KindWave} {
		if !need || k != kind {
			c.coord.Stop(k)
		}
	}
	if !need || c.coord.Active(kind) {
		return
	}
	c.coord.Start(kind, c.clock, c.tickClock)
}

func (c *core) tickClock(t time.Duration) bool {
	c.mu.Lock()
	if c.destroyed {
		c.mu.Unlock()
		return false
	}
	c.clock = t
	c.mu.Unlock()
	c.invalidate()
	return true
}

// updateCompletionLocked maintains the completion latch. It returns the
// callback to fire, exactly once per arrival at max; dropping below max
// re-arms the latch.
func (c *core) updateCompletionLocked() func() {
	if c.drawn < c.max {
		c.completed = false
		return nil
	}
	if !c.indet && !c.completed {
		c.completed = true
		return c.onComplete
	}
	return nil
}

func (c *core) notify(fire func()) {
	if fire != nil {
		fire()
	}
	c.invalidate()
}

func (c *core) invalidate() {
	c.mu.Lock()
	fn := c.repaint
	c.mu.Unlock()
	if fn != nil {
		fn()
	}
}

// snapshot captures everything a painter needs for one frame.
func (c *core) snapshot() paint.Frame {
	c.mu.Lock()
	defer c.mu.Unlock()
	return paint.Frame{
		Value:         c.drawn,
		Max:           c.max,
		Buffer:        c.buffer,
		Indeterminate: c.indet,
		Wavy:          c.shape == ShapeWavy,
		Stroke:        c.stroke,
		Amplitude:     c.amplitudeLocked(),
		Wavelength:    c.cfg.Wavelength,
		ShowStop:      !c.circular && !c.cfg.HideStopIndicator,
		Time:          c.clock,
	}
}

func (c *core) amplitudeLocked() float32 {
	if c.shape != ShapeWavy {
		return 0
	}
	if c.cfg.WaveAmplitude > 0 {
		return c.cfg.WaveAmplitude
	}
	if c.circular {
		return circularAmpRatio * c.diameter / 2
	}
	return defaultAmplitude
}

// palette applies Config color overrides on top of the theme-derived tones.
func (c *core) palette(primary, background color.Color) paint.Palette {
	pal := paint.Derive(primary, background)
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cfg.IndicatorColor != nil {
		pal.Indicator = c.cfg.IndicatorColor
		pal.Stop = c.cfg.IndicatorColor
	}
	if c.cfg.TrackColor != nil {
		pal.Track = c.cfg.TrackColor
	}
	if c.cfg.BufferColor != nil {
		pal.Buffer = c.cfg.BufferColor
	}
	return pal
}

func (c *core) currentValue() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.value
}

func (c *core) displayedValue() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.drawn
}

func (c *core) currentBuffer() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.buffer
}

func (c *core) indeterminate() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.indet
}

func (c *core) currentShape() Shape {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.shape
}

func (c *core) currentDiameter() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.diameter
}
