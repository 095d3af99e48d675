package progress

import (
	"image"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"

	"github.com/crestui/crest/internal/anim"
	"github.com/crestui/crest/internal/paint"
	"github.com/crestui/crest/internal/surface"
)

// Linear is a horizontal progress bar. It stretches to the width its layout
// grants and keeps a minimum height of the stroke plus the wavy margin.
type Linear struct {
	widget.BaseWidget

	// OnCompleted fires once when the displayed value arrives at max.
	// Dropping below max re-arms it.
	OnCompleted func()

	core *core
}

// NewLinear returns a flat determinate bar at value 0 of max 1.
func NewLinear() *Linear {
	return NewLinearWithConfig(Config{})
}

// NewLinearWithConfig returns a bar with the given initial state.
func NewLinearWithConfig(cfg Config) *Linear {
	return newLinear(cfg, anim.Frames())
}

func newLinear(cfg Config, sched anim.Scheduler) *Linear {
	l := &Linear{}
	l.core = newCore(cfg, anim.NewCoordinator(sched), false)
	l.core.onComplete = func() {
		if l.OnCompleted != nil {
			l.OnCompleted()
		}
	}
	l.ExtendBaseWidget(l)
	l.core.setRepaint(l.Refresh)
	return l
}

// SetValue moves the bar toward v, clamped to [0, max]. The change animates
// unless the configured transition duration is negative.
func (l *Linear) SetValue(v float64) { l.core.setValue(v) }

// Value returns the logical value, which the displayed bar may still be
// animating toward.
func (l *Linear) Value() float64 { return l.core.currentValue() }

// SetBuffer sets the secondary fill drawn between the value and the track,
// clamped to [0, max]. A buffer at or below the value is not drawn.
func (l *Linear) SetBuffer(v float64) { l.core.setBuffer(v) }

// Buffer returns the buffered value.
func (l *Linear) Buffer() float64 { return l.core.currentBuffer() }

// SetIndeterminate switches the cycling two-bar presentation on or off.
// Turning it off shows the logical value again.
func (l *Linear) SetIndeterminate(on bool) { l.core.setIndeterminate(on) }

// Indeterminate reports whether the bar is in indeterminate mode.
func (l *Linear) Indeterminate() bool { return l.core.indeterminate() }

// SetShape switches between the flat and wavy indicator. Wave phase is
// preserved across toggles.
func (l *Linear) SetShape(s Shape) { l.core.setShape(s) }

// Shape returns the current indicator shape.
func (l *Linear) Shape() Shape { return l.core.currentShape() }

// SetThickness changes the stroke width.
func (l *Linear) SetThickness(t Thickness) { l.core.setThickness(t) }

// CreateRenderer is an internal detail of the widget API.
func (l *Linear) CreateRenderer() fyne.WidgetRenderer {
	r := &barRenderer{bar: l}
	r.raster = canvas.NewRaster(r.generate)
	r.watch = surface.NewWatcher(func(float32) {
		fyne.Do(func() {
			if r.active() {
				r.raster.Refresh()
			}
		})
	})
	return r
}

type barRenderer struct {
	rasterSurface
	bar    *Linear
	raster *canvas.Raster
	watch  *surface.Watcher
}

func (r *barRenderer) Layout(size fyne.Size) {
	r.watch.Observe(size.Width)
	r.raster.Move(fyne.NewPos(0, 0))
	r.raster.Resize(size)
}

func (r *barRenderer) MinSize() fyne.Size {
	f := r.bar.core.snapshot()
	w, h := surface.LinearSize(minBarLength, f.Stroke, f.Amplitude)
	return fyne.NewSize(w, h)
}

func (r *barRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.raster}
}

func (r *barRenderer) Refresh() {
	r.raster.Refresh()
}

func (r *barRenderer) Destroy() {
	r.stop()
	r.watch.Stop()
	r.bar.core.destroy()
}

// generate paints one frame at device resolution. A failed frame keeps the
// previous image on screen.
func (r *barRenderer) generate(pxW, pxH int) (img image.Image) {
	defer func() {
		if rec := recover(); rec != nil {
			log.Printf("[PROGRESS] linear frame dropped: %v", rec)
			img = r.retained()
		}
	}()

	size := r.raster.Size()
	if pxW < 1 || pxH < 1 || size.Width <= 0 || size.Height <= 0 {
		r.armRetry(r.raster.Refresh)
		return blankImage
	}

	ctx := r.ensure(pxW, pxH, size)
	paint.DrawLinear(ctx, r.bar.core.snapshot(), widgetPalette(r.bar.core, r.bar.Theme()))
	return r.keep(ctx.Image())
}
