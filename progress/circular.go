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

// Circular is a round progress dial. Its configured diameter sets the
// minimum size; when the layout grants more room the dial grows to fill
// the shorter side, centered.
type Circular struct {
	widget.BaseWidget

	// OnCompleted fires once when the displayed value arrives at max.
	// Dropping below max re-arms it.
	OnCompleted func()

	core *core
}

// NewCircular returns a flat determinate dial at value 0 of max 1.
func NewCircular() *Circular {
	return NewCircularWithConfig(Config{})
}

// NewCircularWithConfig returns a dial with the given initial state.
func NewCircularWithConfig(cfg Config) *Circular {
	return newCircular(cfg, anim.Frames())
}

func newCircular(cfg Config, sched anim.Scheduler) *Circular {
	c := &Circular{}
	c.core = newCore(cfg, anim.NewCoordinator(sched), true)
	c.core.onComplete = func() {
		if c.OnCompleted != nil {
			c.OnCompleted()
		}
	}
	c.ExtendBaseWidget(c)
	c.core.setRepaint(c.Refresh)
	return c
}

// SetValue moves the dial toward v, clamped to [0, max]. The change
// animates unless the configured transition duration is negative.
func (c *Circular) SetValue(v float64) { c.core.setValue(v) }

// Value returns the logical value, which the displayed arc may still be
// animating toward.
func (c *Circular) Value() float64 { return c.core.currentValue() }

// SetIndeterminate switches the spinning expand/contract presentation on
// or off. Turning it off shows the logical value again.
func (c *Circular) SetIndeterminate(on bool) { c.core.setIndeterminate(on) }

// Indeterminate reports whether the dial is in indeterminate mode.
func (c *Circular) Indeterminate() bool { return c.core.indeterminate() }

// SetShape switches between the flat and wavy indicator. Wave phase and
// cycle position are preserved across toggles.
func (c *Circular) SetShape(s Shape) { c.core.setShape(s) }

// Shape returns the current indicator shape.
func (c *Circular) Shape() Shape { return c.core.currentShape() }

// SetThickness changes the stroke width.
func (c *Circular) SetThickness(t Thickness) { c.core.setThickness(t) }

// SetDiameter requests a dial size in logical pixels, clamped to [24, 240].
func (c *Circular) SetDiameter(d float32) { c.core.setDiameter(d) }

// Diameter returns the clamped configured diameter.
func (c *Circular) Diameter() float32 { return c.core.currentDiameter() }

// CreateRenderer is an internal detail of the widget API.
func (c *Circular) CreateRenderer() fyne.WidgetRenderer {
	r := &dialRenderer{dial: c}
	r.raster = canvas.NewRaster(r.generate)
	return r
}

type dialRenderer struct {
	rasterSurface
	dial   *Circular
	raster *canvas.Raster
}

func (r *dialRenderer) Layout(size fyne.Size) {
	r.raster.Move(fyne.NewPos(0, 0))
	r.raster.Resize(size)
}

func (r *dialRenderer) MinSize() fyne.Size {
	f := r.dial.core.snapshot()
	side, _ := surface.CircularSize(r.dial.core.currentDiameter(), f.Amplitude)
	return fyne.NewSize(side, side)
}

func (r *dialRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.raster}
}

func (r *dialRenderer) Refresh() {
	r.raster.Refresh()
}

func (r *dialRenderer) Destroy() {
	r.stop()
	r.dial.core.destroy()
}

// generate paints one frame at device resolution. A failed frame keeps the
// previous image on screen.
func (r *dialRenderer) generate(pxW, pxH int) (img image.Image) {
	defer func() {
		if rec := recover(); rec != nil {
			log.Printf("[PROGRESS] circular frame dropped: %v", rec)
			img = r.retained()
		}
	}()

	size := r.raster.Size()
	if pxW < 1 || pxH < 1 || size.Width <= 0 || size.Height <= 0 {
		r.armRetry(r.raster.Refresh)
		return blankImage
	}

	ctx := r.ensure(pxW, pxH, size)
	paint.DrawCircular(ctx, r.dial.core.snapshot(), widgetPalette(r.dial.core, r.dial.Theme()))
	return r.keep(ctx.Image())
}
