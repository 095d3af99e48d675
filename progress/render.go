package progress

import (
	"image"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"github.com/crestui/crest/internal/paint"
	"github.com/crestui/crest/internal/surface"
)

// retryDelay paces redraw attempts while the widget has no usable size yet,
// typically the first frames before layout settles.
const retryDelay = 50 * time.Millisecond

// blankImage is the 1x1 transparent fallback returned when nothing can be
// drawn. Shared because it is never written to.
var blankImage = image.NewRGBA(image.Rect(0, 0, 1, 1))

// rasterSurface is the render-side plumbing both widget renderers embed:
// the reusable draw context, the last good frame for panic recovery, and
// the zero-size retry timer. Its mutex covers handoff between the raster
// goroutine and UI-side teardown.
type rasterSurface struct {
	mu      sync.Mutex
	ctx     *surface.Context
	last    image.Image
	retry   *time.Timer
	stopped bool
}

// ensure returns the draw context resized for this frame, allocating on
// first use.
func (s *rasterSurface) ensure(pxW, pxH int, logical fyne.Size) *surface.Context {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ctx == nil {
		s.ctx = surface.NewContext(pxW, pxH, logical.Width, logical.Height)
	} else {
		s.ctx.Sync(pxW, pxH, logical.Width, logical.Height)
	}
	return s.ctx
}

func (s *rasterSurface) keep(img image.Image) image.Image {
	s.mu.Lock()
	s.last = img
	s.mu.Unlock()
	return img
}

// retained returns the previous good frame, or the blank fallback when no
// frame has succeeded yet.
func (s *rasterSurface) retained() image.Image {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.last != nil {
		return s.last
	}
	return blankImage
}

// armRetry schedules one deferred refresh. At most one retry is pending at
// a time and none once the renderer stops.
func (s *rasterSurface) armRetry(refresh func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped || s.retry != nil {
		return
	}
	s.retry = time.AfterFunc(retryDelay, func() {
		s.mu.Lock()
		s.retry = nil
		stopped := s.stopped
		s.mu.Unlock()
		if !stopped {
			fyne.Do(refresh)
		}
	})
}

func (s *rasterSurface) active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return !s.stopped
}

func (s *rasterSurface) stop() {
	s.mu.Lock()
	s.stopped = true
	t := s.retry
	s.retry = nil
	s.mu.Unlock()
	if t != nil {
		t.Stop()
	}
}

// widgetPalette resolves frame colors from the widget's effective theme,
// with Config overrides applied by the core.
func widgetPalette(c *core, th fyne.Theme) paint.Palette {
	v := fyne.CurrentApp().Settings().ThemeVariant()
	return c.palette(th.Color(theme.ColorNamePrimary, v), th.Color(theme.ColorNameBackground, v))
}
