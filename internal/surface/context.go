package surface

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"

	"github.com/crestui/crest/internal/geom"
)

// miter limit handed to SetStroke; round joins never consult it.
const miterLimit = 4 << 6

// Context owns one widget's frame buffer in device pixels while exposing
// drawing operations in logical pixels.
type Context struct {
	img      *image.RGBA
	pxW, pxH int
	logicalW float32
	logicalH float32
	scale    float32

	scanner *rasterx.ScannerGV
	filler  *rasterx.Filler
	stroker *rasterx.Stroker
}

// NewContext returns a context sized for the given device and logical
// dimensions.
func NewContext(pxW, pxH int, logicalW, logicalH float32) *Context {
	c := &Context{}
	c.Sync(pxW, pxH, logicalW, logicalH)
	return c
}

// Sync matches the buffer to the given dimensions, reallocating only when
// the device size actually changed. The scale factor is assigned fresh from
// the device/logical ratio on every call, never multiplied onto a previous
// value, so repeated resizes cannot compound it.
func (c *Context) Sync(pxW, pxH int, logicalW, logicalH float32) {
	if pxW < 1 {
		pxW = 1
	}
	if pxH < 1 {
		pxH = 1
	}
	if logicalW <= 0 {
		logicalW = float32(pxW)
	}
	if logicalH <= 0 {
		logicalH = float32(pxH)
	}
	if c.img == nil || pxW != c.pxW || pxH != c.pxH {
		c.pxW, c.pxH = pxW, pxH
		c.img = image.NewRGBA(image.Rect(0, 0, pxW, pxH))
		c.scanner = rasterx.NewScannerGV(pxW, pxH, c.img, c.img.Bounds())
		c.filler = rasterx.NewFiller(pxW, pxH, c.scanner)
		c.stroker = rasterx.NewStroker(pxW, pxH, c.scanner)
	}
	c.logicalW = logicalW
	c.logicalH = logicalH
	c.scale = float32(pxW) / logicalW
}

// Image returns the current frame buffer.
func (c *Context) Image() *image.RGBA {
	return c.img
}

// Scale returns device pixels per logical pixel.
func (c *Context) Scale() float32 {
	return c.scale
}

// Size returns the logical dimensions.
func (c *Context) Size() (w, h float32) {
	return c.logicalW, c.logicalH
}

// Clear resets every pixel to transparent.
func (c *Context) Clear() {
	draw.Draw(c.img, c.img.Bounds(), image.Transparent, image.Point{}, draw.Src)
}

// StrokePolyline strokes the path through pts with round caps and joins.
// Coordinates and width are logical pixels.
func (c *Context) StrokePolyline(pts []geom.Point, width float32, col color.Color) {
	if len(pts) < 2 || width <= 0 {
		return
	}
	c.stroker.SetStroke(c.fx(width), miterLimit,
		rasterx.RoundCap, rasterx.RoundCap, rasterx.RoundGap, rasterx.Round)
	c.stroker.SetColor(col)
	c.stroker.Start(c.point(pts[0]))
	for _, p := range pts[1:] {
		c.stroker.Line(c.point(p))
	}
	c.stroker.Stop(false)
	c.stroker.Draw()
	c.stroker.Clear()
}

// FillDot fills a circle of radius r centered at (cx, cy), logical pixels.
func (c *Context) FillDot(cx, cy, r float32, col color.Color) {
	if r <= 0 {
		return
	}
	c.filler.SetColor(col)
	rasterx.AddCircle(float64(cx*c.scale), float64(cy*c.scale), float64(r*c.scale), c.filler)
	c.filler.Draw()
	c.filler.Clear()
}

func (c *Context) fx(v float32) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(float64(v*c.scale) * 64))
}

func (c *Context) point(p geom.Point) fixed.Point26_6 {
	return fixed.Point26_6{X: c.fx(p.X), Y: c.fx(p.Y)}
}
