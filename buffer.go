package renderbuf

import (
	"image"

	"github.com/gogpu/renderbuf/internal/parallel"
	"github.com/gogpu/renderbuf/internal/raster"
)

// RenderBuffer is a software render target: a Pixmap plus the state needed
// to draw into it. It implements Surface.
//
// The zero value is not usable; create buffers with New, Load or one of the
// decoding constructors. A RenderBuffer is not safe for concurrent use.
type RenderBuffer struct {
	pm   *Pixmap
	opts options

	ras *raster.Rasterizer

	// generation increases on every mutation.
	generation uint64
}

// New creates a transparent buffer of the given size.
func New(width, height int, opts ...Option) *RenderBuffer {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	pm := o.pixmap
	if pm == nil {
		pm = NewPixmap(width, height)
	}
	o.pixmap = nil

	Logger().Debug("renderbuf: new buffer",
		"width", pm.Width(), "height", pm.Height(),
		"parallelism", o.parallelism, "interpolation", o.interpolation)

	return &RenderBuffer{
		pm:   pm,
		opts: o,
		ras:  raster.NewRasterizer(pm.Width(), pm.Height()),
	}
}

// newFromPixmap wraps a decoded pixmap.
func newFromPixmap(pm *Pixmap, opts []Option) *RenderBuffer {
	return New(0, 0, append(opts, WithPixmap(pm))...)
}

// Width returns the buffer width in pixels.
func (rb *RenderBuffer) Width() int { return rb.pm.Width() }

// Height returns the buffer height in pixels.
func (rb *RenderBuffer) Height() int { return rb.pm.Height() }

// Size returns the buffer dimensions.
func (rb *RenderBuffer) Size() (width, height int) {
	return rb.pm.Width(), rb.pm.Height()
}

// Pixmap returns the underlying pixel store. Writing to it directly does
// not advance Generation; call Touch afterwards.
func (rb *RenderBuffer) Pixmap() *Pixmap { return rb.pm }

// Generation returns a counter that changes whenever the buffer is drawn
// into. Exported textures compare it to detect staleness.
func (rb *RenderBuffer) Generation() uint64 { return rb.generation }

// Touch marks the buffer as modified.
func (rb *RenderBuffer) Touch() { rb.generation++ }

// Snapshot returns a copy of the raw RGBA bytes.
func (rb *RenderBuffer) Snapshot() []byte {
	return append([]byte(nil), rb.pm.Data()...)
}

// Image returns a copy of the buffer as an image.NRGBA.
func (rb *RenderBuffer) Image() *image.NRGBA {
	return rb.pm.ToImage()
}

// GetPixel returns the color at (x, y), or Transparent out of range.
func (rb *RenderBuffer) GetPixel(x, y int) RGBA {
	return rb.pm.GetPixel(x, y)
}

// SetPixel sets the color at (x, y). Out-of-range coordinates are ignored.
func (rb *RenderBuffer) SetPixel(x, y int, c RGBA) {
	rb.pm.SetPixel(x, y, c)
	rb.Touch()
}

// Clear fills every pixel with c.
func (rb *RenderBuffer) Clear(c RGBA) {
	px := c.bytes()
	rb.forEachBand(func(y0, y1 int) {
		rb.pm.clearRows(y0, y1, px)
	})
	rb.Touch()
}

// LineCap returns the cap used by DrawLine.
func (rb *RenderBuffer) LineCap() LineCap { return rb.opts.lineCap }

// SetLineCap sets the cap used by DrawLine.
func (rb *RenderBuffer) SetLineCap(c LineCap) { rb.opts.lineCap = c }

// Interpolation returns the image sampling mode.
func (rb *RenderBuffer) Interpolation() Interpolation { return rb.opts.interpolation }

// SetInterpolation sets the image sampling mode.
func (rb *RenderBuffer) SetInterpolation(mode Interpolation) { rb.opts.interpolation = mode }

// Parallelism returns the configured number of row bands.
func (rb *RenderBuffer) Parallelism() int { return rb.opts.parallelism }

// forEachBand runs fn over disjoint row bands covering the buffer.
func (rb *RenderBuffer) forEachBand(fn func(y0, y1 int)) {
	rb.forEachBandIn(0, rb.Height(), fn)
}

// forEachBandIn runs fn over disjoint row bands covering [yMin, yMax).
func (rb *RenderBuffer) forEachBandIn(yMin, yMax int, fn func(y0, y1 int)) {
	if yMax <= yMin {
		return
	}
	if rb.opts.parallelism <= 1 {
		fn(yMin, yMax)
		return
	}
	parallel.ForEachBand(yMax-yMin, rb.opts.parallelism, func(y0, y1 int) {
		fn(yMin+y0, yMin+y1)
	})
}
