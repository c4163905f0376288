package renderbuf

import (
	"image"
	"math"

	"github.com/disintegration/imaging"

	"github.com/gogpu/renderbuf/internal/blend"
	rbimage "github.com/gogpu/renderbuf/internal/image"
)

// sampler returns the straight-alpha color of a source at (x, y) in source
// pixel space.
type sampler func(x, y float64) blend.Source

// opaqueWhite leaves sampled colors unchanged when used as a tint.
var opaqueWhite = blend.Source{R: 1, G: 1, B: 1, A: 1}

// DrawImage maps img onto the user-space rectangle dst and composites it.
// Samples outside img are transparent.
func (rb *RenderBuffer) DrawImage(img image.Image, dst Rect, m Matrix) {
	rb.drawImage(img, dst, opaqueWhite, m)
}

// DrawImageTinted is DrawImage with every sample multiplied by tint.
func (rb *RenderBuffer) DrawImageTinted(img image.Image, dst Rect, tint RGBA, m Matrix) {
	rb.drawImage(img, dst, tint.source(), m)
}

func (rb *RenderBuffer) drawImage(img image.Image, dst Rect, tint blend.Source, m Matrix) {
	if img == nil || dst.Empty() || tint.A <= 0 {
		return
	}
	src := toNRGBA(img)
	sw, sh := src.Rect.Dx(), src.Rect.Dy()
	if sw == 0 || sh == 0 {
		return
	}

	full := m.Translate(dst.X, dst.Y).Scale(dst.W/float64(sw), dst.H/float64(sh))
	mode := rb.opts.interpolation
	rb.blit(sw, sh, full, func(x, y float64) blend.Source {
		return rbimage.SampleNRGBA(src, x, y, mode)
	}, tint)
}

// toNRGBA returns img as an *image.NRGBA with its origin at (0, 0),
// copying only when needed.
func toNRGBA(img image.Image) *image.NRGBA {
	if n, ok := img.(*image.NRGBA); ok && n.Rect.Min == (image.Point{}) {
		return n
	}
	if pm, ok := img.(*Pixmap); ok {
		return pm.ToImage()
	}
	return imaging.Clone(img)
}

// blit composites a sw×sh source placed by m. Each destination pixel inside
// the transformed source bounds is mapped back through the inverse of m at
// its centre and sampled.
func (rb *RenderBuffer) blit(sw, sh int, m Matrix, sample sampler, tint blend.Source) {
	inv, ok := m.Invert()
	if !ok {
		Logger().Warn("renderbuf: singular transform, blit skipped", "matrix", m)
		return
	}

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, c := range (Rect{W: float64(sw), H: float64(sh)}).Corners() {
		d := m.TransformPoint(c)
		if math.IsNaN(d.X) || math.IsNaN(d.Y) {
			return
		}
		minX, maxX = min(minX, d.X), max(maxX, d.X)
		minY, maxY = min(minY, d.Y), max(maxY, d.Y)
	}

	x0 := int(max(math.Floor(minX), 0))
	y0 := int(max(math.Floor(minY), 0))
	x1 := int(min(math.Ceil(maxX), float64(rb.Width())))
	y1 := int(min(math.Ceil(maxY), float64(rb.Height())))
	if x0 >= x1 || y0 >= y1 {
		return
	}

	pm := rb.pm
	rb.forEachBandIn(y0, y1, func(b0, b1 int) {
		for y := b0; y < b1; y++ {
			row := pm.row(y)
			for x := x0; x < x1; x++ {
				s := inv.TransformPoint(Point{X: float64(x) + 0.5, Y: float64(y) + 0.5})
				c := sample(s.X, s.Y)
				if c.A <= 0 {
					continue
				}
				blend.Over(row[4*x:4*x+4], c.Tint(tint), 1)
			}
		}
	})
	rb.Touch()
}
