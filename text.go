package renderbuf

import (
	"github.com/gogpu/renderbuf/internal/blend"
	rbimage "github.com/gogpu/renderbuf/internal/image"
	"github.com/gogpu/renderbuf/text"
)

// DrawText paints glyphs laid out by a text.Drawer, with the layout origin
// placed at origin on the baseline. Glyph masks are tinted by c and
// transformed like an image blit: whole-pixel translations copy coverage
// exactly, anything else samples it bilinearly.
func (rb *RenderBuffer) DrawText(glyphs []text.Glyph, origin Point, c RGBA, m Matrix) {
	tint := c.source()
	if tint.A <= 0 {
		return
	}
	for _, g := range glyphs {
		if g.Mask.Empty() {
			continue
		}
		mask := g.Mask.Mask
		b := mask.Rect
		gm := m.Translate(origin.X+g.X+float64(g.Mask.Left), origin.Y+g.Y+float64(g.Mask.Top))

		mode := rbimage.InterpBilinear
		if gm.isIntegerTranslation() {
			mode = rbimage.InterpNearest
		}
		rb.blit(b.Dx(), b.Dy(), gm, func(x, y float64) blend.Source {
			return blend.Source{R: 1, G: 1, B: 1, A: rbimage.SampleAlpha(mask, x, y, mode)}
		}, tint)
	}
}

// DrawString lays out s with d and paints it at origin. It returns the pen
// position after the last glyph.
//
// Example:
//
//	d := &text.Drawer{Cache: cache, Face: text.GoRegular(), Size: 24}
//	pen := rb.DrawString(d, "Hello", renderbuf.Pt(10, 40), renderbuf.Black, renderbuf.Identity())
func (rb *RenderBuffer) DrawString(d *text.Drawer, s string, origin Point, c RGBA, m Matrix) Point {
	glyphs, advance := d.Layout(s)
	rb.DrawText(glyphs, origin, c, m)
	return Point{X: origin.X + advance, Y: origin.Y}
}

// MeasureString returns the advance width and line height of s.
func MeasureString(d *text.Drawer, s string) (w, h float64) {
	return d.Measure(s), d.Metrics().Height()
}
