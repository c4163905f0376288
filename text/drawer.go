package text

import (
	"golang.org/x/text/unicode/norm"
)

// Glyph is a positioned glyph produced by Drawer.Layout.
type Glyph struct {
	// Rune is the code point that produced the glyph.
	Rune rune

	// Mask is the rasterized glyph. Mask.Empty reports glyphs without ink.
	Mask *GlyphMask

	// X and Y are the pen position relative to the layout origin on the
	// baseline. Y is always 0 for single-line layouts.
	X, Y float64
}

// Drawer lays out single-line text with one face at one size.
//
// Cache may be nil, in which case every glyph is rasterized on demand.
// A Drawer holds no mutable state and may be shared between goroutines.
type Drawer struct {
	Cache *GlyphCache
	Face  Face
	Size  float64
}

// Layout positions the glyphs of s along the baseline starting at the
// origin and returns them with the total advance. The string is NFC
// normalized first, so composed and decomposed inputs render alike.
// Kerning from the face is applied between neighbouring glyphs.
func (d *Drawer) Layout(s string) ([]Glyph, float64) {
	if d.Face == nil || s == "" || !(d.Size > 0) {
		return nil, 0
	}
	s = norm.NFC.String(s)

	glyphs := make([]Glyph, 0, len(s))
	var pen float64
	prev := GlyphID(0)
	hasPrev := false

	for _, r := range s {
		m := d.glyph(r)
		if hasPrev {
			pen += d.Face.Kern(prev, m.GID, d.Size)
		}
		glyphs = append(glyphs, Glyph{Rune: r, Mask: m, X: pen})
		pen += m.Advance
		prev, hasPrev = m.GID, true
	}
	return glyphs, pen
}

// Measure returns the advance of s without keeping the layout.
func (d *Drawer) Measure(s string) float64 {
	_, adv := d.Layout(s)
	return adv
}

// Metrics returns the face's line metrics at the drawer's size.
func (d *Drawer) Metrics() Metrics {
	if d.Face == nil {
		return Metrics{}
	}
	return d.Face.Metrics(d.Size)
}

func (d *Drawer) glyph(r rune) *GlyphMask {
	if d.Cache != nil {
		return d.Cache.Glyph(d.Face, d.Size, r)
	}
	return RasterizeGlyph(d.Face, d.Size, r)
}
