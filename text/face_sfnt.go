package text

import (
	"errors"
	"fmt"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// sfntFace implements Face using golang.org/x/image/font/sfnt.
type sfntFace struct {
	id   uint64
	font *opentype.Font
	name string

	// sfnt.Buffer is scratch space and not safe for concurrent use.
	bufs sync.Pool
}

// ParseFont parses TrueType or OpenType data with golang.org/x/image.
func ParseFont(data []byte) (Face, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}
	face := &sfntFace{
		id:   newFaceID(),
		font: f,
		bufs: sync.Pool{New: func() any { return new(sfnt.Buffer) }},
	}
	if name, err := f.Name(nil, sfnt.NameIDFamily); err == nil {
		face.name = name
	}
	slogger().Debug("text: parsed font", "backend", "sfnt", "family", face.name, "glyphs", f.NumGlyphs())
	return face, nil
}

func (f *sfntFace) ID() uint64 { return f.id }

// Name returns the font family name, if present.
func (f *sfntFace) Name() string { return f.name }

func (f *sfntFace) buffer() *sfnt.Buffer   { return f.bufs.Get().(*sfnt.Buffer) }
func (f *sfntFace) release(b *sfnt.Buffer) { f.bufs.Put(b) }

func (f *sfntFace) GlyphIndex(r rune) (GlyphID, bool) {
	b := f.buffer()
	defer f.release(b)

	idx, err := f.font.GlyphIndex(b, r)
	if err != nil || idx == 0 {
		return 0, false
	}
	return GlyphID(idx), true
}

func (f *sfntFace) Advance(gid GlyphID, size float64) float64 {
	b := f.buffer()
	defer f.release(b)

	adv, err := f.font.GlyphAdvance(b, sfnt.GlyphIndex(gid), toFixed(size), font.HintingNone)
	if err != nil {
		return 0
	}
	return fixedToFloat64(adv)
}

func (f *sfntFace) Kern(a, c GlyphID, size float64) float64 {
	b := f.buffer()
	defer f.release(b)

	k, err := f.font.Kern(b, sfnt.GlyphIndex(a), sfnt.GlyphIndex(c), toFixed(size), font.HintingNone)
	if err != nil {
		return 0
	}
	return fixedToFloat64(k)
}

func (f *sfntFace) Outline(gid GlyphID, size float64) ([]Segment, error) {
	b := f.buffer()
	defer f.release(b)

	segs, err := f.font.LoadGlyph(b, sfnt.GlyphIndex(gid), toFixed(size), nil)
	if err != nil {
		if errors.Is(err, sfnt.ErrColoredGlyph) {
			return nil, ErrNoOutline
		}
		return nil, fmt.Errorf("text: load glyph %d: %w", gid, err)
	}

	// LoadGlyph already uses a y-down coordinate system.
	out := make([]Segment, len(segs))
	for i, s := range segs {
		out[i].Op = SegmentOp(s.Op)
		for j := range s.Args {
			out[i].Args[j] = Point{
				X: fixedToFloat64(s.Args[j].X),
				Y: fixedToFloat64(s.Args[j].Y),
			}
		}
	}
	return out, nil
}

func (f *sfntFace) Metrics(size float64) Metrics {
	b := f.buffer()
	defer f.release(b)

	m, err := f.font.Metrics(b, toFixed(size), font.HintingNone)
	if err != nil {
		return Metrics{}
	}
	ascent := fixedToFloat64(m.Ascent)
	descent := fixedToFloat64(m.Descent)
	return Metrics{
		Ascent:  ascent,
		Descent: descent,
		LineGap: max(0, fixedToFloat64(m.Height)-ascent-descent),
	}
}

// toFixed converts a pixel size to 26.6 fixed point, rounding to nearest.
func toFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v*64 + 0.5)
}

// fixedToFloat64 converts fixed.Int26_6 to float64.
func fixedToFloat64(x fixed.Int26_6) float64 {
	return float64(x) / 64.0
}
