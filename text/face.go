package text

import (
	"sync"
	"sync/atomic"

	"golang.org/x/image/font/gofont/goregular"
)

// GlyphID is a glyph index within a font.
type GlyphID uint32

// Point is a position in pixel units, y increasing downward.
type Point struct {
	X, Y float64
}

// SegmentOp is the drawing operation of an outline segment.
type SegmentOp uint8

const (
	// SegmentMoveTo starts a new contour at Args[0].
	SegmentMoveTo SegmentOp = iota
	// SegmentLineTo draws a line to Args[0].
	SegmentLineTo
	// SegmentQuadTo draws a quadratic curve through Args[0] to Args[1].
	SegmentQuadTo
	// SegmentCubeTo draws a cubic curve through Args[0], Args[1] to Args[2].
	SegmentCubeTo
)

// Segment is one element of a glyph outline.
type Segment struct {
	Op   SegmentOp
	Args [3]Point
}

// Metrics holds line metrics at a given size, in pixels.
type Metrics struct {
	// Ascent is the distance from the baseline to the top of the line.
	Ascent float64
	// Descent is the distance from the baseline to the bottom of the line
	// (positive).
	Descent float64
	// LineGap is the recommended gap between lines.
	LineGap float64
}

// Height returns the recommended line height.
func (m Metrics) Height() float64 {
	return m.Ascent + m.Descent + m.LineGap
}

// Face is a parsed font able to produce glyph outlines at any size.
// Sizes are in pixels per em. Implementations must be safe for concurrent
// use.
type Face interface {
	// ID identifies the face in cache keys. Unique within the process.
	ID() uint64

	// GlyphIndex maps a rune to a glyph. ok is false when the font has no
	// glyph for r.
	GlyphIndex(r rune) (gid GlyphID, ok bool)

	// Advance returns the horizontal advance of a glyph.
	Advance(gid GlyphID, size float64) float64

	// Kern returns the kerning adjustment between two glyphs, or 0.
	Kern(a, b GlyphID, size float64) float64

	// Outline returns the glyph outline relative to the pen position on
	// the baseline, y increasing downward.
	Outline(gid GlyphID, size float64) ([]Segment, error)

	// Metrics returns line metrics.
	Metrics(size float64) Metrics
}

var nextFaceID atomic.Uint64

func newFaceID() uint64 {
	return nextFaceID.Add(1)
}

var goRegular = sync.OnceValue(func() Face {
	f, err := ParseFont(goregular.TTF)
	if err != nil {
		panic("text: bundled Go Regular font: " + err.Error())
	}
	return f
})

// GoRegular returns the bundled Go Regular face. It is parsed once and
// shared.
func GoRegular() Face {
	return goRegular()
}
