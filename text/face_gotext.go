package text

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/go-text/typesetting/font"
	ot "github.com/go-text/typesetting/font/opentype"
)

// goTextFace implements Face using github.com/go-text/typesetting.
type goTextFace struct {
	id   uint64
	upem float64

	// font.Face is not safe for concurrent use.
	mu   sync.Mutex
	face *font.Face
}

// ParseGoTextFont parses TrueType or OpenType data with
// github.com/go-text/typesetting. Kerning is not applied by this backend;
// use a shaper upstream when it matters.
func ParseGoTextFont(data []byte) (Face, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}
	upem := float64(face.Upem())
	if upem == 0 {
		upem = 1000
	}
	slogger().Debug("text: parsed font", "backend", "go-text", "upem", upem)
	return &goTextFace{id: newFaceID(), upem: upem, face: face}, nil
}

func (f *goTextFace) ID() uint64 { return f.id }

func (f *goTextFace) scale(size float64) float64 { return size / f.upem }

func (f *goTextFace) GlyphIndex(r rune) (GlyphID, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	gid, ok := f.face.NominalGlyph(r)
	if !ok || gid == 0 {
		return 0, false
	}
	return GlyphID(gid), true
}

func (f *goTextFace) Advance(gid GlyphID, size float64) float64 {
	f.mu.Lock()
	defer f.mu.Unlock()

	return float64(f.face.HorizontalAdvance(font.GID(gid))) * f.scale(size)
}

func (f *goTextFace) Kern(GlyphID, GlyphID, float64) float64 { return 0 }

func (f *goTextFace) Outline(gid GlyphID, size float64) ([]Segment, error) {
	f.mu.Lock()
	data := f.face.GlyphData(font.GID(gid))
	f.mu.Unlock()

	outline, ok := data.(font.GlyphOutline)
	if !ok {
		return nil, ErrNoOutline
	}

	// Font units, y up -> pixels, y down.
	s := f.scale(size)
	out := make([]Segment, len(outline.Segments))
	for i, seg := range outline.Segments {
		out[i].Op = segmentOp(seg.Op)
		for j, p := range seg.Args {
			out[i].Args[j] = Point{X: float64(p.X) * s, Y: -float64(p.Y) * s}
		}
	}
	return out, nil
}

func (f *goTextFace) Metrics(size float64) Metrics {
	f.mu.Lock()
	ext, ok := f.face.FontHExtents()
	f.mu.Unlock()
	if !ok {
		return Metrics{Ascent: size, Descent: 0}
	}
	s := f.scale(size)
	return Metrics{
		Ascent:  float64(ext.Ascender) * s,
		Descent: -float64(ext.Descender) * s,
		LineGap: float64(ext.LineGap) * s,
	}
}

func segmentOp(op ot.SegmentOp) SegmentOp {
	switch op {
	case ot.SegmentOpLineTo:
		return SegmentLineTo
	case ot.SegmentOpQuadTo:
		return SegmentQuadTo
	case ot.SegmentOpCubeTo:
		return SegmentCubeTo
	default:
		return SegmentMoveTo
	}
}
