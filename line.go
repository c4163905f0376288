package renderbuf

import (
	"math"

	"github.com/gogpu/renderbuf/internal/path"
)

// LineCap specifies the shape of line endpoints.
type LineCap int

const (
	// LineCapButt ends the line exactly at its endpoints.
	LineCapButt LineCap = iota
	// LineCapRound adds a semicircle of diameter thickness at each end.
	LineCapRound
	// LineCapSquare extends the line by half its thickness at each end.
	LineCapSquare
)

// String returns the line cap name.
func (c LineCap) String() string {
	switch c {
	case LineCapButt:
		return "Butt"
	case LineCapRound:
		return "Round"
	case LineCapSquare:
		return "Square"
	default:
		return "Unknown"
	}
}

// DrawLine draws the segment p0-p1 with the given thickness in user units
// and the buffer's line cap. A non-positive thickness draws nothing, as
// does a zero-length segment with butt caps.
func (rb *RenderBuffer) DrawLine(p0, p1 Point, thickness float64, c RGBA, m Matrix) {
	if !(thickness > 0) || c.A <= 0 {
		return
	}
	half := thickness / 2
	d := p1.Sub(p0)
	length := d.Length()

	switch rb.opts.lineCap {
	case LineCapRound:
		var p path.Path
		if length == 0 {
			p.Ellipse(p0.X, p0.Y, half, half)
		} else {
			a := math.Atan2(d.Y, d.X)
			p.Arc(p1.X, p1.Y, half, a-math.Pi/2, a+math.Pi/2)
			p.Arc(p0.X, p0.Y, half, a+math.Pi/2, a+3*math.Pi/2)
			p.Close()
		}
		rb.fillPath(&p, c, m, FillRuleNonZero)

	case LineCapSquare:
		dir := Point{X: 1}
		if length > 0 {
			dir = d.Mul(1 / length)
		}
		ext := dir.Mul(half)
		rb.DrawPolygon(lineQuad(p0.Sub(ext), p1.Add(ext), dir, half), c, m, FillRuleNonZero)

	default:
		if length == 0 {
			return
		}
		rb.DrawPolygon(lineQuad(p0, p1, d.Mul(1/length), half), c, m, FillRuleNonZero)
	}
}

// lineQuad returns the rectangle of half-width half around a-b, where dir
// is the unit direction from a to b.
func lineQuad(a, b, dir Point, half float64) []Point {
	n := dir.Perp().Mul(half)
	return []Point{a.Add(n), b.Add(n), b.Sub(n), a.Sub(n)}
}

// DrawPolyline draws connected segments through pts. Joins are not
// mitred; round caps give round joins.
func (rb *RenderBuffer) DrawPolyline(pts []Point, thickness float64, c RGBA, m Matrix) {
	for i := 1; i < len(pts); i++ {
		rb.DrawLine(pts[i-1], pts[i], thickness, c, m)
	}
}
