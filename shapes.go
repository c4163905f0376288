package renderbuf

import (
	"math"

	"github.com/gogpu/renderbuf/internal/path"
)

// Circle returns the bounding rectangle of a circle, for use with Ellipse
// and FillEllipse.
func Circle(cx, cy, radius float64) Rect {
	return Rect{X: cx - radius, Y: cy - radius, W: 2 * radius, H: 2 * radius}
}

// Square returns the rectangle of a square with top-left corner (x, y).
func Square(x, y, size float64) Rect {
	return Rect{X: x, Y: y, W: size, H: size}
}

// Rectangle returns the corners of r as a polygon.
func Rectangle(r Rect) []Point {
	c := r.Corners()
	return c[:]
}

// Ellipse returns a polygon approximating the ellipse inscribed in r to
// within tolerance user units. A non-positive tolerance uses the default.
func Ellipse(r Rect, tolerance float64) []Point {
	var p path.Path
	ellipsePath(&p, r)
	contours := path.Flatten(p.Elements(), tolerance)
	if len(contours) == 0 {
		return nil
	}
	pts := make([]Point, len(contours[0]))
	for i, q := range contours[0] {
		pts[i] = Point(q)
	}
	return pts
}

// RegularPolygon returns an n-sided regular polygon of circumradius r
// centred on (cx, cy), its first vertex at angle rotation (radians).
func RegularPolygon(n int, cx, cy, r, rotation float64) []Point {
	if n < 3 {
		return nil
	}
	pts := make([]Point, n)
	step := 2 * math.Pi / float64(n)
	for i := range pts {
		sin, cos := math.Sincos(rotation + step*float64(i))
		pts[i] = Point{X: cx + r*cos, Y: cy + r*sin}
	}
	return pts
}

func ellipsePath(p *path.Path, r Rect) {
	if r.Empty() {
		return
	}
	c := r.Center()
	p.Ellipse(c.X, c.Y, r.W/2, r.H/2)
}

// FillEllipse fills the ellipse inscribed in r. The outline is flattened
// after transformation, so it stays smooth under any scale.
func (rb *RenderBuffer) FillEllipse(r Rect, c RGBA, m Matrix) {
	var p path.Path
	ellipsePath(&p, r)
	rb.fillPath(&p, c, m, FillRuleNonZero)
}

// FillRect fills the rectangle r.
func (rb *RenderBuffer) FillRect(r Rect, c RGBA, m Matrix) {
	if r.Empty() {
		return
	}
	rb.DrawPolygon(Rectangle(r), c, m, FillRuleNonZero)
}

// StrokeRect draws the outline of r with the given border width, centred
// on the rectangle's edges.
func (rb *RenderBuffer) StrokeRect(r Rect, width float64, c RGBA, m Matrix) {
	if r.Empty() || !(width > 0) {
		return
	}
	h := width / 2
	outer := Rect{X: r.X - h, Y: r.Y - h, W: r.W + width, H: r.H + width}
	inner := Rect{X: r.X + h, Y: r.Y + h, W: r.W - width, H: r.H - width}
	polys := [][]Point{Rectangle(outer)}
	if !inner.Empty() {
		polys = append(polys, Rectangle(inner))
	}
	rb.DrawPolygons(polys, c, m, FillRuleEvenOdd)
}
