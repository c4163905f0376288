// Package path builds polygon outlines from lines and Bézier curves.
package path

import "math"

// Point represents a 2D point (internal copy to avoid import cycle).
type Point struct {
	X, Y float64
}

// PathElement represents an element in a path.
type PathElement interface {
	isPathElement()
}

// MoveTo starts a new subpath.
type MoveTo struct{ Point Point }

func (MoveTo) isPathElement() {}

// LineTo draws a line.
type LineTo struct{ Point Point }

func (LineTo) isPathElement() {}

// QuadTo draws a quadratic curve.
type QuadTo struct{ Control, Point Point }

func (QuadTo) isPathElement() {}

// CubicTo draws a cubic curve.
type CubicTo struct{ Control1, Control2, Point Point }

func (CubicTo) isPathElement() {}

// Close closes the current subpath.
type Close struct{}

func (Close) isPathElement() {}

// Path accumulates path elements. The zero value is an empty path.
type Path struct {
	elements []PathElement
	start    Point
	current  Point
	open     bool
}

// MoveTo starts a new subpath at (x, y).
func (p *Path) MoveTo(x, y float64) {
	p.start = Point{x, y}
	p.current = p.start
	p.open = true
	p.elements = append(p.elements, MoveTo{p.start})
}

// LineTo adds a line to (x, y). Without a current point it acts as MoveTo.
func (p *Path) LineTo(x, y float64) {
	if !p.open {
		p.MoveTo(x, y)
		return
	}
	p.current = Point{x, y}
	p.elements = append(p.elements, LineTo{p.current})
}

// QuadTo adds a quadratic Bézier curve.
func (p *Path) QuadTo(cx, cy, x, y float64) {
	if !p.open {
		p.MoveTo(cx, cy)
	}
	p.current = Point{x, y}
	p.elements = append(p.elements, QuadTo{Point{cx, cy}, p.current})
}

// CubicTo adds a cubic Bézier curve.
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	if !p.open {
		p.MoveTo(c1x, c1y)
	}
	p.current = Point{x, y}
	p.elements = append(p.elements, CubicTo{Point{c1x, c1y}, Point{c2x, c2y}, p.current})
}

// Close closes the current subpath.
func (p *Path) Close() {
	if !p.open {
		return
	}
	p.elements = append(p.elements, Close{})
	p.current = p.start
	p.open = false
}

// Elements returns the recorded elements.
func (p *Path) Elements() []PathElement { return p.elements }

// IsEmpty reports whether the path has no elements.
func (p *Path) IsEmpty() bool { return len(p.elements) == 0 }

// Reset clears the path for reuse.
func (p *Path) Reset() {
	p.elements = p.elements[:0]
	p.open = false
}

// Transform maps every point of the path through fn in place. Affine maps
// keep Bézier curves exact, so transform before flattening to get the
// tolerance in device space.
func (p *Path) Transform(fn func(Point) Point) {
	for i, e := range p.elements {
		switch e := e.(type) {
		case MoveTo:
			p.elements[i] = MoveTo{fn(e.Point)}
		case LineTo:
			p.elements[i] = LineTo{fn(e.Point)}
		case QuadTo:
			p.elements[i] = QuadTo{fn(e.Control), fn(e.Point)}
		case CubicTo:
			p.elements[i] = CubicTo{fn(e.Control1), fn(e.Control2), fn(e.Point)}
		}
	}
	p.start = fn(p.start)
	p.current = fn(p.current)
}

// kappa is the cubic control distance approximating a quarter circle.
const kappa = 0.5522847498 // 4*(sqrt(2)-1)/3

// Ellipse adds a closed ellipse centred on (cx, cy) with radii rx, ry as four
// cubic arcs, starting at 3 o'clock and running clockwise in y-down space.
func (p *Path) Ellipse(cx, cy, rx, ry float64) {
	kx, ky := rx*kappa, ry*kappa
	p.MoveTo(cx+rx, cy)
	p.CubicTo(cx+rx, cy+ky, cx+kx, cy+ry, cx, cy+ry)
	p.CubicTo(cx-kx, cy+ry, cx-rx, cy+ky, cx-rx, cy)
	p.CubicTo(cx-rx, cy-ky, cx-kx, cy-ry, cx, cy-ry)
	p.CubicTo(cx+kx, cy-ry, cx+rx, cy-ky, cx+rx, cy)
	p.Close()
}

// Arc adds a circular arc of radius r around (cx, cy) from angle a0 to a1
// (radians, clockwise in y-down space when a1 > a0). The arc is connected to
// the current point with a line, or starts a new subpath.
func (p *Path) Arc(cx, cy, r, a0, a1 float64) {
	sx, sy := cx+r*math.Cos(a0), cy+r*math.Sin(a0)
	if p.open {
		p.LineTo(sx, sy)
	} else {
		p.MoveTo(sx, sy)
	}
	sweep := a1 - a0
	if sweep == 0 || r == 0 {
		return
	}
	n := int(math.Ceil(math.Abs(sweep) / (math.Pi / 2)))
	step := sweep / float64(n)
	// Control distance for a circular arc of angle step.
	k := 4.0 / 3.0 * math.Tan(step/4)
	a := a0
	for range n {
		b := a + step
		cosA, sinA := math.Cos(a), math.Sin(a)
		cosB, sinB := math.Cos(b), math.Sin(b)
		p.CubicTo(
			cx+r*(cosA-k*sinA), cy+r*(sinA+k*cosA),
			cx+r*(cosB+k*sinB), cy+r*(sinB-k*cosB),
			cx+r*cosB, cy+r*sinB,
		)
		a = b
	}
}

// Helper methods for Point

func (p Point) Lerp(q Point, t float64) Point {
	return Point{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
	}
}

func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

func (p Point) Mul(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

func (p Point) Length() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y)
}

func (p Point) Distance(q Point) float64 {
	return p.Sub(q).Length()
}
