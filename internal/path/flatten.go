package path

import "math"

// Tolerance is the default maximum distance from the curve for flattening,
// in device pixels.
const Tolerance = 0.1

// maxDepth bounds curve subdivision; 2^16 segments per curve is far more
// than any on-screen curve needs.
const maxDepth = 16

// Flatten converts path elements into closed polygons, one per subpath.
// Curves are subdivided until every control point lies within tolerance of
// the chord. Subpaths with fewer than two distinct points are dropped.
func Flatten(elements []PathElement, tolerance float64) [][]Point {
	if !(tolerance > 0) {
		tolerance = Tolerance
	}

	var contours [][]Point
	var points []Point
	var current Point

	flush := func() {
		if len(points) > 1 && points[len(points)-1] == points[0] {
			points = points[:len(points)-1]
		}
		if len(points) >= 2 {
			contours = append(contours, points)
		}
		points = nil
	}

	for _, elem := range elements {
		switch e := elem.(type) {
		case MoveTo:
			flush()
			current = e.Point
			points = append(points, current)

		case LineTo:
			current = e.Point
			points = append(points, current)

		case QuadTo:
			points = flattenQuadratic(points, current, e.Control, e.Point, tolerance, 0)
			current = e.Point

		case CubicTo:
			points = flattenCubic(points, current, e.Control1, e.Control2, e.Point, tolerance, 0)
			current = e.Point

		case Close:
			// Subpaths are implicitly closed by the rasterizer.
			flush()
		}
	}
	flush()

	return contours
}

// flattenQuadratic recursively subdivides a quadratic Bezier curve and
// appends the resulting vertices, excluding p0.
func flattenQuadratic(points []Point, p0, p1, p2 Point, tolerance float64, depth int) []Point {
	// Calculate the distance from the control point to the line p0-p2
	dist := distanceToLine(p1, p0, p2)

	if dist < tolerance || depth >= maxDepth || math.IsNaN(dist) {
		// Curve is flat enough, add the endpoint
		return append(points, p2)
	}

	// Subdivide the curve
	q0 := p0.Lerp(p1, 0.5)
	q1 := p1.Lerp(p2, 0.5)
	q2 := q0.Lerp(q1, 0.5)

	points = flattenQuadratic(points, p0, q0, q2, tolerance, depth+1)
	return flattenQuadratic(points, q2, q1, p2, tolerance, depth+1)
}

// flattenCubic recursively subdivides a cubic Bezier curve and appends the
// resulting vertices, excluding p0.
func flattenCubic(points []Point, p0, p1, p2, p3 Point, tolerance float64, depth int) []Point {
	// Calculate the distance from control points to the line p0-p3
	d1 := distanceToLine(p1, p0, p3)
	d2 := distanceToLine(p2, p0, p3)
	dist := math.Max(d1, d2)

	if dist < tolerance || depth >= maxDepth || math.IsNaN(dist) {
		return append(points, p3)
	}

	// Subdivide the curve using de Casteljau's algorithm
	q0 := p0.Lerp(p1, 0.5)
	q1 := p1.Lerp(p2, 0.5)
	q2 := p2.Lerp(p3, 0.5)
	r0 := q0.Lerp(q1, 0.5)
	r1 := q1.Lerp(q2, 0.5)
	s := r0.Lerp(r1, 0.5)

	points = flattenCubic(points, p0, q0, r0, s, tolerance, depth+1)
	return flattenCubic(points, s, r1, q2, p3, tolerance, depth+1)
}

// distanceToLine calculates the perpendicular distance from point p to line segment (a, b).
func distanceToLine(p, a, b Point) float64 {
	// Vector from a to b
	ab := b.Sub(a)
	abLen := ab.Length()

	if abLen < 1e-10 {
		// Line segment is a point
		return p.Distance(a)
	}

	// Project p onto the line
	ap := p.Sub(a)
	t := ap.Dot(ab) / (abLen * abLen)

	if t < 0 {
		return p.Distance(a)
	}
	if t > 1 {
		return p.Distance(b)
	}

	closest := a.Add(ab.Mul(t))
	return p.Distance(closest)
}
