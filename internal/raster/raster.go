// Package raster converts device-space polygons into anti-aliased
// per-pixel coverage.
//
// Coverage is computed analytically: every edge deposits its signed
// vertical extent (cover) and that extent weighted by its horizontal
// position inside the pixel (area) into per-pixel accumulators. A prefix sum
// along each row then yields the exact fraction of every pixel that lies
// inside the polygon, with no supersampling.
package raster

import (
	"cmp"
	"math"
	"slices"
)

// Point is a device-space vertex (internal copy to avoid import cycle).
type Point struct {
	X, Y float64
}

// FillRule specifies how to determine which areas are inside a path.
type FillRule int

const (
	// FillRuleNonZero uses the non-zero winding rule.
	FillRuleNonZero FillRule = iota
	// FillRuleEvenOdd uses the even-odd rule.
	FillRuleEvenOdd
)

// String returns the fill rule name.
func (r FillRule) String() string {
	switch r {
	case FillRuleNonZero:
		return "NonZero"
	case FillRuleEvenOdd:
		return "EvenOdd"
	default:
		return "Unknown"
	}
}

// SpanFunc receives the coverage of one scanline. cov[i] is the coverage of
// pixel (x0+i, y) in [0, 1]. The slice is only valid during the call.
type SpanFunc func(y, x0 int, cov []float32)

// edge is a non-horizontal line segment in device coordinates.
type edge struct {
	x0, y0 float64
	x1, y1 float64
	dxdy   float64 // (x1-x0)/(y1-y0)
}

func (e *edge) top() float64    { return min(e.y0, e.y1) }
func (e *edge) bottom() float64 { return max(e.y0, e.y1) }

const (
	// horizontalEpsilon is the minimum vertical extent for an edge to
	// contribute coverage.
	horizontalEpsilon = 1e-10

	// smallPathArea is the largest bounding box area, in pixels, filled
	// with 2-D accumulators. Larger paths use an active edge list.
	smallPathArea = 1 << 16

	// snapEpsilon snaps coverage within 1/512 of 0 or 1 to that bound so
	// float noise in interior pixels never leaks into the 8-bit result.
	snapEpsilon = 1.0 / 512
)

// Rasterizer performs scanline rasterization with analytic coverage.
// Create one per render target and reuse it; internal buffers grow as
// needed and are never shrunk.
//
// A Rasterizer is not safe for concurrent use.
type Rasterizer struct {
	width  int
	height int

	edges []edge

	// device-space bounding box of all edges
	bboxEmpty    bool
	bxMin, bxMax float64
	byMin, byMax float64

	cover   []float32
	area    []float32
	rowUsed []bool
	active  []int
}

// NewRasterizer creates a new rasterizer clipping to [0,width)×[0,height).
func NewRasterizer(width, height int) *Rasterizer {
	r := &Rasterizer{}
	r.Resize(width, height)
	return r
}

// Resize changes the clip size and discards any added contours.
func (r *Rasterizer) Resize(width, height int) {
	r.width = max(width, 0)
	r.height = max(height, 0)
	r.Reset()
}

// Width returns the clip width.
func (r *Rasterizer) Width() int { return r.width }

// Height returns the clip height.
func (r *Rasterizer) Height() int { return r.height }

// Reset discards all contours added since the last Fill.
func (r *Rasterizer) Reset() {
	r.edges = r.edges[:0]
	r.bboxEmpty = true
}

// AddContour adds a closed polygon. The last vertex connects back to the
// first. Contours with fewer than three vertices are ignored.
func (r *Rasterizer) AddContour(pts []Point) {
	n := len(pts)
	if n < 3 {
		return
	}
	for i := range n {
		j := i + 1
		if j == n {
			j = 0
		}
		r.addEdge(pts[i], pts[j])
	}
}

// addEdge appends one device-space segment, skipping horizontal and
// non-finite ones.
func (r *Rasterizer) addEdge(p0, p1 Point) {
	if !finite(p0.X) || !finite(p0.Y) || !finite(p1.X) || !finite(p1.Y) {
		return
	}
	dy := p1.Y - p0.Y
	if dy > -horizontalEpsilon && dy < horizontalEpsilon {
		return
	}

	r.edges = append(r.edges, edge{
		x0: p0.X, y0: p0.Y,
		x1: p1.X, y1: p1.Y,
		dxdy: (p1.X - p0.X) / dy,
	})

	if r.bboxEmpty {
		r.bxMin, r.bxMax = min(p0.X, p1.X), max(p0.X, p1.X)
		r.byMin, r.byMax = min(p0.Y, p1.Y), max(p0.Y, p1.Y)
		r.bboxEmpty = false
		return
	}
	r.bxMin = min(r.bxMin, p0.X, p1.X)
	r.bxMax = max(r.bxMax, p0.X, p1.X)
	r.byMin = min(r.byMin, p0.Y, p1.Y)
	r.byMax = max(r.byMax, p0.Y, p1.Y)
}

// Fill rasterizes the accumulated contours with the given fill rule and
// calls emit for every scanline with non-zero coverage, top to bottom.
// Emitted spans are clipped to the rasterizer size. Fill resets the
// rasterizer afterwards.
func (r *Rasterizer) Fill(rule FillRule, emit SpanFunc) {
	defer r.Reset()

	xMin, xMax, yMin, yMax, ok := r.clipBounds()
	if !ok {
		return
	}

	if (xMax-xMin)*(yMax-yMin) <= smallPathArea {
		r.fillSmall(xMin, xMax, yMin, yMax, rule, emit)
	} else {
		r.fillLarge(xMin, xMax, yMin, yMax, rule, emit)
	}
}

// clipBounds returns the integer pixel bounds of the edges clamped to the
// clip rectangle.
func (r *Rasterizer) clipBounds() (xMin, xMax, yMin, yMax int, ok bool) {
	if len(r.edges) == 0 || r.bboxEmpty || r.width == 0 || r.height == 0 {
		return 0, 0, 0, 0, false
	}

	// The left edge of the clip still has to accumulate winding from
	// anything further left, so xMin is clamped but never skipped.
	xMin = clampInt(floorInt(r.bxMin), 0, r.width)
	xMax = clampInt(floorInt(r.bxMax)+1, 0, r.width)
	yMin = clampInt(floorInt(r.byMin), 0, r.height)
	yMax = clampInt(floorInt(r.byMax)+1, 0, r.height)

	if xMin >= xMax || yMin >= yMax {
		return 0, 0, 0, 0, false
	}
	return xMin, xMax, yMin, yMax, true
}

// fillSmall rasterizes using 2-D accumulators covering the whole bounding
// box.
func (r *Rasterizer) fillSmall(xMin, xMax, yMin, yMax int, rule FillRule, emit SpanFunc) {
	width := xMax - xMin
	height := yMax - yMin
	size := width * height

	r.cover = slices.Grow(r.cover[:0], size)[:size]
	r.area = slices.Grow(r.area[:0], size)[:size]
	clear(r.cover)
	clear(r.area)
	r.rowUsed = slices.Grow(r.rowUsed[:0], height)[:height]
	clear(r.rowUsed)

	for i := range r.edges {
		e := &r.edges[i]
		y0 := max(floorInt(e.top()), yMin)
		y1 := min(floorInt(e.bottom())+1, yMax)
		for y := y0; y < y1; y++ {
			row := y - yMin
			off := row * width
			if accumulate(e, y, r.cover[off:off+width], r.area[off:off+width], xMin, xMax) {
				r.rowUsed[row] = true
			}
		}
	}

	for row := range height {
		if !r.rowUsed[row] {
			continue
		}
		off := row * width
		cov := r.cover[off : off+width]
		integrate(cov, r.area[off:off+width], rule)
		if trimmed, lo := trimZeros(cov); trimmed != nil {
			emit(yMin+row, xMin+lo, trimmed)
		}
	}
}

// fillLarge rasterizes one scanline at a time with an active edge list.
func (r *Rasterizer) fillLarge(xMin, xMax, yMin, yMax int, rule FillRule, emit SpanFunc) {
	width := xMax - xMin
	r.cover = slices.Grow(r.cover[:0], width)[:width]
	r.area = slices.Grow(r.area[:0], width)[:width]

	slices.SortFunc(r.edges, func(a, b edge) int {
		return cmp.Compare(a.top(), b.top())
	})

	r.active = r.active[:0]
	next := 0

	for y := yMin; y < yMax; y++ {
		yf := float64(y)
		yNext := yf + 1

		for next < len(r.edges) && r.edges[next].top() < yNext {
			r.active = append(r.active, next)
			next++
		}
		if len(r.active) == 0 {
			continue
		}

		clear(r.cover)
		clear(r.area)
		touched := false

		for i := 0; i < len(r.active); {
			e := &r.edges[r.active[i]]
			if e.bottom() <= yf {
				r.active[i] = r.active[len(r.active)-1]
				r.active = r.active[:len(r.active)-1]
				continue
			}
			if accumulate(e, y, r.cover, r.area, xMin, xMax) {
				touched = true
			}
			i++
		}

		if !touched {
			continue
		}
		integrate(r.cover, r.area, rule)
		if trimmed, lo := trimZeros(r.cover); trimmed != nil {
			emit(y, xMin+lo, trimmed)
		}
	}
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// floorInt floors v and saturates to the int32 range so absurd coordinates
// cannot overflow index arithmetic.
func floorInt(v float64) int {
	f := math.Floor(v)
	switch {
	case f < math.MinInt32:
		return math.MinInt32
	case f > math.MaxInt32:
		return math.MaxInt32
	}
	return int(f)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
