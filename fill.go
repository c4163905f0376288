package renderbuf

import (
	"github.com/gogpu/renderbuf/internal/blend"
	"github.com/gogpu/renderbuf/internal/path"
	"github.com/gogpu/renderbuf/internal/raster"
)

// FillRule specifies how to determine which areas are inside a polygon.
type FillRule = raster.FillRule

const (
	// FillRuleNonZero uses the non-zero winding rule.
	FillRuleNonZero = raster.FillRuleNonZero
	// FillRuleEvenOdd uses the even-odd rule.
	FillRuleEvenOdd = raster.FillRuleEvenOdd
)

// DrawPolygon fills the implicitly closed polygon vertices with c. Fewer
// than three vertices draw nothing.
func (rb *RenderBuffer) DrawPolygon(vertices []Point, c RGBA, m Matrix, rule FillRule) {
	if len(vertices) < 3 {
		return
	}
	src := c.source()
	if src.A <= 0 {
		return
	}

	pts := make([]raster.Point, len(vertices))
	for i, v := range vertices {
		pts[i] = raster.Point(m.TransformPoint(v))
	}
	rb.ras.AddContour(pts)
	rb.fill(src, rule)
}

// DrawPolygons fills several polygons as one shape, so overlapping or
// nested contours combine under rule instead of blending twice.
func (rb *RenderBuffer) DrawPolygons(polygons [][]Point, c RGBA, m Matrix, rule FillRule) {
	src := c.source()
	if src.A <= 0 {
		return
	}
	var pts []raster.Point
	for _, poly := range polygons {
		pts = pts[:0]
		for _, v := range poly {
			pts = append(pts, raster.Point(m.TransformPoint(v)))
		}
		rb.ras.AddContour(pts)
	}
	rb.fill(src, rule)
}

// fillPath flattens p in device space and fills it.
func (rb *RenderBuffer) fillPath(p *path.Path, c RGBA, m Matrix, rule FillRule) {
	src := c.source()
	if src.A <= 0 || p.IsEmpty() {
		return
	}

	p.Transform(func(q path.Point) path.Point {
		return path.Point(m.TransformPoint(Point(q)))
	})
	var pts []raster.Point
	for _, contour := range path.Flatten(p.Elements(), rb.opts.tolerance) {
		pts = pts[:0]
		for _, q := range contour {
			pts = append(pts, raster.Point(q))
		}
		rb.ras.AddContour(pts)
	}
	rb.fill(src, rule)
}

// fill rasterizes the contours added to rb.ras and composites src.
func (rb *RenderBuffer) fill(src blend.Source, rule FillRule) {
	pm := rb.pm
	rb.ras.Fill(rule, func(y, x0 int, cov []float32) {
		blend.OverSpan(pm.row(y)[4*x0:], src, cov)
	})
	rb.Touch()
}
