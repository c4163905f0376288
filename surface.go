package renderbuf

import (
	"image"

	"github.com/gogpu/renderbuf/text"
)

// Surface is the drawing interface a host 2D API renders into. Every draw
// takes the current transform explicitly; vertices and rectangles are in
// user space. Drawing never fails: anything outside the surface is clipped.
type Surface interface {
	// Size returns the surface dimensions in pixels.
	Size() (width, height int)

	// Clear fills every pixel with c, ignoring any transform.
	Clear(c RGBA)

	// DrawPolygon fills an implicitly closed polygon.
	DrawPolygon(vertices []Point, c RGBA, m Matrix, rule FillRule)

	// DrawLine draws a segment of the given thickness.
	DrawLine(p0, p1 Point, thickness float64, c RGBA, m Matrix)

	// DrawImage maps img onto the rectangle dst.
	DrawImage(img image.Image, dst Rect, m Matrix)

	// DrawText paints laid-out glyphs with their pen origin at origin.
	DrawText(glyphs []text.Glyph, origin Point, c RGBA, m Matrix)
}

var _ Surface = (*RenderBuffer)(nil)
