// Package image provides source samplers for image and glyph blits.
//
// Coordinates are in source pixel space: pixel (i, j) covers
// [i, i+1)×[j, j+1) and its centre is (i+0.5, j+0.5). Anything outside the
// source bounds is fully transparent.
package image

import (
	"image"
	"math"

	"github.com/gogpu/renderbuf/internal/blend"
)

// InterpolationMode defines how source sampling is performed.
type InterpolationMode uint8

const (
	// InterpNearest selects the pixel containing the sample point.
	// Fast but produces blocky results when scaling.
	InterpNearest InterpolationMode = iota

	// InterpBilinear blends the 4 pixels around the sample point, weighted
	// on premultiplied values so transparent texels never bleed color.
	InterpBilinear
)

// String returns a string representation of the interpolation mode.
func (m InterpolationMode) String() string {
	switch m {
	case InterpNearest:
		return "Nearest"
	case InterpBilinear:
		return "Bilinear"
	default:
		return "Unknown"
	}
}

// SampleNRGBA samples img at (x, y) and returns a straight-alpha color.
func SampleNRGBA(img *image.NRGBA, x, y float64, mode InterpolationMode) blend.Source {
	if mode == InterpNearest {
		r, g, b, a := nrgbaAt(img, floor(x), floor(y))
		return blend.FromNRGBA(r, g, b, a)
	}

	fx, fy := x-0.5, y-0.5
	x0, y0 := floor(fx), floor(fy)
	tx, ty := fx-float64(x0), fy-float64(y0)

	// Sample points on texel centres reproduce the texel exactly.
	if tx == 0 && ty == 0 {
		r, g, b, a := nrgbaAt(img, x0, y0)
		return blend.FromNRGBA(r, g, b, a)
	}

	var sr, sg, sb, sa float64
	add := func(px, py int, w float64) {
		if w == 0 {
			return
		}
		r, g, b, a := nrgbaAt(img, px, py)
		if a == 0 {
			return
		}
		wa := w * float64(a)
		sr += wa * float64(r)
		sg += wa * float64(g)
		sb += wa * float64(b)
		sa += wa
	}
	add(x0, y0, (1-tx)*(1-ty))
	add(x0+1, y0, tx*(1-ty))
	add(x0, y0+1, (1-tx)*ty)
	add(x0+1, y0+1, tx*ty)

	if sa == 0 {
		return blend.Source{}
	}
	return blend.Source{
		R: float32(sr / sa / 255),
		G: float32(sg / sa / 255),
		B: float32(sb / sa / 255),
		A: float32(sa / 255),
	}
}

// SampleAlpha samples a coverage mask at (x, y) and returns a value in
// [0, 1].
func SampleAlpha(img *image.Alpha, x, y float64, mode InterpolationMode) float32 {
	if mode == InterpNearest {
		return float32(alphaAt(img, floor(x), floor(y))) / 255
	}

	fx, fy := x-0.5, y-0.5
	x0, y0 := floor(fx), floor(fy)
	tx, ty := fx-float64(x0), fy-float64(y0)

	if tx == 0 && ty == 0 {
		return float32(alphaAt(img, x0, y0)) / 255
	}

	v := lerp2D(
		float64(alphaAt(img, x0, y0)),
		float64(alphaAt(img, x0+1, y0)),
		float64(alphaAt(img, x0, y0+1)),
		float64(alphaAt(img, x0+1, y0+1)),
		tx, ty)
	return float32(v / 255)
}

// nrgbaAt returns the pixel at (x, y), or transparent outside the bounds.
func nrgbaAt(img *image.NRGBA, x, y int) (r, g, b, a uint8) {
	b0 := img.Rect
	if x < 0 || y < 0 || x >= b0.Dx() || y >= b0.Dy() {
		return 0, 0, 0, 0
	}
	i := y*img.Stride + x*4
	p := img.Pix[i : i+4 : i+4]
	return p[0], p[1], p[2], p[3]
}

func alphaAt(img *image.Alpha, x, y int) uint8 {
	b := img.Rect
	if x < 0 || y < 0 || x >= b.Dx() || y >= b.Dy() {
		return 0
	}
	return img.Pix[y*img.Stride+x]
}

// floor converts to int, saturating far outside any image.
func floor(v float64) int {
	f := math.Floor(v)
	switch {
	case f != f:
		return math.MinInt32
	case f < math.MinInt32:
		return math.MinInt32
	case f > math.MaxInt32:
		return math.MaxInt32
	}
	return int(f)
}

// lerp performs linear interpolation between a and b.
func lerp(a, b, t float64) float64 {
	return a*(1-t) + b*t
}

// lerp2D performs bilinear interpolation on a 2x2 grid.
func lerp2D(v00, v10, v01, v11, tx, ty float64) float64 {
	v0 := lerp(v00, v10, tx)
	v1 := lerp(v01, v11, tx)
	return lerp(v0, v1, ty)
}
