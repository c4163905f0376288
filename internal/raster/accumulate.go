package raster

import (
	"math"

	"github.com/chewxy/math32"
)

// Coverage accumulation model:
//
// For each pixel two values are tracked:
//
//	cover: signed vertical extent of the edges crossing the pixel column
//	area:  cover weighted by (1 - xFrac), where xFrac is the horizontal
//	       position of the crossing inside the pixel
//
// integrate walks a row left to right:
//
//	coverage[i] = accum + area[i]
//	accum      += cover[i]
//
// which is the net signed area of the polygon inside each pixel. Edges going
// down count +1, edges going up -1; the fill rule folds the signed value.
// The fold is exact only where a pixel holds a single winding value: at a
// self-intersection, regions of opposite winding cancel before folding.

// accumulate adds the contribution of e within scanline [y, y+1) to the
// row buffers, which are indexed by x - xMin. Anything left of xMin lands in
// column 0 as full cover so the winding carried into the clip is preserved.
// It reports whether the edge crosses the scanline at all.
func accumulate(e *edge, y int, cover, area []float32, xMin, xMax int) bool {
	yTop := max(float64(y), e.top())
	yBot := min(float64(y+1), e.bottom())
	if yBot <= yTop {
		return false
	}

	sign := float32(1)
	if e.y1 < e.y0 {
		sign = -1
	}

	xTop := e.x0 + e.dxdy*(yTop-e.y0)
	xBot := e.x0 + e.dxdy*(yBot-e.y0)
	pixL := floorInt(min(xTop, xBot))
	pixR := floorInt(max(xTop, xBot))

	if pixR < xMin {
		c := sign * float32(yBot-yTop)
		cover[0] += c
		area[0] += c
		return true
	}
	if pixL >= xMax {
		return false
	}

	if pixL == pixR || math.Abs(e.dxdy) < 1e-12 {
		accumulateColumn(e, yTop, yBot, sign, pixL, cover, area, xMin, xMax)
		return true
	}

	dydx := 1 / e.dxdy
	lo := pixL
	if lo < xMin {
		// Part of the edge runs left of the clip.
		yClip := e.y0 + dydx*(float64(xMin)-e.x0)
		s0, s1 := yTop, min(yClip, yBot)
		if xTop > xBot {
			s0, s1 = max(yClip, yTop), yBot
		}
		if s1 > s0 {
			c := sign * float32(s1-s0)
			cover[0] += c
			area[0] += c
		}
		lo = xMin
	}
	hi := min(pixR, xMax-1)

	for pix := lo; pix <= hi; pix++ {
		ya := e.y0 + dydx*(float64(pix)-e.x0)
		yb := e.y0 + dydx*(float64(pix+1)-e.x0)
		s0 := max(min(ya, yb), yTop)
		s1 := min(max(ya, yb), yBot)
		if s1 <= s0 {
			continue
		}

		c := sign * float32(s1-s0)
		xMid := e.x0 + e.dxdy*((s0+s1)/2-e.y0)
		frac := xMid - float64(pix)

		idx := pix - xMin
		cover[idx] += c
		area[idx] += c * float32(1-frac)
	}
	return true
}

// accumulateColumn handles an edge piece that stays inside one pixel column.
func accumulateColumn(e *edge, yTop, yBot float64, sign float32, pix int, cover, area []float32, xMin, xMax int) {
	c := sign * float32(yBot-yTop)
	if pix < xMin {
		cover[0] += c
		area[0] += c
		return
	}
	if pix >= xMax {
		return
	}

	xMid := e.x0 + e.dxdy*((yTop+yBot)/2-e.y0)
	frac := xMid - float64(pix)

	idx := pix - xMin
	cover[idx] += c
	area[idx] += c * float32(1-frac)
}

// integrate converts accumulated cover/area into final coverage in place.
func integrate(cover, area []float32, rule FillRule) {
	var accum float32
	for i := range cover {
		raw := accum + area[i]
		accum += cover[i]

		var v float32
		if rule == FillRuleEvenOdd {
			v = math32.Mod(math32.Abs(raw), 2)
			if v > 1 {
				v = 2 - v
			}
		} else {
			v = math32.Min(math32.Abs(raw), 1)
		}
		cover[i] = snap(v)
	}
}

// snap pulls coverage that is within snapEpsilon of 0 or 1 onto the bound.
func snap(v float32) float32 {
	if v < snapEpsilon {
		return 0
	}
	if v > 1-snapEpsilon {
		return 1
	}
	return v
}

// trimZeros returns the non-zero portion of coverage and its offset, or
// nil when the row is entirely empty.
func trimZeros(coverage []float32) (trimmed []float32, offset int) {
	n := len(coverage)
	lo := 0
	for lo < n && coverage[lo] == 0 {
		lo++
	}
	if lo == n {
		return nil, 0
	}
	hi := n - 1
	for hi > lo && coverage[hi] == 0 {
		hi--
	}
	return coverage[lo : hi+1], lo
}
