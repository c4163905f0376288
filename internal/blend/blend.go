// Package blend composites straight-alpha colors into RGBA8 pixels with the
// "over" operator.
//
// For a source color S with alpha a and a coverage c, the effective weight is
// k = a*c and every channel of the destination pixel D becomes
//
//	D' = S*k + D*(1-k)
//
// with the alpha channel combined by the same rule (S.A treated as 1):
//
//	A' = k + A*(1-k)
//
// A weight of 0 leaves the destination bytes untouched and a weight of 1
// writes the quantized source exactly.
package blend

import "github.com/chewxy/math32"

// Source is a straight-alpha color with components in [0, 1].
type Source struct {
	R, G, B, A float32
}

// NewSource builds a Source, clamping each component to [0, 1].
func NewSource(r, g, b, a float64) Source {
	return Source{
		R: clamp01(float32(r)),
		G: clamp01(float32(g)),
		B: clamp01(float32(b)),
		A: clamp01(float32(a)),
	}
}

// FromNRGBA builds a Source from 8-bit straight-alpha components.
func FromNRGBA(r, g, b, a uint8) Source {
	return Source{
		R: float32(r) / 255,
		G: float32(g) / 255,
		B: float32(b) / 255,
		A: float32(a) / 255,
	}
}

// Tint multiplies two sources component-wise.
func (s Source) Tint(t Source) Source {
	return Source{R: s.R * t.R, G: s.G * t.G, B: s.B * t.B, A: s.A * t.A}
}

// Bytes returns the quantized RGBA8 form of s.
func (s Source) Bytes() [4]uint8 {
	return [4]uint8{Quantize(s.R), Quantize(s.G), Quantize(s.B), Quantize(s.A)}
}

// Over composites src with coverage cov into the 4-byte pixel dst.
func Over(dst []uint8, src Source, cov float32) {
	k := src.A * cov
	if k <= 0 {
		return
	}
	if k >= 1 {
		dst[0] = Quantize(src.R)
		dst[1] = Quantize(src.G)
		dst[2] = Quantize(src.B)
		dst[3] = 255
		return
	}
	inv := 1 - k
	dst[0] = quantize255(src.R*255*k + float32(dst[0])*inv)
	dst[1] = quantize255(src.G*255*k + float32(dst[1])*inv)
	dst[2] = quantize255(src.B*255*k + float32(dst[2])*inv)
	dst[3] = quantize255(255*k + float32(dst[3])*inv)
}

// OverSpan composites src into consecutive pixels of row, pixel i weighted by
// cov[i]. row must hold at least 4*len(cov) bytes.
func OverSpan(row []uint8, src Source, cov []float32) {
	if src.A <= 0 {
		return
	}
	row = row[:4*len(cov)]
	for i, c := range cov {
		Over(row[4*i:4*i+4], src, c)
	}
}

// Fill writes the same pixel into every 4-byte slot of row.
func Fill(row []uint8, px [4]uint8) {
	if len(row) < 4 {
		return
	}
	copy(row, px[:])
	for n := 4; n < len(row); n *= 2 {
		copy(row[n:], row[:n])
	}
}

// Quantize maps v in [0, 1] to 0..255 with round-to-nearest.
func Quantize(v float32) uint8 {
	return quantize255(v * 255)
}

func quantize255(v float32) uint8 {
	return uint8(math32.Max(0, math32.Min(v, 255)) + 0.5)
}

func clamp01(v float32) float32 {
	if v != v {
		return 0
	}
	return math32.Max(0, math32.Min(v, 1))
}
