package raster

import (
	"math"
	"testing"
)

// coverageMap fills the rasterizer and returns coverage keyed by pixel.
func coverageMap(r *Rasterizer, rule FillRule) map[[2]int]float32 {
	got := make(map[[2]int]float32)
	r.Fill(rule, func(y, x0 int, cov []float32) {
		for i, c := range cov {
			if c != 0 {
				got[[2]int{x0 + i, y}] = c
			}
		}
	})
	return got
}

func rect(x0, y0, x1, y1 float64) []Point {
	return []Point{{x0, y0}, {x1, y0}, {x1, y1}, {x0, y1}}
}

func star(cx, cy, radius float64) []Point {
	pts := make([]Point, 5)
	for i := range 5 {
		k := (i * 2) % 5
		a := -math.Pi/2 + float64(k)*2*math.Pi/5
		pts[i] = Point{cx + radius*math.Cos(a), cy + radius*math.Sin(a)}
	}
	return pts
}

func TestFillRuleString(t *testing.T) {
	tests := []struct {
		rule FillRule
		want string
	}{
		{FillRuleNonZero, "NonZero"},
		{FillRuleEvenOdd, "EvenOdd"},
		{FillRule(9), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.rule.String(); got != tt.want {
			t.Errorf("FillRule(%d).String() = %q, want %q", int(tt.rule), got, tt.want)
		}
	}
}

func TestFillIntegerSquare(t *testing.T) {
	r := NewRasterizer(10, 10)
	r.AddContour(rect(2, 2, 6, 6))
	got := coverageMap(r, FillRuleNonZero)

	if len(got) != 16 {
		t.Fatalf("covered pixels = %d, want 16", len(got))
	}
	for y := 2; y < 6; y++ {
		for x := 2; x < 6; x++ {
			if c := got[[2]int{x, y}]; c != 1 {
				t.Errorf("coverage(%d,%d) = %v, want 1", x, y, c)
			}
		}
	}
}

func TestFillHalfPixel(t *testing.T) {
	r := NewRasterizer(4, 4)
	r.AddContour(rect(0, 0, 2.5, 2))
	got := coverageMap(r, FillRuleNonZero)

	for y := range 2 {
		for x := range 2 {
			if c := got[[2]int{x, y}]; c != 1 {
				t.Errorf("coverage(%d,%d) = %v, want 1", x, y, c)
			}
		}
		if c := got[[2]int{2, y}]; math.Abs(float64(c)-0.5) > 1e-5 {
			t.Errorf("coverage(2,%d) = %v, want 0.5", y, c)
		}
		if c, ok := got[[2]int{3, y}]; ok {
			t.Errorf("coverage(3,%d) = %v, want none", y, c)
		}
	}
}

func TestFillAreaMatchesGeometry(t *testing.T) {
	tests := []struct {
		name string
		pts  []Point
		area float64
	}{
		{"triangle", []Point{{1.3, 1.1}, {17.7, 4.2}, {6.4, 15.9}}, 0},
		{"diamond", []Point{{10, 1}, {19, 10}, {10, 19}, {1, 10}}, 162},
		{"offset square", rect(0.25, 0.75, 7.25, 5.75), 35},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want := tt.area
			if want == 0 {
				want = shoelace(tt.pts)
			}
			r := NewRasterizer(20, 20)
			r.AddContour(tt.pts)
			var sum float64
			for _, c := range coverageMap(r, FillRuleNonZero) {
				sum += float64(c)
			}
			if math.Abs(sum-want) > 0.05 {
				t.Errorf("coverage sum = %v, want %v", sum, want)
			}
		})
	}
}

func shoelace(pts []Point) float64 {
	var a float64
	for i := range pts {
		j := (i + 1) % len(pts)
		a += pts[i].X*pts[j].Y - pts[j].X*pts[i].Y
	}
	return math.Abs(a) / 2
}

func TestFillRules(t *testing.T) {
	for _, rule := range []FillRule{FillRuleNonZero, FillRuleEvenOdd} {
		t.Run(rule.String(), func(t *testing.T) {
			r := NewRasterizer(100, 100)
			r.AddContour(star(50, 50, 40))
			got := coverageMap(r, rule)

			center := got[[2]int{50, 50}]
			want := float32(1)
			if rule == FillRuleEvenOdd {
				want = 0
			}
			if center != want {
				t.Errorf("center coverage = %v, want %v", center, want)
			}
			if tip := got[[2]int{50, 15}]; tip != 1 {
				t.Errorf("tip coverage = %v, want 1", tip)
			}
		})
	}
}

// A bowtie's lobes wind in opposite directions. Coverage is the folded net
// signed area of each pixel, so pixels with one winding value are exact and
// the pixel holding the crossing reports |+1/4 - 1/4| = 0 where the painted
// area is 1/2.
func TestFillSelfIntersectionNetArea(t *testing.T) {
	bowtie := []Point{{0, 0}, {5, 5}, {5, 0}, {0, 5}}
	tests := []struct {
		name string
		px   [2]int
		want float32
	}{
		{"left lobe interior", [2]int{1, 2}, 1},
		{"right lobe interior", [2]int{3, 2}, 1},
		{"outside between lobes", [2]int{2, 1}, 0},
		{"split by one edge", [2]int{1, 1}, 0.5},
		{"edge crossing", [2]int{2, 2}, 0},
	}
	for _, rule := range []FillRule{FillRuleNonZero, FillRuleEvenOdd} {
		r := NewRasterizer(8, 8)
		r.AddContour(bowtie)
		got := coverageMap(r, rule)
		for _, tt := range tests {
			if c := got[tt.px]; math.Abs(float64(c-tt.want)) > 1e-5 {
				t.Errorf("%v %s: coverage%v = %v, want %v", rule, tt.name, tt.px, c, tt.want)
			}
		}
	}
}

func TestFillWindingDirectionIndependent(t *testing.T) {
	cw := []Point{{1, 1}, {9, 2}, {5, 9}}
	ccw := []Point{{5, 9}, {9, 2}, {1, 1}}

	r := NewRasterizer(10, 10)
	r.AddContour(cw)
	a := coverageMap(r, FillRuleNonZero)
	r.AddContour(ccw)
	b := coverageMap(r, FillRuleNonZero)

	if len(a) != len(b) {
		t.Fatalf("pixel count differs: %d vs %d", len(a), len(b))
	}
	for k, v := range a {
		if math.Abs(float64(v-b[k])) > 1e-5 {
			t.Errorf("coverage%v = %v vs %v", k, v, b[k])
		}
	}
}

func TestFillDegenerate(t *testing.T) {
	tests := []struct {
		name string
		pts  []Point
	}{
		{"empty", nil},
		{"point", []Point{{1, 1}}},
		{"segment", []Point{{1, 1}, {5, 5}}},
		{"collinear", []Point{{1, 1}, {3, 3}, {5, 5}}},
		{"horizontal", []Point{{1, 2}, {5, 2}, {8, 2}}},
		{"nan", []Point{{math.NaN(), 1}, {5, math.NaN()}, {math.NaN(), math.NaN()}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRasterizer(10, 10)
			r.AddContour(tt.pts)
			if got := coverageMap(r, FillRuleNonZero); len(got) != 0 {
				t.Errorf("got %d covered pixels, want 0", len(got))
			}
		})
	}
}

func TestFillOutsideClip(t *testing.T) {
	tests := []struct {
		name string
		pts  []Point
	}{
		{"left", rect(-20, 2, -5, 8)},
		{"right", rect(15, 2, 30, 8)},
		{"above", rect(2, -20, 8, -5)},
		{"below", rect(2, 15, 8, 30)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRasterizer(10, 10)
			r.AddContour(tt.pts)
			called := false
			r.Fill(FillRuleNonZero, func(int, int, []float32) { called = true })
			if called {
				t.Error("emit called for polygon outside the clip")
			}
		})
	}
}

func TestFillClipsPartially(t *testing.T) {
	r := NewRasterizer(10, 10)
	r.AddContour(rect(-5, -5, 3, 3))
	got := coverageMap(r, FillRuleNonZero)

	if len(got) != 9 {
		t.Fatalf("covered pixels = %d, want 9", len(got))
	}
	for k, c := range got {
		if k[0] < 0 || k[1] < 0 || k[0] >= 3 || k[1] >= 3 {
			t.Errorf("pixel %v outside expected area", k)
		}
		if c != 1 {
			t.Errorf("coverage%v = %v, want 1", k, c)
		}
	}
}

func TestFillSlantedEdgeLeftOfClip(t *testing.T) {
	// Left edge runs from x=-4 to x=2 so part of every row enters from
	// outside the clip.
	r := NewRasterizer(10, 10)
	r.AddContour([]Point{{-4, 0}, {8, 0}, {8, 6}, {2, 6}})
	var sum float64
	for _, c := range coverageMap(r, FillRuleNonZero) {
		sum += float64(c)
	}
	// 8x6 minus the triangle between x=0 and the edge below y=4.
	const want = 46.0
	if math.Abs(sum-want) > 0.05 {
		t.Errorf("coverage sum = %v, want %v", sum, want)
	}
}

func TestFillLargeStar(t *testing.T) {
	r := NewRasterizer(400, 400)
	r.AddContour(star(200, 200, 180))
	got := coverageMap(r, FillRuleNonZero)

	if c := got[[2]int{200, 200}]; c != 1 {
		t.Errorf("center coverage = %v, want 1", c)
	}
	if c, ok := got[[2]int{5, 5}]; ok {
		t.Errorf("corner coverage = %v, want none", c)
	}
}

func TestFillLargeArea(t *testing.T) {
	r := NewRasterizer(300, 300)
	r.AddContour(rect(10.5, 10, 290.5, 290))
	var sum float64
	rows := 0
	r.Fill(FillRuleNonZero, func(y, x0 int, cov []float32) {
		rows++
		for _, c := range cov {
			sum += float64(c)
		}
	})
	if rows != 280 {
		t.Errorf("rows = %d, want 280", rows)
	}
	if want := 280.0 * 280; math.Abs(sum-want) > 0.5 {
		t.Errorf("coverage sum = %v, want %v", sum, want)
	}
}

func TestFillResets(t *testing.T) {
	r := NewRasterizer(10, 10)
	r.AddContour(rect(1, 1, 4, 4))
	_ = coverageMap(r, FillRuleNonZero)
	if got := coverageMap(r, FillRuleNonZero); len(got) != 0 {
		t.Errorf("second Fill emitted %d pixels, want 0", len(got))
	}
}

func TestResize(t *testing.T) {
	r := NewRasterizer(4, 4)
	r.Resize(-3, 20)
	if r.Width() != 0 || r.Height() != 20 {
		t.Errorf("size = %dx%d, want 0x20", r.Width(), r.Height())
	}
	r.AddContour(rect(0, 0, 2, 2))
	if got := coverageMap(r, FillRuleNonZero); len(got) != 0 {
		t.Errorf("zero-width rasterizer emitted %d pixels", len(got))
	}
}

func TestHugeCoordinates(t *testing.T) {
	r := NewRasterizer(8, 8)
	r.AddContour([]Point{{-1e12, -1e12}, {1e12, -1e12}, {1e12, 1e12}, {-1e12, 1e12}})
	got := coverageMap(r, FillRuleNonZero)
	if len(got) != 64 {
		t.Fatalf("covered pixels = %d, want 64", len(got))
	}
	for k, c := range got {
		if c != 1 {
			t.Errorf("coverage%v = %v, want 1", k, c)
		}
	}
}

func TestTrimZeros(t *testing.T) {
	tests := []struct {
		in     []float32
		want   int
		offset int
	}{
		{[]float32{0, 0, 0}, 0, 0},
		{[]float32{0, 0.5, 1, 0}, 2, 1},
		{[]float32{1}, 1, 0},
		{[]float32{0.1, 0, 0.2}, 3, 0},
	}
	for _, tt := range tests {
		got, off := trimZeros(tt.in)
		if len(got) != tt.want || off != tt.offset {
			t.Errorf("trimZeros(%v) = len %d off %d, want len %d off %d",
				tt.in, len(got), off, tt.want, tt.offset)
		}
	}
}

func BenchmarkFillCircle(b *testing.B) {
	pts := make([]Point, 64)
	for i := range pts {
		a := float64(i) * 2 * math.Pi / float64(len(pts))
		pts[i] = Point{256 + 200*math.Cos(a), 256 + 200*math.Sin(a)}
	}
	r := NewRasterizer(512, 512)
	b.ResetTimer()
	for range b.N {
		r.AddContour(pts)
		r.Fill(FillRuleNonZero, func(int, int, []float32) {})
	}
}
