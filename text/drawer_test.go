package text

import (
	"math"
	"testing"
)

func TestDrawerLayoutPositions(t *testing.T) {
	face := newBoxFace('A', 'B', 'C')
	d := &Drawer{Cache: NewGlyphCache(DefaultGlyphCacheConfig()), Face: face, Size: 10}

	glyphs, adv := d.Layout("ABC")
	if len(glyphs) != 3 {
		t.Fatalf("got %d glyphs, want 3", len(glyphs))
	}
	// Advance is 10 per glyph; A->B kerns by -1.
	wantX := []float64{0, 9, 19}
	for i, g := range glyphs {
		if g.X != wantX[i] || g.Y != 0 {
			t.Errorf("glyph %d at (%v,%v), want (%v,0)", i, g.X, g.Y, wantX[i])
		}
	}
	if adv != 29 {
		t.Errorf("advance = %v, want 29", adv)
	}
	if got := d.Measure("ABC"); got != adv {
		t.Errorf("Measure = %v, want %v", got, adv)
	}
}

func TestDrawerLayoutEmpty(t *testing.T) {
	tests := []struct {
		name string
		d    *Drawer
		s    string
	}{
		{"empty string", &Drawer{Face: GoRegular(), Size: 12}, ""},
		{"nil face", &Drawer{Size: 12}, "abc"},
		{"zero size", &Drawer{Face: GoRegular()}, "abc"},
		{"NaN size", &Drawer{Face: GoRegular(), Size: math.NaN()}, "abc"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			glyphs, adv := tt.d.Layout(tt.s)
			if len(glyphs) != 0 || adv != 0 {
				t.Errorf("Layout = %d glyphs, %v advance; want none", len(glyphs), adv)
			}
		})
	}
}

func TestDrawerNormalizesNFC(t *testing.T) {
	d := &Drawer{Cache: NewGlyphCache(DefaultGlyphCacheConfig()), Face: GoRegular(), Size: 16}

	composed, advC := d.Layout("\u00e9")
	decomposed, advD := d.Layout("e\u0301")

	if len(composed) != 1 || len(decomposed) != 1 {
		t.Fatalf("glyph counts %d and %d, want 1 and 1", len(composed), len(decomposed))
	}
	if composed[0].Mask != decomposed[0].Mask {
		t.Error("composed and decomposed input should share the cached glyph")
	}
	if advC != advD {
		t.Errorf("advances differ: %v vs %v", advC, advD)
	}
}

func TestDrawerWithoutCache(t *testing.T) {
	face := GoRegular()
	cached := &Drawer{Cache: NewGlyphCache(DefaultGlyphCacheConfig()), Face: face, Size: 15}
	direct := &Drawer{Face: face, Size: 15}

	a, advA := cached.Layout("Hi there")
	b, advB := direct.Layout("Hi there")
	if advA != advB || len(a) != len(b) {
		t.Fatalf("layouts differ: %v/%d vs %v/%d", advA, len(a), advB, len(b))
	}
	for i := range a {
		if a[i].X != b[i].X || a[i].Mask.GID != b[i].Mask.GID {
			t.Errorf("glyph %d differs", i)
		}
	}
}

func TestDrawerMetrics(t *testing.T) {
	d := &Drawer{Face: newBoxFace(), Size: 10}
	if m := d.Metrics(); m.Ascent != 8 || m.Descent != 2 {
		t.Errorf("Metrics = %+v", m)
	}
	if m := (&Drawer{}).Metrics(); m != (Metrics{}) {
		t.Errorf("nil face Metrics = %+v", m)
	}
}
