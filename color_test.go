package renderbuf

import (
	"image/color"
	"testing"
)

func TestHex(t *testing.T) {
	tests := []struct {
		in   string
		want [4]uint8
	}{
		{"#f00", [4]uint8{255, 0, 0, 255}},
		{"0f08", [4]uint8{0, 255, 0, 136}},
		{"#336699", [4]uint8{0x33, 0x66, 0x99, 255}},
		{"33669980", [4]uint8{0x33, 0x66, 0x99, 0x80}},
		{"nonsense", [4]uint8{0, 0, 0, 255}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := Hex(tt.in).bytes(); got != tt.want {
				t.Errorf("Hex(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestColorQuantizeRoundsToNearest(t *testing.T) {
	tests := []struct {
		c    RGBA
		want [4]uint8
	}{
		{RGBA{0.5, 0.5, 0.5, 0.5}, [4]uint8{128, 128, 128, 128}},
		{RGBA{1.2, -0.3, 0.2, 1}, [4]uint8{255, 0, 51, 255}},
	}
	for _, tt := range tests {
		if got := tt.c.bytes(); got != tt.want {
			t.Errorf("%+v.bytes() = %v, want %v", tt.c, got, tt.want)
		}
	}
}

func TestFromColorStraightAlpha(t *testing.T) {
	// Premultiplied half-transparent red must come back as straight red.
	c := FromColor(color.RGBA{R: 128, A: 128})
	if got := c.bytes(); got != [4]uint8{255, 0, 0, 128} {
		t.Errorf("FromColor(premultiplied) = %v, want [255 0 0 128]", got)
	}
	n := color.NRGBA{R: 10, G: 20, B: 30, A: 40}
	if got := FromColor(n).Color(); got != n {
		t.Errorf("NRGBA round trip = %v, want %v", got, n)
	}
}

func TestHSL(t *testing.T) {
	tests := []struct {
		h    float64
		want RGBA
	}{
		{0, Red},
		{120, Green},
		{240, Blue},
		{-120, Blue},
		{360, Red},
	}
	for _, tt := range tests {
		if got := HSL(tt.h, 1, 0.5).bytes(); got != tt.want.bytes() {
			t.Errorf("HSL(%v,1,0.5) = %v, want %v", tt.h, got, tt.want.bytes())
		}
	}
}

func TestWithAlpha(t *testing.T) {
	if got := Red.WithAlpha(0.25); got != (RGBA{1, 0, 0, 0.25}) {
		t.Errorf("WithAlpha = %+v", got)
	}
}
