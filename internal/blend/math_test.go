package blend

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// TestDiv255 tests Alvy Ray Smith's exact formula.
func TestDiv255(t *testing.T) {
	// Test all possible values from alpha blending
	for x := 0; x <= 255*255; x++ {
		expected := x / 255
		got := int(div255(uint16(x)))

		if got != expected {
			t.Errorf("div255(%d) = %d, want %d", x, got, expected)
		}
	}
}

// TestMulDiv255 tests multiplication with exact division.
func TestMulDiv255(t *testing.T) {
	tests := []struct {
		a, b     byte
		expected byte
	}{
		{0, 0, 0},
		{255, 255, 255},
		{0, 255, 0},
		{255, 0, 0},
		{128, 128, 64},
		{200, 100, 78},
		{1, 255, 1},
		{255, 1, 1},
		{127, 127, 63},
	}

	for _, tt := range tests {
		if got := mulDiv255(tt.a, tt.b); got != tt.expected {
			t.Errorf("mulDiv255(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.expected)
		}
	}
}

func TestPremultiply(t *testing.T) {
	row := []uint8{
		200, 100, 50, 255,
		200, 100, 50, 0,
		255, 128, 0, 128,
	}
	Premultiply(row)
	want := []uint8{
		200, 100, 50, 255,
		0, 0, 0, 0,
		128, 64, 0, 128,
	}
	if diff := cmp.Diff(want, row); diff != "" {
		t.Errorf("Premultiply mismatch (-want +got):\n%s", diff)
	}
}

func TestSwapRB(t *testing.T) {
	row := []uint8{1, 2, 3, 4, 5, 6, 7, 8}
	SwapRB(row)
	if diff := cmp.Diff([]uint8{3, 2, 1, 4, 7, 6, 5, 8}, row); diff != "" {
		t.Errorf("SwapRB mismatch (-want +got):\n%s", diff)
	}
}
