package text

import "errors"

// Sentinel errors for text package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrNoOutline is returned when a glyph has no vector outline (bitmap
	// or color glyphs).
	ErrNoOutline = errors.New("text: glyph has no outline")
)
