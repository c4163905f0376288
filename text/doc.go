// Package text rasterizes glyphs into coverage masks and lays out strings.
//
// The pipeline is split into three pieces:
//
//   - Face: a parsed font that maps runes to glyphs and produces outlines
//     in pixel units (golang.org/x/image/font/opentype or
//     github.com/go-text/typesetting backends)
//   - GlyphCache: rasterized glyph masks keyed by (font, size, rune), safe
//     for concurrent use
//   - Drawer: an explicit (cache, face, size) triple that positions glyphs
//     along a pen
//
// # Example usage
//
//	cache := text.NewGlyphCache(text.DefaultGlyphCacheConfig())
//	d := &text.Drawer{Cache: cache, Face: text.GoRegular(), Size: 24}
//	glyphs, advance := d.Layout("Hello")
//
// The glyphs are then painted by a render target, which adds its pen
// origin and transform.
package text
