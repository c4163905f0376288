package text

import (
	"image"
	"math"
	"sync"
	"sync/atomic"

	"golang.org/x/image/math/fixed"

	"github.com/gogpu/renderbuf/cache"
	"github.com/gogpu/renderbuf/internal/blend"
	"github.com/gogpu/renderbuf/internal/path"
	"github.com/gogpu/renderbuf/internal/raster"
)

// replacementChar is drawn for runes missing from a face.
const replacementChar = '�'

// maskPadding is the transparent border around every glyph mask, so
// bilinear sampling fades to zero instead of clamping at the edge.
const maskPadding = 1

// GlyphCacheConfig holds configuration for GlyphCache.
type GlyphCacheConfig struct {
	// MaxEntries is the maximum number of cached masks.
	// Default: 4096
	MaxEntries int

	// Tolerance is the curve flattening tolerance in pixels.
	// Default: 0.1
	Tolerance float64

	// Disabled makes every request rasterize afresh without storing the
	// result. Output is identical; only the cost changes.
	Disabled bool
}

// DefaultGlyphCacheConfig returns the default cache configuration.
func DefaultGlyphCacheConfig() GlyphCacheConfig {
	return GlyphCacheConfig{
		MaxEntries: 4096,
		Tolerance:  path.Tolerance,
	}
}

// GlyphKey uniquely identifies a cached glyph mask.
type GlyphKey struct {
	// FontID is Face.ID of the face the glyph came from.
	FontID uint64

	// Size is the font size in pixels per em, in 26.6 fixed point.
	Size fixed.Int26_6

	// Rune is the requested code point (before fallback).
	Rune rune
}

func hashGlyphKey(k GlyphKey) uint64 {
	return cache.Mix(k.FontID, uint64(k.Size), uint64(k.Rune))
}

// GlyphMask is a rasterized glyph.
type GlyphMask struct {
	// Mask holds 8-bit coverage. It is nil for glyphs without ink, such as
	// a space. Never modify a cached mask.
	Mask *image.Alpha

	// Left and Top place the mask's top-left corner relative to the pen
	// position on the baseline.
	Left, Top int

	// Advance is the horizontal pen advance in pixels.
	Advance float64

	// GID is the glyph actually rasterized, after fallback.
	GID GlyphID
}

// Empty reports whether the glyph has no ink.
func (g *GlyphMask) Empty() bool {
	return g == nil || g.Mask == nil
}

// GlyphCacheStats contains cache statistics.
type GlyphCacheStats struct {
	// Hits counts requests served from the cache.
	Hits uint64
	// Misses counts requests that were not cached.
	Misses uint64
	// Rasterizations counts glyph outlines turned into masks.
	Rasterizations uint64
	// Entries is the current number of cached masks.
	Entries int
}

// GlyphCache is a thread-safe LRU cache of rasterized glyph masks keyed by
// (font, size, rune).
//
// A missing key is rasterized while its shard is locked, so concurrent
// requests for the same key rasterize it exactly once.
type GlyphCache struct {
	config GlyphCacheConfig
	masks  *cache.ShardedCache[GlyphKey, *GlyphMask]

	rasterizations atomic.Uint64
	uncached       atomic.Uint64
}

// NewGlyphCache creates a glyph cache. Zero config fields take their
// defaults.
func NewGlyphCache(config GlyphCacheConfig) *GlyphCache {
	def := DefaultGlyphCacheConfig()
	if config.MaxEntries <= 0 {
		config.MaxEntries = def.MaxEntries
	}
	if !(config.Tolerance > 0) {
		config.Tolerance = def.Tolerance
	}
	perShard := (config.MaxEntries + cache.DefaultShardCount - 1) / cache.DefaultShardCount
	return &GlyphCache{
		config: config,
		masks:  cache.NewSharded[GlyphKey, *GlyphMask](perShard, hashGlyphKey),
	}
}

// Config returns the effective configuration.
func (c *GlyphCache) Config() GlyphCacheConfig {
	return c.config
}

func glyphKey(face Face, size float64, r rune) GlyphKey {
	return GlyphKey{FontID: face.ID(), Size: toFixed(size), Rune: r}
}

// Glyph returns the mask for r in face at size, rasterizing it on first
// use. Runes missing from the face fall back to U+FFFD, then to glyph 0.
func (c *GlyphCache) Glyph(face Face, size float64, r rune) *GlyphMask {
	key := glyphKey(face, size, r)

	build := func() *GlyphMask {
		c.rasterizations.Add(1)
		return rasterizeGlyph(face, fixedToFloat64(key.Size), r, c.config.Tolerance)
	}

	if c.config.Disabled {
		c.uncached.Add(1)
		return build()
	}
	return c.masks.GetOrCreate(key, build)
}

// Lookup returns the cached mask for r in face at size without rasterizing
// it. A found mask counts as a hit and becomes most recently used.
func (c *GlyphCache) Lookup(face Face, size float64, r rune) (*GlyphMask, bool) {
	if c.config.Disabled {
		return nil, false
	}
	return c.masks.Get(glyphKey(face, size, r))
}

// Forget drops the cached mask for r in face at size and reports whether
// one was cached. The next Glyph call rasterizes it again.
func (c *GlyphCache) Forget(face Face, size float64, r rune) bool {
	return c.masks.Delete(glyphKey(face, size, r))
}

// Stats returns current cache statistics.
func (c *GlyphCache) Stats() GlyphCacheStats {
	s := c.masks.Stats()
	return GlyphCacheStats{
		Hits:           s.Hits,
		Misses:         s.Misses + c.uncached.Load(),
		Rasterizations: c.rasterizations.Load(),
		Entries:        s.Len,
	}
}

// Len returns the number of cached masks.
func (c *GlyphCache) Len() int {
	return c.masks.Len()
}

// Clear drops every cached mask. Statistics are kept.
func (c *GlyphCache) Clear() {
	c.masks.Clear()
}

// ResetStats zeroes the hit, miss, eviction and rasterization counters.
// Cached masks are kept.
func (c *GlyphCache) ResetStats() {
	c.masks.ResetStats()
	c.rasterizations.Store(0)
	c.uncached.Store(0)
}

// RasterizeGlyph rasterizes one glyph without caching, with the same
// fallback rules as GlyphCache.Glyph.
func RasterizeGlyph(face Face, size float64, r rune) *GlyphMask {
	return rasterizeGlyph(face, fixedToFloat64(toFixed(size)), r, path.Tolerance)
}

// resolveGlyph maps r to a glyph, applying the fallback chain.
func resolveGlyph(face Face, r rune) GlyphID {
	if gid, ok := face.GlyphIndex(r); ok {
		return gid
	}
	if r != replacementChar {
		if gid, ok := face.GlyphIndex(replacementChar); ok {
			slogger().Debug("text: rune not in font, using U+FFFD", "rune", r)
			return gid
		}
	}
	slogger().Warn("text: rune not in font, using glyph 0", "rune", r)
	return 0
}

var rasterizers = sync.Pool{
	New: func() any { return raster.NewRasterizer(0, 0) },
}

func rasterizeGlyph(face Face, size float64, r rune, tolerance float64) *GlyphMask {
	gid := resolveGlyph(face, r)
	g := &GlyphMask{
		GID:     gid,
		Advance: face.Advance(gid, size),
	}

	segs, err := face.Outline(gid, size)
	if err != nil {
		slogger().Debug("text: glyph has no drawable outline", "rune", r, "gid", gid, "err", err)
		return g
	}
	contours := path.Flatten(outlinePath(segs).Elements(), tolerance)
	if len(contours) == 0 {
		return g
	}

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, c := range contours {
		for _, p := range c {
			minX, maxX = min(minX, p.X), max(maxX, p.X)
			minY, maxY = min(minY, p.Y), max(maxY, p.Y)
		}
	}
	if maxX <= minX || maxY <= minY {
		return g
	}

	left := int(math.Floor(minX)) - maskPadding
	top := int(math.Floor(minY)) - maskPadding
	w := int(math.Ceil(maxX)) + maskPadding - left
	h := int(math.Ceil(maxY)) + maskPadding - top

	ras := rasterizers.Get().(*raster.Rasterizer)
	defer rasterizers.Put(ras)
	ras.Resize(w, h)

	pts := make([]raster.Point, 0, 64)
	for _, c := range contours {
		pts = pts[:0]
		for _, p := range c {
			pts = append(pts, raster.Point{X: p.X - float64(left), Y: p.Y - float64(top)})
		}
		ras.AddContour(pts)
	}

	mask := image.NewAlpha(image.Rect(0, 0, w, h))
	ras.Fill(raster.FillRuleNonZero, func(y, x0 int, cov []float32) {
		row := mask.Pix[y*mask.Stride+x0:]
		for i, v := range cov {
			row[i] = blend.Quantize(v)
		}
	})

	g.Mask = mask
	g.Left = left
	g.Top = top
	return g
}

// outlinePath converts outline segments into a path.
func outlinePath(segs []Segment) *path.Path {
	var p path.Path
	for _, s := range segs {
		a := s.Args
		switch s.Op {
		case SegmentMoveTo:
			p.Close()
			p.MoveTo(a[0].X, a[0].Y)
		case SegmentLineTo:
			p.LineTo(a[0].X, a[0].Y)
		case SegmentQuadTo:
			p.QuadTo(a[0].X, a[0].Y, a[1].X, a[1].Y)
		case SegmentCubeTo:
			p.CubicTo(a[0].X, a[0].Y, a[1].X, a[1].Y, a[2].X, a[2].Y)
		}
	}
	p.Close()
	return &p
}
