// Package renderbuf provides a software render target for 2D vector drawing.
//
// # Overview
//
// A RenderBuffer owns an in-memory RGBA8 pixel store and implements Surface,
// the drawing interface a host 2D API targets: filled polygons, lines,
// images and text, each under an affine Matrix. Results are blended into
// the store with the "over" operator and can be saved to or loaded from
// lossless raster files, or exported as a GPU texture (package texture).
//
// # Quick Start
//
//	import "github.com/gogpu/renderbuf"
//
//	rb := renderbuf.New(512, 512)
//	rb.Clear(renderbuf.White)
//
//	// Draw shapes
//	rb.FillEllipse(renderbuf.Rect{X: 56, Y: 56, W: 400, H: 400}, renderbuf.Red, renderbuf.Identity())
//
//	// Save to PNG
//	if err := rb.Save("output.png"); err != nil {
//		log.Fatal(err)
//	}
//
// # Anti-aliasing
//
// Polygons are rasterized with analytic coverage: the exact fraction of each
// pixel covered by the shape is computed from signed edge areas, with no
// supersampling. A pixel fully inside an opaque shape is replaced exactly.
//
// # Architecture
//
// The library is organized into:
//   - Public API: RenderBuffer, Surface, Pixmap, Matrix, Point, Rect, RGBA
//   - Internal: raster (coverage), blend (compositing), image (sampling),
//     path (curve flattening), parallel (row bands)
//   - Sub-packages: text (faces, glyph cache, layout), cache (sharded LRU),
//     texture (GPU export)
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Pixel (x, y) covers [x, x+1)×[y, y+1)
//
// # Concurrency
//
// A RenderBuffer is not safe for concurrent draws. WithParallelism splits
// row-independent work into disjoint bands; the output is byte-identical to
// sequential rendering.
package renderbuf

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
