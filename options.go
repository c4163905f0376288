package renderbuf

import (
	"github.com/gogpu/renderbuf/internal/image"
	"github.com/gogpu/renderbuf/internal/path"
)

// Option configures a RenderBuffer during creation.
//
// Example:
//
//	// Default: sequential, bilinear image sampling, butt line caps
//	rb := renderbuf.New(800, 600)
//
//	// Band-parallel rendering on 4 goroutines
//	rb := renderbuf.New(800, 600, renderbuf.WithParallelism(4))
type Option func(*options)

// options holds optional configuration for RenderBuffer creation.
type options struct {
	parallelism   int
	interpolation Interpolation
	lineCap       LineCap
	tolerance     float64
	pixmap        *Pixmap
}

// defaultOptions returns the default buffer options.
func defaultOptions() options {
	return options{
		parallelism:   1,
		interpolation: InterpBilinear,
		lineCap:       LineCapButt,
		tolerance:     path.Tolerance,
	}
}

// Interpolation selects how images are sampled when blitted.
type Interpolation = image.InterpolationMode

const (
	// InterpNearest picks the source pixel containing each sample point.
	InterpNearest = image.InterpNearest
	// InterpBilinear blends the four nearest source pixels.
	InterpBilinear = image.InterpBilinear
)

// WithParallelism splits row-independent work into up to n disjoint row
// bands run on a shared worker pool. n <= 1 renders sequentially. Output
// is byte-identical either way.
func WithParallelism(n int) Option {
	return func(o *options) {
		o.parallelism = max(n, 1)
	}
}

// WithInterpolation sets the image sampling mode. Default: InterpBilinear.
func WithInterpolation(mode Interpolation) Option {
	return func(o *options) {
		o.interpolation = mode
	}
}

// WithLineCap sets the initial line cap. Default: LineCapButt.
func WithLineCap(c LineCap) Option {
	return func(o *options) {
		o.lineCap = c
	}
}

// WithTolerance sets the curve flattening tolerance in device pixels.
// Non-positive values are ignored. Default: 0.1.
func WithTolerance(tol float64) Option {
	return func(o *options) {
		if tol > 0 {
			o.tolerance = tol
		}
	}
}

// WithPixmap renders into an existing pixmap instead of allocating one.
// The buffer takes the pixmap's dimensions.
//
// Example:
//
//	pm := renderbuf.NewPixmap(800, 600)
//	rb := renderbuf.New(0, 0, renderbuf.WithPixmap(pm))
func WithPixmap(pm *Pixmap) Option {
	return func(o *options) {
		o.pixmap = pm
	}
}
