// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build !nogpu

package texture

import (
	"errors"
	"fmt"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/renderbuf"
	"github.com/gogpu/renderbuf/internal/blend"
)

// Export errors.
var (
	// ErrNilCreator is returned when no texture creator is available.
	ErrNilCreator = errors.New("texture: nil TextureCreator")

	// ErrEmptySource is returned for a source with zero width or height.
	ErrEmptySource = errors.New("texture: source has zero width or height")

	// ErrUnsupportedFormat is returned for texture formats other than
	// RGBA8Unorm and BGRA8Unorm.
	ErrUnsupportedFormat = errors.New("texture: unsupported texture format")

	// ErrClosed is returned by a closed Uploader.
	ErrClosed = errors.New("texture: uploader is closed")
)

// Source is a pixel buffer that can be exported. *renderbuf.RenderBuffer
// implements it.
type Source interface {
	Width() int
	Height() int
	// Snapshot returns a copy of the straight-alpha RGBA8 pixels.
	Snapshot() []byte
	// Generation changes whenever the pixels change.
	Generation() uint64
}

var _ Source = (*renderbuf.RenderBuffer)(nil)

// Options controls pixel conversion before upload.
type Options struct {
	// Format is the byte order of the uploaded data. The zero value
	// (TextureFormatUndefined) means RGBA8Unorm.
	Format gputypes.TextureFormat

	// Premultiply converts straight alpha to premultiplied alpha and marks
	// the texture premultiplied when it supports SetPremultiplied.
	Premultiply bool
}

// Handle is an exported texture and the buffer state it was made from.
type Handle struct {
	Texture    gpucontext.Texture
	Format     gputypes.TextureFormat
	Generation uint64

	width, height int
	premultiplied bool
}

// Width returns the exported width in pixels.
func (h *Handle) Width() int { return h.width }

// Height returns the exported height in pixels.
func (h *Handle) Height() int { return h.height }

// Premultiplied reports whether the uploaded pixels carry premultiplied
// alpha.
func (h *Handle) Premultiplied() bool { return h.premultiplied }

// Stale reports whether src has been drawn into or resized since the
// handle was exported. A nil handle is always stale.
func (h *Handle) Stale(src Source) bool {
	if h == nil {
		return true
	}
	return src.Generation() != h.Generation || src.Width() != h.width || src.Height() != h.height
}

// textureDestroyer matches gogpu.Texture.Destroy.
type textureDestroyer interface {
	Destroy()
}

// premultipliedSetter matches gogpu.Texture.SetPremultiplied.
type premultipliedSetter interface {
	SetPremultiplied(bool)
}

// FormatFor returns the upload format matching the provider's surface:
// BGRA8Unorm for BGRA surfaces, RGBA8Unorm otherwise, including headless
// providers and a nil provider.
func FormatFor(provider gpucontext.DeviceProvider) gputypes.TextureFormat {
	if provider == nil {
		return gputypes.TextureFormatRGBA8Unorm
	}
	if provider.SurfaceFormat() == gputypes.TextureFormatBGRA8Unorm {
		return gputypes.TextureFormatBGRA8Unorm
	}
	return gputypes.TextureFormatRGBA8Unorm
}

// Export copies src into a new texture created by creator.
func Export(creator gpucontext.TextureCreator, src Source, opts Options) (*Handle, error) {
	if creator == nil {
		return nil, ErrNilCreator
	}
	data, format, err := pixels(src, opts)
	if err != nil {
		return nil, err
	}

	w, h := src.Width(), src.Height()
	tex, err := creator.NewTextureFromRGBA(w, h, data)
	if err != nil {
		return nil, fmt.Errorf("texture: NewTextureFromRGBA failed: %w", err)
	}
	if opts.Premultiply {
		if ps, ok := tex.(premultipliedSetter); ok {
			ps.SetPremultiplied(true)
		}
	}

	renderbuf.Logger().Debug("texture: exported",
		"width", w, "height", h, "format", format, "premultiplied", opts.Premultiply)

	return &Handle{
		Texture:       tex,
		Format:        format,
		Generation:    src.Generation(),
		width:         w,
		height:        h,
		premultiplied: opts.Premultiply,
	}, nil
}

// pixels snapshots src and converts it for upload.
func pixels(src Source, opts Options) ([]byte, gputypes.TextureFormat, error) {
	format := opts.Format
	switch format {
	case gputypes.TextureFormatUndefined:
		format = gputypes.TextureFormatRGBA8Unorm
	case gputypes.TextureFormatRGBA8Unorm, gputypes.TextureFormatBGRA8Unorm:
	default:
		return nil, format, fmt.Errorf("%w: %v", ErrUnsupportedFormat, format)
	}
	if src.Width() <= 0 || src.Height() <= 0 {
		return nil, format, ErrEmptySource
	}

	data := src.Snapshot()
	if opts.Premultiply {
		blend.Premultiply(data)
	}
	if format == gputypes.TextureFormatBGRA8Unorm {
		blend.SwapRB(data)
	}
	return data, format, nil
}
