// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build !nogpu

package texture

import (
	"fmt"

	"github.com/gogpu/gpucontext"

	"github.com/gogpu/renderbuf"
)

// Uploader keeps one texture in step with a buffer across frames.
//
// Uploader is NOT safe for concurrent use.
type Uploader struct {
	src    Source
	opts   Options
	handle *Handle

	// old waits for the next successful upload before it is destroyed; the
	// GPU may still be sampling it from an in-flight frame.
	old    gpucontext.Texture
	closed bool
}

// NewUploader creates an uploader for src. No texture is created until the
// first Sync or RenderTo.
func NewUploader(src Source, opts Options) *Uploader {
	return &Uploader{src: src, opts: opts}
}

// Handle returns the current handle, or nil before the first Sync.
func (u *Uploader) Handle() *Handle { return u.handle }

// Sync makes the texture match the buffer. It does nothing while the
// handle is fresh. A stale texture of the same size is updated in place
// when it implements gpucontext.TextureUpdater; otherwise a new texture is
// created and the old one destroyed.
func (u *Uploader) Sync(creator gpucontext.TextureCreator) (*Handle, error) {
	if u.closed {
		return nil, ErrClosed
	}
	if !u.handle.Stale(u.src) {
		return u.handle, nil
	}

	if h := u.handle; h != nil && h.width == u.src.Width() && h.height == u.src.Height() {
		if updater, ok := h.Texture.(gpucontext.TextureUpdater); ok {
			data, _, err := pixels(u.src, u.opts)
			if err != nil {
				return nil, err
			}
			if err := updater.UpdateData(data); err != nil {
				return nil, fmt.Errorf("texture: update failed: %w", err)
			}
			h.Generation = u.src.Generation()
			renderbuf.Logger().Debug("texture: updated in place", "generation", h.Generation)
			return h, nil
		}
	}

	h, err := Export(creator, u.src, u.opts)
	if err != nil {
		return nil, err
	}
	destroy(u.old)
	if u.handle != nil {
		u.old = u.handle.Texture
	}
	u.handle = h
	return h, nil
}

// RenderTo syncs the texture using the drawer's creator and draws it at
// (x, y).
func (u *Uploader) RenderTo(drawer gpucontext.TextureDrawer, x, y float32) error {
	if u.closed {
		return ErrClosed
	}
	h, err := u.Sync(drawer.TextureCreator())
	if err != nil {
		return err
	}
	destroy(u.old)
	u.old = nil
	return drawer.DrawTexture(h.Texture, x, y)
}

// Close destroys the textures the uploader owns. Close is idempotent.
func (u *Uploader) Close() error {
	if u.closed {
		return nil
	}
	u.closed = true
	destroy(u.old)
	u.old = nil
	if u.handle != nil {
		destroy(u.handle.Texture)
		u.handle = nil
	}
	return nil
}

func destroy(tex gpucontext.Texture) {
	if d, ok := tex.(textureDestroyer); ok {
		d.Destroy()
	}
}
