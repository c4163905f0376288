// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package texture hands renderbuf buffers to a GPU toolkit as textures.
//
// The data flow is one way:
//
//	RenderBuffer (draw) -> Snapshot (CPU) -> GPU Texture -> Window
//
// A texture is a copy. Drawing into the buffer after Export does not change
// the texture; Handle.Stale reports when a re-export is due.
//
// # Usage
//
// One-shot export:
//
//	h, err := texture.Export(drawer.TextureCreator(), rb, texture.Options{})
//	if err != nil {
//	    return err
//	}
//	drawer.DrawTexture(h.Texture, 0, 0)
//
// Per-frame upload, reusing the texture while the size is unchanged:
//
//	up := texture.NewUploader(rb, texture.Options{Premultiply: true})
//	defer up.Close()
//
//	app.OnDraw(func(dc *gogpu.Context) {
//	    rb.DrawPolygon(...)
//	    up.RenderTo(dc.AsTextureDrawer(), 0, 0)
//	})
//
// The package builds unless the nogpu tag is set, so headless programs can
// drop the gpucontext dependency entirely.
package texture
