// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build !nogpu

package texture

import (
	"errors"
	"testing"

	"github.com/gogpu/renderbuf"
)

func TestUploaderSyncSkipsFreshTexture(t *testing.T) {
	rb := newSource()
	creator := &mockCreator{}
	up := NewUploader(rb, Options{})
	defer up.Close()

	if up.Handle() != nil {
		t.Fatal("Handle() before Sync should be nil")
	}
	h1, err := up.Sync(creator)
	if err != nil {
		t.Fatalf("first Sync: %v", err)
	}
	h2, err := up.Sync(creator)
	if err != nil {
		t.Fatalf("second Sync: %v", err)
	}
	if h1 != h2 || len(creator.textures) != 1 || creator.textures[0].updated != 0 {
		t.Errorf("unchanged buffer re-uploaded: %d textures, %d updates",
			len(creator.textures), creator.textures[0].updated)
	}
}

func TestUploaderReusesTextureWhenSizeUnchanged(t *testing.T) {
	rb := newSource()
	creator := &mockCreator{}
	up := NewUploader(rb, Options{})
	defer up.Close()

	if _, err := up.Sync(creator); err != nil {
		t.Fatal(err)
	}
	rb.Clear(renderbuf.White)
	h, err := up.Sync(creator)
	if err != nil {
		t.Fatalf("Sync after draw: %v", err)
	}

	if len(creator.textures) != 1 {
		t.Fatalf("created %d textures, want 1", len(creator.textures))
	}
	tex := creator.textures[0]
	if tex.updated != 1 {
		t.Errorf("UpdateData called %d times, want 1", tex.updated)
	}
	if tex.data[0] != 255 || tex.data[2] != 255 {
		t.Errorf("texture data not refreshed: %v", tex.data)
	}
	if h.Stale(rb) {
		t.Error("handle stale right after Sync")
	}
}

func TestUploaderRecreatesOnResize(t *testing.T) {
	small := newSource()
	creator := &mockCreator{}
	up := NewUploader(small, Options{})

	if _, err := up.Sync(creator); err != nil {
		t.Fatal(err)
	}
	// Swap in a differently sized source.
	up.src = renderbuf.New(4, 4)
	h, err := up.Sync(creator)
	if err != nil {
		t.Fatalf("Sync after resize: %v", err)
	}
	if len(creator.textures) != 2 {
		t.Fatalf("created %d textures, want 2", len(creator.textures))
	}
	if h.Width() != 4 || h.Height() != 4 {
		t.Errorf("handle size %dx%d, want 4x4", h.Width(), h.Height())
	}

	old := creator.textures[0]
	if old.destroyed {
		t.Error("old texture destroyed before the next frame")
	}
	if err := up.RenderTo(&mockDrawer{creator: creator}, 0, 0); err != nil {
		t.Fatal(err)
	}
	if !old.destroyed {
		t.Error("old texture not destroyed after RenderTo")
	}

	if err := up.Close(); err != nil {
		t.Fatal(err)
	}
	if !creator.textures[1].destroyed {
		t.Error("Close did not destroy the current texture")
	}
}

func TestUploaderRecreatesWithoutUpdater(t *testing.T) {
	rb := newSource()
	creator := &mockCreator{plain: true}
	up := NewUploader(rb, Options{})
	defer up.Close()

	h1, err := up.Sync(creator)
	if err != nil {
		t.Fatal(err)
	}
	rb.SetPixel(1, 0, renderbuf.Red)
	h2, err := up.Sync(creator)
	if err != nil {
		t.Fatal(err)
	}
	if h1 == h2 || h1.Texture == h2.Texture {
		t.Error("texture without UpdateData should be recreated")
	}
}

func TestUploaderRenderTo(t *testing.T) {
	rb := newSource()
	drawer := &mockDrawer{creator: &mockCreator{}}
	up := NewUploader(rb, Options{Premultiply: true})
	defer up.Close()

	if err := up.RenderTo(drawer, 10, 20); err != nil {
		t.Fatalf("RenderTo: %v", err)
	}
	if drawer.drawCount != 1 || drawer.x != 10 || drawer.y != 20 {
		t.Errorf("drawn %d times at (%v,%v)", drawer.drawCount, drawer.x, drawer.y)
	}
	if drawer.drawn != up.Handle().Texture {
		t.Error("RenderTo drew a different texture than the handle")
	}
	if !drawer.creator.textures[0].premultiplied {
		t.Error("premultiplied option not applied")
	}
}

func TestUploaderErrors(t *testing.T) {
	rb := newSource()

	t.Run("update failure", func(t *testing.T) {
		creator := &mockCreator{}
		up := NewUploader(rb, Options{})
		defer up.Close()
		if _, err := up.Sync(creator); err != nil {
			t.Fatal(err)
		}
		creator.textures[0].failUpdate = true
		rb.Touch()
		if _, err := up.Sync(creator); err == nil {
			t.Error("Sync should surface UpdateData failures")
		}
	})

	t.Run("creation failure", func(t *testing.T) {
		up := NewUploader(rb, Options{})
		defer up.Close()
		if _, err := up.Sync(&mockCreator{failNext: true}); err == nil {
			t.Error("Sync should surface creation failures")
		}
		if up.Handle() != nil {
			t.Error("failed Sync left a handle behind")
		}
	})

	t.Run("closed", func(t *testing.T) {
		up := NewUploader(rb, Options{})
		if err := up.Close(); err != nil {
			t.Fatal(err)
		}
		if err := up.Close(); err != nil {
			t.Errorf("second Close() = %v, want nil", err)
		}
		if _, err := up.Sync(&mockCreator{}); !errors.Is(err, ErrClosed) {
			t.Errorf("Sync after Close = %v, want ErrClosed", err)
		}
		if err := up.RenderTo(&mockDrawer{creator: &mockCreator{}}, 0, 0); !errors.Is(err, ErrClosed) {
			t.Errorf("RenderTo after Close = %v, want ErrClosed", err)
		}
	})
}
