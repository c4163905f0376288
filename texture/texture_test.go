// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build !nogpu

package texture

import (
	"errors"
	"testing"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/google/go-cmp/cmp"

	"github.com/gogpu/renderbuf"
)

// mockTexture implements gpucontext.Texture, TextureUpdater, Destroy and
// SetPremultiplied.
type mockTexture struct {
	width, height int
	data          []byte
	updated       int
	destroyed     bool
	premultiplied bool
	failUpdate    bool
}

func (m *mockTexture) Width() int  { return m.width }
func (m *mockTexture) Height() int { return m.height }

func (m *mockTexture) UpdateData(data []byte) error {
	if m.failUpdate {
		return errors.New("mock update failed")
	}
	m.data = append(m.data[:0], data...)
	m.updated++
	return nil
}

func (m *mockTexture) Destroy()                { m.destroyed = true }
func (m *mockTexture) SetPremultiplied(p bool) { m.premultiplied = p }

// plainTexture implements only gpucontext.Texture.
type plainTexture struct{ width, height int }

func (p *plainTexture) Width() int  { return p.width }
func (p *plainTexture) Height() int { return p.height }

// mockCreator implements gpucontext.TextureCreator.
type mockCreator struct {
	textures []*mockTexture
	plain    bool
	failNext bool
}

func (m *mockCreator) NewTextureFromRGBA(width, height int, data []byte) (gpucontext.Texture, error) {
	if m.failNext {
		m.failNext = false
		return nil, errors.New("mock texture creation failed")
	}
	if m.plain {
		return &plainTexture{width, height}, nil
	}
	tex := &mockTexture{width: width, height: height, data: append([]byte(nil), data...)}
	m.textures = append(m.textures, tex)
	return tex, nil
}

// mockDrawer implements gpucontext.TextureDrawer.
type mockDrawer struct {
	creator   *mockCreator
	drawn     gpucontext.Texture
	x, y      float32
	drawCount int
}

func (m *mockDrawer) DrawTexture(tex gpucontext.Texture, x, y float32) error {
	m.drawn, m.x, m.y = tex, x, y
	m.drawCount++
	return nil
}

func (m *mockDrawer) TextureCreator() gpucontext.TextureCreator { return m.creator }

// mockProvider implements gpucontext.DeviceProvider.
type mockProvider struct {
	format gputypes.TextureFormat
}

func (m *mockProvider) Device() gpucontext.Device             { return nil }
func (m *mockProvider) Queue() gpucontext.Queue               { return nil }
func (m *mockProvider) Adapter() gpucontext.Adapter           { return nil }
func (m *mockProvider) AdapterInfo() gpucontext.AdapterInfo   { return gpucontext.AdapterInfo{} }
func (m *mockProvider) SurfaceFormat() gputypes.TextureFormat { return m.format }

func newSource() *renderbuf.RenderBuffer {
	rb := renderbuf.New(2, 1)
	rb.SetPixel(0, 0, renderbuf.RGBA{R: 1, G: 0.2, B: 0, A: 1})
	rb.SetPixel(1, 0, renderbuf.RGBA{R: 0, G: 0, B: 1, A: 0.2})
	return rb
}

func TestExport(t *testing.T) {
	// Straight pixels: (255,51,0,255) and (0,0,255,51).
	tests := []struct {
		name string
		opts Options
		want []byte
		fmt  gputypes.TextureFormat
	}{
		{"default rgba", Options{}, []byte{255, 51, 0, 255, 0, 0, 255, 51}, gputypes.TextureFormatRGBA8Unorm},
		{"bgra", Options{Format: gputypes.TextureFormatBGRA8Unorm}, []byte{0, 51, 255, 255, 255, 0, 0, 51}, gputypes.TextureFormatBGRA8Unorm},
		{"premultiplied", Options{Premultiply: true}, []byte{255, 51, 0, 255, 0, 0, 51, 51}, gputypes.TextureFormatRGBA8Unorm},
		{"premultiplied bgra", Options{Format: gputypes.TextureFormatBGRA8Unorm, Premultiply: true}, []byte{0, 51, 255, 255, 51, 0, 0, 51}, gputypes.TextureFormatBGRA8Unorm},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rb := newSource()
			creator := &mockCreator{}
			h, err := Export(creator, rb, tt.opts)
			if err != nil {
				t.Fatalf("Export() error = %v", err)
			}
			tex := creator.textures[0]
			if diff := cmp.Diff(tt.want, tex.data); diff != "" {
				t.Errorf("uploaded pixels (-want +got):\n%s", diff)
			}
			if h.Format != tt.fmt {
				t.Errorf("Format = %v, want %v", h.Format, tt.fmt)
			}
			if tex.premultiplied != tt.opts.Premultiply || h.Premultiplied() != tt.opts.Premultiply {
				t.Errorf("premultiplied = %v/%v, want %v", tex.premultiplied, h.Premultiplied(), tt.opts.Premultiply)
			}
			if h.Width() != 2 || h.Height() != 1 {
				t.Errorf("handle size %dx%d, want 2x1", h.Width(), h.Height())
			}
			// The buffer itself keeps straight RGBA.
			if got := rb.Snapshot()[6]; got != 255 {
				t.Errorf("Export modified the source buffer: blue = %d", got)
			}
		})
	}
}

func TestExportErrors(t *testing.T) {
	failing := &mockCreator{failNext: true}
	tests := []struct {
		name    string
		creator gpucontext.TextureCreator
		src     Source
		opts    Options
		wantErr error
	}{
		{"nil creator", nil, newSource(), Options{}, ErrNilCreator},
		{"empty source", &mockCreator{}, renderbuf.New(0, 4), Options{}, ErrEmptySource},
		{"unsupported format", &mockCreator{}, newSource(), Options{Format: gputypes.TextureFormatR8Unorm}, ErrUnsupportedFormat},
		{"creation failure", failing, newSource(), Options{}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, err := Export(tt.creator, tt.src, tt.opts)
			if err == nil {
				t.Fatal("Export() error = nil")
			}
			if h != nil {
				t.Error("Export() returned a handle alongside an error")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("Export() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestHandleStale(t *testing.T) {
	rb := newSource()
	h, err := Export(&mockCreator{}, rb, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if h.Stale(rb) {
		t.Error("fresh handle reported stale")
	}
	rb.SetPixel(0, 0, renderbuf.Black)
	if !h.Stale(rb) {
		t.Error("handle not stale after the buffer was drawn into")
	}

	var nilHandle *Handle
	if !nilHandle.Stale(rb) {
		t.Error("nil handle must be stale")
	}
}

func TestFormatFor(t *testing.T) {
	tests := []struct {
		name     string
		provider gpucontext.DeviceProvider
		want     gputypes.TextureFormat
	}{
		{"bgra surface", &mockProvider{format: gputypes.TextureFormatBGRA8Unorm}, gputypes.TextureFormatBGRA8Unorm},
		{"rgba surface", &mockProvider{format: gputypes.TextureFormatRGBA8Unorm}, gputypes.TextureFormatRGBA8Unorm},
		{"headless", &mockProvider{format: gputypes.TextureFormatUndefined}, gputypes.TextureFormatRGBA8Unorm},
		{"nil provider", nil, gputypes.TextureFormatRGBA8Unorm},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatFor(tt.provider); got != tt.want {
				t.Errorf("FormatFor() = %v, want %v", got, tt.want)
			}
		})
	}
}
