package renderbuf

import (
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"

	"github.com/gogpu/renderbuf/internal/blend"
)

// Pixmap is a rectangular straight-alpha RGBA8 pixel buffer, row-major with
// the origin at the top-left.
type Pixmap struct {
	width  int
	height int
	data   []uint8 // RGBA format, 4 bytes per pixel
}

// NewPixmap creates a new transparent pixmap with the given dimensions.
// Negative dimensions are treated as zero. Dimensions whose byte size
// overflows int give an empty 0×0 pixmap.
func NewPixmap(width, height int) *Pixmap {
	width, height = max(width, 0), max(height, 0)
	if _, ok := pixelBytes(width, height); !ok {
		Logger().Warn("renderbuf: pixmap size overflows, using 0x0", "width", width, "height", height)
		width, height = 0, 0
	}
	return &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
}

// pixelBytes returns width*height*4, or false when either dimension is
// negative or the product overflows int.
func pixelBytes(width, height int) (int, bool) {
	if width < 0 || height < 0 {
		return 0, false
	}
	if width > 0 && height > math.MaxInt/4/width {
		return 0, false
	}
	return width * height * 4, true
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// Stride returns the number of bytes per row.
func (p *Pixmap) Stride() int {
	return p.width * 4
}

// Data returns the raw pixel data (RGBA format).
func (p *Pixmap) Data() []uint8 {
	return p.data
}

// row returns the bytes of row y.
func (p *Pixmap) row(y int) []uint8 {
	s := p.Stride()
	return p.data[y*s : (y+1)*s]
}

// SetPixel sets the color of a single pixel. Out-of-range coordinates are
// ignored.
func (p *Pixmap) SetPixel(x, y int, c RGBA) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	i := (y*p.width + x) * 4
	b := c.bytes()
	copy(p.data[i:i+4], b[:])
}

// GetPixel returns the color of a single pixel, or Transparent out of range.
func (p *Pixmap) GetPixel(x, y int) RGBA {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return Transparent
	}
	i := (y*p.width + x) * 4
	return fromBytes(p.data[i], p.data[i+1], p.data[i+2], p.data[i+3])
}

// Clear fills the entire pixmap with a color.
func (p *Pixmap) Clear(c RGBA) {
	blend.Fill(p.data, c.bytes())
}

// clearRows fills rows [y0, y1) with px.
func (p *Pixmap) clearRows(y0, y1 int, px [4]uint8) {
	s := p.Stride()
	blend.Fill(p.data[y0*s:y1*s], px)
}

// Clone returns a deep copy of the pixmap.
func (p *Pixmap) Clone() *Pixmap {
	return &Pixmap{
		width:  p.width,
		height: p.height,
		data:   append([]uint8(nil), p.data...),
	}
}

// ToImage copies the pixmap into an image.NRGBA.
func (p *Pixmap) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, p.width, p.height))
	copy(img.Pix, p.data)
	return img
}

// nrgba returns an image.NRGBA view sharing the pixmap's memory.
func (p *Pixmap) nrgba() *image.NRGBA {
	return &image.NRGBA{
		Pix:    p.data,
		Stride: p.Stride(),
		Rect:   image.Rect(0, 0, p.width, p.height),
	}
}

// FromImage creates a pixmap from an image, converting it to straight
// alpha.
func FromImage(img image.Image) *Pixmap {
	n := imaging.Clone(img)
	return &Pixmap{
		width:  n.Rect.Dx(),
		height: n.Rect.Dy(),
		data:   n.Pix,
	}
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return color.NRGBA{}
	}
	i := (y*p.width + x) * 4
	return color.NRGBA{R: p.data[i], G: p.data[i+1], B: p.data[i+2], A: p.data[i+3]}
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.NRGBAModel
}
