package renderbuf

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"

	"github.com/disintegration/imaging"
)

// Format is a raster file format.
type Format = imaging.Format

// Formats accepted by Save and Encode. Both keep 8-bit straight alpha, so
// a saved buffer loads back byte for byte. BMP and the lossy formats are
// decode-only.
const (
	PNG  = imaging.PNG
	TIFF = imaging.TIFF
)

// pngMagic starts every PNG stream.
const pngMagic = "\x89PNG\r\n\x1a\n"

// FormatFromPath picks the format from a file extension. Formats that
// cannot round-trip alpha (JPEG, GIF, BMP) and unknown extensions return
// ErrUnsupportedFormat.
func FormatFromPath(path string) (Format, error) {
	f, err := imaging.FormatFromFilename(path)
	if err != nil {
		return -1, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
	if !lossless(f) {
		return -1, fmt.Errorf("%w: %s does not preserve alpha", ErrUnsupportedFormat, f)
	}
	return f, nil
}

func lossless(f Format) bool {
	switch f {
	case PNG, TIFF:
		return true
	}
	return false
}

// Save encodes the buffer into the file at path, choosing the format from
// the extension (.png, .tif/.tiff). A buffer with zero width or
// height, or an unsupported format, fails with ErrEncode; filesystem
// failures fail with ErrIO.
func (rb *RenderBuffer) Save(path string) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return encodeError("save", path, err)
	}

	var buf bytes.Buffer
	if err := rb.Encode(&buf, format); err != nil {
		var e *Error
		if errors.As(err, &e) {
			e.Op, e.Path = "save", path
		}
		return err
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil { //nolint:gosec // path is user-provided intentionally
		return ioError("save", path, err)
	}
	Logger().Debug("renderbuf: saved", "path", path, "format", format, "bytes", buf.Len())
	return nil
}

// Encode writes the buffer to w in format. Write failures fail with ErrIO,
// anything else with ErrEncode.
func (rb *RenderBuffer) Encode(w io.Writer, format Format) error {
	if rb.Width() == 0 || rb.Height() == 0 {
		return encodeError("encode", "", ErrEmptyBuffer)
	}
	if !lossless(format) {
		return encodeError("encode", "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, format))
	}

	ew := &errWriter{w: w}
	err := imaging.Encode(ew, rb.pm.nrgba(), format, imaging.PNGCompressionLevel(png.DefaultCompression))
	switch {
	case ew.err != nil:
		return ioError("encode", "", ew.err)
	case err != nil:
		return encodeError("encode", "", err)
	}
	return nil
}

// ToBytes returns the buffer encoded in format.
func (rb *RenderBuffer) ToBytes(format Format) ([]byte, error) {
	var buf bytes.Buffer
	if err := rb.Encode(&buf, format); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Load decodes the image file at path into a new buffer sized to the
// image. Filesystem failures fail with ErrIO, malformed data with
// ErrDecode.
func Load(path string, opts ...Option) (*RenderBuffer, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return nil, ioError("load", path, err)
	}
	pm, err := decodePixmap(data)
	if err != nil {
		return nil, decodeError("load", path, err)
	}
	Logger().Debug("renderbuf: loaded", "path", path, "width", pm.Width(), "height", pm.Height())
	return newFromPixmap(pm, opts), nil
}

// FromBytes decodes an encoded image (PNG, TIFF, BMP, or anything else
// imaging can read) into a new buffer.
func FromBytes(data []byte, opts ...Option) (*RenderBuffer, error) {
	pm, err := decodePixmap(data)
	if err != nil {
		return nil, decodeError("decode", "", err)
	}
	return newFromPixmap(pm, opts), nil
}

// Decode reads an encoded image from r into a new buffer. Read failures
// fail with ErrIO, malformed data with ErrDecode.
func Decode(r io.Reader, opts ...Option) (*RenderBuffer, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, ioError("decode", "", err)
	}
	return FromBytes(data, opts...)
}

// decodePixmap decodes data, taking the PNG fast path when the magic
// matches.
func decodePixmap(data []byte) (*Pixmap, error) {
	var (
		img image.Image
		err error
	)
	if bytes.HasPrefix(data, []byte(pngMagic)) {
		img, err = png.Decode(bytes.NewReader(data))
	} else {
		img, err = imaging.Decode(bytes.NewReader(data))
	}
	if err != nil {
		return nil, err
	}
	if b := img.Bounds(); b.Dx() == 0 || b.Dy() == 0 {
		return nil, ErrEmptyBuffer
	}
	return FromImage(img), nil
}

// FromRaw creates a buffer from raw straight-alpha RGBA bytes, row-major,
// 4*width bytes per row. The data is copied. A length other than
// width*height*4 fails with ErrDecode wrapping ErrSizeMismatch.
func FromRaw(width, height int, rgba []byte, opts ...Option) (*RenderBuffer, error) {
	if n, ok := pixelBytes(width, height); !ok || len(rgba) != n {
		return nil, decodeError("from raw", "",
			fmt.Errorf("%w: %d bytes for %dx%d", ErrSizeMismatch, len(rgba), width, height))
	}
	pm := NewPixmap(width, height)
	copy(pm.data, rgba)
	return newFromPixmap(pm, opts), nil
}

// UpdateRegion copies a w×h block of raw RGBA bytes to (x, y). The parts
// of the block outside the buffer are dropped. It fails only when rgba is
// not w*h*4 bytes long.
func (rb *RenderBuffer) UpdateRegion(x, y, w, h int, rgba []byte) error {
	if n, ok := pixelBytes(w, h); !ok || len(rgba) != n {
		return errorf("update region: %w: %d bytes for %dx%d", ErrSizeMismatch, len(rgba), w, h)
	}

	x0, y0 := max(x, 0), max(y, 0)
	x1, y1 := min(x+w, rb.Width()), min(y+h, rb.Height())
	if x0 >= x1 || y0 >= y1 {
		return nil
	}
	for dy := y0; dy < y1; dy++ {
		srcOff := ((dy-y)*w + (x0 - x)) * 4
		copy(rb.pm.row(dy)[4*x0:4*x1], rgba[srcOff:])
	}
	rb.Touch()
	return nil
}

// errWriter remembers the first write error so Encode can tell i/o
// failures from encoder failures.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	if err != nil {
		e.err = err
	}
	return n, err
}
