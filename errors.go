package renderbuf

import (
	"errors"
	"fmt"
)

// Error kinds. Test with errors.Is(err, ErrDecode) and friends.
var (
	// ErrIO reports a filesystem or stream failure.
	ErrIO = errors.New("renderbuf: i/o error")

	// ErrDecode reports malformed or unsupported encoded image data.
	ErrDecode = errors.New("renderbuf: decode error")

	// ErrEncode reports a buffer that cannot be encoded in its current state.
	ErrEncode = errors.New("renderbuf: encode error")
)

// Causes wrapped inside *Error.
var (
	// ErrEmptyBuffer is returned when saving a buffer with zero width or
	// height.
	ErrEmptyBuffer = errors.New("renderbuf: buffer has zero width or height")

	// ErrUnsupportedFormat is returned for unknown or lossy file formats.
	ErrUnsupportedFormat = errors.New("renderbuf: unsupported image format")

	// ErrSizeMismatch is returned when raw pixel data does not match the
	// given dimensions.
	ErrSizeMismatch = errors.New("renderbuf: pixel data size mismatch")
)

// Error is a persistence error. Kind is one of ErrIO, ErrDecode or
// ErrEncode; Err is the underlying cause.
type Error struct {
	Kind error
	Op   string // "save", "load", "encode", "decode", ...
	Path string // file path, if any
	Err  error
}

func (e *Error) Error() string {
	msg := e.Kind.Error() + ": " + e.Op
	if e.Path != "" {
		msg += " " + e.Path
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap exposes both the kind and the cause to errors.Is and errors.As.
func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func ioError(op, path string, err error) error {
	return &Error{Kind: ErrIO, Op: op, Path: path, Err: err}
}

func decodeError(op, path string, err error) error {
	return &Error{Kind: ErrDecode, Op: op, Path: path, Err: err}
}

func encodeError(op, path string, err error) error {
	return &Error{Kind: ErrEncode, Op: op, Path: path, Err: err}
}

// errorf wraps err with a formatted renderbuf prefix.
func errorf(format string, args ...any) error {
	return fmt.Errorf("renderbuf: "+format, args...)
}
