// Package errors provides structured error types for clip2png.
// These errors record which operation failed and what category of failure it was.
package errors

import (
	"errors"
	"fmt"
	"io/fs"
)

// Op describes an operation, usually as "package.function".
type Op string

// Kind categorizes the type of error.
type Kind int

const (
	KindUnknown Kind = iota
	KindPermission
	KindIO
	KindClipboard
	KindEncode
)

func (k Kind) String() string {
	switch k {
	case KindPermission:
		return "permission denied"
	case KindIO:
		return "I/O error"
	case KindClipboard:
		return "clipboard error"
	case KindEncode:
		return "encode error"
	default:
		return "unknown error"
	}
}

// Error is the structured error type for clip2png.
type Error struct {
	Op      Op     // Operation that failed
	Kind    Kind   // Category of error
	Err     error  // Underlying error
	Context string // Additional context
}

// Error returns the error message.
func (e *Error) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s: %s: %s", e.Op, e.Context, e.Err)
	}
	if e.Op != "" {
		return fmt.Sprintf("%s: %s", e.Op, e.Err)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// E creates a new Error. Arguments can be:
// - Op: the operation name
// - Kind: the error kind
// - string: context message
// - error: the underlying error
func E(args ...interface{}) error {
	e := &Error{}
	for _, arg := range args {
		switch a := arg.(type) {
		case Op:
			e.Op = a
		case Kind:
			e.Kind = a
		case string:
			e.Context = a
		case error:
			e.Err = a
		}
	}
	if e.Err == nil {
		e.Err = errors.New(e.Context)
		e.Context = ""
	}
	return e
}

// Is reports whether err is of the given Kind.
func Is(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// GetKind returns the Kind of an error.
func GetKind(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// fsKind picks KindPermission for permission failures and fallback otherwise.
func fsKind(err error, fallback Kind) Kind {
	if errors.Is(err, fs.ErrPermission) {
		return KindPermission
	}
	return fallback
}

// Clipboard errors
func ClipboardInitFailed(err error) error {
	return E(Op("clipboard.Init"), KindClipboard, "failed to initialize clipboard", err)
}

func ClipboardDecodeFailed(err error) error {
	return E(Op("clipboard.Decode"), KindClipboard, "failed to decode clipboard image", err)
}

// Output errors
func DirectoryCreateFailed(dir string, err error) error {
	return E(Op("exporter.Save"), fsKind(err, KindIO), fmt.Sprintf("failed to create directory %s", dir), err)
}

func EncodeFailed(path string, err error) error {
	return E(Op("exporter.Save"), KindEncode, fmt.Sprintf("failed to encode PNG for %s", path), err)
}

func WriteFailed(path string, err error) error {
	return E(Op("exporter.Save"), fsKind(err, KindIO), fmt.Sprintf("failed to write %s", path), err)
}
