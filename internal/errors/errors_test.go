package errors

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"testing"
)

func TestKind_String(t *testing.T) {
	tests := []struct {
		kind     Kind
		expected string
	}{
		{KindUnknown, "unknown error"},
		{KindPermission, "permission denied"},
		{KindIO, "I/O error"},
		{KindClipboard, "clipboard error"},
		{KindEncode, "encode error"},
		{Kind(999), "unknown error"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.kind.String(); got != tt.expected {
				t.Errorf("Kind.String() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		expected string
	}{
		{
			name:     "with op and context",
			err:      &Error{Op: "test.Op", Context: "some context", Err: errors.New("underlying error")},
			expected: "test.Op: some context: underlying error",
		},
		{
			name:     "with op only",
			err:      &Error{Op: "test.Op", Err: errors.New("underlying error")},
			expected: "test.Op: underlying error",
		},
		{
			name:     "without op",
			err:      &Error{Err: errors.New("underlying error")},
			expected: "underlying error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error.Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestE(t *testing.T) {
	tests := []struct {
		name     string
		args     []interface{}
		wantOp   Op
		wantKind Kind
		wantMsg  string
	}{
		{
			name:     "with all args",
			args:     []interface{}{Op("test.Op"), KindIO, "context", errors.New("error")},
			wantOp:   "test.Op",
			wantKind: KindIO,
			wantMsg:  "test.Op: context: error",
		},
		{
			name:     "context becomes the error",
			args:     []interface{}{Op("test.Op"), KindClipboard, "just a message"},
			wantOp:   "test.Op",
			wantKind: KindClipboard,
			wantMsg:  "test.Op: just a message",
		},
		{
			name:     "with just error",
			args:     []interface{}{errors.New("simple error")},
			wantKind: KindUnknown,
			wantMsg:  "simple error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := E(tt.args...)
			e, ok := err.(*Error)
			if !ok {
				t.Fatalf("E() returned %T, want *Error", err)
			}
			if e.Op != tt.wantOp {
				t.Errorf("E().Op = %q, want %q", e.Op, tt.wantOp)
			}
			if e.Kind != tt.wantKind {
				t.Errorf("E().Kind = %v, want %v", e.Kind, tt.wantKind)
			}
			if got := err.Error(); got != tt.wantMsg {
				t.Errorf("E().Error() = %q, want %q", got, tt.wantMsg)
			}
		})
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		kind     Kind
		expected bool
	}{
		{"matching kind", E(Op("test"), KindClipboard, "empty"), KindClipboard, true},
		{"non-matching kind", E(Op("test"), KindClipboard, "empty"), KindIO, false},
		{"plain error", errors.New("regular error"), KindIO, false},
		{"nil error", nil, KindIO, false},
		{"wrapped error", fmt.Errorf("wrapped: %w", E(Op("test"), KindEncode, "bad")), KindEncode, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.kind); got != tt.expected {
				t.Errorf("Is() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetKind(t *testing.T) {
	if got := GetKind(E(Op("test"), KindIO, "x")); got != KindIO {
		t.Errorf("GetKind() = %v, want %v", got, KindIO)
	}
	if got := GetKind(errors.New("regular")); got != KindUnknown {
		t.Errorf("GetKind(plain) = %v, want %v", got, KindUnknown)
	}
	if got := GetKind(nil); got != KindUnknown {
		t.Errorf("GetKind(nil) = %v, want %v", got, KindUnknown)
	}
}

func TestClipboardErrors(t *testing.T) {
	underlying := errors.New("no display")

	err := ClipboardInitFailed(underlying)
	if !Is(err, KindClipboard) {
		t.Error("ClipboardInitFailed should return KindClipboard error")
	}
	if !errors.Is(err, underlying) {
		t.Error("ClipboardInitFailed should wrap the underlying error")
	}

	err = ClipboardDecodeFailed(underlying)
	if !Is(err, KindClipboard) {
		t.Error("ClipboardDecodeFailed should return KindClipboard error")
	}
}

func TestDirectoryCreateFailed(t *testing.T) {
	err := DirectoryCreateFailed("/out/shots", errors.New("disk full"))
	if !Is(err, KindIO) {
		t.Errorf("kind = %v, want %v", GetKind(err), KindIO)
	}
	if !strings.Contains(err.Error(), "/out/shots") {
		t.Errorf("message %q should name the directory", err.Error())
	}

	permErr := &fs.PathError{Op: "mkdir", Path: "/root/x", Err: fs.ErrPermission}
	if !Is(DirectoryCreateFailed("/root/x", permErr), KindPermission) {
		t.Error("permission failures should map to KindPermission")
	}
}

func TestWriteFailed(t *testing.T) {
	permErr := &os.PathError{Op: "open", Path: "/x.png", Err: os.ErrPermission}
	err := WriteFailed("/x.png", permErr)
	if !Is(err, KindPermission) {
		t.Errorf("kind = %v, want %v", GetKind(err), KindPermission)
	}
	if !errors.Is(err, os.ErrPermission) {
		t.Error("WriteFailed should wrap the underlying error")
	}

	if !Is(WriteFailed("/x.png", errors.New("short write")), KindIO) {
		t.Error("non-permission write failures should map to KindIO")
	}
}

func TestEncodeFailed(t *testing.T) {
	err := EncodeFailed("/x.png", errors.New("invalid image"))
	if !Is(err, KindEncode) {
		t.Errorf("kind = %v, want %v", GetKind(err), KindEncode)
	}
	if e, ok := err.(*Error); !ok || e.Op != "exporter.Save" {
		t.Errorf("Op = %v, want exporter.Save", err)
	}
}

func TestErrorChaining(t *testing.T) {
	innerErr := errors.New("original error")
	middleErr := E(Op("middle.Op"), KindIO, innerErr)
	outerErr := E(Op("outer.Op"), KindEncode, middleErr)

	if !errors.Is(outerErr, innerErr) {
		t.Error("Should be able to find inner error through chain")
	}
	if GetKind(outerErr) != KindEncode {
		t.Error("GetKind should return outer error's kind")
	}
}
