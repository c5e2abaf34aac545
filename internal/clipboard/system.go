package clipboard

import (
	"log/slog"

	"github.com/zhubert/clip2png/internal/errors"
	"github.com/zhubert/clip2png/internal/logger"
)

// initialized tracks whether the clipboard has been initialized
var initialized bool

// Init initializes the clipboard. Must be called before other functions.
// This is safe to call multiple times.
func Init() error {
	if initialized {
		return nil
	}

	if err := initPlatform(); err != nil {
		logger.Debug("Clipboard: Failed to initialize: %v", err)
		return errors.ClipboardInitFailed(err)
	}

	initialized = true
	logger.Debug("Clipboard: Initialized successfully")
	return nil
}

// System is the Source backed by the operating system clipboard.
type System struct {
	log *slog.Logger
}

// NewSystem returns a Source reading the OS clipboard.
func NewSystem() *System {
	return &System{log: logger.ComponentLogger("Clipboard")}
}

// ContainsImage reports whether the clipboard currently holds image data.
// A clipboard that cannot be initialized holds no image.
func (s *System) ContainsImage() bool {
	if err := Init(); err != nil {
		s.log.Warn("clipboard unavailable", "error", err)
		return false
	}
	ok := hasImage()
	s.log.Debug("presence check", "containsImage", ok)
	return ok
}

// GetImage reads and decodes the clipboard image.
// Returns nil, nil if the clipboard no longer holds an image.
func (s *System) GetImage() (*Image, error) {
	if err := Init(); err != nil {
		return nil, err
	}

	data, err := readImageBytes()
	if err != nil {
		s.log.Warn("native read failed", "error", err)
		return nil, err
	}
	if len(data) == 0 {
		s.log.Debug("no image data found")
		return nil, nil
	}
	s.log.Debug("read image data", "bytes", len(data))

	img, err := Decode(data)
	if err != nil {
		s.log.Warn("decode failed", "error", err)
		return nil, err
	}
	s.log.Debug("image decoded", "width", img.Width, "height", img.Height, "format", img.Format)
	return img, nil
}
