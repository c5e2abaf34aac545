// Package notification provides cross-platform desktop notifications.
// It uses the beeep library to send notifications on macOS, Linux, and Windows.
package notification

import (
	"fmt"
	"path/filepath"

	"github.com/gen2brain/beeep"
	"github.com/zhubert/clip2png/internal/logger"
)

// Title is the title used for every clip2png notification.
const Title = "clip2png"

// notifier matches beeep.Notify so tests can replace it.
type notifier func(title, message string, icon any) error

var notify notifier = beeep.Notify

// SetNotifier replaces the function used to deliver notifications.
func SetNotifier(n func(title, message string, icon any) error) {
	notify = n
}

// ResetNotifier restores beeep as the notification backend.
func ResetNotifier() {
	notify = beeep.Notify
}

// Send sends a desktop notification with the given title and message.
func Send(title, message string) error {
	logger.Debug("Notification: Sending notification - title=%q, message=%q", title, message)
	// Use empty string for icon - beeep handles platform defaults
	err := notify(title, message, "")
	if err != nil {
		logger.Warn("Notification: Failed to send notification: %v", err)
	}
	return err
}

// Saved announces a successfully written image.
func Saved(path string, width, height int) error {
	return Send(Title, fmt.Sprintf("Saved %dx%d image to %s", width, height, filepath.Base(path)))
}

// Failed announces that no file was written and why.
func Failed(reason string) error {
	return Send(Title, "No image saved: "+reason)
}
