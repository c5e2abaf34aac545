//go:build !darwin || (darwin && !cgo)

package clipboard

import (
	"golang.design/x/clipboard"
)

func initPlatform() error {
	return clipboard.Init()
}

// hasImage probes the clipboard for image data.
// On Linux/Windows, this uses the golang.design/x/clipboard library.
func hasImage() bool {
	return len(clipboard.Read(clipboard.FmtImage)) > 0
}

// readImageBytes returns the PNG payload on the clipboard, or nil.
func readImageBytes() ([]byte, error) {
	return clipboard.Read(clipboard.FmtImage), nil
}
