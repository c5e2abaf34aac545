package exporter

import "fmt"

// ExitCode is the process exit status of a clip2png run. The numeric values
// are part of the command's contract with calling scripts.
type ExitCode int

const (
	Success                  ExitCode = 0
	NoOutputPath             ExitCode = 1
	NoImageInClipboard       ExitCode = 2
	ClipboardRetrievalFailed ExitCode = 3
	SaveFailed               ExitCode = 4
)

func (c ExitCode) String() string {
	switch c {
	case Success:
		return "Success"
	case NoOutputPath:
		return "NoOutputPath"
	case NoImageInClipboard:
		return "NoImageInClipboard"
	case ClipboardRetrievalFailed:
		return "ClipboardRetrievalFailed"
	case SaveFailed:
		return "SaveFailed"
	default:
		return fmt.Sprintf("ExitCode(%d)", int(c))
	}
}
