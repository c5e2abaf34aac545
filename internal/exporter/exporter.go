// Package exporter saves the clipboard image to a PNG file and maps every
// outcome to an ExitCode.
package exporter

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/zhubert/clip2png/internal/clipboard"
	"github.com/zhubert/clip2png/internal/logger"
)

// Result describes one export attempt.
type Result struct {
	Code   ExitCode
	Path   string // output path, empty when none was given
	Width  int
	Height int
	Err    error // cause of a non-zero Code, if any
}

// Exporter copies the clipboard image to a file.
type Exporter struct {
	source  clipboard.Source
	stderr  io.Writer
	program string
	log     *slog.Logger
}

// New returns an Exporter reading from source. Usage and save errors are
// written to stderr; program is the name shown in the usage line.
func New(source clipboard.Source, stderr io.Writer, program string) *Exporter {
	return &Exporter{
		source:  source,
		stderr:  stderr,
		program: program,
		log:     logger.ComponentLogger("Exporter"),
	}
}

// Run exports the clipboard image to args[0] and returns the exit code.
func (e *Exporter) Run(args []string) ExitCode {
	return e.Export(args).Code
}

// Export is Run with the full outcome. Extra arguments are ignored.
func (e *Exporter) Export(args []string) Result {
	if len(args) == 0 {
		fmt.Fprintf(e.stderr, "Usage: %s <output-path>\n", e.program)
		return Result{Code: NoOutputPath}
	}
	path := args[0]
	res := Result{Path: path}

	if !e.source.ContainsImage() {
		e.log.Info("clipboard holds no image")
		res.Code = NoImageInClipboard
		return res
	}

	img, err := e.source.GetImage()
	if img != nil {
		defer img.Close()
	}
	if err != nil || img.Decoded() == nil {
		e.log.Warn("image vanished after presence check", "error", err)
		res.Code = ClipboardRetrievalFailed
		res.Err = err
		return res
	}

	res.Width, res.Height = img.Width, img.Height
	if err := Save(img.Decoded(), path); err != nil {
		e.log.Error("save failed", "path", path, "error", err)
		fmt.Fprintf(e.stderr, "Error: %v\n", err)
		res.Code = SaveFailed
		res.Err = err
		return res
	}

	e.log.Info("saved image", "path", path, "width", img.Width, "height", img.Height, "format", img.Format, "bytes", img.Size())
	res.Code = Success
	return res
}
