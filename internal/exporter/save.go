package exporter

import (
	goerrors "errors"
	"image"
	"image/png"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/zhubert/clip2png/internal/errors"
)

// defaultMode is used for files that do not exist yet.
const defaultMode fs.FileMode = 0o644

// ensureDir creates dir and any missing parents.
func ensureDir(dir string) error {
	if dir == "" || dir == "." {
		return nil
	}
	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		// Existing directory, or something the file write will report.
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.DirectoryCreateFailed(dir, err)
	}
	return nil
}

// resolveTarget returns the file that should receive the PNG for path and
// the permissions it should end up with. Symlinks are followed so the link
// keeps pointing at the new image; an existing file must be writable.
func resolveTarget(path string) (string, fs.FileMode, error) {
	target := path
	if info, err := os.Lstat(path); err == nil && info.Mode()&fs.ModeSymlink != 0 {
		if resolved, err := filepath.EvalSymlinks(path); err == nil {
			target = resolved
		} else if link, err := os.Readlink(path); err == nil {
			// Dangling link: create the file it names.
			if !filepath.IsAbs(link) {
				link = filepath.Join(filepath.Dir(path), link)
			}
			target = link
		}
	}

	info, err := os.Stat(target)
	if os.IsNotExist(err) {
		return target, defaultMode, nil
	}
	if err != nil {
		return "", 0, errors.WriteFailed(path, onPath(err, path))
	}
	if info.IsDir() {
		return "", 0, errors.WriteFailed(path, &fs.PathError{Op: "open", Path: path, Err: goerrors.New("is a directory")})
	}

	// Opening without O_TRUNC checks write access the way the OS sees it
	// and leaves the current contents alone.
	f, err := os.OpenFile(target, os.O_WRONLY, 0)
	if err != nil {
		return "", 0, errors.WriteFailed(path, onPath(err, path))
	}
	f.Close()
	return target, info.Mode().Perm(), nil
}

// onPath reports err against the user's path instead of an internal file name.
func onPath(err error, path string) error {
	var pe *fs.PathError
	if goerrors.As(err, &pe) {
		return &fs.PathError{Op: pe.Op, Path: path, Err: pe.Err}
	}
	var le *os.LinkError
	if goerrors.As(err, &le) {
		return &fs.PathError{Op: le.Op, Path: path, Err: le.Err}
	}
	return err
}

// Save encodes img as PNG at path, creating missing parent directories.
// The image is written to a temp file in the target's directory and renamed
// into place, so a failed save leaves any existing file at path untouched.
func Save(img image.Image, path string) error {
	if err := ensureDir(filepath.Dir(path)); err != nil {
		return err
	}

	target, mode, err := resolveTarget(path)
	if err != nil {
		return err
	}

	tmpFile := filepath.Join(filepath.Dir(target), ".clip2png-"+uuid.NewString()+".tmp")
	f, err := os.OpenFile(tmpFile, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		return errors.WriteFailed(path, onPath(err, path))
	}

	enc := png.Encoder{CompressionLevel: png.DefaultCompression}
	if err := enc.Encode(f, img); err != nil {
		f.Close()
		os.Remove(tmpFile)
		return errors.EncodeFailed(path, onPath(err, path))
	}
	if err := f.Chmod(mode); err != nil {
		f.Close()
		os.Remove(tmpFile)
		return errors.WriteFailed(path, onPath(err, path))
	}
	if err := f.Close(); err != nil {
		os.Remove(tmpFile)
		return errors.WriteFailed(path, onPath(err, path))
	}
	if err := os.Rename(tmpFile, target); err != nil {
		os.Remove(tmpFile)
		return errors.WriteFailed(path, onPath(err, path))
	}

	return nil
}
