package output

import (
	"errors"
	"fmt"
	"image"
	"os"

	"github.com/disintegration/imaging"
)

// ErrExists is returned when the target file is already present.
var ErrExists = errors.New("output file already exists")

// FormatFromExtension maps a file extension such as "png" or ".JPG" to the
// encoder format used for it.
func FormatFromExtension(ext string) (imaging.Format, error) {
	return imaging.FormatFromExtension(ext)
}

// Writer encodes frames into image files.
type Writer struct {
	format  imaging.Format
	quality int
	written int
}

// NewWriter returns a writer for the format named by ext. quality only
// affects JPEG output.
func NewWriter(ext string, quality int) (*Writer, error) {
	format, err := FormatFromExtension(ext)
	if err != nil {
		return nil, fmt.Errorf("resolve image format for %q: %w", ext, err)
	}
	return &Writer{format: format, quality: quality}, nil
}

// Write encodes img to path. It never replaces an existing file; in that case
// the returned error wraps ErrExists.
func (w *Writer) Write(img image.Image, path string) error {
	if img == nil {
		return fmt.Errorf("write %s: no frame data", path)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return fmt.Errorf("%w: %s", ErrExists, path)
		}
		return fmt.Errorf("create %s: %w", path, err)
	}

	var opts []imaging.EncodeOption
	if w.format == imaging.JPEG && w.quality > 0 {
		opts = append(opts, imaging.JPEGQuality(w.quality))
	}

	if err := imaging.Encode(f, img, w.format, opts...); err != nil {
		f.Close()
		_ = os.Remove(path)
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(path)
		return fmt.Errorf("close %s: %w", path, err)
	}

	w.written++
	return nil
}

// Written returns the number of files written successfully.
func (w *Writer) Written() int {
	return w.written
}
