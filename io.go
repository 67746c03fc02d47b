package pixscale

import (
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// I/O errors.
var (
	// ErrUnsupportedFormat is returned when the image format is not supported.
	ErrUnsupportedFormat = errors.New("pixscale: unsupported format")

	// ErrEmptyData is returned when image data is empty.
	ErrEmptyData = errors.New("pixscale: empty data")
)

// LoadImage loads an image from the given file path, auto-detecting the
// format. Supported formats: PNG, JPEG.
func LoadImage(path string) (*Pixmap, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("pixscale: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		img, err := png.Decode(f)
		if err != nil {
			return nil, fmt.Errorf("pixscale: decode png: %w", err)
		}
		return FromImage(img), nil
	case ".jpg", ".jpeg":
		img, err := jpeg.Decode(f)
		if err != nil {
			return nil, fmt.Errorf("pixscale: decode jpeg: %w", err)
		}
		return FromImage(img), nil
	default:
		return Decode(f)
	}
}

// Decode decodes an image from the given reader, auto-detecting the format.
func Decode(r io.Reader) (*Pixmap, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("pixscale: decode: %w", err)
	}
	return FromImage(img), nil
}

// SavePNG saves the pixmap to a PNG file.
func (p *Pixmap) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	return png.Encode(f, p.ToImage())
}
