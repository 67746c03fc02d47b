// Package dump writes and reads zstd-compressed raw RGBA frame dumps.
// The format is a small fixed header (magic, width, height) followed by
// a zstd stream of the tightly packed 8-bit RGBA pixel data. Dumps are
// meant for debugging the scaler output without going through an image
// encoder.
package dump

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
)

const magic = "PXSD"

// maxPixels bounds the decoded allocation so a corrupt header cannot
// ask for an absurd amount of memory.
const maxPixels = 1 << 28

// WriteFrame writes width*height*4 bytes of RGBA data to w as a
// compressed frame dump.
func WriteFrame(w io.Writer, data []byte, width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("dump: invalid frame size %dx%d", width, height)
	}
	if len(data) < width*height*4 {
		return fmt.Errorf("dump: short pixel data: have %d bytes, need %d", len(data), width*height*4)
	}

	var hdr [12]byte
	copy(hdr[:4], magic)
	binary.LittleEndian.PutUint32(hdr[4:8], uint32(width))
	binary.LittleEndian.PutUint32(hdr[8:12], uint32(height))
	if _, err := w.Write(hdr[:]); err != nil {
		return err
	}

	enc, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return err
	}
	if _, err := enc.Write(data[:width*height*4]); err != nil {
		enc.Close()
		return err
	}
	return enc.Close()
}

// ReadFrame reads a frame dump written by WriteFrame and returns the
// raw RGBA data along with the frame dimensions.
func ReadFrame(r io.Reader) (data []byte, width, height int, err error) {
	var hdr [12]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		return nil, 0, 0, fmt.Errorf("dump: reading header: %w", err)
	}
	if string(hdr[:4]) != magic {
		return nil, 0, 0, fmt.Errorf("dump: bad magic %q", hdr[:4])
	}
	width = int(binary.LittleEndian.Uint32(hdr[4:8]))
	height = int(binary.LittleEndian.Uint32(hdr[8:12]))
	if width <= 0 || height <= 0 || width*height > maxPixels {
		return nil, 0, 0, fmt.Errorf("dump: invalid frame size %dx%d", width, height)
	}

	dec, err := zstd.NewReader(r)
	if err != nil {
		return nil, 0, 0, err
	}
	defer dec.Close()

	data = make([]byte, width*height*4)
	if _, err := io.ReadFull(dec, data); err != nil {
		return nil, 0, 0, fmt.Errorf("dump: reading pixel data: %w", err)
	}
	return data, width, height, nil
}
