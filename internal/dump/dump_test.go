package dump

import (
	"bytes"
	"testing"
)

func TestWriteReadRoundTrip(t *testing.T) {
	const w, h = 7, 5
	data := make([]byte, w*h*4)
	for i := range data {
		data[i] = byte(i * 31)
	}

	var buf bytes.Buffer
	if err := WriteFrame(&buf, data, w, h); err != nil {
		t.Fatalf("WriteFrame() error = %v", err)
	}

	got, gw, gh, err := ReadFrame(&buf)
	if err != nil {
		t.Fatalf("ReadFrame() error = %v", err)
	}
	if gw != w || gh != h {
		t.Fatalf("ReadFrame() size = %dx%d, want %dx%d", gw, gh, w, h)
	}
	if !bytes.Equal(got, data) {
		t.Error("ReadFrame() pixel data differs from written data")
	}
}

func TestWriteFrameErrors(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteFrame(&buf, nil, 0, 4); err == nil {
		t.Error("WriteFrame() with zero width, want error")
	}
	if err := WriteFrame(&buf, make([]byte, 8), 4, 4); err == nil {
		t.Error("WriteFrame() with short data, want error")
	}
}

func TestReadFrameBadMagic(t *testing.T) {
	buf := bytes.NewBufferString("NOPE\x01\x00\x00\x00\x01\x00\x00\x00")
	if _, _, _, err := ReadFrame(buf); err == nil {
		t.Error("ReadFrame() with bad magic, want error")
	}
}

func TestReadFrameTruncated(t *testing.T) {
	if _, _, _, err := ReadFrame(bytes.NewReader(nil)); err == nil {
		t.Error("ReadFrame() with empty input, want error")
	}
}
