package gpu

import (
	"bytes"
	"errors"
	"testing"

	"github.com/gogpu/pixscale"
)

func TestScaleUnreadyFallsBack(t *testing.T) {
	a := New()
	// No Init: GPU is not ready, Scale must hand the frame back.
	src := pixscale.NewPixmap(4, 4)
	target := pixscale.Frame{Data: make([]uint8, 8*8*4), Width: 8, Height: 8, Stride: 8 * 4}
	if err := a.Scale(target, src); !errors.Is(err, pixscale.ErrFallbackToCPU) {
		t.Fatalf("Scale() error = %v, want ErrFallbackToCPU", err)
	}
}

func TestSetDeviceProviderRejectsForeignProvider(t *testing.T) {
	a := New()
	if err := a.SetDeviceProvider(struct{}{}); err == nil {
		t.Fatal("SetDeviceProvider() with non-HAL provider, want error")
	}
}

func TestPackParamsLayout(t *testing.T) {
	got := packParams(frameParams{
		SrcWidth: 0x01020304, SrcHeight: 0x05060708,
		DstWidth: 0x090A0B0C, DstHeight: 0x0D0E0F10,
	})
	want := []byte{
		0x04, 0x03, 0x02, 0x01,
		0x08, 0x07, 0x06, 0x05,
		0x0C, 0x0B, 0x0A, 0x09,
		0x10, 0x0F, 0x0E, 0x0D,
	}
	if !bytes.Equal(got, want) {
		t.Errorf("packParams() = % x, want % x", got, want)
	}
}

func TestCopyRowsHonorsStride(t *testing.T) {
	const w, h, stride = 2, 2, 12
	packed := []byte{
		1, 2, 3, 4, 5, 6, 7, 8,
		9, 10, 11, 12, 13, 14, 15, 16,
	}
	data := make([]uint8, h*stride)
	copyRows(pixscale.Frame{Data: data, Width: w, Height: h, Stride: stride}, packed)

	if !bytes.Equal(data[0:8], packed[0:8]) {
		t.Errorf("row 0 = % x, want % x", data[0:8], packed[0:8])
	}
	if !bytes.Equal(data[stride:stride+8], packed[8:16]) {
		t.Errorf("row 1 = % x, want % x", data[stride:stride+8], packed[8:16])
	}
	for _, i := range []int{8, 9, 10, 11, stride + 8} {
		if data[i] != 0 {
			t.Errorf("padding byte %d = %d, want 0", i, data[i])
		}
	}
}

func TestShaderSourceEmbedded(t *testing.T) {
	if scaleShaderSource == "" {
		t.Fatal("scale shader source is empty")
	}
}
