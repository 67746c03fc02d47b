package pixscale

import (
	"image/color"
	"testing"
)

var _ color.Color = RGBA{}

func TestRGBAPremultiplied(t *testing.T) {
	tests := []struct {
		name string
		c    RGBA
		want [4]uint32
	}{
		{"opaque white", White, [4]uint32{0xffff, 0xffff, 0xffff, 0xffff}},
		{"opaque black", Black, [4]uint32{0, 0, 0, 0xffff}},
		{"transparent", Transparent, [4]uint32{0, 0, 0, 0}},
		{"half alpha red", RGBA{R: 1, A: 0.5}, [4]uint32{0x7fff, 0, 0, 0x7fff}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b, a := tt.c.RGBA()
			got := [4]uint32{r, g, b, a}
			if got != tt.want {
				t.Errorf("RGBA() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestColorConversion(t *testing.T) {
	c := RGB(1, 0.5, 0)
	nrgba, ok := c.Color().(color.NRGBA)
	if !ok {
		t.Fatalf("Color() = %T, want color.NRGBA", c.Color())
	}
	if nrgba.R != 255 || nrgba.G != 127 || nrgba.B != 0 || nrgba.A != 255 {
		t.Errorf("Color() = %+v", nrgba)
	}
}

func TestFromColorRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		in   color.Color
		want RGBA
	}{
		{"opaque red", color.NRGBA{R: 255, A: 255}, RGBA{R: 1, A: 1}},
		{"fully transparent", color.NRGBA{}, RGBA{}},
		{"opaque gray", color.NRGBA{R: 51, G: 51, B: 51, A: 255}, RGBA{R: 0.2, G: 0.2, B: 0.2, A: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromColor(tt.in)
			if !colorsClose(got, tt.want, 1e-9) {
				t.Errorf("FromColor() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestLerp(t *testing.T) {
	if got := Black.Lerp(White, 0); got != Black {
		t.Errorf("Lerp(0) = %+v, want black", got)
	}
	if got := Black.Lerp(White, 1); got != White {
		t.Errorf("Lerp(1) = %+v, want white", got)
	}
	mid := Black.Lerp(White, 0.5)
	if mid.R != 0.5 || mid.G != 0.5 || mid.B != 0.5 || mid.A != 1 {
		t.Errorf("Lerp(0.5) = %+v", mid)
	}
}

func TestMix2(t *testing.T) {
	got := mix2(Black, White)
	want := RGBA{R: 0.5, G: 0.5, B: 0.5, A: 1}
	if got != want {
		t.Errorf("mix2() = %+v, want %+v", got, want)
	}
}

func TestWeighted3(t *testing.T) {
	// Equal inputs come back out unchanged for weights summing to 1.
	got := weighted3(Red, 0.375, Red, 0.25, Red, 0.375)
	if !colorsClose(got, Red, 1e-12) {
		t.Errorf("weighted3(red) = %+v, want red", got)
	}

	got = weighted3(White, 0.375, Black, 0.25, White, 0.375)
	want := RGBA{R: 0.75, G: 0.75, B: 0.75, A: 1}
	if !colorsClose(got, want, 1e-12) {
		t.Errorf("weighted3() = %+v, want %+v", got, want)
	}
}

func TestClamp(t *testing.T) {
	if clamp255(-1) != 0 || clamp255(300) != 255 || clamp255(128) != 128 {
		t.Error("clamp255 out of range")
	}
	if clamp01(-0.5) != 0 || clamp01(1.5) != 1 || clamp01(0.25) != 0.25 {
		t.Error("clamp01 out of range")
	}
}

func colorsClose(a, b RGBA, eps float64) bool {
	abs := func(x float64) float64 {
		if x < 0 {
			return -x
		}
		return x
	}
	return abs(a.R-b.R) <= eps && abs(a.G-b.G) <= eps &&
		abs(a.B-b.B) <= eps && abs(a.A-b.A) <= eps
}
