package pixscale

import (
	"image/color"
)

// RGBA represents a color with red, green, blue, and alpha components.
// Each component is in the range [0, 1]. Channel arithmetic performed by
// the scaler is linear and independent per channel; no gamma correction
// is applied.
type RGBA struct {
	R, G, B, A float64
}

// RGBA implements the color.Color interface. The returned values are
// alpha-premultiplied in the range [0, 0xffff].
func (c RGBA) RGBA() (r, g, b, a uint32) {
	r = uint32(clamp01(c.R*c.A) * 0xffff)
	g = uint32(clamp01(c.G*c.A) * 0xffff)
	b = uint32(clamp01(c.B*c.A) * 0xffff)
	a = uint32(clamp01(c.A) * 0xffff)
	return
}

// Color converts RGBA to the standard color.Color interface as
// non-premultiplied 8-bit color.
func (c RGBA) Color() color.Color {
	return color.NRGBA{
		R: uint8(clamp255(c.R * 255)),
		G: uint8(clamp255(c.G * 255)),
		B: uint8(clamp255(c.B * 255)),
		A: uint8(clamp255(c.A * 255)),
	}
}

// FromColor converts a standard color.Color to RGBA.
func FromColor(c color.Color) RGBA {
	r, g, b, a := c.RGBA()
	if a == 0 {
		return RGBA{}
	}
	// color.Color returns premultiplied values; store non-premultiplied.
	af := float64(a) / 65535
	return RGBA{
		R: float64(r) / 65535 / af,
		G: float64(g) / 65535 / af,
		B: float64(b) / 65535 / af,
		A: af,
	}
}

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1.0}
}

// Lerp performs linear interpolation between two colors.
// t=0 returns c, t=1 returns other. Each channel is interpolated
// independently.
func (c RGBA) Lerp(other RGBA, t float64) RGBA {
	return RGBA{
		R: c.R + (other.R-c.R)*t,
		G: c.G + (other.G-c.G)*t,
		B: c.B + (other.B-c.B)*t,
		A: c.A + (other.A-c.A)*t,
	}
}

// mix2 averages two colors with equal weight.
func mix2(a, b RGBA) RGBA {
	return RGBA{
		R: (a.R + b.R) * 0.5,
		G: (a.G + b.G) * 0.5,
		B: (a.B + b.B) * 0.5,
		A: (a.A + b.A) * 0.5,
	}
}

// weighted3 combines three colors with explicit weights.
// The weights are expected to sum to 1.
func weighted3(a RGBA, wa float64, b RGBA, wb float64, c RGBA, wc float64) RGBA {
	return RGBA{
		R: a.R*wa + b.R*wb + c.R*wc,
		G: a.G*wa + b.G*wb + c.G*wc,
		B: a.B*wa + b.B*wb + c.B*wc,
		A: a.A*wa + b.A*wb + c.A*wc,
	}
}

// clamp255 restricts a value to [0, 255] range.
func clamp255(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return x
}

// clamp01 restricts a value to [0, 1] range.
func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// Common colors
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(1, 1, 1)
	Red         = RGB(1, 0, 0)
	Green       = RGB(0, 1, 0)
	Blue        = RGB(0, 0, 1)
	Transparent = RGBA{}
)
