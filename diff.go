package pixscale

import "math"

// The classifier works in a fixed luma/chroma-like space rather than raw
// RGB: a single luma axis and two chroma axes, each compared against its
// own threshold. The coefficients and thresholds are empirically
// calibrated; changing them changes every edge decision downstream, so
// they are kept verbatim.
const (
	lumaThreshold    = 0.125
	chromaUThreshold = 0.027
	chromaVThreshold = 0.031
)

// lumaChroma transforms a color into the classifier's comparison space.
func lumaChroma(c RGBA) (y, u, v float64) {
	y = 0.25*c.R + 0.25*c.G + 0.25*c.B
	u = 0.25*c.R - 0.25*c.B
	v = -0.125*c.R + 0.25*c.G - 0.125*c.B
	return
}

// different reports whether two colors are perceptually distinct enough
// to count as lying on opposite sides of an edge. The test is symmetric:
// different(a, b) == different(b, a) for all inputs.
func different(a, b RGBA) bool {
	ya, ua, va := lumaChroma(a)
	yb, ub, vb := lumaChroma(b)
	return math.Abs(ya-yb) > lumaThreshold ||
		math.Abs(ua-ub) > chromaUThreshold ||
		math.Abs(va-vb) > chromaVThreshold
}
