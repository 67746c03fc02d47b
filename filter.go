package pixscale

// Filter selects the scaling algorithm applied to a frame.
type Filter uint8

const (
	// FilterSharp is the content-adaptive pixel-art filter. It preserves
	// hard intentional edges and anti-aliases diagonal and curved
	// boundaries, with an anti-aliasing band that narrows as the output
	// resolution grows.
	FilterSharp Filter = iota

	// FilterNearest selects the closest source pixel (no interpolation).
	// Fast but produces blocky results when scaling.
	FilterNearest

	// FilterLinear performs bilinear interpolation between neighboring
	// pixels. Soft results; the classic "linear filter" path.
	FilterLinear
)

// String returns a string representation of the filter.
func (f Filter) String() string {
	switch f {
	case FilterSharp:
		return "Sharp"
	case FilterNearest:
		return "Nearest"
	case FilterLinear:
		return "Linear"
	default:
		return "Unknown"
	}
}

// ParseFilter converts a filter name (as accepted on command lines) to a
// Filter. Unknown names select FilterSharp.
func ParseFilter(name string) Filter {
	switch name {
	case "nearest":
		return FilterNearest
	case "linear":
		return FilterLinear
	default:
		return FilterSharp
	}
}
