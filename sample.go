package pixscale

import "math"

// neighborhood holds the 3x3 block of source samples around the pixel
// enclosing a query coordinate, labeled in row-major order:
//
//	w0 w1 w2
//	w3 w4 w5
//	w6 w7 w8
//
// with w4 the center. The samples are gathered in the normalized
// quadrant frame: if the query point lies in the right or bottom half of
// its pixel, the corresponding axis is mirrored so that the point always
// lands in the top-left quadrant and only that geometric case needs rule
// logic. The mirror is expressed as a per-axis sign applied to every
// neighbor-offset lookup.
type neighborhood struct {
	w      [9]RGBA
	fx, fy float64 // fractional position after normalization, each in [0, 0.5]
	cx, cy int     // enclosing source pixel
	sx, sy int     // per-axis mirror signs, +1 or -1
}

// gatherNeighborhood resolves a continuous source coordinate into its
// enclosing pixel, normalizes the fractional position into the top-left
// quadrant, and gathers the nine near samples with clamp-to-edge
// addressing.
func gatherNeighborhood(src *Pixmap, x, y float64) neighborhood {
	fx := math.Floor(x)
	fy := math.Floor(y)

	n := neighborhood{
		cx: int(fx),
		cy: int(fy),
		fx: x - fx,
		fy: y - fy,
		sx: 1,
		sy: 1,
	}

	if n.fx > 0.5 {
		n.sx = -1
		n.fx = 1 - n.fx
	}
	if n.fy > 0.5 {
		n.sy = -1
		n.fy = 1 - n.fy
	}

	i := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			n.w[i] = src.PixelClamped(n.cx+dx*n.sx, n.cy+dy*n.sy)
			i++
		}
	}
	return n
}

// ringOffsets are the seven extended samples at two-pixel offsets along
// the top/left diagonal ring, in the normalized quadrant frame. They are
// gathered on demand; only the diagonal disambiguator reads them.
var ringOffsets = [7][2]int{
	{-2, -2}, {-1, -2}, {0, -2}, {1, -2},
	{-2, -1}, {-2, 0}, {-2, 1},
}

// gatherRing returns the extended diagonal-ring samples for a
// neighborhood, using the same mirror signs and clamp-to-edge policy as
// the near samples.
func gatherRing(src *Pixmap, n *neighborhood) [7]RGBA {
	var ring [7]RGBA
	for i, off := range ringOffsets {
		ring[i] = src.PixelClamped(n.cx+off[0]*n.sx, n.cy+off[1]*n.sy)
	}
	return ring
}
