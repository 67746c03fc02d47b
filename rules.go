package pixscale

// The rule engine classifies the local edge topology around a sample
// point and picks a blending strategy for it. Rules are evaluated
// strictly top to bottom and the first match wins: several bit patterns
// overlap, and the ordering is the tie-break that keeps sharp, specific
// edge shapes ahead of the broader diagonal fallbacks. Reordering the
// table changes rendered output.
//
// All shape reasoning happens in the normalized quadrant frame produced
// by gatherNeighborhood: the sample point sits in the top-left quadrant
// of its pixel, so w1 (above), w3 (left) and w0 (above-left) are always
// the neighbors nearest the point.

// blendKind selects the strategy a matched rule resolves to.
type blendKind uint8

const (
	// blendCenter returns the center sample unmodified. Clean hard
	// edges with no sub-pixel ambiguity.
	blendCenter blendKind = iota

	// blendCorner applies the staircase smoothing kernel at the
	// pixel corner.
	blendCorner

	// blendDiag anti-aliases across an idealized 45° edge line.
	blendDiag

	// blendShallow anti-aliases across a 2:1-slope edge line
	// (one vertical step per two horizontal pixels).
	blendShallow

	// blendSteep anti-aliases across a 1:2-slope edge line.
	blendSteep

	// blendLinearH softens a terminating horizontal boundary by
	// blending toward the sample above, linearly in the fractional y.
	blendLinearH

	// blendLinearV softens a terminating vertical boundary by
	// blending toward the sample on the left, linearly in the
	// fractional x.
	blendLinearV
)

// auxNone marks a rule without an auxiliary pairwise test.
const auxNone = -1

// rule is one entry of the ordered shape table: a mask/required-bits
// predicate over the pattern, an optional pairwise difference test
// between two named samples, and the blend strategy the shape resolves
// to.
type rule struct {
	mask, bits uint16
	auxA, auxB int8 // sample indices for the auxiliary test, auxNone when unused
	auxDiff    bool // required outcome of different(w[auxA], w[auxB])
	blend      blendKind
}

// rules is the shape table. Order matters; see the package comment
// above.
var rules = []rule{
	// Flat neighborhood: every near sample agrees with the center.
	{mask: nearBits, bits: 0, auxA: auxNone, blend: blendCenter},

	// Staircase step: the three corner-adjacent samples differ and the
	// two edge-adjacent ones agree with each other. The classic
	// L-shaped corner of a jagged diagonal.
	{mask: nearBits, bits: bitTL | bitT | bitL, auxA: 1, auxB: 3, auxDiff: false, blend: blendCorner},
	// Same topology but the two sides disagree: contrasting corner,
	// keep it crisp.
	{mask: nearBits, bits: bitTL | bitT | bitL, auxA: 1, auxB: 3, auxDiff: true, blend: blendCenter},

	// 2:1 slopes. The whole top row plus the left sample differ
	// (shallow), or the whole left column plus the top sample differ
	// (steep). Checked before the generic 45° rules because their bit
	// patterns overlap.
	{mask: nearBits &^ bitBR, bits: bitTL | bitT | bitTR | bitL, auxA: 1, auxB: 3, auxDiff: false, blend: blendShallow},
	{mask: nearBits &^ bitBR, bits: bitTL | bitT | bitL | bitBL, auxA: 1, auxB: 3, auxDiff: false, blend: blendSteep},

	// 45° region edge. The corner trio differs while the right and
	// bottom stay flat; the edge may continue into the top-right or
	// bottom-left sample, which is why those bits are outside the mask.
	{mask: bitTL | bitT | bitL | bitR | bitB | bitBR, bits: bitTL | bitT | bitL, auxA: 1, auxB: 3, auxDiff: false, blend: blendDiag},
	// 45° edge grazing the corner: above and left differ but the
	// corner sample still matches the center.
	{mask: bitTL | bitT | bitL | bitR | bitB, bits: bitT | bitL, auxA: 1, auxB: 3, auxDiff: false, blend: blendDiag},

	// Straight edges stay hard. The boundary runs along the pixel
	// grid, so the nearest sample is the correct one everywhere.
	{mask: nearBits, bits: bitTL | bitT | bitTR, auxA: auxNone, blend: blendCenter},
	{mask: nearBits, bits: bitTL | bitL | bitBL, auxA: auxNone, blend: blendCenter},

	// Terminating straight edges: the boundary above (or to the left)
	// stops inside the neighborhood. Softened linearly across the
	// pixel instead of cut hard.
	{mask: bitTL | bitT | bitTR | bitL | bitR, bits: bitT | bitTR, auxA: 1, auxB: 2, auxDiff: false, blend: blendLinearH},
	{mask: bitTL | bitT | bitTR | bitL | bitR, bits: bitTL | bitT, auxA: 0, auxB: 1, auxDiff: false, blend: blendLinearH},
	{mask: bitTL | bitT | bitL | bitBL | bitB, bits: bitL | bitBL, auxA: 3, auxB: 6, auxDiff: false, blend: blendLinearV},
	{mask: bitTL | bitT | bitL | bitBL | bitB, bits: bitTL | bitL, auxA: 0, auxB: 3, auxDiff: false, blend: blendLinearV},

	// Inner corner: only the diagonal sample differs; the corner of an
	// opposing region pokes into ours.
	{mask: bitTL | bitT | bitTR | bitL | bitR, bits: bitTL, auxA: auxNone, blend: blendCorner},

	// Remaining near-quadrant shapes resolve to the center: edges that
	// only touch the far half of the neighborhood, isolated different
	// samples, and contrasting two-sample combinations. Anything not
	// covered here falls through to the diagonal disambiguator.
	{mask: bitTL | bitT | bitL, bits: 0, auxA: auxNone, blend: blendCenter},
	{mask: bitTL | bitT | bitL, bits: bitT, auxA: auxNone, blend: blendCenter},
	{mask: bitTL | bitT | bitL, bits: bitL, auxA: auxNone, blend: blendCenter},
	{mask: bitTL | bitT | bitL, bits: bitT | bitL, auxA: auxNone, blend: blendCenter},
	{mask: bitTL | bitT | bitL, bits: bitTL | bitT, auxA: auxNone, blend: blendCenter},
	{mask: bitTL | bitT | bitL, bits: bitTL | bitL, auxA: auxNone, blend: blendCenter},
}

// aaParams carries the anti-aliasing half-band widths for a scaling
// pass. The widths equal the length of the reciprocal output/source
// ratio vector (one output pixel's extent in source units), so the band
// narrows automatically as the output resolution grows.
type aaParams struct {
	band  float64 // 45° and axis-aligned edges
	band2 float64 // 2:1-slope edges: band scaled by sqrt(5)
}

// aaBlend interpolates across an idealized edge line. v is the signed
// line-function value at the sample point, positive on the near side;
// band is the anti-aliasing half-band width in the same units. Outside
// the band the flat side color is returned exactly; inside, the factor
// moves linearly through [0, 1].
func aaBlend(near, far RGBA, v, band float64) RGBA {
	if band <= 0 {
		if v >= 0 {
			return near
		}
		return far
	}
	t := 0.5 + v/(2*band)
	if t <= 0 {
		return far
	}
	if t >= 1 {
		return near
	}
	return far.Lerp(near, t)
}

// cornerBlend approximates a staircase smoothing kernel: a fixed
// 3/8, 1/4, 3/8 combination of the three corner-adjacent samples, mixed
// back toward the center as the point moves away from the corner. The
// mix factor ramps at twice the fractional offsets, confining the
// smoothing to the corner quadrant.
func cornerBlend(n *neighborhood) RGBA {
	t := 2 * (n.fx + n.fy)
	if t >= 1 {
		return n.w[4]
	}
	corner := weighted3(n.w[1], 0.375, n.w[0], 0.25, n.w[3], 0.375)
	return corner.Lerp(n.w[4], t)
}

// applyRule resolves a matched rule to an output color.
func applyRule(r *rule, n *neighborhood, aa aaParams) RGBA {
	switch r.blend {
	case blendCorner:
		return cornerBlend(n)
	case blendDiag:
		return aaBlend(n.w[4], mix2(n.w[1], n.w[3]), n.fx+n.fy-0.5, aa.band)
	case blendShallow:
		return aaBlend(n.w[4], mix2(n.w[1], n.w[3]), n.fx+2*n.fy-0.5, aa.band2)
	case blendSteep:
		return aaBlend(n.w[4], mix2(n.w[1], n.w[3]), 2*n.fx+n.fy-0.5, aa.band2)
	case blendLinearH:
		return n.w[4].Lerp(n.w[1], 0.5-n.fy)
	case blendLinearV:
		return n.w[4].Lerp(n.w[3], 0.5-n.fx)
	default:
		return n.w[4]
	}
}

// evalRules runs the ordered shape table. ok is false when no rule
// matched and the diagonal disambiguator must decide.
func evalRules(pattern uint16, n *neighborhood, aa aaParams) (c RGBA, ok bool) {
	for i := range rules {
		r := &rules[i]
		if pattern&r.mask != r.bits {
			continue
		}
		if r.auxA != auxNone && different(n.w[r.auxA], n.w[r.auxB]) != r.auxDiff {
			continue
		}
		return applyRule(r, n, aa), true
	}
	return RGBA{}, false
}
