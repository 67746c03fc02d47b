package pixscale

import "math/bits"

// Pattern bits for the eight immediate neighbors, in the normalized
// quadrant frame. Bit i is set when the corresponding sample is
// perceptually different from the center w4.
const (
	bitTL = 1 << 0 // w0
	bitT  = 1 << 1 // w1
	bitTR = 1 << 2 // w2
	bitL  = 1 << 3 // w3
	bitR  = 1 << 4 // w5
	bitBL = 1 << 5 // w6
	bitB  = 1 << 6 // w7
	bitBR = 1 << 7 // w8
)

// nearBits masks the eight near-neighbor bits of a pattern.
const nearBits = 0xFF

// encodePattern builds the 8-bit edge topology mask for a neighborhood.
func encodePattern(n *neighborhood) uint16 {
	var pattern uint16
	bit := uint16(1)
	for i := 0; i < 9; i++ {
		if i == 4 {
			continue
		}
		if different(n.w[i], n.w[4]) {
			pattern |= bit
		}
		bit <<= 1
	}
	return pattern
}

// encodeExtended extends an 8-bit pattern with the seven diagonal-ring
// samples as bits 8-14, producing the 15-bit pattern consumed by the
// diagonal disambiguator.
func encodeExtended(pattern uint16, center RGBA, ring [7]RGBA) uint16 {
	bit := uint16(1 << 8)
	for i := range ring {
		if different(ring[i], center) {
			pattern |= bit
		}
		bit <<= 1
	}
	return pattern
}

// diagonalBias is the noise-rejection counter over a 15-bit extended
// pattern. Non-positive values indicate a clean, low-complexity diagonal
// that is safe to interpolate; positive values indicate a neighborhood
// too busy to commit to a diagonal interpretation.
func diagonalBias(extended uint16) int {
	return bits.OnesCount16(extended) - 7
}
