package pixscale

// disambiguate resolves the residual neighborhoods the rule table leaves
// unclassified: ambiguous diagonal-ish topologies where the near samples
// alone cannot tell a genuine diagonal edge from noise. It widens the
// view to the extended diagonal ring and commits to a 45° interpretation
// only when a majority of the wider ring confirms a clean,
// low-complexity diagonal; otherwise the center sample is returned
// unmodified.
func disambiguate(src *Pixmap, n *neighborhood, pattern uint16, aa aaParams) RGBA {
	ring := gatherRing(src, n)
	extended := encodeExtended(pattern, n.w[4], ring)
	if diagonalBias(extended) > 0 {
		return n.w[4]
	}
	return aaBlend(n.w[4], mix2(n.w[1], n.w[3]), n.fx+n.fy-0.5, aa.band)
}
