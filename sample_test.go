package pixscale

import "testing"

// gradientPixmap fills a pixmap with per-pixel identifiable colors:
// pixel (x, y) stores R = x/255 and G = y/255, both exact in the 8-bit
// buffer.
func gradientPixmap(w, h int) *Pixmap {
	p := NewPixmap(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			p.SetPixel(x, y, RGBA{R: float64(x) / 255, G: float64(y) / 255, A: 1})
		}
	}
	return p
}

func pixelID(c RGBA) (x, y int) {
	return int(c.R*255 + 0.5), int(c.G*255 + 0.5)
}

func TestGatherNeighborhoodTopLeftQuadrant(t *testing.T) {
	src := gradientPixmap(4, 4)

	n := gatherNeighborhood(src, 1.25, 1.25)
	if n.cx != 1 || n.cy != 1 {
		t.Fatalf("center = (%d, %d), want (1, 1)", n.cx, n.cy)
	}
	if n.sx != 1 || n.sy != 1 {
		t.Fatalf("signs = (%d, %d), want (1, 1)", n.sx, n.sy)
	}
	if n.fx != 0.25 || n.fy != 0.25 {
		t.Fatalf("fraction = (%v, %v), want (0.25, 0.25)", n.fx, n.fy)
	}

	// Row-major neighbor order around (1, 1).
	wantPos := [9][2]int{
		{0, 0}, {1, 0}, {2, 0},
		{0, 1}, {1, 1}, {2, 1},
		{0, 2}, {1, 2}, {2, 2},
	}
	for i, want := range wantPos {
		x, y := pixelID(n.w[i])
		if x != want[0] || y != want[1] {
			t.Errorf("w%d = pixel (%d, %d), want (%d, %d)", i, x, y, want[0], want[1])
		}
	}
}

func TestGatherNeighborhoodMirrorsRightHalf(t *testing.T) {
	src := gradientPixmap(4, 4)

	n := gatherNeighborhood(src, 1.75, 1.25)
	if n.sx != -1 || n.sy != 1 {
		t.Fatalf("signs = (%d, %d), want (-1, 1)", n.sx, n.sy)
	}
	if n.fx != 0.25 {
		t.Fatalf("fx = %v, want 0.25 after mirroring", n.fx)
	}

	// The x axis is mirrored: "left" neighbors now sit to the right.
	if x, y := pixelID(n.w[3]); x != 2 || y != 1 {
		t.Errorf("w3 = pixel (%d, %d), want (2, 1)", x, y)
	}
	if x, y := pixelID(n.w[5]); x != 0 || y != 1 {
		t.Errorf("w5 = pixel (%d, %d), want (0, 1)", x, y)
	}
	if x, y := pixelID(n.w[4]); x != 1 || y != 1 {
		t.Errorf("w4 = pixel (%d, %d), want (1, 1)", x, y)
	}
}

func TestGatherNeighborhoodMirrorsBothAxes(t *testing.T) {
	src := gradientPixmap(4, 4)

	n := gatherNeighborhood(src, 1.75, 2.75)
	if n.sx != -1 || n.sy != -1 {
		t.Fatalf("signs = (%d, %d), want (-1, -1)", n.sx, n.sy)
	}
	// w0 is the diagonal neighbor nearest the sample point; with both
	// axes mirrored it sits below-right of the center.
	if x, y := pixelID(n.w[0]); x != 2 || y != 3 {
		t.Errorf("w0 = pixel (%d, %d), want (2, 3)", x, y)
	}
	if x, y := pixelID(n.w[4]); x != 1 || y != 2 {
		t.Errorf("w4 = pixel (%d, %d), want (1, 2)", x, y)
	}
}

func TestGatherNeighborhoodClampsToEdge(t *testing.T) {
	src := gradientPixmap(4, 4)

	n := gatherNeighborhood(src, 0.25, 0.25)
	// Off-frame neighbors resolve to the nearest edge pixel.
	if x, y := pixelID(n.w[0]); x != 0 || y != 0 {
		t.Errorf("w0 = pixel (%d, %d), want clamped (0, 0)", x, y)
	}
	if x, y := pixelID(n.w[1]); x != 0 || y != 0 {
		t.Errorf("w1 = pixel (%d, %d), want clamped (0, 0)", x, y)
	}
	if x, y := pixelID(n.w[3]); x != 0 || y != 0 {
		t.Errorf("w3 = pixel (%d, %d), want clamped (0, 0)", x, y)
	}
}

func TestGatherRing(t *testing.T) {
	src := gradientPixmap(8, 8)

	n := gatherNeighborhood(src, 4.25, 4.25)
	ring := gatherRing(src, &n)

	wantPos := [7][2]int{
		{2, 2}, {3, 2}, {4, 2}, {5, 2},
		{2, 3}, {2, 4}, {2, 5},
	}
	for i, want := range wantPos {
		x, y := pixelID(ring[i])
		if x != want[0] || y != want[1] {
			t.Errorf("ring[%d] = pixel (%d, %d), want (%d, %d)", i, x, y, want[0], want[1])
		}
	}
}

func TestGatherRingMirrored(t *testing.T) {
	src := gradientPixmap(8, 8)

	n := gatherNeighborhood(src, 4.75, 4.25)
	ring := gatherRing(src, &n)

	// x offsets are mirrored around cx=4: offset -2 resolves to x=6.
	if x, y := pixelID(ring[0]); x != 6 || y != 2 {
		t.Errorf("ring[0] = pixel (%d, %d), want (6, 2)", x, y)
	}
	if x, y := pixelID(ring[5]); x != 6 || y != 4 {
		t.Errorf("ring[5] = pixel (%d, %d), want (6, 4)", x, y)
	}
}
