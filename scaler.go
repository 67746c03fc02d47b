package pixscale

import (
	"context"
	"errors"
	"image"
	"math"

	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/pixscale/internal/parallel"
)

// Precondition errors returned by Scale.
var (
	// ErrInvalidSource is returned when the source is nil or smaller
	// than 1x1.
	ErrInvalidSource = errors.New("pixscale: source must be at least 1x1")

	// ErrInvalidTarget is returned when the target extent is smaller
	// than 1x1.
	ErrInvalidTarget = errors.New("pixscale: target must be at least 1x1")
)

// bandRows is the height of one scheduling unit for the parallel CPU
// path. Cancellation is observed between bands, never mid-pixel.
const bandRows = 32

// Scaler scales frames with a fixed filter configuration. A Scaler is
// stateless between frames and safe for concurrent use.
type Scaler struct {
	opts scaleOptions
}

// New creates a Scaler.
func New(opts ...ScaleOption) *Scaler {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Scaler{opts: o}
}

// Filter returns the filter the Scaler applies.
func (s *Scaler) Filter() Filter {
	return s.opts.filter
}

// Scale scales src to a new width x height pixmap.
func (s *Scaler) Scale(src *Pixmap, width, height int) (*Pixmap, error) {
	return s.ScaleContext(context.Background(), src, width, height)
}

// ScaleContext scales src to a new width x height pixmap, abandoning
// remaining work if ctx is canceled. Cancellation applies at band
// granularity: whole rows of output are either fully computed or not
// computed at all, and a canceled scale returns ctx.Err() with no
// pixmap.
func (s *Scaler) ScaleContext(ctx context.Context, src *Pixmap, width, height int) (*Pixmap, error) {
	if src == nil || src.width < 1 || src.height < 1 {
		return nil, ErrInvalidSource
	}
	if width < 1 || height < 1 {
		return nil, ErrInvalidTarget
	}

	dst := NewPixmap(width, height)

	if s.opts.filter != FilterSharp {
		s.scaleSimple(dst, src)
		return dst, nil
	}

	if !s.opts.noAccel {
		if a := RegisteredAccelerator(); a != nil {
			target := Frame{Data: dst.data, Width: width, Height: height, Stride: width * 4}
			err := a.Scale(target, src)
			if err == nil {
				return dst, nil
			}
			if !errors.Is(err, ErrFallbackToCPU) {
				Logger().Warn("GPU scaling failed, using CPU",
					"accelerator", a.Name(), "err", err)
			}
		}
	}

	rx := float64(src.width) / float64(width)
	ry := float64(src.height) / float64(height)
	aa := newAAParams(src.width, src.height, width, height)

	err := parallel.ForEachBand(ctx, height, s.opts.workers, bandRows, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			for x := 0; x < width; x++ {
				dst.SetPixel(x, y, kernelAt(src, x, y, rx, ry, aa))
			}
		}
	})
	if err != nil {
		return nil, err
	}
	return dst, nil
}

// ScaleImage is a convenience wrapper accepting and returning standard
// library image types.
func (s *Scaler) ScaleImage(img image.Image, width, height int) (*image.RGBA, error) {
	out, err := s.Scale(FromImage(img), width, height)
	if err != nil {
		return nil, err
	}
	return out.ToImage(), nil
}

// KernelAt evaluates the sharp filter for a single output pixel. It is
// the pure per-pixel form of the algorithm: the result depends only on
// the source image, the output coordinate and the two extents, so calls
// are independent and may run in any order or in parallel.
func KernelAt(src *Pixmap, x, y, targetWidth, targetHeight int) RGBA {
	rx := float64(src.width) / float64(targetWidth)
	ry := float64(src.height) / float64(targetHeight)
	return kernelAt(src, x, y, rx, ry, newAAParams(src.width, src.height, targetWidth, targetHeight))
}

// kernelAt is the per-pixel pipeline: sampler, classifier, pattern
// encoder, rule engine and, for residual patterns, the diagonal
// disambiguator.
func kernelAt(src *Pixmap, x, y int, rx, ry float64, aa aaParams) RGBA {
	sx := (float64(x) + 0.5) * rx
	sy := (float64(y) + 0.5) * ry

	n := gatherNeighborhood(src, sx, sy)
	pattern := encodePattern(&n)

	if c, ok := evalRules(pattern, &n, aa); ok {
		return c
	}
	return disambiguate(src, &n, pattern, aa)
}

// newAAParams derives the anti-aliasing half-band widths from the
// source and target extents.
func newAAParams(srcW, srcH, dstW, dstH int) aaParams {
	ix := float64(srcW) / float64(dstW)
	iy := float64(srcH) / float64(dstH)
	l := math.Hypot(ix, iy)
	return aaParams{band: l, band2: l * math.Sqrt(5)}
}

// scaleSimple runs the non-adaptive paths through the x/image/draw
// scalers.
func (s *Scaler) scaleSimple(dst, src *Pixmap) {
	dstImg := &image.RGBA{
		Pix:    dst.data,
		Stride: dst.width * 4,
		Rect:   image.Rect(0, 0, dst.width, dst.height),
	}
	srcImg := &image.RGBA{
		Pix:    src.data,
		Stride: src.width * 4,
		Rect:   image.Rect(0, 0, src.width, src.height),
	}

	var interp xdraw.Interpolator = xdraw.NearestNeighbor
	if s.opts.filter == FilterLinear {
		interp = xdraw.BiLinear
	}
	interp.Scale(dstImg, dstImg.Rect, srcImg, srcImg.Rect, xdraw.Src, nil)
}
