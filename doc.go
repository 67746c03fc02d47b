// Package pixscale provides content-adaptive pixel-art upscaling for Go.
//
// # Overview
//
// pixscale scales low-resolution frames to arbitrary output sizes while
// keeping intentional hard edges sharp. Instead of interpolating every
// pixel, it classifies the local edge topology around each output
// sample and picks a blending strategy per pixel: flat areas and
// grid-aligned edges copy the nearest source pixel, staircase corners
// are smoothed, and diagonal boundaries are anti-aliased across an
// idealized edge line whose softness shrinks as the output grows.
//
// # Quick Start
//
//	import "github.com/gogpu/pixscale"
//
//	src, _ := pixscale.LoadImage("sprite.png")
//
//	s := pixscale.New()
//	out, _ := s.Scale(src, src.Width()*3, src.Height()*3)
//
//	out.SavePNG("sprite_3x.png")
//
// # Filters
//
// Three filters are available: FilterSharp (the content-adaptive
// default), FilterNearest and FilterLinear. The simple filters run
// through golang.org/x/image/draw.
//
// # Concurrency
//
// The sharp filter is a pure per-pixel function, so frames are computed
// in parallel row bands. A Scaler is stateless between frames and safe
// for concurrent use; ScaleContext honors cancellation at band
// granularity.
//
// # GPU Acceleration
//
// The same kernel can run as a wgpu compute dispatch. Opt in with a
// blank import:
//
//	import _ "github.com/gogpu/pixscale/gpu"
//
// When no GPU is available every frame transparently falls back to the
// CPU path. Host applications that already own a GPU device can share
// it via SetAcceleratorDeviceProvider.
//
// # Architecture
//
// The library is organized into:
//   - Public API: Scaler, Pixmap, RGBA, Filter, Accelerator
//   - Internal: parallel (band scheduling), gpu (wgpu compute), dump (frame dumps)
//   - Integration: viewport (gogpu window presentation)
package pixscale

// Version information
const (
	// Version is the current version of the library
	Version = "0.2.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 2

	// VersionPatch is the patch version
	VersionPatch = 0
)
