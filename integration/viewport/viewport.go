// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package viewport presents scaled frames inside a gogpu window.
//
// A Viewport owns a Scaler and a GPU texture sized to the output
// extent. Each Present call scales the source frame and flags the
// texture for upload; RenderTo draws it through the host's
// gpucontext.TextureDrawer.
package viewport

import (
	"context"
	"errors"
	"fmt"

	"github.com/gogpu/gpucontext"

	"github.com/gogpu/pixscale"
)

// Common errors returned by Viewport operations.
var (
	// ErrViewportClosed is returned when operations are attempted on a closed viewport.
	ErrViewportClosed = errors.New("viewport: viewport is closed")

	// ErrInvalidDimensions is returned when width or height is invalid.
	ErrInvalidDimensions = errors.New("viewport: invalid dimensions")

	// ErrNilProvider is returned when a nil DeviceProvider is passed.
	ErrNilProvider = errors.New("viewport: nil DeviceProvider")

	// ErrNoFrame is returned when RenderTo is called before any Present.
	ErrNoFrame = errors.New("viewport: no frame presented")
)

// textureDestroyer matches the gogpu.Texture.Destroy signature.
type textureDestroyer interface {
	Destroy()
}

// Viewport scales source frames to a fixed output extent and manages
// the GPU texture holding the result.
//
// Viewport is NOT safe for concurrent use. Create one Viewport per
// goroutine, or use external synchronization.
type Viewport struct {
	scaler      *pixscale.Scaler
	provider    gpucontext.DeviceProvider
	frame       *pixscale.Pixmap
	texture     any  // lazy-created texture (*gogpu.Texture)
	oldTexture  any  // previous texture awaiting deferred destruction
	dirty       bool // needs GPU upload
	sizeChanged bool // resize pending, texture must be recreated
	width       int
	height      int
	closed      bool
}

// New creates a Viewport with the given output extent. The provider
// should come from gogpu.App.GPUContextProvider().
//
// Scaler options are forwarded to pixscale.New; by default the sharp
// filter with GOMAXPROCS workers is used.
func New(provider gpucontext.DeviceProvider, width, height int, opts ...pixscale.ScaleOption) (*Viewport, error) {
	if provider == nil {
		return nil, ErrNilProvider
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: width=%d, height=%d", ErrInvalidDimensions, width, height)
	}

	// Share the GPU device with the scaling accelerator if registered.
	// Error is non-fatal: the accelerator may not support device sharing
	// or may not be registered. It will keep its own device.
	_ = pixscale.SetAcceleratorDeviceProvider(provider)

	return &Viewport{
		scaler:   pixscale.New(opts...),
		provider: provider,
		width:    width,
		height:   height,
	}, nil
}

// MustNew is like New but panics on error.
// Use only when errors are programming mistakes (e.g., hardcoded dimensions).
func MustNew(provider gpucontext.DeviceProvider, width, height int, opts ...pixscale.ScaleOption) *Viewport {
	v, err := New(provider, width, height, opts...)
	if err != nil {
		panic(err)
	}
	return v
}

// Width returns the output width in pixels.
func (v *Viewport) Width() int {
	return v.width
}

// Height returns the output height in pixels.
func (v *Viewport) Height() int {
	return v.height
}

// Size returns width and height as a convenience.
func (v *Viewport) Size() (width, height int) {
	return v.width, v.height
}

// Present scales src to the output extent and flags the result for GPU
// upload on the next RenderTo.
func (v *Viewport) Present(src *pixscale.Pixmap) error {
	return v.PresentContext(context.Background(), src)
}

// PresentContext is Present with cancellation. A canceled scale leaves
// the previously presented frame in place.
func (v *Viewport) PresentContext(ctx context.Context, src *pixscale.Pixmap) error {
	if v.closed {
		return ErrViewportClosed
	}
	frame, err := v.scaler.ScaleContext(ctx, src, v.width, v.height)
	if err != nil {
		return err
	}
	v.frame = frame
	v.dirty = true
	return nil
}

// Frame returns the most recently presented output frame, or nil if
// nothing has been presented yet.
func (v *Viewport) Frame() *pixscale.Pixmap {
	return v.frame
}

// Resize changes the output extent. The next Present rescales into the
// new extent and the texture is recreated on the next RenderTo.
func (v *Viewport) Resize(width, height int) error {
	if v.closed {
		return ErrViewportClosed
	}
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: width=%d, height=%d", ErrInvalidDimensions, width, height)
	}
	if v.width == width && v.height == height {
		return nil
	}

	v.width = width
	v.height = height
	v.frame = nil
	v.sizeChanged = true
	return nil
}

// flush uploads the presented frame to the GPU texture if dirty.
// The texture is created lazily on first flush.
func (v *Viewport) flush() (any, error) {
	if v.frame == nil {
		return nil, ErrNoFrame
	}

	// If the size changed, defer old texture destruction until after the
	// GPU is idle. In-flight command buffers may still reference it;
	// destroying it now would free descriptor heap entries the GPU is
	// reading. RenderTo destroys it after WriteTexture's internal wait.
	if v.sizeChanged {
		if v.texture != nil {
			if v.oldTexture != nil {
				if destroyer, ok := v.oldTexture.(textureDestroyer); ok {
					destroyer.Destroy()
				}
			}
			v.oldTexture = v.texture
			v.texture = nil
		}
		v.sizeChanged = false
	}

	if !v.dirty && v.texture != nil {
		return v.texture, nil
	}

	data := v.frame.Data()

	if v.texture == nil {
		v.texture = &pendingTexture{width: v.width, height: v.height, data: data}
		v.dirty = false
		return v.texture, nil
	}

	if updater, ok := v.texture.(gpucontext.TextureUpdater); ok {
		if err := updater.UpdateData(data); err != nil {
			return nil, fmt.Errorf("viewport: texture update failed: %w", err)
		}
	}

	v.dirty = false
	return v.texture, nil
}

// Texture returns the current GPU texture without flushing.
// Returns nil if the texture hasn't been created yet.
func (v *Viewport) Texture() any {
	return v.texture
}

// Close releases all resources associated with the Viewport.
// Close is idempotent - multiple calls are safe.
func (v *Viewport) Close() error {
	if v.closed {
		return nil
	}
	v.closed = true

	if v.oldTexture != nil {
		if destroyer, ok := v.oldTexture.(textureDestroyer); ok {
			destroyer.Destroy()
		}
		v.oldTexture = nil
	}
	if v.texture != nil {
		if destroyer, ok := v.texture.(textureDestroyer); ok {
			destroyer.Destroy()
		}
		v.texture = nil
	}

	v.frame = nil
	v.provider = nil
	return nil
}

// pendingTexture is a placeholder for texture creation. It holds the
// data needed to create a real texture when a textureCreator is
// available (during RenderTo).
type pendingTexture struct {
	width  int
	height int
	data   []byte
}

// Provider returns the DeviceProvider associated with this viewport.
// Returns nil if the viewport is closed.
func (v *Viewport) Provider() gpucontext.DeviceProvider {
	if v.closed {
		return nil
	}
	return v.provider
}
