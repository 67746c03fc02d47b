// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package viewport

import (
	"errors"
	"fmt"

	"github.com/gogpu/gpucontext"
)

// Rendering errors.
var (
	// ErrInvalidDrawContext is returned when the draw context doesn't
	// implement gpucontext.TextureDrawer.
	ErrInvalidDrawContext = errors.New("viewport: dc must implement gpucontext.TextureDrawer")

	// ErrInvalidRenderer is returned when the renderer doesn't implement
	// gpucontext.TextureCreator.
	ErrInvalidRenderer = errors.New("viewport: renderer must implement gpucontext.TextureCreator")
)

// RenderTo draws the presented frame to a gpucontext.TextureDrawer at
// the origin. This is the primary integration method.
//
// The dc parameter should be obtained from gogpu.Context.AsTextureDrawer().
//
// Example:
//
//	app.OnDraw(func(dc *gogpu.Context) {
//	    vp.RenderTo(dc.AsTextureDrawer())
//	})
func (v *Viewport) RenderTo(dc gpucontext.TextureDrawer) error {
	return v.RenderToPosition(dc, 0, 0)
}

// RenderToPosition draws the presented frame at a specific position.
func (v *Viewport) RenderToPosition(dc gpucontext.TextureDrawer, x, y float32) error {
	if v.closed {
		return ErrViewportClosed
	}

	tex, err := v.flush()
	if err != nil {
		return err
	}

	// If the texture is a pending placeholder, create the real GPU
	// texture now that a creator is reachable through the draw context.
	if pending, isPending := tex.(*pendingTexture); isPending {
		creator := dc.TextureCreator()
		if creator == nil {
			return ErrInvalidRenderer
		}

		// NewTextureFromRGBA calls WriteTexture, which waits for the GPU
		// internally. After it returns all prior GPU work is complete.
		realTex, err := creator.NewTextureFromRGBA(pending.width, pending.height, pending.data)
		if err != nil {
			return fmt.Errorf("viewport: NewTextureFromRGBA failed: %w", err)
		}

		v.texture = realTex
		tex = realTex

		// Now safe to destroy the old texture; its descriptor heap
		// entries are no longer in use.
		if v.oldTexture != nil {
			if destroyer, ok := v.oldTexture.(textureDestroyer); ok {
				destroyer.Destroy()
			}
			v.oldTexture = nil
		}
	}

	gpuTex, ok := tex.(gpucontext.Texture)
	if !ok {
		return ErrInvalidDrawContext
	}

	return dc.DrawTexture(gpuTex, x, y)
}
