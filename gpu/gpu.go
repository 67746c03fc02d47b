//go:build !nogpu

// Package gpu registers the wgpu compute accelerator for
// hardware-accelerated sharp scaling.
//
// Import this package to run the sharp filter as a GPU compute dispatch
// instead of the CPU kernel. If GPU initialization fails (no Vulkan
// available), the registration stays in place but every frame falls
// back to the CPU path transparently.
//
// Usage:
//
//	import _ "github.com/gogpu/pixscale/gpu" // enable GPU scaling
package gpu

import (
	"github.com/gogpu/pixscale"
	gpuimpl "github.com/gogpu/pixscale/internal/gpu"
)

func init() {
	if err := pixscale.RegisterAccelerator(gpuimpl.New()); err != nil {
		pixscale.Logger().Warn("GPU accelerator not available", "err", err)
	}
}

// SetDeviceProvider configures the accelerator to use a shared GPU
// device from an external provider (e.g., a gogpu window). This avoids
// creating a separate GPU instance when the host application already
// owns one.
//
// The provider should be a gpucontext.DeviceProvider that also exposes
// its HAL device and queue.
//
// Call this after the host device exists, typically from the viewport
// integration.
func SetDeviceProvider(provider any) error {
	return pixscale.SetAcceleratorDeviceProvider(provider)
}
