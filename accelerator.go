package pixscale

import (
	"errors"
	"sync"
)

// ErrFallbackToCPU indicates the GPU accelerator cannot handle this
// frame. The caller should transparently fall back to CPU scaling.
var ErrFallbackToCPU = errors.New("pixscale: falling back to CPU scaling")

// Frame provides pixel buffer access for accelerator output.
// The Data slice must be in RGBA format, 4 bytes per pixel, laid out
// row by row with the given Stride.
type Frame struct {
	Data          []uint8
	Width, Height int
	Stride        int // bytes per row
}

// Accelerator is an optional GPU scaling provider.
//
// When registered via RegisterAccelerator, Scaler tries GPU scaling
// first for the sharp filter. If the accelerator returns
// ErrFallbackToCPU or any error, scaling transparently falls back to
// the CPU kernel.
//
// Implementations are provided by GPU backend packages. Users opt in
// via blank import:
//
//	import _ "github.com/gogpu/pixscale/gpu" // enables GPU scaling
type Accelerator interface {
	// Name returns the accelerator name (e.g., "wgpu").
	Name() string

	// Init initializes GPU resources. Called once during registration.
	Init() error

	// Close releases GPU resources.
	Close()

	// Scale runs the sharp filter for the whole frame, writing one
	// color per target pixel into target.Data. Returns
	// ErrFallbackToCPU if the frame cannot be GPU-scaled.
	Scale(target Frame, src *Pixmap) error
}

// DeviceProviderAware is an optional interface for accelerators that can
// share GPU resources with an external provider (e.g., a gogpu window).
// When SetDeviceProvider is called, the accelerator reuses the provided
// GPU device instead of creating its own.
type DeviceProviderAware interface {
	SetDeviceProvider(provider any) error
}

var (
	accelMu sync.RWMutex
	accel   Accelerator
)

// RegisterAccelerator registers a GPU accelerator for optional GPU
// scaling.
//
// Only one accelerator can be registered. Subsequent calls replace the
// previous one. The accelerator's Init() method is called during
// registration. If Init() fails, the accelerator is not registered and
// the error is returned.
//
// Typical usage via blank import in GPU backend packages:
//
//	func init() {
//	    pixscale.RegisterAccelerator(NewWGPUAccelerator())
//	}
func RegisterAccelerator(a Accelerator) error {
	if a == nil {
		return errors.New("pixscale: accelerator must not be nil")
	}
	if err := a.Init(); err != nil {
		return err
	}
	propagateLogger(a, Logger())
	accelMu.Lock()
	old := accel
	accel = a
	accelMu.Unlock()
	if old != nil {
		old.Close()
	}
	return nil
}

// RegisteredAccelerator returns the currently registered GPU
// accelerator, or nil if none.
func RegisteredAccelerator() Accelerator {
	accelMu.RLock()
	a := accel
	accelMu.RUnlock()
	return a
}

// SetAcceleratorDeviceProvider passes a device provider to the
// registered accelerator, enabling GPU device sharing. Returns an error
// if no accelerator is registered or it does not support device
// sharing.
func SetAcceleratorDeviceProvider(provider any) error {
	accelMu.RLock()
	a := accel
	accelMu.RUnlock()
	if a == nil {
		return errors.New("pixscale: no accelerator registered")
	}
	dpa, ok := a.(DeviceProviderAware)
	if !ok {
		return errors.New("pixscale: accelerator does not support device sharing")
	}
	return dpa.SetDeviceProvider(provider)
}
