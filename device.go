package pixscale

import "github.com/gogpu/gpucontext"

// DeviceHandle provides GPU device access from the host application.
//
// The host application (e.g., an emulator frontend built on gogpu)
// implements DeviceHandle and passes it to
// SetAcceleratorDeviceProvider, allowing the scaling accelerator to use
// the shared GPU device instead of creating its own.
//
// DeviceHandle is an alias for gpucontext.DeviceProvider, providing a
// pixscale-specific name for the interface while maintaining full
// compatibility with the gpucontext ecosystem.
type DeviceHandle = gpucontext.DeviceProvider
