// Package gpu implements a wgpu/hal compute accelerator for the sharp
// scaling filter. The whole per-pixel kernel runs as a single compute
// dispatch; the shader mirrors the CPU implementation bit for bit in
// its decision logic.
package gpu

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/pixscale"

	// Import Vulkan backend so it registers via init().
	_ "github.com/gogpu/wgpu/hal/vulkan"
)

// frameParams matches the Params uniform in scale.wgsl.
type frameParams struct {
	SrcWidth  uint32
	SrcHeight uint32
	DstWidth  uint32
	DstHeight uint32
}

const frameParamsSize = 16

// ScaleAccelerator runs the sharp filter on the GPU through wgpu/hal.
// It implements the pixscale.Accelerator interface. When GPU init
// fails, Scale reports pixscale.ErrFallbackToCPU so the caller runs the
// CPU kernel instead.
type ScaleAccelerator struct {
	mu sync.Mutex

	log *slog.Logger

	instance hal.Instance
	device   hal.Device
	queue    hal.Queue

	shader     hal.ShaderModule
	bindLayout hal.BindGroupLayout
	pipeLayout hal.PipelineLayout
	pipeline   hal.ComputePipeline

	gpuReady       bool
	externalDevice bool // true when using a shared device (don't destroy on Close)
}

var _ pixscale.Accelerator = (*ScaleAccelerator)(nil)
var _ pixscale.DeviceProviderAware = (*ScaleAccelerator)(nil)

// New creates an uninitialized accelerator. Init must be called before
// Scale; pixscale.RegisterAccelerator does this.
func New() *ScaleAccelerator {
	return &ScaleAccelerator{log: pixscale.Logger()}
}

func (a *ScaleAccelerator) Name() string { return "wgpu" }

// SetLogger replaces the accelerator's logger. Called by
// pixscale.SetLogger via registration.
func (a *ScaleAccelerator) SetLogger(l *slog.Logger) {
	a.mu.Lock()
	a.log = l
	a.mu.Unlock()
}

func (a *ScaleAccelerator) Init() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if err := a.initGPU(); err != nil {
		a.log.Warn("GPU init failed, accelerator disabled", "err", err)
	}
	return nil
}

func (a *ScaleAccelerator) Close() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.destroyPipeline()
	if !a.externalDevice {
		if a.device != nil {
			a.device.Destroy()
			a.device = nil
		}
		if a.instance != nil {
			a.instance.Destroy()
			a.instance = nil
		}
	} else {
		// Shared resources are owned by the provider.
		a.device = nil
		a.instance = nil
	}
	a.queue = nil
	a.gpuReady = false
	a.externalDevice = false
}

// SetDeviceProvider switches the accelerator to a shared GPU device
// from an external provider (e.g., a gogpu window). The provider must
// implement HalDevice() any and HalQueue() any returning hal.Device and
// hal.Queue.
func (a *ScaleAccelerator) SetDeviceProvider(provider any) error {
	type halProvider interface {
		HalDevice() any
		HalQueue() any
	}
	hp, ok := provider.(halProvider)
	if !ok {
		return fmt.Errorf("wgpu: provider does not expose HAL types")
	}
	device, ok := hp.HalDevice().(hal.Device)
	if !ok || device == nil {
		return fmt.Errorf("wgpu: provider HalDevice is not hal.Device")
	}
	queue, ok := hp.HalQueue().(hal.Queue)
	if !ok || queue == nil {
		return fmt.Errorf("wgpu: provider HalQueue is not hal.Queue")
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	a.destroyPipeline()
	if !a.externalDevice && a.device != nil {
		a.device.Destroy()
	}
	if a.instance != nil {
		a.instance.Destroy()
		a.instance = nil
	}

	a.device = device
	a.queue = queue
	a.externalDevice = true

	if err := a.createPipeline(); err != nil {
		a.gpuReady = false
		return fmt.Errorf("wgpu: create pipeline with shared device: %w", err)
	}
	a.gpuReady = true
	a.log.Info("switched to shared GPU device")
	return nil
}

// Scale runs the sharp filter for the whole frame on the GPU, writing
// one color per target pixel into target.Data.
func (a *ScaleAccelerator) Scale(target pixscale.Frame, src *pixscale.Pixmap) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if !a.gpuReady {
		return pixscale.ErrFallbackToCPU
	}
	if src == nil || src.Width() < 1 || src.Height() < 1 ||
		target.Width < 1 || target.Height < 1 {
		return pixscale.ErrFallbackToCPU
	}
	return a.dispatch(target, src)
}

func (a *ScaleAccelerator) dispatch(target pixscale.Frame, src *pixscale.Pixmap) error {
	srcSize := uint64(src.Width() * src.Height() * 4)
	dstSize := uint64(target.Width * target.Height * 4)

	srcBuf, err := a.device.CreateBuffer(&hal.BufferDescriptor{
		Label: "scale_src", Size: srcSize,
		Usage: gputypes.BufferUsageStorage | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		return fmt.Errorf("create source buffer: %w", err)
	}
	defer a.device.DestroyBuffer(srcBuf)

	dstBuf, err := a.device.CreateBuffer(&hal.BufferDescriptor{
		Label: "scale_dst", Size: dstSize,
		Usage: gputypes.BufferUsageStorage | gputypes.BufferUsageCopySrc,
	})
	if err != nil {
		return fmt.Errorf("create target buffer: %w", err)
	}
	defer a.device.DestroyBuffer(dstBuf)

	stagingBuf, err := a.device.CreateBuffer(&hal.BufferDescriptor{
		Label: "scale_staging", Size: dstSize,
		Usage: gputypes.BufferUsageMapRead | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		return fmt.Errorf("create staging buffer: %w", err)
	}
	defer a.device.DestroyBuffer(stagingBuf)

	paramsBuf, err := a.device.CreateBuffer(&hal.BufferDescriptor{
		Label: "scale_params", Size: frameParamsSize,
		Usage: gputypes.BufferUsageUniform | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		return fmt.Errorf("create params buffer: %w", err)
	}
	defer a.device.DestroyBuffer(paramsBuf)

	a.queue.WriteBuffer(srcBuf, 0, src.Data())
	a.queue.WriteBuffer(paramsBuf, 0, packParams(frameParams{
		SrcWidth:  uint32(src.Width()),
		SrcHeight: uint32(src.Height()),
		DstWidth:  uint32(target.Width),
		DstHeight: uint32(target.Height),
	}))

	bindGroup, err := a.device.CreateBindGroup(&hal.BindGroupDescriptor{
		Label: "scale_bind", Layout: a.bindLayout,
		Entries: []gputypes.BindGroupEntry{
			{Binding: 0, Resource: gputypes.BufferBinding{Buffer: paramsBuf.NativeHandle(), Offset: 0, Size: frameParamsSize}},
			{Binding: 1, Resource: gputypes.BufferBinding{Buffer: srcBuf.NativeHandle(), Offset: 0, Size: srcSize}},
			{Binding: 2, Resource: gputypes.BufferBinding{Buffer: dstBuf.NativeHandle(), Offset: 0, Size: dstSize}},
		},
	})
	if err != nil {
		return fmt.Errorf("create bind group: %w", err)
	}
	defer a.device.DestroyBindGroup(bindGroup)

	encoder, err := a.device.CreateCommandEncoder(&hal.CommandEncoderDescriptor{Label: "scale_encoder"})
	if err != nil {
		return fmt.Errorf("create command encoder: %w", err)
	}
	if err := encoder.BeginEncoding("scale"); err != nil {
		return fmt.Errorf("begin encoding: %w", err)
	}

	pass := encoder.BeginComputePass(&hal.ComputePassDescriptor{Label: "scale_pass"})
	pass.SetPipeline(a.pipeline)
	pass.SetBindGroup(0, bindGroup, nil)
	pass.Dispatch((uint32(target.Width)+7)/8, (uint32(target.Height)+7)/8, 1)
	pass.End()

	encoder.CopyBufferToBuffer(dstBuf, stagingBuf, []hal.BufferCopy{
		{SrcOffset: 0, DstOffset: 0, Size: dstSize},
	})
	cmdBuf, err := encoder.EndEncoding()
	if err != nil {
		return fmt.Errorf("end encoding: %w", err)
	}
	defer a.device.FreeCommandBuffer(cmdBuf)

	fence, err := a.device.CreateFence()
	if err != nil {
		return fmt.Errorf("create fence: %w", err)
	}
	defer a.device.DestroyFence(fence)
	if err := a.queue.Submit([]hal.CommandBuffer{cmdBuf}, fence, 1); err != nil {
		return fmt.Errorf("submit: %w", err)
	}
	fenceOK, err := a.device.Wait(fence, 1, 5*time.Second)
	if err != nil || !fenceOK {
		return fmt.Errorf("wait for GPU: ok=%v err=%w", fenceOK, err)
	}

	readback := make([]byte, dstSize)
	if err := a.queue.ReadBuffer(stagingBuf, 0, readback); err != nil {
		return fmt.Errorf("readback: %w", err)
	}
	copyRows(target, readback)
	return nil
}

// copyRows transfers the tightly packed readback rows into the target
// frame, honoring its stride.
func copyRows(target pixscale.Frame, packed []byte) {
	rowBytes := target.Width * 4
	if target.Stride == rowBytes {
		copy(target.Data, packed)
		return
	}
	for y := 0; y < target.Height; y++ {
		copy(target.Data[y*target.Stride:y*target.Stride+rowBytes], packed[y*rowBytes:])
	}
}

// packParams serializes a frameParams to little-endian bytes matching
// the shader's uniform layout.
func packParams(p frameParams) []byte {
	buf := make([]byte, frameParamsSize)
	putUint32 := func(off int, v uint32) {
		buf[off+0] = byte(v)
		buf[off+1] = byte(v >> 8)
		buf[off+2] = byte(v >> 16)
		buf[off+3] = byte(v >> 24)
	}
	putUint32(0, p.SrcWidth)
	putUint32(4, p.SrcHeight)
	putUint32(8, p.DstWidth)
	putUint32(12, p.DstHeight)
	return buf
}

func (a *ScaleAccelerator) initGPU() error {
	backend, ok := hal.GetBackend(gputypes.BackendVulkan)
	if !ok {
		return fmt.Errorf("vulkan backend not available")
	}
	instance, err := backend.CreateInstance(&hal.InstanceDescriptor{Flags: 0})
	if err != nil {
		return fmt.Errorf("create instance: %w", err)
	}
	a.instance = instance
	adapters := instance.EnumerateAdapters(nil)
	if len(adapters) == 0 {
		return fmt.Errorf("no GPU adapters found")
	}
	var selected *hal.ExposedAdapter
	for i := range adapters {
		if adapters[i].Info.DeviceType == gputypes.DeviceTypeDiscreteGPU ||
			adapters[i].Info.DeviceType == gputypes.DeviceTypeIntegratedGPU {
			selected = &adapters[i]
			break
		}
	}
	if selected == nil {
		selected = &adapters[0]
	}
	openDev, err := selected.Adapter.Open(gputypes.Features(0), gputypes.DefaultLimits())
	if err != nil {
		return fmt.Errorf("open device: %w", err)
	}
	a.device = openDev.Device
	a.queue = openDev.Queue
	if err := a.createPipeline(); err != nil {
		a.device.Destroy()
		a.device = nil
		a.queue = nil
		return fmt.Errorf("create pipeline: %w", err)
	}
	a.gpuReady = true
	a.log.Info("GPU accelerator initialized", "adapter", selected.Info.Name)
	return nil
}

func (a *ScaleAccelerator) createPipeline() error {
	spirv, err := compileToSPIRV(scaleShaderSource)
	if err != nil {
		return fmt.Errorf("compile scale shader: %w", err)
	}
	shader, err := a.device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label:  "scale",
		Source: hal.ShaderSource{SPIRV: spirv},
	})
	if err != nil {
		return fmt.Errorf("create scale shader module: %w", err)
	}
	a.shader = shader

	bindLayout, err := a.device.CreateBindGroupLayout(&hal.BindGroupLayoutDescriptor{
		Label: "scale_bind_layout",
		Entries: []gputypes.BindGroupLayoutEntry{
			{Binding: 0, Visibility: gputypes.ShaderStageCompute, Buffer: &gputypes.BufferBindingLayout{Type: gputypes.BufferBindingTypeUniform}},
			{Binding: 1, Visibility: gputypes.ShaderStageCompute, Buffer: &gputypes.BufferBindingLayout{Type: gputypes.BufferBindingTypeReadOnlyStorage}},
			{Binding: 2, Visibility: gputypes.ShaderStageCompute, Buffer: &gputypes.BufferBindingLayout{Type: gputypes.BufferBindingTypeStorage}},
		},
	})
	if err != nil {
		return fmt.Errorf("create bind group layout: %w", err)
	}
	a.bindLayout = bindLayout

	pipeLayout, err := a.device.CreatePipelineLayout(&hal.PipelineLayoutDescriptor{
		Label: "scale_pipe_layout", BindGroupLayouts: []hal.BindGroupLayout{a.bindLayout},
	})
	if err != nil {
		return fmt.Errorf("create pipeline layout: %w", err)
	}
	a.pipeLayout = pipeLayout

	pipeline, err := a.device.CreateComputePipeline(&hal.ComputePipelineDescriptor{
		Label: "scale_pipeline", Layout: a.pipeLayout,
		Compute: hal.ComputeState{Module: a.shader, EntryPoint: "main"},
	})
	if err != nil {
		return fmt.Errorf("create compute pipeline: %w", err)
	}
	a.pipeline = pipeline

	return nil
}

func (a *ScaleAccelerator) destroyPipeline() {
	if a.device == nil {
		return
	}
	if a.pipeline != nil {
		a.device.DestroyComputePipeline(a.pipeline)
		a.pipeline = nil
	}
	if a.pipeLayout != nil {
		a.device.DestroyPipelineLayout(a.pipeLayout)
		a.pipeLayout = nil
	}
	if a.bindLayout != nil {
		a.device.DestroyBindGroupLayout(a.bindLayout)
		a.bindLayout = nil
	}
	if a.shader != nil {
		a.device.DestroyShaderModule(a.shader)
		a.shader = nil
	}
}
