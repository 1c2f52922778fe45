// Package accel discovers which accelerator devices are present.
//
// Discovery runs once per process. Only WebGPU adapters can be queried; the
// remaining accelerator kinds always report zero devices.
package accel

import (
	"fmt"
	"sync"

	"github.com/born-ml/fundamentals/internal/tensor"
)

var (
	discoverOnce sync.Once
	counts    map[tensor.Device]int
)

func discover() {
	counts = map[tensor.Device]int{
		tensor.CPU:    1,
		tensor.WebGPU: webgpuAdapters(),
	}
}

// Count returns the number of devices of the given kind. CPU is always 1.
func Count(device tensor.Device) int {
	discoverOnce.Do(discover)
	return counts[device]
}

// Available reports whether at least one device of the given kind exists.
func Available(device tensor.Device) bool {
	return Count(device) > 0
}

// Default returns the first available accelerator, or CPU when none is
// present.
func Default() tensor.Device {
	for _, d := range []tensor.Device{tensor.CUDA, tensor.Metal, tensor.Vulkan, tensor.WebGPU} {
		if Available(d) {
			return d
		}
	}
	return tensor.CPU
}

// Resolve maps a device name to a Device. "auto" picks Default.
func Resolve(name string) (tensor.Device, error) {
	if name == "auto" {
		return Default(), nil
	}
	d, err := tensor.ParseDevice(name)
	if err != nil {
		return tensor.CPU, err
	}
	if !Available(d) {
		return tensor.CPU, fmt.Errorf("resolve %s: %w", d, tensor.ErrDeviceUnavailable)
	}
	return d, nil
}
