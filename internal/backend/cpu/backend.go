// Package cpu implements the CPU backend. Matrix products go through gonum's
// BLAS; element-wise kernels split large tensors across goroutines.
package cpu

import (
	"github.com/born-ml/fundamentals/internal/accel"
	"github.com/born-ml/fundamentals/internal/parallel"
	"github.com/born-ml/fundamentals/internal/tensor"
)

var _ tensor.Backend = (*CPUBackend)(nil)

// CPUBackend implements tensor.Backend on local memory.
type CPUBackend struct {
	device tensor.Device
	cfg    parallel.Config
}

// Option configures a CPUBackend.
type Option func(*CPUBackend)

// WithWorkers sets the number of goroutines used by parallel kernels.
// n <= 0 keeps the default of one per CPU; n == 1 disables parallelism.
func WithWorkers(n int) Option {
	return func(cpu *CPUBackend) {
		if n <= 0 {
			return
		}
		cpu.cfg.NumWorkers = n
		cpu.cfg.Enabled = n > 1
	}
}

// New creates a new CPU backend.
func New(opts ...Option) *CPUBackend {
	cpu := &CPUBackend{
		device: tensor.CPU,
		cfg:    parallel.DefaultConfig(),
	}
	for _, opt := range opts {
		opt(cpu)
	}
	return cpu
}

// Name returns the backend name.
func (cpu *CPUBackend) Name() string {
	return "CPU"
}

// Device returns the compute device.
func (cpu *CPUBackend) Device() tensor.Device {
	return cpu.device
}

// Workers returns the number of goroutines parallel kernels may use.
func (cpu *CPUBackend) Workers() int {
	if !cpu.cfg.Enabled {
		return 1
	}
	return cpu.cfg.NumWorkers
}

// DeviceCount reports how many devices of the given kind the host exposes.
func (cpu *CPUBackend) DeviceCount(device tensor.Device) int {
	return accel.Count(device)
}

// number is the set of element types the arithmetic kernels run on.
// Float16 is computed through float32 and bool has no arithmetic.
type number interface {
	~float32 | ~float64 | ~int8 | ~int32 | ~int64 | ~uint8
}
