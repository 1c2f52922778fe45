// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/born-ml/fundamentals/internal/accel"
	"github.com/born-ml/fundamentals/internal/tensor"
)

// DType is a constraint for tensor element types.
type DType = tensor.DType

// DataType represents the underlying data type of a tensor.
type DataType = tensor.DataType

// Data type constants.
const (
	Float32 DataType = tensor.Float32
	Float64 DataType = tensor.Float64
	Float16 DataType = tensor.Float16
	Int8    DataType = tensor.Int8
	Int32   DataType = tensor.Int32
	Int64   DataType = tensor.Int64
	Uint8   DataType = tensor.Uint8
	Bool    DataType = tensor.Bool
)

// Device represents the device where tensor data resides.
type Device = tensor.Device

// Device constants.
const (
	CPU    Device = tensor.CPU
	CUDA   Device = tensor.CUDA
	Vulkan Device = tensor.Vulkan
	Metal  Device = tensor.Metal
	WebGPU Device = tensor.WebGPU
)

// ParseDevice maps a device name such as "cpu" or "cuda" to a Device.
func ParseDevice(name string) (Device, error) {
	return tensor.ParseDevice(name)
}

// DefaultDevice returns the first available accelerator, or CPU when none
// is present.
//
// Example:
//
//	x, err := x.To(tensor.DefaultDevice())
func DefaultDevice() Device {
	return accel.Default()
}

// DeviceAvailable reports whether at least one device of the given kind is
// present.
func DeviceAvailable(device Device) bool {
	return accel.Available(device)
}

// Shape represents the dimensions of a tensor.
// Example: Shape{2, 3, 4} represents a 3D tensor with dimensions 2×3×4.
type Shape = tensor.Shape

// Tensor is a generic type-safe tensor.
//
// T is the element type and B the backend computing its operations.
type Tensor[T DType, B Backend] = tensor.Tensor[T, B]

// Creation functions

// Zeros creates a tensor filled with zeros.
//
// Example:
//
//	backend := cpu.New()
//	x, err := tensor.Zeros[float32](tensor.Shape{2, 3}, backend)
func Zeros[T DType, B Backend](shape Shape, b B) (*Tensor[T, B], error) {
	return tensor.Zeros[T, B](shape, b)
}

// Ones creates a tensor filled with ones.
func Ones[T DType, B Backend](shape Shape, b B) (*Tensor[T, B], error) {
	return tensor.Ones[T, B](shape, b)
}

// Full creates a tensor filled with value.
func Full[T DType, B Backend](shape Shape, value T, b B) (*Tensor[T, B], error) {
	return tensor.Full[T, B](shape, value, b)
}

// ZerosLike creates a zero tensor with the shape and device of t.
func ZerosLike[T DType, B Backend](t *Tensor[T, B]) *Tensor[T, B] {
	return tensor.ZerosLike(t)
}

// OnesLike creates a tensor of ones with the shape and device of t.
func OnesLike[T DType, B Backend](t *Tensor[T, B]) *Tensor[T, B] {
	return tensor.OnesLike(t)
}

// Scalar creates a 0-D tensor holding v.
func Scalar[T DType, B Backend](v T, b B) *Tensor[T, B] {
	return tensor.Scalar(v, b)
}

// Arange creates a 1D tensor with values from start to end (exclusive).
//
// Example:
//
//	x, err := tensor.Arange[float32](0, 10, backend) // [0, 1, 2, ..., 9]
func Arange[T DType, B Backend](start, end T, b B) (*Tensor[T, B], error) {
	return tensor.Arange[T, B](start, end, b)
}

// ArangeStep creates a 1D tensor from start to end (exclusive) by step.
func ArangeStep[T DType, B Backend](start, end, step T, b B) (*Tensor[T, B], error) {
	return tensor.ArangeStep[T, B](start, end, step, b)
}

// Eye creates a 2D identity matrix.
func Eye[T DType, B Backend](n int, b B) (*Tensor[T, B], error) {
	return tensor.Eye[T, B](n, b)
}

// FromSlice creates a tensor from a Go slice. The data is copied.
//
// Example:
//
//	data := []float32{1, 2, 3, 4, 5, 6}
//	x, err := tensor.FromSlice(data, tensor.Shape{2, 3}, backend)
func FromSlice[T DType, B Backend](data []T, shape Shape, b B) (*Tensor[T, B], error) {
	return tensor.FromSlice[T, B](data, shape, b)
}

// New creates a tensor from a raw tensor.
//
// This is a low-level function. Most users should use creation functions like
// Zeros, Ones, or FromSlice instead.
func New[T DType, B Backend](raw *RawTensor, b B) *Tensor[T, B] {
	return tensor.New[T, B](raw, b)
}

// NewRaw creates a new zero-filled raw tensor.
func NewRaw(shape Shape, dtype DataType, device Device) (*RawTensor, error) {
	return tensor.NewRaw(shape, dtype, device)
}

// Conversion functions

// Cast converts t to element type U.
func Cast[U DType, T DType, B Backend](t *Tensor[T, B]) (*Tensor[U, B], error) {
	return tensor.Cast[U](t)
}

// Manipulation functions

// Stack joins equally shaped tensors along a new dimension.
func Stack[T DType, B Backend](tensors []*Tensor[T, B], dim int) (*Tensor[T, B], error) {
	return tensor.Stack(tensors, dim)
}

// Cat concatenates tensors along an existing dimension.
//
// Example:
//
//	a, _ := tensor.Ones[float32](tensor.Shape{2, 3}, backend)
//	b, _ := tensor.Zeros[float32](tensor.Shape{2, 3}, backend)
//	c, _ := tensor.Cat([]*tensor.Tensor[float32, *cpu.Backend]{a, b}, 0) // (4, 3)
func Cat[T DType, B Backend](tensors []*Tensor[T, B], dim int) (*Tensor[T, B], error) {
	return tensor.Cat(tensors, dim)
}

// Utility functions

// BroadcastShapes computes the broadcast shape of a and b following NumPy
// rules, or fails with ErrShapeMismatch.
func BroadcastShapes(a, b Shape) (Shape, error) {
	return tensor.BroadcastShapes(a, b)
}
