package tensor

import (
	"fmt"
	"math"
	"strings"
	"unsafe"
)

// Device represents where tensor memory lives.
type Device int

// Supported devices. CPU is local memory; the rest are accelerators.
const (
	CPU Device = iota
	CUDA
	Vulkan
	Metal
	WebGPU
)

// String returns a human-readable device name.
func (d Device) String() string {
	switch d {
	case CPU:
		return "CPU"
	case CUDA:
		return "CUDA"
	case Vulkan:
		return "Vulkan"
	case Metal:
		return "Metal"
	case WebGPU:
		return "WebGPU"
	default:
		return "Unknown"
	}
}

// ParseDevice maps a case-insensitive device name to a Device.
func ParseDevice(name string) (Device, error) {
	switch strings.ToLower(name) {
	case "cpu":
		return CPU, nil
	case "cuda":
		return CUDA, nil
	case "vulkan":
		return Vulkan, nil
	case "metal":
		return Metal, nil
	case "webgpu":
		return WebGPU, nil
	default:
		return CPU, fmt.Errorf("unknown device %q", name)
	}
}

// IsAccelerator reports whether d is an accelerator device.
func (d Device) IsAccelerator() bool {
	return d != CPU
}

// storage is the base buffer. It is owned by the allocation that created it;
// every RawTensor pointing at it is a view.
type storage struct {
	data []byte
}

// RawTensor is the untyped tensor representation: a shape, strides and an
// element offset over shared storage.
//
// Views (reshape, squeeze, permute, select, ...) share storage with their
// source, so a write through any of them is visible through all of them.
type RawTensor struct {
	store  *storage
	shape  Shape
	stride []int // in elements
	offset int   // in elements
	dtype  DataType
	device Device
}

// NewRaw allocates a zero-filled, contiguous RawTensor.
func NewRaw(shape Shape, dtype DataType, device Device) (*RawTensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if shape.NumElements() > math.MaxInt/dtype.Size() {
		return nil, fmt.Errorf("shape %v of %s: byte size overflows int: %w", shape, dtype, ErrInvalidShape)
	}
	return newRaw(shape, dtype, device), nil
}

// MustNewRaw is like NewRaw but panics if the shape is invalid.
func MustNewRaw(shape Shape, dtype DataType, device Device) *RawTensor {
	r, err := NewRaw(shape, dtype, device)
	if err != nil {
		panic(err)
	}
	return r
}

func newRaw(shape Shape, dtype DataType, device Device) *RawTensor {
	return &RawTensor{
		store:  &storage{data: make([]byte, shape.NumElements()*dtype.Size())},
		shape:  shape.Clone(),
		stride: shape.ComputeStrides(),
		dtype:  dtype,
		device: device,
	}
}

// Wrap builds a CPU RawTensor over data without copying. strides and offset
// are in elements; nil strides means row-major. Writes through the returned
// tensor are visible in data and vice versa.
func Wrap[T DType](data []T, shape Shape, strides []int, offset int) (*RawTensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if strides == nil {
		strides = shape.ComputeStrides()
	}
	if len(strides) != len(shape) {
		return nil, fmt.Errorf("wrap: %d strides for %d dimensions: %w", len(strides), len(shape), ErrInvalidShape)
	}
	last := offset
	for i, s := range strides {
		if s < 0 {
			return nil, fmt.Errorf("wrap: negative stride %d: %w", s, ErrInvalidShape)
		}
		last += (shape[i] - 1) * s
	}
	if offset < 0 || last >= len(data) {
		return nil, fmt.Errorf("wrap: shape %v with strides %v exceeds %d elements: %w",
			shape, strides, len(data), ErrInvalidShape)
	}

	dtype := DataTypeOf[T]()
	//nolint:gosec // zero-copy view of the caller's slice
	bytes := unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(data))), len(data)*dtype.Size())
	return &RawTensor{
		store:  &storage{data: bytes},
		shape:  shape.Clone(),
		stride: append([]int(nil), strides...),
		offset: offset,
		dtype:  dtype,
		device: CPU,
	}, nil
}

// Shape returns the tensor's shape.
func (r *RawTensor) Shape() Shape {
	return r.shape
}

// Strides returns the tensor's strides in elements.
func (r *RawTensor) Strides() []int {
	return r.stride
}

// Offset returns the element offset of the first element in storage.
func (r *RawTensor) Offset() int {
	return r.offset
}

// DType returns the tensor's data type.
func (r *RawTensor) DType() DataType {
	return r.dtype
}

// Device returns the device the tensor lives on.
func (r *RawTensor) Device() Device {
	return r.device
}

// NumElements returns the total number of elements.
func (r *RawTensor) NumElements() int {
	return r.shape.NumElements()
}

// ByteSize returns the logical size in bytes.
func (r *RawTensor) ByteSize() int {
	return r.NumElements() * r.dtype.Size()
}

// SharesStorage reports whether r and other are views of the same buffer.
func (r *RawTensor) SharesStorage(other *RawTensor) bool {
	return r.store == other.store
}

// IsContiguous reports whether the elements are laid out row-major without
// gaps. Size-1 dimensions are ignored.
func (r *RawTensor) IsContiguous() bool {
	expected := 1
	for i := len(r.shape) - 1; i >= 0; i-- {
		if r.shape[i] == 1 {
			continue
		}
		if r.stride[i] != expected {
			return false
		}
		expected *= r.shape[i]
	}
	return true
}

// Storage returns the whole backing buffer as []T. Element (i0, i1, ...) is
// at Offset() + Σ ik*Strides()[k]. Panics if T does not match the dtype.
func Storage[T DType](r *RawTensor) []T {
	if dt := DataTypeOf[T](); dt != r.dtype {
		panic(fmt.Sprintf("tensor dtype is %s, not %s", r.dtype, dt))
	}
	n := len(r.store.data) / r.dtype.Size()
	if n == 0 {
		return nil
	}
	//nolint:gosec // unsafe.Slice for zero-copy access, length derived from the byte buffer
	return unsafe.Slice((*T)(unsafe.Pointer(&r.store.data[0])), n)
}

// Contig returns the tensor's elements as a zero-copy []T in row-major order.
// Panics if the tensor is not contiguous; call Contiguous first.
func Contig[T DType](r *RawTensor) []T {
	if !r.IsContiguous() {
		panic("tensor is not contiguous, call Contiguous() first")
	}
	return Storage[T](r)[r.offset : r.offset+r.NumElements()]
}

// Bytes returns the contiguous window of storage as raw bytes.
// Panics if the tensor is not contiguous.
func (r *RawTensor) Bytes() []byte {
	if !r.IsContiguous() {
		panic("tensor is not contiguous, call Contiguous() first")
	}
	size := r.dtype.Size()
	return r.store.data[r.offset*size : (r.offset+r.NumElements())*size]
}

// AsFloat32 is Contig[float32].
func (r *RawTensor) AsFloat32() []float32 {
	return Contig[float32](r)
}

// AsFloat64 is Contig[float64].
func (r *RawTensor) AsFloat64() []float64 {
	return Contig[float64](r)
}

// Contiguous returns r if it is contiguous, or a compact copy otherwise.
func (r *RawTensor) Contiguous() *RawTensor {
	if r.IsContiguous() {
		return r
	}
	return r.CloneTo(r.device)
}

// Clone returns a compact deep copy on the same device.
func (r *RawTensor) Clone() *RawTensor {
	return r.CloneTo(r.device)
}

// CloneTo returns a compact deep copy tagged with device.
func (r *RawTensor) CloneTo(device Device) *RawTensor {
	out := newRaw(r.shape, r.dtype, device)
	size := r.dtype.Size()
	src, dst := r.store.data, out.store.data

	if r.IsContiguous() {
		copy(dst, src[r.offset*size:(r.offset+r.NumElements())*size])
		return out
	}
	ForEachOffset(r.shape, r.stride, r.offset, func(i, off int) {
		copy(dst[i*size:(i+1)*size], src[off*size:(off+1)*size])
	})
	return out
}

// ForEachOffset visits every index of shape in row-major order and calls fn
// with the linear position i and the storage offset under strides.
func ForEachOffset(shape Shape, strides []int, base int, fn func(i, off int)) {
	n := shape.NumElements()
	if len(shape) == 0 {
		fn(0, base)
		return
	}

	idx := make([]int, len(shape))
	off := base
	for i := 0; i < n; i++ {
		fn(i, off)
		for d := len(shape) - 1; d >= 0; d-- {
			idx[d]++
			off += strides[d]
			if idx[d] < shape[d] {
				break
			}
			off -= strides[d] * shape[d]
			idx[d] = 0
		}
	}
}

// OffsetAt returns the storage offset of the element at linear row-major
// position i.
func OffsetAt(shape Shape, strides []int, base, i int) int {
	off := base
	for d := len(shape) - 1; d >= 0; d-- {
		off += (i % shape[d]) * strides[d]
		i /= shape[d]
	}
	return off
}
