package tensor

import "fmt"

// Tensor is a typed tensor with element type T computed by backend B.
//
// Type Parameters:
//   - T: element type (must satisfy DType)
//   - B: computation backend (must implement Backend)
//
// Example:
//
//	backend := cpu.New()
//	x, _ := tensor.FromSlice([]float32{1, 2, 3}, tensor.Shape{3}, backend)
//	y, _ := x.Mul(x) // [1, 4, 9]
type Tensor[T DType, B Backend] struct {
	raw     *RawTensor
	backend B
}

// New creates a Tensor from a RawTensor and backend. It panics if the raw
// dtype does not match T.
func New[T DType, B Backend](raw *RawTensor, b B) *Tensor[T, B] {
	if dt := DataTypeOf[T](); dt != raw.DType() {
		panic(fmt.Sprintf("tensor.New: raw dtype %s does not match %s", raw.DType(), dt))
	}
	return &Tensor[T, B]{raw: raw, backend: b}
}

// wrap turns a backend result into a typed tensor.
func wrap[T DType, B Backend](raw *RawTensor, b B, err error) (*Tensor[T, B], error) {
	if err != nil {
		return nil, err
	}
	return New[T, B](raw, b), nil
}

// Shape returns the tensor's shape.
func (t *Tensor[T, B]) Shape() Shape {
	return t.raw.Shape()
}

// Dim returns the number of dimensions.
func (t *Tensor[T, B]) Dim() int {
	return len(t.raw.Shape())
}

// Strides returns the strides in elements.
func (t *Tensor[T, B]) Strides() []int {
	return t.raw.Strides()
}

// DType returns the tensor's data type.
func (t *Tensor[T, B]) DType() DataType {
	return t.raw.DType()
}

// Device returns where the tensor's memory lives.
func (t *Tensor[T, B]) Device() Device {
	return t.raw.Device()
}

// NumElements returns the total number of elements.
func (t *Tensor[T, B]) NumElements() int {
	return t.raw.NumElements()
}

// IsContiguous reports whether the tensor is laid out row-major without gaps.
func (t *Tensor[T, B]) IsContiguous() bool {
	return t.raw.IsContiguous()
}

// SharesStorage reports whether t and other are views of the same buffer.
func (t *Tensor[T, B]) SharesStorage(other *Tensor[T, B]) bool {
	return t.raw.SharesStorage(other.raw)
}

// Raw returns the underlying RawTensor.
func (t *Tensor[T, B]) Raw() *RawTensor {
	return t.raw
}

// Backend returns the computation backend.
func (t *Tensor[T, B]) Backend() B {
	return t.backend
}

// Data returns the elements as a zero-copy slice in row-major order.
// Writes to the slice are visible through every view of the storage.
// Panics if the tensor is not contiguous; use Values or Contiguous instead.
func (t *Tensor[T, B]) Data() []T {
	return Contig[T](t.raw)
}

// Values returns a row-major copy of the elements. Works for any layout.
func (t *Tensor[T, B]) Values() []T {
	out := make([]T, t.NumElements())
	src := Storage[T](t.raw)
	ForEachOffset(t.raw.shape, t.raw.stride, t.raw.offset, func(i, off int) {
		out[i] = src[off]
	})
	return out
}

// Item returns the value of a single-element tensor.
// Panics if the tensor has more than one element.
func (t *Tensor[T, B]) Item() T {
	if t.NumElements() != 1 {
		panic(fmt.Sprintf("Item() only works for single-element tensors, got shape %v", t.Shape()))
	}
	return Storage[T](t.raw)[t.raw.offset]
}

// At returns the element at the given indices.
// Panics if the indices are out of bounds.
//
// Example:
//
//	x, _ := tensor.Zeros[float32](Shape{3, 4}, backend)
//	v := x.At(1, 2) // row 1, column 2
func (t *Tensor[T, B]) At(indices ...int) T {
	return Storage[T](t.raw)[t.offsetOf(indices)]
}

// Set writes value at the given indices. The write goes to the shared
// storage, so every view of it observes the change.
// Panics if the indices are out of bounds.
func (t *Tensor[T, B]) Set(value T, indices ...int) {
	Storage[T](t.raw)[t.offsetOf(indices)] = value
}

func (t *Tensor[T, B]) offsetOf(indices []int) int {
	shape := t.Shape()
	if len(indices) != len(shape) {
		panic(fmt.Sprintf("expected %d indices, got %d", len(shape), len(indices)))
	}

	offset := t.raw.offset
	for i, idx := range indices {
		if idx < 0 || idx >= shape[i] {
			panic(fmt.Sprintf("index %d out of bounds for dimension %d (size %d)", idx, i, shape[i]))
		}
		offset += idx * t.raw.stride[i]
	}
	return offset
}

// String returns a short description of the tensor.
func (t *Tensor[T, B]) String() string {
	return fmt.Sprintf("Tensor[%s]%v on %s", t.raw.DType(), t.raw.Shape(), t.raw.Device())
}

// Clone returns a deep copy that does not share storage with t.
func (t *Tensor[T, B]) Clone() *Tensor[T, B] {
	return New[T, B](t.raw.Clone(), t.backend)
}

// Contiguous returns t when it is already contiguous, or a compact copy.
func (t *Tensor[T, B]) Contiguous() *Tensor[T, B] {
	if t.raw.IsContiguous() {
		return t
	}
	return New[T, B](t.raw.Contiguous(), t.backend)
}
