package tensor

import (
	"fmt"
	"math"
)

// Zeros creates a tensor filled with zeros.
//
// Example:
//
//	backend := cpu.New()
//	x, err := tensor.Zeros[float32](Shape{3, 4}, backend)
func Zeros[T DType, B Backend](shape Shape, b B) (*Tensor[T, B], error) {
	raw, err := NewRaw(shape, DataTypeOf[T](), b.Device())
	if err != nil {
		return nil, fmt.Errorf("zeros: %w", err)
	}
	return New[T, B](raw, b), nil
}

// Ones creates a tensor filled with ones.
func Ones[T DType, B Backend](shape Shape, b B) (*Tensor[T, B], error) {
	return Full(shape, FromFloat64[T](1), b)
}

// Full creates a tensor filled with value.
//
// Example:
//
//	x, err := tensor.Full[float32](Shape{3, 3}, 3.14, backend)
func Full[T DType, B Backend](shape Shape, value T, b B) (*Tensor[T, B], error) {
	t, err := Zeros[T, B](shape, b)
	if err != nil {
		return nil, err
	}
	data := t.Data()
	for i := range data {
		data[i] = value
	}
	return t, nil
}

// ZerosLike creates a zero tensor with the shape of t.
func ZerosLike[T DType, B Backend](t *Tensor[T, B]) *Tensor[T, B] {
	return New[T, B](newRaw(t.Shape(), t.DType(), t.Device()), t.backend)
}

// OnesLike creates a tensor of ones with the shape of t.
func OnesLike[T DType, B Backend](t *Tensor[T, B]) *Tensor[T, B] {
	out := ZerosLike(t)
	one := FromFloat64[T](1)
	data := out.Data()
	for i := range data {
		data[i] = one
	}
	return out
}

// Scalar creates a 0-D tensor holding v.
func Scalar[T DType, B Backend](v T, b B) *Tensor[T, B] {
	t := New[T, B](newRaw(Shape{}, DataTypeOf[T](), b.Device()), b)
	t.Data()[0] = v
	return t
}

// FromSlice creates a tensor from a Go slice. The slice is copied.
//
// Example:
//
//	x, err := tensor.FromSlice([]int64{1, 2, 3, 4}, Shape{2, 2}, backend)
func FromSlice[T DType, B Backend](data []T, shape Shape, b B) (*Tensor[T, B], error) {
	if shape.NumElements() != len(data) {
		return nil, fmt.Errorf("from slice: shape %v requires %d elements, got %d: %w",
			shape, shape.NumElements(), len(data), ErrInvalidShape)
	}
	t, err := Zeros[T, B](shape, b)
	if err != nil {
		return nil, fmt.Errorf("from slice: %w", err)
	}
	copy(t.Data(), data)
	return t, nil
}

// Arange creates a 1-D tensor with values start, start+1, ... below end.
//
// Example:
//
//	x, err := tensor.Arange[int64](0, 10, backend) // [0, 1, ..., 9]
func Arange[T DType, B Backend](start, end T, b B) (*Tensor[T, B], error) {
	return ArangeStep(start, end, FromFloat64[T](1), b)
}

// ArangeStep creates a 1-D tensor with values start, start+step, ... below
// end (above end for a negative step).
func ArangeStep[T DType, B Backend](start, end, step T, b B) (*Tensor[T, B], error) {
	if DataTypeOf[T]() == Bool {
		return nil, fmt.Errorf("arange: %w: bool", ErrUnsupportedDType)
	}
	s, e, st := ToFloat64(start), ToFloat64(end), ToFloat64(step)
	if st == 0 {
		return nil, fmt.Errorf("arange: step must be non-zero: %w", ErrInvalidShape)
	}

	n := int(math.Ceil((e - s) / st))
	t, err := Zeros[T, B](Shape{n}, b)
	if err != nil {
		return nil, fmt.Errorf("arange [%v, %v) step %v: %w", s, e, st, err)
	}
	data := t.Data()
	for i := range data {
		data[i] = FromFloat64[T](s + float64(i)*st)
	}
	return t, nil
}

// Eye creates an n×n identity matrix.
func Eye[T DType, B Backend](n int, b B) (*Tensor[T, B], error) {
	t, err := Zeros[T, B](Shape{n, n}, b)
	if err != nil {
		return nil, fmt.Errorf("eye: %w", err)
	}
	one := FromFloat64[T](1)
	for i := 0; i < n; i++ {
		t.Set(one, i, i)
	}
	return t, nil
}
