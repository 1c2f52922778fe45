// Package interop converts tensors to and from gonum arrays without copying.
//
// Conversions share memory in both directions: writing through the gonum
// value is visible in the tensor and vice versa. Only CPU tensors can be
// shared; call CPU() on accelerator tensors first.
package interop

import (
	"fmt"

	"gonum.org/v1/gonum/blas/blas32"
	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/fundamentals/internal/tensor"
)

// ToDense exposes a 2-D float64 tensor as a *mat.Dense over the same memory.
// The rows may be strided but each row must be contiguous.
func ToDense[B tensor.Backend](t *tensor.Tensor[float64, B]) (*mat.Dense, error) {
	g, err := general(t.Raw(), tensor.Storage[float64])
	if err != nil {
		return nil, fmt.Errorf("to dense: %w", err)
	}
	var d mat.Dense
	d.SetRawMatrix(blas64.General{Rows: g.rows, Cols: g.cols, Stride: g.stride, Data: g.data})
	return &d, nil
}

// FromDense wraps d as a tensor of shape (rows, cols). Submatrix views keep
// their stride, so the tensor aliases exactly the viewed elements.
func FromDense[B tensor.Backend](d *mat.Dense, b B) (*tensor.Tensor[float64, B], error) {
	m := d.RawMatrix()
	raw, err := tensor.Wrap(m.Data, tensor.Shape{m.Rows, m.Cols}, []int{m.Stride, 1}, 0)
	if err != nil {
		return nil, fmt.Errorf("from dense: %w", err)
	}
	return tensor.New[float64](raw, b), nil
}

// ToVecDense exposes a 1-D float64 tensor as a *mat.VecDense. The tensor's
// stride becomes the vector increment.
func ToVecDense[B tensor.Backend](t *tensor.Tensor[float64, B]) (*mat.VecDense, error) {
	r := t.Raw()
	if err := onCPU(r); err != nil {
		return nil, fmt.Errorf("to vec dense: %w", err)
	}
	if len(r.Shape()) != 1 {
		return nil, fmt.Errorf("to vec dense: want 1-D tensor, got shape %v: %w", r.Shape(), tensor.ErrInvalidShape)
	}
	n, inc := r.Shape()[0], r.Strides()[0]
	if n == 1 {
		inc = 1
	}
	if inc <= 0 {
		return nil, fmt.Errorf("to vec dense: stride %d: %w", inc, tensor.ErrNotContiguous)
	}
	data := tensor.Storage[float64](r)[r.Offset() : r.Offset()+(n-1)*inc+1]

	var v mat.VecDense
	v.SetRawVector(blas64.Vector{N: n, Inc: inc, Data: data})
	return &v, nil
}

// FromVecDense wraps v as a 1-D tensor.
func FromVecDense[B tensor.Backend](v *mat.VecDense, b B) (*tensor.Tensor[float64, B], error) {
	rv := v.RawVector()
	raw, err := tensor.Wrap(rv.Data, tensor.Shape{rv.N}, []int{rv.Inc}, 0)
	if err != nil {
		return nil, fmt.Errorf("from vec dense: %w", err)
	}
	return tensor.New[float64](raw, b), nil
}

// ToGeneral32 exposes a 2-D float32 tensor as a blas32.General.
func ToGeneral32[B tensor.Backend](t *tensor.Tensor[float32, B]) (blas32.General, error) {
	g, err := general(t.Raw(), tensor.Storage[float32])
	if err != nil {
		return blas32.General{}, fmt.Errorf("to general32: %w", err)
	}
	return blas32.General{Rows: g.rows, Cols: g.cols, Stride: g.stride, Data: g.data}, nil
}

// FromGeneral32 wraps g as a float32 tensor of shape (rows, cols).
func FromGeneral32[B tensor.Backend](g blas32.General, b B) (*tensor.Tensor[float32, B], error) {
	raw, err := tensor.Wrap(g.Data, tensor.Shape{g.Rows, g.Cols}, []int{g.Stride, 1}, 0)
	if err != nil {
		return nil, fmt.Errorf("from general32: %w", err)
	}
	return tensor.New[float32](raw, b), nil
}

type matrix[T float32 | float64] struct {
	rows, cols, stride int
	data               []T
}

// general checks that r is a 2-D CPU tensor with contiguous rows and returns
// its row-major description over shared storage.
func general[T float32 | float64](r *tensor.RawTensor, storage func(*tensor.RawTensor) []T) (matrix[T], error) {
	if err := onCPU(r); err != nil {
		return matrix[T]{}, err
	}
	if len(r.Shape()) != 2 {
		return matrix[T]{}, fmt.Errorf("want 2-D tensor, got shape %v: %w", r.Shape(), tensor.ErrInvalidShape)
	}
	rows, cols := r.Shape()[0], r.Shape()[1]
	rs, cs := r.Strides()[0], r.Strides()[1]
	if rows == 1 {
		rs = cols
	}
	if (cs != 1 && cols != 1) || rs < cols {
		return matrix[T]{}, fmt.Errorf("strides %v: %w", r.Strides(), tensor.ErrNotContiguous)
	}
	off := r.Offset()
	return matrix[T]{
		rows:   rows,
		cols:   cols,
		stride: rs,
		data:   storage(r)[off : off+(rows-1)*rs+cols],
	}, nil
}

func onCPU(r *tensor.RawTensor) error {
	if r.Device() != tensor.CPU {
		return fmt.Errorf("tensor on %s, call CPU() first: %w", r.Device(), tensor.ErrDeviceMismatch)
	}
	return nil
}
