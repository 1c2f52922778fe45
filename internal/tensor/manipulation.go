package tensor

import "fmt"

// view wraps a layout change that shares storage with t.
func (t *Tensor[T, B]) view(raw *RawTensor, err error) (*Tensor[T, B], error) {
	if err != nil {
		return nil, err
	}
	return &Tensor[T, B]{raw: raw, backend: t.backend}, nil
}

// View returns a tensor sharing storage with t under a new shape. One
// dimension may be -1. Fails with ErrNotContiguous for strided tensors.
//
// Example:
//
//	x, _ := tensor.Arange[float32](1, 10, backend)
//	z, _ := x.View(1, 9)
//	z.Set(5, 0, 0) // x.At(0) is now 5
func (t *Tensor[T, B]) View(dims ...int) (*Tensor[T, B], error) {
	return t.view(t.raw.View(dims...))
}

// Reshape returns a view when the layout allows it and a copy otherwise.
//
// Example:
//
//	x, _ := tensor.Arange[int64](1, 10, backend) // Shape: [9]
//	y, _ := x.Reshape(3, 3)                      // Shape: [3, 3]
func (t *Tensor[T, B]) Reshape(dims ...int) (*Tensor[T, B], error) {
	return t.view(t.raw.Reshape(dims...))
}

// Squeeze removes size-1 dimensions (all of them when dims is empty).
//
// Example:
//
//	x, _ := tensor.Rand[float32](gen, Shape{1, 1, 1, 10}, backend)
//	y, _ := x.Squeeze() // Shape: [10]
func (t *Tensor[T, B]) Squeeze(dims ...int) (*Tensor[T, B], error) {
	return t.view(t.raw.Squeeze(dims...))
}

// Unsqueeze inserts a size-1 dimension at dim.
func (t *Tensor[T, B]) Unsqueeze(dim int) (*Tensor[T, B], error) {
	return t.view(t.raw.Unsqueeze(dim))
}

// Permute reorders dimensions without copying.
//
// Example:
//
//	img, _ := tensor.Rand[float32](gen, Shape{224, 224, 3}, backend)
//	chw, _ := img.Permute(2, 0, 1) // Shape: [3, 224, 224]
func (t *Tensor[T, B]) Permute(dims ...int) (*Tensor[T, B], error) {
	return t.view(t.raw.Permute(dims...))
}

// Transpose swaps two dimensions without copying.
func (t *Tensor[T, B]) Transpose(dim0, dim1 int) (*Tensor[T, B], error) {
	return t.view(t.raw.Transpose(dim0, dim1))
}

// T reverses the dimensions. 0-D and 1-D tensors are returned as views of
// themselves.
func (t *Tensor[T, B]) T() *Tensor[T, B] {
	n := t.Dim()
	axes := make([]int, n)
	for i := range axes {
		axes[i] = n - 1 - i
	}
	raw, err := t.raw.Permute(axes...)
	if err != nil {
		panic(err) // a reversed axis list is always a valid permutation
	}
	return &Tensor[T, B]{raw: raw, backend: t.backend}
}

// Select indexes dim at index and drops the dimension: x.Select(0, i) is
// x[i], x.Select(1, j) is x[:, j].
func (t *Tensor[T, B]) Select(dim, index int) (*Tensor[T, B], error) {
	return t.view(t.raw.Select(dim, index))
}

// Narrow restricts dim to [start, start+length) without copying.
func (t *Tensor[T, B]) Narrow(dim, start, length int) (*Tensor[T, B], error) {
	return t.view(t.raw.Narrow(dim, start, length))
}

// Stack joins equally shaped tensors along a new dimension.
//
// Example:
//
//	x, _ := tensor.Arange[float32](1, 8, backend)
//	s, _ := tensor.Stack([]*Tensor[float32, B]{x, x, x, x}, 0) // Shape: [4, 7]
func Stack[T DType, B Backend](tensors []*Tensor[T, B], dim int) (*Tensor[T, B], error) {
	raws, b, err := rawsOf("stack", tensors)
	if err != nil {
		return nil, err
	}
	raw, err := b.Stack(raws, dim)
	return wrap[T](raw, b, err)
}

// Cat concatenates tensors along an existing dimension.
func Cat[T DType, B Backend](tensors []*Tensor[T, B], dim int) (*Tensor[T, B], error) {
	raws, b, err := rawsOf("cat", tensors)
	if err != nil {
		return nil, err
	}
	raw, err := b.Cat(raws, dim)
	return wrap[T](raw, b, err)
}

func rawsOf[T DType, B Backend](op string, tensors []*Tensor[T, B]) ([]*RawTensor, B, error) {
	var b B
	if len(tensors) == 0 {
		return nil, b, fmt.Errorf("%s: at least one tensor required: %w", op, ErrInvalidShape)
	}
	b = tensors[0].backend
	raws := make([]*RawTensor, len(tensors))
	for i, t := range tensors {
		if err := sameDevice(op, tensors[0].raw, t.raw); err != nil {
			return nil, b, err
		}
		raws[i] = t.raw
	}
	return raws, b, nil
}
