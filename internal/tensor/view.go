package tensor

import "fmt"

// view returns a RawTensor over the same storage with new layout.
func (r *RawTensor) view(shape Shape, strides []int, offset int) *RawTensor {
	return &RawTensor{
		store:  r.store,
		shape:  shape,
		stride: strides,
		offset: offset,
		dtype:  r.dtype,
		device: r.device,
	}
}

// View returns a view with a new shape. One dimension may be -1. The tensor
// must be contiguous; otherwise ErrNotContiguous is returned.
func (r *RawTensor) View(dims ...int) (*RawTensor, error) {
	shape, err := InferShape(dims, r.NumElements())
	if err != nil {
		return nil, fmt.Errorf("view: %w", err)
	}
	if !r.IsContiguous() {
		return nil, fmt.Errorf("view: shape %v with strides %v: %w", r.shape, r.stride, ErrNotContiguous)
	}
	return r.view(shape, shape.ComputeStrides(), r.offset), nil
}

// Reshape is View when possible and a reshaped compact copy otherwise.
func (r *RawTensor) Reshape(dims ...int) (*RawTensor, error) {
	v, err := r.Contiguous().View(dims...)
	if err != nil {
		return nil, fmt.Errorf("reshape: %w", err)
	}
	return v, nil
}

// Squeeze removes size-1 dimensions. With no dims, every size-1 dimension is
// removed; listed dims that are not size 1 are left alone.
func (r *RawTensor) Squeeze(dims ...int) (*RawTensor, error) {
	drop := make([]bool, len(r.shape))
	if len(dims) == 0 {
		for i, d := range r.shape {
			drop[i] = d == 1
		}
	}
	for _, d := range dims {
		nd, err := NormalizeDim(d, len(r.shape))
		if err != nil {
			return nil, fmt.Errorf("squeeze: %w", err)
		}
		drop[nd] = r.shape[nd] == 1
	}

	shape := make(Shape, 0, len(r.shape))
	strides := make([]int, 0, len(r.shape))
	for i := range r.shape {
		if !drop[i] {
			shape = append(shape, r.shape[i])
			strides = append(strides, r.stride[i])
		}
	}
	return r.view(shape, strides, r.offset), nil
}

// Unsqueeze inserts a size-1 dimension at dim, in [-ndim-1, ndim].
func (r *RawTensor) Unsqueeze(dim int) (*RawTensor, error) {
	nd, err := NormalizeDim(dim, len(r.shape)+1)
	if err != nil {
		return nil, fmt.Errorf("unsqueeze: %w", err)
	}

	inner := 1
	if nd < len(r.shape) {
		inner = r.stride[nd] * r.shape[nd]
	}
	shape := make(Shape, 0, len(r.shape)+1)
	strides := make([]int, 0, len(r.shape)+1)
	shape = append(append(append(shape, r.shape[:nd]...), 1), r.shape[nd:]...)
	strides = append(append(append(strides, r.stride[:nd]...), inner), r.stride[nd:]...)
	return r.view(shape, strides, r.offset), nil
}

// Permute reorders dimensions. axes must be a permutation of [0, ndim).
func (r *RawTensor) Permute(axes ...int) (*RawTensor, error) {
	ndim := len(r.shape)
	if len(axes) != ndim {
		return nil, fmt.Errorf("permute: %d axes for %dD tensor: %w", len(axes), ndim, ErrInvalidDim)
	}

	seen := make([]bool, ndim)
	shape := make(Shape, ndim)
	strides := make([]int, ndim)
	for i, ax := range axes {
		nd, err := NormalizeDim(ax, ndim)
		if err != nil {
			return nil, fmt.Errorf("permute: %w", err)
		}
		if seen[nd] {
			return nil, fmt.Errorf("permute: repeated axis %d: %w", ax, ErrInvalidDim)
		}
		seen[nd] = true
		shape[i] = r.shape[nd]
		strides[i] = r.stride[nd]
	}
	return r.view(shape, strides, r.offset), nil
}

// Transpose swaps two dimensions.
func (r *RawTensor) Transpose(dim0, dim1 int) (*RawTensor, error) {
	ndim := len(r.shape)
	d0, err := NormalizeDim(dim0, ndim)
	if err != nil {
		return nil, fmt.Errorf("transpose: %w", err)
	}
	d1, err := NormalizeDim(dim1, ndim)
	if err != nil {
		return nil, fmt.Errorf("transpose: %w", err)
	}

	axes := make([]int, ndim)
	for i := range axes {
		axes[i] = i
	}
	axes[d0], axes[d1] = axes[d1], axes[d0]
	return r.Permute(axes...)
}

// Select indexes dim at index and removes that dimension, like x[index] for
// dim 0 or x[:, index] for dim 1. Negative indices count from the end.
func (r *RawTensor) Select(dim, index int) (*RawTensor, error) {
	nd, err := NormalizeDim(dim, len(r.shape))
	if err != nil {
		return nil, fmt.Errorf("select: %w", err)
	}
	size := r.shape[nd]
	if index < 0 {
		index += size
	}
	if index < 0 || index >= size {
		return nil, fmt.Errorf("select: index %d out of range for dimension %d of size %d: %w",
			index, nd, size, ErrInvalidDim)
	}

	shape := append(r.shape[:nd:nd], r.shape[nd+1:]...)
	strides := append(r.stride[:nd:nd], r.stride[nd+1:]...)
	return r.view(shape, strides, r.offset+index*r.stride[nd]), nil
}

// Narrow restricts dim to [start, start+length).
func (r *RawTensor) Narrow(dim, start, length int) (*RawTensor, error) {
	nd, err := NormalizeDim(dim, len(r.shape))
	if err != nil {
		return nil, fmt.Errorf("narrow: %w", err)
	}
	size := r.shape[nd]
	if start < 0 {
		start += size
	}
	if start < 0 || length <= 0 || start+length > size {
		return nil, fmt.Errorf("narrow: [%d, %d) out of range for dimension %d of size %d: %w",
			start, start+length, nd, size, ErrInvalidDim)
	}

	shape := r.shape.Clone()
	shape[nd] = length
	return r.view(shape, append([]int(nil), r.stride...), r.offset+start*r.stride[nd]), nil
}
