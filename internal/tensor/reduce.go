package tensor

// Sum returns the sum of all elements as a 0-D tensor.
//
// Example:
//
//	x, _ := tensor.ArangeStep[int64](0, 100, 10, backend)
//	s, _ := x.Sum() // s.Item() == 450
func (t *Tensor[T, B]) Sum() (*Tensor[T, B], error) {
	raw, err := t.backend.Sum(t.raw)
	return wrap[T](raw, t.backend, err)
}

// Mean returns the arithmetic mean as a 0-D tensor. Only floating point
// tensors are supported; cast integer tensors first.
func (t *Tensor[T, B]) Mean() (*Tensor[T, B], error) {
	raw, err := t.backend.Mean(t.raw)
	return wrap[T](raw, t.backend, err)
}

// Min returns the smallest element as a 0-D tensor.
func (t *Tensor[T, B]) Min() (*Tensor[T, B], error) {
	raw, err := t.backend.Min(t.raw)
	return wrap[T](raw, t.backend, err)
}

// Max returns the largest element as a 0-D tensor.
func (t *Tensor[T, B]) Max() (*Tensor[T, B], error) {
	raw, err := t.backend.Max(t.raw)
	return wrap[T](raw, t.backend, err)
}

// Argmin returns the flat row-major index of the first smallest element.
func (t *Tensor[T, B]) Argmin() (*Tensor[int64, B], error) {
	raw, err := t.backend.Argmin(t.raw)
	return wrap[int64](raw, t.backend, err)
}

// Argmax returns the flat row-major index of the first largest element.
func (t *Tensor[T, B]) Argmax() (*Tensor[int64, B], error) {
	raw, err := t.backend.Argmax(t.raw)
	return wrap[int64](raw, t.backend, err)
}
