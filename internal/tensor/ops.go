package tensor

import "fmt"

func sameDevice(op string, a, b *RawTensor) error {
	if a.Device() != b.Device() {
		return fmt.Errorf("%s: operands on %s and %s: %w", op, a.Device(), b.Device(), ErrDeviceMismatch)
	}
	return nil
}

// Add performs element-wise addition with broadcasting.
//
// Example:
//
//	a, _ := tensor.Ones[float32](Shape{3, 1}, backend)
//	b, _ := tensor.Ones[float32](Shape{3, 5}, backend)
//	c, _ := a.Add(b) // Shape: [3, 5]
func (t *Tensor[T, B]) Add(other *Tensor[T, B]) (*Tensor[T, B], error) {
	if err := sameDevice("add", t.raw, other.raw); err != nil {
		return nil, err
	}
	raw, err := t.backend.Add(t.raw, other.raw)
	return wrap[T](raw, t.backend, err)
}

// Sub performs element-wise subtraction with broadcasting.
func (t *Tensor[T, B]) Sub(other *Tensor[T, B]) (*Tensor[T, B], error) {
	if err := sameDevice("sub", t.raw, other.raw); err != nil {
		return nil, err
	}
	raw, err := t.backend.Sub(t.raw, other.raw)
	return wrap[T](raw, t.backend, err)
}

// Mul performs element-wise multiplication with broadcasting.
func (t *Tensor[T, B]) Mul(other *Tensor[T, B]) (*Tensor[T, B], error) {
	if err := sameDevice("mul", t.raw, other.raw); err != nil {
		return nil, err
	}
	raw, err := t.backend.Mul(t.raw, other.raw)
	return wrap[T](raw, t.backend, err)
}

// Div performs element-wise division with broadcasting.
func (t *Tensor[T, B]) Div(other *Tensor[T, B]) (*Tensor[T, B], error) {
	if err := sameDevice("div", t.raw, other.raw); err != nil {
		return nil, err
	}
	raw, err := t.backend.Div(t.raw, other.raw)
	return wrap[T](raw, t.backend, err)
}

// AddScalar adds s to every element.
func (t *Tensor[T, B]) AddScalar(s T) (*Tensor[T, B], error) {
	raw, err := t.backend.AddScalar(t.raw, ToFloat64(s))
	return wrap[T](raw, t.backend, err)
}

// SubScalar subtracts s from every element.
func (t *Tensor[T, B]) SubScalar(s T) (*Tensor[T, B], error) {
	raw, err := t.backend.SubScalar(t.raw, ToFloat64(s))
	return wrap[T](raw, t.backend, err)
}

// MulScalar multiplies every element by s.
func (t *Tensor[T, B]) MulScalar(s T) (*Tensor[T, B], error) {
	raw, err := t.backend.MulScalar(t.raw, ToFloat64(s))
	return wrap[T](raw, t.backend, err)
}

// DivScalar divides every element by s.
func (t *Tensor[T, B]) DivScalar(s T) (*Tensor[T, B], error) {
	raw, err := t.backend.DivScalar(t.raw, ToFloat64(s))
	return wrap[T](raw, t.backend, err)
}

// MatMul performs matrix multiplication.
//
//   - (K) · (K)      → 0-D dot product
//   - (M, K) @ (K)   → (M)
//   - (K) @ (K, N)   → (N)
//   - (M, K) @ (K, N) → (M, N)
//
// Disagreeing inner dimensions fail with ErrShapeMismatch.
//
// Example:
//
//	a, _ := tensor.Rand[float32](gen, Shape{7, 7}, backend)
//	b, _ := tensor.Rand[float32](gen, Shape{1, 7}, backend)
//	c, _ := a.MatMul(b.T()) // Shape: [7, 1]
func (t *Tensor[T, B]) MatMul(other *Tensor[T, B]) (*Tensor[T, B], error) {
	if err := sameDevice("matmul", t.raw, other.raw); err != nil {
		return nil, err
	}
	raw, err := t.backend.MatMul(t.raw, other.raw)
	return wrap[T](raw, t.backend, err)
}
