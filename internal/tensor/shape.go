package tensor

import (
	"fmt"
	"math"
)

// Shape represents the dimensions of a tensor. An empty shape is a scalar.
type Shape []int

// NumElements returns the product of the dimensions.
func (s Shape) NumElements() int {
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Validate checks that every dimension is positive and that the element
// count fits in an int.
func (s Shape) Validate() error {
	n := 1
	for i, dim := range s {
		if dim <= 0 {
			return fmt.Errorf("dimension %d is %d (must be > 0): %w", i, dim, ErrInvalidShape)
		}
		if n > math.MaxInt/dim {
			return fmt.Errorf("shape %v: element count overflows int: %w", s, ErrInvalidShape)
		}
		n *= dim
	}
	return nil
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// ComputeStrides calculates row-major strides, in elements.
func (s Shape) ComputeStrides() []int {
	strides := make([]int, len(s))
	acc := 1
	for i := len(s) - 1; i >= 0; i-- {
		strides[i] = acc
		acc *= s[i]
	}
	return strides
}

// InferShape resolves a single -1 entry in dims so that the result holds n
// elements.
func InferShape(dims []int, n int) (Shape, error) {
	out := make(Shape, len(dims))
	infer := -1
	known := 1
	for i, d := range dims {
		switch {
		case d == -1:
			if infer >= 0 {
				return nil, fmt.Errorf("only one dimension can be inferred in %v: %w", dims, ErrInvalidShape)
			}
			infer = i
		case d <= 0:
			return nil, fmt.Errorf("dimension %d is %d: %w", i, d, ErrInvalidShape)
		case known > n/d:
			return nil, fmt.Errorf("shape %v is invalid for input of size %d: %w", dims, n, ErrInvalidShape)
		default:
			known *= d
		}
		out[i] = d
	}
	if infer >= 0 {
		if n%known != 0 {
			return nil, fmt.Errorf("shape %v is invalid for input of size %d: %w", dims, n, ErrInvalidShape)
		}
		out[infer] = n / known
	}
	if out.NumElements() != n {
		return nil, fmt.Errorf("shape %v is invalid for input of size %d: %w", dims, n, ErrInvalidShape)
	}
	return out, nil
}

// BroadcastShapes implements NumPy-style broadcasting rules.
//
// Shapes are aligned from the right; a pair of dimensions is compatible when
// they are equal or one of them is 1. Missing dimensions count as 1.
//
//	(3, 1) + (3, 5) → (3, 5)
//	(5,)   + (3, 5) → (3, 5)
//	(3, 4) + (3, 5) → ErrShapeMismatch
func BroadcastShapes(a, b Shape) (Shape, error) {
	n := max(len(a), len(b))
	result := make(Shape, n)

	for i := 0; i < n; i++ {
		aDim, bDim := 1, 1
		if j := len(a) - 1 - i; j >= 0 {
			aDim = a[j]
		}
		if j := len(b) - 1 - i; j >= 0 {
			bDim = b[j]
		}

		switch {
		case aDim == bDim, bDim == 1:
			result[n-1-i] = aDim
		case aDim == 1:
			result[n-1-i] = bDim
		default:
			return nil, fmt.Errorf("shapes %v and %v are not broadcastable (dimension %d: %d vs %d): %w",
				a, b, n-1-i, aDim, bDim, ErrShapeMismatch)
		}
	}
	if err := result.Validate(); err != nil {
		return nil, fmt.Errorf("broadcast %v and %v: %w", a, b, err)
	}
	return result, nil
}

// BroadcastStrides returns strides that read a tensor of shape s with the
// given strides as if it had shape out. Broadcast dimensions get stride 0.
// out must be a valid broadcast target of s.
func BroadcastStrides(s Shape, strides []int, out Shape) []int {
	result := make([]int, len(out))
	shift := len(out) - len(s)
	for i := range s {
		if s[i] != 1 {
			result[shift+i] = strides[i]
		}
	}
	return result
}

// NormalizeDim maps a possibly negative dim into [0, ndim).
func NormalizeDim(dim, ndim int) (int, error) {
	if dim < 0 {
		dim += ndim
	}
	if dim < 0 || dim >= ndim {
		return 0, fmt.Errorf("dimension out of range (expected [%d, %d)): %w", -ndim, ndim, ErrInvalidDim)
	}
	return dim, nil
}
