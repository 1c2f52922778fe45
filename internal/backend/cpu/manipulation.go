package cpu

import (
	"fmt"

	"github.com/born-ml/fundamentals/internal/tensor"
)

// Stack joins equally shaped tensors along a new dimension dim, in
// [-ndim-1, ndim].
func (cpu *CPUBackend) Stack(tensors []*tensor.RawTensor, dim int) (*tensor.RawTensor, error) {
	if len(tensors) == 0 {
		return nil, fmt.Errorf("stack: at least one tensor required: %w", tensor.ErrInvalidShape)
	}
	first := tensors[0].Shape()
	expanded := make([]*tensor.RawTensor, len(tensors))
	for i, t := range tensors {
		if !t.Shape().Equal(first) {
			return nil, fmt.Errorf("stack: tensor %d has shape %v, expected %v: %w", i, t.Shape(), first, tensor.ErrShapeMismatch)
		}
		u, err := t.Unsqueeze(dim)
		if err != nil {
			return nil, fmt.Errorf("stack: %w", err)
		}
		expanded[i] = u
	}
	out, err := cpu.Cat(expanded, dim)
	if err != nil {
		return nil, fmt.Errorf("stack: %w", err)
	}
	return out, nil
}

// Cat concatenates tensors along an existing dimension. All other
// dimensions and the dtype must match.
func (cpu *CPUBackend) Cat(tensors []*tensor.RawTensor, dim int) (*tensor.RawTensor, error) {
	if len(tensors) == 0 {
		return nil, fmt.Errorf("cat: at least one tensor required: %w", tensor.ErrInvalidShape)
	}
	first := tensors[0]
	d, err := tensor.NormalizeDim(dim, len(first.Shape()))
	if err != nil {
		return nil, fmt.Errorf("cat: %w", err)
	}

	outShape := first.Shape().Clone()
	outShape[d] = 0
	for i, t := range tensors {
		if t.DType() != first.DType() {
			return nil, fmt.Errorf("cat: tensor %d is %s, expected %s: %w", i, t.DType(), first.DType(), tensor.ErrUnsupportedDType)
		}
		if !sameExcept(t.Shape(), first.Shape(), d) {
			return nil, fmt.Errorf("cat: tensor %d has shape %v, incompatible with %v along dim %d: %w",
				i, t.Shape(), first.Shape(), d, tensor.ErrShapeMismatch)
		}
		outShape[d] += t.Shape()[d]
	}

	result := tensor.MustNewRaw(outShape, first.DType(), first.Device())
	outer := tensor.Shape(outShape[:d]).NumElements()
	inner := tensor.Shape(outShape[d+1:]).NumElements() * first.DType().Size()

	dst := result.Bytes()
	srcs := make([][]byte, len(tensors))
	for i, t := range tensors {
		srcs[i] = t.Contiguous().Bytes()
	}
	pos := 0
	for o := 0; o < outer; o++ {
		for i, t := range tensors {
			chunk := t.Shape()[d] * inner
			pos += copy(dst[pos:], srcs[i][o*chunk:(o+1)*chunk])
		}
	}
	return result, nil
}

func sameExcept(a, b tensor.Shape, dim int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if i != dim && a[i] != b[i] {
			return false
		}
	}
	return true
}
