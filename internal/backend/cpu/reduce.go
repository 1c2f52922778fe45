package cpu

import (
	"fmt"

	"github.com/chewxy/math32"

	"github.com/born-ml/fundamentals/internal/tensor"
)

// Sum returns the sum of all elements as a 0-D tensor of the same dtype.
// Floating point sums accumulate in float64; integer sums wrap.
func (cpu *CPUBackend) Sum(x *tensor.RawTensor) (*tensor.RawTensor, error) {
	switch x.DType() {
	case tensor.Float32:
		return scalarOf(x, float32(sumFloat(values[float32](x)))), nil
	case tensor.Float64:
		return scalarOf(x, sumFloat(values[float64](x))), nil
	case tensor.Float16:
		return cpu.viaFloat32(unary(cpu.Sum), x)
	case tensor.Int8:
		return scalarOf(x, sumInt(values[int8](x))), nil
	case tensor.Int32:
		return scalarOf(x, sumInt(values[int32](x))), nil
	case tensor.Int64:
		return scalarOf(x, sumInt(values[int64](x))), nil
	case tensor.Uint8:
		return scalarOf(x, sumInt(values[uint8](x))), nil
	default:
		return nil, fmt.Errorf("sum: %w: %s", tensor.ErrUnsupportedDType, x.DType())
	}
}

// Mean returns the arithmetic mean of a floating point tensor.
func (cpu *CPUBackend) Mean(x *tensor.RawTensor) (*tensor.RawTensor, error) {
	n := float64(x.NumElements())
	switch x.DType() {
	case tensor.Float32:
		return scalarOf(x, float32(sumFloat(values[float32](x))/n)), nil
	case tensor.Float64:
		return scalarOf(x, sumFloat(values[float64](x))/n), nil
	case tensor.Float16:
		return cpu.viaFloat32(unary(cpu.Mean), x)
	default:
		return nil, fmt.Errorf("mean: %w: %s (cast to a floating point type first)", tensor.ErrUnsupportedDType, x.DType())
	}
}

// Min returns the smallest element. Any NaN makes the result NaN.
func (cpu *CPUBackend) Min(x *tensor.RawTensor) (*tensor.RawTensor, error) {
	return cpu.extremum("min", x, true)
}

// Max returns the largest element. Any NaN makes the result NaN.
func (cpu *CPUBackend) Max(x *tensor.RawTensor) (*tensor.RawTensor, error) {
	return cpu.extremum("max", x, false)
}

// Argmin returns the flat index of the first smallest element as int64.
// The first NaN wins when present.
func (cpu *CPUBackend) Argmin(x *tensor.RawTensor) (*tensor.RawTensor, error) {
	return cpu.argExtremum("argmin", x, true)
}

// Argmax returns the flat index of the first largest element as int64.
func (cpu *CPUBackend) Argmax(x *tensor.RawTensor) (*tensor.RawTensor, error) {
	return cpu.argExtremum("argmax", x, false)
}

func (cpu *CPUBackend) extremum(op string, x *tensor.RawTensor, lowest bool) (*tensor.RawTensor, error) {
	switch x.DType() {
	case tensor.Float32:
		v := values[float32](x)
		i := argFloat32(v, lowest)
		return scalarOf(x, v[i]), nil
	case tensor.Float64:
		v := values[float64](x)
		return scalarOf(x, v[argOf(v, lowest)]), nil
	case tensor.Float16:
		return cpu.viaFloat32(unary(func(w *tensor.RawTensor) (*tensor.RawTensor, error) {
			return cpu.extremum(op, w, lowest)
		}), x)
	case tensor.Int8:
		v := values[int8](x)
		return scalarOf(x, v[argOf(v, lowest)]), nil
	case tensor.Int32:
		v := values[int32](x)
		return scalarOf(x, v[argOf(v, lowest)]), nil
	case tensor.Int64:
		v := values[int64](x)
		return scalarOf(x, v[argOf(v, lowest)]), nil
	case tensor.Uint8:
		v := values[uint8](x)
		return scalarOf(x, v[argOf(v, lowest)]), nil
	default:
		return nil, fmt.Errorf("%s: %w: %s", op, tensor.ErrUnsupportedDType, x.DType())
	}
}

func (cpu *CPUBackend) argExtremum(op string, x *tensor.RawTensor, lowest bool) (*tensor.RawTensor, error) {
	var i int
	switch x.DType() {
	case tensor.Float32:
		i = argFloat32(values[float32](x), lowest)
	case tensor.Float64:
		i = argOf(values[float64](x), lowest)
	case tensor.Float16:
		w, err := cpu.Cast(x, tensor.Float32)
		if err != nil {
			return nil, err
		}
		i = argFloat32(values[float32](w), lowest)
	case tensor.Int8:
		i = argOf(values[int8](x), lowest)
	case tensor.Int32:
		i = argOf(values[int32](x), lowest)
	case tensor.Int64:
		i = argOf(values[int64](x), lowest)
	case tensor.Uint8:
		i = argOf(values[uint8](x), lowest)
	default:
		return nil, fmt.Errorf("%s: %w: %s", op, tensor.ErrUnsupportedDType, x.DType())
	}
	out := tensor.MustNewRaw(tensor.Shape{}, tensor.Int64, x.Device())
	tensor.Contig[int64](out)[0] = int64(i)
	return out, nil
}

// values returns the elements of x in row-major order, copying only when x
// is strided.
func values[T tensor.DType](x *tensor.RawTensor) []T {
	return tensor.Contig[T](x.Contiguous())
}

func scalarOf[T tensor.DType](like *tensor.RawTensor, v T) *tensor.RawTensor {
	out := tensor.MustNewRaw(tensor.Shape{}, like.DType(), like.Device())
	tensor.Contig[T](out)[0] = v
	return out
}

func unary(fn func(*tensor.RawTensor) (*tensor.RawTensor, error)) func(...*tensor.RawTensor) (*tensor.RawTensor, error) {
	return func(in ...*tensor.RawTensor) (*tensor.RawTensor, error) {
		return fn(in[0])
	}
}

func sumFloat[T float32 | float64](v []T) float64 {
	var s float64
	for _, x := range v {
		s += float64(x)
	}
	return s
}

func sumInt[T ~int8 | ~int32 | ~int64 | ~uint8](v []T) T {
	var s T
	for _, x := range v {
		s += x
	}
	return s
}

// argOf returns the index of the first minimum (lowest) or maximum. NaN, if
// present, is treated as more extreme than any number.
func argOf[T number](v []T, lowest bool) int {
	best := 0
	for i := 1; i < len(v); i++ {
		if v[best] != v[best] {
			return best
		}
		x := v[i]
		if x != x || (lowest && x < v[best]) || (!lowest && x > v[best]) {
			best = i
		}
	}
	return best
}

func argFloat32(v []float32, lowest bool) int {
	best := 0
	for i := 1; i < len(v); i++ {
		if math32.IsNaN(v[best]) {
			return best
		}
		x := v[i]
		if math32.IsNaN(x) || (lowest && x < v[best]) || (!lowest && x > v[best]) {
			best = i
		}
	}
	return best
}
