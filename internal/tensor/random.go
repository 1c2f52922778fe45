package tensor

import (
	"fmt"

	"github.com/born-ml/fundamentals/internal/random"
	"github.com/chewxy/math32"
	"github.com/x448/float16"
)

// Generator is the seeded random stream used by Rand and Randn.
type Generator = random.Generator

// NewGenerator creates a generator seeded with seed. Negative seeds fail with
// ErrInvalidSeed.
func NewGenerator(seed int64) (*Generator, error) {
	return random.New(seed)
}

// Rand creates a tensor of values drawn uniformly from [0, 1).
//
// Exactly shape.NumElements() draws are taken from gen, in row-major order,
// so the result is a pure function of the generator state and the shape.
// Only floating point T is supported.
//
// Example:
//
//	gen, _ := tensor.NewGenerator(42)
//	a, _ := tensor.Rand[float32](gen, Shape{3, 4}, backend)
//	_ = gen.ManualSeed(42)
//	b, _ := tensor.Rand[float32](gen, Shape{3, 4}, backend)
//	a.Equal(b) // true
func Rand[T DType, B Backend](gen *Generator, shape Shape, b B) (*Tensor[T, B], error) {
	t, err := Zeros[T, B](shape, b)
	if err != nil {
		return nil, fmt.Errorf("rand: %w", err)
	}

	switch data := any(t.Data()).(type) {
	case []float32:
		gen.FillFloat32(data)
	case []float64:
		gen.FillFloat64(data)
	case []float16.Float16:
		for i := range data {
			data[i] = uniformHalf(gen)
		}
	default:
		return nil, fmt.Errorf("rand: %w: %s", ErrUnsupportedDType, t.DType())
	}
	return t, nil
}

// uniformHalf builds a value in [0, 1) from the top 11 bits of one word.
// Every k/2048 is exact in half precision, so rounding never reaches 1.
func uniformHalf(gen *Generator) float16.Float16 {
	return float16.Fromfloat32(float32(gen.Uint64()>>53) * (1.0 / (1 << 11)))
}

// Uniform is Rand with the default float32 element type.
func Uniform[B Backend](gen *Generator, shape Shape, b B) (*Tensor[float32, B], error) {
	return Rand[float32](gen, shape, b)
}

// RandLike creates a uniform tensor with the shape and device of t.
func RandLike[T DType, B Backend](gen *Generator, t *Tensor[T, B]) (*Tensor[T, B], error) {
	out, err := Rand[T](gen, t.Shape(), t.backend)
	if err != nil {
		return nil, err
	}
	return out.To(t.Device())
}

// Randn creates a tensor of standard normal values using the Box-Muller
// transform. Each element takes two draws from gen.
func Randn[T DType, B Backend](gen *Generator, shape Shape, b B) (*Tensor[T, B], error) {
	t, err := Zeros[T, B](shape, b)
	if err != nil {
		return nil, fmt.Errorf("randn: %w", err)
	}

	switch data := any(t.Data()).(type) {
	case []float32:
		for i := range data {
			u1 := 1 - gen.Float32()
			u2 := gen.Float32()
			data[i] = math32.Sqrt(-2*math32.Log(u1)) * math32.Cos(2*math32.Pi*u2)
		}
	case []float64:
		for i := range data {
			data[i] = gen.NormFloat64()
		}
	case []float16.Float16:
		for i := range data {
			data[i] = float16.Fromfloat32(float32(gen.NormFloat64()))
		}
	default:
		return nil, fmt.Errorf("randn: %w: %s", ErrUnsupportedDType, t.DType())
	}
	return t, nil
}
