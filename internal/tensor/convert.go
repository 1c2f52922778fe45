package tensor

import (
	"fmt"

	"github.com/x448/float16"
)

// FromFloat64 converts v to T. Integers truncate toward zero and wrap when
// out of range; bool is v != 0.
func FromFloat64[T DType](v float64) T {
	var dummy T
	var out any
	switch any(dummy).(type) {
	case float32:
		out = float32(v)
	case float64:
		out = v
	case float16.Float16:
		out = float16.Fromfloat32(float32(v))
	case int8:
		out = int8(int64(v))
	case int32:
		out = int32(int64(v))
	case int64:
		out = int64(v)
	case uint8:
		out = uint8(int64(v))
	case bool:
		out = v != 0
	default:
		panic("unsupported type")
	}
	return out.(T)
}

// ToFloat64 widens v to float64. true is 1, false is 0.
func ToFloat64[T DType](v T) float64 {
	switch x := any(v).(type) {
	case float32:
		return float64(x)
	case float64:
		return x
	case float16.Float16:
		return float64(x.Float32())
	case int8:
		return float64(x)
	case int32:
		return float64(x)
	case int64:
		return float64(x)
	case uint8:
		return float64(x)
	case bool:
		if x {
			return 1
		}
		return 0
	default:
		panic("unsupported type")
	}
}

// Cast converts t to element type U.
//
// Example:
//
//	x, _ := tensor.Arange[int64](0, 10, backend)
//	f, _ := tensor.Cast[float32](x)
func Cast[U DType, T DType, B Backend](t *Tensor[T, B]) (*Tensor[U, B], error) {
	raw, err := t.backend.Cast(t.raw, DataTypeOf[U]())
	if err != nil {
		return nil, fmt.Errorf("cast %s to %s: %w", t.DType(), DataTypeOf[U](), err)
	}
	return New[U, B](raw, t.backend), nil
}

// Float32 casts to float32.
func (t *Tensor[T, B]) Float32() (*Tensor[float32, B], error) {
	return Cast[float32](t)
}

// Float64 casts to float64.
func (t *Tensor[T, B]) Float64() (*Tensor[float64, B], error) {
	return Cast[float64](t)
}

// Float16 casts to IEEE half precision.
func (t *Tensor[T, B]) Float16() (*Tensor[float16.Float16, B], error) {
	return Cast[float16.Float16](t)
}

// Int8 casts to int8. Out-of-range values wrap.
func (t *Tensor[T, B]) Int8() (*Tensor[int8, B], error) {
	return Cast[int8](t)
}

// Int32 casts to int32.
func (t *Tensor[T, B]) Int32() (*Tensor[int32, B], error) {
	return Cast[int32](t)
}

// Int64 casts to int64.
func (t *Tensor[T, B]) Int64() (*Tensor[int64, B], error) {
	return Cast[int64](t)
}
