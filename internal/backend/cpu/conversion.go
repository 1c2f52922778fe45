package cpu

import (
	"fmt"

	"github.com/x448/float16"

	"github.com/born-ml/fundamentals/internal/tensor"
)

// Cast converts x to dtype and always returns a new tensor.
//
// Floating point to integer conversion truncates toward zero and wraps when
// out of range. Any non-zero value becomes true; true becomes 1.
func (cpu *CPUBackend) Cast(x *tensor.RawTensor, dtype tensor.DataType) (*tensor.RawTensor, error) {
	if x.DType() == dtype {
		return x.Clone(), nil
	}
	src := x.Contiguous()
	out := tensor.MustNewRaw(x.Shape(), dtype, x.Device())

	var err error
	switch x.DType() {
	case tensor.Float32:
		err = castTo(out, tensor.Contig[float32](src), true)
	case tensor.Float64:
		err = castTo(out, tensor.Contig[float64](src), true)
	case tensor.Float16:
		half := tensor.Contig[float16.Float16](src)
		wide := make([]float32, len(half))
		for i, h := range half {
			wide[i] = h.Float32()
		}
		err = castTo(out, wide, true)
	case tensor.Int8:
		err = castTo(out, tensor.Contig[int8](src), false)
	case tensor.Int32:
		err = castTo(out, tensor.Contig[int32](src), false)
	case tensor.Int64:
		err = castTo(out, tensor.Contig[int64](src), false)
	case tensor.Uint8:
		err = castTo(out, tensor.Contig[uint8](src), false)
	case tensor.Bool:
		flags := tensor.Contig[bool](src)
		bytes := make([]uint8, len(flags))
		for i, f := range flags {
			if f {
				bytes[i] = 1
			}
		}
		err = castTo(out, bytes, false)
	default:
		err = tensor.ErrUnsupportedDType
	}
	if err != nil {
		return nil, fmt.Errorf("cast %s to %s: %w", x.DType(), dtype, err)
	}
	return out, nil
}

func castTo[S number](out *tensor.RawTensor, src []S, fromFloat bool) error {
	switch out.DType() {
	case tensor.Float32:
		convert(tensor.Contig[float32](out), src, false)
	case tensor.Float64:
		convert(tensor.Contig[float64](out), src, false)
	case tensor.Float16:
		wide := make([]float32, len(src))
		convert(wide, src, false)
		half := tensor.Contig[float16.Float16](out)
		for i, f := range wide {
			half[i] = float16.Fromfloat32(f)
		}
	case tensor.Int8:
		convert(tensor.Contig[int8](out), src, fromFloat)
	case tensor.Int32:
		convert(tensor.Contig[int32](out), src, fromFloat)
	case tensor.Int64:
		convert(tensor.Contig[int64](out), src, fromFloat)
	case tensor.Uint8:
		convert(tensor.Contig[uint8](out), src, fromFloat)
	case tensor.Bool:
		flags := tensor.Contig[bool](out)
		for i, v := range src {
			flags[i] = v != 0
		}
	default:
		return tensor.ErrUnsupportedDType
	}
	return nil
}

// convert copies src into dst. viaInt64 routes floating point values
// through int64 so that narrowing to a small integer type wraps.
func convert[D, S number](dst []D, src []S, viaInt64 bool) {
	if viaInt64 {
		for i, v := range src {
			dst[i] = D(int64(v))
		}
		return
	}
	for i, v := range src {
		dst[i] = D(v)
	}
}
