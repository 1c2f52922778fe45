package cpu

import (
	"fmt"

	"github.com/born-ml/fundamentals/internal/parallel"
	"github.com/born-ml/fundamentals/internal/tensor"
)

// AddScalar adds scalar to every element.
func (cpu *CPUBackend) AddScalar(x *tensor.RawTensor, scalar float64) (*tensor.RawTensor, error) {
	return cpu.scalar(opAdd, x, scalar)
}

// SubScalar subtracts scalar from every element.
func (cpu *CPUBackend) SubScalar(x *tensor.RawTensor, scalar float64) (*tensor.RawTensor, error) {
	return cpu.scalar(opSub, x, scalar)
}

// MulScalar multiplies every element by scalar.
func (cpu *CPUBackend) MulScalar(x *tensor.RawTensor, scalar float64) (*tensor.RawTensor, error) {
	return cpu.scalar(opMul, x, scalar)
}

// DivScalar divides every element by scalar.
func (cpu *CPUBackend) DivScalar(x *tensor.RawTensor, scalar float64) (*tensor.RawTensor, error) {
	return cpu.scalar(opDiv, x, scalar)
}

func (cpu *CPUBackend) scalar(op binaryOp, x *tensor.RawTensor, s float64) (*tensor.RawTensor, error) {
	if x.DType() == tensor.Float16 {
		return cpu.viaFloat32(func(in ...*tensor.RawTensor) (*tensor.RawTensor, error) {
			return cpu.scalar(op, in[0], s)
		}, x)
	}

	result := tensor.MustNewRaw(x.Shape(), x.DType(), x.Device())
	var err error
	switch x.DType() {
	case tensor.Float32:
		scalarKernel(cpu.cfg, op, result, x, float32(s))
	case tensor.Float64:
		scalarKernel(cpu.cfg, op, result, x, s)
	case tensor.Int8:
		err = intScalar(cpu.cfg, op, result, x, tensor.FromFloat64[int8](s))
	case tensor.Int32:
		err = intScalar(cpu.cfg, op, result, x, tensor.FromFloat64[int32](s))
	case tensor.Int64:
		err = intScalar(cpu.cfg, op, result, x, tensor.FromFloat64[int64](s))
	case tensor.Uint8:
		err = intScalar(cpu.cfg, op, result, x, tensor.FromFloat64[uint8](s))
	default:
		return nil, fmt.Errorf("%s scalar: %w: %s", op, tensor.ErrUnsupportedDType, x.DType())
	}
	if err != nil {
		return nil, fmt.Errorf("%s scalar: %w", op, err)
	}
	return result, nil
}

func intScalar[T number](cfg parallel.Config, op binaryOp, dst, x *tensor.RawTensor, s T) error {
	if op == opDiv && s == 0 {
		return tensor.ErrDivisionByZero
	}
	scalarKernel(cfg, op, dst, x, s)
	return nil
}

func scalarKernel[T number](cfg parallel.Config, op binaryOp, dst, x *tensor.RawTensor, s T) {
	f := arith[T](op)
	out := tensor.Contig[T](dst)
	src := tensor.Storage[T](x)
	off, shape, strides := x.Offset(), x.Shape(), x.Strides()

	if x.IsContiguous() {
		parallel.Range(len(out), func(start, end int) {
			for i := start; i < end; i++ {
				out[i] = f(src[off+i], s)
			}
		}, cfg)
		return
	}
	parallel.Range(len(out), func(start, end int) {
		for i := start; i < end; i++ {
			out[i] = f(src[tensor.OffsetAt(shape, strides, off, i)], s)
		}
	}, cfg)
}
