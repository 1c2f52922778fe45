package cpu

import (
	"fmt"

	"github.com/born-ml/fundamentals/internal/parallel"
	"github.com/born-ml/fundamentals/internal/tensor"
)

type binaryOp int

const (
	opAdd binaryOp = iota
	opSub
	opMul
	opDiv
)

var opNames = [...]string{"add", "sub", "mul", "div"}

func (op binaryOp) String() string {
	return opNames[op]
}

func arith[T number](op binaryOp) func(x, y T) T {
	switch op {
	case opAdd:
		return func(x, y T) T { return x + y }
	case opSub:
		return func(x, y T) T { return x - y }
	case opMul:
		return func(x, y T) T { return x * y }
	default:
		return func(x, y T) T { return x / y }
	}
}

// Add performs element-wise addition with NumPy-style broadcasting.
func (cpu *CPUBackend) Add(a, b *tensor.RawTensor) (*tensor.RawTensor, error) {
	return cpu.binary(opAdd, a, b)
}

// Sub performs element-wise subtraction with broadcasting.
func (cpu *CPUBackend) Sub(a, b *tensor.RawTensor) (*tensor.RawTensor, error) {
	return cpu.binary(opSub, a, b)
}

// Mul performs element-wise multiplication with broadcasting.
func (cpu *CPUBackend) Mul(a, b *tensor.RawTensor) (*tensor.RawTensor, error) {
	return cpu.binary(opMul, a, b)
}

// Div performs element-wise division with broadcasting. Integer division
// truncates toward zero and fails on a zero divisor.
func (cpu *CPUBackend) Div(a, b *tensor.RawTensor) (*tensor.RawTensor, error) {
	return cpu.binary(opDiv, a, b)
}

func (cpu *CPUBackend) binary(op binaryOp, a, b *tensor.RawTensor) (*tensor.RawTensor, error) {
	if a.DType() != b.DType() {
		return nil, fmt.Errorf("%s: operand dtypes %s and %s differ: %w", op, a.DType(), b.DType(), tensor.ErrUnsupportedDType)
	}
	outShape, err := tensor.BroadcastShapes(a.Shape(), b.Shape())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if a.DType() == tensor.Float16 {
		return cpu.viaFloat32(func(in ...*tensor.RawTensor) (*tensor.RawTensor, error) {
			return cpu.binary(op, in[0], in[1])
		}, a, b)
	}

	result := tensor.MustNewRaw(outShape, a.DType(), a.Device())
	switch a.DType() {
	case tensor.Float32:
		binaryKernel[float32](cpu.cfg, op, result, a, b)
	case tensor.Float64:
		binaryKernel[float64](cpu.cfg, op, result, a, b)
	case tensor.Int8:
		err = intBinary[int8](cpu.cfg, op, result, a, b)
	case tensor.Int32:
		err = intBinary[int32](cpu.cfg, op, result, a, b)
	case tensor.Int64:
		err = intBinary[int64](cpu.cfg, op, result, a, b)
	case tensor.Uint8:
		err = intBinary[uint8](cpu.cfg, op, result, a, b)
	default:
		return nil, fmt.Errorf("%s: %w: %s", op, tensor.ErrUnsupportedDType, a.DType())
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

func intBinary[T number](cfg parallel.Config, op binaryOp, dst, a, b *tensor.RawTensor) error {
	if op == opDiv && hasZero[T](b) {
		return tensor.ErrDivisionByZero
	}
	binaryKernel[T](cfg, op, dst, a, b)
	return nil
}

// binaryKernel writes op(a, b) into the contiguous dst, reading a and b
// through broadcast strides.
func binaryKernel[T number](cfg parallel.Config, op binaryOp, dst, a, b *tensor.RawTensor) {
	f := arith[T](op)
	out := tensor.Contig[T](dst)
	as, bs := tensor.Storage[T](a), tensor.Storage[T](b)
	ao, bo := a.Offset(), b.Offset()
	shape := dst.Shape()

	if a.IsContiguous() && b.IsContiguous() && a.Shape().Equal(shape) && b.Shape().Equal(shape) {
		parallel.Range(len(out), func(start, end int) {
			for i := start; i < end; i++ {
				out[i] = f(as[ao+i], bs[bo+i])
			}
		}, cfg)
		return
	}

	aStrides := tensor.BroadcastStrides(a.Shape(), a.Strides(), shape)
	bStrides := tensor.BroadcastStrides(b.Shape(), b.Strides(), shape)
	parallel.Range(len(out), func(start, end int) {
		for i := start; i < end; i++ {
			x := as[tensor.OffsetAt(shape, aStrides, ao, i)]
			y := bs[tensor.OffsetAt(shape, bStrides, bo, i)]
			out[i] = f(x, y)
		}
	}, cfg)
}

func hasZero[T number](x *tensor.RawTensor) bool {
	data := tensor.Storage[T](x)
	zero := false
	tensor.ForEachOffset(x.Shape(), x.Strides(), x.Offset(), func(_, off int) {
		zero = zero || data[off] == 0
	})
	return zero
}

// viaFloat32 runs fn on float32 copies of in and casts the result back to
// the dtype of in[0].
func (cpu *CPUBackend) viaFloat32(fn func(in ...*tensor.RawTensor) (*tensor.RawTensor, error), in ...*tensor.RawTensor) (*tensor.RawTensor, error) {
	wide := make([]*tensor.RawTensor, len(in))
	for i, x := range in {
		w, err := cpu.Cast(x, tensor.Float32)
		if err != nil {
			return nil, err
		}
		wide[i] = w
	}
	out, err := fn(wide...)
	if err != nil {
		return nil, err
	}
	if out.DType() != tensor.Float32 {
		return out, nil
	}
	return cpu.Cast(out, in[0].DType())
}
