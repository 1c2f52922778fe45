package cpu

import (
	"fmt"

	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas32"
	"gonum.org/v1/gonum/blas/blas64"

	"github.com/born-ml/fundamentals/internal/parallel"
	"github.com/born-ml/fundamentals/internal/tensor"
)

// MatMul performs matrix multiplication.
//
//   - (K) · (K)       → ()
//   - (M, K) @ (K)    → (M)
//   - (K) @ (K, N)    → (N)
//   - (M, K) @ (K, N) → (M, N)
//
// float32 and float64 use gonum's GEMM directly on strided inputs when the
// layout allows it, so transposed views are not copied.
func (cpu *CPUBackend) MatMul(a, b *tensor.RawTensor) (*tensor.RawTensor, error) {
	if a.DType() != b.DType() {
		return nil, fmt.Errorf("matmul: operand dtypes %s and %s differ: %w", a.DType(), b.DType(), tensor.ErrUnsupportedDType)
	}
	aShape, bShape := a.Shape(), b.Shape()
	if len(aShape) == 0 || len(aShape) > 2 || len(bShape) == 0 || len(bShape) > 2 {
		return nil, fmt.Errorf("matmul: only 1-D and 2-D operands are supported, got %v and %v: %w",
			aShape, bShape, tensor.ErrShapeMismatch)
	}
	if k, kb := aShape[len(aShape)-1], bShape[0]; k != kb {
		return nil, fmt.Errorf("matmul: shapes %v and %v cannot be multiplied (%d != %d): %w",
			aShape, bShape, k, kb, tensor.ErrShapeMismatch)
	}

	// Promote vectors to matrices and remember which output dims to keep.
	var outShape tensor.Shape
	a2, b2 := a, b
	if len(aShape) == 1 {
		a2, _ = a.Unsqueeze(0)
	} else {
		outShape = append(outShape, aShape[0])
	}
	if len(bShape) == 1 {
		b2, _ = b.Unsqueeze(1)
	} else {
		outShape = append(outShape, bShape[1])
	}

	result, err := cpu.matmul2D(a2, b2)
	if err != nil {
		return nil, fmt.Errorf("matmul: %w", err)
	}
	return result.View(outShape...)
}

func (cpu *CPUBackend) matmul2D(a, b *tensor.RawTensor) (*tensor.RawTensor, error) {
	m, k, n := a.Shape()[0], a.Shape()[1], b.Shape()[1]
	result := tensor.MustNewRaw(tensor.Shape{m, n}, a.DType(), a.Device())

	switch a.DType() {
	case tensor.Float32:
		aa, ta := general(tensor.Storage[float32](a), a)
		bb, tb := general(tensor.Storage[float32](b), b)
		blas32.Gemm(ta, tb, 1, aa.general32(), bb.general32(), 0, blas32.General{
			Rows: m, Cols: n, Stride: n, Data: tensor.Contig[float32](result),
		})
	case tensor.Float64:
		aa, ta := general(tensor.Storage[float64](a), a)
		bb, tb := general(tensor.Storage[float64](b), b)
		blas64.Gemm(ta, tb, 1, aa.general64(), bb.general64(), 0, blas64.General{
			Rows: m, Cols: n, Stride: n, Data: tensor.Contig[float64](result),
		})
	case tensor.Float16:
		return cpu.viaFloat32(func(in ...*tensor.RawTensor) (*tensor.RawTensor, error) {
			return cpu.matmul2D(in[0], in[1])
		}, a, b)
	case tensor.Int8:
		matmulNaive[int8](cpu.cfg, result, a, b, k)
	case tensor.Int32:
		matmulNaive[int32](cpu.cfg, result, a, b, k)
	case tensor.Int64:
		matmulNaive[int64](cpu.cfg, result, a, b, k)
	case tensor.Uint8:
		matmulNaive[uint8](cpu.cfg, result, a, b, k)
	default:
		return nil, fmt.Errorf("%w: %s", tensor.ErrUnsupportedDType, a.DType())
	}
	return result, nil
}

// matrix is a row-major BLAS operand of either precision.
type matrix[T float32 | float64] struct {
	rows, cols int
	stride     int
	data       []T
}

func (m matrix[T]) general32() blas32.General {
	return blas32.General{Rows: m.rows, Cols: m.cols, Stride: m.stride, Data: any(m.data).([]float32)}
}

func (m matrix[T]) general64() blas64.General {
	return blas64.General{Rows: m.rows, Cols: m.cols, Stride: m.stride, Data: any(m.data).([]float64)}
}

// general describes the 2-D tensor x as a BLAS matrix over its own storage.
// A column-major layout is described as the transpose of a row-major one.
// Layouts BLAS cannot express are compacted first.
func general[T float32 | float64](data []T, x *tensor.RawTensor) (matrix[T], blas.Transpose) {
	rows, cols := x.Shape()[0], x.Shape()[1]
	rs, cs := x.Strides()[0], x.Strides()[1]

	switch {
	case (cs == 1 || cols == 1) && (rs >= cols || rows == 1):
		return matrix[T]{rows: rows, cols: cols, stride: max(rs, cols), data: data[x.Offset():]}, blas.NoTrans
	case (rs == 1 || rows == 1) && (cs >= rows || cols == 1):
		return matrix[T]{rows: cols, cols: rows, stride: max(cs, rows), data: data[x.Offset():]}, blas.Trans
	}
	c := x.Contiguous()
	return matrix[T]{rows: rows, cols: cols, stride: cols, data: tensor.Contig[T](c)}, blas.NoTrans
}

// matmulNaive computes integer products row by row. Sums wrap on overflow.
func matmulNaive[T number](cfg parallel.Config, dst, a, b *tensor.RawTensor, k int) {
	n := dst.Shape()[1]
	c := tensor.Contig[T](dst)
	as, bs := tensor.Storage[T](a), tensor.Storage[T](b)
	ao, bo := a.Offset(), b.Offset()
	ars, acs := a.Strides()[0], a.Strides()[1]
	brs, bcs := b.Strides()[0], b.Strides()[1]

	rowCfg := cfg
	rowCfg.MinChunkSize = max(1, cfg.MinChunkSize/max(1, k*n))
	parallel.For(dst.Shape()[0], func(i int) {
		for j := 0; j < n; j++ {
			var sum T
			for p := 0; p < k; p++ {
				sum += as[ao+i*ars+p*acs] * bs[bo+p*brs+j*bcs]
			}
			c[i*n+j] = sum
		}
	}, rowCfg)
}
