package tensor_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/x448/float16"

	"github.com/born-ml/fundamentals/internal/backend/cpu"
	"github.com/born-ml/fundamentals/internal/tensor"
)

type (
	Shape      = tensor.Shape
	cpuBackend = cpu.CPUBackend
)

var backend = cpu.New()

func TestSquares(t *testing.T) {
	x, err := tensor.FromSlice([]float32{1, 2, 3}, Shape{3}, backend)
	require.NoError(t, err)

	sq, err := x.Mul(x)
	require.NoError(t, err)
	assert.Equal(t, []float32{1, 4, 9}, sq.Data())

	dot, err := x.MatMul(x)
	require.NoError(t, err)
	assert.Equal(t, 0, dot.Dim())
	assert.Equal(t, float32(14), dot.Item())
}

func TestMatMulShapeLaw(t *testing.T) {
	gen, err := tensor.NewGenerator(1)
	require.NoError(t, err)

	a, err := tensor.Rand[float32](gen, Shape{7, 7}, backend)
	require.NoError(t, err)
	b, err := tensor.Rand[float32](gen, Shape{1, 7}, backend)
	require.NoError(t, err)

	_, err = a.MatMul(b)
	assert.ErrorIs(t, err, tensor.ErrShapeMismatch)

	c, err := a.MatMul(b.T())
	require.NoError(t, err)
	assert.Equal(t, Shape{7, 1}, c.Shape())

	// Row 3 of the product is the dot of a's row 3 with b.
	var want float32
	for k := 0; k < 7; k++ {
		want += a.At(3, k) * b.At(0, k)
	}
	assert.InDelta(t, want, c.At(3, 0), 1e-5)
}

func TestArithmetic(t *testing.T) {
	a, err := tensor.FromSlice([]int64{1, 2, 3, 4}, Shape{2, 2}, backend)
	require.NoError(t, err)
	b, err := tensor.FromSlice([]int64{10, 20}, Shape{2}, backend)
	require.NoError(t, err)

	sum, err := a.Add(b)
	require.NoError(t, err)
	assert.Equal(t, []int64{11, 22, 13, 24}, sum.Data())

	diff, err := b.Sub(a)
	require.NoError(t, err)
	assert.Equal(t, []int64{9, 18, 7, 16}, diff.Data())

	q, err := sum.DivScalar(2)
	require.NoError(t, err)
	assert.Equal(t, []int64{5, 11, 6, 12}, q.Data())

	_, err = a.Div(tensor.ZerosLike(a))
	assert.ErrorIs(t, err, tensor.ErrDivisionByZero)
}

func TestReductions(t *testing.T) {
	x, err := tensor.FromSlice([]float64{4, -2, 8, 1}, Shape{2, 2}, backend)
	require.NoError(t, err)

	sum, err := x.Sum()
	require.NoError(t, err)
	assert.Equal(t, 11.0, sum.Item())

	mean, err := x.Mean()
	require.NoError(t, err)
	assert.Equal(t, 2.75, mean.Item())

	lo, err := x.Min()
	require.NoError(t, err)
	hi, err := x.Max()
	require.NoError(t, err)
	assert.Equal(t, -2.0, lo.Item())
	assert.Equal(t, 8.0, hi.Item())

	argmin, err := x.Argmin()
	require.NoError(t, err)
	argmax, err := x.Argmax()
	require.NoError(t, err)
	assert.Equal(t, int64(1), argmin.Item())
	assert.Equal(t, int64(2), argmax.Item())
}

func TestCastMethods(t *testing.T) {
	x, err := tensor.Arange[int64](0, 4, backend)
	require.NoError(t, err)

	f, err := x.Float32()
	require.NoError(t, err)
	assert.Equal(t, tensor.Float32, f.DType())
	assert.Equal(t, []float32{0, 1, 2, 3}, f.Data())

	h, err := f.Float16()
	require.NoError(t, err)
	back, err := h.Float64()
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1, 2, 3}, back.Data())

	i8, err := tensor.Full[float32](Shape{2}, 130, backend)
	require.NoError(t, err)
	wrapped, err := i8.Int8()
	require.NoError(t, err)
	assert.Equal(t, []int8{-126, -126}, wrapped.Data())
}

func TestEqualAllClose(t *testing.T) {
	a, err := tensor.FromSlice([]float64{1, 2, 3}, Shape{3}, backend)
	require.NoError(t, err)
	b, err := a.AddScalar(1e-9)
	require.NoError(t, err)

	assert.True(t, a.Equal(a.Clone()))
	assert.False(t, a.Equal(b))
	assert.True(t, a.AllClose(b, 1e-6, 1e-6))

	c, err := a.View(3, 1)
	require.NoError(t, err)
	assert.False(t, a.Equal(c))

	nan, err := tensor.Full(Shape{1}, math.NaN(), backend)
	require.NoError(t, err)
	assert.False(t, nan.Equal(nan))
	assert.False(t, nan.AllClose(nan, 1, 1))

	inf, err := tensor.Full(Shape{1}, math.Inf(1), backend)
	require.NoError(t, err)
	assert.True(t, inf.AllClose(inf, 0, 0))
}

func TestEqualHalf(t *testing.T) {
	nan, err := tensor.Full(Shape{2}, float16.NaN(), backend)
	require.NoError(t, err)
	assert.False(t, nan.Equal(nan))

	pos, err := tensor.Full(Shape{2}, float16.Fromfloat32(0), backend)
	require.NoError(t, err)
	neg, err := tensor.Full(Shape{2}, float16.Fromfloat32(float32(math.Copysign(0, -1))), backend)
	require.NoError(t, err)
	assert.True(t, pos.Equal(neg))

	one, err := tensor.Ones[float16.Float16](Shape{2}, backend)
	require.NoError(t, err)
	assert.False(t, pos.Equal(one))
}

func TestDeviceTransfer(t *testing.T) {
	x, err := tensor.Ones[float32](Shape{2}, backend)
	require.NoError(t, err)

	same, err := x.To(tensor.CPU)
	require.NoError(t, err)
	assert.Same(t, x, same)
	assert.Same(t, x, x.CPU())

	if backend.DeviceCount(tensor.CUDA) == 0 {
		_, err = x.To(tensor.CUDA)
		assert.ErrorIs(t, err, tensor.ErrDeviceUnavailable)
	}

	// A tensor tagged with an accelerator cannot be mixed with a CPU one.
	remote := tensor.New[float32](x.Raw().CloneTo(tensor.CUDA), backend)
	_, err = x.Add(remote)
	assert.ErrorIs(t, err, tensor.ErrDeviceMismatch)

	local := remote.CPU()
	assert.Equal(t, tensor.CPU, local.Device())
	assert.False(t, local.SharesStorage(remote))
	assert.Equal(t, []float32{1, 1}, local.Data())
}

func TestString(t *testing.T) {
	x, err := tensor.Zeros[int32](Shape{3, 4}, backend)
	require.NoError(t, err)
	assert.Equal(t, "Tensor[int32][3 4] on CPU", x.String())
}
