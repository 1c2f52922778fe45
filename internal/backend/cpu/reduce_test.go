package cpu

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/fundamentals/internal/tensor"
)

func TestReduce_Float(t *testing.T) {
	backend := serial()
	x := raw(t, []float32{3, -1, 4, 1, 5, -9, 2, 6}, 2, 4)

	sum, err := backend.Sum(x)
	require.NoError(t, err)
	assert.Empty(t, sum.Shape())
	assert.Equal(t, []float32{11}, values32(sum))

	mean, err := backend.Mean(x)
	require.NoError(t, err)
	assert.InDelta(t, 1.375, values32(mean)[0], 1e-6)

	lo, err := backend.Min(x)
	require.NoError(t, err)
	assert.Equal(t, []float32{-9}, values32(lo))

	hi, err := backend.Max(x)
	require.NoError(t, err)
	assert.Equal(t, []float32{6}, values32(hi))

	argmin, err := backend.Argmin(x)
	require.NoError(t, err)
	assert.Equal(t, tensor.Int64, argmin.DType())
	assert.Equal(t, []int64{5}, tensor.Contig[int64](argmin))
}

func TestReduce_StridedInput(t *testing.T) {
	x := raw(t, []int32{1, 2, 3, 4, 5, 6}, 2, 3)
	col, err := x.Select(1, 1) // [2 5]
	require.NoError(t, err)

	sum, err := serial().Sum(col)
	require.NoError(t, err)
	assert.Equal(t, []int32{7}, tensor.Contig[int32](sum))
}

func TestReduce_ArgmaxFirstOccurrence(t *testing.T) {
	x := raw(t, []int64{1, 7, 3, 7}, 4)
	arg, err := serial().Argmax(x)
	require.NoError(t, err)
	assert.Equal(t, []int64{1}, tensor.Contig[int64](arg))
}

func TestReduce_NaNPropagates(t *testing.T) {
	nan := math.NaN()
	x := raw(t, []float64{1, nan, -5}, 3)

	hi, err := serial().Max(x)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(tensor.Contig[float64](hi)[0]))

	arg, err := serial().Argmin(x)
	require.NoError(t, err)
	assert.Equal(t, []int64{1}, tensor.Contig[int64](arg))
}

func TestReduce_IntegerSumWraps(t *testing.T) {
	x := raw(t, []uint8{200, 100}, 2)
	sum, err := serial().Sum(x)
	require.NoError(t, err)
	assert.Equal(t, []uint8{44}, tensor.Contig[uint8](sum))
}

func TestReduce_MeanRequiresFloat(t *testing.T) {
	_, err := serial().Mean(raw(t, []int64{1, 2}, 2))
	assert.ErrorIs(t, err, tensor.ErrUnsupportedDType)
}

func TestCast(t *testing.T) {
	backend := serial()

	t.Run("float to int truncates and wraps", func(t *testing.T) {
		out, err := backend.Cast(raw(t, []float64{1.9, -1.9, 300}, 3), tensor.Int8)
		require.NoError(t, err)
		assert.Equal(t, []int8{1, -1, 44}, tensor.Contig[int8](out))
	})

	t.Run("to bool", func(t *testing.T) {
		out, err := backend.Cast(raw(t, []float32{0, 0.5, -2}, 3), tensor.Bool)
		require.NoError(t, err)
		assert.Equal(t, []bool{false, true, true}, tensor.Contig[bool](out))
	})

	t.Run("from bool", func(t *testing.T) {
		out, err := backend.Cast(raw(t, []bool{true, false}, 2), tensor.Float64)
		require.NoError(t, err)
		assert.Equal(t, []float64{1, 0}, tensor.Contig[float64](out))
	})

	t.Run("half round trip", func(t *testing.T) {
		half, err := backend.Cast(raw(t, []float32{0.5, 2, -3}, 3), tensor.Float16)
		require.NoError(t, err)
		back, err := backend.Cast(half, tensor.Float32)
		require.NoError(t, err)
		assert.Equal(t, []float32{0.5, 2, -3}, values32(back))
	})

	t.Run("same dtype copies", func(t *testing.T) {
		x := raw(t, []int32{1, 2}, 2)
		out, err := backend.Cast(x, tensor.Int32)
		require.NoError(t, err)
		assert.False(t, out.SharesStorage(x))
	})
}

func TestStackCat(t *testing.T) {
	backend := serial()
	a := raw(t, []float32{1, 2, 3, 4}, 2, 2)
	b := raw(t, []float32{5, 6, 7, 8}, 2, 2)

	cat0, err := backend.Cat([]*tensor.RawTensor{a, b}, 0)
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{4, 2}, cat0.Shape())
	assert.Equal(t, []float32{1, 2, 3, 4, 5, 6, 7, 8}, values32(cat0))

	cat1, err := backend.Cat([]*tensor.RawTensor{a, b}, -1)
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{2, 4}, cat1.Shape())
	assert.Equal(t, []float32{1, 2, 5, 6, 3, 4, 7, 8}, values32(cat1))

	st, err := backend.Stack([]*tensor.RawTensor{a, b}, 1)
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{2, 2, 2}, st.Shape())
	assert.Equal(t, []float32{1, 2, 5, 6, 3, 4, 7, 8}, values32(st))

	_, err = backend.Stack([]*tensor.RawTensor{a, raw(t, []float32{1, 2}, 2)}, 0)
	assert.ErrorIs(t, err, tensor.ErrShapeMismatch)

	_, err = backend.Cat(nil, 0)
	assert.ErrorIs(t, err, tensor.ErrInvalidShape)
}
