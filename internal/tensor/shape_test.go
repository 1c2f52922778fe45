package tensor

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShapeValidate(t *testing.T) {
	assert.NoError(t, Shape{}.Validate())
	assert.NoError(t, Shape{3, 4}.Validate())
	assert.ErrorIs(t, Shape{3, 0}.Validate(), ErrInvalidShape)
	assert.ErrorIs(t, Shape{-2}.Validate(), ErrInvalidShape)
	assert.ErrorIs(t, Shape{1 << 32, 1 << 32}.Validate(), ErrInvalidShape)
	assert.ErrorIs(t, Shape{1 << 62, 2}.Validate(), ErrInvalidShape)
	assert.NoError(t, Shape{math.MaxInt}.Validate())
}

func TestNewRawRejectsOversizedShapes(t *testing.T) {
	_, err := NewRaw(Shape{1 << 32, 1 << 32}, Float32, CPU)
	assert.ErrorIs(t, err, ErrInvalidShape)

	_, err = NewRaw(Shape{math.MaxInt / 2}, Float64, CPU)
	assert.ErrorIs(t, err, ErrInvalidShape)
}

func TestShapeComputeStrides(t *testing.T) {
	assert.Equal(t, []int{12, 4, 1}, Shape{2, 3, 4}.ComputeStrides())
	assert.Empty(t, Shape{}.ComputeStrides())
	assert.Equal(t, 1, Shape{}.NumElements())
}

func TestInferShape(t *testing.T) {
	s, err := InferShape([]int{3, -1}, 12)
	require.NoError(t, err)
	assert.Equal(t, Shape{3, 4}, s)

	_, err = InferShape([]int{-1, -1}, 12)
	assert.ErrorIs(t, err, ErrInvalidShape)

	_, err = InferShape([]int{5, -1}, 12)
	assert.ErrorIs(t, err, ErrInvalidShape)

	_, err = InferShape([]int{2, 2}, 12)
	assert.ErrorIs(t, err, ErrInvalidShape)

	// 2^32 * 2^32 wraps to 0 in int arithmetic.
	_, err = InferShape([]int{1 << 32, 1 << 32, -1}, 12)
	assert.ErrorIs(t, err, ErrInvalidShape)
}

func TestBroadcastShapes(t *testing.T) {
	tests := []struct {
		a, b Shape
		want Shape
	}{
		{Shape{3, 1}, Shape{3, 5}, Shape{3, 5}},
		{Shape{5}, Shape{3, 5}, Shape{3, 5}},
		{Shape{}, Shape{2, 2}, Shape{2, 2}},
		{Shape{4, 1, 3}, Shape{2, 1}, Shape{4, 2, 3}},
	}
	for _, tt := range tests {
		got, err := BroadcastShapes(tt.a, tt.b)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "%v + %v", tt.a, tt.b)
	}

	_, err := BroadcastShapes(Shape{3, 4}, Shape{3, 5})
	assert.ErrorIs(t, err, ErrShapeMismatch)

	_, err = BroadcastShapes(Shape{1 << 32, 1}, Shape{1, 1 << 32})
	assert.ErrorIs(t, err, ErrInvalidShape)
}

func TestBroadcastStrides(t *testing.T) {
	assert.Equal(t, []int{0, 1, 0}, BroadcastStrides(Shape{3, 1}, []int{1, 1}, Shape{2, 3, 4}))
}

func TestNormalizeDim(t *testing.T) {
	d, err := NormalizeDim(-1, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, d)

	_, err = NormalizeDim(3, 3)
	assert.ErrorIs(t, err, ErrInvalidDim)
}

func TestDataType(t *testing.T) {
	tests := []struct {
		dtype DataType
		size  int
		name  string
		float bool
	}{
		{Float32, 4, "float32", true},
		{Float64, 8, "float64", true},
		{Float16, 2, "float16", true},
		{Int8, 1, "int8", false},
		{Int32, 4, "int32", false},
		{Int64, 8, "int64", false},
		{Uint8, 1, "uint8", false},
		{Bool, 1, "bool", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.size, tt.dtype.Size())
		assert.Equal(t, tt.name, tt.dtype.String())
		assert.Equal(t, tt.float, tt.dtype.IsFloat())
	}
	assert.Equal(t, Int64, DataTypeOf[int64]())
}

func TestParseDevice(t *testing.T) {
	d, err := ParseDevice("CUDA")
	require.NoError(t, err)
	assert.Equal(t, CUDA, d)
	assert.True(t, d.IsAccelerator())
	assert.False(t, CPU.IsAccelerator())

	_, err = ParseDevice("abacus")
	assert.Error(t, err)
}

func TestWrap(t *testing.T) {
	data := []float32{1, 2, 3, 4, 5, 6}
	r, err := Wrap(data, Shape{2, 2}, []int{3, 1}, 1)
	require.NoError(t, err)
	assert.False(t, r.IsContiguous())

	c := r.Contiguous()
	assert.Equal(t, []float32{2, 3, 5, 6}, c.AsFloat32())

	Storage[float32](r)[1] = 20
	assert.Equal(t, float32(20), data[1])

	_, err = Wrap(data, Shape{2, 4}, nil, 0)
	assert.ErrorIs(t, err, ErrInvalidShape)
}

func TestOffsetAtMatchesForEachOffset(t *testing.T) {
	shape := Shape{2, 3, 2}
	strides := []int{1, 4, 2}
	ForEachOffset(shape, strides, 5, func(i, off int) {
		assert.Equal(t, off, OffsetAt(shape, strides, 5, i), "position %d", i)
	})
}
