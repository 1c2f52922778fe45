package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/born-ml/fundamentals/internal/tensor"
)

func TestMatMul_Shapes(t *testing.T) {
	backend := serial()
	vec := raw(t, []float32{1, 2, 3}, 3)
	mat := raw(t, []float32{1, 2, 3, 4, 5, 6}, 2, 3) // [[1 2 3] [4 5 6]]

	t.Run("dot", func(t *testing.T) {
		out, err := backend.MatMul(vec, vec)
		require.NoError(t, err)
		assert.Empty(t, out.Shape())
		assert.Equal(t, []float32{14}, values32(out))
	})

	t.Run("matrix-vector", func(t *testing.T) {
		out, err := backend.MatMul(mat, vec)
		require.NoError(t, err)
		assert.Equal(t, tensor.Shape{2}, out.Shape())
		assert.Equal(t, []float32{14, 32}, values32(out))
	})

	t.Run("vector-matrix", func(t *testing.T) {
		out, err := backend.MatMul(raw(t, []float32{1, 1}, 2), mat)
		require.NoError(t, err)
		assert.Equal(t, tensor.Shape{3}, out.Shape())
		assert.Equal(t, []float32{5, 7, 9}, values32(out))
	})

	t.Run("matrix-matrix", func(t *testing.T) {
		mt, err := mat.Transpose(0, 1)
		require.NoError(t, err)
		out, err := backend.MatMul(mat, mt)
		require.NoError(t, err)
		assert.Equal(t, tensor.Shape{2, 2}, out.Shape())
		assert.Equal(t, []float32{14, 32, 32, 77}, values32(out))
	})
}

func TestMatMul_ShapeMismatch(t *testing.T) {
	backend := serial()
	a := raw(t, make([]float64, 6), 2, 3)
	b := raw(t, make([]float64, 8), 4, 2)

	_, err := backend.MatMul(a, b)
	assert.ErrorIs(t, err, tensor.ErrShapeMismatch)

	_, err = backend.MatMul(raw(t, make([]float64, 3), 3), raw(t, make([]float64, 4), 4))
	assert.ErrorIs(t, err, tensor.ErrShapeMismatch)

	cube := raw(t, make([]float64, 8), 2, 2, 2)
	_, err = backend.MatMul(cube, cube)
	assert.ErrorIs(t, err, tensor.ErrShapeMismatch)
}

func TestMatMul_Integers(t *testing.T) {
	a := raw(t, []int64{1, 2, 3, 4}, 2, 2)
	out, err := eager().MatMul(a, a)
	require.NoError(t, err)
	assert.Equal(t, []int64{7, 10, 15, 22}, tensor.Contig[int64](out))

	_, err = serial().MatMul(raw(t, []bool{true}, 1, 1), raw(t, []bool{true}, 1, 1))
	assert.ErrorIs(t, err, tensor.ErrUnsupportedDType)
}

// naive is the reference product for the property test.
func naive(a, b []float64, m, k, n int) []float64 {
	c := make([]float64, m*n)
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			for p := 0; p < k; p++ {
				c[i*n+j] += a[i*k+p] * b[p*n+j]
			}
		}
	}
	return c
}

func TestMatMul_MatchesNaiveForAnyLayout(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		m := rapid.IntRange(1, 5).Draw(rt, "m")
		k := rapid.IntRange(1, 5).Draw(rt, "k")
		n := rapid.IntRange(1, 5).Draw(rt, "n")
		a := rapid.SliceOfN(rapid.Float64Range(-4, 4), m*k, m*k).Draw(rt, "a")
		b := rapid.SliceOfN(rapid.Float64Range(-4, 4), k*n, k*n).Draw(rt, "b")
		transposeB := rapid.Bool().Draw(rt, "transposeB")

		ar, _ := tensor.Wrap(a, tensor.Shape{m, k}, nil, 0)
		var br *tensor.RawTensor
		if transposeB {
			// Store B column-major and view it as (k, n).
			bt := make([]float64, k*n)
			for p := 0; p < k; p++ {
				for j := 0; j < n; j++ {
					bt[j*k+p] = b[p*n+j]
				}
			}
			stored, _ := tensor.Wrap(bt, tensor.Shape{n, k}, nil, 0)
			br, _ = stored.Transpose(0, 1)
		} else {
			br, _ = tensor.Wrap(b, tensor.Shape{k, n}, nil, 0)
		}

		out, err := serial().MatMul(ar, br)
		if err != nil {
			rt.Fatalf("matmul: %v", err)
		}
		got := tensor.Contig[float64](out)
		for i, want := range naive(a, b, m, k, n) {
			if d := got[i] - want; d > 1e-9 || d < -1e-9 {
				rt.Fatalf("element %d = %v, want %v", i, got[i], want)
			}
		}
	})
}
