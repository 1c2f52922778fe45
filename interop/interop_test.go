// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package interop_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/fundamentals/backend/cpu"
	"github.com/born-ml/fundamentals/interop"
	"github.com/born-ml/fundamentals/tensor"
)

func TestInverseThroughGonum(t *testing.T) {
	backend := cpu.New()
	x, err := tensor.FromSlice([]float64{4, 7, 2, 6}, tensor.Shape{2, 2}, backend)
	require.NoError(t, err)

	d, err := interop.ToDense(x)
	require.NoError(t, err)
	var inv mat.Dense
	require.NoError(t, inv.Inverse(d))

	y, err := interop.FromDense(&inv, backend)
	require.NoError(t, err)

	id, err := x.MatMul(y)
	require.NoError(t, err)
	eye, err := tensor.Eye[float64](2, backend)
	require.NoError(t, err)
	assert.True(t, id.AllClose(eye, 1e-9, 1e-9))
}

func TestVecDenseShared(t *testing.T) {
	backend := cpu.New()
	v := mat.NewVecDense(3, []float64{1, 2, 3})

	x, err := interop.FromVecDense(v, backend)
	require.NoError(t, err)
	x.Set(10, 0)
	assert.Equal(t, 10.0, v.AtVec(0))

	back, err := interop.ToVecDense(x)
	require.NoError(t, err)
	assert.True(t, mat.Equal(v, back))
}
