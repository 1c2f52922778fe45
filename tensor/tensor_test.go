// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/fundamentals/backend/cpu"
	"github.com/born-ml/fundamentals/tensor"
)

// TestBackendInterface verifies that cpu.Backend implements tensor.Backend.
func TestBackendInterface(_ *testing.T) {
	var _ tensor.Backend = (*cpu.Backend)(nil)
}

func TestSeededUniformIsReproducible(t *testing.T) {
	backend := cpu.New()
	gen, err := tensor.NewGenerator(42)
	require.NoError(t, err)

	a, err := tensor.Uniform(gen, tensor.Shape{3, 4}, backend)
	require.NoError(t, err)
	require.NoError(t, gen.ManualSeed(42))
	b, err := tensor.Uniform(gen, tensor.Shape{3, 4}, backend)
	require.NoError(t, err)

	assert.True(t, a.Equal(b))
}

func TestGeneratorStateRoundTrip(t *testing.T) {
	backend := cpu.New()
	gen := tensor.NewDefaultGenerator()
	assert.Equal(t, int64(tensor.DefaultSeed), gen.InitialSeed())

	_, err := tensor.Uniform(gen, tensor.Shape{5}, backend)
	require.NoError(t, err)
	state := gen.State()

	a, err := tensor.Randn[float64](gen, tensor.Shape{4}, backend)
	require.NoError(t, err)
	require.NoError(t, gen.SetState(state))
	b, err := tensor.Randn[float64](gen, tensor.Shape{4}, backend)
	require.NoError(t, err)
	assert.True(t, a.Equal(b))
}

func TestPublicErrors(t *testing.T) {
	backend := cpu.New()

	_, err := tensor.NewGenerator(-1)
	assert.ErrorIs(t, err, tensor.ErrInvalidSeed)

	_, err = tensor.Zeros[float32](tensor.Shape{2, 0}, backend)
	assert.ErrorIs(t, err, tensor.ErrInvalidShape)

	a, err := tensor.Ones[float32](tensor.Shape{2, 3}, backend)
	require.NoError(t, err)
	_, err = a.MatMul(a)
	assert.ErrorIs(t, err, tensor.ErrShapeMismatch)

	_, err = tensor.BroadcastShapes(tensor.Shape{2}, tensor.Shape{3})
	assert.ErrorIs(t, err, tensor.ErrShapeMismatch)
}

func TestRawTensorAPI(t *testing.T) {
	raw, err := tensor.NewRaw(tensor.Shape{2, 3}, tensor.Float32, tensor.CPU)
	require.NoError(t, err)

	assert.Equal(t, tensor.Shape{2, 3}, raw.Shape())
	assert.Equal(t, tensor.Float32, raw.DType())
	assert.Equal(t, tensor.CPU, raw.Device())
	assert.Equal(t, 6, raw.NumElements())
	assert.Equal(t, 6*4, raw.ByteSize())

	clone := raw.Clone()
	clone.AsFloat32()[0] = 1
	assert.Equal(t, float32(0), raw.AsFloat32()[0])

	data := []int64{1, 2, 3, 4}
	wrapped, err := tensor.Wrap(data, tensor.Shape{2, 2}, nil, 0)
	require.NoError(t, err)
	x := tensor.New[int64](wrapped, cpu.New())
	x.Set(9, 1, 1)
	assert.Equal(t, int64(9), data[3])
}

func TestCastAndStack(t *testing.T) {
	backend := cpu.New()
	x, err := tensor.Arange[int32](0, 3, backend)
	require.NoError(t, err)

	f, err := tensor.Cast[float64](x)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1, 2}, f.Data())

	s, err := tensor.Stack([]*tensor.Tensor[float64, *cpu.Backend]{f, f}, 1)
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{3, 2}, s.Shape())
	assert.Equal(t, []float64{0, 0, 1, 1, 2, 2}, s.Data())
}
