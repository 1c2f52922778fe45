package accel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/fundamentals/internal/tensor"
)

func TestCount_CPUAlwaysPresent(t *testing.T) {
	assert.Equal(t, 1, Count(tensor.CPU))
	assert.True(t, Available(tensor.CPU))
}

func TestCount_OtherAcceleratorsAbsent(t *testing.T) {
	for _, d := range []tensor.Device{tensor.CUDA, tensor.Metal, tensor.Vulkan} {
		assert.Zerof(t, Count(d), "%s", d)
	}
}

func TestDefault_MatchesAvailability(t *testing.T) {
	d := Default()
	if d == tensor.CPU {
		assert.False(t, Available(tensor.WebGPU))
		return
	}
	assert.True(t, Available(d))
}

func TestResolve(t *testing.T) {
	d, err := Resolve("cpu")
	require.NoError(t, err)
	assert.Equal(t, tensor.CPU, d)

	d, err = Resolve("auto")
	require.NoError(t, err)
	assert.Equal(t, Default(), d)

	_, err = Resolve("cuda")
	assert.ErrorIs(t, err, tensor.ErrDeviceUnavailable)

	_, err = Resolve("tpu")
	assert.Error(t, err)
}

func TestCount_WebGPUMatchesAdapterQuery(t *testing.T) {
	n := webgpuAdapters()
	assert.Contains(t, []int{0, 1}, n)
	assert.Equal(t, n, Count(tensor.WebGPU))
}
