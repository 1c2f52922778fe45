// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/born-ml/fundamentals/internal/random"
	"github.com/born-ml/fundamentals/internal/tensor"
)

// Generator is a seeded random stream. Every random tensor is drawn from an
// explicit Generator; there is no package-level random state.
//
// A Generator is not safe for concurrent use. Use Fork to give each
// goroutine its own stream.
type Generator = random.Generator

// GeneratorState is a snapshot of a Generator that SetState can restore.
type GeneratorState = random.State

// DefaultSeed is the seed used by NewDefaultGenerator.
const DefaultSeed = random.DefaultSeed

// NewGenerator creates a generator seeded with seed. Negative seeds fail
// with ErrInvalidSeed.
func NewGenerator(seed int64) (*Generator, error) {
	return tensor.NewGenerator(seed)
}

// NewDefaultGenerator creates a generator seeded with DefaultSeed.
func NewDefaultGenerator() *Generator {
	return random.NewDefault()
}

// Uniform creates a float32 tensor of values drawn uniformly from [0, 1).
//
// Example:
//
//	gen, _ := tensor.NewGenerator(42)
//	x, err := tensor.Uniform(gen, tensor.Shape{3, 4}, backend)
func Uniform[B Backend](gen *Generator, shape Shape, b B) (*Tensor[float32, B], error) {
	return tensor.Uniform(gen, shape, b)
}

// Rand creates a tensor of values drawn uniformly from [0, 1). T must be a
// floating point type.
func Rand[T DType, B Backend](gen *Generator, shape Shape, b B) (*Tensor[T, B], error) {
	return tensor.Rand[T](gen, shape, b)
}

// RandLike creates a uniform tensor with the shape and device of t.
func RandLike[T DType, B Backend](gen *Generator, t *Tensor[T, B]) (*Tensor[T, B], error) {
	return tensor.RandLike(gen, t)
}

// Randn creates a tensor of standard normal values N(0, 1).
func Randn[T DType, B Backend](gen *Generator, shape Shape, b B) (*Tensor[T, B], error) {
	return tensor.Randn[T](gen, shape, b)
}
