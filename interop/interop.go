// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package interop converts tensors to and from gonum arrays without copying.
//
// The gonum value and the tensor share memory: writes through one are
// visible through the other.
//
// Example:
//
//	x, _ := tensor.FromSlice([]float64{1, 2, 3, 4}, tensor.Shape{2, 2}, backend)
//	d, _ := interop.ToDense(x)
//	var inv mat.Dense
//	_ = inv.Inverse(d)
//	y, _ := interop.FromDense(&inv, backend)
package interop

import (
	"gonum.org/v1/gonum/blas/blas32"
	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/fundamentals/internal/interop"
	"github.com/born-ml/fundamentals/tensor"
)

// ToDense exposes a 2-D float64 CPU tensor as a *mat.Dense.
func ToDense[B tensor.Backend](t *tensor.Tensor[float64, B]) (*mat.Dense, error) {
	return interop.ToDense(t)
}

// FromDense wraps d as a (rows, cols) tensor.
func FromDense[B tensor.Backend](d *mat.Dense, b B) (*tensor.Tensor[float64, B], error) {
	return interop.FromDense(d, b)
}

// ToVecDense exposes a 1-D float64 CPU tensor as a *mat.VecDense.
func ToVecDense[B tensor.Backend](t *tensor.Tensor[float64, B]) (*mat.VecDense, error) {
	return interop.ToVecDense(t)
}

// FromVecDense wraps v as a 1-D tensor.
func FromVecDense[B tensor.Backend](v *mat.VecDense, b B) (*tensor.Tensor[float64, B], error) {
	return interop.FromVecDense(v, b)
}

// ToGeneral32 exposes a 2-D float32 CPU tensor as a blas32.General.
func ToGeneral32[B tensor.Backend](t *tensor.Tensor[float32, B]) (blas32.General, error) {
	return interop.ToGeneral32(t)
}

// FromGeneral32 wraps g as a (rows, cols) float32 tensor.
func FromGeneral32[B tensor.Backend](g blas32.General, b B) (*tensor.Tensor[float32, B], error) {
	return interop.FromGeneral32(g, b)
}
