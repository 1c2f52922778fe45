// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/born-ml/fundamentals/internal/tensor"
)

// RawTensor is the low-level tensor representation: shape, strides and an
// element offset over shared storage.
//
// Most users should use the high-level Tensor[T, B] type instead.
//
// Example:
//
//	raw, _ := tensor.NewRaw(tensor.Shape{2, 3}, tensor.Float32, tensor.CPU)
//	data := raw.AsFloat32() // zero-copy access
//	clone := raw.Clone()    // independent copy
type RawTensor = tensor.RawTensor

// Wrap builds a CPU RawTensor over data without copying. strides and offset
// are in elements; nil strides means row-major.
func Wrap[T DType](data []T, shape Shape, strides []int, offset int) (*RawTensor, error) {
	return tensor.Wrap(data, shape, strides, offset)
}
