// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides seeded random tensors and the tensor basics they
// are built from: dtypes, devices, element-wise arithmetic, matrix
// multiplication and views that share storage.
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/fundamentals/backend/cpu"
//	    "github.com/born-ml/fundamentals/tensor"
//	)
//
//	func main() {
//	    backend := cpu.New()
//	    gen, _ := tensor.NewGenerator(42)
//
//	    a, _ := tensor.Uniform(gen, tensor.Shape{3, 4}, backend)
//	    b, _ := tensor.Uniform(gen, tensor.Shape{4, 2}, backend)
//	    c, _ := a.MatMul(b) // (3, 2)
//	}
//
// # Reproducibility
//
// Random tensors are drawn from an explicit Generator. Reseeding a
// generator with ManualSeed restarts its stream, so the same seed, shape and
// dtype always give the same tensor:
//
//	_ = gen.ManualSeed(42)
//	a, _ := tensor.Uniform(gen, tensor.Shape{3, 4}, backend)
//	_ = gen.ManualSeed(42)
//	b, _ := tensor.Uniform(gen, tensor.Shape{3, 4}, backend)
//	a.Equal(b) // true
//
// # Supported Data Types
//
//   - float32 (default), float64, float16 (github.com/x448/float16)
//   - int8, int32, int64, uint8
//   - bool
//
// # Views
//
// View, Reshape, Squeeze, Unsqueeze, Permute, Transpose, T, Select and
// Narrow return tensors that share storage with their source. A write
// through any of them is visible through all of them. Clone makes an
// independent copy.
//
// # Devices
//
// Tensors carry the device their memory lives on. To moves a tensor
// between devices and fails with ErrDeviceUnavailable when the target
// accelerator is absent; binary operations on tensors from different
// devices fail with ErrDeviceMismatch.
//
// # Broadcasting
//
// Element-wise operations follow NumPy broadcasting rules:
//
//	a, _ := tensor.Zeros[float32](tensor.Shape{3, 1}, backend) // (3, 1)
//	b, _ := tensor.Ones[float32](tensor.Shape{3, 4}, backend)  // (3, 4)
//	c, _ := a.Add(b)                                            // (3, 4)
package tensor
