// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides a pure Go CPU backend for tensor operations.
//
// # Overview
//
//   - Element-wise arithmetic with NumPy-compatible broadcasting
//   - Matrix multiplication through gonum's BLAS (float32, float64)
//   - Strided inputs, so views are computed on without copying
//   - Large kernels split across goroutines
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
//	    x, _ := tensor.FromSlice([]float32{1, 2, 3}, tensor.Shape{3}, backend)
//	    y, _ := x.Mul(x)    // [1, 4, 9]
//	    d, _ := x.MatMul(x) // 14
//	}
//
// # Thread Safety
//
// The CPU backend is safe for concurrent use. Each tensor operation
// is isolated and does not share mutable state.
package cpu
