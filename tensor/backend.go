// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import "github.com/born-ml/fundamentals/internal/tensor"

// Backend defines the interface that compute backends implement.
//
// Layout-only operations (reshape, squeeze, permute, select) are views and
// never reach a backend. Implementations accept strided inputs, never write
// to their inputs and return new contiguous tensors.
//
// Implementations:
//   - backend/cpu: pure Go, gonum BLAS for matrix products
type Backend = tensor.Backend
