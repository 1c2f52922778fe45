// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import "github.com/born-ml/fundamentals/internal/tensor"

// Errors returned by tensor operations. Match them with errors.Is.
var (
	ErrInvalidShape      = tensor.ErrInvalidShape
	ErrShapeMismatch     = tensor.ErrShapeMismatch
	ErrDeviceUnavailable = tensor.ErrDeviceUnavailable
	ErrDeviceMismatch    = tensor.ErrDeviceMismatch
	ErrNotContiguous     = tensor.ErrNotContiguous
	ErrUnsupportedDType  = tensor.ErrUnsupportedDType
	ErrInvalidDim        = tensor.ErrInvalidDim
	ErrDivisionByZero    = tensor.ErrDivisionByZero
	ErrInvalidSeed       = tensor.ErrInvalidSeed
)
