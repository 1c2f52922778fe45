package tensor

import (
	"errors"

	"github.com/born-ml/fundamentals/internal/random"
)

// Sentinel errors returned by tensor operations. Callers match them with
// errors.Is; the returned errors wrap them with the failing operation.
var (
	// ErrInvalidShape is returned when a shape has a non-positive dimension
	// or does not match the number of supplied elements.
	ErrInvalidShape = errors.New("tensor: invalid shape")

	// ErrShapeMismatch is returned when operand shapes are incompatible,
	// e.g. disagreeing inner dimensions in MatMul or non-broadcastable shapes.
	ErrShapeMismatch = errors.New("tensor: shape mismatch")

	// ErrDeviceUnavailable is returned when a transfer targets an accelerator
	// that is not present. Callers fall back to CPU.
	ErrDeviceUnavailable = errors.New("tensor: device unavailable")

	// ErrDeviceMismatch is returned when operands live on different devices,
	// or when local memory is required and the tensor is on an accelerator.
	ErrDeviceMismatch = errors.New("tensor: device mismatch")

	// ErrNotContiguous is returned by View when the strides cannot express
	// the requested shape without copying.
	ErrNotContiguous = errors.New("tensor: not contiguous")

	// ErrUnsupportedDType is returned when an operation is not defined for
	// the tensor's data type.
	ErrUnsupportedDType = errors.New("tensor: unsupported dtype")

	// ErrInvalidDim is returned for out-of-range dimensions or indices.
	ErrInvalidDim = errors.New("tensor: invalid dimension")

	// ErrDivisionByZero is returned by integer division with a zero divisor.
	ErrDivisionByZero = errors.New("tensor: integer division by zero")

	// ErrInvalidSeed is returned when a generator seed is negative.
	ErrInvalidSeed = random.ErrInvalidSeed
)
