package tensor

// Backend computes tensor operations. Layout-only operations (reshape,
// squeeze, permute, select) are views handled by RawTensor and never reach a
// backend.
//
// Implementations must accept strided (non-contiguous) inputs and must not
// write to their inputs. Results are new, contiguous tensors on the device of
// the first operand.
type Backend interface {
	// Element-wise binary operations with NumPy-style broadcasting.
	Add(a, b *RawTensor) (*RawTensor, error)
	Sub(a, b *RawTensor) (*RawTensor, error)
	Mul(a, b *RawTensor) (*RawTensor, error)
	Div(a, b *RawTensor) (*RawTensor, error)

	// Element-wise operations with a scalar, converted to the tensor's dtype.
	AddScalar(x *RawTensor, scalar float64) (*RawTensor, error)
	SubScalar(x *RawTensor, scalar float64) (*RawTensor, error)
	MulScalar(x *RawTensor, scalar float64) (*RawTensor, error)
	DivScalar(x *RawTensor, scalar float64) (*RawTensor, error)

	// MatMul supports 1-D·1-D (dot), 2-D@1-D, 1-D@2-D and 2-D@2-D.
	MatMul(a, b *RawTensor) (*RawTensor, error)

	// Whole-tensor reductions producing 0-D tensors. Argmin/Argmax return
	// the flat row-major index as int64.
	Sum(x *RawTensor) (*RawTensor, error)
	Mean(x *RawTensor) (*RawTensor, error)
	Min(x *RawTensor) (*RawTensor, error)
	Max(x *RawTensor) (*RawTensor, error)
	Argmin(x *RawTensor) (*RawTensor, error)
	Argmax(x *RawTensor) (*RawTensor, error)

	// Combination.
	Stack(tensors []*RawTensor, dim int) (*RawTensor, error)
	Cat(tensors []*RawTensor, dim int) (*RawTensor, error)

	// Cast converts to another data type.
	Cast(x *RawTensor, dtype DataType) (*RawTensor, error)

	// DeviceCount reports how many devices of the given kind are present.
	DeviceCount(device Device) int

	// Metadata
	Name() string
	Device() Device
}
