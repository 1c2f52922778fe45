package tensor

import "fmt"

// To moves the tensor to device.
//
// Moving to the device the tensor is already on returns t itself. Moving to
// an accelerator that the backend reports as absent fails with
// ErrDeviceUnavailable. Any other move is an explicit copy, so the result
// never shares storage with t.
//
// Example:
//
//	dev := accel.Default()
//	x, err := x.To(dev)
func (t *Tensor[T, B]) To(device Device) (*Tensor[T, B], error) {
	if device == t.Device() {
		return t, nil
	}
	if device.IsAccelerator() && t.backend.DeviceCount(device) == 0 {
		return nil, fmt.Errorf("to %s: %w", device, ErrDeviceUnavailable)
	}
	return New[T, B](t.raw.CloneTo(device), t.backend), nil
}

// CPU copies the tensor to local memory. A CPU tensor is returned as is.
func (t *Tensor[T, B]) CPU() *Tensor[T, B] {
	if t.Device() == CPU {
		return t
	}
	return New[T, B](t.raw.CloneTo(CPU), t.backend)
}
