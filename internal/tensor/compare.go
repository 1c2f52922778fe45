package tensor

import (
	"math"

	"github.com/x448/float16"
)

// Equal reports whether t and other have the same shape, dtype and values.
// NaN never equals NaN and +0 equals -0, for every float dtype.
func (t *Tensor[T, B]) Equal(other *Tensor[T, B]) bool {
	if !t.Shape().Equal(other.Shape()) {
		return false
	}
	a, b := t.Values(), other.Values()
	if _, half := any(a).([]float16.Float16); half {
		// Float16 is a uint16 bit pattern; compare the values it encodes.
		for i := range a {
			if ToFloat64(a[i]) != ToFloat64(b[i]) {
				return false
			}
		}
		return true
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// AllClose reports whether shapes match and |a-b| <= atol + rtol*|b| holds
// for every element pair.
func (t *Tensor[T, B]) AllClose(other *Tensor[T, B], rtol, atol float64) bool {
	if !t.Shape().Equal(other.Shape()) {
		return false
	}
	a, b := t.Values(), other.Values()
	for i := range a {
		x, y := ToFloat64(a[i]), ToFloat64(b[i])
		if x == y {
			continue
		}
		if d := math.Abs(x - y); math.IsNaN(d) || d > atol+rtol*math.Abs(y) {
			return false
		}
	}
	return true
}
