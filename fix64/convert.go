package fix64

import "math"

import "golang.org/x/exp/constraints"
import "golang.org/x/image/math/fixed"

// Fast conversion from a signed integer to [Value]. If the integer is
// not representable within the finite range, the raw encoding wraps
// around silently; check [MinValue].ToInt() <= value <= [MaxValue].ToInt()
// if you need to account for overflows.
func FromInt[T constraints.Signed](value T) Value {
	return Value(int64(value) << 32)
}

// Converts a float64 to the [Value] truncated toward zero. Doesn't
// account for NaNs, infinites nor overflows.
//
// This is the single place where determinism can break: the scaling
// multiplication is native floating point, so feed it literals and
// values of deterministic origin only, never results of upstream
// floating point computation.
func FromFloat64(value float64) Value {
	return Value(int64(value * 4294967296.0))
}

// Generic form of [FromFloat64] for any floating point kind. The same
// determinism warning applies.
func FromFloat[T constraints.Float](value T) Value {
	return FromFloat64(float64(value))
}

// Converts the value to its float64 representation. NaN becomes the
// native floating point NaN; any other raw encoding, the infinity
// sentinels included, is divided by 2^32.
func (self Value) ToFloat64() float64 {
	if self == NaN { return math.NaN() }
	return float64(self)/4294967296.0
}

// Like [Value.ToFloat64](), with a final conversion to float32.
func (self Value) ToFloat32() float32 {
	return float32(self.ToFloat64())
}

// Returns the integer part of the value, truncated toward zero.
// Panics on NaN: there is no integer to return and continuing would
// mean inventing one.
func (self Value) ToInt() int {
	if self == NaN { panic("can't convert NaN to int") }
	return int(int64(self) / 4294967296)
}

// Returns the value rounded to the nearest integer, halves away from
// zero. The fractional magnitude of a negative value is recovered by
// two's complement negation, not by masking the raw fraction bits,
// which for negative encodings don't represent the magnitude
// directly. Panics on NaN like [Value.ToInt]().
func (self Value) ToIntRound() int {
	if self == NaN { panic("can't convert NaN to int") }
	whole := int64(self) / 4294967296
	raw := int64(self)
	if raw < 0 { raw = -raw }
	if uint64(raw) & 0xFFFFFFFF >= uint64(Half) {
		if self >= 0 {
			whole++
		} else {
			whole--
		}
	}
	return int(whole)
}

// Conversions between Value and the golang.org/x/image/math/fixed
// formats, for interoperating with rendering code. They truncate or
// extend the fractional width by plain shifting and don't account for
// NaNs, infinites nor overflows.

// Converts the value to its [fixed.Int52_12] representation, rounding
// down to the coarser fractional precision.
func (self Value) ToInt52_12() fixed.Int52_12 {
	return fixed.Int52_12(int64(self) >> 20)
}

// Converts the value to its [fixed.Int26_6] representation, rounding
// down to the coarser fractional precision.
func (self Value) ToInt26_6() fixed.Int26_6 {
	return fixed.Int26_6(int64(self) >> 26)
}

// Exact conversion from a [fixed.Int52_12] to a [Value].
func FromInt52_12(value fixed.Int52_12) Value {
	return Value(int64(value) << 20)
}

// Exact conversion from a [fixed.Int26_6] to a [Value].
func FromInt26_6(value fixed.Int26_6) Value {
	return Value(int64(value) << 26)
}
