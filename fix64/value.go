package fix64

import "strconv"

// Fixed point type to represent fractional values in deterministic
// simulations.
//
// 32 bits represent the integer part of the value (bit 63 being the
// sign), while the remaining 32 bits represent the decimal part, so
// the represented value is raw/2^32. For an intuitive understanding,
// if you can understand that var ms Millis = 1000 is storing the
// equivalent to 1 second, with Value, instead of thousandths of a
// value, you are storing 4294967296ths.
//
// A few raw encodings are reserved for [NaN], [PositiveInfinity] and
// [NegativeInfinity]. Native ==, < and similar operators on Value
// compare raw encodings directly and don't know about NaN; use
// [Value.Equal](), [Value.Less]() and friends instead.
type Value int64

// Creates a Value directly from its raw encoding. No validation is
// performed: sentinel and out-of-range encodings are legal inputs.
func FromRaw(raw int64) Value { return Value(raw) }

// Returns the raw encoding of the value. Producer and consumer must
// preserve it bit for bit for determinism to hold.
func (self Value) Raw() int64 { return int64(self) }

// Returns whether the value is the NaN sentinel.
func (self Value) IsNaN() bool { return self == NaN }

// Returns whether the value is one of the two infinity sentinels.
func (self Value) IsInfinite() bool {
	return self == PositiveInfinity || self == NegativeInfinity
}

// Returns whether the value is an ordinary finite number.
func (self Value) IsFinite() bool { return !self.IsNaN() && !self.IsInfinite() }

// Returns whether the value is a whole number. Always false for
// non-finite values.
func (self Value) IsWhole() bool {
	return self.IsFinite() && self & 0xFFFFFFFF == 0
}

// Returns only the fractional part of the value, with the sign of
// the value itself. Non-finite values are returned unchanged.
func (self Value) Fract() Value {
	if !self.IsFinite() { return self }
	return self % One
}

// Comparison following floating point rules: false whenever either
// operand is NaN, even if both are. Infinities order correctly
// against finite values.
func (self Value) Equal(other Value) bool {
	if self == NaN || other == NaN { return false }
	return self == other
}

// The logical negation of [Value.Equal](), so NaN is "not equal"
// to everything, including itself.
func (self Value) NotEqual(other Value) bool {
	return !self.Equal(other)
}

// False whenever either operand is NaN.
func (self Value) Less(other Value) bool {
	if self == NaN || other == NaN { return false }
	return self < other
}

// False whenever either operand is NaN.
func (self Value) LessOrEqual(other Value) bool {
	if self == NaN || other == NaN { return false }
	return self <= other
}

// False whenever either operand is NaN.
func (self Value) Greater(other Value) bool {
	if self == NaN || other == NaN { return false }
	return self > other
}

// False whenever either operand is NaN.
func (self Value) GreaterOrEqual(other Value) bool {
	if self == NaN || other == NaN { return false }
	return self >= other
}

// Returns a textual representation of the value (e.g.: "2.5", "NaN").
func (self Value) String() string {
	switch self {
	case NaN: return "NaN"
	case PositiveInfinity: return "+Inf"
	case NegativeInfinity: return "-Inf"
	}
	return strconv.FormatFloat(self.ToFloat64(), 'f', -1, 64)
}
