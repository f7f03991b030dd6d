package fix64

// Returns the sum of the two values. Adding infinities of opposite
// sign gives NaN. The finite path is plain integer addition, so
// results past MaxValue or MinValue wrap around silently.
func (self Value) Add(other Value) Value {
	if self == NaN || other == NaN { return NaN }
	if self == PositiveInfinity {
		if other == NegativeInfinity { return NaN }
		return PositiveInfinity
	}
	if self == NegativeInfinity {
		if other == PositiveInfinity { return NaN }
		return NegativeInfinity
	}
	if other == PositiveInfinity { return PositiveInfinity }
	if other == NegativeInfinity { return NegativeInfinity }
	return self + other
}

// Returns the difference of the two values. Subtracting an infinity
// from an infinity of the same sign gives NaN. Like [Value.Add](),
// the finite path wraps around silently on overflow.
func (self Value) Sub(other Value) Value {
	if self == NaN || other == NaN { return NaN }
	if self == PositiveInfinity {
		if other == PositiveInfinity { return NaN }
		return PositiveInfinity
	}
	if self == NegativeInfinity {
		if other == NegativeInfinity { return NaN }
		return NegativeInfinity
	}
	if other == PositiveInfinity { return NegativeInfinity }
	if other == NegativeInfinity { return PositiveInfinity }
	return self - other
}

// Returns the value with its sign flipped. The sentinel encodings are
// negation-stable, so infinities land on their opposite sentinel
// through plain integer negation.
func (self Value) Neg() Value {
	if self == NaN { return NaN }
	return -self
}

// Returns the magnitude of the value. Infinities become
// PositiveInfinity.
func (self Value) Abs() Value {
	if self == NaN { return NaN }
	if self < Zero { return -self }
	return self
}

// Returns the remainder of dividing the two raw encodings, with the
// sign following the dividend. Mod by Zero panics like native integer
// division.
func (self Value) Mod(other Value) Value {
	if self == NaN || other == NaN { return NaN }
	return self % other
}

// Returns the product of the two values. Zero times an infinity gives
// NaN; an infinity times anything else nonzero gives an infinity with
// the combined sign.
//
// The finite path splits each operand into integer and fractional
// halves so that no intermediate product overflows 64 bits the way a
// naive "multiply raws, then shift" would.
func (self Value) Mul(other Value) Value {
	if self == NaN || other == NaN { return NaN }
	if self.IsInfinite() || other.IsInfinite() {
		if self == Zero || other == Zero { return NaN }
		if (self < Zero) == (other < Zero) { return PositiveInfinity }
		return NegativeInfinity
	}

	ia := int64(self) >> 32 // arithmetic shift, keeps the sign
	fa := uint64(self) & 0xFFFFFFFF
	ib := int64(other) >> 32
	fb := uint64(other) & 0xFFFFFFFF
	return Value(int64((fa*fb)>>32) + int64(fa)*ib + int64(fb)*ia + (ia*ib)<<32)
}

// Returns the quotient of the two values. Zero divided by Zero or an
// infinity divided by an infinity gives NaN; any other value divided
// by Zero gives an infinity with the combined sign; a finite value
// divided by an infinity gives Zero.
//
// The finite path runs a restoring binary long division over the
// unsigned magnitudes: 96 iterations, one per bit of the dividend
// extended by the 32 fractional bits, which leaves the quotient
// already scaled by 2^32.
func (self Value) Div(other Value) Value {
	if self == NaN || other == NaN { return NaN }
	if self == Zero && other == Zero { return NaN }
	sameSign := (self < Zero) == (other < Zero)
	if self.IsInfinite() {
		if other.IsInfinite() { return NaN }
		if sameSign { return PositiveInfinity }
		return NegativeInfinity
	}
	if other.IsInfinite() { return Zero }
	if other == Zero {
		if sameSign { return PositiveInfinity }
		return NegativeInfinity
	}

	dividend := uint64(self)
	if self < Zero { dividend = uint64(-int64(self)) }
	divisor := uint64(other)
	if other < Zero { divisor = uint64(-int64(other)) }

	var rem, quo uint64
	for i := 0; i < 96; i++ {
		quo <<= 1
		rem = (rem << 1) | (dividend >> 63)
		dividend <<= 1
		if rem >= divisor {
			rem -= divisor
			quo |= 1
		}
	}

	if sameSign { return Value(quo) }
	return Value(-int64(quo))
}

// Returns the smaller of the two values, or NaN if either is NaN.
func (self Value) Min(other Value) Value {
	if self == NaN || other == NaN { return NaN }
	if self < other { return self }
	return other
}

// Returns the bigger of the two values, or NaN if either is NaN.
func (self Value) Max(other Value) Value {
	if self == NaN || other == NaN { return NaN }
	if self > other { return self }
	return other
}

// Returns the value limited to the [min, max] range. NaN anywhere
// gives NaN.
func (self Value) Clamp(min, max Value) Value {
	if self == NaN || min == NaN || max == NaN { return NaN }
	if self < min { return min }
	if self > max { return max }
	return self
}

// Returns the biggest whole value smaller or equal to the current
// one. Non-finite values are returned unchanged.
func (self Value) Floor() Value {
	if !self.IsFinite() { return self }
	return self & ^0xFFFFFFFF
}

// Returns the smallest whole value bigger or equal to the current
// one. Non-finite values are returned unchanged.
func (self Value) Ceil() Value {
	if !self.IsFinite() { return self }
	return (self + 0xFFFFFFFF).Floor()
}
