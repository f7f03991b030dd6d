package fix64

// Returns the value raised to a non-negative integer exponent through
// exponentiation by squaring, which is exact (up to [Value.Mul]
// truncation) rather than approximate. A negative exponent panics;
// NaN raised to anything, Pow(0) included, is NaN.
func (self Value) Pow(exp int) Value {
	if exp < 0 { panic("can't raise a fixed point value to a negative power") }
	if self == NaN { return NaN }
	if exp == 0 { return One }
	if exp == 1 { return self }
	half := self.Pow(exp / 2)
	if exp % 2 == 0 { return half.Mul(half) }
	return half.Mul(half).Mul(self)
}

// Returns an approximation of the square root of the value: exactly
// 10 Newton-Raphson iterations from the seed self*Half, no early
// exit. The fixed iteration count and seed are part of the contract;
// changing either would change result bit patterns across peers.
// Panics on negative input (the infinities' encodings order like
// their signs, so NegativeInfinity panics too); NaN gives NaN.
func (self Value) Sqrt() Value {
	if self == NaN { return NaN }
	if self == Zero { return Zero }
	if self < Zero { panic("can't take the square root of a negative value") }

	r := self.Mul(Half)
	for i := 0; i < 10; i++ {
		r = r.Sub(r.Mul(r).Sub(self).Div(r.Add(r)))
	}
	return r
}

// Returns an approximation of the sine of the value, in radians:
// exactly 10 terms of the Taylor series around zero, with the running
// power and factorial accumulated term by term. No range reduction is
// performed, so accuracy degrades as the input magnitude grows past a
// few radians. NaN gives NaN.
func (self Value) Sin() Value {
	if self == NaN { return NaN }

	result := Zero
	power := One // self^i
	factorial := int64(1) // i!
	for i := 0; i < 10; i++ {
		switch i % 4 {
		case 1:
			result = result.Add(power.Div(FromInt(factorial)))
		case 3:
			result = result.Sub(power.Div(FromInt(factorial)))
		}
		power = power.Mul(self)
		factorial *= int64(i + 1)
	}
	return result
}

// Returns an approximation of the cosine of the value, in radians.
// Same series evaluation and caveats as [Value.Sin](), with the even
// terms contributing instead of the odd ones.
func (self Value) Cos() Value {
	if self == NaN { return NaN }

	result := Zero
	power := One
	factorial := int64(1)
	for i := 0; i < 10; i++ {
		switch i % 4 {
		case 0:
			result = result.Add(power.Div(FromInt(factorial)))
		case 2:
			result = result.Sub(power.Div(FromInt(factorial)))
		}
		power = power.Mul(self)
		factorial *= int64(i + 1)
	}
	return result
}

// Returns the tangent of the value as Sin/Div(Cos). There is no
// special casing around cosine zeros beyond what [Value.Div]'s
// infinity rules already provide.
func (self Value) Tan() Value {
	return self.Sin().Div(self.Cos())
}
