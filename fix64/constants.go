package fix64

import "math"

// Reserved raw encodings for the special values. Every other raw
// encoding represents an ordinary finite number. The infinity pair
// is negation-stable (-NegativeInfinity == PositiveInfinity under
// plain integer negation), and so is the MinValue/MaxValue pair.
const (
	NaN Value = math.MinInt64
	NegativeInfinity Value = math.MinInt64 + 1
	PositiveInfinity Value = math.MaxInt64
	MaxValue Value = math.MaxInt64 - 1 // largest finite value
	MinValue Value = math.MinInt64 + 2 // smallest finite value
)

// Basic constants.
const (
	Zero Value = 0
	One Value = 1 << 32 // fix64.One.ToInt() == 1
	Half Value = 1 << 31
	Precision Value = 1 // 2^-32, the smallest nonzero magnitude
)

// Constants derived from float literals through [FromFloat64]. Pi uses
// a fixed decimal approximation instead of the closest representable
// value so that the encoding never depends on the platform's idea of
// math.Pi. Initialized once before use and never mutated.
var (
	Pi = FromFloat64(3.1415926)
	HalfPi = Pi.Mul(Half)
	TwoPi = Pi.Add(Pi)
	Rad2Deg = FromFloat64(57.29578)
	Deg2Rad = FromFloat64(0.01745329)
)
