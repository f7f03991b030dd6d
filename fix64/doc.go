// Frame-synchronized ("lockstep") simulations only exchange player
// inputs, so every participant must derive bit-identical state from
// those inputs on its own. Native floating point can't guarantee that:
// rounding and instruction selection vary across hardware and
// compilers. Fixed point arithmetic over plain integers can — and
// that's what brings us to this subpackage.
//
// The fix64 subpackage defines a [Value] type representing a 32.32
// fixed point number and provides the arithmetic, comparison and
// conversion operations needed to run a deterministic simulation,
// including NaN and infinity semantics modeled after floating point
// and fixed-iteration approximations for [Value.Sqrt](), [Value.Sin]()
// and [Value.Cos](). Additionally, the subpackage also defines the
// [Point] helper type.
//
// Other fixed point Golang packages tend to depend on
// [golang.org/x/image/math/fixed] instead, but those formats don't
// reserve special values nor cover division and the approximation
// functions; conversions to interoperate with them are still provided.
package fix64
