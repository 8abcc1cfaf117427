/*
Package wide provides Uint, a fixed-width unsigned integer of arbitrary
bit width, with the wrapping semantics of Go's native unsigned types.

A Uint carries its width with it: New(256) gives you a 256-bit zero, and
every arithmetic, bitwise and comparison operation on that value wraps
modulo 2^256 exactly the way a uint64 wraps modulo 2^64. The width does
not have to be a multiple of the word size; New(73) works just as well.

Uint is a value type; all operations return new values.

Simple example:

	a, _ := wide.FromUint64(256, 1000)
	b, _ := wide.FromUint64(256, 1000)
	fmt.Println(a.Mul(b))
	// Output: 1000000

Uint values can be created from a variety of sources:

	New(bits uint) Uint
	Max(bits uint) Uint
	FromUint64(bits uint, v uint64) (out Uint, exact bool)
	FromUint[T constraints.Unsigned](bits uint, v T) (out Uint, exact bool)
	TruncateUint64(bits uint, v uint64) Uint
	FromString(bits uint, s string, base int) (Uint, error)
	FromBigInt(bits uint, v *big.Int) (out Uint, accurate bool)
	FromUint256(bits uint, v *uint256.Int) (out Uint, exact bool)
	Rand(bits uint, source RandSource) Uint

Uint supports the following formatting and marshalling interfaces:

	- fmt.Formatter
	- fmt.Stringer
	- json.Marshaler
	- json.Unmarshaler
	- encoding.TextMarshaler
	- encoding.TextUnmarshaler

Binary operations require both operands to have the same width; mixing
widths is a bug in the caller and panics, the same way an out-of-range
slice index does. Convert explicitly if you need to cross widths.

Division and modulo by zero panic with ErrDivideByZero. Overflow is
never an error anywhere in this package; it is defined wraparound.
*/
package wide
