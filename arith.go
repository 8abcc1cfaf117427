package wide

import "math/bits"

// Word-slice kernels shared by the Uint operators. All of them treat their
// slices as little-endian limb arrays of equal length and leave any masking
// to the caller.

// addN sets z = x + y and returns the carry out of the top word.
// z may alias x or y.
func addN(z, x, y []uint64) (carry uint64) {
	for i := range x {
		z[i], carry = bits.Add64(x[i], y[i], carry)
	}
	return carry
}

// subN sets z = x - y and returns the borrow out of the top word.
// z may alias x or y.
func subN(z, x, y []uint64) (borrow uint64) {
	for i := range x {
		z[i], borrow = bits.Sub64(x[i], y[i], borrow)
	}
	return borrow
}

// mulWord sets z = x * w and returns the carry out of the top word. Every
// limb product is a widening 64x64->128 multiply so nothing is lost before
// the carry is folded in.
func mulWord(z, x []uint64, w uint64) (carry uint64) {
	for i := range x {
		hi, lo := bits.Mul64(x[i], w)
		lo, c := bits.Add64(lo, carry, 0)
		z[i] = lo
		carry = hi + c
	}
	return carry
}

// mulN computes the full double-length schoolbook product of x and y into z.
// len(z) must be len(x)+len(y) and z must be zeroed; z must not alias x or y.
func mulN(z, x, y []uint64) {
	for j := range y {
		d := y[j]
		if d == 0 {
			continue
		}
		var carry uint64
		for i := range x {
			hi, lo := bits.Mul64(x[i], d)
			lo, c1 := bits.Add64(lo, z[i+j], 0)
			lo, c2 := bits.Add64(lo, carry, 0)
			z[i+j] = lo
			carry = hi + c1 + c2
		}
		z[j+len(x)] = carry
	}
}

// divWord divides x by the single word w, storing the quotient in q and
// returning the remainder. Short division: each step divides a two-word
// value by w, so the whole run is a single pass from the top. w must be
// nonzero. q may alias x.
func divWord(q, x []uint64, w uint64) (rem uint64) {
	for i := len(x) - 1; i >= 0; i-- {
		q[i], rem = bits.Div64(rem, x[i], w)
	}
	return rem
}

// shl1 shifts x left by one bit in place and returns the bit shifted out of
// the top word.
func shl1(x []uint64) (out uint64) {
	for i := range x {
		next := x[i] >> 63
		x[i] = x[i]<<1 | out
		out = next
	}
	return out
}

// cmpN compares x and y from the most significant word down.
func cmpN(x, y []uint64) int {
	for i := len(x) - 1; i >= 0; i-- {
		if x[i] != y[i] {
			if x[i] > y[i] {
				return 1
			}
			return -1
		}
	}
	return 0
}
