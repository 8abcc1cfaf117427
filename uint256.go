package wide

import "github.com/holiman/uint256"

// Interop with github.com/holiman/uint256, the fixed 256-bit integer used
// throughout the Ethereum ecosystem. Handy when a Uint holds a balance-like
// quantity that needs to cross into code speaking uint256.

// FromUint256 creates a Uint of the given width from a uint256.Int. If the
// value does not fit, the result saturates to Max(bits) and exact is false.
func FromUint256(bits uint, v *uint256.Int) (out Uint, exact bool) {
	checkBits(bits)
	out.bits = bits
	n := wordsFor(bits)

	for i := 0; i < len(v); i++ {
		if i >= n {
			if v[i] != 0 {
				return Max(bits), false
			}
			continue
		}
		out.words[i] = v[i]
	}

	top := n - 1
	if len(v) > top && out.words[top]&^topMask(bits) != 0 {
		return Max(bits), false
	}
	return out, true
}

// AsUint256 truncates u to its low 256 bits.
func (u Uint) AsUint256() *uint256.Int {
	var z uint256.Int
	n := wordsFor(u.bits)
	if n > len(z) {
		n = len(z)
	}
	for i := 0; i < n; i++ {
		z[i] = u.words[i]
	}
	return &z
}
