package wide

import (
	"fmt"
	"math/big"
	"math/bits"
	"strconv"

	"golang.org/x/exp/constraints"
)

// Uint is an unsigned integer of a fixed bit width. The width is carried by
// the value: every Uint knows how wide it is, and all arithmetic wraps
// modulo 2^width exactly like Go's native unsigned types.
//
// Storage is a fixed-capacity array of 64-bit limbs, least significant limb
// first. Two invariants hold on every value this package returns: limbs at
// or above the active word count are zero, and any bits of the top active
// limb at or above the width are zero. The second is what keeps values with
// widths like 73 canonical; every operation re-masks the top limb.
type Uint struct {
	bits  uint
	words [maxWords]uint64
}

func wordsFor(bits uint) int { return int((bits + wordBits - 1) / wordBits) }

// topMask is the mask for the most significant active word.
func topMask(bits uint) uint64 {
	if r := bits % wordBits; r != 0 {
		return 1<<r - 1
	}
	return maxUint64
}

func checkBits(bits uint) {
	if bits == 0 || bits > MaxBits {
		panic(fmt.Sprintf("wide: invalid width %d, must be in [1, %d]", bits, MaxBits))
	}
}

func (u Uint) mustMatch(n Uint) {
	if u.bits != n.bits {
		panic(fmt.Sprintf("wide: mismatched widths %d and %d", u.bits, n.bits))
	}
}

// New returns the zero value of the given width. It panics if bits is zero
// or exceeds MaxBits; a bad width is a bug in the caller, not an input
// condition.
func New(bits uint) Uint {
	checkBits(bits)
	return Uint{bits: bits}
}

// Max returns 2^bits - 1, the largest value of the given width.
func Max(bits uint) (out Uint) {
	checkBits(bits)
	out.bits = bits
	n := wordsFor(bits)
	for i := 0; i < n; i++ {
		out.words[i] = maxUint64
	}
	out.words[n-1] = topMask(bits)
	return out
}

// FromUint64 zero-extends v into a Uint of the given width. If v does not
// fit, the result saturates to Max(bits) and exact is false; use
// TruncateUint64 if you want the low bits instead.
func FromUint64(bits uint, v uint64) (out Uint, exact bool) {
	checkBits(bits)
	if bits < wordBits && v > topMask(bits) {
		return Max(bits), false
	}
	out.bits = bits
	out.words[0] = v
	return out, true
}

// FromUint is the generic counterpart of FromUint64, accepting any native
// unsigned type.
func FromUint[T constraints.Unsigned](bits uint, v T) (out Uint, exact bool) {
	return FromUint64(bits, uint64(v))
}

// TruncateUint64 keeps the low bits of v that fit in the given width. This
// is the explicitly truncating conversion; it never fails.
func TruncateUint64(bits uint, v uint64) (out Uint) {
	checkBits(bits)
	out.bits = bits
	out.words[0] = v
	if bits < wordBits {
		out.words[0] &= topMask(bits)
	}
	return out
}

// FromBigInt creates a Uint of the given width from a big.Int. A negative
// input clamps to zero and an oversized input clamps to Max(bits), with
// accurate set to false in both cases.
func FromBigInt(bits uint, v *big.Int) (out Uint, accurate bool) {
	checkBits(bits)
	out.bits = bits
	if v.Sign() < 0 {
		return out, false
	}
	if v.BitLen() > int(bits) {
		return Max(bits), false
	}

	switch intSize {
	case 64:
		for i, w := range v.Bits() {
			out.words[i] = uint64(w)
		}
	case 32:
		for i, w := range v.Bits() {
			out.words[i/2] |= uint64(w) << (wordBits / 2 * uint(i%2))
		}
	default:
		panic("wide: unsupported int size")
	}
	return out, true
}

// FromString parses a non-negative integer in base 10 or 16 into a Uint of
// the given width. Base 16 accepts an optional 0x or 0X prefix. Parsing is
// a boundary operation and is strict: the empty string, any character
// outside the base's digit set (signs included), and any value that does
// not fit in the width are reported as a *ParseError, never truncated.
func FromString(bits uint, s string, base int) (Uint, error) {
	checkBits(bits)
	if base != 10 && base != 16 {
		return Uint{}, &ParseError{Input: s, Base: base, Reason: "base must be 10 or 16"}
	}

	digits := s
	if base == 16 && len(digits) >= 2 && digits[0] == '0' && (digits[1] == 'x' || digits[1] == 'X') {
		digits = digits[2:]
	}
	if digits == "" {
		return Uint{}, &ParseError{Input: s, Base: base, Reason: "empty string"}
	}
	for i := 0; i < len(digits); i++ {
		if !isDigit(digits[i], base) {
			return Uint{}, &ParseError{Input: s, Base: base, Reason: fmt.Sprintf("invalid digit %q", digits[i])}
		}
	}

	b, ok := new(big.Int).SetString(digits, base)
	if !ok {
		return Uint{}, &ParseError{Input: s, Base: base, Reason: "invalid number"}
	}
	if b.BitLen() > int(bits) {
		return Uint{}, &ParseError{Input: s, Base: base, Reason: fmt.Sprintf("value overflows %d bits", bits)}
	}
	out, _ := FromBigInt(bits, b)
	return out, nil
}

func isDigit(c byte, base int) bool {
	switch {
	case c >= '0' && c <= '9':
		return true
	case base == 16 && ((c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')):
		return true
	}
	return false
}

// Rand generates a random value of the given width from an external source.
// Intended for pregenerating benchmark operands outside timed regions.
func Rand(bits uint, source RandSource) (out Uint) {
	checkBits(bits)
	out.bits = bits
	n := wordsFor(bits)
	for i := 0; i < n; i++ {
		out.words[i] = source.Uint64()
	}
	out.words[n-1] &= topMask(bits)
	return out
}

// Bits returns the width of u in bits.
func (u Uint) Bits() uint { return u.bits }

// Words returns the number of active 64-bit limbs.
func (u Uint) Words() int { return wordsFor(u.bits) }

// Word returns the i'th limb, least significant first. It panics if i is
// outside [0, Words()).
func (u Uint) Word(i int) uint64 {
	if i < 0 || i >= wordsFor(u.bits) {
		panic("wide: word index out of range")
	}
	return u.words[i]
}

func (u Uint) IsZero() bool {
	for i := wordsFor(u.bits) - 1; i >= 0; i-- {
		if u.words[i] != 0 {
			return false
		}
	}
	return true
}

// sigWords is the number of limbs up to and including the highest nonzero
// one; zero for the zero value.
func (u Uint) sigWords() int {
	for i := wordsFor(u.bits) - 1; i >= 0; i-- {
		if u.words[i] != 0 {
			return i + 1
		}
	}
	return 0
}

// AsUint64 truncates u to its low 64 bits. See IsUint64 if you want to
// check before you convert.
func (u Uint) AsUint64() uint64 { return u.words[0] }

// IsUint64 reports whether u can be represented as a uint64.
func (u Uint) IsUint64() bool { return u.sigWords() <= 1 }

func (u Uint) IntoBigInt(b *big.Int) {
	n := wordsFor(u.bits)
	switch intSize {
	case 64:
		ws := make([]big.Word, n)
		for i := 0; i < n; i++ {
			ws[i] = big.Word(u.words[i])
		}
		b.SetBits(ws)
	case 32:
		ws := make([]big.Word, 2*n)
		for i := 0; i < n; i++ {
			ws[2*i] = big.Word(u.words[i] & 0xFFFFFFFF)
			ws[2*i+1] = big.Word(u.words[i] >> 32)
		}
		b.SetBits(ws)
	default:
		panic("wide: unsupported int size")
	}
}

func (u Uint) AsBigInt() *big.Int {
	var v big.Int
	u.IntoBigInt(&v)
	return &v
}

func (u Uint) String() string {
	if u.IsUint64() {
		return strconv.FormatUint(u.words[0], 10)
	}
	return u.AsBigInt().String()
}

// Text renders u in the given base with no leading zero digits. Only bases
// 10 and 16 are supported; anything else panics.
func (u Uint) Text(base int) string {
	switch base {
	case 10:
		return u.String()
	case 16:
		if u.IsUint64() {
			return strconv.FormatUint(u.words[0], 16)
		}
		return u.AsBigInt().Text(16)
	default:
		panic(fmt.Sprintf("wide: unsupported base %d", base))
	}
}

func (u Uint) Format(s fmt.State, c rune) {
	u.AsBigInt().Format(s, c)
}

// Inc returns u + 1, wrapping to zero past Max. Most of the time only the
// low limb changes; the carry ripple stops at the first limb that does not
// overflow.
func (u Uint) Inc() (v Uint) {
	v = u
	n := wordsFor(u.bits)
	for i := 0; i < n; i++ {
		v.words[i]++
		if v.words[i] != 0 {
			break
		}
	}
	v.words[n-1] &= topMask(u.bits)
	return v
}

// Dec returns u - 1, wrapping to Max below zero.
func (u Uint) Dec() (v Uint) {
	v = u
	n := wordsFor(u.bits)
	for i := 0; i < n; i++ {
		borrowed := v.words[i] == 0
		v.words[i]--
		if !borrowed {
			break
		}
	}
	v.words[n-1] &= topMask(u.bits)
	return v
}

// Add returns u + n, wrapped to the width. The carry out of the top limb is
// discarded; that discard is the mod-2^N reduction.
func (u Uint) Add(n Uint) (v Uint) {
	u.mustMatch(n)
	v.bits = u.bits
	w := wordsFor(u.bits)
	addN(v.words[:w], u.words[:w], n.words[:w])
	v.words[w-1] &= topMask(u.bits)
	return v
}

// Sub returns u - n, wrapped to the width: 5 - 7 at width 8 is 254.
func (u Uint) Sub(n Uint) (v Uint) {
	u.mustMatch(n)
	v.bits = u.bits
	w := wordsFor(u.bits)
	subN(v.words[:w], u.words[:w], n.words[:w])
	v.words[w-1] &= topMask(u.bits)
	return v
}

// Mul returns u * n, wrapped to the width. The schoolbook product is
// accumulated into a double-length intermediate from widening limb
// multiplies, then the low half is kept; dropping the high half is the
// mod-2^N reduction.
func (u Uint) Mul(n Uint) (v Uint) {
	u.mustMatch(n)
	v.bits = u.bits
	w := wordsFor(u.bits)

	uSig, nSig := u.sigWords(), n.sigWords()
	if uSig == 0 || nSig == 0 {
		return v
	}

	// One-limb operands only need a single carry-propagating pass.
	if nSig == 1 {
		mulWord(v.words[:w], u.words[:w], n.words[0])
	} else if uSig == 1 {
		mulWord(v.words[:w], n.words[:w], u.words[0])
	} else {
		var prod [2 * maxWords]uint64
		mulN(prod[:2*w], u.words[:w], n.words[:w])
		copy(v.words[:w], prod[:w])
	}

	v.words[w-1] &= topMask(u.bits)
	return v
}

// QuoRem returns the quotient and remainder of u / by, such that
// u == q*by + r and 0 <= r < by. A zero divisor panics with ErrDivideByZero
// before any division work begins.
func (u Uint) QuoRem(by Uint) (q, r Uint) {
	u.mustMatch(by)
	bySig := by.sigWords()
	if bySig == 0 {
		panic(ErrDivideByZero)
	}
	q.bits, r.bits = u.bits, u.bits
	uSig := u.sigWords()

	if uSig <= 1 && bySig <= 1 {
		q.words[0] = u.words[0] / by.words[0]
		r.words[0] = u.words[0] % by.words[0]
		return q, r
	}

	if bySig == 1 {
		r.words[0] = divWord(q.words[:uSig], u.words[:uSig], by.words[0])
		return q, r
	}

	n := wordsFor(u.bits)
	switch cmpN(u.words[:n], by.words[:n]) {
	case -1:
		r = u // all remainder
		return q, r
	case 0:
		q.words[0] = 1
		return q, r
	}

	// Bit-at-a-time restoring division over the significant bits of the
	// dividend: shift the trial remainder left, bring in the next dividend
	// bit, subtract the divisor when it fits and record a quotient bit. The
	// bit shifted out of the remainder's top limb stands in for the limb the
	// storage doesn't have; when it is set the remainder is certainly larger
	// than the divisor and the borrow of the subtraction cancels it.
	rw := r.words[:n]
	for i := u.BitLen() - 1; i >= 0; i-- {
		hibit := shl1(rw)
		rw[0] |= (u.words[i/wordBits] >> (uint(i) % wordBits)) & 1
		if hibit != 0 || cmpN(rw, by.words[:n]) >= 0 {
			subN(rw, rw, by.words[:n])
			q.words[i/wordBits] |= 1 << (uint(i) % wordBits)
		}
	}
	return q, r
}

// Quo returns the quotient of u / by. A zero divisor panics with
// ErrDivideByZero.
func (u Uint) Quo(by Uint) (q Uint) {
	q, _ = u.QuoRem(by)
	return q
}

// Rem returns the remainder of u % by. A zero divisor panics with
// ErrDivideByZero.
func (u Uint) Rem(by Uint) (r Uint) {
	_, r = u.QuoRem(by)
	return r
}

// Cmp returns -1 if u < n, 0 if u == n, 1 if u > n. All six relational
// operators derive from this.
func (u Uint) Cmp(n Uint) int {
	u.mustMatch(n)
	return cmpN(u.words[:wordsFor(u.bits)], n.words[:wordsFor(u.bits)])
}

func (u Uint) Equal(n Uint) bool {
	u.mustMatch(n)
	return u == n
}

func (u Uint) LessThan(n Uint) bool         { return u.Cmp(n) < 0 }
func (u Uint) LessOrEqualTo(n Uint) bool    { return u.Cmp(n) <= 0 }
func (u Uint) GreaterThan(n Uint) bool      { return u.Cmp(n) > 0 }
func (u Uint) GreaterOrEqualTo(n Uint) bool { return u.Cmp(n) >= 0 }

func (u Uint) And(n Uint) (v Uint) {
	u.mustMatch(n)
	v.bits = u.bits
	for i := 0; i < wordsFor(u.bits); i++ {
		v.words[i] = u.words[i] & n.words[i]
	}
	return v
}

func (u Uint) AndNot(n Uint) (v Uint) {
	u.mustMatch(n)
	v.bits = u.bits
	for i := 0; i < wordsFor(u.bits); i++ {
		v.words[i] = u.words[i] &^ n.words[i]
	}
	return v
}

func (u Uint) Or(n Uint) (v Uint) {
	u.mustMatch(n)
	v.bits = u.bits
	for i := 0; i < wordsFor(u.bits); i++ {
		v.words[i] = u.words[i] | n.words[i]
	}
	return v
}

func (u Uint) Xor(n Uint) (v Uint) {
	u.mustMatch(n)
	v.bits = u.bits
	for i := 0; i < wordsFor(u.bits); i++ {
		v.words[i] = u.words[i] ^ n.words[i]
	}
	return v
}

// Not returns the complement of u within its width.
func (u Uint) Not() (v Uint) {
	v.bits = u.bits
	w := wordsFor(u.bits)
	for i := 0; i < w; i++ {
		v.words[i] = ^u.words[i]
	}
	v.words[w-1] &= topMask(u.bits)
	return v
}

// Lsh returns u << n. Shifting by the width or more gives zero, the same as
// shifting a uint64 by 64 or more in released Go.
func (u Uint) Lsh(n uint) (v Uint) {
	if n == 0 {
		return u
	}
	v.bits = u.bits
	if n >= u.bits {
		return v
	}

	w := wordsFor(u.bits)
	wshift := int(n / wordBits)
	offset := n % wordBits

	if offset == 0 {
		for i := w - 1; i >= wshift; i-- {
			v.words[i] = u.words[i-wshift]
		}
	} else {
		for i := w - 1; i > wshift; i-- {
			v.words[i] = u.words[i-wshift]<<offset | u.words[i-wshift-1]>>(wordBits-offset)
		}
		v.words[wshift] = u.words[0] << offset
	}

	v.words[w-1] &= topMask(u.bits)
	return v
}

// Rsh returns u >> n. Shifting by the width or more gives zero.
func (u Uint) Rsh(n uint) (v Uint) {
	if n == 0 {
		return u
	}
	v.bits = u.bits
	if n >= u.bits {
		return v
	}

	w := wordsFor(u.bits)
	wshift := int(n / wordBits)
	offset := n % wordBits
	limit := w - wshift - 1

	if offset == 0 {
		for i := 0; i <= limit; i++ {
			v.words[i] = u.words[i+wshift]
		}
	} else {
		for i := 0; i < limit; i++ {
			v.words[i] = u.words[i+wshift]>>offset | u.words[i+wshift+1]<<(wordBits-offset)
		}
		v.words[limit] = u.words[w-1] >> offset
	}
	return v
}

// Bit returns the value of the i'th bit of u, or 0 if i is at or above the
// width.
func (u Uint) Bit(i uint) uint {
	if i >= u.bits {
		return 0
	}
	return uint(u.words[i/wordBits]>>(i%wordBits)) & 1
}

// SetBit returns a copy of u with the i'th bit set to b (0 or 1). It panics
// if i is at or above the width or b is not a valid bit.
func (u Uint) SetBit(i uint, b uint) (v Uint) {
	if i >= u.bits {
		panic("wide: bit index out of range")
	}
	if b > 1 {
		panic("wide: invalid bit value")
	}
	v = u
	if b == 0 {
		v.words[i/wordBits] &^= 1 << (i % wordBits)
	} else {
		v.words[i/wordBits] |= 1 << (i % wordBits)
	}
	return v
}

// BitLen returns the number of bits required to represent u; the zero value
// has a BitLen of 0.
func (u Uint) BitLen() int {
	for i := wordsFor(u.bits) - 1; i >= 0; i-- {
		if u.words[i] != 0 {
			return i*wordBits + bits.Len64(u.words[i])
		}
	}
	return 0
}

// LeadingZeros counts zero bits from the top of the width down to the
// highest set bit; the zero value has LeadingZeros == Bits().
func (u Uint) LeadingZeros() uint {
	return u.bits - uint(u.BitLen())
}

// TrailingZeros counts zero bits from the bottom up to the lowest set bit;
// the zero value has TrailingZeros == Bits().
func (u Uint) TrailingZeros() uint {
	n := wordsFor(u.bits)
	for i := 0; i < n; i++ {
		if u.words[i] != 0 {
			tz := uint(i*wordBits + bits.TrailingZeros64(u.words[i]))
			return tz
		}
	}
	return u.bits
}

func (u Uint) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

// UnmarshalText parses a decimal string into u. The destination must
// already carry a width, i.e. come from New or a previous operation.
func (u *Uint) UnmarshalText(bts []byte) error {
	if u.bits == 0 {
		return &ParseError{Input: string(bts), Base: 10, Reason: "destination has no width; unmarshal into a value from New"}
	}
	v, err := FromString(u.bits, string(bts), 10)
	if err != nil {
		return err
	}
	*u = v
	return nil
}

func (u Uint) MarshalJSON() ([]byte, error) {
	return []byte(`"` + u.String() + `"`), nil
}

func (u *Uint) UnmarshalJSON(bts []byte) error {
	if len(bts) > 0 && bts[0] == '"' {
		ln := len(bts)
		if ln < 2 || bts[ln-1] != '"' {
			return &ParseError{Input: string(bts), Base: 10, Reason: "invalid JSON string"}
		}
		bts = bts[1 : ln-1]
	}
	return u.UnmarshalText(bts)
}
