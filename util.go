package wide

// RandSource is the entropy a Rand call draws its limbs from. *rand.Rand
// satisfies it.
type RandSource interface {
	Uint64() uint64
}

// Difference subtracts the smaller of a and b from the larger.
func Difference(a, b Uint) Uint {
	if a.Cmp(b) >= 0 {
		return a.Sub(b)
	}
	return b.Sub(a)
}

func Larger(a, b Uint) Uint {
	if a.Cmp(b) >= 0 {
		return a
	}
	return b
}

func Smaller(a, b Uint) Uint {
	if a.Cmp(b) <= 0 {
		return a
	}
	return b
}
