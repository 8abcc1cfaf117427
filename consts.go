package wide

const (
	// MaxBits is the widest integer this package supports. Limb storage is a
	// fixed-capacity array so that values stay on the stack; widening this
	// constant widens every Uint.
	MaxBits = 2048

	wordBits = 64
	maxWords = MaxBits / wordBits

	maxUint64 = 1<<64 - 1

	intSize = 32 << (^uint(0) >> 63)
)
