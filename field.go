package mlkem

// fieldElement is an element of Z_q, always held reduced to [0, q).
// q = 3329 = 2^8 * 13 + 1, the ML-KEM modulus.
type fieldElement uint16

const q fieldElement = 3329

// Barrett reduction constants for products of two reduced 12-bit values,
// per spec §4.A: S = 2*ceil(log2(q)) = 24, M = floor(2^S / q).
const (
	barrettShift = 24
	barrettM     = (1 << barrettShift) / uint32(q)
)

// reduceOnce reduces x, 0 <= x < 2q, to [0, q) without a data-dependent
// branch: it subtracts q and, if that underflowed, adds q back using a
// mask built from the sign bit of the subtraction.
func reduceOnce(x uint16) fieldElement {
	x -= uint16(q)
	x += uint16(int16(x)>>15) & uint16(q)
	return fieldElement(x)
}

// barrettReduce reduces x < q + 2*q*q (the range spanned by a sum of
// products of reduced values) to [0, q).
func barrettReduce(x uint32) fieldElement {
	t := uint32((uint64(x) * uint64(barrettM)) >> barrettShift)
	return reduceOnce(uint16(x - t*uint32(q)))
}

// fieldAdd returns (a + b) mod q.
func fieldAdd(a, b fieldElement) fieldElement {
	return reduceOnce(uint16(a) + uint16(b))
}

// fieldSub returns (a - b) mod q. q is added before reduction so the
// intermediate value never underflows the unsigned representation.
func fieldSub(a, b fieldElement) fieldElement {
	return reduceOnce(uint16(a) + uint16(q) - uint16(b))
}

// fieldMul returns (a * b) mod q via Barrett reduction.
func fieldMul(a, b fieldElement) fieldElement {
	return barrettReduce(uint32(a) * uint32(b))
}
