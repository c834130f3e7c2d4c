package mlkem

// n is the number of coefficients in an ML-KEM polynomial.
const n = 256

// scalar is a polynomial in Z_q[X]/(X^256+1): 256 coefficients, each
// reduced to [0, q) on entry and exit of every operation below. Whether
// a given scalar is interpreted in the natural or the NTT domain is not
// tracked by the type; it is documented per call site, matching spec §3.
type scalar [n]fieldElement

// add returns the coefficient-wise sum of two scalars.
func add(a, b scalar) scalar {
	var c scalar
	for i := range c {
		c[i] = fieldAdd(a[i], b[i])
	}
	return c
}

// sub returns the coefficient-wise difference of two scalars.
func sub(a, b scalar) scalar {
	var c scalar
	for i := range c {
		c[i] = fieldSub(a[i], b[i])
	}
	return c
}

// ntt transforms f from the natural domain to the NTT domain in place,
// using a 7-layer decimation-in-time butterfly network (the 8th layer is
// omitted because q has no primitive 512th root of unity). The result is
// in bit-reversed order and represents f modulo 128 quadratic factors
// X^2 - gammas[i].
func ntt(f scalar) scalar {
	k := 1
	for length := 128; length >= 2; length /= 2 {
		for start := 0; start < n; start += 2 * length {
			zeta := zetas[k]
			k++
			for j := start; j < start+length; j++ {
				t := fieldMul(zeta, f[j+length])
				f[j+length] = fieldSub(f[j], t)
				f[j] = fieldAdd(f[j], t)
			}
		}
	}
	return f
}

// inverseNTT transforms f from the NTT domain back to the natural
// domain in place.
func inverseNTT(f scalar) scalar {
	k := 127
	for length := 2; length <= 128; length *= 2 {
		for start := 0; start < n; start += 2 * length {
			zeta := zetas[k]
			k--
			for j := start; j < start+length; j++ {
				t := f[j]
				f[j] = fieldAdd(t, f[j+length])
				f[j+length] = fieldMul(zeta, fieldSub(f[j+length], t))
			}
		}
	}
	for i := range f {
		f[i] = fieldMul(f[i], invN)
	}
	return f
}

// multiplyNTT multiplies two NTT-domain scalars: the product, in the
// ring Z_q[X]/(X^256+1), of the polynomials they represent. Each of the
// 128 quadratic components X^2 - gammas[i] is multiplied independently.
func multiplyNTT(a, b scalar) scalar {
	var c scalar
	for i := 0; i < n/2; i++ {
		a0, a1 := a[2*i], a[2*i+1]
		b0, b1 := b[2*i], b[2*i+1]
		gamma := gammas[i]
		c[2*i] = fieldAdd(fieldMul(a0, b0), fieldMul(fieldMul(a1, b1), gamma))
		c[2*i+1] = fieldAdd(fieldMul(a0, b1), fieldMul(a1, b0))
	}
	return c
}

// multiplyAddNTT accumulates a*b (NTT-domain product) into acc.
func multiplyAddNTT(acc, a, b scalar) scalar {
	return add(acc, multiplyNTT(a, b))
}
