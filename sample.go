package mlkem

import "io"

// sampleNTT draws a uniformly random NTT-domain scalar from the XOF
// stream xof by rejection sampling 12-bit candidates, per spec §4.C.
// The input is public (a matrix cell derived from rho), so this loop is
// not required to run in constant time.
func sampleNTT(xof io.Reader) (scalar, error) {
	var a scalar
	var buf [168]byte // a multiple of 3, matching the SHAKE128 rate
	j := 0
	for j < n {
		if _, err := io.ReadFull(xof, buf[:]); err != nil {
			return scalar{}, errOracleFailure
		}
		for i := 0; i+3 <= len(buf) && j < n; i += 3 {
			d1 := uint16(buf[i]) | (uint16(buf[i+1]&0x0f) << 8)
			d2 := uint16(buf[i+1]>>4) | (uint16(buf[i+2]) << 4)
			if d1 < uint16(q) {
				a[j] = fieldElement(d1)
				j++
			}
			if j < n && d2 < uint16(q) {
				a[j] = fieldElement(d2)
				j++
			}
		}
	}
	return a, nil
}

// cbd draws a scalar from the centered binomial distribution CBD(eta)
// given 64*eta bytes of PRF output, per spec §4.C. eta must be 2 or 3.
func cbd(eta int, buf []byte) scalar {
	bit := func(idx int) fieldElement {
		return fieldElement((buf[idx/8] >> uint(idx%8)) & 1)
	}
	var f scalar
	for i := 0; i < n; i++ {
		var x, y fieldElement
		base := 2 * i * eta
		for j := 0; j < eta; j++ {
			x = fieldAdd(x, bit(base+j))
			y = fieldAdd(y, bit(base+eta+j))
		}
		f[i] = fieldSub(x, y)
	}
	return f
}

// cbd2 specializes cbd to eta=2 (eta2), used for the encryption noise
// e1 and e2 in every parameter set (spec §4.C). s, e and the
// encapsulator's y are sampled with cbd(p.eta1, ...).
func cbd2(buf []byte) scalar { return cbd(eta2, buf) }

// cbd3 specializes cbd to eta=3, the eta1 of ML-KEM-512, the only
// variant with eta1=3. Key generation and encryption call cbd(p.eta1, ...)
// directly rather than this helper.
func cbd3(buf []byte) scalar { return cbd(3, buf) }
