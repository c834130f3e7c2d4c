package mlkem

// This file implements the K-PKE core (spec §4.G): the CPA-secure
// encryption scheme ML-KEM's Fujisaki-Okamoto wrapper (kem.go) builds
// on. encryptCPA threads a single monotonically increasing PRF counter
// byte through its sampling calls, starting at 0, per §4.G; decryptCPA
// samples nothing.

// encryptCPA implements K-PKE.Encrypt. t is the NTT-domain public
// vector, m the transpose-stored public matrix (see matrix.go), message
// the 32-byte plaintext, and r the encryption randomness. All arithmetic
// here is on public-shaped intermediate values only when invoked from
// Key.Encapsulate; kem.go's decapsulation re-derivation path runs the
// same code over secret-derived inputs and must stay constant time.
func encryptCPA(o Oracles, p *Parameters, t, m []scalar, message, r *[32]byte) []byte {
	k := p.k
	ctr := byte(0)

	y := make([]scalar, k)
	for i := 0; i < k; i++ {
		y[i] = cbd(p.eta1, o.PRF(p.eta1, r, ctr))
		ctr++
	}
	yNTT := vectorNTT(y)

	v := inverseNTT(innerProductNTT(t, yNTT))
	u := vectorInverseNTT(matrixMulNTT(m, yNTT, k))

	e1 := make([]scalar, k)
	for i := 0; i < k; i++ {
		e1[i] = cbd2(o.PRF(eta2, r, ctr))
		ctr++
	}
	u = vectorAdd(u, e1)

	e2 := cbd2(o.PRF(eta2, r, ctr))
	v = add(v, e2)

	mu := *byteDecode1(message[:])
	for i := range mu {
		mu[i] = decompress(uint16(mu[i]), 1)
	}
	v = add(v, mu)

	uCompressed := vectorCompress(u, p.du)
	vCompressed := scalar{}
	for i := range v {
		vCompressed[i] = fieldElement(compress(v[i], p.dv))
	}

	ct := make([]byte, 0, p.ciphertextSize)
	ct = append(ct, vectorEncodeD(uCompressed, p.du)...)
	ct = append(ct, byteEncode(p.dv, &vCompressed)...)
	return ct
}

// decryptCPA implements K-PKE.Decrypt. s is the NTT-domain secret
// vector; ciphertext is the encoded (u, v) pair. Every step here
// operates on the secret vector s or values derived from it and MUST be
// constant time (spec §5): no branch here may depend on ciphertext
// contents beyond its (public) length.
func decryptCPA(p *Parameters, s []scalar, ciphertext []byte) *[32]byte {
	k := p.k
	uSize := encodingSizeD(p.du) * k

	u := vectorDecodeD(ciphertext[:uSize], p.du, k)
	u = vectorDecompress(u, p.du)
	uNTT := vectorNTT(u)

	v := *byteDecode(p.dv, ciphertext[uSize:])
	for i := range v {
		v[i] = decompress(uint16(v[i]), p.dv)
	}

	mask := inverseNTT(innerProductNTT(s, uNTT))
	diff := sub(v, mask)

	var bits scalar
	for i := range diff {
		bits[i] = fieldElement(compress(diff[i], 1))
	}
	var out [32]byte
	copy(out[:], byteEncode1(&bits))
	return &out
}
