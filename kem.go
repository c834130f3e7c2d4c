package mlkem

import "crypto/subtle"

// This file implements the ML-KEM Fujisaki-Okamoto wrapper (spec §4.H):
// kemKeyGen, kemEncaps, kemDecaps. Naming follows the internal surface
// FiloSottile-mlkem768's test files reference by name (kemKeyGen,
// kemEncaps, kemDecaps), reconstructed here and generalized across all
// three parameter sets.

// kemKeyGen implements ML-KEM.KeyGen_internal. d is the 32-byte secret
// seed from which both rho and sigma are derived, z the 32-byte
// implicit-rejection secret. The seed is
// augmented with the rank as a single byte before hashing, giving
// domain separation between parameter sets that happen to share a seed
// (spec §4.H).
func kemKeyGen(o Oracles, p *Parameters, d, z *[32]byte) (ek, dk []byte, err error) {
	k := p.k

	seed := make([]byte, 33)
	copy(seed, d[:])
	seed[32] = byte(k)
	rho, sigma := o.G(seed)

	m, err := expandMatrix(o, &rho, k)
	if err != nil {
		return nil, nil, err
	}

	s := make([]scalar, k)
	e := make([]scalar, k)
	for i := 0; i < k; i++ {
		s[i] = cbd(p.eta1, o.PRF(p.eta1, &sigma, byte(i)))
	}
	for i := 0; i < k; i++ {
		e[i] = cbd(p.eta1, o.PRF(p.eta1, &sigma, byte(k+i)))
	}
	sNTT := vectorNTT(s)
	eNTT := vectorNTT(e)

	t := vectorAdd(matrixMulTransposeNTT(m, sNTT, k), eNTT)

	ekBytes := make([]byte, 0, p.encapsulationKeySize)
	ekBytes = append(ekBytes, vectorEncode12(t)...)
	ekBytes = append(ekBytes, rho[:]...)

	pkhash := o.H(ekBytes)

	dkBytes := make([]byte, 0, p.decapsulationKeySize)
	dkBytes = append(dkBytes, vectorEncode12(sNTT)...)
	dkBytes = append(dkBytes, ekBytes...)
	dkBytes = append(dkBytes, pkhash[:]...)
	dkBytes = append(dkBytes, z[:]...)

	return ekBytes, dkBytes, nil
}

// kemEncaps implements ML-KEM.Encaps_internal. ek is an encoded
// encapsulation key, message the 32 bytes of encapsulation randomness.
func kemEncaps(o Oracles, p *Parameters, ek []byte, message *[32]byte) (ciphertext, sharedSecret []byte, err error) {
	k := p.k
	t, err := vectorDecode12(ek[:encodingSize12*k], k)
	if err != nil {
		return nil, nil, err
	}
	var rho [32]byte
	copy(rho[:], ek[encodingSize12*k:])

	m, err := expandMatrix(o, &rho, k)
	if err != nil {
		return nil, nil, err
	}

	pkhash := o.H(ek)
	input := make([]byte, 0, 64)
	input = append(input, message[:]...)
	input = append(input, pkhash[:]...)
	K, r := o.G(input)

	ciphertext = encryptCPA(o, p, t, m, message, &r)
	shared := K
	return ciphertext, shared[:], nil
}

// kemDecaps implements ML-KEM.Decaps_internal with implicit rejection.
// dk and ciphertext are assumed to already be the correct lengths for p
// (Key.Decapsulate enforces this and handles the wrong-length case per
// spec §9); the constant-time masked select below depends only on
// ciphertext re-encryption equality, never on a Go branch over secret
// bytes.
//
// An oracle failure while re-deriving the matrix (a caller-supplied XOF
// erroring out of sampleNTT) is not reported through the error return:
// spec §4.H/§6/§7 require decapsulation to output failure_key and report
// success even then, so a caller cannot distinguish "ciphertext
// rejected" from "oracle misbehaved" by inspecting the error channel.
// failureKey is computed unconditionally, before the point that can
// fail, so it is available on that path.
func kemDecaps(o Oracles, p *Parameters, dk, ciphertext []byte) ([]byte, error) {
	k := p.k
	sOffset := encodingSize12 * k

	sNTT, err := vectorDecode12(dk[:sOffset], k)
	if err != nil {
		return nil, err
	}
	ek := dk[sOffset : sOffset+p.encapsulationKeySize]
	pkhash := dk[sOffset+p.encapsulationKeySize : sOffset+p.encapsulationKeySize+32]
	var z [32]byte
	copy(z[:], dk[sOffset+p.encapsulationKeySize+32:])

	failureKey := prfFailureKey(&z, ciphertext)

	t, err := vectorDecode12(ek[:encodingSize12*k], k)
	if err != nil {
		return nil, err
	}
	var rho [32]byte
	copy(rho[:], ek[encodingSize12*k:])
	m, err := expandMatrix(o, &rho, k)
	if err != nil {
		return failureKey[:], nil
	}

	mPrime := decryptCPA(p, sNTT, ciphertext)

	input := make([]byte, 0, 64)
	input = append(input, mPrime[:]...)
	input = append(input, pkhash...)
	Kprime, rPrime := o.G(input)

	ciphertextPrime := encryptCPA(o, p, t, m, mPrime, &rPrime)

	eq := subtle.ConstantTimeCompare(ciphertext, ciphertextPrime)
	mask := byte(0) - byte(eq)

	var out [32]byte
	for i := range out {
		out[i] = (Kprime[i] & mask) | (failureKey[i] & ^mask)
	}
	return out[:], nil
}
