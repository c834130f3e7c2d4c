package mlkem

import (
	"golang.org/x/crypto/sha3"
)

// Oracles is the facade the core consumes for the four symmetric
// primitives FIPS 203 treats as external collaborators (spec §4.K):
// H (SHA3-256), G (SHA3-512), PRF (SHAKE256 keyed by seed||nonce), and
// the XOF used for matrix sampling (SHAKE128). A Key is constructed
// against one Oracles implementation; the default, returned by
// DefaultOracles, is backed by golang.org/x/crypto/sha3 and streams its
// squeeze the way rejection sampling requires.
//
// Host frameworks that already own a hash-provider dispatch table (as
// spec §6's new_key(variant, oracle_handles) anticipates) can supply
// their own implementation instead.
type Oracles interface {
	// H hashes x with SHA3-256.
	H(x []byte) [32]byte
	// G hashes x with SHA3-512, split as (32, 32) bytes.
	G(x []byte) (a, b [32]byte)
	// PRF derives 64*eta bytes from SHAKE256(seed || nonce).
	PRF(eta int, seed *[32]byte, nonce byte) []byte
	// XOF returns a streaming SHAKE128 squeezer absorbed with
	// rho || i || j, for uniform rejection sampling of matrix cell (i, j).
	XOF(rho *[32]byte, i, j byte) sha3.ShakeHash
}

// defaultOracles implements Oracles on top of golang.org/x/crypto/sha3.
type defaultOracles struct{}

// DefaultOracles is the Oracles implementation used when a Key is
// constructed without an explicit one.
var DefaultOracles Oracles = defaultOracles{}

func (defaultOracles) H(x []byte) [32]byte {
	return sha3.Sum256(x)
}

func (defaultOracles) G(x []byte) (a, b [32]byte) {
	h := sha3.Sum512(x)
	copy(a[:], h[:32])
	copy(b[:], h[32:])
	return a, b
}

func (defaultOracles) PRF(eta int, seed *[32]byte, nonce byte) []byte {
	h := sha3.NewShake256()
	h.Write(seed[:])
	h.Write([]byte{nonce})
	out := make([]byte, 64*eta)
	h.Read(out)
	return out
}

func (defaultOracles) XOF(rho *[32]byte, i, j byte) sha3.ShakeHash {
	h := sha3.NewShake128()
	h.Write(rho[:])
	h.Write([]byte{i, j})
	return h
}

// prfFailureKey implements the J oracle of spec §4.H: SHAKE256(z || ct),
// 32 bytes, used as the implicit-rejection failure key.
func prfFailureKey(z *[32]byte, ciphertext []byte) [32]byte {
	h := sha3.NewShake256()
	h.Write(z[:])
	h.Write(ciphertext)
	var out [32]byte
	h.Read(out[:])
	return out
}
