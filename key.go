package mlkem

import (
	"crypto/rand"
	"crypto/subtle"
	"io"
)

// KeyMaterial selects which part of a Key Clone copies, mirroring the
// duplicate_key modes spec §6/§3.1 asks for (public-only vs full).
type KeyMaterial int

const (
	MaterialNone KeyMaterial = iota
	MaterialPublic
	MaterialPrivate
)

// Key is the key object of spec §4.I/§6: born empty with only a
// Parameters selector and an Oracles handle, installed once with public
// and optionally private material, and immutable after installation.
// Field names (rho, h, z, s) mirror FiloSottile-mlkem768's historical
// DecapsulationKey{ρ, h, z, s}.
type Key struct {
	variant *Parameters
	oracles Oracles

	hasPublic  bool
	hasPrivate bool

	t   []scalar // public NTT-domain vector
	rho [32]byte // matrix seed
	h   [32]byte // H(encoded encapsulation key)

	s []scalar // private NTT-domain vector
	z [32]byte // implicit-rejection secret
}

// NewKey returns an empty Key bound to variant. A nil oracles uses
// DefaultOracles.
func NewKey(variant *Parameters, oracles Oracles) *Key {
	if oracles == nil {
		oracles = DefaultOracles
	}
	return &Key{variant: variant, oracles: oracles}
}

// Variant reports the Parameters this key is bound to.
func (k *Key) Variant() *Parameters { return k.variant }

// HasPublic reports whether public key material has been installed.
func (k *Key) HasPublic() bool { return k.hasPublic }

// HasPrivate reports whether private key material has been installed.
func (k *Key) HasPrivate() bool { return k.hasPrivate }

func (k *Key) encodePublicBytes() []byte {
	out := make([]byte, 0, k.variant.encapsulationKeySize)
	out = append(out, vectorEncode12(k.t)...)
	out = append(out, k.rho[:]...)
	return out
}

func (k *Key) encodePrivateBytes() []byte {
	out := make([]byte, 0, k.variant.decapsulationKeySize)
	out = append(out, vectorEncode12(k.s)...)
	out = append(out, k.encodePublicBytes()...)
	out = append(out, k.h[:]...)
	out = append(out, k.z[:]...)
	return out
}

// installPublic parses and installs an encoded encapsulation key. It
// fails with ErrImmutableKey if public material is already installed.
func (k *Key) installPublic(ek []byte) error {
	if k.hasPublic {
		return ErrImmutableKey
	}
	if len(ek) != k.variant.encapsulationKeySize {
		return ErrInvalidLength
	}
	t, err := vectorDecode12(ek[:encodingSize12*k.variant.k], k.variant.k)
	if err != nil {
		return err
	}
	k.t = t
	copy(k.rho[:], ek[encodingSize12*k.variant.k:])
	k.h = k.oracles.H(ek)
	k.hasPublic = true
	return nil
}

// installPrivate parses and installs an encoded decapsulation key,
// installing the embedded encapsulation key alongside it if public
// material is not already present. It fails with ErrImmutableKey if
// private material is already installed, and with ErrInvalidEncoding if
// the embedded public-key hash does not match the recomputed one.
func (k *Key) installPrivate(dk []byte) error {
	if k.hasPrivate {
		return ErrImmutableKey
	}
	if len(dk) != k.variant.decapsulationKeySize {
		return ErrInvalidLength
	}
	kk := k.variant.k
	sOffset := encodingSize12 * kk
	s, err := vectorDecode12(dk[:sOffset], kk)
	if err != nil {
		return err
	}
	ek := dk[sOffset : sOffset+k.variant.encapsulationKeySize]
	embeddedH := dk[sOffset+k.variant.encapsulationKeySize : sOffset+k.variant.encapsulationKeySize+32]

	if !k.hasPublic {
		if err := k.installPublic(ek); err != nil {
			return err
		}
	}
	if subtle.ConstantTimeCompare(k.h[:], embeddedH) != 1 {
		return ErrInvalidEncoding
	}

	k.s = s
	copy(k.z[:], dk[sOffset+k.variant.encapsulationKeySize+32:])
	k.hasPrivate = true
	return nil
}

// ParsePublic installs an encoded encapsulation key. See installPublic.
func (k *Key) ParsePublic(b []byte) error { return k.installPublic(b) }

// ParsePrivate installs an encoded decapsulation key. See installPrivate.
func (k *Key) ParsePrivate(b []byte) error { return k.installPrivate(b) }

// EncodePublic returns the encoded encapsulation key, or ErrInvalidLength
// if no public material has been installed.
func (k *Key) EncodePublic() ([]byte, error) {
	if !k.hasPublic {
		return nil, ErrInvalidLength
	}
	return k.encodePublicBytes(), nil
}

// EncodePrivate returns the encoded decapsulation key, or ErrInvalidLength
// if no private material has been installed.
func (k *Key) EncodePrivate() ([]byte, error) {
	if !k.hasPrivate {
		return nil, ErrInvalidLength
	}
	return k.encodePrivateBytes(), nil
}

// GenerateFromSeed deterministically installs a fresh key pair derived
// from a 64-byte seed (d || z), per spec §4.H/§6 generate_from_seed.
func (k *Key) GenerateFromSeed(seed *[SeedSize]byte) error {
	var d, z [32]byte
	copy(d[:], seed[:32])
	copy(z[:], seed[32:])
	ek, dk, err := kemKeyGen(k.oracles, k.variant, &d, &z)
	if err != nil {
		return err
	}
	if err := k.installPublic(ek); err != nil {
		return err
	}
	return k.installPrivate(dk)
}

// GenerateFromEntropy draws SeedSize bytes from rand and installs a
// fresh key pair, per spec §6 generate_from_entropy.
func (k *Key) GenerateFromEntropy(r io.Reader) error {
	var seed [SeedSize]byte
	if _, err := io.ReadFull(r, seed[:]); err != nil {
		return err
	}
	return k.GenerateFromSeed(&seed)
}

// Encapsulate runs encapsulation against entropy (32 bytes of message
// randomness), returning the ciphertext and shared secret. Requires
// public material.
func (k *Key) Encapsulate(entropy *[32]byte) (ciphertext, sharedSecret []byte, err error) {
	if !k.hasPublic {
		return nil, nil, ErrInvalidLength
	}
	return kemEncaps(k.oracles, k.variant, k.encodePublicBytes(), entropy)
}

// EncapsulateRandom draws message randomness from r and encapsulates
// against it, per spec §6 encapsulate_random.
func (k *Key) EncapsulateRandom(r io.Reader) (ciphertext, sharedSecret []byte, err error) {
	var entropy [32]byte
	if _, err := io.ReadFull(r, entropy[:]); err != nil {
		return nil, nil, err
	}
	return k.Encapsulate(&entropy)
}

// Decapsulate recovers the shared secret from ciphertext. Requires
// private material. A ciphertext of the wrong length is not a valid
// input the implicit-rejection mechanism can absorb (it is not a value
// K-PKE ever produced under any key), so this returns a freshly
// randomized 32-byte value together with ErrInvalidLength rather than
// running the FO wrapper at all, per spec §9's conformance choice.
func (k *Key) Decapsulate(ciphertext []byte) ([]byte, error) {
	if !k.hasPrivate {
		return nil, ErrInvalidLength
	}
	if len(ciphertext) != k.variant.ciphertextSize {
		garbage := make([]byte, SharedKeySize)
		_, _ = rand.Read(garbage)
		return garbage, ErrInvalidLength
	}
	return kemDecaps(k.oracles, k.variant, k.encodePrivateBytes(), ciphertext)
}

// Clone duplicates the key material selected by mode into a new Key
// bound to the same variant and oracles, per spec §6 duplicate_key.
// Cloning MaterialPrivate from a key that lacks private material fails
// with ErrInvalidLength.
func (k *Key) Clone(mode KeyMaterial) (*Key, error) {
	out := NewKey(k.variant, k.oracles)
	if mode == MaterialNone {
		return out, nil
	}
	if !k.hasPublic {
		if mode == MaterialPrivate {
			return nil, ErrInvalidLength
		}
		return out, nil
	}
	if err := out.installPublic(k.encodePublicBytes()); err != nil {
		return nil, err
	}
	if mode == MaterialPrivate {
		if !k.hasPrivate {
			return nil, ErrInvalidLength
		}
		if err := out.installPrivate(k.encodePrivateBytes()); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// Equal reports whether two keys carry the same public material,
// compared via their cached encapsulation-key hash, per spec §6
// compare_public_keys. Two empty keys are not equal.
func (k *Key) Equal(other *Key) bool {
	if !k.hasPublic || !other.hasPublic {
		return false
	}
	return subtle.ConstantTimeCompare(k.h[:], other.h[:]) == 1
}

// Destroy zeroes all secret material held by the key and marks it
// empty. The public half, if any, is discarded too so the Key returns
// to its just-constructed state.
func (k *Key) Destroy() {
	for i := range k.s {
		k.s[i] = scalar{}
	}
	k.s = nil
	for i := range k.z {
		k.z[i] = 0
	}
	for i := range k.t {
		k.t[i] = scalar{}
	}
	k.t = nil
	k.rho = [32]byte{}
	k.h = [32]byte{}
	k.hasPublic = false
	k.hasPrivate = false
}
