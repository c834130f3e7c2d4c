// Package mlkem implements ML-KEM (FIPS 203), the module-lattice-based
// key encapsulation mechanism, for all three standard parameter sets:
// ML-KEM-512, ML-KEM-768, and ML-KEM-1024.
package mlkem

import "crypto/rand"

// Per-variant wire sizes, derived from the corresponding Parameters.
var (
	EncapsulationKeySize512 = Params512.encapsulationKeySize
	DecapsulationKeySize512 = Params512.decapsulationKeySize
	CiphertextSize512       = Params512.ciphertextSize

	EncapsulationKeySize768 = Params768.encapsulationKeySize
	DecapsulationKeySize768 = Params768.decapsulationKeySize
	CiphertextSize768       = Params768.ciphertextSize

	EncapsulationKeySize1024 = Params1024.encapsulationKeySize
	DecapsulationKeySize1024 = Params1024.decapsulationKeySize
	CiphertextSize1024       = Params1024.ciphertextSize
)

func generate(p *Parameters) (*Key, error) {
	k := NewKey(p, nil)
	if err := k.GenerateFromEntropy(rand.Reader); err != nil {
		return nil, err
	}
	return k, nil
}

func fromSeed(p *Parameters, seed []byte) (*Key, error) {
	if len(seed) != SeedSize {
		return nil, ErrInvalidLength
	}
	var s [SeedSize]byte
	copy(s[:], seed)
	k := NewKey(p, nil)
	if err := k.GenerateFromSeed(&s); err != nil {
		return nil, err
	}
	return k, nil
}

func encapsulate(p *Parameters, encapsulationKey []byte) (ciphertext, sharedKey []byte, err error) {
	k := NewKey(p, nil)
	if err := k.ParsePublic(encapsulationKey); err != nil {
		return nil, nil, err
	}
	return k.EncapsulateRandom(rand.Reader)
}

// DecapsulationKey512 is a ML-KEM-512 decapsulation key.
type DecapsulationKey512 struct{ key *Key }

// Bytes returns the decapsulation key in its encoded (d||z-derived) form.
func (dk *DecapsulationKey512) Bytes() []byte { b, _ := dk.key.EncodePrivate(); return b }

// EncapsulationKey returns the encoded public encapsulation key.
func (dk *DecapsulationKey512) EncapsulationKey() []byte { b, _ := dk.key.EncodePublic(); return b }

// GenerateKey512 generates a new ML-KEM-512 decapsulation key, drawing
// randomness from crypto/rand.
func GenerateKey512() (*DecapsulationKey512, error) {
	k, err := generate(Params512)
	if err != nil {
		return nil, err
	}
	return &DecapsulationKey512{key: k}, nil
}

// NewKeyFromSeed512 deterministically generates a ML-KEM-512 decapsulation
// key from a SeedSize-byte seed.
func NewKeyFromSeed512(seed []byte) (*DecapsulationKey512, error) {
	k, err := fromSeed(Params512, seed)
	if err != nil {
		return nil, err
	}
	return &DecapsulationKey512{key: k}, nil
}

// Encapsulate512 generates a shared key and an associated ciphertext
// from a ML-KEM-512 encapsulation key, drawing randomness from
// crypto/rand.
func Encapsulate512(encapsulationKey []byte) (ciphertext, sharedKey []byte, err error) {
	return encapsulate(Params512, encapsulationKey)
}

// Decapsulate512 recovers the shared key from a ML-KEM-512 ciphertext.
func Decapsulate512(dk *DecapsulationKey512, ciphertext []byte) (sharedKey []byte, err error) {
	return dk.key.Decapsulate(ciphertext)
}

// DecapsulationKey768 is a ML-KEM-768 decapsulation key.
type DecapsulationKey768 struct{ key *Key }

// Bytes returns the decapsulation key in its encoded (d||z-derived) form.
func (dk *DecapsulationKey768) Bytes() []byte { b, _ := dk.key.EncodePrivate(); return b }

// EncapsulationKey returns the encoded public encapsulation key.
func (dk *DecapsulationKey768) EncapsulationKey() []byte { b, _ := dk.key.EncodePublic(); return b }

// GenerateKey768 generates a new ML-KEM-768 decapsulation key, drawing
// randomness from crypto/rand.
func GenerateKey768() (*DecapsulationKey768, error) {
	k, err := generate(Params768)
	if err != nil {
		return nil, err
	}
	return &DecapsulationKey768{key: k}, nil
}

// NewKeyFromSeed768 deterministically generates a ML-KEM-768 decapsulation
// key from a SeedSize-byte seed.
func NewKeyFromSeed768(seed []byte) (*DecapsulationKey768, error) {
	k, err := fromSeed(Params768, seed)
	if err != nil {
		return nil, err
	}
	return &DecapsulationKey768{key: k}, nil
}

// Encapsulate768 generates a shared key and an associated ciphertext
// from a ML-KEM-768 encapsulation key, drawing randomness from
// crypto/rand.
func Encapsulate768(encapsulationKey []byte) (ciphertext, sharedKey []byte, err error) {
	return encapsulate(Params768, encapsulationKey)
}

// Decapsulate768 recovers the shared key from a ML-KEM-768 ciphertext.
func Decapsulate768(dk *DecapsulationKey768, ciphertext []byte) (sharedKey []byte, err error) {
	return dk.key.Decapsulate(ciphertext)
}

// DecapsulationKey1024 is a ML-KEM-1024 decapsulation key.
type DecapsulationKey1024 struct{ key *Key }

// Bytes returns the decapsulation key in its encoded (d||z-derived) form.
func (dk *DecapsulationKey1024) Bytes() []byte { b, _ := dk.key.EncodePrivate(); return b }

// EncapsulationKey returns the encoded public encapsulation key.
func (dk *DecapsulationKey1024) EncapsulationKey() []byte { b, _ := dk.key.EncodePublic(); return b }

// GenerateKey1024 generates a new ML-KEM-1024 decapsulation key, drawing
// randomness from crypto/rand.
func GenerateKey1024() (*DecapsulationKey1024, error) {
	k, err := generate(Params1024)
	if err != nil {
		return nil, err
	}
	return &DecapsulationKey1024{key: k}, nil
}

// NewKeyFromSeed1024 deterministically generates a ML-KEM-1024
// decapsulation key from a SeedSize-byte seed.
func NewKeyFromSeed1024(seed []byte) (*DecapsulationKey1024, error) {
	k, err := fromSeed(Params1024, seed)
	if err != nil {
		return nil, err
	}
	return &DecapsulationKey1024{key: k}, nil
}

// Encapsulate1024 generates a shared key and an associated ciphertext
// from a ML-KEM-1024 encapsulation key, drawing randomness from
// crypto/rand.
func Encapsulate1024(encapsulationKey []byte) (ciphertext, sharedKey []byte, err error) {
	return encapsulate(Params1024, encapsulationKey)
}

// Decapsulate1024 recovers the shared key from a ML-KEM-1024 ciphertext.
func Decapsulate1024(dk *DecapsulationKey1024, ciphertext []byte) (sharedKey []byte, err error) {
	return dk.key.Decapsulate(ciphertext)
}
