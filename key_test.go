package mlkem

import (
	"bytes"
	"testing"
)

func TestKeyLifecycle(t *testing.T) {
	k := NewKey(Params768, nil)
	if k.HasPublic() || k.HasPrivate() {
		t.Fatal("a freshly constructed Key must not carry any material")
	}

	var seed [SeedSize]byte
	for i := range seed {
		seed[i] = byte(i)
	}
	if err := k.GenerateFromSeed(&seed); err != nil {
		t.Fatal(err)
	}
	if !k.HasPublic() || !k.HasPrivate() {
		t.Fatal("GenerateFromSeed must install both public and private material")
	}

	if err := k.GenerateFromSeed(&seed); err != ErrImmutableKey {
		t.Fatalf("second install: err = %v, want ErrImmutableKey", err)
	}
}

func TestKeyEncodeDecodeRoundTrip(t *testing.T) {
	k := NewKey(Params768, nil)
	var seed [SeedSize]byte
	seed[0] = 0xAA
	if err := k.GenerateFromSeed(&seed); err != nil {
		t.Fatal(err)
	}
	ek, err := k.EncodePublic()
	if err != nil {
		t.Fatal(err)
	}
	dk, err := k.EncodePrivate()
	if err != nil {
		t.Fatal(err)
	}

	k2 := NewKey(Params768, nil)
	if err := k2.ParsePrivate(dk); err != nil {
		t.Fatal(err)
	}
	ek2, err := k2.EncodePublic()
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(ek, ek2) {
		t.Fatal("re-parsed private key does not recover the same public key")
	}
}

func TestKeyEncapsulateDecapsulate(t *testing.T) {
	k := NewKey(Params1024, nil)
	var seed [SeedSize]byte
	seed[3] = 0x77
	if err := k.GenerateFromSeed(&seed); err != nil {
		t.Fatal(err)
	}

	var entropy [32]byte
	entropy[0] = 9
	ct, ss1, err := k.Encapsulate(&entropy)
	if err != nil {
		t.Fatal(err)
	}
	ss2, err := k.Decapsulate(ct)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(ss1, ss2) {
		t.Fatal("Key.Decapsulate did not recover the shared secret from Key.Encapsulate")
	}
}

func TestKeyDecapsulateWrongLength(t *testing.T) {
	k := NewKey(Params512, nil)
	var seed [SeedSize]byte
	if err := k.GenerateFromSeed(&seed); err != nil {
		t.Fatal(err)
	}
	_, err := k.Decapsulate(make([]byte, k.Variant().CiphertextSize()-1))
	if err != ErrInvalidLength {
		t.Fatalf("err = %v, want ErrInvalidLength", err)
	}
}

func TestKeyParsePrivateRejectsPkhashMismatch(t *testing.T) {
	k := NewKey(Params768, nil)
	var seed [SeedSize]byte
	seed[5] = 0x42
	if err := k.GenerateFromSeed(&seed); err != nil {
		t.Fatal(err)
	}
	dk, err := k.EncodePrivate()
	if err != nil {
		t.Fatal(err)
	}

	corrupted := bytes.Clone(dk)
	// The embedded pkhash occupies the 32 bytes right after the encoded
	// encapsulation key, which itself follows the encoded secret vector.
	hOffset := encodingSize12*Params768.k + Params768.encapsulationKeySize
	corrupted[hOffset] ^= 0x01

	k2 := NewKey(Params768, nil)
	if err := k2.ParsePrivate(corrupted); err != ErrInvalidEncoding {
		t.Fatalf("ParsePrivate with a flipped pkhash bit: err = %v, want ErrInvalidEncoding", err)
	}
}

func TestKeyClonePublicOnly(t *testing.T) {
	k := NewKey(Params768, nil)
	var seed [SeedSize]byte
	seed[1] = 1
	if err := k.GenerateFromSeed(&seed); err != nil {
		t.Fatal(err)
	}
	pub, err := k.Clone(MaterialPublic)
	if err != nil {
		t.Fatal(err)
	}
	if pub.HasPrivate() {
		t.Fatal("MaterialPublic clone must not carry private material")
	}
	if !k.Equal(pub) {
		t.Fatal("a public-only clone must compare equal to its source")
	}
}

func TestKeyCloneRequiresPrivateMaterial(t *testing.T) {
	k := NewKey(Params768, nil)
	var seed [SeedSize]byte
	if err := k.GenerateFromSeed(&seed); err != nil {
		t.Fatal(err)
	}
	pub, _ := k.Clone(MaterialPublic)
	if _, err := pub.Clone(MaterialPrivate); err != ErrInvalidLength {
		t.Fatalf("cloning private material from a public-only key: err = %v", err)
	}
}

func TestKeyEqual(t *testing.T) {
	k1 := NewKey(Params768, nil)
	k2 := NewKey(Params768, nil)
	var seed1, seed2 [SeedSize]byte
	seed2[0] = 1
	if err := k1.GenerateFromSeed(&seed1); err != nil {
		t.Fatal(err)
	}
	if err := k2.GenerateFromSeed(&seed2); err != nil {
		t.Fatal(err)
	}
	if k1.Equal(k2) {
		t.Fatal("keys generated from different seeds must not be Equal")
	}
	empty1, empty2 := NewKey(Params768, nil), NewKey(Params768, nil)
	if empty1.Equal(empty2) {
		t.Fatal("two empty keys must not compare Equal")
	}
}

func TestKeyDestroy(t *testing.T) {
	k := NewKey(Params768, nil)
	var seed [SeedSize]byte
	if err := k.GenerateFromSeed(&seed); err != nil {
		t.Fatal(err)
	}
	k.Destroy()
	if k.HasPublic() || k.HasPrivate() {
		t.Fatal("Destroy must clear both public and private material")
	}
	// A destroyed key can be reused from scratch.
	seed[0] = 5
	if err := k.GenerateFromSeed(&seed); err != nil {
		t.Fatal(err)
	}
}
