package mlkem

import (
	"bytes"
	"testing"
)

func TestRoundTrip768(t *testing.T) {
	dk, err := GenerateKey768()
	if err != nil {
		t.Fatal(err)
	}
	c, Ke, err := Encapsulate768(dk.EncapsulationKey())
	if err != nil {
		t.Fatal(err)
	}
	Kd, err := Decapsulate768(dk, c)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(Ke, Kd) {
		t.Error("Ke != Kd")
	}

	dk1, err := GenerateKey768()
	if err != nil {
		t.Fatal(err)
	}
	if bytes.Equal(dk.EncapsulationKey(), dk1.EncapsulationKey()) {
		t.Error("ek == ek1")
	}
	if bytes.Equal(dk.Bytes(), dk1.Bytes()) {
		t.Error("dk == dk1")
	}

	dk2 := NewKey(Params768, nil)
	if err := dk2.ParsePrivate(dk.Bytes()); err != nil {
		t.Fatal(err)
	}
	dk2Bytes, err := dk2.EncodePrivate()
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(dk.Bytes(), dk2Bytes) {
		t.Error("dk != dk2")
	}
}

func TestRoundTrip512(t *testing.T) {
	dk, err := GenerateKey512()
	if err != nil {
		t.Fatal(err)
	}
	c, Ke, err := Encapsulate512(dk.EncapsulationKey())
	if err != nil {
		t.Fatal(err)
	}
	Kd, err := Decapsulate512(dk, c)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(Ke, Kd) {
		t.Error("Ke != Kd")
	}
}

func TestRoundTrip1024(t *testing.T) {
	dk, err := GenerateKey1024()
	if err != nil {
		t.Fatal(err)
	}
	c, Ke, err := Encapsulate1024(dk.EncapsulationKey())
	if err != nil {
		t.Fatal(err)
	}
	Kd, err := Decapsulate1024(dk, c)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(Ke, Kd) {
		t.Error("Ke != Kd")
	}
}

func TestBadLengths768(t *testing.T) {
	dk, err := GenerateKey768()
	if err != nil {
		t.Fatal(err)
	}
	ek := dk.EncapsulationKey()

	for i := 0; i < len(ek)+5; i += 5 {
		if i >= len(ek) {
			continue
		}
		if _, _, err := Encapsulate768(ek[:min(i, len(ek))]); err == nil {
			t.Errorf("Encapsulate768 accepted a %d-byte encapsulation key (want %d)", min(i, len(ek)), len(ek))
		}
	}

	c, _, err := Encapsulate768(ek)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < len(c); i += 20 {
		if i == len(c) {
			continue
		}
		if _, err := Decapsulate768(dk, c[:i]); err == nil {
			t.Errorf("Decapsulate768 accepted a %d-byte ciphertext (want %d)", i, len(c))
		}
	}
}

func TestSeedLengthValidation(t *testing.T) {
	if _, err := NewKeyFromSeed768(make([]byte, SeedSize-1)); err == nil {
		t.Error("NewKeyFromSeed768 accepted a too-short seed")
	}
	if _, err := NewKeyFromSeed768(make([]byte, SeedSize+1)); err == nil {
		t.Error("NewKeyFromSeed768 accepted a too-long seed")
	}
}
