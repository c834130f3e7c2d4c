package mlkem

import "testing"

func TestParameterSizes(t *testing.T) {
	cases := []struct {
		p                          *Parameters
		ek, dk, ct int
	}{
		{Params512, 800, 1632, 768},
		{Params768, 1184, 2400, 1088},
		{Params1024, 1568, 3168, 1568},
	}
	for _, c := range cases {
		if got := c.p.EncapsulationKeySize(); got != c.ek {
			t.Errorf("%s: EncapsulationKeySize() = %d, want %d", c.p.Name(), got, c.ek)
		}
		if got := c.p.DecapsulationKeySize(); got != c.dk {
			t.Errorf("%s: DecapsulationKeySize() = %d, want %d", c.p.Name(), got, c.dk)
		}
		if got := c.p.CiphertextSize(); got != c.ct {
			t.Errorf("%s: CiphertextSize() = %d, want %d", c.p.Name(), got, c.ct)
		}
	}
}

func TestParameterRanks(t *testing.T) {
	if Params512.Rank() != 2 || Params768.Rank() != 3 || Params1024.Rank() != 4 {
		t.Fatal("unexpected parameter ranks")
	}
}
