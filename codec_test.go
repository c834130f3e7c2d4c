package mlkem

import (
	"math/rand"
	"testing"
)

func TestByteEncodeDecodeRoundTrip(t *testing.T) {
	rnd := rand.New(rand.NewSource(4))
	for _, d := range []int{1, 4, 5, 10, 11} {
		bound := 1 << d
		for trial := 0; trial < 10; trial++ {
			var f scalar
			for i := range f {
				f[i] = fieldElement(rnd.Intn(bound))
			}
			enc := byteEncode(d, &f)
			if len(enc) != encodingSizeD(d) {
				t.Fatalf("d=%d: encoded length %d, want %d", d, len(enc), encodingSizeD(d))
			}
			dec := byteDecode(d, enc)
			if *dec != f {
				t.Fatalf("d=%d trial %d: round trip mismatch", d, trial)
			}
		}
	}
}

func TestByteEncodeDecode12(t *testing.T) {
	rnd := rand.New(rand.NewSource(5))
	for trial := 0; trial < 20; trial++ {
		var f scalar
		for i := range f {
			f[i] = fieldElement(rnd.Intn(int(q)))
		}
		enc := byteEncode12(&f)
		dec, err := byteDecode12(enc)
		if err != nil {
			t.Fatalf("trial %d: %v", trial, err)
		}
		if *dec != f {
			t.Fatalf("trial %d: round trip mismatch", trial)
		}
	}
}

func TestByteDecode12RejectsOutOfRange(t *testing.T) {
	var f scalar
	f[0] = q // exactly q, must be rejected
	enc := byteEncode12(&f)
	if _, err := byteDecode12(enc); err != errInvalidEncoding {
		t.Fatalf("byteDecode12 accepted a field >= q, err = %v", err)
	}
}

func TestCompressDecompressBounds(t *testing.T) {
	for _, d := range []int{1, 4, 10, 11} {
		for x := fieldElement(0); x < q; x++ {
			c := compress(x, d)
			if c >= 1<<uint(d) {
				t.Fatalf("d=%d: compress(%d) = %d out of range", d, x, c)
			}
			decompress(c, d) // must not panic
		}
	}
}

func TestCompressDecompressApproximatelyInvertible(t *testing.T) {
	// decompress(compress(x, d), d) must land within the rounding error
	// the compression width admits: |recovered - x| <= ceil(q / 2^(d+1)),
	// taken modulo q (spec §4.D).
	for _, d := range []int{4, 10, 11} {
		tolerance := (int32(q) + (1 << uint(d+1)) - 1) / (1 << uint(d+1))
		for x := fieldElement(0); x < q; x += 3 {
			recovered := decompress(compress(x, d), d)
			diff := int32(recovered) - int32(x)
			if diff > int32(q)/2 {
				diff -= int32(q)
			} else if diff < -int32(q)/2 {
				diff += int32(q)
			}
			if diff < 0 {
				diff = -diff
			}
			if diff > tolerance {
				t.Fatalf("d=%d x=%d: recovered %d exceeds tolerance %d", d, x, recovered, tolerance)
			}
		}
	}
}
