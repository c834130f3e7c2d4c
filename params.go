package mlkem

// Parameters holds the per-variant constants from spec §3/§4.J: rank k,
// the ciphertext compression widths du/dv, the secret-sampling width η1,
// and the wire sizes derived from them. The three FIPS 203 parameter
// sets are exposed as package-level values; every Key is bound to
// exactly one of them for its whole lifetime.
type Parameters struct {
	name string
	k    int
	du   int
	dv   int
	eta1 int

	encapsulationKeySize int
	decapsulationKeySize int
	ciphertextSize       int
}

// Name reports the conventional label of the parameter set, e.g. "ML-KEM-768".
func (p *Parameters) Name() string { return p.name }

// Rank is the module dimension k.
func (p *Parameters) Rank() int { return p.k }

// EncapsulationKeySize is the wire length of an encoded public key.
func (p *Parameters) EncapsulationKeySize() int { return p.encapsulationKeySize }

// DecapsulationKeySize is the wire length of an encoded private key
// (s || encapsulation key || H(encapsulation key) || z), not the SeedSize-byte seed.
func (p *Parameters) DecapsulationKeySize() int { return p.decapsulationKeySize }

// CiphertextSize is the wire length of a ciphertext.
func (p *Parameters) CiphertextSize() int { return p.ciphertextSize }

func newParameters(name string, k, du, dv, eta1 int) *Parameters {
	p := &Parameters{name: name, k: k, du: du, dv: dv, eta1: eta1}
	p.encapsulationKeySize = encodingSize12*k + 32
	p.decapsulationKeySize = encodingSize12*k + p.encapsulationKeySize + 32 + 32
	p.ciphertextSize = encodingSizeD(du)*k + encodingSizeD(dv)
	return p
}

// The three ML-KEM parameter sets (spec §3).
var (
	Params512  = newParameters("ML-KEM-512", 2, 10, 4, 3)
	Params768  = newParameters("ML-KEM-768", 3, 10, 4, 2)
	Params1024 = newParameters("ML-KEM-1024", 4, 11, 5, 2)
)

const (
	// SeedSize is the length of the 64-byte "d || z" seed consumed by
	// deterministic key generation.
	SeedSize = 64
	// SharedKeySize is the length of the shared secret produced by
	// encapsulation and decapsulation.
	SharedKeySize = 32
	// messageSize is the length of the plaintext message encapsulated
	// by the underlying K-PKE scheme.
	messageSize = 32
	// eta2 is the noise-sampling width used for e1/e2/the encapsulator's
	// y-companion noise in every parameter set (spec §4.C).
	eta2 = 2
)
