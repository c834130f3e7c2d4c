package mlkem

import "errors"

// Error kinds from spec §7. None of them carry secret-dependent
// information; every one is safe to log or return to a caller verbatim.
var (
	// ErrInvalidLength is returned when a caller-supplied buffer does
	// not match the size a variant requires.
	ErrInvalidLength = errors.New("mlkem: invalid length")
	// ErrInvalidEncoding is returned when a 12-bit field in a parsed
	// public key is >= q, or when a parsed private key's embedded
	// public-key hash does not match the recomputed one.
	ErrInvalidEncoding = errors.New("mlkem: invalid encoding")
	// ErrImmutableKey is returned when key material is installed on a
	// Key that already carries that material.
	ErrImmutableKey = errors.New("mlkem: key already populated")
	// ErrAllocationFailure corresponds to the host-framework contract's
	// allocation_failure kind. Go's allocator panics rather than
	// returning an error, so this core never produces it directly; the
	// sentinel exists so a caller's error-kind switch stays exhaustive
	// against spec §7 even though this implementation cannot trigger it.
	ErrAllocationFailure = errors.New("mlkem: allocation failure")
	// ErrOracleFailure is returned when a symmetric primitive reports
	// failure outside of decapsulation (where it is masked into the
	// implicit-rejection failure key instead, per spec §4.H/§7).
	ErrOracleFailure = errors.New("mlkem: oracle failure")
)

// errInvalidEncoding and errOracleFailure are unexported aliases used
// internally so the engine files don't need to import this file's
// exported identifiers by their long names.
var (
	errInvalidEncoding = ErrInvalidEncoding
	errOracleFailure   = ErrOracleFailure
)
