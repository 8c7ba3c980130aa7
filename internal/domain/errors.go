package domain

import "errors"

// Error kinds surfaced by the crypto core. Callers match them with
// errors.Is; every failure inside the core wraps exactly one of these.
var (
	// ErrKeyGeneration: entropy or parameter failure. Fatal, never retried
	// internally.
	ErrKeyGeneration = errors.New("key generation failed")

	// ErrKeyImport: key bytes did not parse as a usable public key.
	ErrKeyImport = errors.New("key import failed")

	// ErrParse: malformed PEM, envelope, or structured record. The input is
	// untrusted and must be rejected.
	ErrParse = errors.New("malformed input")

	// ErrAuthentication: the GCM tag did not verify. Treated as tamper or
	// corruption; plaintext is never released.
	ErrAuthentication = errors.New("authentication failed")

	// ErrDecryption: asymmetric unwrap failed. Wrong key or corrupted
	// wrapped key.
	ErrDecryption = errors.New("decryption failed")

	// ErrPrecondition: an orchestration step ran before the session state
	// it requires was reached.
	ErrPrecondition = errors.New("precondition not met")
)
