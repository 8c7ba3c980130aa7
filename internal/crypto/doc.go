// Package crypto exposes the primitives used by sealbox.
//
// Contents
//
//   - SPKI DER / PEM armoring of public keys (EncodePEM, DecodePEM)
//   - AES-256-GCM key generation, sealing and opening with the nonce,
//     ciphertext and tag carried as separate fields (GenerateKey, Encrypt,
//     Decrypt)
//   - RSA-2048 keypair handling and OAEP key wrapping (GenerateKeyPair,
//     ExportPublicPEM, ImportPublicPEM, WrapKey, UnwrapKey)
//   - Short public-key fingerprints for display (Fingerprint,
//     FingerprintPublicKey)
//
// # Notes
//
// Symmetric keys use the fixed-size array type defined in internal/domain to
// avoid accidental reallocations. Callers should treat raw key bytes as
// sensitive and wipe them when practical to reduce lifetime in memory.
// Every failure wraps one of the error kinds in internal/domain.
package crypto
