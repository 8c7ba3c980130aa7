package hybrid

import (
	"crypto/rsa"
	"fmt"

	"sealbox/internal/crypto"
	"sealbox/internal/domain"
	"sealbox/internal/envelope"
	"sealbox/internal/util/memzero"
)

// EncryptForRecipient seals plaintext for the holder of recipient's private
// key and returns the packed envelope string plus the base64 wrapped key.
//
// Steps:
//  1. Generate a fresh AES-256 key; it lives only for this call.
//  2. Seal the plaintext with AES-GCM under a fresh nonce.
//  3. Pack {nonce, ciphertext, tag} into the opaque envelope string.
//  4. Wrap the raw key bytes under the recipient's RSA-OAEP public key.
func EncryptForRecipient(recipient *rsa.PublicKey, plaintext []byte) (envelopeStr, wrappedKey string, err error) {
	key, err := crypto.GenerateKey()
	if err != nil {
		return "", "", err
	}
	defer memzero.Zero(key.Slice())

	env, err := crypto.Encrypt(key, plaintext)
	if err != nil {
		return "", "", err
	}
	packed, err := envelope.Pack(env)
	if err != nil {
		return "", "", err
	}
	wrapped, err := crypto.WrapKey(recipient, key.Slice())
	if err != nil {
		return "", "", err
	}
	return packed, crypto.B64(wrapped), nil
}

// DecryptAsOwner opens an envelope addressed to own's public half.
//
// Steps:
//  1. Decode the base64 wrapped key.
//  2. Unwrap it with our private key (wrong key: ErrDecryption).
//  3. Re-import the raw bytes as a symmetric key.
//  4. Unpack the envelope string (malformed: ErrParse).
//  5. Open the ciphertext (tampered: ErrAuthentication).
//
// Each step surfaces its own error kind; no fallback decoding is attempted.
func DecryptAsOwner(own *rsa.PrivateKey, envelopeStr, wrappedKey string) ([]byte, error) {
	wrapped, err := crypto.UnB64(wrappedKey)
	if err != nil {
		return nil, err
	}
	raw, err := crypto.UnwrapKey(own, wrapped)
	if err != nil {
		return nil, err
	}
	defer memzero.Zero(raw)

	key, err := domain.SymmetricKeyFromBytes(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrDecryption, err)
	}
	defer memzero.Zero(key.Slice())

	env, err := envelope.Unpack(envelopeStr)
	if err != nil {
		return nil, err
	}
	return crypto.Decrypt(key, env)
}
