package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"

	"sealbox/internal/domain"
)

// GenerateKey returns 256 bits of fresh random key material.
func GenerateKey() (domain.SymmetricKey, error) {
	var k domain.SymmetricKey
	if _, err := rand.Read(k[:]); err != nil {
		return k, fmt.Errorf("%w: %v", domain.ErrKeyGeneration, err)
	}
	return k, nil
}

// Encrypt seals plaintext under key with AES-256-GCM and a fresh random
// nonce. The AEAD emits ciphertext immediately followed by the tag; the
// pinned 16-byte suffix is split off so the envelope carries the fields
// separately.
func Encrypt(key domain.SymmetricKey, plaintext []byte) (domain.Envelope, error) {
	aead, err := newGCM(key)
	if err != nil {
		return domain.Envelope{}, err
	}
	nonce := make([]byte, domain.NonceSize)
	if _, err := rand.Read(nonce); err != nil {
		return domain.Envelope{}, fmt.Errorf("%w: nonce: %v", domain.ErrKeyGeneration, err)
	}
	sealed := aead.Seal(nil, nonce, plaintext, nil)
	cut := len(sealed) - domain.TagSize
	return domain.Envelope{
		Nonce:      nonce,
		Ciphertext: sealed[:cut],
		Tag:        sealed[cut:],
	}, nil
}

// Decrypt reassembles ciphertext||tag and opens it. A tag that does not
// verify, for any altered byte of key, nonce, ciphertext or tag, yields
// ErrAuthentication and no plaintext.
func Decrypt(key domain.SymmetricKey, env domain.Envelope) ([]byte, error) {
	if len(env.Nonce) != domain.NonceSize {
		return nil, fmt.Errorf("%w: nonce is %d bytes, want %d", domain.ErrParse, len(env.Nonce), domain.NonceSize)
	}
	if len(env.Tag) != domain.TagSize {
		return nil, fmt.Errorf("%w: tag is %d bytes, want %d", domain.ErrParse, len(env.Tag), domain.TagSize)
	}
	aead, err := newGCM(key)
	if err != nil {
		return nil, err
	}
	sealed := make([]byte, 0, len(env.Ciphertext)+domain.TagSize)
	sealed = append(sealed, env.Ciphertext...)
	sealed = append(sealed, env.Tag...)
	plaintext, err := aead.Open(nil, env.Nonce, sealed, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrAuthentication, err)
	}
	return plaintext, nil
}

func newGCM(key domain.SymmetricKey) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key[:])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrKeyGeneration, err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrKeyGeneration, err)
	}
	// The tag length is pinned, not inferred: a shortened tag would
	// silently weaken authentication.
	if aead.Overhead() != domain.TagSize || aead.NonceSize() != domain.NonceSize {
		return nil, fmt.Errorf("%w: unexpected GCM parameters (tag %d, nonce %d)",
			domain.ErrKeyGeneration, aead.Overhead(), aead.NonceSize())
	}
	return aead, nil
}
