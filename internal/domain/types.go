package domain

import (
	"crypto/rsa"
	"fmt"
)

const (
	// SymmetricKeyBytes is the AES-256 key length.
	SymmetricKeyBytes = 32
	// NonceSize is the AES-GCM nonce length. A nonce must never repeat for
	// a given key.
	NonceSize = 12
	// TagSize is the AES-GCM authentication tag length. Pinned explicitly:
	// splitting the AEAD output anywhere else would silently weaken the
	// authentication guarantee.
	TagSize = 16
)

// ClientID identifies a registered client on the conversion server.
type ClientID string

func (id ClientID) String() string { return string(id) }

// SymmetricKey is a per-transfer AES-256 key. It is generated fresh for
// every transfer, never persisted, and wiped once the transfer completes.
type SymmetricKey [SymmetricKeyBytes]byte

// Slice returns the key as a []byte.
func (k *SymmetricKey) Slice() []byte { return k[:] }

// SymmetricKeyFromBytes copies raw key bytes into a SymmetricKey.
func SymmetricKeyFromBytes(b []byte) (SymmetricKey, error) {
	var out SymmetricKey
	if len(b) != SymmetricKeyBytes {
		return out, fmt.Errorf("symmetric key: want %d bytes, got %d", SymmetricKeyBytes, len(b))
	}
	copy(out[:], b)
	return out, nil
}

// KeyPair is an RSA keypair. The private half never leaves the owning
// process.
type KeyPair struct {
	Public  *rsa.PublicKey
	Private *rsa.PrivateKey
}

// WrappedKey is a symmetric key encrypted under a recipient's public key.
// Its length is fixed by the recipient's modulus (2048 bits gives 256 bytes).
type WrappedKey []byte

// Envelope is one symmetrically encrypted message. Ciphertext is exactly as
// long as the plaintext; an Envelope is meaningless without the SymmetricKey
// that produced it.
type Envelope struct {
	Nonce      []byte
	Ciphertext []byte
	Tag        []byte
}

// UploadResult is the server's encrypted answer to an upload: the converted
// payload sealed under a fresh key wrapped to the client's own public key.
type UploadResult struct {
	EncryptedResult string
	EncryptedKey    string
	MediaType       string
}

// Result is a decrypted server result plus presentation hints for the
// caller; the core's contract ends here.
type Result struct {
	Plaintext []byte
	Filename  string
	MIME      string
}
