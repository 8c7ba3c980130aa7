package crypto

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"crypto/x509"
	"fmt"

	"sealbox/internal/domain"
)

// rsaModulusBits sizes keypairs for OAEP with a SHA-256 digest.
const rsaModulusBits = 2048

// GenerateKeyPair creates a fresh RSA-2048 keypair (public exponent 65537).
func GenerateKeyPair() (domain.KeyPair, error) {
	priv, err := rsa.GenerateKey(rand.Reader, rsaModulusBits)
	if err != nil {
		return domain.KeyPair{}, fmt.Errorf("%w: %v", domain.ErrKeyGeneration, err)
	}
	return domain.KeyPair{Public: &priv.PublicKey, Private: priv}, nil
}

// ExportPublicPEM encodes the public half as SPKI DER wrapped in PEM armor.
func ExportPublicPEM(pub *rsa.PublicKey) (string, error) {
	der, err := x509.MarshalPKIXPublicKey(pub)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrKeyGeneration, err)
	}
	return EncodePEM(der), nil
}

// ImportPublicPEM parses a PEM blob into an encryption-only public key
// handle. Bad armor yields ErrParse; valid armor around bytes that are not
// an RSA public key yields ErrKeyImport.
func ImportPublicPEM(blob string) (*rsa.PublicKey, error) {
	der, err := DecodePEM(blob)
	if err != nil {
		return nil, err
	}
	parsed, err := x509.ParsePKIXPublicKey(der)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrKeyImport, err)
	}
	pub, ok := parsed.(*rsa.PublicKey)
	if !ok {
		return nil, fmt.Errorf("%w: not an RSA public key", domain.ErrKeyImport)
	}
	return pub, nil
}

// WrapKey OAEP-encrypts raw symmetric key bytes under the recipient's public
// key. OAEP/SHA-256 over a 2048-bit modulus accepts at most 190 bytes; a
// 32-byte key always fits.
func WrapKey(pub *rsa.PublicKey, raw []byte) (domain.WrappedKey, error) {
	if max := pub.Size() - 2*sha256.Size - 2; len(raw) > max {
		return nil, fmt.Errorf("wrap key: payload is %d bytes, OAEP bound is %d", len(raw), max)
	}
	wrapped, err := rsa.EncryptOAEP(sha256.New(), rand.Reader, pub, raw, nil)
	if err != nil {
		return nil, fmt.Errorf("wrap key: %w", err)
	}
	return wrapped, nil
}

// UnwrapKey OAEP-decrypts a wrapped key. Any ciphertext not produced for
// exactly this private key, or corrupted in transit, yields ErrDecryption.
func UnwrapKey(priv *rsa.PrivateKey, wrapped domain.WrappedKey) ([]byte, error) {
	raw, err := rsa.DecryptOAEP(sha256.New(), rand.Reader, priv, wrapped, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrDecryption, err)
	}
	return raw, nil
}
