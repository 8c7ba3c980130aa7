package crypto_test

import (
	"bytes"
	"errors"
	"testing"

	"sealbox/internal/crypto"
	"sealbox/internal/domain"
)

func mustKeyPair(t *testing.T) domain.KeyPair {
	t.Helper()
	keys, err := crypto.GenerateKeyPair()
	if err != nil {
		t.Fatalf("GenerateKeyPair: %v", err)
	}
	return keys
}

func TestExportImportPublicKey(t *testing.T) {
	keys := mustKeyPair(t)
	blob, err := crypto.ExportPublicPEM(keys.Public)
	if err != nil {
		t.Fatalf("ExportPublicPEM: %v", err)
	}
	pub, err := crypto.ImportPublicPEM(blob)
	if err != nil {
		t.Fatalf("ImportPublicPEM: %v", err)
	}
	if pub.N.Cmp(keys.Public.N) != 0 || pub.E != keys.Public.E {
		t.Fatal("imported key differs from exported key")
	}
	if pub.Size() != 256 {
		t.Fatalf("modulus is %d bytes, want 256", pub.Size())
	}
}

func TestImportPublicPEMRejectsNonKeyDER(t *testing.T) {
	// Valid armor around bytes that are not an SPKI structure.
	blob := crypto.EncodePEM([]byte("definitely not DER"))
	if _, err := crypto.ImportPublicPEM(blob); !errors.Is(err, domain.ErrKeyImport) {
		t.Fatalf("want ErrKeyImport, got %v", err)
	}
}

func TestWrapUnwrapKey(t *testing.T) {
	keys := mustKeyPair(t)
	raw := bytes.Repeat([]byte{0x42}, domain.SymmetricKeyBytes)

	wrapped, err := crypto.WrapKey(keys.Public, raw)
	if err != nil {
		t.Fatalf("WrapKey: %v", err)
	}
	// OAEP output length is fixed by the modulus.
	if len(wrapped) != 256 {
		t.Fatalf("wrapped key is %d bytes, want 256", len(wrapped))
	}

	got, err := crypto.UnwrapKey(keys.Private, wrapped)
	if err != nil {
		t.Fatalf("UnwrapKey: %v", err)
	}
	if !bytes.Equal(got, raw) {
		t.Fatal("unwrapped bytes differ from original")
	}
}

func TestUnwrapKeyRejectsWrongKey(t *testing.T) {
	alice := mustKeyPair(t)
	mallory := mustKeyPair(t)

	wrapped, err := crypto.WrapKey(alice.Public, make([]byte, domain.SymmetricKeyBytes))
	if err != nil {
		t.Fatalf("WrapKey: %v", err)
	}
	if _, err := crypto.UnwrapKey(mallory.Private, wrapped); !errors.Is(err, domain.ErrDecryption) {
		t.Fatalf("want ErrDecryption, got %v", err)
	}
}

func TestUnwrapKeyRejectsCorruption(t *testing.T) {
	keys := mustKeyPair(t)
	wrapped, err := crypto.WrapKey(keys.Public, make([]byte, domain.SymmetricKeyBytes))
	if err != nil {
		t.Fatalf("WrapKey: %v", err)
	}
	wrapped[100] ^= 0x01
	if _, err := crypto.UnwrapKey(keys.Private, wrapped); !errors.Is(err, domain.ErrDecryption) {
		t.Fatalf("want ErrDecryption, got %v", err)
	}
}

func TestWrapKeyEnforcesOAEPBound(t *testing.T) {
	keys := mustKeyPair(t)

	// 2048-bit modulus with SHA-256 OAEP accepts up to 190 bytes.
	if _, err := crypto.WrapKey(keys.Public, make([]byte, 190)); err != nil {
		t.Fatalf("190 bytes should fit: %v", err)
	}
	if _, err := crypto.WrapKey(keys.Public, make([]byte, 191)); err == nil {
		t.Fatal("191 bytes should exceed the OAEP bound")
	}
}
