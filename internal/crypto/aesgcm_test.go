package crypto_test

import (
	"bytes"
	"errors"
	"testing"

	"sealbox/internal/crypto"
	"sealbox/internal/domain"
)

func mustKey(t *testing.T) domain.SymmetricKey {
	t.Helper()
	key, err := crypto.GenerateKey()
	if err != nil {
		t.Fatalf("GenerateKey: %v", err)
	}
	return key
}

func TestEncryptDecryptRoundTrip(t *testing.T) {
	key := mustKey(t)
	for _, size := range []int{0, 1, 11, 15, 16, 17, 1024} {
		plaintext := bytes.Repeat([]byte{0xA5}, size)
		env, err := crypto.Encrypt(key, plaintext)
		if err != nil {
			t.Fatalf("Encrypt (size %d): %v", size, err)
		}
		if len(env.Nonce) != domain.NonceSize {
			t.Fatalf("nonce is %d bytes", len(env.Nonce))
		}
		if len(env.Tag) != domain.TagSize {
			t.Fatalf("tag is %d bytes", len(env.Tag))
		}
		// GCM is not padding based: ciphertext length equals plaintext length.
		if len(env.Ciphertext) != size {
			t.Fatalf("ciphertext is %d bytes, want %d", len(env.Ciphertext), size)
		}
		got, err := crypto.Decrypt(key, env)
		if err != nil {
			t.Fatalf("Decrypt (size %d): %v", size, err)
		}
		if !bytes.Equal(got, plaintext) {
			t.Fatalf("round trip mismatch at size %d", size)
		}
	}
}

func TestEncryptUsesFreshNonce(t *testing.T) {
	key := mustKey(t)
	a, err := crypto.Encrypt(key, []byte("same plaintext"))
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}
	b, err := crypto.Encrypt(key, []byte("same plaintext"))
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}
	if bytes.Equal(a.Nonce, b.Nonce) {
		t.Fatal("two encryptions reused a nonce")
	}
	if bytes.Equal(a.Ciphertext, b.Ciphertext) {
		t.Fatal("two encryptions produced identical ciphertext")
	}
}

func TestDecryptRejectsTampering(t *testing.T) {
	key := mustKey(t)
	env, err := crypto.Encrypt(key, []byte("an important message"))
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}

	flip := func(b []byte, i int) []byte {
		out := append([]byte(nil), b...)
		out[i] ^= 0x01
		return out
	}

	tampered := []domain.Envelope{
		{Nonce: flip(env.Nonce, 0), Ciphertext: env.Ciphertext, Tag: env.Tag},
		{Nonce: env.Nonce, Ciphertext: flip(env.Ciphertext, 0), Tag: env.Tag},
		{Nonce: env.Nonce, Ciphertext: flip(env.Ciphertext, len(env.Ciphertext)-1), Tag: env.Tag},
		{Nonce: env.Nonce, Ciphertext: env.Ciphertext, Tag: flip(env.Tag, 7)},
	}
	for i, bad := range tampered {
		if plaintext, err := crypto.Decrypt(key, bad); !errors.Is(err, domain.ErrAuthentication) {
			t.Fatalf("case %d: want ErrAuthentication, got plaintext=%v err=%v", i, plaintext, err)
		}
	}

	// Altered key, same envelope.
	other := key
	other[0] ^= 0x01
	if _, err := crypto.Decrypt(other, env); !errors.Is(err, domain.ErrAuthentication) {
		t.Fatalf("altered key: want ErrAuthentication, got %v", err)
	}
}

func TestDecryptRejectsBadFieldLengths(t *testing.T) {
	key := mustKey(t)
	env, err := crypto.Encrypt(key, []byte("payload"))
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}

	shortNonce := env
	shortNonce.Nonce = env.Nonce[:8]
	if _, err := crypto.Decrypt(key, shortNonce); !errors.Is(err, domain.ErrParse) {
		t.Fatalf("short nonce: want ErrParse, got %v", err)
	}

	shortTag := env
	shortTag.Tag = env.Tag[:12]
	if _, err := crypto.Decrypt(key, shortTag); !errors.Is(err, domain.ErrParse) {
		t.Fatalf("short tag: want ErrParse, got %v", err)
	}
}
