package envelope_test

import (
	"bytes"
	"encoding/base64"
	"errors"
	"testing"

	"sealbox/internal/domain"
	"sealbox/internal/envelope"
)

func sample(ciphertextLen int) domain.Envelope {
	nonce := make([]byte, domain.NonceSize)
	tag := make([]byte, domain.TagSize)
	ciphertext := make([]byte, ciphertextLen)
	for i := range nonce {
		nonce[i] = byte(i)
	}
	for i := range tag {
		tag[i] = byte(0xF0 + i)
	}
	for i := range ciphertext {
		ciphertext[i] = byte(i * 3)
	}
	return domain.Envelope{Nonce: nonce, Ciphertext: ciphertext, Tag: tag}
}

func TestPackUnpackRoundTrip(t *testing.T) {
	for _, size := range []int{0, 1, 11, 256, 4096} {
		env := sample(size)
		opaque, err := envelope.Pack(env)
		if err != nil {
			t.Fatalf("Pack (size %d): %v", size, err)
		}
		got, err := envelope.Unpack(opaque)
		if err != nil {
			t.Fatalf("Unpack (size %d): %v", size, err)
		}
		if !bytes.Equal(got.Nonce, env.Nonce) ||
			!bytes.Equal(got.Ciphertext, env.Ciphertext) ||
			!bytes.Equal(got.Tag, env.Tag) {
			t.Fatalf("round trip mismatch at size %d", size)
		}
	}
}

func TestPackIsDoublyEncoded(t *testing.T) {
	opaque, err := envelope.Pack(sample(32))
	if err != nil {
		t.Fatalf("Pack: %v", err)
	}
	inner, err := base64.StdEncoding.DecodeString(opaque)
	if err != nil {
		t.Fatalf("outer layer is not base64: %v", err)
	}
	// The inner layer is the JSON record itself.
	if inner[0] != '{' {
		t.Fatalf("inner layer does not look like JSON: %q", inner[:1])
	}
	for _, key := range []string{`"nonce"`, `"ciphertext"`, `"tag"`} {
		if !bytes.Contains(inner, []byte(key)) {
			t.Fatalf("record is missing %s", key)
		}
	}
}

func TestUnpackRejectsMalformed(t *testing.T) {
	b64 := func(s string) string { return base64.StdEncoding.EncodeToString([]byte(s)) }

	cases := map[string]string{
		"not base64":     "!!!",
		"not JSON":       b64("hello"),
		"missing nonce":  b64(`{"ciphertext":"","tag":"AAAAAAAAAAAAAAAAAAAAAA=="}`),
		"missing tag":    b64(`{"nonce":"AAAAAAAAAAAAAAAA","ciphertext":""}`),
		"bad field b64":  b64(`{"nonce":"***","ciphertext":"","tag":""}`),
		"short nonce":    b64(`{"nonce":"AAAA","ciphertext":"","tag":"AAAAAAAAAAAAAAAAAAAAAA=="}`),
		"short tag":      b64(`{"nonce":"AAAAAAAAAAAAAAAA","ciphertext":"","tag":"AAAA"}`),
		"empty document": b64(``),
	}
	for name, opaque := range cases {
		if _, err := envelope.Unpack(opaque); !errors.Is(err, domain.ErrParse) {
			t.Fatalf("%s: want ErrParse, got %v", name, err)
		}
	}
}
