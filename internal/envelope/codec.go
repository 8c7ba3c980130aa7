package envelope

import (
	"encoding/base64"
	"encoding/json"
	"fmt"

	"sealbox/internal/domain"
)

// record is the JSON shape inside the outer base64 layer. Pointer fields let
// Unpack tell an absent key from an empty one.
type record struct {
	Nonce      *string `json:"nonce"`
	Ciphertext *string `json:"ciphertext"`
	Tag        *string `json:"tag"`
}

// Pack serializes an envelope into one opaque transport string: each field
// base64 encoded into the JSON record, then the whole record base64 encoded
// again.
func Pack(env domain.Envelope) (string, error) {
	nonce := base64.StdEncoding.EncodeToString(env.Nonce)
	ciphertext := base64.StdEncoding.EncodeToString(env.Ciphertext)
	tag := base64.StdEncoding.EncodeToString(env.Tag)
	b, err := json.Marshal(record{Nonce: &nonce, Ciphertext: &ciphertext, Tag: &tag})
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(b), nil
}

// Unpack reverses Pack. Any failing layer, a missing key, or a nonce or tag
// of the wrong length yields ErrParse; no fallback decoding is attempted.
func Unpack(opaque string) (domain.Envelope, error) {
	raw, err := base64.StdEncoding.DecodeString(opaque)
	if err != nil {
		return domain.Envelope{}, fmt.Errorf("%w: envelope outer base64: %v", domain.ErrParse, err)
	}
	var rec record
	if err := json.Unmarshal(raw, &rec); err != nil {
		return domain.Envelope{}, fmt.Errorf("%w: envelope record: %v", domain.ErrParse, err)
	}
	if rec.Nonce == nil || rec.Ciphertext == nil || rec.Tag == nil {
		return domain.Envelope{}, fmt.Errorf("%w: envelope record is missing a key", domain.ErrParse)
	}
	nonce, err := field("nonce", *rec.Nonce)
	if err != nil {
		return domain.Envelope{}, err
	}
	ciphertext, err := field("ciphertext", *rec.Ciphertext)
	if err != nil {
		return domain.Envelope{}, err
	}
	tag, err := field("tag", *rec.Tag)
	if err != nil {
		return domain.Envelope{}, err
	}
	if len(nonce) != domain.NonceSize {
		return domain.Envelope{}, fmt.Errorf("%w: nonce is %d bytes, want %d", domain.ErrParse, len(nonce), domain.NonceSize)
	}
	if len(tag) != domain.TagSize {
		return domain.Envelope{}, fmt.Errorf("%w: tag is %d bytes, want %d", domain.ErrParse, len(tag), domain.TagSize)
	}
	return domain.Envelope{Nonce: nonce, Ciphertext: ciphertext, Tag: tag}, nil
}

func field(name, v string) ([]byte, error) {
	b, err := base64.StdEncoding.DecodeString(v)
	if err != nil {
		return nil, fmt.Errorf("%w: envelope %s: %v", domain.ErrParse, name, err)
	}
	return b, nil
}
