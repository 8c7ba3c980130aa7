package crypto

import (
	"encoding/pem"
	"fmt"

	"sealbox/internal/domain"
)

const publicKeyPEMType = "PUBLIC KEY"

// EncodePEM armors SPKI DER bytes: base64 body wrapped at 64 columns between
// the standard public-key header and footer lines.
func EncodePEM(der []byte) string {
	return string(pem.EncodeToMemory(&pem.Block{Type: publicKeyPEMType, Bytes: der}))
}

// DecodePEM extracts the DER bytes from a public-key PEM blob.
func DecodePEM(blob string) ([]byte, error) {
	block, _ := pem.Decode([]byte(blob))
	if block == nil {
		return nil, fmt.Errorf("%w: no PEM block found", domain.ErrParse)
	}
	if block.Type != publicKeyPEMType {
		return nil, fmt.Errorf("%w: unexpected PEM type %q", domain.ErrParse, block.Type)
	}
	return block.Bytes, nil
}
