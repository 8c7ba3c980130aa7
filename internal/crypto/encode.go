package crypto

import (
	"encoding/base64"
	"fmt"

	"sealbox/internal/domain"
)

// B64 returns standard base64 encoding without newlines.
func B64(b []byte) string { return base64.StdEncoding.EncodeToString(b) }

// UnB64 decodes standard base64; failures are reported as ErrParse.
func UnB64(s string) ([]byte, error) {
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: base64: %v", domain.ErrParse, err)
	}
	return b, nil
}
