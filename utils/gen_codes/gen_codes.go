package gen_codes

import (
	"crypto/rand"
	"encoding/hex"
	"strings"
)

const codeBytes = 4

// NewVoucherCode returns 4 random bytes encoded as 8 uppercase hex characters.
// Uniqueness is probabilistic; issued codes are not checked against each other.
func NewVoucherCode() (string, error) {
	buf := make([]byte, codeBytes)

	_, err := rand.Read(buf)
	if err != nil {
		return "", err
	}

	return strings.ToUpper(hex.EncodeToString(buf)), nil
}
